package queries

import (
	"errors"

	"github.com/spantra1997/SecondServe/internal/pkg/guard"
)

var ErrPlatformStatsQueryIsNotConstructed = errors.New(
	"PlatformStatsQuery must be created via NewPlatformStatsQuery constructor",
)

// PlatformStatsQuery retrieves the administrator's dashboard numbers:
// donation and order counts broken down by status, and user counts broken
// down by role.
type PlatformStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewPlatformStatsQuery creates a query to retrieve platform statistics.
// This is a parameterless query.
func NewPlatformStatsQuery() PlatformStatsQuery {
	return PlatformStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q PlatformStatsQuery) Validate() error {
	return q.guard.Validate(ErrPlatformStatsQueryIsNotConstructed)
}

// DonationStats breaks donation counts down by status.
type DonationStats struct {
	Total     int64
	Available int64
	Claimed   int64
	PickedUp  int64
	Delivered int64
}

// OrderStats breaks order counts down by status.
type OrderStats struct {
	Total     int64
	Pending   int64
	Assigned  int64
	InTransit int64
	Delivered int64
}

// UserStats breaks user counts down by role.
type UserStats struct {
	Total      int64
	Donors     int64
	Recipients int64
	Drivers    int64
}

// PlatformStatsQueryResponse aggregates the three breakdowns.
type PlatformStatsQueryResponse struct {
	Donations DonationStats
	Orders    OrderStats
	Users     UserStats
}
