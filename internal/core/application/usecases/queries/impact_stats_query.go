package queries

import (
	"errors"

	"github.com/spantra1997/SecondServe/internal/pkg/guard"
)

var ErrImpactStatsQueryIsNotConstructed = errors.New(
	"ImpactStatsQuery must be created via NewImpactStatsQuery constructor",
)

// ImpactStatsQuery retrieves the public impact numbers shown on the landing
// page: meals rescued, CO2 saved, and the cities reached.
type ImpactStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewImpactStatsQuery creates a query to retrieve impact statistics.
// This is a parameterless query.
func NewImpactStatsQuery() ImpactStatsQuery {
	return ImpactStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ImpactStatsQuery) Validate() error {
	return q.guard.Validate(ErrImpactStatsQueryIsNotConstructed)
}

// ImpactStatsQueryResponse carries the public impact numbers.
type ImpactStatsQueryResponse struct {
	MealsRescued int64
	ActiveDonors int64
	CO2SavedKg   float64
	Cities       int64
}
