// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/donation"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
	"github.com/spantra1997/SecondServe/internal/pkg/guard"
)

var ErrListDonationsQueryIsNotConstructed = errors.New(
	"ListDonationsQuery must be created via NewListDonationsQuery constructor",
)

// ListDonationsQuery retrieves donations, optionally narrowed to one status
// or one donor. Recipients browse available donations with a status filter;
// donors list their own with the donor filter.
type ListDonationsQuery struct {
	status  donation.Status
	donorID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListDonationsQuery creates a query to retrieve donations.
// Pass donation.Unknown to skip the status filter and nil to skip the
// donor filter.
func NewListDonationsQuery(status donation.Status, donorID *kernel.UUID) (ListDonationsQuery, error) {
	q := ListDonationsQuery{guard: guard.NewConstructorGuard()}

	if status != donation.Unknown {
		if err := status.Validate(); err != nil {
			return ListDonationsQuery{}, err
		}
		q.status = status
	}

	if donorID != nil {
		if err := donorID.Validate(); err != nil {
			return ListDonationsQuery{}, err
		}
		q.donorID = donorID
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDonationsQuery) Validate() error {
	return q.guard.Validate(ErrListDonationsQueryIsNotConstructed)
}

// Status returns the status filter; donation.Unknown means no filter.
func (q ListDonationsQuery) Status() donation.Status {
	return q.status
}

// DonorID returns the donor filter; nil means no filter.
func (q ListDonationsQuery) DonorID() *kernel.UUID {
	return q.donorID
}

// ListDonationsQueryResponse represents one donation in the read model.
type ListDonationsQueryResponse struct {
	ID          kernel.UUID
	DonorID     kernel.UUID
	DonorName   string
	FoodType    string
	Quantity    string
	PreparedAt  *time.Time
	ExpiryDate  time.Time
	Description string
	PhotoURL    string
	Location    kernel.Location
	Status      donation.Status
	CreatedAt   time.Time
}
