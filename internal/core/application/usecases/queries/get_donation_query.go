package queries

import (
	"errors"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
	"github.com/spantra1997/SecondServe/internal/pkg/guard"
)

// ErrGetDonationQueryIsNotConstructed is returned when the query is used
// without being created through its constructor.
var ErrGetDonationQueryIsNotConstructed = errors.New(
	"GetDonationQuery must be created via NewGetDonationQuery constructor",
)

// GetDonationQuery retrieves a single donation by its identifier.
type GetDonationQuery struct {
	donationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDonationQuery creates a query to retrieve one donation.
func NewGetDonationQuery(donationID kernel.UUID) (GetDonationQuery, error) {
	if err := donationID.Validate(); err != nil {
		return GetDonationQuery{}, err
	}

	return GetDonationQuery{
		donationID: donationID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDonationQuery) Validate() error {
	return q.guard.Validate(ErrGetDonationQueryIsNotConstructed)
}

// DonationID returns the identifier of the donation to retrieve.
func (q GetDonationQuery) DonationID() kernel.UUID {
	return q.donationID
}
