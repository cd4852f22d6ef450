package queries

import (
	"errors"
	"time"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/order"
	"github.com/spantra1997/SecondServe/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders scoped to one party: the recipient who
// placed them, the driver delivering them, or the donor whose food they
// carry. At most one filter may be set; with none the query returns
// everything, which is reserved for administrators.
type ListOrdersQuery struct {
	recipientID *kernel.UUID
	driverID    *kernel.UUID
	donorID     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to retrieve orders.
// Pass nil for filters that don't apply; setting more than one is an error.
func NewListOrdersQuery(recipientID, driverID, donorID *kernel.UUID) (ListOrdersQuery, error) {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}

	set := 0
	for _, id := range []*kernel.UUID{recipientID, driverID, donorID} {
		if id == nil {
			continue
		}
		if err := id.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		set++
	}
	if set > 1 {
		return ListOrdersQuery{}, errors.New("at most one order filter may be set")
	}

	q.recipientID = recipientID
	q.driverID = driverID
	q.donorID = donorID
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// RecipientID returns the recipient filter; nil means no filter.
func (q ListOrdersQuery) RecipientID() *kernel.UUID {
	return q.recipientID
}

// DriverID returns the driver filter; nil means no filter.
func (q ListOrdersQuery) DriverID() *kernel.UUID {
	return q.driverID
}

// DonorID returns the donor filter; nil means no filter.
func (q ListOrdersQuery) DonorID() *kernel.UUID {
	return q.donorID
}

// ListOrdersQueryResponse represents one order in the read model.
type ListOrdersQueryResponse struct {
	ID                 kernel.UUID
	DonationID         kernel.UUID
	RecipientID        kernel.UUID
	RecipientName      string
	DonorID            kernel.UUID
	DriverID           *kernel.UUID
	DriverName         string
	DietaryPreferences []string
	PickupLocation     kernel.Location
	DeliveryLocation   kernel.Location
	Status             order.Status
	CreatedAt          time.Time
}
