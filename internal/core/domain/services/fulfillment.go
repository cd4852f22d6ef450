package services

import (
	"github.com/spantra1997/SecondServe/internal/core/domain/model/donation"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/order"
	"github.com/spantra1997/SecondServe/internal/pkg/errs"
)

// Fulfillment is a domain service that keeps a donation's lifecycle in
// lockstep with the order fulfilling it. Donation progress past Claimed is
// never requested directly by a client: it is derived from the order's
// progress, so the two state machines cannot drift apart.
//
// Business rules:
//   - A pending or assigned order keeps the donation Claimed
//   - An order in transit means the food was picked up
//   - A delivered order means the donation was delivered
type Fulfillment struct{}

// NewFulfillment creates a new Fulfillment instance.
func NewFulfillment() Fulfillment {
	return Fulfillment{}
}

// DonationStatusFor returns the donation status implied by an order status.
func (f Fulfillment) DonationStatusFor(orderStatus order.Status) (donation.Status, error) {
	switch orderStatus {
	case order.Pending, order.Assigned:
		return donation.Claimed, nil
	case order.InTransit:
		return donation.PickedUp, nil
	case order.Delivered:
		return donation.Delivered, nil
	default:
		return donation.Unknown, errs.NewValueIsInvalidError("order status")
	}
}

// Sync moves the donation to the status implied by the order's current
// status. It is a no-op when the donation is already there, so replaying the
// same order progression is safe.
func (f Fulfillment) Sync(d *donation.Donation, o *order.Order) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if !d.ID().IsEqual(o.DonationID()) {
		return errs.NewValueIsInvalidError("donation does not belong to order")
	}

	target, err := f.DonationStatusFor(o.Status())
	if err != nil {
		return err
	}
	if d.Status() == target {
		return nil
	}

	switch target {
	case donation.Claimed:
		return d.Claim()
	case donation.PickedUp:
		return d.MarkPickedUp()
	case donation.Delivered:
		return d.MarkDelivered()
	default:
		return errs.NewInvalidTransitionError("donation status",
			d.Status().String(), target.String())
	}
}
