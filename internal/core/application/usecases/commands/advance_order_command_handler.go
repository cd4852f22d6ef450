package commands

import (
	"context"

	"github.com/spantra1997/SecondServe/internal/core/domain/services"
)

// AdvanceOrderCommandHandler handles the business logic for order progression.
//
// Advancing an order drags its donation along: in_transit marks the donation
// picked up, delivered marks it delivered. Both rows are written in one
// transaction so the two lifecycles never drift apart.
type AdvanceOrderCommandHandler struct {
	uowFactory  UoWFactory
	fulfillment services.Fulfillment
}

// NewAdvanceOrderCommandHandler creates a handler for order progression.
// Requires a UoWFactory spanning donation and order persistence.
func NewAdvanceOrderCommandHandler(uowFactory UoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory:  uowFactory,
		fulfillment: services.NewFulfillment(),
	}
}

// Handle processes the advance command.
// Only the assigned driver may advance the order, and only along the two
// forward edges; everything else is rejected by the Order aggregate with
// no state change.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Advance(cmd.DriverID(), cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	donationRepo := uow.DonationRepository()
	linked, err := donationRepo.Get(ctx, aggregate.DonationID())
	if err != nil {
		return err
	}

	if err = h.fulfillment.Sync(linked, aggregate); err != nil {
		return err
	}

	if err = donationRepo.Update(ctx, linked); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
