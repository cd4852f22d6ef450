package commands

import (
	"context"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/account"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/order"
	"github.com/spantra1997/SecondServe/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for claiming donations.
//
// Claiming is the coupling point of the two lifecycles: the donation moves
// from Available to Claimed and the order is created in Pending, atomically.
// Two recipients racing for one donation are serialized by the donation's
// version check; the loser gets a StatusConflictError and no order.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory spanning donation and order persistence.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The caller must be a registered recipient. The order snapshots the
// donation's pickup location and donor so later reads don't need the
// donation row.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	recipient, err := uow.UserRepository().Get(ctx, cmd.RecipientID())
	if err != nil {
		return err
	}
	if recipient.Role() != account.RoleRecipient {
		return errs.NewPermissionDeniedError("only recipients can claim donations")
	}

	donationRepo := uow.DonationRepository()
	aggregate, err := donationRepo.Get(ctx, cmd.DonationID())
	if err != nil {
		return err
	}

	if err = aggregate.Claim(); err != nil {
		return err
	}

	if err = donationRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		aggregate.ID(),
		recipient.ID(),
		recipient.Name(),
		aggregate.DonorID(),
		cmd.DietaryPreferences(),
		aggregate.Location(),
		cmd.DeliveryLocation(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
