package commands

import (
	"context"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/account"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/donation"
	"github.com/spantra1997/SecondServe/internal/pkg/errs"
)

// CreateDonationCommandHandler handles the business logic for listing donations.
// New donations always start in Available status, visible to recipients.
type CreateDonationCommandHandler struct {
	uowFactory DonationUoWFactory
}

// NewCreateDonationCommandHandler creates a handler for donation listing.
// Requires a DonationUoWFactory for transactional persistence.
func NewCreateDonationCommandHandler(uowFactory DonationUoWFactory) CreateDonationCommandHandler {
	return CreateDonationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the donation creation command.
// The caller must be a registered donor; the donor's display name is
// denormalized onto the donation so listings don't need a join.
func (h *CreateDonationCommandHandler) Handle(ctx context.Context, cmd CreateDonationCommand) error {
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

	donor, err := uow.UserRepository().Get(ctx, cmd.DonorID())
	if err != nil {
		return err
	}
	if donor.Role() != account.RoleDonor {
		return errs.NewPermissionDeniedError("only donors can create donations")
	}

	aggregate, err := donation.NewDonation(
		cmd.DonationID(),
		donor.ID(),
		donor.Name(),
		cmd.FoodType(),
		cmd.Quantity(),
		cmd.PreparedAt(),
		cmd.ExpiryDate(),
		cmd.Description(),
		cmd.PhotoURL(),
		cmd.Location(),
	)
	if err != nil {
		return err
	}

	if err = uow.DonationRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
