package commands

import (
	"context"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/account"
	"github.com/spantra1997/SecondServe/internal/pkg/errs"
)

// AssignOrderCommandHandler handles the business logic for order assignment.
//
// Two drivers racing for the same order are serialized by the order's version
// check: the first Update wins, the second sees a stale version and fails
// with a StatusConflictError.
type AssignOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignOrderCommandHandler creates a handler for order assignment.
// Requires an OrderUoWFactory for transactional persistence.
func NewAssignOrderCommandHandler(uowFactory OrderUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// The caller must be a registered driver and the order still Pending;
// anything later yields a StatusConflictError. The driver's display name is
// denormalized onto the order.
func (h *AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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

	driver, err := uow.UserRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if driver.Role() != account.RoleDriver {
		return errs.NewPermissionDeniedError("only drivers can take orders")
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Assign(driver.ID(), driver.Name()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
