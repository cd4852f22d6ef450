package ports

import (
	"context"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The stored row must still carry the version the aggregate was loaded
	// with; a version mismatch means a concurrent writer won and the update
	// fails with a StatusConflictError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByDonation retrieves the order fulfilling the given donation.
	// Returns an ObjectNotFoundError when the donation has no order.
	GetByDonation(ctx context.Context, donationID kernel.UUID) (*order.Order, error)

	// GetAllPending retrieves all unassigned orders, oldest first, so that
	// drivers work the queue in arrival order.
	GetAllPending(ctx context.Context) ([]*order.Order, error)

	// GetAllByRecipient retrieves all orders placed by the given recipient, newest first.
	GetAllByRecipient(ctx context.Context, recipientID kernel.UUID) ([]*order.Order, error)

	// GetAllByDriver retrieves all orders assigned to the given driver, newest first.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error)

	// GetAllByDonor retrieves all orders against the given donor's donations, newest first.
	GetAllByDonor(ctx context.Context, donorID kernel.UUID) ([]*order.Order, error)
}
