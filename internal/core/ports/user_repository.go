package ports

import (
	"context"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/account"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	// The user must be valid and the email must not already be registered.
	Add(ctx context.Context, aggregate *account.User) error

	// Get retrieves a user aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such user exists.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByEmail retrieves a user aggregate by its normalized email.
	// Returns an ObjectNotFoundError when no such user exists.
	GetByEmail(ctx context.Context, email string) (*account.User, error)

	// GetAll retrieves all registered users, newest first.
	GetAll(ctx context.Context) ([]*account.User, error)
}
