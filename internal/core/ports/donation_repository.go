// Package ports defines repository interfaces for the donation platform.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/donation"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
)

// DonationRepository defines the persistence contract for donation aggregates.
type DonationRepository interface {
	// Add persists a new donation aggregate to storage.
	// The donation must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *donation.Donation) error

	// Update persists changes to an existing donation aggregate.
	// The stored row must still carry the version the aggregate was loaded
	// with; a version mismatch means a concurrent writer won and the update
	// fails with a StatusConflictError.
	Update(ctx context.Context, aggregate *donation.Donation) error

	// Get retrieves a donation aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such donation exists.
	Get(ctx context.Context, id kernel.UUID) (*donation.Donation, error)

	// GetAll retrieves all donations, newest first.
	GetAll(ctx context.Context) ([]*donation.Donation, error)

	// GetAllByStatus retrieves all donations in the given status, newest first.
	GetAllByStatus(ctx context.Context, status donation.Status) ([]*donation.Donation, error)

	// GetAllByDonor retrieves all donations created by the given donor, newest first.
	GetAllByDonor(ctx context.Context, donorID kernel.UUID) ([]*donation.Donation, error)
}
