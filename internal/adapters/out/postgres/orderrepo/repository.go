package orderrepo

import (
	"context"
	"errors"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/order"
	"github.com/spantra1997/SecondServe/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
//
// The write carries a compare-and-swap on the version column: the row is only
// updated if it still holds the version this aggregate was loaded with. A
// zero row count means a concurrent writer got there first, reported as a
// StatusConflictError so the caller's transaction aborts cleanly. This is
// what serializes two drivers racing for the same pending order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStatusConflictError("order", aggregate.ID().String(), "modified concurrently")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByDonation retrieves the order fulfilling the given donation.
func (r *GormOrderRepository) GetByDonation(
	ctx context.Context, donationID kernel.UUID,
) (*order.Order, error) {
	if err := donationID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "donation_id = ?", donationID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order for donation", donationID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves all unassigned orders, oldest first.
func (r *GormOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Where("status = ? AND driver_id IS NULL", order.Pending).
		Order("created_at ASC, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByRecipient retrieves all orders placed by the given recipient, newest first.
func (r *GormOrderRepository) GetAllByRecipient(
	ctx context.Context, recipientID kernel.UUID,
) ([]*order.Order, error) {
	return r.getAllBy(ctx, "recipient_id = ?", recipientID)
}

// GetAllByDriver retrieves all orders assigned to the given driver, newest first.
func (r *GormOrderRepository) GetAllByDriver(
	ctx context.Context, driverID kernel.UUID,
) ([]*order.Order, error) {
	return r.getAllBy(ctx, "driver_id = ?", driverID)
}

// GetAllByDonor retrieves all orders against the given donor's donations, newest first.
func (r *GormOrderRepository) GetAllByDonor(
	ctx context.Context, donorID kernel.UUID,
) ([]*order.Order, error) {
	return r.getAllBy(ctx, "donor_id = ?", donorID)
}

func (r *GormOrderRepository) getAllBy(
	ctx context.Context, condition string, id kernel.UUID,
) ([]*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Where(condition, id.Bytes()).
		Order("created_at DESC, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
