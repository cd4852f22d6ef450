package donationrepo

import (
	"context"
	"errors"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/donation"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
	"github.com/spantra1997/SecondServe/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDonationRepository implements DonationRepository using GORM.
type GormDonationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDonationRepository creates a new GORM donation repository.
func NewGormDonationRepository(db *gorm.DB, tracker aggregateTracker) *GormDonationRepository {
	return &GormDonationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new donation to the database.
func (r *GormDonationRepository) Add(ctx context.Context, aggregate *donation.Donation) error {
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

// Update saves an existing donation to the database.
//
// The write carries a compare-and-swap on the version column: the row is only
// updated if it still holds the version this aggregate was loaded with. A
// zero row count means a concurrent writer got there first, reported as a
// StatusConflictError so the caller's transaction aborts cleanly.
func (r *GormDonationRepository) Update(ctx context.Context, aggregate *donation.Donation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&DonationDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStatusConflictError("donation", aggregate.ID().String(), "modified concurrently")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a donation by ID.
func (r *GormDonationRepository) Get(ctx context.Context, id kernel.UUID) (*donation.Donation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DonationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("donation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all donations, newest first.
func (r *GormDonationRepository) GetAll(ctx context.Context) ([]*donation.Donation, error) {
	var dtos []DonationDTO
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByStatus retrieves all donations in the given status, newest first.
func (r *GormDonationRepository) GetAllByStatus(
	ctx context.Context, status donation.Status,
) ([]*donation.Donation, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []DonationDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", int(status)).
		Order("created_at DESC, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByDonor retrieves all donations created by the given donor, newest first.
func (r *GormDonationRepository) GetAllByDonor(
	ctx context.Context, donorID kernel.UUID,
) ([]*donation.Donation, error) {
	if err := donorID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DonationDTO
	if err := r.db.WithContext(ctx).
		Where("donor_id = ?", donorID.Bytes()).
		Order("created_at DESC, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []DonationDTO) ([]*donation.Donation, error) {
	donations := make([]*donation.Donation, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		donations = append(donations, d)
	}

	return donations, nil
}
