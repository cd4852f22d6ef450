package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/donation"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
	"github.com/spantra1997/SecondServe/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDonationQueryHandler retrieves a single donation from the database.
type GetDonationQueryHandler struct {
	db *gorm.DB
}

// NewGetDonationQueryHandler creates a handler for single donation lookups.
// Requires a GORM database connection for query execution.
func NewGetDonationQueryHandler(db *gorm.DB) GetDonationQueryHandler {
	return GetDonationQueryHandler{db: db}
}

// Handle executes the query to retrieve one donation by ID.
func (h GetDonationQueryHandler) Handle(
	ctx context.Context,
	query GetDonationQuery,
) (ListDonationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListDonationsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			donor_id,
			donor_name,
			food_type,
			quantity,
			prepared_at,
			expiry_date,
			description,
			photo_url,
			address,
			city,
			lat,
			lng,
			status,
			created_at
		FROM donations
		WHERE id = ?
	`, query.DonationID().String()).Row()

	var resp ListDonationsQueryResponse
	var id, donorID uuid.UUID
	var address, city string
	var lat, lng float64
	var status int
	var preparedAt *time.Time

	err := row.Scan(
		&id,
		&donorID,
		&resp.DonorName,
		&resp.FoodType,
		&resp.Quantity,
		&preparedAt,
		&resp.ExpiryDate,
		&resp.Description,
		&resp.PhotoURL,
		&address,
		&city,
		&lat,
		&lng,
		&status,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ListDonationsQueryResponse{}, errs.NewObjectNotFoundError(
				"donation", query.DonationID().String(),
			)
		}
		return ListDonationsQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ListDonationsQueryResponse{}, err
	}
	if resp.DonorID, err = kernel.UUIDFromBytes(donorID[:]); err != nil {
		return ListDonationsQueryResponse{}, err
	}
	if resp.Location, err = kernel.NewLocation(address, city, lat, lng); err != nil {
		return ListDonationsQueryResponse{}, err
	}

	resp.PreparedAt = preparedAt
	resp.Status = donation.Status(status)
	return resp, nil
}
