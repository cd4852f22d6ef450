package queries

import (
	"context"
	"time"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/donation"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListDonationsQueryHandler retrieves donation listings from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListDonationsQueryHandler struct {
	db *gorm.DB
}

// NewListDonationsQueryHandler creates a handler for donation listing queries.
// Requires a GORM database connection for query execution.
func NewListDonationsQueryHandler(db *gorm.DB) ListDonationsQueryHandler {
	return ListDonationsQueryHandler{db: db}
}

// Handle executes the query to retrieve donations, newest first.
func (h ListDonationsQueryHandler) Handle(
	ctx context.Context,
	query ListDonationsQuery,
) ([]ListDonationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
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
	`
	var args []any
	switch {
	case query.Status() != donation.Unknown && query.DonorID() != nil:
		sql += ` WHERE status = ? AND donor_id = ?`
		args = append(args, query.Status(), query.DonorID().String())
	case query.Status() != donation.Unknown:
		sql += ` WHERE status = ?`
		args = append(args, query.Status())
	case query.DonorID() != nil:
		sql += ` WHERE donor_id = ?`
		args = append(args, query.DonorID().String())
	}
	sql += ` ORDER BY created_at DESC, id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	donations := make([]ListDonationsQueryResponse, 0)
	for rows.Next() {
		var resp ListDonationsQueryResponse
		var id, donorID uuid.UUID
		var address, city string
		var lat, lng float64
		var status int
		var preparedAt *time.Time

		err = rows.Scan(
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
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.DonorID, err = kernel.UUIDFromBytes(donorID[:]); err != nil {
			return nil, err
		}
		if resp.Location, err = kernel.NewLocation(address, city, lat, lng); err != nil {
			return nil, err
		}

		resp.PreparedAt = preparedAt
		resp.Status = donation.Status(status)
		donations = append(donations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return donations, nil
}
