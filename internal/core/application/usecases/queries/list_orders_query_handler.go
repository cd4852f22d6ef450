package queries

import (
	"context"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const listOrdersColumns = `
		SELECT
			id,
			donation_id,
			recipient_id,
			recipient_name,
			donor_id,
			driver_id,
			driver_name,
			dietary_preferences,
			pickup_address,
			pickup_city,
			pickup_lat,
			pickup_lng,
			delivery_address,
			delivery_city,
			delivery_lat,
			delivery_lng,
			status,
			created_at
		FROM orders
`

// ListOrdersQueryHandler retrieves orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve orders, newest first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := listOrdersColumns
	var args []any
	switch {
	case query.RecipientID() != nil:
		sql += ` WHERE recipient_id = ?`
		args = append(args, query.RecipientID().String())
	case query.DriverID() != nil:
		sql += ` WHERE driver_id = ?`
		args = append(args, query.DriverID().String())
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

	orders := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderRow maps one orders row onto the read model. Shared with the
// available-orders query, which selects the same columns.
func scanOrderRow(rows interface {
	Scan(dest ...any) error
},
) (ListOrdersQueryResponse, error) {
	var resp ListOrdersQueryResponse
	var id, donationID, recipientID, donorID uuid.UUID
	var driverID *uuid.UUID
	var driverName *string
	var preferences pq.StringArray
	var pickupAddress, pickupCity string
	var pickupLat, pickupLng float64
	var deliveryAddress, deliveryCity string
	var deliveryLat, deliveryLng float64
	var status int

	err := rows.Scan(
		&id,
		&donationID,
		&recipientID,
		&resp.RecipientName,
		&donorID,
		&driverID,
		&driverName,
		&preferences,
		&pickupAddress,
		&pickupCity,
		&pickupLat,
		&pickupLng,
		&deliveryAddress,
		&deliveryCity,
		&deliveryLat,
		&deliveryLng,
		&status,
		&resp.CreatedAt,
	)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ListOrdersQueryResponse{}, err
	}
	if resp.DonationID, err = kernel.UUIDFromBytes(donationID[:]); err != nil {
		return ListOrdersQueryResponse{}, err
	}
	if resp.RecipientID, err = kernel.UUIDFromBytes(recipientID[:]); err != nil {
		return ListOrdersQueryResponse{}, err
	}
	if resp.DonorID, err = kernel.UUIDFromBytes(donorID[:]); err != nil {
		return ListOrdersQueryResponse{}, err
	}
	if driverID != nil {
		converted, idErr := kernel.UUIDFromBytes(driverID[:])
		if idErr != nil {
			return ListOrdersQueryResponse{}, idErr
		}
		resp.DriverID = &converted
	}
	if driverName != nil {
		resp.DriverName = *driverName
	}

	if resp.PickupLocation, err = kernel.NewLocation(
		pickupAddress, pickupCity, pickupLat, pickupLng); err != nil {
		return ListOrdersQueryResponse{}, err
	}
	if resp.DeliveryLocation, err = kernel.NewLocation(
		deliveryAddress, deliveryCity, deliveryLat, deliveryLng); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	resp.DietaryPreferences = preferences
	resp.Status = order.Status(status)
	return resp, nil
}
