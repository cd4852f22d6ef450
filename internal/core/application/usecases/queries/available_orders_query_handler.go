package queries

import (
	"context"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// AvailableOrdersQueryHandler retrieves the pending order queue from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type AvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewAvailableOrdersQueryHandler creates a handler for pending queue queries.
// Requires a GORM database connection for query execution.
func NewAvailableOrdersQueryHandler(db *gorm.DB) AvailableOrdersQueryHandler {
	return AvailableOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve pending unassigned orders.
// Results come oldest first so drivers work the queue in arrival order.
func (h AvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query AvailableOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		listOrdersColumns+` WHERE status = ? AND driver_id IS NULL ORDER BY created_at ASC, id`,
		order.Pending,
	).Rows()
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
