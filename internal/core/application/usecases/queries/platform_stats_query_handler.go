package queries

import (
	"context"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/account"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/donation"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// PlatformStatsQueryHandler computes the administrator's dashboard numbers
// with grouped counts in the database.
type PlatformStatsQueryHandler struct {
	db *gorm.DB
}

// NewPlatformStatsQueryHandler creates a handler for platform statistics.
// Requires a GORM database connection for query execution.
func NewPlatformStatsQueryHandler(db *gorm.DB) PlatformStatsQueryHandler {
	return PlatformStatsQueryHandler{db: db}
}

// Handle executes the grouped counts for donations, orders, and users.
func (h PlatformStatsQueryHandler) Handle(
	ctx context.Context,
	query PlatformStatsQuery,
) (PlatformStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return PlatformStatsQueryResponse{}, err
	}

	var resp PlatformStatsQueryResponse

	donationCounts, err := h.countByKey(ctx, `SELECT status, COUNT(*) FROM donations GROUP BY status`)
	if err != nil {
		return PlatformStatsQueryResponse{}, err
	}
	for status, count := range donationCounts {
		resp.Donations.Total += count
		switch donation.Status(status) {
		case donation.Available:
			resp.Donations.Available = count
		case donation.Claimed:
			resp.Donations.Claimed = count
		case donation.PickedUp:
			resp.Donations.PickedUp = count
		case donation.Delivered:
			resp.Donations.Delivered = count
		}
	}

	orderCounts, err := h.countByKey(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return PlatformStatsQueryResponse{}, err
	}
	for status, count := range orderCounts {
		resp.Orders.Total += count
		switch order.Status(status) {
		case order.Pending:
			resp.Orders.Pending = count
		case order.Assigned:
			resp.Orders.Assigned = count
		case order.InTransit:
			resp.Orders.InTransit = count
		case order.Delivered:
			resp.Orders.Delivered = count
		}
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT role, COUNT(*) FROM users GROUP BY role`).Rows()
	if err != nil {
		return PlatformStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var role string
		var count int64
		if err = rows.Scan(&role, &count); err != nil {
			return PlatformStatsQueryResponse{}, err
		}

		resp.Users.Total += count
		switch account.Role(role) {
		case account.RoleDonor:
			resp.Users.Donors = count
		case account.RoleRecipient:
			resp.Users.Recipients = count
		case account.RoleDriver:
			resp.Users.Drivers = count
		}
	}

	if err = rows.Err(); err != nil {
		return PlatformStatsQueryResponse{}, err
	}

	return resp, nil
}

func (h PlatformStatsQueryHandler) countByKey(ctx context.Context, sql string) (map[int]int64, error) {
	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int]int64)
	for rows.Next() {
		var key int
		var count int64
		if err = rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		counts[key] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
