package queries

import (
	"context"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// CO2PerMealKg is the estimated CO2 saving of one rescued meal, in
// kilograms. Based on average food production and disposal emissions.
const CO2PerMealKg = 2.5

// ImpactStatsQueryHandler computes the public impact numbers from delivered
// orders.
type ImpactStatsQueryHandler struct {
	db *gorm.DB
}

// NewImpactStatsQueryHandler creates a handler for impact statistics.
// Requires a GORM database connection for query execution.
func NewImpactStatsQueryHandler(db *gorm.DB) ImpactStatsQueryHandler {
	return ImpactStatsQueryHandler{db: db}
}

// Handle counts delivered orders, the donors behind them, and the distinct
// cities they reached.
func (h ImpactStatsQueryHandler) Handle(
	ctx context.Context,
	query ImpactStatsQuery,
) (ImpactStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ImpactStatsQueryResponse{}, err
	}

	var resp ImpactStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(DISTINCT donor_id),
			COUNT(DISTINCT delivery_city)
		FROM orders
		WHERE status = ?
	`, order.Delivered).Row()

	if err := row.Scan(&resp.MealsRescued, &resp.ActiveDonors, &resp.Cities); err != nil {
		return ImpactStatsQueryResponse{}, err
	}

	// The public payload always reports at least one community served.
	if resp.Cities < 1 {
		resp.Cities = 1
	}

	resp.CO2SavedKg = float64(resp.MealsRescued) * CO2PerMealKg
	return resp, nil
}
