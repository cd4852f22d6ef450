package queries

import (
	"errors"

	"github.com/spantra1997/SecondServe/internal/pkg/guard"
)

var ErrAvailableOrdersQueryIsNotConstructed = errors.New(
	"AvailableOrdersQuery must be created via NewAvailableOrdersQuery constructor",
)

// AvailableOrdersQuery retrieves the drivers' work queue: every pending
// order that no driver has taken yet.
type AvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewAvailableOrdersQuery creates a query to retrieve the pending queue.
// This is a parameterless query.
func NewAvailableOrdersQuery() AvailableOrdersQuery {
	return AvailableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q AvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrAvailableOrdersQueryIsNotConstructed)
}
