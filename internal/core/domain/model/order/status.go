package order

import (
	"fmt"

	"github.com/spantra1997/SecondServe/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow:
//
//	pending ──> assigned ──> in_transit ──> delivered
//
// The path is strictly linear and forward-only: there is no reassignment,
// no skipping, and no reverse transition. Status is a value object that
// validates state transitions and provides the wire representation used by
// the API and the database.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created order.
	// Pending orders form the drivers' work queue and have no driver yet.
	Pending

	// Assigned indicates a driver has claimed the order.
	Assigned

	// InTransit indicates the driver has picked the food up and is on the way.
	InTransit

	// Delivered indicates the order reached the recipient.
	// This is the final state with no further transitions allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		InTransit: "in_transit",
		Delivered: "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		InTransit: "in_transit",
		Delivered: "delivered",
	}
}

// StatusFromString parses the wire representation of an order status, as
// received in advance requests and stored rows.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("order status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is one of the four lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ValidateCanHaveDriver validates the consistency between order status and
// driver assignment: a driver is set if and only if the order has left
// Pending.
func (s Status) ValidateCanHaveDriver(driver bool) error {
	if driver && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%s order cannot have a driver", s.String()))
	}

	if !driver && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%s order must have a driver", s.String()))
	}

	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transition: Pending -> Assigned only. An already-assigned (or later)
// order yields a StatusConflictError, so a second driver racing for the same
// order loses cleanly and observes no state change.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, errs.NewStatusConflictError("order", "status", s.String())
	}

	return Assigned, nil
}

// AdvanceTo validates a requested forward edge and returns the new status.
//
// The only permitted edges are Assigned -> InTransit and
// InTransit -> Delivered; any other requested target yields an
// InvalidTransitionError naming both endpoints.
func (s Status) AdvanceTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if (s == Assigned && target == InTransit) || (s == InTransit && target == Delivered) {
		return target, nil
	}

	return 0, errs.NewInvalidTransitionError("order status", s.String(), target.String())
}
