package donation

import (
	"fmt"

	"github.com/spantra1997/SecondServe/internal/pkg/errs"
)

// Status represents the lifecycle state of a donation.
// It implements a state machine whose transitions are driven exclusively by
// the linked order:
//
//	available ──> claimed ──> picked_up ──> delivered
//
// The path is strictly linear: no state is skipped and no transition ever
// runs backwards. Status is a value object that validates state transitions
// and provides the wire representation used by the API and the database.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available is the initial status of a freshly posted donation.
	// Only available donations can be claimed by an order.
	Available

	// Claimed indicates an order exists for the donation and is either
	// pending or assigned to a driver.
	Claimed

	// PickedUp indicates the linked order is in transit.
	PickedUp

	// Delivered indicates the linked order has been delivered.
	// This is a final state; the donation is immutable afterwards.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Available: "available",
		Claimed:   "claimed",
		PickedUp:  "picked_up",
		Delivered: "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "available",
		Claimed:   "claimed",
		PickedUp:  "picked_up",
		Delivered: "delivered",
	}
}

// StatusFromString parses the wire representation of a donation status, as
// received in listing filters and stored rows.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("donation status",
		fmt.Errorf("%q is not a valid donation status", s))
}

// Validate checks if the Status value is one of the four lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("donation status",
			fmt.Errorf("%d is not a valid donation status", s))
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

// Claim transitions the status to Claimed when an order is created against
// the donation.
//
// Valid transition: Available -> Claimed. Any other origin yields a
// StatusConflictError: the donation has already been claimed (or worse), and
// the caller lost the race for it.
func (s Status) Claim() (Status, error) {
	if s != Available {
		return 0, errs.NewStatusConflictError("donation", "status", s.String())
	}
	return Claimed, nil
}

// PickUp transitions the status to PickedUp when the linked order goes in
// transit. Valid transition: Claimed -> PickedUp.
func (s Status) PickUp() (Status, error) {
	if s != Claimed {
		return 0, errs.NewInvalidTransitionError("donation status", s.String(), PickedUp.String())
	}
	return PickedUp, nil
}

// Deliver transitions the status to Delivered when the linked order is
// delivered. Valid transition: PickedUp -> Delivered. Delivered is final.
func (s Status) Deliver() (Status, error) {
	if s != PickedUp {
		return 0, errs.NewInvalidTransitionError("donation status", s.String(), Delivered.String())
	}
	return Delivered, nil
}
