package account

import (
	"fmt"

	"github.com/spantra1997/SecondServe/internal/pkg/errs"
)

// Role identifies what a user is allowed to do on the platform. Role claims
// arrive from the external identity collaborator and are trusted as-is; the
// engine never re-derives them.
type Role string

const (
	// RoleDonor posts surplus-food donations.
	RoleDonor Role = "donor"

	// RoleRecipient claims donations by creating orders.
	RoleRecipient Role = "recipient"

	// RoleDriver fulfills orders: self-assigns and advances them to delivery.
	RoleDriver Role = "driver"

	// RoleAdmin has unfiltered read access to donations, orders, and stats.
	RoleAdmin Role = "admin"
)

// AllRoles lists every valid role, in a stable order used for reporting.
func AllRoles() []Role {
	return []Role{RoleDonor, RoleRecipient, RoleDriver, RoleAdmin}
}

// RoleFromString parses a role claim supplied by the identity collaborator.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks the role is one of the four known claims.
func (r Role) Validate() error {
	switch r {
	case RoleDonor, RoleRecipient, RoleDriver, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
