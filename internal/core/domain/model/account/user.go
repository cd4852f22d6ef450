package account

import (
	"errors"
	"strings"
	"time"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
	"github.com/spantra1997/SecondServe/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser. This ensures all users are properly
// validated.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User is the aggregate root for a registered profile. It exists so the
// aggregation reporter can count users per role and so orders can carry the
// denormalized names of the people involved; it carries no credentials.
//
// User follows these invariants:
//   - Must have a valid unique identifier
//   - Email and name are non-empty; email is stored lowercased
//   - Role is one of the four known claims and immutable after creation
type User struct {
	id        kernel.UUID
	email     string
	name      string
	role      Role
	phone     string
	createdAt time.Time

	isConstructed bool
}

// NewUser creates a user profile at registration time.
// Phone is optional; everything else is validated.
func NewUser(id kernel.UUID, email, name string, role Role, phone string) (*User, error) {
	user := &User{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setEmail(email),
		user.setName(name),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	user.phone = phone
	return user, nil
}

// RestoreUser reconstructs a User aggregate from persistent storage,
// preserving its original creation time.
func RestoreUser(id kernel.UUID, email, name string, role Role, phone string, createdAt time.Time) (*User, error) {
	user := &User{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setEmail(email),
		user.setName(name),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	user.phone = phone
	return user, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the lowercased email address.
func (u *User) Email() string {
	return u.email
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Role returns the user's role claim.
func (u *User) Role() Role {
	return u.role
}

// Phone returns the optional phone number, empty when not provided.
func (u *User) Phone() string {
	return u.phone
}

// CreatedAt returns when the profile was registered.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
