package commands

import (
	"errors"
	"time"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
	"github.com/spantra1997/SecondServe/internal/pkg/errs"
	"github.com/spantra1997/SecondServe/internal/pkg/guard"
)

var ErrCreateDonationCommandIsNotConstructed = errors.New(
	"CreateDonationCommand must be created via NewCreateDonationCommand constructor",
)

// CreateDonationCommand represents a donor's request to list surplus food.
// Encapsulates the donation details including the pickup location.
type CreateDonationCommand struct { //nolint:recvcheck //using for validation
	donationID  kernel.UUID
	donorID     kernel.UUID
	foodType    string
	quantity    string
	preparedAt  *time.Time
	expiryDate  time.Time
	description string
	photoURL    string
	location    kernel.Location

	guard guard.ConstructorGuard
}

// NewCreateDonationCommand creates a command to list a new donation.
// Validates identifiers, the pickup location, and the required food fields;
// expiry consistency is enforced by the Donation aggregate on handling.
func NewCreateDonationCommand(
	donationID kernel.UUID,
	donorID kernel.UUID,
	foodType string,
	quantity string,
	preparedAt *time.Time,
	expiryDate time.Time,
	description string,
	photoURL string,
	location kernel.Location,
) (CreateDonationCommand, error) {
	cmd := CreateDonationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDonationID(donationID),
		cmd.setDonorID(donorID),
		cmd.setFoodType(foodType),
		cmd.setQuantity(quantity),
		cmd.setExpiryDate(expiryDate),
		cmd.setLocation(location),
	); err != nil {
		return CreateDonationCommand{}, err
	}

	cmd.preparedAt = preparedAt
	cmd.description = description
	cmd.photoURL = photoURL
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDonationCommand) Validate() error {
	return c.guard.Validate(ErrCreateDonationCommandIsNotConstructed)
}

// DonationID returns the unique identifier for the new donation.
func (c CreateDonationCommand) DonationID() kernel.UUID {
	return c.donationID
}

// DonorID returns the identifier of the donor listing the food.
func (c CreateDonationCommand) DonorID() kernel.UUID {
	return c.donorID
}

// FoodType returns the kind of food being donated.
func (c CreateDonationCommand) FoodType() string {
	return c.foodType
}

// Quantity returns the free-form quantity description.
func (c CreateDonationCommand) Quantity() string {
	return c.quantity
}

// PreparedAt returns the optional preparation time.
func (c CreateDonationCommand) PreparedAt() *time.Time {
	return c.preparedAt
}

// ExpiryDate returns the time after which the food is no longer safe.
func (c CreateDonationCommand) ExpiryDate() time.Time {
	return c.expiryDate
}

// Description returns the optional free-form description.
func (c CreateDonationCommand) Description() string {
	return c.description
}

// PhotoURL returns the optional photo link.
func (c CreateDonationCommand) PhotoURL() string {
	return c.photoURL
}

// Location returns the pickup location of the food.
func (c CreateDonationCommand) Location() kernel.Location {
	return c.location
}

func (c *CreateDonationCommand) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}

	c.donationID = donationID
	return nil
}

func (c *CreateDonationCommand) setDonorID(donorID kernel.UUID) error {
	if err := donorID.Validate(); err != nil {
		return err
	}

	c.donorID = donorID
	return nil
}

func (c *CreateDonationCommand) setFoodType(foodType string) error {
	if foodType == "" {
		return errs.NewValueIsRequiredError("food type")
	}

	c.foodType = foodType
	return nil
}

func (c *CreateDonationCommand) setQuantity(quantity string) error {
	if quantity == "" {
		return errs.NewValueIsRequiredError("quantity")
	}

	c.quantity = quantity
	return nil
}

func (c *CreateDonationCommand) setExpiryDate(expiryDate time.Time) error {
	if expiryDate.IsZero() {
		return errs.NewValueIsRequiredError("expiry date")
	}

	c.expiryDate = expiryDate
	return nil
}

func (c *CreateDonationCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("location", err)
	}

	c.location = location
	return nil
}
