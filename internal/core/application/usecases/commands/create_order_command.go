package commands

import (
	"errors"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
	"github.com/spantra1997/SecondServe/internal/pkg/errs"
	"github.com/spantra1997/SecondServe/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a recipient's request to claim a donation.
// Creating the order and claiming the donation happen in one transaction, so
// at most one order ever exists per donation.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	donationID         kernel.UUID
	recipientID        kernel.UUID
	dietaryPreferences []string
	deliveryLocation   kernel.Location

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to claim a donation.
// Validates identifiers and the delivery location; the donation's
// availability is checked by the handler inside the transaction.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	donationID kernel.UUID,
	recipientID kernel.UUID,
	dietaryPreferences []string,
	deliveryLocation kernel.Location,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDonationID(donationID),
		cmd.setRecipientID(recipientID),
		cmd.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.dietaryPreferences = dietaryPreferences
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DonationID returns the identifier of the donation being claimed.
func (c CreateOrderCommand) DonationID() kernel.UUID {
	return c.donationID
}

// RecipientID returns the identifier of the recipient placing the order.
func (c CreateOrderCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// DietaryPreferences returns the recipient's dietary preference tags.
func (c CreateOrderCommand) DietaryPreferences() []string {
	return c.dietaryPreferences
}

// DeliveryLocation returns where the food should be delivered.
func (c CreateOrderCommand) DeliveryLocation() kernel.Location {
	return c.deliveryLocation
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}

	c.donationID = donationID
	return nil
}

func (c *CreateOrderCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	c.recipientID = recipientID
	return nil
}

func (c *CreateOrderCommand) setDeliveryLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery location", err)
	}

	c.deliveryLocation = location
	return nil
}
