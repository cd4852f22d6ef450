package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
	"github.com/spantra1997/SecondServe/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root for a recipient's request against a donation.
// It manages the fulfillment lifecycle from creation through driver assignment
// to delivery.
//
// Order follows these invariants:
//   - Must reference exactly one donation, set at creation, immutable
//   - Must have a valid recipient, set at creation, immutable
//   - The driver is absent while Pending and immutable once set
//   - Pickup location is a snapshot of the donation's location
//   - Status transitions follow the pending/assigned/in_transit/delivered
//     path, strictly forward
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. The version field supports optimistic
// concurrency control in the storage layer.
type Order struct {
	id                 kernel.UUID
	donationID         kernel.UUID
	recipientID        kernel.UUID
	recipientName      string
	donorID            kernel.UUID
	driverID           *kernel.UUID
	driverName         string
	dietaryPreferences []string
	pickupLocation     kernel.Location
	deliveryLocation   kernel.Location
	status             Status
	version            int
	createdAt          time.Time

	isConstructed bool
}

// NewOrder creates an order in Pending status with no driver.
// The pickup location must be the donation's location snapshotted by the
// caller; dietaryPreferences is informational and may be empty.
func NewOrder(
	id kernel.UUID,
	donationID kernel.UUID,
	recipientID kernel.UUID,
	recipientName string,
	donorID kernel.UUID,
	dietaryPreferences []string,
	pickupLocation kernel.Location,
	deliveryLocation kernel.Location,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		version:       1,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDonationID(donationID),
		o.setRecipient(recipientID, recipientName),
		o.setDonorID(donorID),
		o.setPickupLocation(pickupLocation),
		o.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return nil, err
	}

	o.dietaryPreferences = dietaryPreferences
	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its status, driver assignment, version, and creation time.
// The driver/status combination is checked for consistency: a driver is
// present if and only if the order has left Pending.
func RestoreOrder(
	id kernel.UUID,
	donationID kernel.UUID,
	recipientID kernel.UUID,
	recipientName string,
	donorID kernel.UUID,
	driverID *kernel.UUID,
	driverName string,
	dietaryPreferences []string,
	pickupLocation kernel.Location,
	deliveryLocation kernel.Location,
	status Status,
	version int,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDonationID(donationID),
		o.setRecipient(recipientID, recipientName),
		o.setDonorID(donorID),
		o.setPickupLocation(pickupLocation),
		o.setDeliveryLocation(deliveryLocation),
		o.setStatus(status),
		o.setVersion(version),
		status.ValidateCanHaveDriver(driverID != nil),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		o.driverID = driverID
		o.driverName = driverName
	}

	o.dietaryPreferences = dietaryPreferences
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Call when reconstructing orders from persistence to ensure integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// DonationID returns the identifier of the claimed donation.
func (o *Order) DonationID() kernel.UUID {
	return o.donationID
}

// RecipientID returns the requesting recipient's identifier.
func (o *Order) RecipientID() kernel.UUID {
	return o.recipientID
}

// RecipientName returns the requesting recipient's display name.
func (o *Order) RecipientName() string {
	return o.recipientName
}

// DonorID returns the identifier of the donation's donor, denormalized so
// donors can list the orders against their donations.
func (o *Order) DonorID() kernel.UUID {
	return o.donorID
}

// Driver returns the assigned driver's ID, nil while the order is pending.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// DriverName returns the assigned driver's display name, empty while pending.
func (o *Order) DriverName() string {
	return o.driverName
}

// DietaryPreferences returns the informational dietary preference tags.
func (o *Order) DietaryPreferences() []string {
	return o.dietaryPreferences
}

// PickupLocation returns the snapshot of the donation's location.
func (o *Order) PickupLocation() kernel.Location {
	return o.pickupLocation
}

// DeliveryLocation returns where the recipient wants the food delivered.
func (o *Order) DeliveryLocation() kernel.Location {
	return o.deliveryLocation
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the optimistic-concurrency version of the aggregate.
func (o *Order) Version() int {
	return o.version
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Assign binds a driver to a pending order and moves it to Assigned.
//
// Business rules:
//   - The driver ID must be valid
//   - The order must be Pending; anything later yields a StatusConflictError,
//     so assigning an already-assigned order fails without altering state
//   - The driver never changes afterwards
func (o *Order) Assign(driverID kernel.UUID, driverName string) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if driverName == "" {
		return errs.NewValueIsRequiredError("driver name")
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	o.driverName = driverName
	return nil
}

// Advance requests a forward edge on behalf of a driver.
//
// Business rules:
//   - The only permitted edges are Assigned -> InTransit and
//     InTransit -> Delivered; anything else yields an InvalidTransitionError.
//     The edge is checked first, so advancing a pending order reports the
//     transition error rather than an ownership one
//   - Only the assigned driver may take a permitted edge; any other caller
//     gets a PermissionDeniedError and no state change
func (o *Order) Advance(callerDriverID kernel.UUID, target Status) error {
	if err := callerDriverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.AdvanceTo(target)
	if err != nil {
		return err
	}
	if o.driverID == nil || !o.driverID.IsEqual(callerDriverID) {
		return errs.NewPermissionDeniedError("only the assigned driver can advance an order")
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}
	o.donationID = donationID
	return nil
}

func (o *Order) setRecipient(recipientID kernel.UUID, recipientName string) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	if recipientName == "" {
		return errs.NewValueIsRequiredError("recipient name")
	}
	o.recipientID = recipientID
	o.recipientName = recipientName
	return nil
}

func (o *Order) setDonorID(donorID kernel.UUID) error {
	if err := donorID.Validate(); err != nil {
		return err
	}
	o.donorID = donorID
	return nil
}

func (o *Order) setPickupLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup location", err)
	}
	o.pickupLocation = location
	return nil
}

func (o *Order) setDeliveryLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery location", err)
	}
	o.deliveryLocation = location
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int) error {
	if version <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not greater than 0", version))
	}
	o.version = version
	return nil
}
