package donation

import (
	"errors"
	"fmt"
	"time"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
	"github.com/spantra1997/SecondServe/internal/pkg/errs"
)

// ErrDonationIsNotConstructed is returned when a Donation instance was not
// created through NewDonation or RestoreDonation. This ensures all donations
// are properly validated.
var ErrDonationIsNotConstructed = errors.New(
	"Donation must be created via NewDonation or RestoreDonation constructor")

// Donation is the aggregate root for a surplus-food offer. It manages the
// donation lifecycle from posting through claiming to delivery.
//
// Donation follows these invariants:
//   - Must have a valid unique identifier and donor reference
//   - Food type, quantity, and expiry date are required
//   - Expiry date is strictly after the prepared-at time when both are present,
//     and must still be in the future when the donation is first posted
//   - Status transitions follow the linear available/claimed/picked_up/delivered
//     path and are only applied by the fulfillment engine
//   - A delivered donation never changes again
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. The version field supports optimistic
// concurrency control in the storage layer.
type Donation struct {
	id          kernel.UUID
	donorID     kernel.UUID
	donorName   string
	foodType    string
	quantity    string
	preparedAt  *time.Time
	expiryDate  time.Time
	description string
	photoURL    string
	location    kernel.Location
	status      Status
	version     int
	createdAt   time.Time

	isConstructed bool
}

// NewDonation creates a donation in Available status.
// Description and photoURL are optional; preparedAt may be nil when the donor
// did not record it. All required fields are validated together.
func NewDonation(
	id kernel.UUID,
	donorID kernel.UUID,
	donorName string,
	foodType string,
	quantity string,
	preparedAt *time.Time,
	expiryDate time.Time,
	description string,
	photoURL string,
	location kernel.Location,
) (*Donation, error) {
	d := &Donation{
		status:        Available,
		version:       1,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setDonor(donorID, donorName),
		d.setFoodType(foodType),
		d.setQuantity(quantity),
		d.setExpiry(preparedAt, expiryDate),
		checkExpiryInFuture(expiryDate, d.createdAt),
		d.setLocation(location),
	); err != nil {
		return nil, err
	}

	d.description = description
	d.photoURL = photoURL
	return d, nil
}

// RestoreDonation reconstructs a Donation aggregate from persistent storage,
// including its status, version, and creation time. The restored donation
// behaves identically to one created through normal domain operations.
func RestoreDonation(
	id kernel.UUID,
	donorID kernel.UUID,
	donorName string,
	foodType string,
	quantity string,
	preparedAt *time.Time,
	expiryDate time.Time,
	description string,
	photoURL string,
	location kernel.Location,
	status Status,
	version int,
	createdAt time.Time,
) (*Donation, error) {
	d := &Donation{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setDonor(donorID, donorName),
		d.setFoodType(foodType),
		d.setQuantity(quantity),
		d.setExpiry(preparedAt, expiryDate),
		d.setLocation(location),
		d.setStatus(status),
		d.setVersion(version),
	); err != nil {
		return nil, err
	}

	d.description = description
	d.photoURL = photoURL
	return d, nil
}

// Validate ensures the Donation instance was properly constructed.
// Call when reconstructing donations from persistence to ensure integrity.
func (d *Donation) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDonationIsNotConstructed
	}
	return nil
}

// IsEqual compares two donations by their unique identifiers.
func (d *Donation) IsEqual(other *Donation) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the donation's unique identifier.
func (d *Donation) ID() kernel.UUID {
	return d.id
}

// DonorID returns the posting donor's identifier.
func (d *Donation) DonorID() kernel.UUID {
	return d.donorID
}

// DonorName returns the posting donor's display name.
func (d *Donation) DonorName() string {
	return d.donorName
}

// FoodType returns the free-form food description.
func (d *Donation) FoodType() string {
	return d.foodType
}

// Quantity returns the free-form quantity description.
func (d *Donation) Quantity() string {
	return d.quantity
}

// PreparedAt returns when the food was prepared, nil if not recorded.
func (d *Donation) PreparedAt() *time.Time {
	return d.preparedAt
}

// ExpiryDate returns when the food expires.
func (d *Donation) ExpiryDate() time.Time {
	return d.expiryDate
}

// Description returns the optional free-form description.
func (d *Donation) Description() string {
	return d.description
}

// PhotoURL returns the optional photo URL.
func (d *Donation) PhotoURL() string {
	return d.photoURL
}

// Location returns the pickup location of the donation.
func (d *Donation) Location() kernel.Location {
	return d.location
}

// Status returns the current lifecycle status.
func (d *Donation) Status() Status {
	return d.status
}

// Version returns the optimistic-concurrency version of the aggregate.
func (d *Donation) Version() int {
	return d.version
}

// CreatedAt returns when the donation was posted.
func (d *Donation) CreatedAt() time.Time {
	return d.createdAt
}

// Claim moves the donation from Available to Claimed. Called by the
// fulfillment engine when an order is created against the donation; returns a
// StatusConflictError when the donation is no longer available, which is how
// the loser of a claim race learns it lost.
func (d *Donation) Claim() error {
	newStatus, err := d.status.Claim()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// MarkPickedUp moves the donation from Claimed to PickedUp. Called by the
// fulfillment engine when the linked order goes in transit.
func (d *Donation) MarkPickedUp() error {
	newStatus, err := d.status.PickUp()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// MarkDelivered moves the donation from PickedUp to Delivered, its final
// state. Called by the fulfillment engine when the linked order is delivered.
func (d *Donation) MarkDelivered() error {
	newStatus, err := d.status.Deliver()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

func (d *Donation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Donation) setDonor(donorID kernel.UUID, donorName string) error {
	if err := donorID.Validate(); err != nil {
		return err
	}
	if donorName == "" {
		return errs.NewValueIsRequiredError("donor name")
	}
	d.donorID = donorID
	d.donorName = donorName
	return nil
}

func (d *Donation) setFoodType(foodType string) error {
	if foodType == "" {
		return errs.NewValueIsRequiredError("food type")
	}
	d.foodType = foodType
	return nil
}

func (d *Donation) setQuantity(quantity string) error {
	if quantity == "" {
		return errs.NewValueIsRequiredError("quantity")
	}
	d.quantity = quantity
	return nil
}

func (d *Donation) setExpiry(preparedAt *time.Time, expiryDate time.Time) error {
	if expiryDate.IsZero() {
		return errs.NewValueIsRequiredError("expiry date")
	}
	if preparedAt != nil && !expiryDate.After(*preparedAt) {
		return errs.NewValueIsInvalidErrorWithCause("expiry date",
			fmt.Errorf("expiry %s is not after prepared time %s",
				expiryDate.Format(time.RFC3339), preparedAt.Format(time.RFC3339)))
	}
	d.preparedAt = preparedAt
	d.expiryDate = expiryDate
	return nil
}

// checkExpiryInFuture rejects already-expired food at posting time. Only
// NewDonation applies it; RestoreDonation must round-trip rows whose expiry
// has since passed.
func checkExpiryInFuture(expiryDate, now time.Time) error {
	if expiryDate.IsZero() || expiryDate.After(now) {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("expiry date",
		fmt.Errorf("expiry %s is not in the future", expiryDate.Format(time.RFC3339)))
}

func (d *Donation) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = location
	return nil
}

func (d *Donation) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Donation) setVersion(version int) error {
	if version <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not greater than 0", version))
	}
	d.version = version
	return nil
}
