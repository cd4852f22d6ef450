package kernel

import (
	"errors"
	"fmt"

	"github.com/spantra1997/SecondServe/internal/pkg/errs"
	"github.com/spantra1997/SecondServe/internal/pkg/guard"
)

const (
	// LatitudeMin is the southernmost valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the northernmost valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the westernmost valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the easternmost valid longitude in degrees.
	LongitudeMax = 180.0
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via NewLocation to ensure
// validity.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is an immutable value object describing a geographic place: a human
// readable street address, the city it belongs to, and WGS84 coordinates.
// It is used both for where a donation is picked up and where an order is
// delivered; an order snapshots the donation's Location at creation time rather
// than referencing it.
//
// The zero value of Location is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	loc, err := kernel.NewLocation("12 Baker Street", "London", 51.52, -0.15)
//	if err != nil {
//	    // Handle validation error
//	}
type Location struct { //nolint:recvcheck //using for validation
	address string
	city    string
	lat     float64
	lng     float64
	guard   guard.ConstructorGuard
}

// NewLocation creates a Location from an address, a city, and coordinates.
// Address and city must be non-empty; latitude must lie within
// [LatitudeMin, LatitudeMax] and longitude within [LongitudeMin, LongitudeMax].
// All violations are reported together as a joined error.
func NewLocation(address, city string, lat, lng float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setAddress(address),
		loc.setCity(city),
		loc.setLat(lat),
		loc.setLng(lng),
	); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Address returns the street address.
func (l Location) Address() string {
	return l.address
}

// City returns the city name.
func (l Location) City() string {
	return l.city
}

// Lat returns the latitude in degrees.
func (l Location) Lat() float64 {
	return l.lat
}

// Lng returns the longitude in degrees.
func (l Location) Lng() float64 {
	return l.lng
}

// IsEqual compares two locations field by field.
func (l Location) IsEqual(other Location) bool {
	return l.address == other.address &&
		l.city == other.city &&
		l.lat == other.lat &&
		l.lng == other.lng
}

// String implements fmt.Stringer for logging and error messages.
func (l Location) String() string {
	return fmt.Sprintf("%s, %s (%.5f, %.5f)", l.address, l.city, l.lat, l.lng)
}

// Validate ensures the Location was created through NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l *Location) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	l.address = address
	return nil
}

func (l *Location) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	l.city = city
	return nil
}

func (l *Location) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}
	l.lat = lat
	return nil
}

func (l *Location) setLng(lng float64) error {
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, LongitudeMin, LongitudeMax)
	}
	l.lng = lng
	return nil
}
