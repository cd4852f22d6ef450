// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and the parties involved.
type OrderDTO struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	DonationID         uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	RecipientID        uuid.UUID      `gorm:"type:uuid;index"`
	RecipientName      string         `gorm:"type:varchar(255)"`
	DonorID            uuid.UUID      `gorm:"type:uuid;index"`
	DriverID           *uuid.UUID     `gorm:"type:uuid;index"`
	DriverName         *string        `gorm:"type:varchar(255)"`
	DietaryPreferences pq.StringArray `gorm:"type:text[]"`
	PickupLocation     LocationDTO    `gorm:"embedded;embeddedPrefix:pickup_"`
	DeliveryLocation   LocationDTO    `gorm:"embedded;embeddedPrefix:delivery_"`
	Status             int            `gorm:"index"`
	Version            int
	CreatedAt          time.Time `gorm:"type:timestamptz;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO represents an embedded location within the order table.
// Used twice, prefixed, for the pickup and delivery ends of the trip.
type LocationDTO struct {
	Address string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(255);index"`
	Lat     float64
	Lng     float64
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional driver assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	var driverName *string
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
		name := aggregate.DriverName()
		driverName = &name
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		DonationID:         aggregate.DonationID().Bytes(),
		RecipientID:        aggregate.RecipientID().Bytes(),
		RecipientName:      aggregate.RecipientName(),
		DonorID:            aggregate.DonorID().Bytes(),
		DriverID:           driverID,
		DriverName:         driverName,
		DietaryPreferences: aggregate.DietaryPreferences(),
		PickupLocation: LocationDTO{
			Address: aggregate.PickupLocation().Address(),
			City:    aggregate.PickupLocation().City(),
			Lat:     aggregate.PickupLocation().Lat(),
			Lng:     aggregate.PickupLocation().Lng(),
		},
		DeliveryLocation: LocationDTO{
			Address: aggregate.DeliveryLocation().Address(),
			City:    aggregate.DeliveryLocation().City(),
			Lat:     aggregate.DeliveryLocation().Lat(),
			Lng:     aggregate.DeliveryLocation().Lng(),
		},
		Status:    int(aggregate.Status()),
		Version:   aggregate.Version(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and driver assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	donationID, err := kernel.UUIDFromBytes(dto.DonationID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	donorID, err := kernel.UUIDFromBytes(dto.DonorID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	var driverName string
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}
	if dto.DriverName != nil {
		driverName = *dto.DriverName
	}

	pickup, err := kernel.NewLocation(
		dto.PickupLocation.Address, dto.PickupLocation.City,
		dto.PickupLocation.Lat, dto.PickupLocation.Lng)
	if err != nil {
		return nil, err
	}

	delivery, err := kernel.NewLocation(
		dto.DeliveryLocation.Address, dto.DeliveryLocation.City,
		dto.DeliveryLocation.Lat, dto.DeliveryLocation.Lng)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		donationID,
		recipientID,
		dto.RecipientName,
		donorID,
		driverID,
		driverName,
		dto.DietaryPreferences,
		pickup,
		delivery,
		order.Status(dto.Status),
		dto.Version,
		dto.CreatedAt,
	)
}
