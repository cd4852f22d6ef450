// Package donationrepo provides data transfer objects and mapping functions for donation persistence.
// This package implements the repository pattern for the donation domain aggregate, handling
// the conversion between domain entities and database representations.
package donationrepo

import (
	"time"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/donation"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DonationDTO represents the database structure for persisting donation aggregates.
// Maps donation domain entities to relational database tables with proper indexing
// for efficient querying by status and donor.
type DonationDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	DonorID     uuid.UUID   `gorm:"type:uuid;index"`
	DonorName   string      `gorm:"type:varchar(255)"`
	FoodType    string      `gorm:"type:varchar(255)"`
	Quantity    string      `gorm:"type:varchar(255)"`
	PreparedAt  *time.Time  `gorm:"type:timestamptz"`
	ExpiryDate  time.Time   `gorm:"type:timestamptz"`
	Description string      `gorm:"type:text"`
	PhotoURL    string      `gorm:"type:text"`
	Location    LocationDTO `gorm:"embedded"`
	Status      int         `gorm:"index"`
	Version     int
	CreatedAt   time.Time `gorm:"type:timestamptz;index"`
}

// TableName specifies the database table name for donation entities.
// Overrides GORM's default naming convention to use "donations".
func (DonationDTO) TableName() string {
	return "donations"
}

// LocationDTO represents the embedded pickup location within the donation table.
type LocationDTO struct {
	Address string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(255);index"`
	Lat     float64
	Lng     float64
}

// fromDomain converts a donation domain aggregate to its database representation.
func fromDomain(aggregate *donation.Donation) DonationDTO {
	return DonationDTO{
		ID:          aggregate.ID().Bytes(),
		DonorID:     aggregate.DonorID().Bytes(),
		DonorName:   aggregate.DonorName(),
		FoodType:    aggregate.FoodType(),
		Quantity:    aggregate.Quantity(),
		PreparedAt:  aggregate.PreparedAt(),
		ExpiryDate:  aggregate.ExpiryDate(),
		Description: aggregate.Description(),
		PhotoURL:    aggregate.PhotoURL(),
		Location: LocationDTO{
			Address: aggregate.Location().Address(),
			City:    aggregate.Location().City(),
			Lat:     aggregate.Location().Lat(),
			Lng:     aggregate.Location().Lng(),
		},
		Status:    int(aggregate.Status()),
		Version:   aggregate.Version(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a donation domain aggregate.
// Reconstructs the complete aggregate including status and version using RestoreDonation.
func toDomain(dto DonationDTO) (*donation.Donation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	donorID, err := kernel.UUIDFromBytes(dto.DonorID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewLocation(dto.Location.Address, dto.Location.City, dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	return donation.RestoreDonation(
		id,
		donorID,
		dto.DonorName,
		dto.FoodType,
		dto.Quantity,
		dto.PreparedAt,
		dto.ExpiryDate,
		dto.Description,
		dto.PhotoURL,
		location,
		donation.Status(dto.Status),
		dto.Version,
		dto.CreatedAt,
	)
}
