// Package userrepo provides data transfer objects and mapping functions for user persistence.
// This package implements the repository pattern for the user aggregate, handling
// the conversion between domain entities and database representations.
package userrepo

import (
	"time"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/account"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// The email carries a unique index, which backs the registration conflict
// check.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex"`
	Name      string    `gorm:"type:varchar(255)"`
	Role      string    `gorm:"type:varchar(32);index"`
	Phone     string    `gorm:"type:varchar(64)"`
	CreatedAt time.Time `gorm:"type:timestamptz;index"`
}

// TableName specifies the database table name for user entities.
// Overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *account.User) UserDTO {
	return UserDTO{
		ID:        aggregate.ID().Bytes(),
		Email:     aggregate.Email(),
		Name:      aggregate.Name(),
		Role:      aggregate.Role().String(),
		Phone:     aggregate.Phone(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(id, dto.Email, dto.Name, account.Role(dto.Role), dto.Phone, dto.CreatedAt)
}
