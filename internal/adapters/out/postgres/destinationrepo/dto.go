// Package destinationrepo provides data transfer objects and mapping functions
// for delivery destination persistence.
package destinationrepo

import (
	"fueldispatch/internal/core/domain/model/destination"
	"fueldispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DestinationDTO represents the database structure for persisting delivery
// destinations with their geographic coordinates.
type DestinationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:varchar(512)"`
	Longitude float64   `gorm:"not null"`
	Latitude  float64   `gorm:"not null"`
	Active    bool
}

// TableName specifies the database table name for destination entities.
// Overrides GORM's default naming convention to use "destinations".
func (DestinationDTO) TableName() string {
	return "destinations"
}

// fromDomain converts a destination domain aggregate to its database
// representation.
func fromDomain(dest *destination.Destination) DestinationDTO {
	return DestinationDTO{
		ID:        dest.ID().Bytes(),
		Name:      dest.Name(),
		Address:   dest.Address(),
		Longitude: dest.Geo().Longitude(),
		Latitude:  dest.Geo().Latitude(),
		Active:    dest.Active(),
	}
}

// toDomain converts a database DTO to a destination domain aggregate using
// RestoreDestination.
func toDomain(dto DestinationDTO) (*destination.Destination, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	geo, err := kernel.NewGeoPoint(dto.Longitude, dto.Latitude)
	if err != nil {
		return nil, err
	}

	return destination.RestoreDestination(id, dto.Name, dto.Address, geo, dto.Active)
}
