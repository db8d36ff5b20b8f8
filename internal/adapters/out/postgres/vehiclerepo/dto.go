// Package vehiclerepo provides data transfer objects and mapping functions for
// tanker vehicle persistence. This package implements the repository pattern for
// the vehicle domain aggregate, handling the conversion between domain entities
// and database representations.
package vehiclerepo

import (
	"time"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// VehicleDTO represents the database structure for persisting tanker vehicle
// aggregates. Compartments live in their own table and are owned via a
// cascading foreign key.
type VehicleDTO struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name                string           `gorm:"type:varchar(255);not null"`
	LicensePlate        string           `gorm:"type:varchar(32);not null"`
	TotalCapacityLiters int              `gorm:"type:int;not null"`
	DOTCertified        bool             `gorm:"column:dot_certified"`
	HazmatCertified     bool             `gorm:"column:hazmat_certified"`
	CertificationStatus int              `gorm:"type:int;not null;index"`
	LastInspection      *time.Time
	OperationalStatus   string           `gorm:"type:varchar(32);not null"`
	Compartments        []CompartmentDTO `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for vehicle entities.
// Overrides GORM's default naming convention to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// CompartmentDTO represents the database structure for persisting compartment
// entities. Links to the owning vehicle via foreign key and carries the
// contamination bookkeeping columns (last product, cleaning flag).
type CompartmentDTO struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primaryKey"`
	VehicleID             uuid.UUID      `gorm:"type:uuid;not null;index"`
	Number                int            `gorm:"type:int;not null"`
	Name                  string         `gorm:"type:varchar(255);not null"`
	CapacityLiters        int            `gorm:"type:int;not null"`
	WorkingCapacityLiters *int           `gorm:"type:int"`
	Status                int            `gorm:"type:int;not null"`
	CurrentProductID      *uuid.UUID     `gorm:"type:uuid"`
	CurrentVolumeLiters   int            `gorm:"type:int;not null"`
	LastProductCode       *string        `gorm:"type:varchar(32)"`
	RequiresCleaning      bool
	LastCleaned           *time.Time
	CompatibleProducts    pq.StringArray `gorm:"type:text[]"`
}

// TableName specifies the database table name for compartment entities.
// Overrides GORM's default naming convention to use "compartments".
func (CompartmentDTO) TableName() string {
	return "compartments"
}

// fromDomain converts a vehicle domain aggregate to its database
// representation, including all owned compartments.
func fromDomain(veh *vehicle.TankerVehicle) VehicleDTO {
	vehicleID := veh.ID().Bytes()
	compartments := make([]CompartmentDTO, 0, veh.CompartmentCount())

	for _, c := range veh.Compartments() {
		var currentProductID *uuid.UUID
		if c.CurrentProductID() != nil {
			raw := c.CurrentProductID().Bytes()
			currentProductID = &raw
		}

		compartments = append(compartments, CompartmentDTO{
			ID:                    c.ID().Bytes(),
			VehicleID:             vehicleID,
			Number:                c.Number(),
			Name:                  c.Name(),
			CapacityLiters:        c.CapacityLiters(),
			WorkingCapacityLiters: c.WorkingCapacityLiters(),
			Status:                int(c.Status()),
			CurrentProductID:      currentProductID,
			CurrentVolumeLiters:   c.CurrentVolumeLiters(),
			LastProductCode:       c.LastProductCode(),
			RequiresCleaning:      c.RequiresCleaning(),
			LastCleaned:           c.LastCleaned(),
			CompatibleProducts:    c.CompatibleProducts(),
		})
	}

	return VehicleDTO{
		ID:                  vehicleID,
		Name:                veh.Name(),
		LicensePlate:        veh.LicensePlate(),
		TotalCapacityLiters: veh.TotalCapacityLiters(),
		DOTCertified:        veh.DOTCertified(),
		HazmatCertified:     veh.HazmatCertified(),
		CertificationStatus: int(veh.CertificationStatus()),
		LastInspection:      veh.LastInspection(),
		OperationalStatus:   veh.OperationalStatus(),
		Compartments:        compartments,
	}
}

// toDomain converts a database DTO to a vehicle domain aggregate.
// Reconstructs the complete aggregate including all compartments using
// RestoreTankerVehicle.
func toDomain(dto VehicleDTO) (*vehicle.TankerVehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	compartments := make([]*vehicle.Compartment, 0, len(dto.Compartments))
	for _, cDto := range dto.Compartments {
		c, cErr := compartmentToDomain(cDto)
		if cErr != nil {
			return nil, cErr
		}
		compartments = append(compartments, c)
	}

	return vehicle.RestoreTankerVehicle(
		id,
		dto.Name,
		dto.LicensePlate,
		dto.TotalCapacityLiters,
		compartments,
		dto.DOTCertified,
		dto.HazmatCertified,
		vehicle.CertificationStatus(dto.CertificationStatus),
		dto.LastInspection,
		dto.OperationalStatus,
	)
}

// compartmentToDomain converts a compartment DTO to the domain entity.
// Uses RestoreCompartment to reconstruct the entity with its persisted
// content and cleaning state.
func compartmentToDomain(dto CompartmentDTO) (*vehicle.Compartment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var currentProductID *kernel.UUID
	if dto.CurrentProductID != nil {
		pID, productErr := kernel.UUIDFromBytes((*dto.CurrentProductID)[:])
		if productErr != nil {
			return nil, productErr
		}
		currentProductID = &pID
	}

	return vehicle.RestoreCompartment(
		id,
		dto.Number,
		dto.Name,
		dto.CapacityLiters,
		dto.WorkingCapacityLiters,
		vehicle.CompartmentStatus(dto.Status),
		currentProductID,
		dto.CurrentVolumeLiters,
		dto.LastProductCode,
		dto.RequiresCleaning,
		dto.LastCleaned,
		dto.CompatibleProducts,
	)
}
