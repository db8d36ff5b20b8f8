// Package deliveryrepo provides data transfer objects and mapping functions for
// delivery persistence. This package implements the repository pattern for the
// delivery domain aggregate, handling the conversion between domain entities
// and database representations.
package deliveryrepo

import (
	"time"

	"fueldispatch/internal/core/domain/model/delivery"
	"fueldispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. Compartment assignments live in their own table and are owned
// via a cascading foreign key.
type DeliveryDTO struct {
	ID                         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Reference                  string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	VehicleID                  uuid.UUID       `gorm:"type:uuid;not null;index"`
	PlannedDeparture           time.Time       `gorm:"not null;index"`
	PlannedCompletion          time.Time       `gorm:"not null"`
	TotalVolumeLiters          int             `gorm:"type:int;not null"`
	TotalWeightKg              float64         `gorm:"not null"`
	CapacityUtilizationPercent float64         `gorm:"not null"`
	Status                     int             `gorm:"type:int;not null;index"`
	ActualDeparture            *time.Time
	ActualCompletion           *time.Time
	DistanceKm                 *float64
	FuelConsumedLiters         *float64
	CO2EmissionsKg             *float64        `gorm:"column:co2_emissions_kg"`
	Assignments                []AssignmentDTO `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// AssignmentDTO represents the database structure for persisting compartment
// assignment entities. Links to the owning delivery via foreign key.
type AssignmentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CompartmentID   uuid.UUID `gorm:"type:uuid;not null"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null"`
	DestinationID   uuid.UUID `gorm:"type:uuid;not null"`
	VolumeLiters    int       `gorm:"type:int;not null"`
	WeightKg        float64   `gorm:"not null"`
	LoadingSequence *int      `gorm:"type:int"`
	Status          int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for assignment entities.
// Overrides GORM's default naming convention to use "compartment_assignments".
func (AssignmentDTO) TableName() string {
	return "compartment_assignments"
}

// fromDomain converts a delivery domain aggregate to its database
// representation, including all compartment assignments.
func fromDomain(d *delivery.Delivery) DeliveryDTO {
	deliveryID := d.ID().Bytes()
	assignments := make([]AssignmentDTO, 0, len(d.Assignments()))

	for _, a := range d.Assignments() {
		assignments = append(assignments, AssignmentDTO{
			ID:              a.ID().Bytes(),
			DeliveryID:      deliveryID,
			CompartmentID:   a.CompartmentID().Bytes(),
			ProductID:       a.ProductID().Bytes(),
			DestinationID:   a.DestinationID().Bytes(),
			VolumeLiters:    a.VolumeLiters(),
			WeightKg:        a.WeightKg(),
			LoadingSequence: a.LoadingSequence(),
			Status:          int(a.Status()),
		})
	}

	return DeliveryDTO{
		ID:                         deliveryID,
		Reference:                  d.Reference(),
		VehicleID:                  d.VehicleID().Bytes(),
		PlannedDeparture:           d.PlannedDeparture(),
		PlannedCompletion:          d.PlannedCompletion(),
		TotalVolumeLiters:          d.TotalVolumeLiters(),
		TotalWeightKg:              d.TotalWeightKg(),
		CapacityUtilizationPercent: d.CapacityUtilizationPercent(),
		Status:                     int(d.Status()),
		ActualDeparture:            d.ActualDeparture(),
		ActualCompletion:           d.ActualCompletion(),
		DistanceKm:                 d.DistanceKm(),
		FuelConsumedLiters:         d.FuelConsumedLiters(),
		CO2EmissionsKg:             d.CO2EmissionsKg(),
		Assignments:                assignments,
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs the complete aggregate including all assignments using
// RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	assignments := make([]*delivery.CompartmentAssignment, 0, len(dto.Assignments))
	for _, aDto := range dto.Assignments {
		a, aErr := assignmentToDomain(aDto)
		if aErr != nil {
			return nil, aErr
		}
		assignments = append(assignments, a)
	}

	return delivery.RestoreDelivery(
		id,
		dto.Reference,
		vehicleID,
		dto.PlannedDeparture,
		dto.PlannedCompletion,
		assignments,
		dto.TotalVolumeLiters,
		dto.TotalWeightKg,
		dto.CapacityUtilizationPercent,
		delivery.Status(dto.Status),
		dto.ActualDeparture,
		dto.ActualCompletion,
		dto.DistanceKm,
		dto.FuelConsumedLiters,
		dto.CO2EmissionsKg,
	)
}

// assignmentToDomain converts an assignment DTO to the domain entity using
// RestoreCompartmentAssignment.
func assignmentToDomain(dto AssignmentDTO) (*delivery.CompartmentAssignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	compartmentID, err := kernel.UUIDFromBytes(dto.CompartmentID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	destinationID, err := kernel.UUIDFromBytes(dto.DestinationID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreCompartmentAssignment(
		id,
		compartmentID,
		productID,
		destinationID,
		dto.VolumeLiters,
		dto.WeightKg,
		dto.LoadingSequence,
		delivery.AssignmentStatus(dto.Status),
	)
}
