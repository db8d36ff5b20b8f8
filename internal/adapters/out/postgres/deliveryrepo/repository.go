package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"fueldispatch/internal/core/domain/model/delivery"
	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery to the database.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested assignments
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).Preload("Assignments").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPlannedDueBy retrieves deliveries still in the planned status whose
// planned departure is at or before the given time. Used by the dispatch job.
func (r *GormDeliveryRepository) GetAllPlannedDueBy(ctx context.Context, dueBy time.Time) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Preload("Assignments").
		Find(&dtos, "status = ? AND planned_departure <= ?", delivery.Planned, dueBy).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllActiveByVehicle retrieves non-terminal deliveries assigned to the
// given vehicle.
func (r *GormDeliveryRepository) GetAllActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*delivery.Delivery, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Preload("Assignments").
		Find(&dtos, "vehicle_id = ? AND status NOT IN (?, ?)",
			vehicleID.Bytes(), delivery.Completed, delivery.Cancelled).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// CountByDepartureDate counts deliveries whose planned departure falls on the
// same calendar day, in UTC. Used to derive the daily reference sequence
// number.
func (r *GormDeliveryRepository) CountByDepartureDate(ctx context.Context, departure time.Time) (int, error) {
	dayStart := time.Date(departure.Year(), departure.Month(), departure.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("planned_departure >= ? AND planned_departure < ?", dayStart, dayEnd).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return int(count), nil
}

func toDomainAll(dtos []DeliveryDTO) ([]*delivery.Delivery, error) {
	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}
