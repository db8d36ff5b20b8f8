package ports

import (
	"context"
	"time"

	"fueldispatch/internal/core/domain/model/delivery"
	"fueldispatch/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery
// aggregates, including their compartment assignments.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate with all its assignments.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate, including
	// status, telemetry and assignment state.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAllPlannedDueBy retrieves deliveries still in the planned status
	// whose planned departure is at or before the given time. Used by the
	// dispatch job.
	GetAllPlannedDueBy(ctx context.Context, dueBy time.Time) ([]*delivery.Delivery, error)

	// GetAllActiveByVehicle retrieves non-terminal deliveries assigned to
	// the given vehicle.
	GetAllActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*delivery.Delivery, error)

	// CountByDepartureDate counts deliveries whose planned departure falls
	// on the same calendar day. Used to derive the daily reference
	// sequence number.
	CountByDepartureDate(ctx context.Context, departure time.Time) (int, error)
}
