// Package ports defines repository and outbound adapter interfaces for the
// fuel dispatch domain.
package ports

import (
	"context"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for tanker vehicle
// aggregates, including their compartments.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	Add(ctx context.Context, aggregate *vehicle.TankerVehicle) error

	// Update persists changes to an existing vehicle aggregate, including
	// compartment contents, history and cleaning state.
	Update(ctx context.Context, aggregate *vehicle.TankerVehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	// Returns the complete vehicle with all its compartments.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.TankerVehicle, error)

	// GetByCompartment retrieves the vehicle owning the given compartment.
	GetByCompartment(ctx context.Context, compartmentID kernel.UUID) (*vehicle.TankerVehicle, error)

	// GetAllCertificationExpired retrieves vehicles whose certification
	// status is expired. Used by the certification sweep.
	GetAllCertificationExpired(ctx context.Context) ([]*vehicle.TankerVehicle, error)
}
