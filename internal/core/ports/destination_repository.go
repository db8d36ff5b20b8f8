package ports

import (
	"context"

	"fueldispatch/internal/core/domain/model/destination"
	"fueldispatch/internal/core/domain/model/kernel"
)

// DestinationRepository defines the persistence contract for delivery
// destinations.
type DestinationRepository interface {
	// Add persists a new destination to storage.
	Add(ctx context.Context, aggregate *destination.Destination) error

	// Get retrieves a destination by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*destination.Destination, error)

	// GetAllByIDs retrieves the destinations for the given identifiers.
	// Every requested identifier must resolve; a missing one is an error.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*destination.Destination, error)
}
