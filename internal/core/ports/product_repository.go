package ports

import (
	"context"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for fuel product
// aggregates.
type ProductRepository interface {
	// Add persists a new fuel product to storage.
	Add(ctx context.Context, aggregate *product.FuelProduct) error

	// Update persists changes to an existing fuel product.
	Update(ctx context.Context, aggregate *product.FuelProduct) error

	// Get retrieves a fuel product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.FuelProduct, error)

	// GetByCode retrieves a fuel product by its unique product code.
	// Used to resolve compartment product history into full products.
	GetByCode(ctx context.Context, code string) (*product.FuelProduct, error)
}
