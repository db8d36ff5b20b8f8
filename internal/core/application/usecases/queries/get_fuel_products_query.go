package queries

import (
	"errors"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/model/product"
	"fueldispatch/internal/pkg/errs"
	"fueldispatch/internal/pkg/guard"
)

var ErrGetFuelProductsQueryIsNotConstructed = errors.New(
	"GetFuelProductsQuery must be created via NewGetFuelProductsQuery constructor",
)

// GetFuelProductsQuery retrieves the product catalog. All filters are
// optional: a nil fuel type, an empty compatibility group and a nil sulfur
// ceiling each mean "no filter"; activeOnly excludes retired products.
type GetFuelProductsQuery struct {
	fuelType           *product.FuelType
	compatibilityGroup string
	maxSulfurPPM       *float64
	activeOnly         bool

	guard guard.ConstructorGuard
}

// NewGetFuelProductsQuery creates a query to retrieve the product catalog
// with optional filters.
func NewGetFuelProductsQuery(fuelType *product.FuelType, compatibilityGroup string,
	maxSulfurPPM *float64, activeOnly bool) (GetFuelProductsQuery, error) {
	if fuelType != nil {
		if err := fuelType.Validate(); err != nil {
			return GetFuelProductsQuery{}, err
		}
	}
	if maxSulfurPPM != nil && *maxSulfurPPM < 0 {
		return GetFuelProductsQuery{}, errs.NewValueIsInvalidError(
			"maxSulfurPPM must not be negative")
	}

	return GetFuelProductsQuery{
		fuelType:           fuelType,
		compatibilityGroup: compatibilityGroup,
		maxSulfurPPM:       maxSulfurPPM,
		activeOnly:         activeOnly,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFuelProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetFuelProductsQueryIsNotConstructed)
}

// FuelType returns the fuel type filter, nil for none.
func (q GetFuelProductsQuery) FuelType() *product.FuelType {
	return q.fuelType
}

// CompatibilityGroup returns the compatibility group filter, empty for none.
func (q GetFuelProductsQuery) CompatibilityGroup() string {
	return q.compatibilityGroup
}

// MaxSulfurPPM returns the sulfur ceiling filter, nil for none.
func (q GetFuelProductsQuery) MaxSulfurPPM() *float64 {
	return q.maxSulfurPPM
}

// ActiveOnly reports whether retired products are excluded.
func (q GetFuelProductsQuery) ActiveOnly() bool {
	return q.activeOnly
}

// GetFuelProductsQueryResponse represents a product catalog read model.
type GetFuelProductsQueryResponse struct {
	ID                 kernel.UUID
	Name               string
	Code               string
	FuelType           string
	SulfurPPM          float64
	DensityKgPerLiter  float64
	HazmatClass        string
	UNNumber           string
	CompatibilityGroup string
	Active             bool
}
