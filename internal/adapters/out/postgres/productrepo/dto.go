// Package productrepo provides data transfer objects and mapping functions for
// fuel product persistence. This package implements the repository pattern for
// the product domain aggregate, handling the conversion between domain entities
// and database representations.
package productrepo

import (
	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProductDTO represents the database structure for persisting fuel product
// aggregates. Contamination code lists are stored as PostgreSQL text arrays.
type ProductDTO struct {
	ID                     uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name                   string         `gorm:"type:varchar(255);not null"`
	Code                   string         `gorm:"type:varchar(32);not null;uniqueIndex"`
	FuelType               int            `gorm:"type:int;not null"`
	SulfurPPM              float64        `gorm:"column:sulfur_ppm"`
	DensityKgPerLiter      float64
	HazmatClass            string         `gorm:"type:varchar(8);not null"`
	UNNumber               string         `gorm:"column:un_number;type:varchar(16)"`
	CompatibilityGroup     string         `gorm:"type:varchar(8)"`
	CrossContaminationRisk pq.StringArray `gorm:"type:text[]"`
	CleaningRequiredAfter  pq.StringArray `gorm:"type:text[]"`
	Active                 bool
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "fuel_products".
func (ProductDTO) TableName() string {
	return "fuel_products"
}

// fromDomain converts a product domain aggregate to its database
// representation.
func fromDomain(p *product.FuelProduct) ProductDTO {
	return ProductDTO{
		ID:                     p.ID().Bytes(),
		Name:                   p.Name(),
		Code:                   p.Code(),
		FuelType:               int(p.FuelType()),
		SulfurPPM:              p.SulfurPPM(),
		DensityKgPerLiter:      p.DensityKgPerLiter(),
		HazmatClass:            p.HazmatClass(),
		UNNumber:               p.UNNumber(),
		CompatibilityGroup:     p.CompatibilityGroup(),
		CrossContaminationRisk: p.CrossContaminationRisk(),
		CleaningRequiredAfter:  p.CleaningRequiredAfter(),
		Active:                 p.IsActive(),
	}
}

// toDomain converts a database DTO to a product domain aggregate using
// RestoreFuelProduct.
func toDomain(dto ProductDTO) (*product.FuelProduct, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreFuelProduct(
		id,
		dto.Name,
		dto.Code,
		product.FuelType(dto.FuelType),
		dto.SulfurPPM,
		dto.DensityKgPerLiter,
		dto.HazmatClass,
		dto.UNNumber,
		dto.CompatibilityGroup,
		dto.CrossContaminationRisk,
		dto.CleaningRequiredAfter,
		dto.Active,
	)
}
