package queries

import (
	"context"
	"strings"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/model/product"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFuelProductsQueryHandler retrieves the product catalog from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetFuelProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetFuelProductsQueryHandler creates a handler for product catalog
// queries. Requires a GORM database connection for query execution.
func NewGetFuelProductsQueryHandler(db *gorm.DB) GetFuelProductsQueryHandler {
	return GetFuelProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve catalog products matching the
// filters. Results are sorted by code for consistent output.
func (h GetFuelProductsQueryHandler) Handle(
	ctx context.Context,
	query GetFuelProductsQuery,
) ([]GetFuelProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			code,
			fuel_type,
			sulfur_ppm,
			density_kg_per_liter,
			hazmat_class,
			un_number,
			compatibility_group,
			active
		FROM fuel_products
	`

	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if query.FuelType() != nil {
		conditions = append(conditions, "fuel_type = ?")
		args = append(args, int(*query.FuelType()))
	}
	if query.CompatibilityGroup() != "" {
		conditions = append(conditions, "compatibility_group = ?")
		args = append(args, query.CompatibilityGroup())
	}
	if query.MaxSulfurPPM() != nil {
		conditions = append(conditions, "sulfur_ppm <= ?")
		args = append(args, *query.MaxSulfurPPM())
	}
	if query.ActiveOnly() {
		conditions = append(conditions, "active")
	}

	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	sql += " ORDER BY code"

	products := make([]GetFuelProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetFuelProductsQueryResponse
		var id uuid.UUID
		var fuelType int

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Code,
			&fuelType,
			&resp.SulfurPPM,
			&resp.DensityKgPerLiter,
			&resp.HazmatClass,
			&resp.UNNumber,
			&resp.CompatibilityGroup,
			&resp.Active,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = productID
		resp.FuelType = product.FuelType(fuelType).String()

		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
