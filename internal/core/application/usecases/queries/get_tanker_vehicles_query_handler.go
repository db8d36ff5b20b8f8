package queries

import (
	"context"
	"strings"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTankerVehiclesQueryHandler retrieves fleet vehicles from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetTankerVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetTankerVehiclesQueryHandler creates a handler for fleet vehicle
// queries. Requires a GORM database connection for query execution.
func NewGetTankerVehiclesQueryHandler(db *gorm.DB) GetTankerVehiclesQueryHandler {
	return GetTankerVehiclesQueryHandler{db: db}
}

// Handle executes the query to retrieve fleet vehicles matching the filters.
// Results are sorted by name for consistent output; statuses are rendered
// as their snake_case names.
func (h GetTankerVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetTankerVehiclesQuery,
) ([]GetTankerVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			v.id,
			v.name,
			v.license_plate,
			v.total_capacity_liters,
			(SELECT COUNT(*) FROM compartments c WHERE c.vehicle_id = v.id) AS compartment_count,
			v.dot_certified,
			v.hazmat_certified,
			v.certification_status,
			v.operational_status
		FROM vehicles v
	`

	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if query.OperationalStatus() != "" {
		conditions = append(conditions, "v.operational_status = ?")
		args = append(args, query.OperationalStatus())
	}
	if query.CertificationStatus() != nil {
		conditions = append(conditions, "v.certification_status = ?")
		args = append(args, int(*query.CertificationStatus()))
	}
	if query.MinCapacityLiters() > 0 {
		conditions = append(conditions, "v.total_capacity_liters >= ?")
		args = append(args, query.MinCapacityLiters())
	}

	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	sql += " ORDER BY v.name"

	vehicles := make([]GetTankerVehiclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetTankerVehiclesQueryResponse
		var id uuid.UUID
		var certificationStatus int

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.LicensePlate,
			&resp.TotalCapacityLiters,
			&resp.CompartmentCount,
			&resp.DOTCertified,
			&resp.HazmatCertified,
			&certificationStatus,
			&resp.OperationalStatus,
		)
		if err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = vehicleID
		resp.CertificationStatus = vehicle.CertificationStatus(certificationStatus).String()

		vehicles = append(vehicles, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
