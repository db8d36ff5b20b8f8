package queries

import (
	"context"

	"fueldispatch/internal/core/domain/model/delivery"
	"fueldispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler retrieves in-flight deliveries from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for in-flight
// delivery queries. Requires a GORM database connection for query execution.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal deliveries.
// Results are sorted by planned departure for consistent output.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.reference,
			d.vehicle_id,
			d.status,
			d.planned_departure,
			d.planned_completion,
			d.total_volume_liters,
			d.capacity_utilization_percent,
			(SELECT COUNT(*) FROM compartment_assignments a WHERE a.delivery_id = d.id) AS assignment_count
		FROM deliveries d
		WHERE d.status NOT IN (?, ?)
		ORDER BY d.planned_departure
	`, delivery.Completed, delivery.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveDeliveriesQueryResponse
		var id, vehicleID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.Reference,
			&vehicleID,
			&status,
			&resp.PlannedDeparture,
			&resp.PlannedCompletion,
			&resp.TotalVolumeLiters,
			&resp.CapacityUtilizationPercent,
			&resp.AssignmentCount,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = deliveryID

		vehID, idErr := kernel.UUIDFromBytes(vehicleID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.VehicleID = vehID
		resp.Status = delivery.Status(status).String()

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
