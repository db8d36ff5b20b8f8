package queries

import (
	"context"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/model/product"
	"fueldispatch/internal/core/domain/services"
	"fueldispatch/internal/core/ports"
)

// GetSolverPayloadQueryHandler assembles the route optimization problem for
// a delivery. Unlike the raw-SQL read models, it loads full aggregates
// because the payload builder works on domain objects.
type GetSolverPayloadQueryHandler struct {
	deliveryRepo    ports.DeliveryRepository
	vehicleRepo     ports.VehicleRepository
	productRepo     ports.ProductRepository
	destinationRepo ports.DestinationRepository
	builder         services.SolverPayloadBuilder
	depot           kernel.GeoPoint
}

// NewGetSolverPayloadQueryHandler creates a handler for solver payload
// queries. The depot is the loading location every route starts from.
func NewGetSolverPayloadQueryHandler(deliveryRepo ports.DeliveryRepository,
	vehicleRepo ports.VehicleRepository, productRepo ports.ProductRepository,
	destinationRepo ports.DestinationRepository,
	depot kernel.GeoPoint) GetSolverPayloadQueryHandler {
	return GetSolverPayloadQueryHandler{
		deliveryRepo:    deliveryRepo,
		vehicleRepo:     vehicleRepo,
		productRepo:     productRepo,
		destinationRepo: destinationRepo,
		builder:         services.NewSolverPayloadBuilder(),
		depot:           depot,
	}
}

// Handle loads the delivery, its vehicle and the referenced products and
// destinations, then runs the payload builder.
func (h GetSolverPayloadQueryHandler) Handle(
	ctx context.Context,
	query GetSolverPayloadQuery,
) (*services.SolverPayload, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	d, err := h.deliveryRepo.Get(ctx, query.DeliveryID())
	if err != nil {
		return nil, err
	}

	veh, err := h.vehicleRepo.Get(ctx, d.VehicleID())
	if err != nil {
		return nil, err
	}

	products := make(map[kernel.UUID]*product.FuelProduct)
	destinationIDs := make([]kernel.UUID, 0, len(d.Assignments()))
	for _, assignment := range d.Assignments() {
		if _, ok := products[assignment.ProductID()]; !ok {
			p, productErr := h.productRepo.Get(ctx, assignment.ProductID())
			if productErr != nil {
				return nil, productErr
			}
			products[assignment.ProductID()] = p
		}
		destinationIDs = append(destinationIDs, assignment.DestinationID())
	}

	resolved, err := h.destinationRepo.GetAllByIDs(ctx, destinationIDs)
	if err != nil {
		return nil, err
	}

	destinations := make(map[kernel.UUID]kernel.GeoPoint, len(resolved))
	for _, dest := range resolved {
		destinations[dest.ID()] = dest.Geo()
	}

	return h.builder.Build(d, veh, products, destinations, h.depot)
}
