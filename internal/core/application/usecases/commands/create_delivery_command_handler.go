package commands

import (
	"context"
	"errors"

	"fueldispatch/internal/core/domain/model/delivery"
	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/model/product"
	"fueldispatch/internal/core/domain/model/vehicle"
	"fueldispatch/internal/core/domain/services"
	"fueldispatch/internal/core/ports"
	"fueldispatch/internal/pkg/errs"
)

// CreateDeliveryCommandHandler handles the business logic for delivery
// planning: compliance gating, compartment allocation and atomic
// persistence of the new delivery.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory, allocator, gate)
//	cmd, _ := NewCreateDeliveryCommand(deliveryID, vehicleID,
//	    departure, completion, requests)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("delivery creation failed: %w", err)
//	}
type CreateDeliveryCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.CompartmentAllocator
	gate       services.ComplianceGate
}

// NewCreateDeliveryCommandHandler creates a handler for delivery planning.
// Requires a UoWFactory for transactional persistence plus the allocator
// and compliance gate domain services.
func NewCreateDeliveryCommandHandler(uowFactory UoWFactory,
	allocator services.CompartmentAllocator,
	gate services.ComplianceGate) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
		gate:       gate,
	}
}

// Handle processes the delivery creation command.
// Loads the vehicle, products and destinations, checks compliance, runs the
// allocator, and persists the delivery with its assignments in one
// transaction. A compliance or allocation failure rejects the command
// before anything is written.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	veh, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	requests, requiresHazmat, err := h.resolveRequests(ctx, uow, veh, cmd.Requests())
	if err != nil {
		return err
	}

	if err = h.gate.Check(veh, requiresHazmat); err != nil {
		return err
	}

	destinationIDs := make([]kernel.UUID, 0, len(requests))
	for _, request := range requests {
		destinationIDs = append(destinationIDs, request.DestinationID)
	}
	if _, err = uow.DestinationRepository().GetAllByIDs(ctx, destinationIDs); err != nil {
		return err
	}

	result, err := h.allocator.Allocate(veh, requests)
	if err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	sequence, err := deliveryRepo.CountByDepartureDate(ctx, cmd.PlannedDeparture())
	if err != nil {
		return err
	}

	newDelivery, err := delivery.NewDelivery(cmd.DeliveryID(),
		delivery.NewReference(cmd.PlannedDeparture(), sequence+1),
		veh.ID(), cmd.PlannedDeparture(), cmd.PlannedCompletion(),
		veh.TotalCapacityLiters(), result.Assignments)
	if err != nil {
		return err
	}

	if err = deliveryRepo.Add(ctx, newDelivery); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolveRequests loads the requested products and each compartment's prior
// product, producing the allocator's input. A history code without a
// matching product leaves the prior product nil; the allocator then falls
// back to the code lists.
func (h *CreateDeliveryCommandHandler) resolveRequests(ctx context.Context, uow UoW,
	veh *vehicle.TankerVehicle,
	requests []CompartmentRequest) ([]services.AllocationRequest, bool, error) {
	productRepo := uow.ProductRepository()
	products := make(map[kernel.UUID]*product.FuelProduct, len(requests))
	requiresHazmat := false

	resolved := make([]services.AllocationRequest, 0, len(requests))
	for _, request := range requests {
		p, ok := products[request.ProductID]
		if !ok {
			var err error
			p, err = productRepo.Get(ctx, request.ProductID)
			if err != nil {
				return nil, false, err
			}
			products[request.ProductID] = p
		}
		if p.RequiresHazmatCertification() {
			requiresHazmat = true
		}

		prior, err := h.resolvePriorProduct(ctx, productRepo, veh, request.CompartmentID)
		if err != nil {
			return nil, false, err
		}

		resolved = append(resolved, services.AllocationRequest{
			CompartmentID:   request.CompartmentID,
			Product:         p,
			PriorProduct:    prior,
			DestinationID:   request.DestinationID,
			VolumeLiters:    request.VolumeLiters,
			LoadingSequence: request.LoadingSequence,
		})
	}

	return resolved, requiresHazmat, nil
}

func (h *CreateDeliveryCommandHandler) resolvePriorProduct(ctx context.Context,
	productRepo ports.ProductRepository, veh *vehicle.TankerVehicle,
	compartmentID kernel.UUID) (*product.FuelProduct, error) {
	compartment, err := veh.CompartmentByID(compartmentID)
	if err != nil {
		// Unknown compartments are reported by the allocator with full
		// context.
		return nil, nil //nolint:nilerr
	}

	code := compartment.LastProductCode()
	if code == nil {
		return nil, nil
	}

	prior, err := productRepo.GetByCode(ctx, *code)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return prior, nil
}
