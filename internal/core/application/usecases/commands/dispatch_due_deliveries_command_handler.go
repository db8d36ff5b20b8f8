package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fueldispatch/internal/core/domain/model/delivery"
	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/services"
	"fueldispatch/internal/core/ports"
)

// DispatchDueDeliveriesCommandHandler dispatches every planned delivery whose
// departure time has passed. A delivery that fails the compliance gate is
// skipped and stays planned; the remaining candidates still go out in the
// same transaction.
type DispatchDueDeliveriesCommandHandler struct {
	uowFactory UoWFactory
	gate       services.ComplianceGate
}

// NewDispatchDueDeliveriesCommandHandler creates a handler for the scheduled
// dispatch sweep. Requires a UoWFactory for transactional updates and the
// compliance gate domain service.
func NewDispatchDueDeliveriesCommandHandler(uowFactory UoWFactory,
	gate services.ComplianceGate) DispatchDueDeliveriesCommandHandler {
	return DispatchDueDeliveriesCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
	}
}

// Handle processes the dispatch sweep command.
// Loads all planned deliveries due by now, re-checks each vehicle against
// the compliance gate, and dispatches the ones that pass. Per-delivery
// failures are collected and returned after the transaction commits, so one
// grounded vehicle never blocks the rest of the fleet.
func (h DispatchDueDeliveriesCommandHandler) Handle(ctx context.Context,
	command DispatchDueDeliveriesCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	now := time.Now().UTC()

	due, err := deliveryRepo.GetAllPlannedDueBy(ctx, now)
	if err != nil {
		return err
	}

	var failures []error
	for _, d := range due {
		if err := h.dispatchOne(ctx, uow, d, now); err != nil {
			failures = append(failures, fmt.Errorf("delivery %s: %w", d.Reference(), err))
			continue
		}

		if err := deliveryRepo.Update(ctx, d); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return errors.Join(failures...)
}

func (h DispatchDueDeliveriesCommandHandler) dispatchOne(ctx context.Context, uow UoW,
	d *delivery.Delivery, now time.Time) error {
	veh, err := uow.VehicleRepository().Get(ctx, d.VehicleID())
	if err != nil {
		return err
	}

	requiresHazmat, err := h.loadRequiresHazmat(ctx, uow.ProductRepository(), d)
	if err != nil {
		return err
	}

	if err := h.gate.Check(veh, requiresHazmat); err != nil {
		return err
	}

	return d.Dispatch(now)
}

func (h DispatchDueDeliveriesCommandHandler) loadRequiresHazmat(ctx context.Context,
	productRepo ports.ProductRepository, d *delivery.Delivery) (bool, error) {
	seen := make(map[kernel.UUID]struct{}, len(d.Assignments()))
	for _, assignment := range d.Assignments() {
		if _, ok := seen[assignment.ProductID()]; ok {
			continue
		}
		seen[assignment.ProductID()] = struct{}{}

		p, err := productRepo.Get(ctx, assignment.ProductID())
		if err != nil {
			return false, err
		}
		if p.RequiresHazmatCertification() {
			return true, nil
		}
	}
	return false, nil
}
