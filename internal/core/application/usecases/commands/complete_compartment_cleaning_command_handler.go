package commands

import (
	"context"
)

// CompleteCompartmentCleaningCommandHandler handles cleaning completion
// reports. Marking a compartment cleaned clears its cleaning flag and
// product history, making it eligible for any product again.
type CompleteCompartmentCleaningCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewCompleteCompartmentCleaningCommandHandler creates a handler for
// cleaning completion. Requires a VehicleUoWFactory for transactional
// persistence.
func NewCompleteCompartmentCleaningCommandHandler(
	uowFactory VehicleUoWFactory) CompleteCompartmentCleaningCommandHandler {
	return CompleteCompartmentCleaningCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cleaning completion command.
// Resolves the owning vehicle by compartment, marks the compartment clean
// through the aggregate, and persists the vehicle.
func (h *CompleteCompartmentCleaningCommandHandler) Handle(ctx context.Context,
	cmd CompleteCompartmentCleaningCommand) error {
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

	vehicleRepo := uow.VehicleRepository()
	veh, err := vehicleRepo.GetByCompartment(ctx, cmd.CompartmentID())
	if err != nil {
		return err
	}

	compartment, err := veh.CompartmentByID(cmd.CompartmentID())
	if err != nil {
		return err
	}

	compartment.MarkCleaned(cmd.CleanedAt())

	if err = vehicleRepo.Update(ctx, veh); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
