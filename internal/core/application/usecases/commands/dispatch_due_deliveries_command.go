package commands

import (
	"errors"

	"fueldispatch/internal/pkg/guard"
)

var ErrDispatchDueDeliveriesCommandIsNotConstructed = errors.New(
	"DispatchDueDeliveriesCommand must be created via NewDispatchDueDeliveriesCommand constructor",
)

// DispatchDueDeliveriesCommand triggers dispatch of every planned delivery
// whose departure time has arrived. Each candidate is re-checked against the
// compliance gate before leaving, so a certification that lapsed after
// planning keeps the delivery on the ground.
//
// Example:
//
//	cmd := NewDispatchDueDeliveriesCommand()
//	handler := NewDispatchDueDeliveriesCommandHandler(uowFactory, gate)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Some deliveries could not be dispatched: %v", err)
//	}
type DispatchDueDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchDueDeliveriesCommand creates a new command to trigger
// dispatching of due deliveries. This is a parameterless command.
func NewDispatchDueDeliveriesCommand() DispatchDueDeliveriesCommand {
	return DispatchDueDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchDueDeliveriesCommandIsNotConstructed if validation fails.
func (c *DispatchDueDeliveriesCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchDueDeliveriesCommandIsNotConstructed,
	)
}
