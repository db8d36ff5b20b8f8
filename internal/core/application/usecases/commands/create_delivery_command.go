package commands

import (
	"errors"
	"time"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
	ErrPlannedWindowIsRequired    = errors.New("planned departure must be before planned completion")
	ErrCompartmentRequestsMissing = errors.New("at least one compartment request is required")
	ErrRequestVolumeIsInvalid     = errors.New("requested volume must be greater than 0")
)

// CompartmentRequest asks for one product volume in one compartment for one
// destination, as received from the planning client.
type CompartmentRequest struct {
	CompartmentID   kernel.UUID
	ProductID       kernel.UUID
	DestinationID   kernel.UUID
	VolumeLiters    int
	LoadingSequence *int
}

// CreateDeliveryCommand represents a request to plan a new bulk fuel
// delivery: a vehicle, a departure window and the compartment loads.
//
// Example:
//
//	deliveryID := kernel.NewUUID()
//	cmd, err := NewCreateDeliveryCommand(deliveryID, vehicleID,
//	    departure, completion, requests)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory, allocator, gate)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery: %w", err)
//	}
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID        kernel.UUID
	vehicleID         kernel.UUID
	plannedDeparture  time.Time
	plannedCompletion time.Time
	requests          []CompartmentRequest

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to plan a new delivery.
// Validates identifiers, the departure window and the compartment requests.
func NewCreateDeliveryCommand(deliveryID, vehicleID kernel.UUID,
	plannedDeparture, plannedCompletion time.Time,
	requests []CompartmentRequest) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setVehicleID(vehicleID),
		cmd.setWindow(plannedDeparture, plannedCompletion),
		cmd.setRequests(requests),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// VehicleID returns the tanker vehicle to carry the delivery.
func (c CreateDeliveryCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// PlannedDeparture returns the planned depot departure time.
func (c CreateDeliveryCommand) PlannedDeparture() time.Time {
	return c.plannedDeparture
}

// PlannedCompletion returns the planned completion time.
func (c CreateDeliveryCommand) PlannedCompletion() time.Time {
	return c.plannedCompletion
}

// Requests returns the requested compartment loads.
func (c CreateDeliveryCommand) Requests() []CompartmentRequest {
	return c.requests
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateDeliveryCommand) setWindow(departure, completion time.Time) error {
	if !departure.Before(completion) {
		return ErrPlannedWindowIsRequired
	}

	c.plannedDeparture = departure
	c.plannedCompletion = completion
	return nil
}

func (c *CreateDeliveryCommand) setRequests(requests []CompartmentRequest) error {
	if len(requests) == 0 {
		return ErrCompartmentRequestsMissing
	}

	for _, request := range requests {
		if err := errors.Join(
			request.CompartmentID.Validate(),
			request.ProductID.Validate(),
			request.DestinationID.Validate(),
		); err != nil {
			return err
		}
		if request.VolumeLiters <= 0 {
			return ErrRequestVolumeIsInvalid
		}
	}

	c.requests = requests
	return nil
}
