package commands

import (
	"errors"
	"time"

	"fueldispatch/internal/core/domain/model/delivery"
	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/pkg/guard"
)

var (
	ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
		"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
	)
	ErrTargetStatusIsInvalid = errors.New(
		"target status must be a forward step; cancellation has its own command")
	ErrOccurredAtIsRequired = errors.New("occurredAt is required")
)

// UpdateDeliveryStatusCommand represents a request to move a delivery one
// step forward along its lifecycle, optionally recording trip telemetry
// when the target is completed.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	target     delivery.Status
	occurredAt time.Time

	distanceKm         *float64
	fuelConsumedLiters *float64

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command for a single forward
// status transition. The target must be one of dispatched, loading,
// in_transit, unloading or completed; occurredAt stamps departure and
// completion times. Telemetry is only read when the target is completed.
func NewUpdateDeliveryStatusCommand(deliveryID kernel.UUID, target delivery.Status,
	occurredAt time.Time, distanceKm, fuelConsumedLiters *float64) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		distanceKm:         distanceKm,
		fuelConsumedLiters: fuelConsumedLiters,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setTarget(target),
		cmd.setOccurredAt(occurredAt),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the delivery to transition.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Target returns the requested status.
func (c UpdateDeliveryStatusCommand) Target() delivery.Status {
	return c.target
}

// OccurredAt returns when the transition happened in the real world.
func (c UpdateDeliveryStatusCommand) OccurredAt() time.Time {
	return c.occurredAt
}

// DistanceKm returns the travelled distance reported at completion.
func (c UpdateDeliveryStatusCommand) DistanceKm() *float64 {
	return c.distanceKm
}

// FuelConsumedLiters returns the fuel consumption reported at completion.
func (c UpdateDeliveryStatusCommand) FuelConsumedLiters() *float64 {
	return c.fuelConsumedLiters
}

func (c *UpdateDeliveryStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setTarget(target delivery.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == delivery.Planned || target == delivery.Cancelled {
		return ErrTargetStatusIsInvalid
	}

	c.target = target
	return nil
}

func (c *UpdateDeliveryStatusCommand) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return ErrOccurredAtIsRequired
	}

	c.occurredAt = occurredAt
	return nil
}
