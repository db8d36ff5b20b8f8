package commands_test

import (
	"testing"
	"time"

	"fueldispatch/internal/core/application/usecases/commands"
	"fueldispatch/internal/core/domain/model/delivery"
	"fueldispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateDeliveryStatusCommand_ValidInput(t *testing.T) {
	deliveryID := kernel.NewUUID()
	occurredAt := time.Date(2026, 8, 31, 6, 30, 0, 0, time.UTC)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, delivery.Dispatched,
		occurredAt, nil, nil)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, deliveryID, cmd.DeliveryID())
	assert.Equal(t, delivery.Dispatched, cmd.Target())
	assert.Equal(t, occurredAt, cmd.OccurredAt())
	assert.Nil(t, cmd.DistanceKm())
	assert.Nil(t, cmd.FuelConsumedLiters())
}

func TestNewUpdateDeliveryStatusCommand_CompletedCarriesTelemetry(t *testing.T) {
	distance := 142.5
	fuel := 38.2

	cmd, err := commands.NewUpdateDeliveryStatusCommand(kernel.NewUUID(), delivery.Completed,
		time.Now(), &distance, &fuel)

	require.NoError(t, err)
	assert.Equal(t, &distance, cmd.DistanceKm())
	assert.Equal(t, &fuel, cmd.FuelConsumedLiters())
}

func TestNewUpdateDeliveryStatusCommand_InvalidDeliveryID(t *testing.T) {
	_, err := commands.NewUpdateDeliveryStatusCommand(kernel.UUID{}, delivery.Dispatched,
		time.Now(), nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewUpdateDeliveryStatusCommand_PlannedIsNotAValidTarget(t *testing.T) {
	_, err := commands.NewUpdateDeliveryStatusCommand(kernel.NewUUID(), delivery.Planned,
		time.Now(), nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTargetStatusIsInvalid)
}

func TestNewUpdateDeliveryStatusCommand_CancelledIsNotAValidTarget(t *testing.T) {
	_, err := commands.NewUpdateDeliveryStatusCommand(kernel.NewUUID(), delivery.Cancelled,
		time.Now(), nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTargetStatusIsInvalid)
}

func TestNewUpdateDeliveryStatusCommand_ZeroOccurredAt(t *testing.T) {
	_, err := commands.NewUpdateDeliveryStatusCommand(kernel.NewUUID(), delivery.Dispatched,
		time.Time{}, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOccurredAtIsRequired)
}

func TestUpdateDeliveryStatusCommand_ZeroValueDoesNotValidate(t *testing.T) {
	var cmd commands.UpdateDeliveryStatusCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrUpdateDeliveryStatusCommandIsNotConstructed)
}
