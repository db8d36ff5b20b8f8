package commands_test

import (
	"testing"
	"time"

	"fueldispatch/internal/core/application/usecases/commands"
	"fueldispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequests() []commands.CompartmentRequest {
	return []commands.CompartmentRequest{
		{
			CompartmentID: kernel.NewUUID(),
			ProductID:     kernel.NewUUID(),
			DestinationID: kernel.NewUUID(),
			VolumeLiters:  9000,
		},
	}
}

func TestNewCreateDeliveryCommand_ValidInput(t *testing.T) {
	deliveryID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	departure := time.Date(2026, 8, 31, 6, 0, 0, 0, time.UTC)
	completion := departure.Add(8 * time.Hour)
	requests := validRequests()

	cmd, err := commands.NewCreateDeliveryCommand(deliveryID, vehicleID,
		departure, completion, requests)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, deliveryID, cmd.DeliveryID())
	assert.Equal(t, vehicleID, cmd.VehicleID())
	assert.Equal(t, departure, cmd.PlannedDeparture())
	assert.Equal(t, completion, cmd.PlannedCompletion())
	assert.Equal(t, requests, cmd.Requests())
}

func TestNewCreateDeliveryCommand_InvalidDeliveryID(t *testing.T) {
	departure := time.Now()

	_, err := commands.NewCreateDeliveryCommand(kernel.UUID{}, kernel.NewUUID(),
		departure, departure.Add(time.Hour), validRequests())

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateDeliveryCommand_InvalidWindow(t *testing.T) {
	departure := time.Now()

	_, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(),
		departure, departure, validRequests())

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPlannedWindowIsRequired)
}

func TestNewCreateDeliveryCommand_NoRequests(t *testing.T) {
	departure := time.Now()

	_, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(),
		departure, departure.Add(time.Hour), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCompartmentRequestsMissing)
}

func TestNewCreateDeliveryCommand_InvalidRequestVolume(t *testing.T) {
	departure := time.Now()
	requests := validRequests()
	requests[0].VolumeLiters = 0

	_, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(),
		departure, departure.Add(time.Hour), requests)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRequestVolumeIsInvalid)
}

func TestCreateDeliveryCommand_ZeroValueDoesNotValidate(t *testing.T) {
	var cmd commands.CreateDeliveryCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateDeliveryCommandIsNotConstructed)
}
