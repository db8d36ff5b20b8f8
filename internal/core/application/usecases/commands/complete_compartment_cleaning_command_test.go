package commands_test

import (
	"testing"
	"time"

	"fueldispatch/internal/core/application/usecases/commands"
	"fueldispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteCompartmentCleaningCommand_ValidInput(t *testing.T) {
	compartmentID := kernel.NewUUID()
	cleanedAt := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCompleteCompartmentCleaningCommand(compartmentID, cleanedAt)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, compartmentID, cmd.CompartmentID())
	assert.Equal(t, cleanedAt, cmd.CleanedAt())
}

func TestNewCompleteCompartmentCleaningCommand_InvalidCompartmentID(t *testing.T) {
	_, err := commands.NewCompleteCompartmentCleaningCommand(kernel.UUID{}, time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCompleteCompartmentCleaningCommand_ZeroCleanedAt(t *testing.T) {
	_, err := commands.NewCompleteCompartmentCleaningCommand(kernel.NewUUID(), time.Time{})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCleanedAtIsRequired)
}

func TestCompleteCompartmentCleaningCommand_ZeroValueDoesNotValidate(t *testing.T) {
	var cmd commands.CompleteCompartmentCleaningCommand

	assert.ErrorIs(t, cmd.Validate(),
		commands.ErrCompleteCompartmentCleaningCommandIsNotConstructed)
}
