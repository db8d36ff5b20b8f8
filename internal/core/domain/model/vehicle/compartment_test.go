package vehicle_test

import (
	"testing"
	"time"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/model/vehicle"
	"fueldispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompartment(t *testing.T) {
	t.Run("should create valid compartment", func(t *testing.T) {
		c, err := vehicle.NewCompartment(kernel.NewUUID(), 1, "Comp-1", 10000, nil)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, 1, c.Number())
		assert.Equal(t, 10000, c.CapacityLiters())
		assert.Equal(t, vehicle.Operational, c.Status())
		assert.Zero(t, c.CurrentVolumeLiters())
		assert.Nil(t, c.LastProductCode())
		assert.False(t, c.RequiresCleaning())
	})

	t.Run("should accept working capacity within bounds", func(t *testing.T) {
		working := 9500
		c, err := vehicle.NewCompartment(kernel.NewUUID(), 1, "Comp-1", 10000, &working)

		require.NoError(t, err)
		require.NotNil(t, c.WorkingCapacityLiters())
		assert.Equal(t, 9500, *c.WorkingCapacityLiters())
	})

	t.Run("should fail with working capacity above capacity", func(t *testing.T) {
		working := 10001
		_, err := vehicle.NewCompartment(kernel.NewUUID(), 1, "Comp-1", 10000, &working)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with non-positive capacity", func(t *testing.T) {
		_, err := vehicle.NewCompartment(kernel.NewUUID(), 1, "Comp-1", 0, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "capacity is invalid")
	})

	t.Run("should fail with non-positive number", func(t *testing.T) {
		_, err := vehicle.NewCompartment(kernel.NewUUID(), 0, "Comp-1", 10000, nil)

		require.Error(t, err)
	})
}

func TestCompartment_CanAccept(t *testing.T) {
	t.Run("accepts positive volume when operational and clean", func(t *testing.T) {
		c, err := vehicle.NewCompartment(kernel.NewUUID(), 1, "Comp-1", 10000, nil)
		require.NoError(t, err)

		require.NoError(t, c.CanAccept(9000))
	})

	t.Run("rejects when cleaning required", func(t *testing.T) {
		c, err := vehicle.NewCompartment(kernel.NewUUID(), 1, "Comp-1", 10000, nil)
		require.NoError(t, err)
		c.RequireCleaning()

		require.ErrorIs(t, c.CanAccept(5000), vehicle.ErrCompartmentRequiresCleaning)
	})

	t.Run("rejects when not operational", func(t *testing.T) {
		c, err := vehicle.RestoreCompartment(kernel.NewUUID(), 1, "Comp-1", 10000, nil,
			vehicle.MaintenanceRequired, nil, 0, nil, false, nil, nil)
		require.NoError(t, err)

		require.ErrorIs(t, c.CanAccept(5000), vehicle.ErrCompartmentNotOperational)
	})

	t.Run("rejects non-positive volume", func(t *testing.T) {
		c, err := vehicle.NewCompartment(kernel.NewUUID(), 1, "Comp-1", 10000, nil)
		require.NoError(t, err)

		require.Error(t, c.CanAccept(0))
	})
}

func TestCompartment_LoadUnload(t *testing.T) {
	c, err := vehicle.NewCompartment(kernel.NewUUID(), 1, "Comp-1", 10000, nil)
	require.NoError(t, err)
	productID := kernel.NewUUID()

	t.Run("load records product and volume", func(t *testing.T) {
		require.NoError(t, c.Load(productID, 9000))

		require.NotNil(t, c.CurrentProductID())
		assert.True(t, c.CurrentProductID().IsEqual(productID))
		assert.Equal(t, 9000, c.CurrentVolumeLiters())
	})

	t.Run("load rejects volume above capacity", func(t *testing.T) {
		other, newErr := vehicle.NewCompartment(kernel.NewUUID(), 2, "Comp-2", 10000, nil)
		require.NoError(t, newErr)

		require.Error(t, other.Load(productID, 10001))
	})

	t.Run("unload empties compartment and records history", func(t *testing.T) {
		c.Unload("ULSD")

		assert.Nil(t, c.CurrentProductID())
		assert.Zero(t, c.CurrentVolumeLiters())
		require.NotNil(t, c.LastProductCode())
		assert.Equal(t, "ULSD", *c.LastProductCode())
	})
}

func TestCompartment_Cleaning(t *testing.T) {
	lastCode := "JET-A1"
	c, err := vehicle.RestoreCompartment(kernel.NewUUID(), 1, "Comp-1", 10000, nil,
		vehicle.CleaningInProgress, nil, 0, &lastCode, true, nil, []string{"ULSD", "JET-A1"})
	require.NoError(t, err)

	cleanedAt := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	c.MarkCleaned(cleanedAt)

	assert.False(t, c.RequiresCleaning())
	assert.Nil(t, c.LastProductCode())
	assert.Equal(t, vehicle.Operational, c.Status())
	require.NotNil(t, c.LastCleaned())
	assert.Equal(t, cleanedAt, *c.LastCleaned())
}

func TestRestoreCompartment(t *testing.T) {
	t.Run("rejects volume above capacity", func(t *testing.T) {
		_, err := vehicle.RestoreCompartment(kernel.NewUUID(), 1, "Comp-1", 10000, nil,
			vehicle.Operational, nil, 10001, nil, false, nil, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := vehicle.RestoreCompartment(kernel.NewUUID(), 1, "Comp-1", 10000, nil,
			vehicle.CompartmentStatusUnknown, nil, 0, nil, false, nil, nil)

		require.Error(t, err)
	})
}
