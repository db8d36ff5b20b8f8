package kernel_test

import (
	"testing"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create valid geo point", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(-74.0060, 40.7128)

		require.NoError(t, err)
		require.NoError(t, point.Validate())
		assert.InDelta(t, -74.0060, point.Longitude(), 0.0001)
		assert.InDelta(t, 40.7128, point.Latitude(), 0.0001)
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(kernel.LongitudeMin, kernel.LatitudeMax)

		require.NoError(t, err)
		assert.InDelta(t, kernel.LongitudeMin, point.Longitude(), 0.0001)
		assert.InDelta(t, kernel.LatitudeMax, point.Latitude(), 0.0001)
	})

	t.Run("should fail with longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(181.0, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -90.5)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var point kernel.GeoPoint

		err := point.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "geo point must be created")
	})
}

func TestGeoPoint_LonLat(t *testing.T) {
	point, err := kernel.NewGeoPoint(13.4050, 52.5200)
	require.NoError(t, err)

	pair := point.LonLat()

	assert.InDelta(t, 13.4050, pair[0], 0.0001)
	assert.InDelta(t, 52.5200, pair[1], 0.0001)
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, _ := kernel.NewGeoPoint(1.5, 2.5)
	b, _ := kernel.NewGeoPoint(1.5, 2.5)
	c, _ := kernel.NewGeoPoint(1.5, 3.5)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
