package product_test

import (
	"testing"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct(t *testing.T) *product.FuelProduct {
	t.Helper()

	p, err := product.NewFuelProduct(
		kernel.NewUUID(),
		"Ultra Low Sulfur Diesel",
		"ULSD",
		product.Diesel,
		10,
		0.84,
		"3",
		"UN1202",
		"diesel_group",
		[]string{"JET-A1", "PET-95"},
		[]string{"JET-A1"},
	)
	require.NoError(t, err)
	return p
}

func TestNewFuelProduct(t *testing.T) {
	t.Run("should create valid product with all valid parameters", func(t *testing.T) {
		p := validProduct(t)

		require.NoError(t, p.Validate())
		assert.Equal(t, "ULSD", p.Code())
		assert.Equal(t, product.Diesel, p.FuelType())
		assert.InDelta(t, 0.84, p.DensityKgPerLiter(), 0.0001)
		assert.Equal(t, "3", p.HazmatClass())
		assert.True(t, p.IsActive())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := product.NewFuelProduct(invalidID, "Diesel", "D10", product.Diesel,
			10, 0.84, "3", "UN1202", "diesel_group", nil, nil)

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should fail with empty code", func(t *testing.T) {
		p, err := product.NewFuelProduct(kernel.NewUUID(), "Diesel", "", product.Diesel,
			10, 0.84, "3", "UN1202", "diesel_group", nil, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, product.ErrCodeIsRequired)
		assert.Nil(t, p)
	})

	t.Run("should fail with invalid fuel type", func(t *testing.T) {
		p, err := product.NewFuelProduct(kernel.NewUUID(), "Diesel", "D10", product.FuelTypeUnknown,
			10, 0.84, "3", "UN1202", "diesel_group", nil, nil)

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should fail with non-positive density", func(t *testing.T) {
		p, err := product.NewFuelProduct(kernel.NewUUID(), "Diesel", "D10", product.Diesel,
			10, 0, "3", "UN1202", "diesel_group", nil, nil)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "density is invalid")
	})

	t.Run("should fail with negative sulfur content", func(t *testing.T) {
		p, err := product.NewFuelProduct(kernel.NewUUID(), "Diesel", "D10", product.Diesel,
			-1, 0.84, "3", "UN1202", "diesel_group", nil, nil)

		require.Error(t, err)
		assert.Nil(t, p)
	})
}

func TestFuelProduct_Contamination(t *testing.T) {
	p := validProduct(t)

	t.Run("contaminated by listed code", func(t *testing.T) {
		assert.True(t, p.IsContaminatedBy("JET-A1"))
		assert.True(t, p.IsContaminatedBy("PET-95"))
	})

	t.Run("not contaminated by unlisted code", func(t *testing.T) {
		assert.False(t, p.IsContaminatedBy("HFO-380"))
	})

	t.Run("cleaning required only for listed subset", func(t *testing.T) {
		assert.True(t, p.RequiresCleaningAfter("JET-A1"))
		assert.False(t, p.RequiresCleaningAfter("PET-95"))
	})
}

func TestFuelProduct_WeightKg(t *testing.T) {
	p := validProduct(t)

	assert.InDelta(t, 7560.0, p.WeightKg(9000), 0.001)
}

func TestFuelProduct_RequiresHazmatCertification(t *testing.T) {
	p := validProduct(t)

	assert.True(t, p.RequiresHazmatCertification())
}

func TestRestoreFuelProduct(t *testing.T) {
	t.Run("restores inactive product", func(t *testing.T) {
		p, err := product.RestoreFuelProduct(kernel.NewUUID(), "Jet A-1", "JET-A1",
			product.JetFuel, 3000, 0.804, "3", "UN1863", "jet_group", nil, nil, false)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.False(t, p.IsActive())
	})
}

func TestFuelProduct_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var p product.FuelProduct

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}

func TestFuelTypeFromString(t *testing.T) {
	t.Run("parses all valid names", func(t *testing.T) {
		for _, name := range []string{
			"diesel", "petrol", "kerosene", "jet_fuel", "heating_oil", "marine_fuel", "biofuel",
		} {
			ft, err := product.FuelTypeFromString(name)
			require.NoError(t, err)
			require.NoError(t, ft.Validate())
			assert.Equal(t, name, ft.String())
		}
	})

	t.Run("rejects unknown name", func(t *testing.T) {
		_, err := product.FuelTypeFromString("plasma")
		require.Error(t, err)
	})
}

func TestFuelType_Validate(t *testing.T) {
	t.Run("unknown is invalid", func(t *testing.T) {
		require.Error(t, product.FuelTypeUnknown.Validate())
	})

	t.Run("out of range is invalid", func(t *testing.T) {
		require.Error(t, product.FuelType(99).Validate())
		assert.Equal(t, "unknown", product.FuelType(99).String())
	})
}
