package services_test

import (
	"testing"
	"time"

	"fueldispatch/internal/core/domain/model/vehicle"
	"fueldispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplianceGateCheck(t *testing.T) {
	gate := services.NewComplianceGate()
	inspected := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("should pass a fully certified vehicle", func(t *testing.T) {
		veh := newTestVehicle(t)
		require.NoError(t, veh.SetCertification(vehicle.Certified, true, true, &inspected))

		require.NoError(t, gate.Check(veh, true))
	})

	t.Run("should pass without hazmat certification for non-hazmat cargo", func(t *testing.T) {
		veh := newTestVehicle(t)
		require.NoError(t, veh.SetCertification(vehicle.Certified, true, false, &inspected))

		require.NoError(t, gate.Check(veh, false))
	})

	t.Run("should reject a vehicle without DOT certification", func(t *testing.T) {
		veh := newTestVehicle(t)
		require.NoError(t, veh.SetCertification(vehicle.Certified, false, true, &inspected))

		err := gate.Check(veh, false)

		require.Error(t, err)
		require.ErrorIs(t, err, services.ErrComplianceViolation)

		var violation *services.ComplianceViolationError
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, []string{"DOT inspection"}, violation.RequiredActions)
		assert.True(t, violation.VehicleID.IsEqual(veh.ID()))
		require.NotNil(t, violation.LastInspection)
		assert.Equal(t, inspected, *violation.LastInspection)
	})

	t.Run("should reject an expired certification with both actions", func(t *testing.T) {
		veh := newTestVehicle(t)
		require.NoError(t, veh.SetCertification(vehicle.CertificationExpired, false, true, &inspected))

		err := gate.Check(veh, true)

		require.Error(t, err)

		var violation *services.ComplianceViolationError
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, []string{"DOT inspection", "Hazmat certification renewal"},
			violation.RequiredActions)
		assert.Equal(t, vehicle.CertificationExpired, violation.CertificationStatus)
	})

	t.Run("should reject hazmat cargo without hazmat certification", func(t *testing.T) {
		veh := newTestVehicle(t)
		require.NoError(t, veh.SetCertification(vehicle.Certified, true, false, &inspected))

		err := gate.Check(veh, true)

		require.Error(t, err)

		var violation *services.ComplianceViolationError
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, []string{"Hazmat certification renewal"}, violation.RequiredActions)
	})

	t.Run("should reject a freshly provisioned vehicle pending renewal", func(t *testing.T) {
		veh := newTestVehicle(t)

		err := gate.Check(veh, false)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrComplianceViolation)
	})
}
