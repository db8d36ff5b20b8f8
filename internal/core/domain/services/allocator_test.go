package services_test

import (
	"fmt"
	"testing"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/model/product"
	"fueldispatch/internal/core/domain/model/vehicle"
	"fueldispatch/internal/core/domain/services"
	"fueldispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAllocator() services.CompartmentAllocator {
	return services.NewCompartmentAllocator(
		services.NewContaminationMatrix(services.DefaultCleaningPolicy()))
}

func newTestVehicle(t *testing.T, compartments ...*vehicle.Compartment) *vehicle.TankerVehicle {
	t.Helper()
	if len(compartments) == 0 {
		for i := 1; i <= 3; i++ {
			c, err := vehicle.NewCompartment(kernel.NewUUID(), i, fmt.Sprintf("Comp-%d", i), 10000, nil)
			require.NoError(t, err)
			compartments = append(compartments, c)
		}
	}
	veh, err := vehicle.NewTankerVehicle(kernel.NewUUID(), "Tanker 12", "BT-4471", 30000, compartments)
	require.NoError(t, err)
	return veh
}

func newRequest(compartmentID kernel.UUID, p *product.FuelProduct, volume int) services.AllocationRequest {
	return services.AllocationRequest{
		CompartmentID: compartmentID,
		Product:       p,
		DestinationID: kernel.NewUUID(),
		VolumeLiters:  volume,
	}
}

func TestAllocate(t *testing.T) {
	allocator := newTestAllocator()
	diesel := newTestProduct(t, "Ultra Low Sulfur Diesel", "ULSD", product.Diesel,
		[]string{"JET-A1"}, []string{"JET-A1"})
	petrol := newTestProduct(t, "Unleaded 95", "PET-95", product.Petrol, nil, nil)

	t.Run("should allocate a valid batch and derive load figures", func(t *testing.T) {
		veh := newTestVehicle(t)
		compartments := veh.Compartments()

		result, err := allocator.Allocate(veh, []services.AllocationRequest{
			newRequest(compartments[0].ID(), diesel, 9000),
			newRequest(compartments[1].ID(), petrol, 6000),
		})

		require.NoError(t, err)
		require.Len(t, result.Assignments, 2)
		assert.Equal(t, 15000, result.TotalVolumeLiters)
		assert.InDelta(t, 12600.0, result.TotalWeightKg, 0.001)
		assert.InDelta(t, 50.0, result.CapacityUtilizationPercent, 0.001)
		assert.Equal(t, 9000, result.Assignments[0].VolumeLiters())
		assert.InDelta(t, 7560.0, result.Assignments[0].WeightKg(), 0.001)
		assert.True(t, result.Assignments[0].CompartmentID().IsEqual(compartments[0].ID()))
	})

	t.Run("should fail with no requests", func(t *testing.T) {
		veh := newTestVehicle(t)

		result, err := allocator.Allocate(veh, nil)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, services.ErrAllocationRequestsRequired)
	})

	t.Run("should fail with more requests than compartments", func(t *testing.T) {
		veh := newTestVehicle(t)
		requests := make([]services.AllocationRequest, 0, 4)
		for i := 0; i < 4; i++ {
			requests = append(requests, newRequest(kernel.NewUUID(), diesel, 1000))
		}

		result, err := allocator.Allocate(veh, requests)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, services.ErrTooManyAllocationRequests)
	})

	t.Run("should report a compartment requested twice", func(t *testing.T) {
		veh := newTestVehicle(t)
		compartmentID := veh.Compartments()[0].ID()

		result, err := allocator.Allocate(veh, []services.AllocationRequest{
			newRequest(compartmentID, diesel, 4000),
			newRequest(compartmentID, petrol, 3000),
		})

		require.Error(t, err)
		assert.Nil(t, result)
		require.ErrorIs(t, err, services.ErrDuplicateAssignment)

		var duplicateErr *services.DuplicateAssignmentError
		require.ErrorAs(t, err, &duplicateErr)
		assert.True(t, duplicateErr.CompartmentID.IsEqual(compartmentID))
	})

	t.Run("should fail for a compartment of another vehicle", func(t *testing.T) {
		veh := newTestVehicle(t)

		result, err := allocator.Allocate(veh, []services.AllocationRequest{
			newRequest(kernel.NewUUID(), diesel, 4000),
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, vehicle.ErrCompartmentNotFound)
	})

	t.Run("should fail for a non-operational compartment", func(t *testing.T) {
		failed, err := vehicle.RestoreCompartment(kernel.NewUUID(), 1, "Comp-1", 10000, nil,
			vehicle.Failed, nil, 0, nil, false, nil, nil)
		require.NoError(t, err)
		veh := newTestVehicle(t, failed)

		result, err := allocator.Allocate(veh, []services.AllocationRequest{
			newRequest(failed.ID(), diesel, 4000),
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, vehicle.ErrCompartmentNotOperational)
	})

	t.Run("should report capacity overflow with the exact amount", func(t *testing.T) {
		veh := newTestVehicle(t)
		compartmentID := veh.Compartments()[0].ID()

		result, err := allocator.Allocate(veh, []services.AllocationRequest{
			newRequest(compartmentID, diesel, 12500),
		})

		require.Error(t, err)
		assert.Nil(t, result)
		require.ErrorIs(t, err, services.ErrCapacityExceeded)

		var capacityErr *services.CapacityExceededError
		require.ErrorAs(t, err, &capacityErr)
		assert.Equal(t, 10000, capacityErr.CapacityLiters)
		assert.Equal(t, 12500, capacityErr.RequestedLiters)
		assert.Equal(t, 2500, capacityErr.OverflowLiters)
	})

	t.Run("should fail when combined volume exceeds the vehicle", func(t *testing.T) {
		var compartments []*vehicle.Compartment
		for i := 1; i <= 3; i++ {
			c, err := vehicle.NewCompartment(kernel.NewUUID(), i, fmt.Sprintf("Comp-%d", i), 10000, nil)
			require.NoError(t, err)
			compartments = append(compartments, c)
		}
		veh, err := vehicle.NewTankerVehicle(kernel.NewUUID(), "Tanker 12", "BT-4471",
			25000, compartments)
		require.NoError(t, err)

		result, err := allocator.Allocate(veh, []services.AllocationRequest{
			newRequest(compartments[0].ID(), diesel, 10000),
			newRequest(compartments[1].ID(), diesel, 10000),
			newRequest(compartments[2].ID(), diesel, 10000),
		})

		require.Error(t, err)
		assert.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		var rangeErr *errs.ValueIsOutOfRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "capacityUtilizationPercent", rangeErr.ParamName)
		assert.InDelta(t, 120.0, rangeErr.Value, 0.001)
	})
}

func TestAllocateCleaningGate(t *testing.T) {
	allocator := newTestAllocator()
	diesel := newTestProduct(t, "Ultra Low Sulfur Diesel", "ULSD", product.Diesel,
		[]string{"JET-A1"}, []string{"JET-A1"})
	jetFuel := newTestProduct(t, "Jet A-1", "JET-A1", product.JetFuel, nil, []string{"ULSD"})

	t.Run("should reject a compartment flagged for cleaning", func(t *testing.T) {
		flagged, err := vehicle.RestoreCompartment(kernel.NewUUID(), 1, "Comp-1", 10000, nil,
			vehicle.Operational, nil, 0, nil, true, nil, nil)
		require.NoError(t, err)
		veh := newTestVehicle(t, flagged)

		result, err := allocator.Allocate(veh, []services.AllocationRequest{
			newRequest(flagged.ID(), diesel, 4000),
		})

		require.Error(t, err)
		assert.Nil(t, result)
		require.ErrorIs(t, err, services.ErrCleaningRequired)

		var cleaningErr *services.CleaningRequiredError
		require.ErrorAs(t, err, &cleaningErr)
		assert.Equal(t, 180, cleaningErr.EstimatedMinutes)
		assert.InDelta(t, 675.00, cleaningErr.EstimatedCostUSD, 0.001)
	})

	t.Run("should allocate when the prior product only appears in the cleaning list", func(t *testing.T) {
		priorCode := "ULSD"
		used, err := vehicle.RestoreCompartment(kernel.NewUUID(), 1, "Comp-1", 10000, nil,
			vehicle.Operational, nil, 0, &priorCode, false, nil, nil)
		require.NoError(t, err)
		veh := newTestVehicle(t, used)

		request := newRequest(used.ID(), jetFuel, 4000)
		request.PriorProduct = diesel

		result, err := allocator.Allocate(veh, []services.AllocationRequest{request})

		require.NoError(t, err)
		require.Len(t, result.Assignments, 1)
		assert.Equal(t, 4000, result.TotalVolumeLiters)
	})
}

func TestAllocateContamination(t *testing.T) {
	allocator := newTestAllocator()
	diesel := newTestProduct(t, "Ultra Low Sulfur Diesel", "ULSD", product.Diesel,
		[]string{"JET-A1"}, []string{"JET-A1"})
	petrol := newTestProduct(t, "Unleaded 95", "PET-95", product.Petrol,
		[]string{"JET-A1"}, nil)
	jetFuel := newTestProduct(t, "Jet A-1", "JET-A1", product.JetFuel, nil, nil)

	t.Run("should collect every forbidden pairing in the batch", func(t *testing.T) {
		jetCode := "JET-A1"
		first, err := vehicle.RestoreCompartment(kernel.NewUUID(), 1, "Comp-1", 10000, nil,
			vehicle.Operational, nil, 0, &jetCode, false, nil, nil)
		require.NoError(t, err)
		second, err := vehicle.RestoreCompartment(kernel.NewUUID(), 2, "Comp-2", 10000, nil,
			vehicle.Operational, nil, 0, &jetCode, false, nil, nil)
		require.NoError(t, err)
		veh := newTestVehicle(t, first, second)

		firstRequest := newRequest(first.ID(), diesel, 4000)
		firstRequest.PriorProduct = jetFuel
		secondRequest := newRequest(second.ID(), petrol, 4000)
		secondRequest.PriorProduct = jetFuel

		result, err := allocator.Allocate(veh,
			[]services.AllocationRequest{firstRequest, secondRequest})

		require.Error(t, err)
		assert.Nil(t, result)
		require.ErrorIs(t, err, services.ErrContaminationRisk)

		var riskErr *services.ContaminationRiskError
		require.ErrorAs(t, err, &riskErr)
		require.Len(t, riskErr.Conflicts, 2)
		assert.Equal(t, "ULSD", riskErr.Conflicts[0].ProductCode)
		assert.Equal(t, "JET-A1", riskErr.Conflicts[0].PriorProductCode)
		assert.True(t, riskErr.Conflicts[0].CleaningRequired)
		assert.Equal(t, 180, riskErr.Conflicts[0].EstimatedMinutes)
		assert.InDelta(t, 675.00, riskErr.Conflicts[0].EstimatedCostUSD, 0.001)
		assert.Equal(t, "PET-95", riskErr.Conflicts[1].ProductCode)
		assert.False(t, riskErr.Conflicts[1].CleaningRequired)
		assert.Zero(t, riskErr.Conflicts[1].EstimatedMinutes)
	})

	t.Run("should fall back to product code lists without a prior product object", func(t *testing.T) {
		jetCode := "JET-A1"
		used, err := vehicle.RestoreCompartment(kernel.NewUUID(), 1, "Comp-1", 10000, nil,
			vehicle.Operational, nil, 0, &jetCode, false, nil, nil)
		require.NoError(t, err)
		veh := newTestVehicle(t, used)

		result, err := allocator.Allocate(veh, []services.AllocationRequest{
			newRequest(used.ID(), diesel, 4000),
		})

		require.Error(t, err)
		assert.Nil(t, result)
		require.ErrorIs(t, err, services.ErrContaminationRisk)

		var riskErr *services.ContaminationRiskError
		require.ErrorAs(t, err, &riskErr)
		require.Len(t, riskErr.Conflicts, 1)
		assert.True(t, riskErr.Conflicts[0].CleaningRequired)
		assert.Equal(t, 180, riskErr.Conflicts[0].EstimatedMinutes)
	})

	t.Run("should allow reloading the same product", func(t *testing.T) {
		dieselCode := "ULSD"
		used, err := vehicle.RestoreCompartment(kernel.NewUUID(), 1, "Comp-1", 10000, nil,
			vehicle.Operational, nil, 0, &dieselCode, false, nil, nil)
		require.NoError(t, err)
		veh := newTestVehicle(t, used)

		request := newRequest(used.ID(), diesel, 4000)
		request.PriorProduct = diesel

		result, err := allocator.Allocate(veh, []services.AllocationRequest{request})

		require.NoError(t, err)
		require.Len(t, result.Assignments, 1)
	})
}
