package services_test

import (
	"testing"
	"time"

	"fueldispatch/internal/core/domain/model/delivery"
	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/model/product"
	"fueldispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolverPayloadBuild(t *testing.T) {
	builder := services.NewSolverPayloadBuilder()
	depot, err := kernel.NewGeoPoint(-74.0060, 40.7128)
	require.NoError(t, err)

	diesel := newTestProduct(t, "Ultra Low Sulfur Diesel", "ULSD", product.Diesel, nil, nil)
	veh := newTestVehicle(t)

	destinationID := kernel.NewUUID()
	destination, err := kernel.NewGeoPoint(-73.9851, 40.7589)
	require.NoError(t, err)

	assignment, err := delivery.NewCompartmentAssignment(kernel.NewUUID(),
		veh.Compartments()[0].ID(), diesel.ID(), destinationID, 9000, diesel.WeightKg(9000), nil)
	require.NoError(t, err)

	departure := time.Date(2026, 8, 31, 6, 0, 0, 0, time.UTC)
	d, err := delivery.NewDelivery(kernel.NewUUID(), delivery.NewReference(departure, 1),
		veh.ID(), departure, departure.Add(8*time.Hour), veh.TotalCapacityLiters(),
		[]*delivery.CompartmentAssignment{assignment})
	require.NoError(t, err)

	products := map[kernel.UUID]*product.FuelProduct{diesel.ID(): diesel}
	destinations := map[kernel.UUID]kernel.GeoPoint{destinationID: destination}

	t.Run("should build one shipment per assignment", func(t *testing.T) {
		payload, err := builder.Build(d, veh, products, destinations, depot)

		require.NoError(t, err)
		require.Len(t, payload.Shipments, 1)

		shipment := payload.Shipments[0]
		assert.Equal(t, "fuel-depot-loading", shipment.Pickup.ID)
		assert.Equal(t, depot.LonLat(), shipment.Pickup.Location)
		assert.Equal(t, [][2]int{{480, 600}}, shipment.Pickup.TimeWindows)
		assert.Equal(t, "delivery-"+destinationID.String(), shipment.Delivery.ID)
		assert.Equal(t, destination.LonLat(), shipment.Delivery.Location)
		assert.Equal(t, [][2]int{{600, 720}}, shipment.Delivery.TimeWindows)
		assert.Contains(t, shipment.Delivery.Description, "Ultra Low Sulfur Diesel")

		require.Len(t, shipment.Amount, 3)
		assert.InDelta(t, 7560.0, shipment.Amount[0], 0.001)
		assert.InDelta(t, 9.0, shipment.Amount[1], 0.001)
		assert.InDelta(t, 1.0, shipment.Amount[2], 0.001)

		assert.Equal(t, []string{"hazmat_class_3", "tanker_vehicle", "fuel_delivery",
			"fuel_type_diesel"}, shipment.Skills)
		assert.Equal(t, 5, shipment.Priority)
	})

	t.Run("should describe the tanker as a single depot-based vehicle", func(t *testing.T) {
		payload, err := builder.Build(d, veh, products, destinations, depot)

		require.NoError(t, err)
		require.Len(t, payload.Vehicles, 1)

		solverVehicle := payload.Vehicles[0]
		assert.Equal(t, "tanker-"+veh.ID().String(), solverVehicle.ID)
		assert.Equal(t, "driving", solverVehicle.Profile)
		assert.Equal(t, depot.LonLat(), solverVehicle.Start)
		assert.Equal(t, depot.LonLat(), solverVehicle.End)
		assert.Equal(t, [2]int{360, 1080}, solverVehicle.TimeWindow)

		require.Len(t, solverVehicle.Capacity, 3)
		assert.InDelta(t, 24000.0, solverVehicle.Capacity[0], 0.001)
		assert.InDelta(t, 30.0, solverVehicle.Capacity[1], 0.001)
		assert.InDelta(t, 3.0, solverVehicle.Capacity[2], 0.001)
	})

	t.Run("should fail when a product is missing", func(t *testing.T) {
		payload, err := builder.Build(d, veh, map[kernel.UUID]*product.FuelProduct{},
			destinations, depot)

		require.Error(t, err)
		assert.Nil(t, payload)
		assert.Contains(t, err.Error(), "object not found")
	})

	t.Run("should fail when a destination is missing", func(t *testing.T) {
		payload, err := builder.Build(d, veh, products,
			map[kernel.UUID]kernel.GeoPoint{}, depot)

		require.Error(t, err)
		assert.Nil(t, payload)
		assert.Contains(t, err.Error(), "object not found")
	})

	t.Run("should fail with an unconstructed depot", func(t *testing.T) {
		var zeroDepot kernel.GeoPoint

		payload, err := builder.Build(d, veh, products, destinations, zeroDepot)

		require.Error(t, err)
		assert.Nil(t, payload)
	})
}
