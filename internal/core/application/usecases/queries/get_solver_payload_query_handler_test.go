package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"fueldispatch/internal/core/application/usecases/queries"
	"fueldispatch/internal/core/domain/model/delivery"
	"fueldispatch/internal/core/domain/model/destination"
	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/model/product"
	"fueldispatch/internal/core/domain/model/vehicle"
	"fueldispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPayloadDeliveryRepository struct{ mock.Mock }

func (m *MockPayloadDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockPayloadDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockPayloadDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockPayloadDeliveryRepository) GetAllPlannedDueBy(ctx context.Context, dueBy time.Time) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, dueBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

func (m *MockPayloadDeliveryRepository) GetAllActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

func (m *MockPayloadDeliveryRepository) CountByDepartureDate(ctx context.Context, departure time.Time) (int, error) {
	args := m.Called(ctx, departure)
	return args.Int(0), args.Error(1)
}

type MockPayloadVehicleRepository struct{ mock.Mock }

func (m *MockPayloadVehicleRepository) Add(ctx context.Context, v *vehicle.TankerVehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockPayloadVehicleRepository) Update(ctx context.Context, v *vehicle.TankerVehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockPayloadVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.TankerVehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.TankerVehicle), args.Error(1)
}

func (m *MockPayloadVehicleRepository) GetByCompartment(ctx context.Context, compartmentID kernel.UUID) (*vehicle.TankerVehicle, error) {
	args := m.Called(ctx, compartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.TankerVehicle), args.Error(1)
}

func (m *MockPayloadVehicleRepository) GetAllCertificationExpired(ctx context.Context) ([]*vehicle.TankerVehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.TankerVehicle), args.Error(1)
}

type MockPayloadProductRepository struct{ mock.Mock }

func (m *MockPayloadProductRepository) Add(ctx context.Context, p *product.FuelProduct) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPayloadProductRepository) Update(ctx context.Context, p *product.FuelProduct) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPayloadProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.FuelProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.FuelProduct), args.Error(1)
}

func (m *MockPayloadProductRepository) GetByCode(ctx context.Context, code string) (*product.FuelProduct, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.FuelProduct), args.Error(1)
}

type MockPayloadDestinationRepository struct{ mock.Mock }

func (m *MockPayloadDestinationRepository) Add(ctx context.Context, d *destination.Destination) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockPayloadDestinationRepository) Get(ctx context.Context, id kernel.UUID) (*destination.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*destination.Destination), args.Error(1)
}

func (m *MockPayloadDestinationRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*destination.Destination, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*destination.Destination), args.Error(1)
}

func TestGetSolverPayloadQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	var compartments []*vehicle.Compartment
	for i := 1; i <= 3; i++ {
		c, err := vehicle.NewCompartment(kernel.NewUUID(), i, fmt.Sprintf("Compartment %d", i), 10000, nil)
		require.NoError(t, err)
		compartments = append(compartments, c)
	}
	veh, err := vehicle.NewTankerVehicle(kernel.NewUUID(), "Tanker 12", "BT-4471", 30000, compartments)
	require.NoError(t, err)

	diesel, err := product.NewFuelProduct(kernel.NewUUID(), "Ultra Low Sulfur Diesel", "ULSD",
		product.Diesel, 10, 0.84, "3", "UN1202", "III", nil, nil)
	require.NoError(t, err)

	geo, err := kernel.NewGeoPoint(-73.9851, 40.7589)
	require.NoError(t, err)
	dest, err := destination.NewDestination(kernel.NewUUID(), "Midtown Station", "350 5th Ave", geo)
	require.NoError(t, err)

	assignment, err := delivery.NewCompartmentAssignment(kernel.NewUUID(), compartments[0].ID(),
		diesel.ID(), dest.ID(), 9000, 7560, nil)
	require.NoError(t, err)

	departure := time.Date(2026, 8, 31, 6, 0, 0, 0, time.UTC)
	d, err := delivery.NewDelivery(kernel.NewUUID(), "BT-DLV-260831-001", veh.ID(),
		departure, departure.Add(8*time.Hour), veh.TotalCapacityLiters(),
		[]*delivery.CompartmentAssignment{assignment})
	require.NoError(t, err)

	depot, err := kernel.NewGeoPoint(-74.0060, 40.7128)
	require.NoError(t, err)

	query, err := queries.NewGetSolverPayloadQuery(d.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockPayloadDeliveryRepository)
	vehicleRepo := new(MockPayloadVehicleRepository)
	productRepo := new(MockPayloadProductRepository)
	destinationRepo := new(MockPayloadDestinationRepository)

	deliveryRepo.On("Get", ctx, d.ID()).Return(d, nil).Once()
	vehicleRepo.On("Get", ctx, veh.ID()).Return(veh, nil).Once()
	productRepo.On("Get", ctx, diesel.ID()).Return(diesel, nil).Once()
	destinationRepo.On("GetAllByIDs", ctx, []kernel.UUID{dest.ID()}).
		Return([]*destination.Destination{dest}, nil).Once()

	handler := queries.NewGetSolverPayloadQueryHandler(deliveryRepo, vehicleRepo,
		productRepo, destinationRepo, depot)
	payload, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, payload.Shipments, 1)
	require.Len(t, payload.Vehicles, 1)
	assert.Equal(t, "delivery-"+dest.ID().String(), payload.Shipments[0].Delivery.ID)
	assert.Equal(t, geo.LonLat(), payload.Shipments[0].Delivery.Location)
	assert.Equal(t, depot.LonLat(), payload.Vehicles[0].Start)

	deliveryRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	destinationRepo.AssertExpectations(t)
}

func TestGetSolverPayloadQueryHandler_Handle_DeliveryNotFound(t *testing.T) {
	ctx := t.Context()

	deliveryID := kernel.NewUUID()
	query, err := queries.NewGetSolverPayloadQuery(deliveryID)
	require.NoError(t, err)

	deliveryRepo := new(MockPayloadDeliveryRepository)
	deliveryRepo.On("Get", ctx, deliveryID).
		Return(nil, errs.NewObjectNotFoundError("delivery", deliveryID.String())).Once()

	depot, err := kernel.NewGeoPoint(-74.0060, 40.7128)
	require.NoError(t, err)

	handler := queries.NewGetSolverPayloadQueryHandler(deliveryRepo,
		new(MockPayloadVehicleRepository), new(MockPayloadProductRepository),
		new(MockPayloadDestinationRepository), depot)
	_, err = handler.Handle(ctx, query)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
