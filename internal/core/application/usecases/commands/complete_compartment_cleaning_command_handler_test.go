package commands_test

import (
	"context"
	"testing"
	"time"

	"fueldispatch/internal/core/application/usecases/commands"
	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/model/vehicle"
	"fueldispatch/internal/core/ports"
	"fueldispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCleaningUoW struct{ mock.Mock }

func (m *MockCleaningUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCleaningUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCleaningUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCleaningUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockCleaningUoWFactory struct{ mock.Mock }

func (m *MockCleaningUoWFactory) Create() commands.VehicleUoW {
	args := m.Called()
	return args.Get(0).(commands.VehicleUoW)
}

// newVehicleWithDirtyCompartment restores a single-compartment vehicle whose
// compartment is flagged for cleaning after carrying gasoline.
func newVehicleWithDirtyCompartment(t *testing.T) *vehicle.TankerVehicle {
	t.Helper()

	lastProduct := "REG-87"
	compartment, err := vehicle.RestoreCompartment(kernel.NewUUID(), 1, "Compartment 1",
		10000, nil, vehicle.Operational, nil, 0, &lastProduct, true, nil, nil)
	require.NoError(t, err)

	veh, err := vehicle.NewTankerVehicle(kernel.NewUUID(), "Tanker 12", "BT-4471", 10000,
		[]*vehicle.Compartment{compartment})
	require.NoError(t, err)

	return veh
}

func TestCompleteCompartmentCleaningCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	veh := newVehicleWithDirtyCompartment(t)
	compartment := veh.Compartments()[0]
	cleanedAt := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCompleteCompartmentCleaningCommand(compartment.ID(), cleanedAt)
	require.NoError(t, err)

	vehicleRepo := new(MockPlanVehicleRepository)
	uow := new(MockCleaningUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("GetByCompartment", ctx, compartment.ID()).Return(veh, nil).Once(),
		vehicleRepo.On("Update", ctx, veh).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCleaningUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteCompartmentCleaningCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, compartment.RequiresCleaning())
	assert.Nil(t, compartment.LastProductCode())
	require.NotNil(t, compartment.LastCleaned())
	assert.Equal(t, cleanedAt, *compartment.LastCleaned())

	vehicleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCompleteCompartmentCleaningCommandHandler_Handle_VehicleNotFound(t *testing.T) {
	ctx := t.Context()
	compartmentID := kernel.NewUUID()

	cmd, err := commands.NewCompleteCompartmentCleaningCommand(compartmentID, time.Now())
	require.NoError(t, err)

	vehicleRepo := new(MockPlanVehicleRepository)
	uow := new(MockCleaningUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("GetByCompartment", ctx, compartmentID).
			Return(nil, errs.NewObjectNotFoundError("compartmentId", compartmentID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCleaningUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteCompartmentCleaningCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	vehicleRepo.AssertNotCalled(t, "Update")
	uow.AssertExpectations(t)
}

func TestCompleteCompartmentCleaningCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CompleteCompartmentCleaningCommand{} // not constructed properly

	factory := new(MockCleaningUoWFactory)
	handler := commands.NewCompleteCompartmentCleaningCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err,
		commands.ErrCompleteCompartmentCleaningCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
