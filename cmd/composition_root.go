package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"fueldispatch/internal/adapters/out/postgres"
	"fueldispatch/internal/adapters/out/vroom"
	"fueldispatch/internal/core/application/usecases/commands"
	"fueldispatch/internal/core/application/usecases/queries"
	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/services"
	"fueldispatch/internal/core/ports"
	"fueldispatch/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	depot          kernel.GeoPoint
	routeOptimizer ports.RouteOptimizer
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	longitude, err := strconv.ParseFloat(configs.DepotLongitude, 64)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid depot longitude %q: %w", configs.DepotLongitude, err)
	}
	latitude, err := strconv.ParseFloat(configs.DepotLatitude, 64)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid depot latitude %q: %w", configs.DepotLatitude, err)
	}
	depot, err := kernel.NewGeoPoint(longitude, latitude)
	if err != nil {
		return CompositionRoot{}, err
	}

	routeOptimizer, err := vroom.NewClient(configs.VroomURL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		depot:          depot,
		routeOptimizer: routeOptimizer,
	}, nil
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f,
		services.NewCompartmentAllocator(services.NewContaminationMatrix(services.DefaultCleaningPolicy())),
		services.NewComplianceGate())
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteCompartmentCleaningCommandHandler() commands.CompleteCompartmentCleaningCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteCompartmentCleaningCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchDueDeliveriesCommandHandler() commands.DispatchDueDeliveriesCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchDueDeliveriesCommandHandler(f, services.NewComplianceGate())
}

func (c *CompositionRoot) CreateGetTankerVehiclesQueryHandler() queries.GetTankerVehiclesQueryHandler {
	return queries.NewGetTankerVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFuelProductsQueryHandler() queries.GetFuelProductsQueryHandler {
	return queries.NewGetFuelProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSolverPayloadQueryHandler() queries.GetSolverPayloadQueryHandler {
	// Read path: repositories run on the main connection, no transaction.
	uow := c.uowFactory.Create()
	return queries.NewGetSolverPayloadQueryHandler(
		uow.DeliveryRepository(),
		uow.VehicleRepository(),
		uow.ProductRepository(),
		uow.DestinationRepository(),
		c.depot,
	)
}

func (c *CompositionRoot) CreateSolveDeliveryRouteQueryHandler() queries.SolveDeliveryRouteQueryHandler {
	return queries.NewSolveDeliveryRouteQueryHandler(
		c.CreateGetSolverPayloadQueryHandler(),
		c.routeOptimizer,
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateDispatchDueDeliveriesCommandHandler(),
		c.uowFactory.Create().VehicleRepository(),
		logger,
	)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
