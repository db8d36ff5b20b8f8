package http

import (
	"errors"
	"net/http"
	"time"

	"fueldispatch/internal/core/application/usecases/commands"
	"fueldispatch/internal/core/application/usecases/queries"
	"fueldispatch/internal/core/domain/model/delivery"
	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/model/product"
	"fueldispatch/internal/core/domain/model/vehicle"
	"fueldispatch/internal/core/domain/services"
	"fueldispatch/internal/generated/servers"
	"fueldispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDeliveryHandler       commands.CreateDeliveryCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	cancelDeliveryHandler       commands.CancelDeliveryCommandHandler
	completeCleaningHandler     commands.CompleteCompartmentCleaningCommandHandler

	// Query handlers
	getTankerVehiclesHandler   queries.GetTankerVehiclesQueryHandler
	getFuelProductsHandler     queries.GetFuelProductsQueryHandler
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler
	getSolverPayloadHandler    queries.GetSolverPayloadQueryHandler
	solveDeliveryRouteHandler  queries.SolveDeliveryRouteQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	completeCleaningHandler commands.CompleteCompartmentCleaningCommandHandler,
	getTankerVehiclesHandler queries.GetTankerVehiclesQueryHandler,
	getFuelProductsHandler queries.GetFuelProductsQueryHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
	getSolverPayloadHandler queries.GetSolverPayloadQueryHandler,
	solveDeliveryRouteHandler queries.SolveDeliveryRouteQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:       createDeliveryHandler,
		updateDeliveryStatusHandler: updateDeliveryStatusHandler,
		cancelDeliveryHandler:       cancelDeliveryHandler,
		completeCleaningHandler:     completeCleaningHandler,
		getTankerVehiclesHandler:    getTankerVehiclesHandler,
		getFuelProductsHandler:      getFuelProductsHandler,
		getActiveDeliveriesHandler:  getActiveDeliveriesHandler,
		getSolverPayloadHandler:     getSolverPayloadHandler,
		solveDeliveryRouteHandler:   solveDeliveryRouteHandler,
	}
}

// GetVehicles handles GET /api/v1/vehicles - retrieves fleet vehicles.
func (s *Server) GetVehicles(ctx echo.Context, params servers.GetVehiclesParams) error {
	operationalStatus := ""
	if params.OperationalStatus != nil {
		operationalStatus = *params.OperationalStatus
	}

	var certificationStatus *vehicle.CertificationStatus
	if params.CertificationStatus != nil {
		status, err := vehicle.CertificationStatusFromString(*params.CertificationStatus)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid certification status: " + err.Error(),
			})
		}
		certificationStatus = &status
	}

	minCapacityLiters := 0
	if params.MinCapacityLiters != nil {
		minCapacityLiters = *params.MinCapacityLiters
	}

	query, err := queries.NewGetTankerVehiclesQuery(operationalStatus, certificationStatus, minCapacityLiters)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid vehicle filters: " + err.Error(),
		})
	}

	vehicles, err := s.getTankerVehiclesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve vehicles",
		})
	}

	response := make([]servers.Vehicle, len(vehicles))
	for i, v := range vehicles {
		response[i] = servers.Vehicle{
			Id:                  v.ID.Bytes(),
			Name:                v.Name,
			LicensePlate:        v.LicensePlate,
			TotalCapacityLiters: v.TotalCapacityLiters,
			CompartmentCount:    v.CompartmentCount,
			DotCertified:        v.DOTCertified,
			HazmatCertified:     v.HazmatCertified,
			CertificationStatus: v.CertificationStatus,
			OperationalStatus:   v.OperationalStatus,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProducts handles GET /api/v1/products - retrieves catalog fuel products.
func (s *Server) GetProducts(ctx echo.Context, params servers.GetProductsParams) error {
	var fuelType *product.FuelType
	if params.FuelType != nil {
		ft, err := product.FuelTypeFromString(*params.FuelType)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid fuel type: " + err.Error(),
			})
		}
		fuelType = &ft
	}

	compatibilityGroup := ""
	if params.CompatibilityGroup != nil {
		compatibilityGroup = *params.CompatibilityGroup
	}

	var maxSulfurPPM *float64
	if params.MaxSulfurPpm != nil {
		ppm := float64(*params.MaxSulfurPpm)
		maxSulfurPPM = &ppm
	}

	activeOnly := false
	if params.ActiveOnly != nil {
		activeOnly = *params.ActiveOnly
	}

	query, err := queries.NewGetFuelProductsQuery(fuelType, compatibilityGroup, maxSulfurPPM, activeOnly)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid product filters: " + err.Error(),
		})
	}

	products, err := s.getFuelProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve products",
		})
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = servers.Product{
			Id:                 p.ID.Bytes(),
			Name:               p.Name,
			Code:               p.Code,
			FuelType:           p.FuelType,
			SulfurPpm:          float32(p.SulfurPPM),
			DensityKgPerLiter:  float32(p.DensityKgPerLiter),
			HazmatClass:        p.HazmatClass,
			UnNumber:           p.UNNumber,
			CompatibilityGroup: p.CompatibilityGroup,
			Active:             p.Active,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDelivery handles POST /api/v1/deliveries - plans a new delivery.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var newDelivery servers.NewDelivery
	if err := ctx.Bind(&newDelivery); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	vehicleID, err := kernel.UUIDFromBytes(newDelivery.VehicleId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid vehicle id: " + err.Error(),
		})
	}

	requests := make([]commands.CompartmentRequest, len(newDelivery.Requests))
	for i, r := range newDelivery.Requests {
		compartmentID, idErr := kernel.UUIDFromBytes(r.CompartmentId[:])
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid compartment id: " + idErr.Error(),
			})
		}
		productID, idErr := kernel.UUIDFromBytes(r.ProductId[:])
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid product id: " + idErr.Error(),
			})
		}
		destinationID, idErr := kernel.UUIDFromBytes(r.DestinationId[:])
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid destination id: " + idErr.Error(),
			})
		}

		requests[i] = commands.CompartmentRequest{
			CompartmentID:   compartmentID,
			ProductID:       productID,
			DestinationID:   destinationID,
			VolumeLiters:    r.VolumeLiters,
			LoadingSequence: r.LoadingSequence,
		}
	}

	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), vehicleID,
		newDelivery.PlannedDeparture, newDelivery.PlannedCompletion, requests)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery data: " + err.Error(),
		})
	}

	if handleErr := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.deliveryPlanningError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active - retrieves all
// non-terminal deliveries.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	query := queries.NewGetActiveDeliveriesQuery()

	deliveries, err := s.getActiveDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve deliveries",
		})
	}

	response := make([]servers.Delivery, len(deliveries))
	for i, d := range deliveries {
		response[i] = servers.Delivery{
			Id:                         d.ID.Bytes(),
			Reference:                  d.Reference,
			VehicleId:                  d.VehicleID.Bytes(),
			Status:                     d.Status,
			PlannedDeparture:           d.PlannedDeparture,
			PlannedCompletion:          d.PlannedCompletion,
			TotalVolumeLiters:          d.TotalVolumeLiters,
			CapacityUtilizationPercent: float32(d.CapacityUtilizationPercent),
			AssignmentCount:            d.AssignmentCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateDeliveryStatus handles POST /api/v1/deliveries/{deliveryId}/status -
// advances a delivery through its lifecycle.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context, deliveryId openapi_types.UUID) error {
	var update servers.DeliveryStatusUpdate
	if err := ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	deliveryID, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery id: " + err.Error(),
		})
	}

	target, err := delivery.StatusFromString(update.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + err.Error(),
		})
	}

	var distanceKm, fuelConsumedLiters *float64
	if update.DistanceKm != nil {
		km := float64(*update.DistanceKm)
		distanceKm = &km
	}
	if update.FuelConsumedLiters != nil {
		liters := float64(*update.FuelConsumedLiters)
		fuelConsumedLiters = &liters
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, target,
		update.OccurredAt, distanceKm, fuelConsumedLiters)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status update: " + err.Error(),
		})
	}

	if handleErr := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.deliveryLifecycleError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDelivery handles POST /api/v1/deliveries/{deliveryId}/cancel -
// cancels a delivery.
func (s *Server) CancelDelivery(ctx echo.Context, deliveryId openapi_types.UUID) error {
	deliveryID, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery id: " + err.Error(),
		})
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cancellation: " + err.Error(),
		})
	}

	if handleErr := s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.deliveryLifecycleError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetSolverPayload handles GET /api/v1/deliveries/{deliveryId}/solver-payload -
// builds the route optimization problem for a delivery.
func (s *Server) GetSolverPayload(ctx echo.Context, deliveryId openapi_types.UUID) error {
	deliveryID, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery id: " + err.Error(),
		})
	}

	query, err := queries.NewGetSolverPayloadQuery(deliveryID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid payload request: " + err.Error(),
		})
	}

	payload, err := s.getSolverPayloadHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Delivery not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build solver payload",
		})
	}

	return ctx.JSON(http.StatusOK, payload)
}

// SolveDeliveryRoute handles POST /api/v1/deliveries/{deliveryId}/solve -
// runs route optimization for a delivery.
func (s *Server) SolveDeliveryRoute(ctx echo.Context, deliveryId openapi_types.UUID) error {
	deliveryID, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery id: " + err.Error(),
		})
	}

	query, err := queries.NewSolveDeliveryRouteQuery(deliveryID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid solve request: " + err.Error(),
		})
	}

	solution, err := s.solveDeliveryRouteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Delivery not found",
			})
		}
		return ctx.JSON(http.StatusBadGateway, servers.Error{
			Code:    http.StatusBadGateway,
			Message: "Route solver unavailable",
		})
	}

	return ctx.JSON(http.StatusOK, servers.RouteSolution{
		Code:            solution.Code,
		Routes:          solution.Routes,
		DistanceMeters:  solution.DistanceMeters,
		DurationSeconds: solution.DurationSeconds,
		Unassigned:      solution.Unassigned,
	})
}

// CompleteCompartmentCleaning handles POST /api/v1/compartments/{compartmentId}/cleaning-complete -
// records a finished compartment wash.
func (s *Server) CompleteCompartmentCleaning(ctx echo.Context, compartmentId openapi_types.UUID) error {
	compartmentID, err := kernel.UUIDFromBytes(compartmentId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid compartment id: " + err.Error(),
		})
	}

	cmd, err := commands.NewCompleteCompartmentCleaningCommand(compartmentID, time.Now().UTC())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cleaning completion: " + err.Error(),
		})
	}

	if handleErr := s.completeCleaningHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Compartment not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to record cleaning",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// deliveryPlanningError maps planning failures to HTTP responses. Allocation
// and compliance rejections are conflicts: the request was well-formed but
// clashes with the current fleet state.
func (s *Server) deliveryPlanningError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrComplianceViolation),
		errors.Is(err, services.ErrCapacityExceeded),
		errors.Is(err, services.ErrDuplicateAssignment),
		errors.Is(err, services.ErrCleaningRequired),
		errors.Is(err, services.ErrContaminationRisk),
		errors.Is(err, services.ErrTooManyAllocationRequests):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to plan delivery",
		})
	}
}

// deliveryLifecycleError maps status transition failures to HTTP responses.
func (s *Server) deliveryLifecycleError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Delivery not found",
		})
	case errors.Is(err, delivery.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update delivery",
		})
	}
}
