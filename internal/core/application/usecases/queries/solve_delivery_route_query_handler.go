package queries

import (
	"context"

	"fueldispatch/internal/core/ports"
)

// SolveDeliveryRouteQueryHandler builds the solver payload for a delivery
// and posts it to the route optimization engine. The engine's verdict is
// passed through untouched: a non-zero solution code is a valid answer,
// not a transport failure.
type SolveDeliveryRouteQueryHandler struct {
	payloadHandler GetSolverPayloadQueryHandler
	optimizer      ports.RouteOptimizer
}

// NewSolveDeliveryRouteQueryHandler creates a handler that runs route
// optimization on top of the payload assembly handler.
func NewSolveDeliveryRouteQueryHandler(payloadHandler GetSolverPayloadQueryHandler,
	optimizer ports.RouteOptimizer) SolveDeliveryRouteQueryHandler {
	return SolveDeliveryRouteQueryHandler{
		payloadHandler: payloadHandler,
		optimizer:      optimizer,
	}
}

// Handle assembles the payload for the delivery and submits it to the
// optimizer.
func (h SolveDeliveryRouteQueryHandler) Handle(
	ctx context.Context,
	query SolveDeliveryRouteQuery,
) (*ports.RouteSolution, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payloadQuery, err := NewGetSolverPayloadQuery(query.DeliveryID())
	if err != nil {
		return nil, err
	}

	payload, err := h.payloadHandler.Handle(ctx, payloadQuery)
	if err != nil {
		return nil, err
	}

	return h.optimizer.Solve(ctx, payload)
}
