package ports

import (
	"context"

	"fueldispatch/internal/core/domain/services"
)

// RouteSolution is the summary of an optimization run returned by the
// external solver.
type RouteSolution struct {
	Code            int
	Routes          int
	DistanceMeters  int
	DurationSeconds int
	Unassigned      int
}

// RouteOptimizer submits solver payloads to the external route optimization
// engine. A non-zero solution code means the solver rejected the problem;
// the attempt is still reported to the caller.
type RouteOptimizer interface {
	Solve(ctx context.Context, payload *services.SolverPayload) (*RouteSolution, error)
}
