package queries

import (
	"errors"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/pkg/guard"
)

var ErrSolveDeliveryRouteQueryIsNotConstructed = errors.New(
	"SolveDeliveryRouteQuery must be created via NewSolveDeliveryRouteQuery constructor",
)

// SolveDeliveryRouteQuery requests a route optimization run for a single
// delivery.
type SolveDeliveryRouteQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSolveDeliveryRouteQuery creates a query to optimize the route of the
// given delivery.
func NewSolveDeliveryRouteQuery(deliveryID kernel.UUID) (SolveDeliveryRouteQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return SolveDeliveryRouteQuery{}, err
	}

	return SolveDeliveryRouteQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SolveDeliveryRouteQuery) Validate() error {
	return q.guard.Validate(ErrSolveDeliveryRouteQueryIsNotConstructed)
}

// DeliveryID returns the delivery whose route is optimized.
func (q SolveDeliveryRouteQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}
