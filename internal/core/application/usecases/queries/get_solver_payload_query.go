package queries

import (
	"errors"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/pkg/guard"
)

var ErrGetSolverPayloadQueryIsNotConstructed = errors.New(
	"GetSolverPayloadQuery must be created via NewGetSolverPayloadQuery constructor",
)

// GetSolverPayloadQuery requests the route optimization problem for a
// single delivery.
type GetSolverPayloadQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSolverPayloadQuery creates a query for the given delivery's solver
// payload.
func NewGetSolverPayloadQuery(deliveryID kernel.UUID) (GetSolverPayloadQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetSolverPayloadQuery{}, err
	}

	return GetSolverPayloadQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSolverPayloadQuery) Validate() error {
	return q.guard.Validate(ErrGetSolverPayloadQueryIsNotConstructed)
}

// DeliveryID returns the delivery whose payload is requested.
func (q GetSolverPayloadQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}
