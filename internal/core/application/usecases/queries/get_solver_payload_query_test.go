package queries_test

import (
	"testing"

	"fueldispatch/internal/core/application/usecases/queries"
	"fueldispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetSolverPayloadQuery_ValidInput(t *testing.T) {
	deliveryID := kernel.NewUUID()

	query, err := queries.NewGetSolverPayloadQuery(deliveryID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, deliveryID, query.DeliveryID())
}

func TestNewGetSolverPayloadQuery_InvalidDeliveryID(t *testing.T) {
	_, err := queries.NewGetSolverPayloadQuery(kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetSolverPayloadQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetSolverPayloadQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetSolverPayloadQueryIsNotConstructed)
}
