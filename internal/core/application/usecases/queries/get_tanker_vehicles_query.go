package queries

import (
	"errors"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/model/vehicle"
	"fueldispatch/internal/pkg/errs"
	"fueldispatch/internal/pkg/guard"
)

var ErrGetTankerVehiclesQueryIsNotConstructed = errors.New(
	"GetTankerVehiclesQuery must be created via NewGetTankerVehiclesQuery constructor",
)

// GetTankerVehiclesQuery retrieves fleet vehicles for dispatcher screens.
// All filters are optional: an empty operational status, a nil certification
// status and a zero minimum capacity each mean "no filter".
//
// Example:
//
//	certified := vehicle.Certified
//	query, _ := NewGetTankerVehiclesQuery("available", &certified, 20000)
//	handler := NewGetTankerVehiclesQueryHandler(db)
//
//	vehicles, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get vehicles: %w", err)
//	}
type GetTankerVehiclesQuery struct {
	operationalStatus   string
	certificationStatus *vehicle.CertificationStatus
	minCapacityLiters   int

	guard guard.ConstructorGuard
}

// NewGetTankerVehiclesQuery creates a query to retrieve fleet vehicles with
// optional filters.
func NewGetTankerVehiclesQuery(operationalStatus string,
	certificationStatus *vehicle.CertificationStatus,
	minCapacityLiters int) (GetTankerVehiclesQuery, error) {
	if certificationStatus != nil {
		if err := certificationStatus.Validate(); err != nil {
			return GetTankerVehiclesQuery{}, err
		}
	}
	if minCapacityLiters < 0 {
		return GetTankerVehiclesQuery{}, errs.NewValueIsInvalidError(
			"minCapacityLiters must not be negative")
	}

	return GetTankerVehiclesQuery{
		operationalStatus:   operationalStatus,
		certificationStatus: certificationStatus,
		minCapacityLiters:   minCapacityLiters,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTankerVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetTankerVehiclesQueryIsNotConstructed)
}

// OperationalStatus returns the fleet status filter, empty for none.
func (q GetTankerVehiclesQuery) OperationalStatus() string {
	return q.operationalStatus
}

// CertificationStatus returns the certification filter, nil for none.
func (q GetTankerVehiclesQuery) CertificationStatus() *vehicle.CertificationStatus {
	return q.certificationStatus
}

// MinCapacityLiters returns the minimum total capacity filter, zero for none.
func (q GetTankerVehiclesQuery) MinCapacityLiters() int {
	return q.minCapacityLiters
}

// GetTankerVehiclesQueryResponse represents a fleet vehicle read model.
type GetTankerVehiclesQueryResponse struct {
	ID                  kernel.UUID
	Name                string
	LicensePlate        string
	TotalCapacityLiters int
	CompartmentCount    int
	DOTCertified        bool
	HazmatCertified     bool
	CertificationStatus string
	OperationalStatus   string
}
