package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/model/vehicle"
)

// ErrComplianceViolation is the sentinel wrapped by ComplianceViolationError.
var ErrComplianceViolation = errors.New("vehicle is not compliant for dispatch")

// ComplianceViolationError reports why a vehicle may not carry a delivery,
// with the concrete actions needed to restore compliance.
type ComplianceViolationError struct {
	VehicleID           kernel.UUID
	CertificationStatus vehicle.CertificationStatus
	LastInspection      *time.Time
	RequiredActions     []string
}

func (e *ComplianceViolationError) Error() string {
	return fmt.Sprintf("%s: vehicle %s (status %s, required: %s)",
		ErrComplianceViolation, e.VehicleID, e.CertificationStatus,
		strings.Join(e.RequiredActions, ", "))
}

func (e *ComplianceViolationError) Unwrap() error {
	return ErrComplianceViolation
}

// ComplianceGate is a domain service that decides whether a tanker vehicle
// may be assigned a fuel delivery.
//
// Business rules:
//   - the vehicle must hold a current DOT certification
//   - the certification status must be Certified
//   - hazmat-classified cargo additionally requires hazmat certification
//
// The gate runs at delivery creation and again at dispatch, so a vehicle
// whose certification lapses between planning and departure is caught.
type ComplianceGate struct{}

// NewComplianceGate creates a new ComplianceGate instance.
func NewComplianceGate() ComplianceGate {
	return ComplianceGate{}
}

// Check verifies the vehicle against DOT and certification rules.
// requiresHazmat must be true when any product in the load is
// hazmat-classified.
func (g ComplianceGate) Check(veh *vehicle.TankerVehicle, requiresHazmat bool) error {
	if err := veh.Validate(); err != nil {
		return err
	}

	var actions []string
	if !veh.DOTCertified() {
		actions = append(actions, "DOT inspection")
	}
	if veh.CertificationStatus() != vehicle.Certified {
		actions = append(actions, "Hazmat certification renewal")
	} else if requiresHazmat && !veh.HazmatCertified() {
		actions = append(actions, "Hazmat certification renewal")
	}

	if len(actions) == 0 {
		return nil
	}

	return &ComplianceViolationError{
		VehicleID:           veh.ID(),
		CertificationStatus: veh.CertificationStatus(),
		LastInspection:      veh.LastInspection(),
		RequiredActions:     actions,
	}
}
