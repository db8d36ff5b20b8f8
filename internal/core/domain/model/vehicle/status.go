package vehicle

import (
	"fmt"

	"fueldispatch/internal/pkg/errs"
)

// CertificationStatus represents the DOT/regulatory certification state of a
// tanker vehicle. Only Certified vehicles are eligible for deliveries.
type CertificationStatus int

const (
	// CertificationUnknown represents an invalid or undefined certification status.
	CertificationUnknown CertificationStatus = iota

	// Certified means the vehicle holds a current DOT certification.
	Certified

	// CertificationExpired means the certification lapsed and must be renewed.
	CertificationExpired

	// CertificationSuspended means the certification was revoked pending review.
	CertificationSuspended

	// PendingRenewal means a renewal is in progress; the vehicle is not eligible
	// for deliveries until it completes.
	PendingRenewal
)

func getCertificationStatusStrings() map[CertificationStatus]string {
	return map[CertificationStatus]string{
		CertificationUnknown:   "unknown",
		Certified:              "certified",
		CertificationExpired:   "expired",
		CertificationSuspended: "suspended",
		PendingRenewal:         "pending_renewal",
	}
}

func getValidCertificationStatusStrings() map[CertificationStatus]string {
	//nolint:exhaustive // CertificationUnknown is intentionally excluded as it's invalid
	return map[CertificationStatus]string{
		Certified:              "certified",
		CertificationExpired:   "expired",
		CertificationSuspended: "suspended",
		PendingRenewal:         "pending_renewal",
	}
}

// Validate checks if the CertificationStatus value is valid.
func (s CertificationStatus) Validate() error {
	if _, ok := getValidCertificationStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("certification status is invalid",
			fmt.Errorf("%d is not a valid certification status", s))
	}
	return nil
}

// String returns the snake_case name of the certification status.
func (s CertificationStatus) String() string {
	if str, ok := getCertificationStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CertificationStatusFromString parses a certification status from its
// snake_case name. Returns an error for unrecognized names.
func CertificationStatusFromString(s string) (CertificationStatus, error) {
	for status, str := range getValidCertificationStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return CertificationUnknown, errs.NewValueIsInvalidErrorWithCause("certification status is invalid",
		fmt.Errorf("%q is not a valid certification status", s))
}

// CompartmentStatus represents the operational condition of a compartment.
// Only Operational compartments may receive delivery assignments.
type CompartmentStatus int

const (
	// CompartmentStatusUnknown represents an invalid or undefined compartment status.
	CompartmentStatusUnknown CompartmentStatus = iota

	// Operational means the compartment is available for loading.
	Operational

	// MaintenanceRequired means the compartment needs service before reuse.
	MaintenanceRequired

	// Failed means the compartment has a fault and must not be loaded.
	Failed

	// CleaningInProgress means a cleaning cycle is running.
	CleaningInProgress

	// OutOfService means the compartment is withdrawn from operation.
	OutOfService
)

func getCompartmentStatusStrings() map[CompartmentStatus]string {
	return map[CompartmentStatus]string{
		CompartmentStatusUnknown: "unknown",
		Operational:              "operational",
		MaintenanceRequired:      "maintenance_required",
		Failed:                   "failed",
		CleaningInProgress:       "cleaning_in_progress",
		OutOfService:             "out_of_service",
	}
}

func getValidCompartmentStatusStrings() map[CompartmentStatus]string {
	//nolint:exhaustive // CompartmentStatusUnknown is intentionally excluded as it's invalid
	return map[CompartmentStatus]string{
		Operational:         "operational",
		MaintenanceRequired: "maintenance_required",
		Failed:              "failed",
		CleaningInProgress:  "cleaning_in_progress",
		OutOfService:        "out_of_service",
	}
}

// Validate checks if the CompartmentStatus value is valid.
func (s CompartmentStatus) Validate() error {
	if _, ok := getValidCompartmentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("compartment status is invalid",
			fmt.Errorf("%d is not a valid compartment status", s))
	}
	return nil
}

// String returns the snake_case name of the compartment status.
func (s CompartmentStatus) String() string {
	if str, ok := getCompartmentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
