package vehicle

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/pkg/errs"
	"fueldispatch/internal/pkg/guard"
)

const (
	// MinCompartments is the minimum number of compartments a tanker carries.
	MinCompartments = 1
	// MaxCompartments is the domain ceiling for specialized tankers.
	MaxCompartments = 12
)

// Domain errors for tanker vehicle operations.
var (
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized TankerVehicle.
	ErrVehicleIsNotConstructed = errors.New("TankerVehicle must be created via NewTankerVehicle constructor")
	// ErrVehicleNameIsRequired is returned when attempting to create a vehicle without a name.
	ErrVehicleNameIsRequired = errs.NewValueIsRequiredError("vehicle name")
	// ErrLicensePlateIsRequired is returned when attempting to create a vehicle without a license plate.
	ErrLicensePlateIsRequired = errs.NewValueIsRequiredError("license plate")
	// ErrCompartmentNotFound is returned when a requested compartment does not belong to the vehicle.
	ErrCompartmentNotFound = errors.New("compartment not found")
	// ErrDuplicateCompartmentNumber is returned when two compartments share an ordinal number.
	ErrDuplicateCompartmentNumber = errors.New("compartment number must be unique per vehicle")
)

// TankerVehicle represents a multi-compartment bulk fuel tanker.
// It is an aggregate root owning its ordered Compartments; compartments never
// exist outside a vehicle.
//
// Key responsibilities:
//   - Managing vehicle identity and declared total capacity
//   - Owning compartments and enforcing ordinal uniqueness
//   - Tracking DOT/hazmat certification for compliance gating
//
// Business rules:
//   - Compartment count is between 1 and 12 and equals the number of owned
//     compartments (the declared total capacity is a separate figure and need
//     not equal the sum of compartment capacities)
//   - Only a vehicle with certification status "certified" and the DOT flag
//     set is eligible for deliveries; hazmat cargo additionally requires the
//     hazmat certification flag
type TankerVehicle struct {
	// id uniquely identifies the vehicle
	id kernel.UUID
	// name is the human-readable vehicle name
	name string
	// licensePlate is the registration plate
	licensePlate string
	// totalCapacityLiters is the declared total capacity
	totalCapacityLiters int
	// dotCertified indicates a current DOT certification
	dotCertified bool
	// hazmatCertified indicates a current hazmat endorsement
	hazmatCertified bool
	// certificationStatus is the regulatory certification state
	certificationStatus CertificationStatus
	// lastInspection records the most recent DOT inspection, nil if none
	lastInspection *time.Time
	// operationalStatus is the coarse fleet status, e.g. "available"
	operationalStatus string
	// compartments are the owned sub-tanks, ordered by ordinal number
	compartments []*Compartment
	// guard ensures the vehicle was properly constructed
	guard guard.ConstructorGuard
}

// NewTankerVehicle creates a TankerVehicle owning the given compartments.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: human-readable name (must be non-empty)
//   - licensePlate: registration plate (must be non-empty)
//   - totalCapacityLiters: declared total capacity (must be > 0)
//   - compartments: owned compartments (1..12, unique ordinal numbers)
//
// The vehicle starts with certification status pending_renewal and
// operational status "available"; certification facts are operational events
// recorded via SetCertification.
func NewTankerVehicle(
	id kernel.UUID,
	name string,
	licensePlate string,
	totalCapacityLiters int,
	compartments []*Compartment,
) (*TankerVehicle, error) {
	v := &TankerVehicle{
		certificationStatus: PendingRenewal,
		operationalStatus:   "available",
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setName(name),
		v.setLicensePlate(licensePlate),
		v.setTotalCapacity(totalCapacityLiters),
		v.setCompartments(compartments),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreTankerVehicle reconstructs a TankerVehicle from persistent storage,
// including certification state and operational status.
func RestoreTankerVehicle(
	id kernel.UUID,
	name string,
	licensePlate string,
	totalCapacityLiters int,
	compartments []*Compartment,
	dotCertified bool,
	hazmatCertified bool,
	certificationStatus CertificationStatus,
	lastInspection *time.Time,
	operationalStatus string,
) (*TankerVehicle, error) {
	v, err := NewTankerVehicle(id, name, licensePlate, totalCapacityLiters, compartments)
	if err != nil {
		return nil, err
	}

	if err = certificationStatus.Validate(); err != nil {
		return nil, err
	}

	v.dotCertified = dotCertified
	v.hazmatCertified = hazmatCertified
	v.certificationStatus = certificationStatus

	if lastInspection != nil {
		ts := *lastInspection
		v.lastInspection = &ts
	}

	if operationalStatus != "" {
		v.operationalStatus = operationalStatus
	}

	return v, nil
}

// Validate ensures the vehicle was created through its constructor.
func (v *TankerVehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by their unique identifiers.
func (v *TankerVehicle) IsEqual(other *TankerVehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *TankerVehicle) ID() kernel.UUID {
	return v.id
}

// Name returns the human-readable vehicle name.
func (v *TankerVehicle) Name() string {
	return v.name
}

// LicensePlate returns the registration plate.
func (v *TankerVehicle) LicensePlate() string {
	return v.licensePlate
}

// TotalCapacityLiters returns the declared total capacity.
func (v *TankerVehicle) TotalCapacityLiters() int {
	return v.totalCapacityLiters
}

// CompartmentCount returns the number of owned compartments.
func (v *TankerVehicle) CompartmentCount() int {
	return len(v.compartments)
}

// Compartments returns the owned compartments in ordinal order.
func (v *TankerVehicle) Compartments() []*Compartment {
	result := make([]*Compartment, len(v.compartments))
	copy(result, v.compartments)
	return result
}

// CompartmentByID finds an owned compartment by its identifier.
// Returns ErrCompartmentNotFound if the compartment does not belong to this
// vehicle.
func (v *TankerVehicle) CompartmentByID(id kernel.UUID) (*Compartment, error) {
	for _, c := range v.compartments {
		if c.ID().IsEqual(id) {
			return c, nil
		}
	}
	return nil, ErrCompartmentNotFound
}

// DOTCertified reports whether the vehicle holds a current DOT certification.
func (v *TankerVehicle) DOTCertified() bool {
	return v.dotCertified
}

// HazmatCertified reports whether the vehicle holds a hazmat endorsement.
func (v *TankerVehicle) HazmatCertified() bool {
	return v.hazmatCertified
}

// CertificationStatus returns the regulatory certification state.
func (v *TankerVehicle) CertificationStatus() CertificationStatus {
	return v.certificationStatus
}

// LastInspection returns the most recent DOT inspection time, nil if none.
func (v *TankerVehicle) LastInspection() *time.Time {
	return v.lastInspection
}

// OperationalStatus returns the coarse fleet status.
func (v *TankerVehicle) OperationalStatus() string {
	return v.operationalStatus
}

// SetCertification records a certification event (renewal, expiry,
// suspension) coming from the external provisioning process.
func (v *TankerVehicle) SetCertification(
	status CertificationStatus,
	dotCertified bool,
	hazmatCertified bool,
	inspectedAt *time.Time,
) error {
	if err := status.Validate(); err != nil {
		return err
	}

	v.certificationStatus = status
	v.dotCertified = dotCertified
	v.hazmatCertified = hazmatCertified

	if inspectedAt != nil {
		ts := *inspectedAt
		v.lastInspection = &ts
	}

	return nil
}

// IsEligibleForDelivery reports whether the vehicle may be assigned a
// delivery at all: certification status must be certified and the DOT flag
// set. Hazmat eligibility is a separate, cargo-dependent check.
func (v *TankerVehicle) IsEligibleForDelivery() bool {
	return v.dotCertified && v.certificationStatus == Certified
}

func (v *TankerVehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *TankerVehicle) setName(name string) error {
	if name == "" {
		return ErrVehicleNameIsRequired
	}
	v.name = name
	return nil
}

func (v *TankerVehicle) setLicensePlate(licensePlate string) error {
	if licensePlate == "" {
		return ErrLicensePlateIsRequired
	}
	v.licensePlate = licensePlate
	return nil
}

func (v *TankerVehicle) setTotalCapacity(totalCapacityLiters int) error {
	if totalCapacityLiters <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("total capacity is invalid",
			fmt.Errorf("%d is not greater than 0", totalCapacityLiters))
	}
	v.totalCapacityLiters = totalCapacityLiters
	return nil
}

func (v *TankerVehicle) setCompartments(compartments []*Compartment) error {
	if len(compartments) < MinCompartments || len(compartments) > MaxCompartments {
		return errs.NewValueIsOutOfRangeError(
			"compartment count", len(compartments), MinCompartments, MaxCompartments)
	}

	seen := make(map[int]struct{}, len(compartments))
	for _, c := range compartments {
		if err := c.Validate(); err != nil {
			return err
		}
		if _, ok := seen[c.Number()]; ok {
			return ErrDuplicateCompartmentNumber
		}
		seen[c.Number()] = struct{}{}
	}

	ordered := make([]*Compartment, len(compartments))
	copy(ordered, compartments)
	slices.SortFunc(ordered, func(a, b *Compartment) int {
		return a.Number() - b.Number()
	})

	v.compartments = ordered
	return nil
}
