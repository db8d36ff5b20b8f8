package delivery

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/pkg/errs"
	"fueldispatch/internal/pkg/guard"
)

// CO2KgPerLiterDiesel is the emission factor applied to consumed fuel when a
// delivery completes with telemetry.
const CO2KgPerLiterDiesel = 2.64

var (
	ErrDeliveryIsNotConstructed = errors.New(
		"Delivery is not constructed. Use NewDelivery or RestoreDelivery")
	ErrReferenceIsRequired    = errs.NewValueIsRequiredError("reference")
	ErrAssignmentsAreRequired = errs.NewValueIsRequiredError("assignments")
	ErrPlannedWindowIsInvalid = errs.NewValueIsInvalidError(
		"plannedDeparture must be before plannedCompletion")
	ErrDuplicateCompartment = errs.NewValueIsInvalidError(
		"a compartment may carry at most one assignment per delivery")
	ErrVehicleCapacityIsInvalid = errs.NewValueIsInvalidError(
		"vehicleCapacityLiters must be positive")
	ErrUtilizationExceeded = errs.NewValueIsInvalidError(
		"assigned volume exceeds vehicle capacity")
	ErrAssignmentNotFound = errors.New("assignment not found in delivery")
)

// NewReference formats a human-readable delivery reference from the planned
// departure date and a daily sequence number, e.g. "BT-DLV-260831-007".
func NewReference(plannedDeparture time.Time, sequence int) string {
	return fmt.Sprintf("BT-DLV-%s-%03d", plannedDeparture.Format("060102"), sequence)
}

// Delivery is the aggregate root of a bulk fuel delivery run. It owns a set
// of compartment assignments produced by the allocator and drives two state
// machines: its own lifecycle (Status) and, through the root, the lifecycle
// of each assignment (AssignmentStatus).
//
// Aggregate invariants:
//   - at least one assignment, each compartment referenced at most once
//   - assigned volume never exceeds the vehicle's total capacity
//   - status moves one step at a time along the declared chain
//   - actualCompletion is set only when the status is Completed
//   - cancelling cascades to every non-terminal assignment and is idempotent
type Delivery struct {
	id        kernel.UUID
	reference string
	vehicleID kernel.UUID

	plannedDeparture  time.Time
	plannedCompletion time.Time

	assignments                []*CompartmentAssignment
	totalVolumeLiters          int
	totalWeightKg              float64
	capacityUtilizationPercent float64

	status           Status
	actualDeparture  *time.Time
	actualCompletion *time.Time

	distanceKm         *float64
	fuelConsumedLiters *float64
	co2EmissionsKg     *float64

	guard guard.ConstructorGuard
}

// NewDelivery creates a new delivery in the Planned status. Volume totals and
// capacity utilization are derived from the assignments against the vehicle's
// total capacity; a utilization above 100% is rejected rather than clamped.
func NewDelivery(id kernel.UUID, reference string, vehicleID kernel.UUID,
	plannedDeparture, plannedCompletion time.Time, vehicleCapacityLiters int,
	assignments []*CompartmentAssignment) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		vehicleID.Validate(),
	); err != nil {
		return nil, err
	}
	if reference == "" {
		return nil, ErrReferenceIsRequired
	}
	if !plannedDeparture.Before(plannedCompletion) {
		return nil, ErrPlannedWindowIsInvalid
	}
	if vehicleCapacityLiters <= 0 {
		return nil, ErrVehicleCapacityIsInvalid
	}
	if len(assignments) == 0 {
		return nil, ErrAssignmentsAreRequired
	}

	seen := make(map[kernel.UUID]struct{}, len(assignments))
	totalVolume := 0
	totalWeight := 0.0
	for _, assignment := range assignments {
		if err := assignment.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[assignment.CompartmentID()]; ok {
			return nil, ErrDuplicateCompartment
		}
		seen[assignment.CompartmentID()] = struct{}{}
		totalVolume += assignment.VolumeLiters()
		totalWeight += assignment.WeightKg()
	}

	utilization := float64(totalVolume) / float64(vehicleCapacityLiters) * 100
	if utilization > 100 {
		return nil, ErrUtilizationExceeded
	}

	return &Delivery{
		id:                         id,
		reference:                  reference,
		vehicleID:                  vehicleID,
		plannedDeparture:           plannedDeparture,
		plannedCompletion:          plannedCompletion,
		assignments:                slices.Clone(assignments),
		totalVolumeLiters:          totalVolume,
		totalWeightKg:              totalWeight,
		capacityUtilizationPercent: utilization,
		status:                     Planned,
		guard:                      guard.NewConstructorGuard(),
	}, nil
}

// RestoreDelivery restores a delivery from persistent storage with all its
// fields, including status, timestamps and telemetry.
func RestoreDelivery(id kernel.UUID, reference string, vehicleID kernel.UUID,
	plannedDeparture, plannedCompletion time.Time,
	assignments []*CompartmentAssignment,
	totalVolumeLiters int, totalWeightKg, capacityUtilizationPercent float64,
	status Status, actualDeparture, actualCompletion *time.Time,
	distanceKm, fuelConsumedLiters, co2EmissionsKg *float64) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		vehicleID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if reference == "" {
		return nil, ErrReferenceIsRequired
	}
	if len(assignments) == 0 {
		return nil, ErrAssignmentsAreRequired
	}

	return &Delivery{
		id:                         id,
		reference:                  reference,
		vehicleID:                  vehicleID,
		plannedDeparture:           plannedDeparture,
		plannedCompletion:          plannedCompletion,
		assignments:                slices.Clone(assignments),
		totalVolumeLiters:          totalVolumeLiters,
		totalWeightKg:              totalWeightKg,
		capacityUtilizationPercent: capacityUtilizationPercent,
		status:                     status,
		actualDeparture:            actualDeparture,
		actualCompletion:           actualCompletion,
		distanceKm:                 distanceKm,
		fuelConsumedLiters:         fuelConsumedLiters,
		co2EmissionsKg:             co2EmissionsKg,
		guard:                      guard.NewConstructorGuard(),
	}, nil
}

func (d *Delivery) ID() kernel.UUID                     { return d.id }
func (d *Delivery) Reference() string                   { return d.reference }
func (d *Delivery) VehicleID() kernel.UUID              { return d.vehicleID }
func (d *Delivery) PlannedDeparture() time.Time         { return d.plannedDeparture }
func (d *Delivery) PlannedCompletion() time.Time        { return d.plannedCompletion }
func (d *Delivery) TotalVolumeLiters() int              { return d.totalVolumeLiters }
func (d *Delivery) TotalWeightKg() float64              { return d.totalWeightKg }
func (d *Delivery) CapacityUtilizationPercent() float64 { return d.capacityUtilizationPercent }
func (d *Delivery) Status() Status                      { return d.status }
func (d *Delivery) ActualDeparture() *time.Time         { return d.actualDeparture }
func (d *Delivery) ActualCompletion() *time.Time        { return d.actualCompletion }
func (d *Delivery) DistanceKm() *float64                { return d.distanceKm }
func (d *Delivery) FuelConsumedLiters() *float64        { return d.fuelConsumedLiters }
func (d *Delivery) CO2EmissionsKg() *float64            { return d.co2EmissionsKg }

// Assignments returns the compartment assignments of the delivery.
func (d *Delivery) Assignments() []*CompartmentAssignment {
	return slices.Clone(d.assignments)
}

// AssignmentByID finds an assignment by its ID.
func (d *Delivery) AssignmentByID(id kernel.UUID) (*CompartmentAssignment, error) {
	for _, assignment := range d.assignments {
		if assignment.ID().IsEqual(id) {
			return assignment, nil
		}
	}
	return nil, errs.NewObjectNotFoundErrorWithCause("assignmentId", id.String(), ErrAssignmentNotFound)
}

// IsActive reports whether the delivery is still in a non-terminal state.
func (d *Delivery) IsActive() bool {
	return !d.status.IsTerminal()
}

// Dispatch releases the delivery to the depot and records the actual
// departure time.
func (d *Delivery) Dispatch(at time.Time) error {
	if err := d.transition(Dispatched); err != nil {
		return err
	}
	d.actualDeparture = &at
	return nil
}

// StartLoading marks the start of compartment loading at the depot and
// moves waiting assignments into loading.
func (d *Delivery) StartLoading() error {
	if err := d.transition(Loading); err != nil {
		return err
	}
	d.advanceAssignmentsToward(AssignmentLoading)
	return nil
}

// StartTransit marks the vehicle leaving the depot toward its destinations.
// Assignments still loading are sealed and moved into transit.
func (d *Delivery) StartTransit() error {
	if err := d.transition(InTransit); err != nil {
		return err
	}
	d.advanceAssignmentsToward(AssignmentInTransit)
	return nil
}

// StartUnloading marks the start of product discharge at a destination.
func (d *Delivery) StartUnloading() error {
	if err := d.transition(Unloading); err != nil {
		return err
	}
	d.advanceAssignmentsToward(AssignmentUnloading)
	return nil
}

// Complete finishes the delivery, stamping the completion time and recording
// trip telemetry. CO2 emissions are derived from consumed fuel when both
// distance and fuel figures are present.
func (d *Delivery) Complete(at time.Time, distanceKm, fuelConsumedLiters *float64) error {
	if err := d.transition(Completed); err != nil {
		return err
	}
	d.actualCompletion = &at
	d.distanceKm = distanceKm
	d.fuelConsumedLiters = fuelConsumedLiters
	if distanceKm != nil && fuelConsumedLiters != nil {
		co2 := *fuelConsumedLiters * CO2KgPerLiterDiesel
		d.co2EmissionsKg = &co2
	}
	d.advanceAssignmentsToward(AssignmentCompleted)
	return nil
}

// Cancel aborts the delivery and cascades the cancellation to every
// non-terminal assignment. Cancelling an already cancelled delivery is a
// no-op; cancelling a completed one is rejected.
func (d *Delivery) Cancel() error {
	if d.status == Cancelled {
		return nil
	}
	if err := d.transition(Cancelled); err != nil {
		return err
	}
	for _, assignment := range d.assignments {
		assignment.cancel()
	}
	return nil
}

// AdvanceAssignment moves a single assignment one step along its linear
// status chain.
func (d *Delivery) AdvanceAssignment(assignmentID kernel.UUID, target AssignmentStatus) error {
	assignment, err := d.AssignmentByID(assignmentID)
	if err != nil {
		return err
	}
	return assignment.advanceTo(target)
}

func (d *Delivery) advanceAssignmentsToward(target AssignmentStatus) {
	for _, assignment := range d.assignments {
		if assignment.Status().IsTerminal() {
			continue
		}
		assignment.advanceToward(target)
	}
}

func (d *Delivery) transition(target Status) error {
	next, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}
	d.status = next
	return nil
}

// Validate checks that the delivery was constructed through a factory.
func (d *Delivery) Validate() error {
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}
