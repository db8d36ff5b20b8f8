package delivery

import (
	"errors"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/pkg/errs"
	"fueldispatch/internal/pkg/guard"
)

var (
	ErrAssignmentIsNotConstructed = errors.New(
		"CompartmentAssignment is not constructed. Use NewCompartmentAssignment or RestoreCompartmentAssignment")
	ErrAssignmentVolumeIsInvalid = errs.NewValueIsInvalidError("volumeLiters must be positive")
	ErrAssignmentWeightIsInvalid = errs.NewValueIsInvalidError("weightKg must be positive")
)

// CompartmentAssignment is an entity owned by the Delivery aggregate. It
// binds one product volume to one vehicle compartment for one destination
// and tracks its own loading/unloading lifecycle (see AssignmentStatus).
//
// Assignments are created through the Delivery constructor and mutated only
// through the aggregate root, which enforces the one-assignment-per-
// compartment invariant and the cancellation cascade.
type CompartmentAssignment struct {
	id            kernel.UUID
	compartmentID kernel.UUID
	productID     kernel.UUID
	destinationID kernel.UUID

	volumeLiters    int
	weightKg        float64
	loadingSequence *int

	status AssignmentStatus

	guard guard.ConstructorGuard
}

// NewCompartmentAssignment creates a new assignment in the Assigned status.
// Volume and weight must be positive; capacity and contamination checks are
// the allocator's responsibility and happen before construction.
func NewCompartmentAssignment(id, compartmentID, productID, destinationID kernel.UUID,
	volumeLiters int, weightKg float64, loadingSequence *int) (*CompartmentAssignment, error) {
	if err := errors.Join(
		id.Validate(),
		compartmentID.Validate(),
		productID.Validate(),
		destinationID.Validate(),
	); err != nil {
		return nil, err
	}
	if volumeLiters <= 0 {
		return nil, ErrAssignmentVolumeIsInvalid
	}
	if weightKg <= 0 {
		return nil, ErrAssignmentWeightIsInvalid
	}

	return &CompartmentAssignment{
		id:              id,
		compartmentID:   compartmentID,
		productID:       productID,
		destinationID:   destinationID,
		volumeLiters:    volumeLiters,
		weightKg:        weightKg,
		loadingSequence: loadingSequence,
		status:          Assigned,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreCompartmentAssignment restores an assignment from persistent
// storage with all its fields, including its current status.
func RestoreCompartmentAssignment(id, compartmentID, productID, destinationID kernel.UUID,
	volumeLiters int, weightKg float64, loadingSequence *int,
	status AssignmentStatus) (*CompartmentAssignment, error) {
	assignment, err := NewCompartmentAssignment(id, compartmentID, productID, destinationID,
		volumeLiters, weightKg, loadingSequence)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	assignment.status = status
	return assignment, nil
}

func (a *CompartmentAssignment) ID() kernel.UUID            { return a.id }
func (a *CompartmentAssignment) CompartmentID() kernel.UUID { return a.compartmentID }
func (a *CompartmentAssignment) ProductID() kernel.UUID     { return a.productID }
func (a *CompartmentAssignment) DestinationID() kernel.UUID { return a.destinationID }
func (a *CompartmentAssignment) VolumeLiters() int          { return a.volumeLiters }
func (a *CompartmentAssignment) WeightKg() float64          { return a.weightKg }
func (a *CompartmentAssignment) LoadingSequence() *int      { return a.loadingSequence }
func (a *CompartmentAssignment) Status() AssignmentStatus   { return a.status }

// advanceTo moves the assignment one step along its linear status chain.
// Called through the aggregate root.
func (a *CompartmentAssignment) advanceTo(target AssignmentStatus) error {
	next, err := a.status.TransitionTo(target)
	if err != nil {
		return err
	}
	a.status = next
	return nil
}

// advanceToward steps the assignment along its chain until it reaches
// target. Assignments already at or past the target are left alone.
func (a *CompartmentAssignment) advanceToward(target AssignmentStatus) {
	targetRank := assignmentRank(target)
	for assignmentRank(a.status) >= 0 && assignmentRank(a.status) < targetRank {
		a.status = assignmentForwardTransitions()[a.status]
	}
}

// cancel is invoked by the parent delivery's cancellation cascade. Terminal
// assignments are left untouched, which makes the cascade idempotent.
func (a *CompartmentAssignment) cancel() {
	if a.status.IsTerminal() {
		return
	}
	a.status = AssignmentCancelled
}

// Validate checks that the assignment was constructed through a factory.
func (a *CompartmentAssignment) Validate() error {
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}
