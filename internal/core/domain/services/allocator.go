package services

import (
	"errors"
	"fmt"
	"strings"

	"fueldispatch/internal/core/domain/model/delivery"
	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/model/product"
	"fueldispatch/internal/core/domain/model/vehicle"

	"fueldispatch/internal/pkg/errs"
)

var (
	// ErrAllocationRequestsRequired is returned when an allocation is
	// attempted with no requests.
	ErrAllocationRequestsRequired = errors.New("at least one allocation request is required")

	// ErrTooManyAllocationRequests is returned when more requests arrive
	// than the vehicle has compartments.
	ErrTooManyAllocationRequests = errors.New("more allocation requests than available compartments")

	// ErrCapacityExceeded is the sentinel wrapped by CapacityExceededError.
	ErrCapacityExceeded = errors.New("compartment capacity exceeded")

	// ErrDuplicateAssignment is the sentinel wrapped by DuplicateAssignmentError.
	ErrDuplicateAssignment = errors.New("compartment requested more than once")

	// ErrCleaningRequired is the sentinel wrapped by CleaningRequiredError.
	ErrCleaningRequired = errors.New("compartment requires cleaning before loading")

	// ErrContaminationRisk is the sentinel wrapped by ContaminationRiskError.
	ErrContaminationRisk = errors.New("cross-contamination risk detected")
)

// CapacityExceededError reports a single request that does not fit its
// compartment, including by how much.
type CapacityExceededError struct {
	CompartmentID   kernel.UUID
	CapacityLiters  int
	RequestedLiters int
	OverflowLiters  int
}

func NewCapacityExceededError(compartmentID kernel.UUID, capacityLiters, requestedLiters int) *CapacityExceededError {
	return &CapacityExceededError{
		CompartmentID:   compartmentID,
		CapacityLiters:  capacityLiters,
		RequestedLiters: requestedLiters,
		OverflowLiters:  requestedLiters - capacityLiters,
	}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: compartment %s holds %d L, requested %d L (overflow %d L)",
		ErrCapacityExceeded, e.CompartmentID, e.CapacityLiters, e.RequestedLiters, e.OverflowLiters)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// DuplicateAssignmentError reports a compartment referenced by more than one
// request in the same batch.
type DuplicateAssignmentError struct {
	CompartmentID kernel.UUID
}

func NewDuplicateAssignmentError(compartmentID kernel.UUID) *DuplicateAssignmentError {
	return &DuplicateAssignmentError{CompartmentID: compartmentID}
}

func (e *DuplicateAssignmentError) Error() string {
	return fmt.Sprintf("%s: compartment %s", ErrDuplicateAssignment, e.CompartmentID)
}

func (e *DuplicateAssignmentError) Unwrap() error {
	return ErrDuplicateAssignment
}

// CleaningRequiredError reports a compartment still flagged for cleaning;
// it may not take a new product until washed. Carries the policy estimate
// when the product history allows one.
type CleaningRequiredError struct {
	CompartmentID    kernel.UUID
	EstimatedMinutes int
	EstimatedCostUSD float64
}

func NewCleaningRequiredError(compartmentID kernel.UUID, estimatedMinutes int, estimatedCostUSD float64) *CleaningRequiredError {
	return &CleaningRequiredError{
		CompartmentID:    compartmentID,
		EstimatedMinutes: estimatedMinutes,
		EstimatedCostUSD: estimatedCostUSD,
	}
}

func (e *CleaningRequiredError) Error() string {
	return fmt.Sprintf("%s: compartment %s (estimated %d min, %.2f USD)",
		ErrCleaningRequired, e.CompartmentID, e.EstimatedMinutes, e.EstimatedCostUSD)
}

func (e *CleaningRequiredError) Unwrap() error {
	return ErrCleaningRequired
}

// ContaminationConflict names one forbidden product pairing found in a
// batch, together with the cleaning the compartment would need before it
// could take the requested product.
type ContaminationConflict struct {
	CompartmentID    kernel.UUID
	ProductCode      string
	PriorProductCode string
	CleaningRequired bool
	EstimatedMinutes int
	EstimatedCostUSD float64
}

// ContaminationRiskError reports every forbidden pairing in the batch at
// once, so the planner sees the full picture instead of fixing one
// compartment at a time.
type ContaminationRiskError struct {
	Conflicts []ContaminationConflict
}

func NewContaminationRiskError(conflicts []ContaminationConflict) *ContaminationRiskError {
	return &ContaminationRiskError{Conflicts: conflicts}
}

func (e *ContaminationRiskError) Error() string {
	parts := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		part := fmt.Sprintf("compartment %s: %s after %s",
			c.CompartmentID, c.ProductCode, c.PriorProductCode)
		if c.CleaningRequired {
			part += fmt.Sprintf(" (cleaning %d min, %.2f USD)",
				c.EstimatedMinutes, c.EstimatedCostUSD)
		}
		parts = append(parts, part)
	}
	return fmt.Sprintf("%s: %s", ErrContaminationRisk, strings.Join(parts, "; "))
}

func (e *ContaminationRiskError) Unwrap() error {
	return ErrContaminationRisk
}

// AllocationRequest asks for one product volume in one compartment for one
// destination. PriorProduct is the product the compartment last carried,
// resolved by the caller from the compartment's history; nil when the
// compartment is fresh or the history is unknown.
type AllocationRequest struct {
	CompartmentID   kernel.UUID
	Product         *product.FuelProduct
	PriorProduct    *product.FuelProduct
	DestinationID   kernel.UUID
	VolumeLiters    int
	LoadingSequence *int
}

// AllocationResult is a validated set of compartment assignments together
// with the derived load figures for the whole vehicle.
type AllocationResult struct {
	Assignments                []*delivery.CompartmentAssignment
	TotalVolumeLiters          int
	TotalWeightKg              float64
	CapacityUtilizationPercent float64
}

// CompartmentAllocator is a domain service that turns a batch of allocation
// requests into compartment assignments for one tanker vehicle.
//
// Checks run fail-fast in a fixed order:
//  1. batch size: at least one request, at most one per compartment on board
//  2. no compartment requested twice
//  3. each compartment belongs to the vehicle, is operational and is not
//     flagged for cleaning
//  4. each volume is positive and fits its compartment
//  5. no forbidden product pairing anywhere in the batch (reported together)
//  6. the combined volume fits the vehicle
//
// Weights are derived from each product's density.
type CompartmentAllocator struct {
	matrix ContaminationMatrix
}

// NewCompartmentAllocator creates a CompartmentAllocator using the given
// contamination matrix for pairing checks and cleaning estimates.
func NewCompartmentAllocator(matrix ContaminationMatrix) CompartmentAllocator {
	return CompartmentAllocator{matrix: matrix}
}

// Allocate validates the batch against the vehicle and builds the
// compartment assignments. The vehicle itself is not mutated; loading
// happens later, when the delivery reaches the depot.
func (a CompartmentAllocator) Allocate(veh *vehicle.TankerVehicle,
	requests []AllocationRequest) (*AllocationResult, error) {
	if err := veh.Validate(); err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, ErrAllocationRequestsRequired
	}
	if len(requests) > veh.CompartmentCount() {
		return nil, ErrTooManyAllocationRequests
	}

	seen := make(map[kernel.UUID]struct{}, len(requests))
	for _, request := range requests {
		if _, ok := seen[request.CompartmentID]; ok {
			return nil, NewDuplicateAssignmentError(request.CompartmentID)
		}
		seen[request.CompartmentID] = struct{}{}
	}

	for _, request := range requests {
		if err := a.checkCompartment(veh, request); err != nil {
			return nil, err
		}
	}

	if err := a.checkContamination(veh, requests); err != nil {
		return nil, err
	}

	totalVolume := 0
	totalWeight := 0.0
	assignments := make([]*delivery.CompartmentAssignment, 0, len(requests))
	for _, request := range requests {
		weight := request.Product.WeightKg(request.VolumeLiters)
		assignment, err := delivery.NewCompartmentAssignment(kernel.NewUUID(),
			request.CompartmentID, request.Product.ID(), request.DestinationID,
			request.VolumeLiters, weight, request.LoadingSequence)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
		totalVolume += request.VolumeLiters
		totalWeight += weight
	}

	utilization := float64(totalVolume) / float64(veh.TotalCapacityLiters()) * 100
	if totalVolume > veh.TotalCapacityLiters() {
		return nil, errs.NewValueIsOutOfRangeError("capacityUtilizationPercent",
			utilization, 0, 100)
	}

	return &AllocationResult{
		Assignments:                assignments,
		TotalVolumeLiters:          totalVolume,
		TotalWeightKg:              totalWeight,
		CapacityUtilizationPercent: utilization,
	}, nil
}

func (a CompartmentAllocator) checkCompartment(veh *vehicle.TankerVehicle,
	request AllocationRequest) error {
	if request.Product == nil {
		return errs.NewValueIsRequiredError("product")
	}
	if err := request.Product.Validate(); err != nil {
		return err
	}
	if err := request.DestinationID.Validate(); err != nil {
		return err
	}

	compartment, err := veh.CompartmentByID(request.CompartmentID)
	if err != nil {
		return err
	}
	if !compartment.IsOperational() {
		return vehicle.ErrCompartmentNotOperational
	}
	if compartment.RequiresCleaning() {
		assessment := a.matrix.Assess(request.Product, request.PriorProduct)
		if !assessment.CleaningRequired {
			// History unknown, assume the full cross-type wash.
			assessment = a.crossTypeAssessment()
		}
		return NewCleaningRequiredError(compartment.ID(),
			assessment.EstimatedMinutes, assessment.EstimatedCostUSD)
	}

	if request.VolumeLiters <= 0 {
		return errs.NewValueIsOutOfRangeError("volumeLiters",
			request.VolumeLiters, 1, compartment.CapacityLiters())
	}
	if request.VolumeLiters > compartment.CapacityLiters() {
		return NewCapacityExceededError(compartment.ID(),
			compartment.CapacityLiters(), request.VolumeLiters)
	}

	return nil
}

func (a CompartmentAllocator) checkContamination(veh *vehicle.TankerVehicle,
	requests []AllocationRequest) error {
	var conflicts []ContaminationConflict

	for _, request := range requests {
		compartment, err := veh.CompartmentByID(request.CompartmentID)
		if err != nil {
			return err
		}
		priorCode := compartment.LastProductCode()
		if priorCode == nil {
			continue
		}

		assessment := a.matrix.Assess(request.Product, request.PriorProduct)
		if request.PriorProduct == nil {
			// No product object for the history entry; fall back to the
			// code lists on the requested product. The prior fuel type is
			// unknown, so a needed wash gets the full cross-type estimate.
			assessment.Risk = request.Product.IsContaminatedBy(*priorCode)
			assessment.CleaningRequired = assessment.Risk &&
				request.Product.RequiresCleaningAfter(*priorCode)
			if assessment.CleaningRequired {
				assessment.EstimatedMinutes = a.matrix.policy.CrossTypeMinutes
				assessment.EstimatedCostUSD = a.matrix.policy.CrossTypeCostUSD
			}
		}

		if assessment.Risk {
			conflicts = append(conflicts, ContaminationConflict{
				CompartmentID:    compartment.ID(),
				ProductCode:      request.Product.Code(),
				PriorProductCode: *priorCode,
				CleaningRequired: assessment.CleaningRequired,
				EstimatedMinutes: assessment.EstimatedMinutes,
				EstimatedCostUSD: assessment.EstimatedCostUSD,
			})
		}
	}

	if len(conflicts) > 0 {
		return NewContaminationRiskError(conflicts)
	}
	return nil
}

func (a CompartmentAllocator) crossTypeAssessment() ContaminationAssessment {
	return ContaminationAssessment{
		CleaningRequired: true,
		EstimatedMinutes: a.matrix.policy.CrossTypeMinutes,
		EstimatedCostUSD: a.matrix.policy.CrossTypeCostUSD,
	}
}

