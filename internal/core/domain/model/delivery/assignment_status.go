package delivery

import (
	"fmt"

	"fueldispatch/internal/pkg/errs"
)

// AssignmentStatus represents the lifecycle state of a compartment
// assignment. The chain is strictly linear:
//
//	assigned → loading → loaded → in_transit → unloading → delivered → completed
//
// Cancelled is reachable only through the parent delivery's cancellation
// cascade, never by a direct transition.
type AssignmentStatus int

const (
	// AssignmentStatusUnknown represents an invalid or undefined status.
	AssignmentStatusUnknown AssignmentStatus = iota

	// Assigned is the initial status of a freshly allocated assignment.
	Assigned

	// AssignmentLoading means product is being pumped into the compartment.
	AssignmentLoading

	// Loaded means the compartment holds its planned volume.
	Loaded

	// AssignmentInTransit means the compartment is travelling sealed.
	AssignmentInTransit

	// AssignmentUnloading means product is being discharged.
	AssignmentUnloading

	// Delivered means the destination has accepted the product.
	Delivered

	// AssignmentCompleted is the successful terminal state.
	AssignmentCompleted

	// AssignmentCancelled is the terminal state set by the parent
	// delivery's cancellation cascade.
	AssignmentCancelled
)

func getAssignmentStatusStrings() map[AssignmentStatus]string {
	return map[AssignmentStatus]string{
		AssignmentStatusUnknown: "unknown",
		Assigned:                "assigned",
		AssignmentLoading:       "loading",
		Loaded:                  "loaded",
		AssignmentInTransit:     "in_transit",
		AssignmentUnloading:     "unloading",
		Delivered:               "delivered",
		AssignmentCompleted:     "completed",
		AssignmentCancelled:     "cancelled",
	}
}

func getValidAssignmentStatusStrings() map[AssignmentStatus]string {
	//nolint:exhaustive // AssignmentStatusUnknown is intentionally excluded as it's invalid
	return map[AssignmentStatus]string{
		Assigned:            "assigned",
		AssignmentLoading:   "loading",
		Loaded:              "loaded",
		AssignmentInTransit: "in_transit",
		AssignmentUnloading: "unloading",
		Delivered:           "delivered",
		AssignmentCompleted: "completed",
		AssignmentCancelled: "cancelled",
	}
}

func assignmentForwardTransitions() map[AssignmentStatus]AssignmentStatus {
	return map[AssignmentStatus]AssignmentStatus{
		Assigned:            AssignmentLoading,
		AssignmentLoading:   Loaded,
		Loaded:              AssignmentInTransit,
		AssignmentInTransit: AssignmentUnloading,
		AssignmentUnloading: Delivered,
		Delivered:           AssignmentCompleted,
	}
}

// assignmentRank gives the position of a status on the forward chain, used
// to advance assignments toward a target without overshooting. Cancelled
// has no rank.
func assignmentRank(s AssignmentStatus) int {
	order := []AssignmentStatus{
		Assigned, AssignmentLoading, Loaded, AssignmentInTransit,
		AssignmentUnloading, Delivered, AssignmentCompleted,
	}
	for i, status := range order {
		if status == s {
			return i
		}
	}
	return -1
}

// Validate checks if the AssignmentStatus value is valid.
func (s AssignmentStatus) Validate() error {
	if _, ok := getValidAssignmentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("assignment status is invalid",
			fmt.Errorf("%d is not a valid assignment status", s))
	}
	return nil
}

// String returns the snake_case name of the status.
func (s AssignmentStatus) String() string {
	if str, ok := getAssignmentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s AssignmentStatus) IsTerminal() bool {
	return s == AssignmentCompleted || s == AssignmentCancelled
}

// CanTransitionTo reports whether target is the single declared next step.
// Cancellation is excluded here: it happens only via the parent delivery.
func (s AssignmentStatus) CanTransitionTo(target AssignmentStatus) bool {
	return assignmentForwardTransitions()[s] == target
}

// TransitionTo returns the new status after transitioning to target, or an
// InvalidTransitionError leaving the current status unchanged.
func (s AssignmentStatus) TransitionTo(target AssignmentStatus) (AssignmentStatus, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, NewInvalidTransitionError("assignment", s.String(), target.String())
	}
	return target, nil
}
