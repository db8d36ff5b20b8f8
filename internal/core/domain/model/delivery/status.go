package delivery

import (
	"errors"
	"fmt"

	"fueldispatch/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for state machine violations on
// deliveries and compartment assignments. Use errors.Is to classify and
// errors.As with *InvalidTransitionError for the structured context.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a rejected state transition. It carries the
// entity kind and both states so callers can diagnose out-of-order updates
// without parsing the message.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// entity kind and states.
func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidTransition, e.Entity, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of a delivery.
// It implements a linear state machine with a single cancellation branch:
//
//	planned → dispatched → loading → in_transit → unloading → completed
//	    └────────┴───────────┴────────────┴───────────┘
//	                  (cancelled from any non-terminal state)
//
// Forward transitions may not skip states. Completed and Cancelled are
// terminal. The transition table lives in one place (forwardTransitions)
// and is consulted only through CanTransitionTo.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Planned is the initial status of a freshly created delivery.
	Planned

	// Dispatched means the vehicle has been released to the loading depot.
	Dispatched

	// Loading means compartments are being filled at the depot.
	Loading

	// InTransit means the vehicle is en route to its destinations.
	InTransit

	// Unloading means product is being discharged at a destination.
	Unloading

	// Completed is the successful terminal state.
	Completed

	// Cancelled is the aborted terminal state, reachable from any
	// non-terminal state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Planned:       "planned",
		Dispatched:    "dispatched",
		Loading:       "loading",
		InTransit:     "in_transit",
		Unloading:     "unloading",
		Completed:     "completed",
		Cancelled:     "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Planned:    "planned",
		Dispatched: "dispatched",
		Loading:    "loading",
		InTransit:  "in_transit",
		Unloading:  "unloading",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// forwardTransitions is the single authoritative forward transition table.
func forwardTransitions() map[Status]Status {
	return map[Status]Status{
		Planned:    Dispatched,
		Dispatched: Loading,
		Loading:    InTransit,
		InTransit:  Unloading,
		Unloading:  Completed,
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the snake_case name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a delivery status from its snake_case name.
// Returns an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid delivery status", s))
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the transition to target is allowed:
// either the single declared forward step, or Cancelled from any
// non-terminal state.
func (s Status) CanTransitionTo(target Status) bool {
	if target == Cancelled {
		return !s.IsTerminal()
	}
	return forwardTransitions()[s] == target
}

// TransitionTo returns the new status after transitioning to target, or an
// InvalidTransitionError leaving the current status unchanged.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, NewInvalidTransitionError("delivery", s.String(), target.String())
	}
	return target, nil
}
