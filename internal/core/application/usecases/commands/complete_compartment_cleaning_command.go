package commands

import (
	"errors"
	"time"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/pkg/guard"
)

var (
	ErrCompleteCompartmentCleaningCommandIsNotConstructed = errors.New(
		"CompleteCompartmentCleaningCommand must be created via NewCompleteCompartmentCleaningCommand constructor",
	)
	ErrCleanedAtIsRequired = errors.New("cleanedAt is required")
)

// CompleteCompartmentCleaningCommand represents a depot report that a
// compartment wash has finished, clearing its cleaning flag and product
// history.
type CompleteCompartmentCleaningCommand struct { //nolint:recvcheck //using for validation
	compartmentID kernel.UUID
	cleanedAt     time.Time

	guard guard.ConstructorGuard
}

// NewCompleteCompartmentCleaningCommand creates a command recording a
// finished compartment wash at the given time.
func NewCompleteCompartmentCleaningCommand(compartmentID kernel.UUID,
	cleanedAt time.Time) (CompleteCompartmentCleaningCommand, error) {
	cmd := CompleteCompartmentCleaningCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCompartmentID(compartmentID),
		cmd.setCleanedAt(cleanedAt),
	); err != nil {
		return CompleteCompartmentCleaningCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteCompartmentCleaningCommand) Validate() error {
	return c.guard.Validate(ErrCompleteCompartmentCleaningCommandIsNotConstructed)
}

// CompartmentID returns the compartment that was washed.
func (c CompleteCompartmentCleaningCommand) CompartmentID() kernel.UUID {
	return c.compartmentID
}

// CleanedAt returns when the wash finished.
func (c CompleteCompartmentCleaningCommand) CleanedAt() time.Time {
	return c.cleanedAt
}

func (c *CompleteCompartmentCleaningCommand) setCompartmentID(compartmentID kernel.UUID) error {
	if err := compartmentID.Validate(); err != nil {
		return err
	}

	c.compartmentID = compartmentID
	return nil
}

func (c *CompleteCompartmentCleaningCommand) setCleanedAt(cleanedAt time.Time) error {
	if cleanedAt.IsZero() {
		return ErrCleanedAtIsRequired
	}

	c.cleanedAt = cleanedAt
	return nil
}
