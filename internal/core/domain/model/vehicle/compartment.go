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

var (
	// ErrCompartmentIsNotConstructed indicates that the Compartment was not
	// properly initialized through the NewCompartment constructor function.
	ErrCompartmentIsNotConstructed = errors.New("Compartment must be created via NewCompartment constructor")

	// ErrCompartmentRequiresCleaning indicates that a product cannot be loaded
	// because the compartment is flagged for cleaning.
	ErrCompartmentRequiresCleaning = errors.New("compartment requires cleaning before receiving a product")

	// ErrCompartmentNotOperational indicates that the compartment is not in
	// operational status and cannot be loaded.
	ErrCompartmentNotOperational = errors.New("compartment is not operational")
)

// Compartment represents an independently sealed sub-tank within a tanker
// vehicle. It is a domain entity owned by the TankerVehicle aggregate.
//
// A compartment carries its own capacity, operational status, current
// content, and product history. The lastProductCode field is a deliberate
// weak reference: it records the CODE of the previous product purely for
// contamination lookups and never participates in ownership or cascades.
//
// Key business rules:
//   - Capacity must be positive; working capacity, if set, must not exceed it
//   - Current volume never exceeds capacity
//   - A compartment flagged requiresCleaning may not receive a new product
//   - Only Operational compartments accept delivery assignments
type Compartment struct {
	// id uniquely identifies the compartment
	id kernel.UUID

	// number is the ordinal position within the vehicle (unique per vehicle)
	number int

	// name is a short human-readable label, e.g. "Comp-1"
	name string

	// capacityLiters is the physical capacity
	capacityLiters int

	// workingCapacityLiters is the usable capacity accounting for safety
	// margins; nil means the full capacity is usable
	workingCapacityLiters *int

	// status is the operational condition of the compartment
	status CompartmentStatus

	// currentProductID references the product currently held, nil when empty
	currentProductID *kernel.UUID

	// currentVolumeLiters is the volume currently held
	currentVolumeLiters int

	// lastProductCode is the code of the previously held product, used only
	// for contamination lookups
	lastProductCode *string

	// requiresCleaning flags the compartment as needing a cleaning cycle
	requiresCleaning bool

	// lastCleaned records when the last cleaning cycle completed
	lastCleaned *time.Time

	// compatibleProducts lists product codes this compartment may carry;
	// empty means unrestricted
	compatibleProducts []string

	// guard ensures the entity was properly initialized
	guard guard.ConstructorGuard
}

// NewCompartment creates an empty, operational Compartment.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - number: ordinal position within the vehicle (must be > 0)
//   - name: short label (must be non-empty)
//   - capacityLiters: physical capacity (must be > 0)
//   - workingCapacityLiters: usable capacity (nil, or > 0 and <= capacity)
func NewCompartment(
	id kernel.UUID,
	number int,
	name string,
	capacityLiters int,
	workingCapacityLiters *int,
) (*Compartment, error) {
	c := &Compartment{
		status: Operational,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setNumber(number),
		c.setName(name),
		c.setCapacity(capacityLiters),
	); err != nil {
		return nil, err
	}

	if err := c.setWorkingCapacity(workingCapacityLiters); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCompartment reconstructs a Compartment from persistent storage,
// including its content, product history, and cleaning state.
func RestoreCompartment(
	id kernel.UUID,
	number int,
	name string,
	capacityLiters int,
	workingCapacityLiters *int,
	status CompartmentStatus,
	currentProductID *kernel.UUID,
	currentVolumeLiters int,
	lastProductCode *string,
	requiresCleaning bool,
	lastCleaned *time.Time,
	compatibleProducts []string,
) (*Compartment, error) {
	c, err := NewCompartment(id, number, name, capacityLiters, workingCapacityLiters)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if currentVolumeLiters < 0 || currentVolumeLiters > capacityLiters {
		return nil, errs.NewValueIsOutOfRangeError("current volume", currentVolumeLiters, 0, capacityLiters)
	}

	if currentProductID != nil {
		if err = currentProductID.Validate(); err != nil {
			return nil, err
		}
		pid := *currentProductID
		c.currentProductID = &pid
	}

	c.status = status
	c.currentVolumeLiters = currentVolumeLiters
	c.requiresCleaning = requiresCleaning
	c.compatibleProducts = slices.Clone(compatibleProducts)

	if lastProductCode != nil {
		code := *lastProductCode
		c.lastProductCode = &code
	}

	if lastCleaned != nil {
		ts := *lastCleaned
		c.lastCleaned = &ts
	}

	return c, nil
}

// Validate ensures the compartment was created through its constructor.
func (c *Compartment) Validate() error {
	if c == nil {
		return ErrCompartmentIsNotConstructed
	}
	return c.guard.Validate(ErrCompartmentIsNotConstructed)
}

// ID returns the compartment's unique identifier.
func (c *Compartment) ID() kernel.UUID {
	return c.id
}

// Number returns the ordinal position within the vehicle.
func (c *Compartment) Number() int {
	return c.number
}

// Name returns the compartment label.
func (c *Compartment) Name() string {
	return c.name
}

// CapacityLiters returns the physical capacity.
func (c *Compartment) CapacityLiters() int {
	return c.capacityLiters
}

// WorkingCapacityLiters returns the usable capacity, or nil when the full
// physical capacity is usable.
func (c *Compartment) WorkingCapacityLiters() *int {
	return c.workingCapacityLiters
}

// Status returns the operational condition.
func (c *Compartment) Status() CompartmentStatus {
	return c.status
}

// CurrentProductID returns the product currently held, nil when empty.
func (c *Compartment) CurrentProductID() *kernel.UUID {
	return c.currentProductID
}

// CurrentVolumeLiters returns the volume currently held.
func (c *Compartment) CurrentVolumeLiters() int {
	return c.currentVolumeLiters
}

// LastProductCode returns the code of the previously held product, nil when
// the compartment has no recorded history. This is the contamination lookup
// key, never an ownership reference.
func (c *Compartment) LastProductCode() *string {
	return c.lastProductCode
}

// RequiresCleaning reports whether a cleaning cycle must run before the
// compartment may receive a new product.
func (c *Compartment) RequiresCleaning() bool {
	return c.requiresCleaning
}

// LastCleaned returns when the last cleaning cycle completed, nil if never.
func (c *Compartment) LastCleaned() *time.Time {
	return c.lastCleaned
}

// CompatibleProducts returns the product codes this compartment may carry.
// An empty list means unrestricted.
func (c *Compartment) CompatibleProducts() []string {
	return slices.Clone(c.compatibleProducts)
}

// IsOperational reports whether the compartment may receive assignments.
func (c *Compartment) IsOperational() bool {
	return c.status == Operational
}

// CanAccept checks whether the compartment may receive the given volume of a
// new product. It enforces operational status, the cleaning flag, and the
// capacity bound.
//
// Returns nil when loading is permitted, otherwise:
//   - ErrCompartmentNotOperational when the compartment is not operational
//   - ErrCompartmentRequiresCleaning when flagged for cleaning
//   - ValueIsInvalidError when volume is not positive
func (c *Compartment) CanAccept(volumeLiters int) error {
	if !c.IsOperational() {
		return ErrCompartmentNotOperational
	}

	if c.requiresCleaning {
		return ErrCompartmentRequiresCleaning
	}

	if volumeLiters <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume is invalid",
			fmt.Errorf("%d is not greater than 0", volumeLiters))
	}

	return nil
}

// Load records a product being loaded into the compartment: sets the current
// product and volume. The caller is responsible for having validated the
// assignment through the allocator first.
func (c *Compartment) Load(productID kernel.UUID, volumeLiters int) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	if err := c.CanAccept(volumeLiters); err != nil {
		return err
	}

	if volumeLiters > c.capacityLiters {
		return errs.NewValueIsOutOfRangeError("volume", volumeLiters, 1, c.capacityLiters)
	}

	id := productID
	c.currentProductID = &id
	c.currentVolumeLiters = volumeLiters
	return nil
}

// Unload records the compartment being emptied. The unloaded product's code
// becomes the new last-product history entry for contamination lookups.
func (c *Compartment) Unload(productCode string) {
	c.currentProductID = nil
	c.currentVolumeLiters = 0
	if productCode != "" {
		code := productCode
		c.lastProductCode = &code
	}
}

// RequireCleaning flags the compartment as needing a cleaning cycle before
// it may receive a new product.
func (c *Compartment) RequireCleaning() {
	c.requiresCleaning = true
}

// MarkCleaned records a completed cleaning cycle: clears the cleaning flag
// and the product history, and stamps the cleaning time.
func (c *Compartment) MarkCleaned(at time.Time) {
	c.requiresCleaning = false
	c.lastProductCode = nil
	c.lastCleaned = &at
	if c.status == CleaningInProgress {
		c.status = Operational
	}
}

func (c *Compartment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Compartment) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("compartment number is invalid",
			fmt.Errorf("%d is not greater than 0", number))
	}
	c.number = number
	return nil
}

func (c *Compartment) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("compartment name")
	}
	c.name = name
	return nil
}

func (c *Compartment) setCapacity(capacityLiters int) error {
	if capacityLiters <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity is invalid",
			fmt.Errorf("%d is not greater than 0", capacityLiters))
	}
	c.capacityLiters = capacityLiters
	return nil
}

func (c *Compartment) setWorkingCapacity(workingCapacityLiters *int) error {
	if workingCapacityLiters == nil {
		return nil
	}

	if *workingCapacityLiters <= 0 || *workingCapacityLiters > c.capacityLiters {
		return errs.NewValueIsOutOfRangeError("working capacity", *workingCapacityLiters, 1, c.capacityLiters)
	}

	wc := *workingCapacityLiters
	c.workingCapacityLiters = &wc
	return nil
}
