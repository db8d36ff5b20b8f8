package destination

import (
	"errors"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/pkg/errs"
	"fueldispatch/internal/pkg/guard"
)

var (
	ErrDestinationIsNotConstructed = errors.New(
		"Destination must be created via NewDestination constructor")
	ErrDestinationNameIsRequired = errs.NewValueIsRequiredError("destination name")
)

// Destination is a delivery site: a fuel station, depot or industrial
// customer that receives product from one tanker compartment.
type Destination struct {
	id      kernel.UUID
	name    string
	address string
	geo     kernel.GeoPoint
	active  bool

	guard guard.ConstructorGuard
}

// NewDestination creates a new active destination at the given coordinates.
func NewDestination(id kernel.UUID, name, address string, geo kernel.GeoPoint) (*Destination, error) {
	if err := errors.Join(
		id.Validate(),
		geo.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrDestinationNameIsRequired
	}

	return &Destination{
		id:      id,
		name:    name,
		address: address,
		geo:     geo,
		active:  true,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreDestination reconstructs a Destination from persistent storage.
func RestoreDestination(id kernel.UUID, name, address string, geo kernel.GeoPoint,
	active bool) (*Destination, error) {
	d, err := NewDestination(id, name, address, geo)
	if err != nil {
		return nil, err
	}
	d.active = active
	return d, nil
}

// Validate ensures the destination was created through its constructor.
func (d *Destination) Validate() error {
	if d == nil {
		return ErrDestinationIsNotConstructed
	}
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}

// IsEqual compares two destinations by their unique identifiers.
func (d *Destination) IsEqual(other *Destination) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Destination) ID() kernel.UUID      { return d.id }
func (d *Destination) Name() string         { return d.name }
func (d *Destination) Address() string      { return d.address }
func (d *Destination) Geo() kernel.GeoPoint { return d.geo }
func (d *Destination) Active() bool         { return d.active }
