package product

import (
	"errors"
	"fmt"
	"slices"

	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/pkg/errs"
	"fueldispatch/internal/pkg/guard"
)

// Domain errors for fuel product operations.
var (
	// ErrProductIsNotConstructed is returned when using an improperly initialized FuelProduct.
	ErrProductIsNotConstructed = errors.New("FuelProduct must be created via NewFuelProduct constructor")
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCodeIsRequired is returned when attempting to create a product without a product code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
	// ErrHazmatClassIsRequired is returned when attempting to create a product without a hazmat class.
	ErrHazmatClassIsRequired = errs.NewValueIsRequiredError("hazmat class")
)

// FuelProduct is the specification of a transportable fuel grade, including
// the cross-contamination matrix against other products.
//
// The contamination fields reference other products by CODE, never by
// identity: crossContaminationRisk lists the codes that, when present as the
// previous content of a compartment, make loading this product hazardous;
// cleaningRequiredAfter is the subset of those codes that mandate a cleaning
// cycle before loading. The superset relationship is expected but not
// enforced.
//
// FuelProduct is long-lived master data. It is created by provisioning and
// read by the allocation engine; the engine never mutates it.
type FuelProduct struct {
	// id uniquely identifies the product
	id kernel.UUID
	// name is the human-readable product name (e.g. "Ultra Low Sulfur Diesel")
	name string
	// code is the short product code used in contamination matrices (e.g. "ULSD")
	code string
	// fuelType classifies the product
	fuelType FuelType
	// sulfurPPM is the sulfur content in parts per million
	sulfurPPM float64
	// densityKgPerLiter is the density at 15°C, used for weight calculations
	densityKgPerLiter float64
	// hazmatClass is the UN hazmat class (e.g. "3" for flammable liquids)
	hazmatClass string
	// unNumber is the UN identification number (e.g. "UN1202")
	unNumber string
	// compatibilityGroup groups products that may share handling equipment
	compatibilityGroup string
	// crossContaminationRisk lists product codes whose residue contaminates this product
	crossContaminationRisk []string
	// cleaningRequiredAfter lists product codes whose residue mandates cleaning first
	cleaningRequiredAfter []string
	// active indicates whether the product may be assigned to new deliveries
	active bool
	// guard ensures the product was properly constructed
	guard guard.ConstructorGuard
}

// NewFuelProduct creates a FuelProduct with validated specifications.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: human-readable name (must be non-empty)
//   - code: short product code (must be non-empty, unique per project by convention)
//   - fuelType: one of the declared fuel types
//   - sulfurPPM: sulfur content in ppm (must be >= 0)
//   - densityKgPerLiter: density at 15°C (must be > 0)
//   - hazmatClass: UN hazmat class (must be non-empty)
//   - unNumber: UN identification number
//   - compatibilityGroup: handling compatibility group
//   - contaminationRisk: product codes that contaminate this product
//   - cleaningAfter: product codes that mandate cleaning before loading
//
// New products start active.
func NewFuelProduct(
	id kernel.UUID,
	name string,
	code string,
	fuelType FuelType,
	sulfurPPM float64,
	densityKgPerLiter float64,
	hazmatClass string,
	unNumber string,
	compatibilityGroup string,
	contaminationRisk []string,
	cleaningAfter []string,
) (*FuelProduct, error) {
	p := &FuelProduct{
		unNumber:               unNumber,
		compatibilityGroup:     compatibilityGroup,
		crossContaminationRisk: slices.Clone(contaminationRisk),
		cleaningRequiredAfter:  slices.Clone(cleaningAfter),
		active:                 true,
		guard:                  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCode(code),
		p.setFuelType(fuelType),
		p.setSulfurPPM(sulfurPPM),
		p.setDensity(densityKgPerLiter),
		p.setHazmatClass(hazmatClass),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreFuelProduct reconstructs a FuelProduct from persistent storage,
// including its active flag. The restored product behaves identically to one
// created through NewFuelProduct.
func RestoreFuelProduct(
	id kernel.UUID,
	name string,
	code string,
	fuelType FuelType,
	sulfurPPM float64,
	densityKgPerLiter float64,
	hazmatClass string,
	unNumber string,
	compatibilityGroup string,
	contaminationRisk []string,
	cleaningAfter []string,
	active bool,
) (*FuelProduct, error) {
	p, err := NewFuelProduct(id, name, code, fuelType, sulfurPPM, densityKgPerLiter,
		hazmatClass, unNumber, compatibilityGroup, contaminationRisk, cleaningAfter)
	if err != nil {
		return nil, err
	}

	p.active = active
	return p, nil
}

// Validate ensures the product was created through its constructor.
func (p *FuelProduct) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by their unique identifiers.
func (p *FuelProduct) IsEqual(other *FuelProduct) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *FuelProduct) ID() kernel.UUID {
	return p.id
}

// Name returns the human-readable product name.
func (p *FuelProduct) Name() string {
	return p.name
}

// Code returns the short product code used in contamination matrices.
func (p *FuelProduct) Code() string {
	return p.code
}

// FuelType returns the fuel type classification.
func (p *FuelProduct) FuelType() FuelType {
	return p.fuelType
}

// SulfurPPM returns the sulfur content in parts per million.
func (p *FuelProduct) SulfurPPM() float64 {
	return p.sulfurPPM
}

// DensityKgPerLiter returns the density at 15°C.
func (p *FuelProduct) DensityKgPerLiter() float64 {
	return p.densityKgPerLiter
}

// HazmatClass returns the UN hazmat class.
func (p *FuelProduct) HazmatClass() string {
	return p.hazmatClass
}

// UNNumber returns the UN identification number.
func (p *FuelProduct) UNNumber() string {
	return p.unNumber
}

// CompatibilityGroup returns the handling compatibility group.
func (p *FuelProduct) CompatibilityGroup() string {
	return p.compatibilityGroup
}

// CrossContaminationRisk returns the product codes whose residue
// contaminates this product.
func (p *FuelProduct) CrossContaminationRisk() []string {
	return slices.Clone(p.crossContaminationRisk)
}

// CleaningRequiredAfter returns the product codes whose residue mandates a
// cleaning cycle before this product may be loaded.
func (p *FuelProduct) CleaningRequiredAfter() []string {
	return slices.Clone(p.cleaningRequiredAfter)
}

// IsActive reports whether the product may be assigned to new deliveries.
func (p *FuelProduct) IsActive() bool {
	return p.active
}

// IsContaminatedBy reports whether residue of the product with the given code
// poses a contamination risk when this product is loaded after it.
func (p *FuelProduct) IsContaminatedBy(code string) bool {
	return slices.Contains(p.crossContaminationRisk, code)
}

// RequiresCleaningAfter reports whether residue of the product with the given
// code mandates a compartment cleaning cycle before this product is loaded.
func (p *FuelProduct) RequiresCleaningAfter(code string) bool {
	return slices.Contains(p.cleaningRequiredAfter, code)
}

// RequiresHazmatCertification reports whether transporting this product
// requires the vehicle to carry hazmat certification. All classified cargo
// (non-empty UN hazmat class other than "0") requires it; every fuel grade
// in practice is class 3 flammable liquid.
func (p *FuelProduct) RequiresHazmatCertification() bool {
	return p.hazmatClass != "" && p.hazmatClass != "0"
}

// WeightKg computes the cargo weight for the given volume of this product.
func (p *FuelProduct) WeightKg(volumeLiters int) float64 {
	return float64(volumeLiters) * p.densityKgPerLiter
}

func (p *FuelProduct) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *FuelProduct) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *FuelProduct) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	p.code = code
	return nil
}

func (p *FuelProduct) setFuelType(fuelType FuelType) error {
	if err := fuelType.Validate(); err != nil {
		return err
	}
	p.fuelType = fuelType
	return nil
}

func (p *FuelProduct) setSulfurPPM(sulfurPPM float64) error {
	if sulfurPPM < 0 {
		return errs.NewValueIsInvalidErrorWithCause("sulfur content is invalid",
			fmt.Errorf("%g is negative", sulfurPPM))
	}
	p.sulfurPPM = sulfurPPM
	return nil
}

func (p *FuelProduct) setDensity(density float64) error {
	if density <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("density is invalid",
			fmt.Errorf("%g is not greater than 0", density))
	}
	p.densityKgPerLiter = density
	return nil
}

func (p *FuelProduct) setHazmatClass(hazmatClass string) error {
	if hazmatClass == "" {
		return ErrHazmatClassIsRequired
	}
	p.hazmatClass = hazmatClass
	return nil
}
