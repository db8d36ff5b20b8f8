package product

import (
	"fmt"

	"fueldispatch/internal/pkg/errs"
)

// FuelType classifies a fuel product based on industry standards.
// It is a closed enumeration; values outside the declared set are invalid.
type FuelType int

const (
	// FuelTypeUnknown represents an invalid or undefined fuel type.
	// This value (0) helps catch uninitialized FuelType values.
	FuelTypeUnknown FuelType = iota

	// Diesel covers road diesel grades (e.g. ULSD 10ppm/50ppm).
	Diesel

	// Petrol covers gasoline grades.
	Petrol

	// Kerosene covers lamp and heating kerosene grades.
	Kerosene

	// JetFuel covers aviation turbine fuels (e.g. Jet A-1).
	JetFuel

	// HeatingOil covers domestic and industrial heating oils.
	HeatingOil

	// MarineFuel covers marine gas oils and bunker fuels.
	MarineFuel

	// Biofuel covers biodiesel and ethanol blends.
	Biofuel
)

// getFuelTypeStrings returns a map of FuelType values to their string
// representations. All values are included for string conversion.
func getFuelTypeStrings() map[FuelType]string {
	return map[FuelType]string{
		FuelTypeUnknown: "unknown",
		Diesel:          "diesel",
		Petrol:          "petrol",
		Kerosene:        "kerosene",
		JetFuel:         "jet_fuel",
		HeatingOil:      "heating_oil",
		MarineFuel:      "marine_fuel",
		Biofuel:         "biofuel",
	}
}

// getValidFuelTypeStrings returns a map of only valid FuelType values.
func getValidFuelTypeStrings() map[FuelType]string {
	//nolint:exhaustive // FuelTypeUnknown is intentionally excluded as it's invalid
	return map[FuelType]string{
		Diesel:     "diesel",
		Petrol:     "petrol",
		Kerosene:   "kerosene",
		JetFuel:    "jet_fuel",
		HeatingOil: "heating_oil",
		MarineFuel: "marine_fuel",
		Biofuel:    "biofuel",
	}
}

// Validate checks if the FuelType value is one of the declared fuel types.
func (t FuelType) Validate() error {
	if _, ok := getValidFuelTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("fuel type is invalid",
			fmt.Errorf("%d is not a valid fuel type", t))
	}
	return nil
}

// String returns the snake_case name of the fuel type as used in product
// specifications and solver skill names (e.g. "jet_fuel").
func (t FuelType) String() string {
	if str, ok := getFuelTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// FuelTypeFromString parses a fuel type from its snake_case name.
// Returns an error for unrecognized names.
func FuelTypeFromString(s string) (FuelType, error) {
	for t, str := range getValidFuelTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return FuelTypeUnknown, errs.NewValueIsInvalidErrorWithCause("fuel type is invalid",
		fmt.Errorf("%q is not a valid fuel type", s))
}
