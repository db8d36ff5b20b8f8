// Package vehicle contains the TankerVehicle aggregate and its owned
// Compartment entities, together with the certification and compartment
// status enumerations.
//
// The aggregate enforces explicit ownership: a vehicle owns its compartments
// and cascades to them; a compartment's product history (the last-product
// code) is a weak reference used only for contamination lookups and never
// participates in ownership or lifecycle cascades.
package vehicle
