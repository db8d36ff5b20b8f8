// Package services provides domain services that orchestrate business
// operations across multiple aggregates of the fuel dispatch system. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - ContaminationMatrix: decides whether a product change inside a
//     compartment is safe, requires cleaning, or is forbidden
//   - CompartmentAllocator: turns a batch of allocation requests into
//     validated compartment assignments for one tanker vehicle
//   - ComplianceGate: verifies DOT and hazmat certification before a
//     vehicle may carry a delivery
//   - SolverPayloadBuilder: expresses a delivery as a payload for the
//     external route optimization engine
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
