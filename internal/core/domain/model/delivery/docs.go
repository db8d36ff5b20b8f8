// Package delivery contains the Delivery aggregate: a planned bulk fuel run
// for one tanker vehicle, composed of compartment assignments.
//
// The aggregate drives two state machines. The delivery itself moves
// planned → dispatched → loading → in_transit → unloading → completed, with
// cancellation available from any non-terminal state. Each assignment moves
// assigned → loading → loaded → in_transit → unloading → delivered →
// completed and is cancelled only through the parent delivery's cascade.
//
// All mutation goes through the aggregate root, which keeps the volume
// totals, capacity utilization and the one-assignment-per-compartment
// invariant consistent.
package delivery
