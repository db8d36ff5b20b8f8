// Package product contains the FuelProduct aggregate and the FuelType
// enumeration. A fuel product carries the physical specification (sulfur
// content, density, hazmat classification) and the cross-contamination
// matrix that the compartment allocator consults: which prior-product codes
// contaminate this product, and which of those mandate a cleaning cycle.
package product
