package services

import (
	"fueldispatch/internal/core/domain/model/product"
)

// CleaningPolicy defines the time and cost of a compartment wash, depending
// on whether the previous and next products share a fuel type. Rates come
// from the depot's standing cleaning contract.
type CleaningPolicy struct {
	SameTypeMinutes  int
	SameTypeCostUSD  float64
	CrossTypeMinutes int
	CrossTypeCostUSD float64
}

// DefaultCleaningPolicy returns the standard depot cleaning rates: a light
// wash between products of the same fuel type, a full wash across types.
func DefaultCleaningPolicy() CleaningPolicy {
	return CleaningPolicy{
		SameTypeMinutes:  120,
		SameTypeCostUSD:  450.00,
		CrossTypeMinutes: 180,
		CrossTypeCostUSD: 675.00,
	}
}

// ContaminationAssessment is the outcome of checking a product change inside
// a compartment. Risk means the pairing is forbidden outright; a required
// cleaning carries the estimated downtime and cost from the policy.
type ContaminationAssessment struct {
	Risk             bool
	CleaningRequired bool
	EstimatedMinutes int
	EstimatedCostUSD float64
}

// ContaminationMatrix is a domain service that decides whether a compartment
// that last carried one fuel product may be loaded with another.
//
// Business rules:
//   - Loading the same product code again is always clean.
//   - A prior product listed in the next product's cross-contamination risk
//     list forbids the pairing entirely.
//   - A risky prior product also listed in the next product's cleaning list
//     needs a wash before the compartment can be reused; the estimate
//     depends on whether the fuel types match. The cleaning list alone,
//     without a risk listing, gates nothing.
type ContaminationMatrix struct {
	policy CleaningPolicy
}

// NewContaminationMatrix creates a ContaminationMatrix with the given
// cleaning policy.
func NewContaminationMatrix(policy CleaningPolicy) ContaminationMatrix {
	return ContaminationMatrix{policy: policy}
}

// Assess evaluates loading next into a compartment that last carried prior.
// A nil prior means the compartment has no product history and is clean.
func (m ContaminationMatrix) Assess(next, prior *product.FuelProduct) ContaminationAssessment {
	if prior == nil || prior.Code() == next.Code() {
		return ContaminationAssessment{}
	}

	assessment := ContaminationAssessment{
		Risk: next.IsContaminatedBy(prior.Code()),
	}
	assessment.CleaningRequired = assessment.Risk && next.RequiresCleaningAfter(prior.Code())

	if assessment.CleaningRequired {
		if prior.FuelType() == next.FuelType() {
			assessment.EstimatedMinutes = m.policy.SameTypeMinutes
			assessment.EstimatedCostUSD = m.policy.SameTypeCostUSD
		} else {
			assessment.EstimatedMinutes = m.policy.CrossTypeMinutes
			assessment.EstimatedCostUSD = m.policy.CrossTypeCostUSD
		}
	}

	return assessment
}
