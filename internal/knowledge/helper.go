// Package knowledge answers one narrow question: what is the clinical
// purpose of an intervention term. The answer is a short categorical label
// the solver can use to enrich its reasoning. Lookups are strictly
// additive: a failed or unavailable helper never changes a prediction.
package knowledge

import "context"

// Helper resolves a short clinical term to a categorical purpose label
// such as "breathing_intervention". Implementations must treat an unknown
// term as ("", nil), not an error.
type Helper interface {
	InterventionPurpose(ctx context.Context, term string) (string, error)
}

// Purpose labels returned by the built-in implementations.
const (
	PurposeBreathing   = "breathing_intervention"
	PurposeCirculation = "circulation_intervention"
	PurposeSafety      = "safety_intervention"
	PurposeNeuro       = "neurological_intervention"
)
