package triage

import (
	"sort"

	"github.com/alexanderramin/triage/internal/domain"
)

// CanonicalSort orders scored conditions by confidence, highest first.
// The sort is stable, so conditions with equal scores keep catalog
// declaration order (first declared wins).
func CanonicalSort(scored []domain.ScoredCondition) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].ConfidenceScore > scored[j].ConfidenceScore
	})
}

// filterAtLeast returns the scored conditions whose confidence is >= min,
// preserving order.
func filterAtLeast(scored []domain.ScoredCondition, min int) []domain.ScoredCondition {
	var out []domain.ScoredCondition
	for _, s := range scored {
		if s.ConfidenceScore >= min {
			out = append(out, s)
		}
	}
	return out
}
