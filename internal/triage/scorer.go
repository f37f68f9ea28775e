package triage

import "github.com/alexanderramin/triage/internal/domain"

const (
	minScore = 0
	maxScore = 100
)

type ScoringWeights struct {
	Primary    int
	Secondary  int
	RiskFactor int
}

func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		Primary:    30,
		Secondary:  15,
		RiskFactor: 20,
	}
}

// ScoreCondition computes the clamped match score of one condition against
// the tokens marked present in state.
func ScoreCondition(cond domain.Condition, state domain.ConversationState, w ScoringWeights) domain.ScoredCondition {
	result := domain.ScoredCondition{Condition: cond}

	var score int
	factors := []struct {
		tokens  []domain.SymptomToken
		weight  int
		matched *[]domain.SymptomToken
	}{
		{cond.Symptoms.Primary, w.Primary, &result.MatchedSymptoms},
		{cond.Symptoms.Secondary, w.Secondary, &result.MatchedSymptoms},
		{cond.RiskFactors, w.RiskFactor, &result.MatchedRiskFactors},
	}
	for _, f := range factors {
		for _, t := range f.tokens {
			if state.IsPresent(t) {
				score += f.weight
				*f.matched = append(*f.matched, t)
			}
		}
	}

	result.ConfidenceScore = clamp(score)
	return result
}

func clamp(score int) int {
	switch {
	case score < minScore:
		return minScore
	case score > maxScore:
		return maxScore
	default:
		return score
	}
}
