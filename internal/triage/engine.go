// Package triage implements the symptom triage engine: condition scoring,
// next-question selection and answer application. The engine is pure: it
// holds no per-conversation state and every method is deterministic for a
// given catalog and input.
package triage

import (
	"github.com/alexanderramin/triage/internal/catalog"
	"github.com/alexanderramin/triage/internal/domain"
)

// Policy holds the thresholds that drive candidate retention and the
// question cascade.
type Policy struct {
	// CandidateThreshold is the minimum score for a condition to appear in
	// a TriageResult.
	CandidateThreshold int
	// AnswerLimit stops the conversation once this many questions are answered.
	AnswerLimit int
	// ConfidentStop ends the conversation early when the top condition
	// reaches this score after at least ConfidentMinAnswers answers.
	ConfidentStop       int
	ConfidentMinAnswers int
	// ConditionThreshold is the top score needed before the leading
	// condition's own questions are asked.
	ConditionThreshold int
}

func DefaultPolicy() Policy {
	return Policy{
		CandidateThreshold:  50,
		AnswerLimit:         7,
		ConfidentStop:       90,
		ConfidentMinAnswers: 2,
		ConditionThreshold:  40,
	}
}

type Engine struct {
	catalog *catalog.Catalog
	weights ScoringWeights
	policy  Policy
}

type Option func(*Engine)

func WithWeights(w ScoringWeights) Option {
	return func(e *Engine) { e.weights = w }
}

func WithPolicy(p Policy) Option {
	return func(e *Engine) { e.policy = p }
}

// New creates an engine over the given catalog. The catalog must not be
// modified afterwards.
func New(c *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: c,
		weights: DefaultWeights(),
		policy:  DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

func (e *Engine) Policy() Policy { return e.policy }

// Rank scores every condition and returns those with a positive score,
// highest first, ties in catalog order.
func (e *Engine) Rank(state domain.ConversationState) []domain.ScoredCondition {
	scored := make([]domain.ScoredCondition, 0, len(e.catalog.Conditions))
	for _, cond := range e.catalog.Conditions {
		s := ScoreCondition(cond, state, e.weights)
		if s.ConfidenceScore > 0 {
			scored = append(scored, s)
		}
	}
	CanonicalSort(scored)
	return scored
}

// Score produces the triage result for the current state. An empty or
// unmatched state yields the general-evaluation fallback.
func (e *Engine) Score(state domain.ConversationState) domain.TriageResult {
	candidates := filterAtLeast(e.Rank(state), e.policy.CandidateThreshold)
	if len(candidates) == 0 {
		return e.fallbackResult()
	}

	top := candidates[0]
	result := domain.TriageResult{PossibleConditions: candidates}
	if band, ok := e.catalog.UrgencyFor(top.ConfidenceScore); ok {
		result.UrgencyLevel = band.Level
		result.Recommendations = append(result.Recommendations, band.Advice.Recommendation)
		result.Actions = append(result.Actions, band.Advice.Action)
	} else {
		result.UrgencyLevel = domain.UrgencyRoutine
	}
	if adv := top.Condition.Advice; adv != nil {
		result.Recommendations = append(result.Recommendations, adv.Recommendation)
		result.Actions = append(result.Actions, adv.Action)
	}
	return result
}

func (e *Engine) fallbackResult() domain.TriageResult {
	fb := e.catalog.Fallback
	return domain.TriageResult{
		PossibleConditions: []domain.ScoredCondition{{
			Condition:       fb.Condition,
			ConfidenceScore: fb.Confidence,
		}},
		UrgencyLevel:    fb.Urgency,
		Recommendations: append([]string(nil), fb.Recommendations...),
		Actions:         append([]string(nil), fb.Actions...),
	}
}
