package service

import (
	"context"
	"time"

	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/triage"
)

type assessmentService struct {
	engine   *triage.Engine
	observer UseCaseObserver
}

func NewAssessmentService(engine *triage.Engine, observers ...UseCaseObserver) AssessmentService {
	return &assessmentService{engine: engine, observer: useCaseObserverOrNoop(observers)}
}

// Assess scores tokens as if each had been reported present. Tokens outside
// the catalog vocabulary are counted and otherwise ignored.
func (s *assessmentService) Assess(ctx context.Context, tokens []domain.SymptomToken) (*domain.TriageResult, error) {
	startedAt := time.Now()
	vocab := s.engine.Catalog().Vocabulary()
	unknown := 0
	for _, t := range tokens {
		if !vocab[t] {
			unknown++
		}
	}

	r := s.engine.Score(domain.StateWithSymptoms(tokens...))

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "assess",
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   true,
		Fields: map[string]any{
			"tokens":         len(tokens),
			"unknown_tokens": unknown,
			"urgency":        string(r.UrgencyLevel),
		},
	})
	return &r, nil
}
