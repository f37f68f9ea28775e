package service

import (
	"context"
	"time"

	"github.com/alexanderramin/triage/internal/contract"
	"github.com/alexanderramin/triage/internal/domain"
)

// TriageService runs persisted patient conversations on top of the
// stateless triage engine.
type TriageService interface {
	Start(ctx context.Context, req contract.StartRequest) (*contract.Step, error)
	Next(ctx context.Context, id string) (*contract.Step, error)
	Answer(ctx context.Context, req contract.AnswerRequest) (*contract.Step, error)
	Result(ctx context.Context, id string) (*domain.TriageResult, error)
	Get(ctx context.Context, id string) (*domain.Conversation, error)
	List(ctx context.Context, status *domain.ConversationStatus, limit int) ([]*domain.Conversation, error)
	History(ctx context.Context, id string) ([]contract.HistoryEntry, error)
	Reset(ctx context.Context, id string) (*contract.Step, error)
	Delete(ctx context.Context, id string) error
	// Expire deletes active conversations not updated within olderThan and
	// returns how many were removed.
	Expire(ctx context.Context, olderThan time.Duration) (int, error)
}

// AssessmentService scores an ad-hoc set of symptom tokens without a
// conversation.
type AssessmentService interface {
	Assess(ctx context.Context, tokens []domain.SymptomToken) (*domain.TriageResult, error)
}
