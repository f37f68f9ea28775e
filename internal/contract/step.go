package contract

import (
	"time"

	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/triage"
)

type QuestionPrompt = triage.QuestionPrompt

type QuestionSource = triage.QuestionSource

type CompletionReason = triage.CompletionReason

// Step is the externally visible position of a conversation: either the
// question awaiting a reply, or the final assessment.
type Step struct {
	ConversationID string
	Category       domain.CategoryHint
	Status         domain.ConversationStatus
	AnsweredCount  int
	Question       *QuestionPrompt
	Reason         CompletionReason
	Result         *domain.TriageResult
	UpdatedAt      time.Time
}

func (s *Step) Completed() bool {
	return s.Status == domain.ConversationCompleted
}

type StartRequest struct {
	Category string
	Now      *time.Time
}

func NewStartRequest(category string) StartRequest {
	return StartRequest{Category: category}
}

type AnswerRequest struct {
	ConversationID string
	Reply          string
	Now            *time.Time
}

func NewAnswerRequest(id, reply string) AnswerRequest {
	return AnswerRequest{ConversationID: id, Reply: reply}
}

// HistoryEntry pairs a recorded answer with its question prompt.
type HistoryEntry struct {
	Answer domain.AnswerRecord
	Prompt string
}
