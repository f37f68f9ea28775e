package testutil

import (
	"time"

	"github.com/alexanderramin/triage/internal/domain"
	"github.com/google/uuid"
)

type ConversationOption func(*domain.Conversation)

func WithCategory(c domain.CategoryHint) ConversationOption {
	return func(conv *domain.Conversation) {
		conv.Category = c
	}
}

func WithSymptoms(tokens ...domain.SymptomToken) ConversationOption {
	return func(conv *domain.Conversation) {
		for _, t := range tokens {
			conv.State.MarkPresent(t)
		}
	}
}

func WithAnswered(keys ...domain.QuestionKey) ConversationOption {
	return func(conv *domain.Conversation) {
		for _, k := range keys {
			conv.State.MarkAnswered(k)
		}
	}
}

func WithPending(key domain.QuestionKey) ConversationOption {
	return func(conv *domain.Conversation) {
		conv.PendingQuestion = key
	}
}

func WithCompleted(reason string) ConversationOption {
	return func(conv *domain.Conversation) {
		conv.Complete(reason, conv.UpdatedAt)
	}
}

func WithUpdatedAt(t time.Time) ConversationOption {
	return func(conv *domain.Conversation) {
		conv.UpdatedAt = t
		if conv.CreatedAt.After(t) {
			conv.CreatedAt = t
		}
	}
}

// NewTestConversation returns an active conversation with an empty state.
func NewTestConversation(opts ...ConversationOption) *domain.Conversation {
	now := time.Now().UTC()
	c := &domain.Conversation{
		ID:        uuid.New().String(),
		State:     domain.NewConversationState(),
		Status:    domain.ConversationActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func NewTestAnswer(conversationID string, key domain.QuestionKey, index int, choice string) *domain.AnswerRecord {
	return &domain.AnswerRecord{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		QuestionKey:    key,
		ChoiceIndex:    index,
		Choice:         choice,
		CreatedAt:      time.Now().UTC(),
	}
}
