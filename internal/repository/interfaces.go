package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/triage/internal/domain"
)

// ErrNotFound is wrapped by every repository lookup that matches no row.
var ErrNotFound = errors.New("not found")

// ConversationFilter narrows List. Zero fields match everything.
type ConversationFilter struct {
	Status        *domain.ConversationStatus
	UpdatedBefore *time.Time
	Limit         int
}

type ConversationRepo interface {
	Create(ctx context.Context, c *domain.Conversation) error
	GetByID(ctx context.Context, id string) (*domain.Conversation, error)
	List(ctx context.Context, f ConversationFilter) ([]*domain.Conversation, error)
	Update(ctx context.Context, c *domain.Conversation) error
	Delete(ctx context.Context, id string) error
}

type AnswerRepo interface {
	Append(ctx context.Context, a *domain.AnswerRecord) error
	ListByConversation(ctx context.Context, conversationID string) ([]domain.AnswerRecord, error)
	CountByConversation(ctx context.Context, conversationID string) (int, error)
	DeleteByConversation(ctx context.Context, conversationID string) error
}
