package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/triage/internal/contract"
	"github.com/alexanderramin/triage/internal/db"
	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/repository"
	"github.com/alexanderramin/triage/internal/triage"
	"github.com/google/uuid"
)

type triageService struct {
	engine        *triage.Engine
	conversations repository.ConversationRepo
	answers       repository.AnswerRepo
	uow           db.UnitOfWork
	observer      UseCaseObserver
}

func NewTriageService(
	engine *triage.Engine,
	conversations repository.ConversationRepo,
	answers repository.AnswerRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) TriageService {
	return &triageService{
		engine:        engine,
		conversations: conversations,
		answers:       answers,
		uow:           uow,
		observer:      useCaseObserverOrNoop(observers),
	}
}

func (s *triageService) Start(ctx context.Context, req contract.StartRequest) (step *contract.Step, err error) {
	fields := map[string]any{"category": req.Category}
	defer s.observe(ctx, "start", time.Now(), fields, &err)

	var category domain.CategoryHint
	if req.Category != "" {
		var ok bool
		if category, ok = domain.ParseCategory(req.Category); !ok {
			return nil, contract.NewTriageError(contract.ErrInvalidCategory,
				fmt.Sprintf("unknown category %q", req.Category))
		}
	}

	now := resolveNow(req.Now)
	conv := &domain.Conversation{
		ID:        uuid.New().String(),
		Category:  category,
		State:     domain.NewConversationState(),
		Status:    domain.ConversationActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	d := s.advance(conv, now)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteConversationRepo(tx).Create(ctx, conv)
	})
	if err != nil {
		return nil, fmt.Errorf("starting conversation: %w", err)
	}

	fields["conversation_id"] = conv.ID
	return s.step(conv, d), nil
}

func (s *triageService) Next(ctx context.Context, id string) (step *contract.Step, err error) {
	defer s.observe(ctx, "next", time.Now(), map[string]any{"conversation_id": id}, &err)

	conv, err := s.load(ctx, s.conversations, id)
	if err != nil {
		return nil, err
	}
	return s.current(conv), nil
}

// Answer applies a patient reply to the pending question. A reply that
// does not select a choice changes nothing and returns INVALID_CHOICE with
// the unchanged step, so the caller can re-prompt.
func (s *triageService) Answer(ctx context.Context, req contract.AnswerRequest) (step *contract.Step, err error) {
	fields := map[string]any{"conversation_id": req.ConversationID}
	defer s.observe(ctx, "answer", time.Now(), fields, &err)

	now := resolveNow(req.Now)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		convs := repository.NewSQLiteConversationRepo(tx)
		conv, err := s.load(ctx, convs, req.ConversationID)
		if err != nil {
			return err
		}
		if conv.Status == domain.ConversationCompleted {
			return &contract.TriageError{
				Code:    contract.ErrConversationCompleted,
				Message: fmt.Sprintf("conversation %s is already completed", conv.ID),
				Step:    s.current(conv),
			}
		}

		pending := conv.PendingQuestion
		if pending == "" {
			if d := s.engine.NextQuestion(conv.State, conv.Category); d.Question != nil {
				pending = d.Question.Key
			}
		}
		fields["question"] = string(pending)

		next, applied, err := s.engine.ApplyReply(conv.State, pending, req.Reply)
		if err != nil {
			if errors.Is(err, triage.ErrInvalidChoice) {
				return &contract.TriageError{
					Code:    contract.ErrInvalidChoice,
					Message: err.Error(),
					Step:    s.current(conv),
					Err:     err,
				}
			}
			return fmt.Errorf("applying answer: %w", err)
		}

		conv.State = next
		record := &domain.AnswerRecord{
			ID:             uuid.New().String(),
			ConversationID: conv.ID,
			QuestionKey:    applied.Question,
			ChoiceIndex:    applied.Index,
			Choice:         applied.Choice,
			CreatedAt:      now,
		}
		if err := repository.NewSQLiteAnswerRepo(tx).Append(ctx, record); err != nil {
			return err
		}

		d := s.advance(conv, now)
		if err := convs.Update(ctx, conv); err != nil {
			return err
		}
		step = s.step(conv, d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["status"] = string(step.Status)
	return step, nil
}

func (s *triageService) Result(ctx context.Context, id string) (result *domain.TriageResult, err error) {
	defer s.observe(ctx, "result", time.Now(), map[string]any{"conversation_id": id}, &err)

	conv, err := s.load(ctx, s.conversations, id)
	if err != nil {
		return nil, err
	}
	r := s.engine.Score(conv.State)
	return &r, nil
}

func (s *triageService) Get(ctx context.Context, id string) (*domain.Conversation, error) {
	return s.load(ctx, s.conversations, id)
}

// List returns conversations newest first. A limit of zero returns all.
func (s *triageService) List(ctx context.Context, status *domain.ConversationStatus, limit int) ([]*domain.Conversation, error) {
	return s.conversations.List(ctx, repository.ConversationFilter{Status: status, Limit: limit})
}

func (s *triageService) History(ctx context.Context, id string) ([]contract.HistoryEntry, error) {
	if _, err := s.load(ctx, s.conversations, id); err != nil {
		return nil, err
	}
	records, err := s.answers.ListByConversation(ctx, id)
	if err != nil {
		return nil, err
	}

	entries := make([]contract.HistoryEntry, 0, len(records))
	for _, r := range records {
		entry := contract.HistoryEntry{Answer: r, Prompt: string(r.QuestionKey)}
		if q, ok := s.engine.Catalog().Question(r.QuestionKey); ok {
			entry.Prompt = q.Prompt
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Reset clears the state and answer log but keeps the category, then
// returns the first question again.
func (s *triageService) Reset(ctx context.Context, id string) (step *contract.Step, err error) {
	defer s.observe(ctx, "reset", time.Now(), map[string]any{"conversation_id": id}, &err)

	now := time.Now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		convs := repository.NewSQLiteConversationRepo(tx)
		conv, err := s.load(ctx, convs, id)
		if err != nil {
			return err
		}
		if err := repository.NewSQLiteAnswerRepo(tx).DeleteByConversation(ctx, id); err != nil {
			return err
		}
		conv.Reset(now)
		d := s.advance(conv, now)
		if err := convs.Update(ctx, conv); err != nil {
			return err
		}
		step = s.step(conv, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return step, nil
}

func (s *triageService) Delete(ctx context.Context, id string) (err error) {
	defer s.observe(ctx, "delete", time.Now(), map[string]any{"conversation_id": id}, &err)

	if err := s.conversations.Delete(ctx, id); err != nil {
		return notFound(err, id)
	}
	return nil
}

func (s *triageService) Expire(ctx context.Context, olderThan time.Duration) (n int, err error) {
	fields := map[string]any{"older_than": olderThan.String()}
	defer s.observe(ctx, "expire", time.Now(), fields, &err)

	cutoff := time.Now().UTC().Add(-olderThan)
	active := domain.ConversationActive
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		convs := repository.NewSQLiteConversationRepo(tx)
		stale, err := convs.List(ctx, repository.ConversationFilter{Status: &active, UpdatedBefore: &cutoff})
		if err != nil {
			return err
		}
		for _, c := range stale {
			if err := convs.Delete(ctx, c.ID); err != nil {
				return err
			}
		}
		n = len(stale)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("expiring conversations: %w", err)
	}
	fields["expired"] = n
	return n, nil
}

// advance asks the engine for the next step and records it on conv.
func (s *triageService) advance(conv *domain.Conversation, now time.Time) triage.Decision {
	d := s.engine.NextQuestion(conv.State, conv.Category)
	if d.Completed {
		conv.Complete(string(d.Reason), now)
	} else {
		conv.Await(d.Question.Key, now)
	}
	return d
}

// current rebuilds the step of a stored conversation without changing it.
func (s *triageService) current(conv *domain.Conversation) *contract.Step {
	if conv.Status == domain.ConversationCompleted {
		return s.step(conv, triage.Decision{
			Completed: true,
			Reason:    triage.CompletionReason(conv.CompletionReason),
		})
	}

	d := s.engine.NextQuestion(conv.State, conv.Category)
	if d.Question == nil || d.Question.Key != conv.PendingQuestion {
		// The catalog changed since the question was asked; keep asking it.
		if q, ok := s.engine.Prompt(conv.PendingQuestion); ok {
			d = triage.Decision{Question: q}
		}
	}
	return s.step(conv, d)
}

func (s *triageService) step(conv *domain.Conversation, d triage.Decision) *contract.Step {
	st := &contract.Step{
		ConversationID: conv.ID,
		Category:       conv.Category,
		Status:         conv.Status,
		AnsweredCount:  conv.State.AnsweredCount(),
		UpdatedAt:      conv.UpdatedAt,
	}
	if d.Completed {
		st.Reason = d.Reason
		r := s.engine.Score(conv.State)
		st.Result = &r
		return st
	}
	st.Question = d.Question
	return st
}

func (s *triageService) load(ctx context.Context, repo repository.ConversationRepo, id string) (*domain.Conversation, error) {
	conv, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	return conv, nil
}

func (s *triageService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err *error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   *err == nil,
		Err:       *err,
		Fields:    fields,
	})
}

func notFound(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &contract.TriageError{
			Code:    contract.ErrConversationNotFound,
			Message: fmt.Sprintf("conversation %s not found", id),
			Err:     err,
		}
	}
	return err
}

func resolveNow(now *time.Time) time.Time {
	if now != nil {
		return now.UTC()
	}
	return time.Now().UTC()
}
