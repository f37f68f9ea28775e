package triage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/triage/internal/domain"
)

var (
	ErrInvalidChoice   = errors.New("invalid choice")
	ErrUnknownQuestion = errors.New("unknown question")
)

// InvalidChoiceError reports a reply that does not select one of the
// question's choices. It matches ErrInvalidChoice with errors.Is.
type InvalidChoiceError struct {
	Question domain.QuestionKey
	Reply    string
	Choices  int
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid choice %q for %s: reply with a number from 1 to %d", e.Reply, e.Question, e.Choices)
}

func (e *InvalidChoiceError) Is(target error) bool {
	return target == ErrInvalidChoice
}

// AppliedAnswer describes the effect of a successfully applied answer.
type AppliedAnswer struct {
	Question domain.QuestionKey
	Index    int
	Choice   string
	Tokens   []domain.SymptomToken
}

// ParseChoice converts a patient reply into a 1-based choice index. Only
// plain decimal integers in 1..n are accepted.
func ParseChoice(reply string, n int) (int, error) {
	trimmed := strings.TrimSpace(reply)
	idx, err := strconv.Atoi(trimmed)
	if err != nil || idx < 1 || idx > n || strings.HasPrefix(trimmed, "+") {
		return 0, &InvalidChoiceError{Reply: reply, Choices: n}
	}
	return idx, nil
}

// ApplyAnswer records the 1-based choice for key and returns the new state.
// The input state is never modified; on error it is returned unchanged.
func (e *Engine) ApplyAnswer(state domain.ConversationState, key domain.QuestionKey, index int) (domain.ConversationState, AppliedAnswer, error) {
	q, ok := e.catalog.Question(key)
	if !ok {
		return state, AppliedAnswer{}, fmt.Errorf("%w: %q", ErrUnknownQuestion, key)
	}
	if index < 1 || index > len(q.Choices) {
		return state, AppliedAnswer{}, &InvalidChoiceError{
			Question: key,
			Reply:    strconv.Itoa(index),
			Choices:  len(q.Choices),
		}
	}

	choice := q.Choices[index-1]
	toks := q.TokensFor(choice)

	next := state.Clone()
	next.MarkAnswered(key)
	for _, t := range toks {
		next.MarkPresent(t)
	}

	return next, AppliedAnswer{
		Question: key,
		Index:    index,
		Choice:   choice,
		Tokens:   append([]domain.SymptomToken(nil), toks...),
	}, nil
}

// ApplyReply parses a raw reply and applies it as an answer to key.
func (e *Engine) ApplyReply(state domain.ConversationState, key domain.QuestionKey, reply string) (domain.ConversationState, AppliedAnswer, error) {
	q, ok := e.catalog.Question(key)
	if !ok {
		return state, AppliedAnswer{}, fmt.Errorf("%w: %q", ErrUnknownQuestion, key)
	}
	idx, err := ParseChoice(reply, len(q.Choices))
	if err != nil {
		var ice *InvalidChoiceError
		if errors.As(err, &ice) {
			ice.Question = key
		}
		return state, AppliedAnswer{}, err
	}
	return e.ApplyAnswer(state, key, idx)
}
