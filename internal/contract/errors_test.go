package contract

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriageError_IsMatchesCode(t *testing.T) {
	err := fmt.Errorf("answering: %w", NewTriageError(ErrInvalidChoice, "reply with 1-4"))

	assert.True(t, errors.Is(err, &TriageError{Code: ErrInvalidChoice}))
	assert.False(t, errors.Is(err, &TriageError{Code: ErrConversationNotFound}))
	assert.Equal(t, "INVALID_CHOICE: reply with 1-4", NewTriageError(ErrInvalidChoice, "reply with 1-4").Error())
}

func TestTriageError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &TriageError{Code: ErrInternalError, Message: "saving", Err: cause}

	assert.ErrorIs(t, err, cause)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrConversationCompleted, CodeOf(NewTriageError(ErrConversationCompleted, "done")))
	assert.Equal(t, ErrInternalError, CodeOf(errors.New("boom")))
}

func TestNewAnswerRequest(t *testing.T) {
	req := NewAnswerRequest("c-1", " 2 ")

	assert.Equal(t, "c-1", req.ConversationID)
	assert.Equal(t, " 2 ", req.Reply)
	assert.Nil(t, req.Now)
}
