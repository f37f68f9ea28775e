package contract

import "errors"

type TriageErrorCode string

const (
	ErrInvalidChoice         TriageErrorCode = "INVALID_CHOICE"
	ErrConversationNotFound  TriageErrorCode = "CONVERSATION_NOT_FOUND"
	ErrConversationCompleted TriageErrorCode = "CONVERSATION_COMPLETED"
	ErrInvalidCategory       TriageErrorCode = "INVALID_CATEGORY"
	ErrInternalError         TriageErrorCode = "INTERNAL_ERROR"
)

// TriageError is returned by the orchestration layer for failures a caller
// is expected to handle. Step is set for INVALID_CHOICE so the caller can
// re-prompt the same question.
type TriageError struct {
	Code    TriageErrorCode
	Message string
	Step    *Step
	Err     error
}

func (e *TriageError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *TriageError) Unwrap() error {
	return e.Err
}

// Is matches another *TriageError with the same code.
func (e *TriageError) Is(target error) bool {
	t, ok := target.(*TriageError)
	return ok && t.Code == e.Code
}

func NewTriageError(code TriageErrorCode, msg string) *TriageError {
	return &TriageError{Code: code, Message: msg}
}

// CodeOf returns the error code carried by err, or INTERNAL_ERROR when err
// is not a TriageError.
func CodeOf(err error) TriageErrorCode {
	var te *TriageError
	if errors.As(err, &te) {
		return te.Code
	}
	return ErrInternalError
}
