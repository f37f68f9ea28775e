package domain

import "time"

// Conversation is the orchestration-layer record for one patient triage
// session. The engine never sees it; it only receives State.
type Conversation struct {
	ID              string
	Category        CategoryHint
	State           ConversationState
	Status          ConversationStatus
	PendingQuestion QuestionKey
	// CompletionReason is set once Status is completed.
	CompletionReason string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	CompletedAt      *time.Time
}

// HasCategory reports whether a category hint was set at start.
func (c *Conversation) HasCategory() bool {
	_, ok := ParseCategory(string(c.Category))
	return ok
}

// Complete marks the conversation finished and clears any pending question.
func (c *Conversation) Complete(reason string, now time.Time) {
	c.Status = ConversationCompleted
	c.PendingQuestion = ""
	c.CompletionReason = reason
	c.CompletedAt = &now
	c.UpdatedAt = now
}

// Await records the question the patient is expected to answer next.
func (c *Conversation) Await(key QuestionKey, now time.Time) {
	c.Status = ConversationActive
	c.PendingQuestion = key
	c.CompletionReason = ""
	c.CompletedAt = nil
	c.UpdatedAt = now
}

// Reset discards all accumulated state but keeps the category hint.
func (c *Conversation) Reset(now time.Time) {
	c.State = NewConversationState()
	c.Status = ConversationActive
	c.PendingQuestion = ""
	c.CompletionReason = ""
	c.CompletedAt = nil
	c.UpdatedAt = now
}

type AnswerRecord struct {
	ID             string
	ConversationID string
	QuestionKey    QuestionKey
	ChoiceIndex    int
	Choice         string
	CreatedAt      time.Time
}
