package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestConversation_AwaitThenComplete(t *testing.T) {
	c := &Conversation{ID: "c-1", State: NewConversationState(), Status: ConversationActive}

	c.Await("fever_duration", fixedNow)
	assert.Equal(t, QuestionKey("fever_duration"), c.PendingQuestion)
	assert.Nil(t, c.CompletedAt)

	later := fixedNow.Add(time.Minute)
	c.Complete("answer_limit", later)
	assert.Equal(t, ConversationCompleted, c.Status)
	assert.Empty(t, c.PendingQuestion)
	assert.Equal(t, "answer_limit", c.CompletionReason)
	require.NotNil(t, c.CompletedAt)
	assert.Equal(t, later, *c.CompletedAt)
	assert.Equal(t, later, c.UpdatedAt)
}

func TestConversation_ResetKeepsCategory(t *testing.T) {
	c := &Conversation{
		ID:       "c-1",
		Category: CategoryCardiac,
		State:    StateWithSymptoms("chest_discomfort"),
	}
	c.Complete("exhausted", fixedNow)

	c.Reset(fixedNow.Add(time.Hour))

	assert.Equal(t, CategoryCardiac, c.Category)
	assert.True(t, c.HasCategory())
	assert.Equal(t, ConversationActive, c.Status)
	assert.Zero(t, c.State.Len())
	assert.Empty(t, c.CompletionReason)
	assert.Nil(t, c.CompletedAt)
}

func TestConversation_HasCategory(t *testing.T) {
	assert.False(t, (&Conversation{}).HasCategory())
	assert.False(t, (&Conversation{Category: "bogus"}).HasCategory())
	assert.True(t, (&Conversation{Category: CategoryGeneral}).HasCategory())
}
