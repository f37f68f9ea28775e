package triage

import (
	"errors"
	"testing"

	"github.com/alexanderramin/triage/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		reply   string
		n       int
		want    int
		wantErr bool
	}{
		{reply: "1", n: 4, want: 1},
		{reply: " 4\n", n: 4, want: 4},
		{reply: "0", n: 4, wantErr: true},
		{reply: "5", n: 4, wantErr: true},
		{reply: "-1", n: 4, wantErr: true},
		{reply: "+2", n: 4, wantErr: true},
		{reply: "two", n: 4, wantErr: true},
		{reply: "", n: 4, wantErr: true},
		{reply: "1.5", n: 4, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.reply, func(t *testing.T) {
			got, err := ParseChoice(tt.reply, tt.n)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidChoice))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyAnswer_MarksAnsweredAndMappedTokens(t *testing.T) {
	e := newTestEngine(t)
	state := domain.NewConversationState()

	next, applied, err := e.ApplyAnswer(state, "fever_duration", 2)
	require.NoError(t, err)

	assert.True(t, next.IsAnswered("fever_duration"))
	assert.True(t, next.IsPresent("fever"))
	assert.True(t, next.IsPresent("persistent_fever"))
	assert.Equal(t, "3 to 7 days", applied.Choice)
	assert.Equal(t, 2, applied.Index)
	assert.Equal(t, []domain.SymptomToken{"fever", "persistent_fever"}, applied.Tokens)

	assert.Equal(t, 0, state.Len(), "input state must not change")
}

func TestApplyAnswer_UnmappedChoiceOnlyMarksAnswered(t *testing.T) {
	e := newTestEngine(t)

	next, applied, err := e.ApplyAnswer(domain.NewConversationState(), "fever_duration", 4)
	require.NoError(t, err)

	assert.True(t, next.IsAnswered("fever_duration"))
	assert.Empty(t, next.Present())
	assert.Empty(t, applied.Tokens)
}

func TestApplyAnswer_InvalidIndexLeavesStateUntouched(t *testing.T) {
	e := newTestEngine(t)
	state := domain.StateWithSymptoms("fever")
	before := state.Markers()

	for _, idx := range []int{0, -1, 5} {
		next, _, err := e.ApplyAnswer(state, "fever_duration", idx)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidChoice)

		var ice *InvalidChoiceError
		require.True(t, errors.As(err, &ice))
		assert.Equal(t, domain.QuestionKey("fever_duration"), ice.Question)
		assert.Equal(t, 4, ice.Choices)

		assert.Equal(t, before, next.Markers())
	}
	assert.Equal(t, before, state.Markers())
}

func TestApplyAnswer_UnknownQuestion(t *testing.T) {
	e := newTestEngine(t)

	_, _, err := e.ApplyAnswer(domain.NewConversationState(), "no_such_question", 1)

	assert.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestApplyReply(t *testing.T) {
	e := newTestEngine(t)

	next, applied, err := e.ApplyReply(domain.NewConversationState(), "mosquito_bites", "1")
	require.NoError(t, err)
	assert.Equal(t, "Yes, many bites", applied.Choice)
	assert.True(t, next.IsPresent("mosquito_exposure"))

	_, _, err = e.ApplyReply(domain.NewConversationState(), "mosquito_bites", "yes")
	require.Error(t, err)
	var ice *InvalidChoiceError
	require.True(t, errors.As(err, &ice))
	assert.Equal(t, domain.QuestionKey("mosquito_bites"), ice.Question)
	assert.Equal(t, "yes", ice.Reply)
}
