package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatDriver(t *testing.T, app *App, category string) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newChatModel(context.Background(), app.Triage, category), teatest.WithSize(100, 40))
	d.DrainInit()
	return d
}

func TestChatModel_ShowsFirstQuestion(t *testing.T) {
	app := testApp(t)
	d := newChatDriver(t, app, "fever_infections")

	view := d.PlainView()
	assert.Contains(t, view, "SYMPTOM TRIAGE · FEVER & INFECTIONS")
	assert.Contains(t, view, "How long have you had a fever?")
	assert.Contains(t, view, "1. Less than 3 days")
}

func TestChatModel_InvalidReplyKeepsQuestion(t *testing.T) {
	app := testApp(t)
	d := newChatDriver(t, app, "fever_infections")

	d.Submit("9")

	view := d.PlainView()
	assert.Contains(t, view, `invalid choice "9"`)
	assert.Contains(t, view, "How long have you had a fever?")

	m := d.Model.(*chatModel)
	require.NotNil(t, m.step)
	assert.Equal(t, 0, m.step.AnsweredCount)
	assert.Empty(t, m.turns)
}

func TestChatModel_CompletesAndQuits(t *testing.T) {
	app := testApp(t)
	d := newChatDriver(t, app, "fever_infections")

	d.Submit("1")
	assert.Contains(t, d.PlainView(), "Less than 3 days")
	assert.Contains(t, d.PlainView(), "How would you describe your fever?")
	assert.Empty(t, d.Model.(*chatModel).notice)

	for range 3 {
		d.Submit("1")
	}

	m := d.Model.(*chatModel)
	require.True(t, m.done())
	assert.Len(t, m.turns, 4)

	view := d.PlainView()
	assert.Contains(t, view, "TRIAGE ASSESSMENT")
	assert.Contains(t, view, "Press enter to exit.")

	d.PressKey('x')
	assert.False(t, d.Quitting)
	d.PressEnter()
	assert.True(t, d.Quitting)
}

func TestChatModel_EscLeavesConversationActive(t *testing.T) {
	app := testApp(t)
	d := newChatDriver(t, app, "")

	d.PressEsc()
	assert.True(t, d.Quitting)

	active := domain.ConversationActive
	convs, err := app.Triage.List(context.Background(), &active, 0)
	require.NoError(t, err)
	assert.Len(t, convs, 1)
}

func TestChatModel_CtrlCKeepsAnswersGiven(t *testing.T) {
	app := testApp(t)
	d := newChatDriver(t, app, "fever_infections")

	d.Submit("2")
	d.PressCtrlC()
	assert.True(t, d.Quitting)

	d.Submit("1")
	m := d.Model.(*chatModel)
	require.NotNil(t, m.step)
	assert.Equal(t, 1, m.step.AnsweredCount)

	conv, err := app.Triage.Get(context.Background(), m.step.ConversationID)
	require.NoError(t, err)
	assert.Equal(t, domain.ConversationActive, conv.Status)
	assert.Equal(t, 1, conv.State.AnsweredCount())
	assert.Equal(t, domain.QuestionKey("fever_pattern"), conv.PendingQuestion)
}

func TestCategoryOptions(t *testing.T) {
	opts := categoryOptions()

	require.Len(t, opts, len(domain.Categories)+1)
	assert.Equal(t, "fever_infections", opts[0].Value)
	assert.Equal(t, "", opts[len(opts)-1].Value)
	assert.Equal(t, "Not sure", opts[len(opts)-1].Key)
}
