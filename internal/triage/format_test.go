package triage

import (
	"strings"
	"testing"

	"github.com/alexanderramin/triage/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTriage_Emergency(t *testing.T) {
	e := newTestEngine(t)
	result := e.Score(domain.StateWithSymptoms("fever", "recent_travel", "mosquito_exposure"))

	out := FormatTriage(result)

	assert.Contains(t, out, "Urgency level: EMERGENCY")
	assert.Contains(t, out, "1. Malaria (80%)")
	assert.Contains(t, out, "2. Dengue Fever (70%)")
	assert.Contains(t, out, "- Seek immediate medical attention")
	assert.Contains(t, out, "- Go to nearest hospital emergency department")
	assert.True(t, strings.HasSuffix(out, Disclaimer+"\n"))
}

func TestFormatTriage_Fallback(t *testing.T) {
	e := newTestEngine(t)

	out := FormatTriage(e.Score(domain.NewConversationState()))

	assert.Contains(t, out, "Urgency level: ROUTINE")
	assert.Contains(t, out, "1. General Medical Evaluation (30%)")
	assert.Contains(t, out, "- Schedule a medical consultation")
	assert.Contains(t, out, "- Keep track of your symptoms and their progression")
}

func TestFormatQuestion(t *testing.T) {
	e := newTestEngine(t)
	q, ok := e.Prompt("travel_history")
	require.True(t, ok)

	out := FormatQuestion(q)

	assert.Equal(t, "Have you travelled outside your home area recently?\n"+
		"1. Yes, within the last month\n"+
		"2. Yes, one to three months ago\n"+
		"3. No recent travel\n"+
		"Reply with a number (1-3).", out)
}
