package formatter

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/triage/internal/catalog"
	"github.com/alexanderramin/triage/internal/contract"
	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/triage"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func malariaResult() domain.TriageResult {
	return domain.TriageResult{
		UrgencyLevel: domain.UrgencyEmergency,
		PossibleConditions: []domain.ScoredCondition{{
			Condition:          domain.Condition{ID: "malaria", Name: "Malaria", Reference: "WHO Guidelines for malaria"},
			ConfidenceScore:    80,
			MatchedSymptoms:    []domain.SymptomToken{"fever", "mosquito_exposure"},
			MatchedRiskFactors: []domain.SymptomToken{"recent_travel"},
		}},
		Recommendations: []string{"Seek immediate medical attention"},
		Actions:         []string{"Go to nearest hospital emergency department"},
	}
}

func TestFormatResult(t *testing.T) {
	out := stripANSI(FormatResult(malariaResult()))

	assert.Contains(t, out, "TRIAGE ASSESSMENT")
	assert.Contains(t, out, "▲ EMERGENCY")
	assert.Contains(t, out, "1. Malaria")
	assert.Contains(t, out, " 80%")
	assert.Contains(t, out, "symptoms: fever, mosquito_exposure")
	assert.Contains(t, out, "risk factors: recent_travel")
	assert.Contains(t, out, "• Seek immediate medical attention")
	assert.Contains(t, out, "→ Go to nearest hospital emergency department")
	assert.Contains(t, out, "Disclaimer:")
}

func TestFormatStep_Question(t *testing.T) {
	step := &contract.Step{
		ConversationID: "c-1",
		Status:         domain.ConversationActive,
		AnsweredCount:  2,
		Question: &contract.QuestionPrompt{
			Key:     "fever_pattern",
			Prompt:  "How does your fever behave?",
			Choices: []string{"Constant", "Comes and goes"},
		},
	}

	out := stripANSI(FormatStep(step))

	assert.Contains(t, out, "QUESTION 3")
	assert.Contains(t, out, "How does your fever behave?")
	assert.Contains(t, out, "1. Constant")
	assert.Contains(t, out, "2. Comes and goes")
	assert.Contains(t, out, "Reply with a number (1-2)")
	assert.Contains(t, out, "conversation c-1")
}

func TestFormatStep_Completed(t *testing.T) {
	r := malariaResult()
	step := &contract.Step{
		ConversationID: "abcdef0123456789",
		Status:         domain.ConversationCompleted,
		Reason:         triage.ReasonHighConfidence,
		Result:         &r,
	}

	out := stripANSI(FormatStep(step))

	assert.Contains(t, out, "abcdef01")
	assert.Contains(t, out, "complete (high confidence)")
	assert.Contains(t, out, "Malaria")
}

func TestRenderConfidence(t *testing.T) {
	assert.Equal(t, "[█████░░░░░]  50%", stripANSI(RenderConfidence(50, 10)))
	assert.Equal(t, "[░░░░░░░░░░]   0%", stripANSI(RenderConfidence(-5, 10)))
	assert.Equal(t, "[██████████] 100%", stripANSI(RenderConfidence(140, 10)))
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"ID", "NAME"},
		[][]string{{StyleRed.Render("a"), "Malaria"}, {"bbbb", "Flu"}},
	))

	assert.Equal(t, "ID    NAME\n────  ───────\na     Malaria\nbbbb  Flu\n", out)
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", HumanTimestamp(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2d ago", HumanTimestamp(now.Add(-49*time.Hour), now))
}

func TestFormatConversationList(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	conv := &domain.Conversation{
		ID:              "0123456789abcdef",
		Category:        domain.CategoryCardiac,
		Status:          domain.ConversationActive,
		State:           domain.NewConversationState(),
		PendingQuestion: "chest_pain",
		UpdatedAt:       now.Add(-2 * time.Minute),
	}

	out := stripANSI(FormatConversationList([]*domain.Conversation{conv}, now))

	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789")
	assert.Contains(t, out, "Heart & chest")
	assert.Contains(t, out, "○ Active")
	assert.Contains(t, out, "chest_pain")
	assert.Contains(t, out, "2m ago")

	assert.Equal(t, "No conversations found.\n", stripANSI(FormatConversationList(nil, now)))
}

func TestFormatHistory(t *testing.T) {
	entries := []contract.HistoryEntry{{
		Answer: domain.AnswerRecord{QuestionKey: "fever_duration", ChoiceIndex: 2, Choice: "3 to 7 days"},
		Prompt: "How long have you had a fever?",
	}}

	out := stripANSI(FormatHistory(entries))

	assert.Contains(t, out, "1. How long have you had a fever?")
	assert.Contains(t, out, "→ 3 to 7 days (choice 2)")
}

func TestFormatCatalogViews(t *testing.T) {
	cat := catalog.Default()

	conditions := stripANSI(FormatConditions(cat))
	assert.Contains(t, conditions, "malaria")
	assert.Contains(t, conditions, "fever, mosquito_exposure")

	questions := stripANSI(FormatQuestions(cat))
	assert.Contains(t, questions, "fever_duration")
	assert.Contains(t, questions, "3 to 7 days → fever, persistent_fever")

	categories := stripANSI(FormatCategories(cat))
	assert.Contains(t, categories, "fever_duration → fever_pattern → travel_history → mosquito_bites")
	assert.Contains(t, categories, "(fallback)")
}

func TestFormatValidation(t *testing.T) {
	assert.Equal(t, "✔ catalog is valid\n", stripANSI(FormatValidation(nil)))

	out := stripANSI(FormatValidation([]error{errors.New("question \"x\" has no choices")}))
	assert.Contains(t, out, "✖ 1 catalog problem(s)")
	assert.Contains(t, out, "• question \"x\" has no choices")
}
