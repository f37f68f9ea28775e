package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/triage/internal/contract"
	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/triage"
)

const confidenceBarWidth = 20

// FormatResult renders a triage result as a boxed, colored assessment.
func FormatResult(r domain.TriageResult) string {
	var b strings.Builder

	b.WriteString(Bold("Urgency") + "  " + UrgencyBadge(r.UrgencyLevel) + "\n\n")

	b.WriteString(Header("Possible conditions") + "\n")
	for i, c := range r.PossibleConditions {
		fmt.Fprintf(&b, "%d. %s  %s\n", i+1, Bold(c.Condition.Name), RenderConfidence(c.ConfidenceScore, confidenceBarWidth))
		if len(c.MatchedSymptoms) > 0 {
			b.WriteString("   " + Dim("symptoms: ") + JoinTokens(c.MatchedSymptoms) + "\n")
		}
		if len(c.MatchedRiskFactors) > 0 {
			b.WriteString("   " + Dim("risk factors: ") + JoinTokens(c.MatchedRiskFactors) + "\n")
		}
		if c.Condition.Reference != "" {
			b.WriteString("   " + Dim("ref: "+c.Condition.Reference) + "\n")
		}
	}

	writeBullets(&b, "Recommendations", r.Recommendations, UrgencyStyle(r.UrgencyLevel).Render("•"))
	writeBullets(&b, "Actions", r.Actions, StyleBlue.Render("→"))

	b.WriteString("\n" + Dim(triage.Disclaimer))
	return RenderBox("Triage assessment", b.String()) + "\n"
}

func writeBullets(b *strings.Builder, title string, items []string, bullet string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n" + Header(title) + "\n")
	for _, item := range items {
		b.WriteString(bullet + " " + item + "\n")
	}
}

// FormatQuestionCard renders a pending question with numbered choices.
func FormatQuestionCard(q *contract.QuestionPrompt, answered int) string {
	var b strings.Builder
	b.WriteString(Bold(q.Prompt) + "\n\n")
	for i, c := range q.Choices {
		fmt.Fprintf(&b, "  %s %s\n", StyleBlue.Render(fmt.Sprintf("%d.", i+1)), c)
	}
	b.WriteString("\n" + Dim(fmt.Sprintf("Reply with a number (1-%d). Answered so far: %d", len(q.Choices), answered)))
	return b.String()
}

// FormatStep renders the outcome of a start or answer call: either the
// next question or the final assessment.
func FormatStep(s *contract.Step) string {
	if s.Completed() {
		header := fmt.Sprintf("%s %s %s\n",
			Dim("Conversation"), TruncID(s.ConversationID), Dim("complete ("+completionLabel(s.Reason)+")"))
		if s.Result == nil {
			return header
		}
		return header + FormatResult(*s.Result)
	}

	title := fmt.Sprintf("Question %d", s.AnsweredCount+1)
	var b strings.Builder
	b.WriteString(RenderBox(title, FormatQuestionCard(s.Question, s.AnsweredCount)) + "\n")
	b.WriteString(Dim("conversation ") + s.ConversationID + "\n")
	return b.String()
}

func completionLabel(r contract.CompletionReason) string {
	switch r {
	case triage.ReasonAnswerLimit:
		return "answer limit reached"
	case triage.ReasonHighConfidence:
		return "high confidence"
	case triage.ReasonExhausted:
		return "no questions left"
	default:
		return string(r)
	}
}
