package triage

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/triage/internal/domain"
)

// Disclaimer is appended to every formatted triage summary.
const Disclaimer = "Disclaimer: This is an automated symptom assessment, not a medical diagnosis. " +
	"If your symptoms are severe or getting worse, seek medical care immediately."

// FormatTriage renders a triage result as plain text suitable for SMS or
// chat delivery.
func FormatTriage(r domain.TriageResult) string {
	var b strings.Builder

	b.WriteString("Triage assessment\n")
	fmt.Fprintf(&b, "Urgency level: %s\n", strings.ToUpper(string(r.UrgencyLevel)))

	b.WriteString("\nPossible conditions:\n")
	for i, c := range r.PossibleConditions {
		fmt.Fprintf(&b, "%d. %s (%d%%)\n", i+1, c.Condition.Name, c.ConfidenceScore)
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
	}

	if len(r.Actions) > 0 {
		b.WriteString("\nActions:\n")
		for _, a := range r.Actions {
			fmt.Fprintf(&b, "- %s\n", a)
		}
	}

	b.WriteString("\n")
	b.WriteString(Disclaimer)
	b.WriteString("\n")
	return b.String()
}

// FormatQuestion renders a question as a numbered list the patient can
// answer by replying with a number.
func FormatQuestion(q *QuestionPrompt) string {
	var b strings.Builder
	b.WriteString(q.Prompt)
	b.WriteString("\n")
	for i, c := range q.Choices {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c)
	}
	fmt.Fprintf(&b, "Reply with a number (1-%d).", len(q.Choices))
	return b.String()
}
