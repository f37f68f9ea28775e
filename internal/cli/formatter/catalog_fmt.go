package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/triage/internal/catalog"
	"github.com/alexanderramin/triage/internal/domain"
)

// FormatConditions renders the catalog's conditions in priority order.
func FormatConditions(c *catalog.Catalog) string {
	headers := []string{"ID", "NAME", "PRIORITY", "PRIMARY", "RISK FACTORS"}
	rows := make([][]string, 0, len(c.Conditions))
	for _, cond := range c.Conditions {
		rows = append(rows, []string{
			cond.ID,
			Bold(cond.Name),
			fmt.Sprintf("%d", cond.Priority),
			JoinTokens(cond.Symptoms.Primary),
			JoinTokens(cond.RiskFactors),
		})
	}
	return RenderBox("Conditions", RenderTable(headers, rows)) + "\n"
}

// FormatQuestions renders every question with its choices and the tokens
// each choice marks present.
func FormatQuestions(c *catalog.Catalog) string {
	var b strings.Builder
	for i, q := range c.Questions {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %s\n", StyleHeader.Render(string(q.Key)), q.Prompt)
		for j, choice := range q.Choices {
			fmt.Fprintf(&b, "  %d. %s %s\n", j+1, choice, Dim("→ "+JoinTokens(q.TokensFor(choice))))
		}
	}
	return RenderBox("Questions", strings.TrimSuffix(b.String(), "\n")) + "\n"
}

// FormatCategories renders the per-category question order plus the
// fallback order used when no category applies.
func FormatCategories(c *catalog.Catalog) string {
	headers := []string{"CATEGORY", "LABEL", "QUESTIONS"}
	rows := make([][]string, 0, len(c.Categories)+1)
	for _, cq := range c.Categories {
		rows = append(rows, []string{string(cq.Category), CategoryBadge(cq.Category), joinKeys(cq.Questions)})
	}
	rows = append(rows, []string{Dim("(fallback)"), Dim("--"), joinKeys(c.FallbackOrder)})
	return RenderBox("Categories", RenderTable(headers, rows)) + "\n"
}

// FormatValidation renders catalog validation problems, or a success line.
func FormatValidation(errs []error) string {
	if len(errs) == 0 {
		return StyleGreen.Render("✔ catalog is valid") + "\n"
	}
	var b strings.Builder
	b.WriteString(StyleRed.Render(fmt.Sprintf("✖ %d catalog problem(s)", len(errs))) + "\n")
	for _, err := range errs {
		b.WriteString("  " + StyleRed.Render("•") + " " + err.Error() + "\n")
	}
	return b.String()
}

func joinKeys(keys []domain.QuestionKey) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, " → ")
}
