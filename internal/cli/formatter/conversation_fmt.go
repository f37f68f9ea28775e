package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/triage/internal/contract"
	"github.com/alexanderramin/triage/internal/domain"
)

// FormatConversationList renders conversations as a table, newest first as
// given by the caller.
func FormatConversationList(convs []*domain.Conversation, now time.Time) string {
	if len(convs) == 0 {
		return Dim("No conversations found.") + "\n"
	}

	headers := []string{"ID", "CATEGORY", "STATUS", "ANSWERED", "PENDING", "UPDATED"}
	rows := make([][]string, 0, len(convs))
	for _, c := range convs {
		pending := Dim("--")
		if c.PendingQuestion != "" {
			pending = string(c.PendingQuestion)
		}
		rows = append(rows, []string{
			TruncID(c.ID),
			CategoryBadge(c.Category),
			StatusPill(c.Status),
			fmt.Sprintf("%d", c.State.AnsweredCount()),
			pending,
			HumanTimestamp(c.UpdatedAt, now),
		})
	}
	return RenderBox("Conversations", RenderTable(headers, rows)) + "\n"
}

// FormatHistory renders the ordered answer log of one conversation.
func FormatHistory(entries []contract.HistoryEntry) string {
	if len(entries) == 0 {
		return Dim("No answers recorded.") + "\n"
	}

	var b strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&b, "%s %s\n", StyleBlue.Render(fmt.Sprintf("%d.", i+1)), e.Prompt)
		fmt.Fprintf(&b, "   %s %s %s\n",
			StyleGreen.Render("→"), e.Answer.Choice, Dim(fmt.Sprintf("(choice %d)", e.Answer.ChoiceIndex)))
	}
	return RenderBox("History", strings.TrimSuffix(b.String(), "\n")) + "\n"
}

// FormatConversation renders a conversation summary with its present
// symptoms.
func FormatConversation(c *domain.Conversation, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Dim("id:"), c.ID)
	fmt.Fprintf(&b, "%s %s\n", Dim("category:"), CategoryBadge(c.Category))
	fmt.Fprintf(&b, "%s %s\n", Dim("status:"), StatusPill(c.Status))
	if c.CompletionReason != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("reason:"), completionLabel(contract.CompletionReason(c.CompletionReason)))
	}
	fmt.Fprintf(&b, "%s %d\n", Dim("answered:"), c.State.AnsweredCount())
	fmt.Fprintf(&b, "%s %s\n", Dim("symptoms:"), JoinTokens(c.State.Present()))
	fmt.Fprintf(&b, "%s %s", Dim("updated:"), HumanTimestamp(c.UpdatedAt, now))
	return RenderBox("Conversation", b.String()) + "\n"
}
