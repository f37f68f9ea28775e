package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/triage/internal/cli/formatter"
	"github.com/alexanderramin/triage/internal/contract"
	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/triage"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	var category categoryValue

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Run a triage conversation interactively",
		Long: `Run a triage conversation interactively.

On a terminal this opens a full-screen chat. When stdin is not a terminal,
replies are read one per line and questions are written in plain text.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, app, category.String())
		},
	}
	addCategoryFlag(cmd, &category)
	return cmd
}

func runChat(cmd *cobra.Command, app *App, category string) error {
	if !app.interactive() {
		return runLineChat(cmd, app, category)
	}

	if category == "" {
		if err := categoryForm(&category).RunWithContext(cmd.Context()); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
	}

	p := tea.NewProgram(newChatModel(cmd.Context(), app.Triage, category),
		tea.WithContext(cmd.Context()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(*chatModel); ok && m.err != nil {
		return m.err
	}
	return nil
}

// runLineChat is the non-interactive chat: one reply per input line until
// the conversation completes or input ends.
func runLineChat(cmd *cobra.Command, app *App, category string) error {
	ctx := cmd.Context()
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()

	step, err := app.Triage.Start(ctx, contract.NewStartRequest(category))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "conversation %s\n", step.ConversationID)

	for !step.Completed() {
		fmt.Fprintf(out, "%s\n> ", triage.FormatQuestion(step.Question))
		reply, err := readPromptLine(in)
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintf(out, "\nInput ended; resume with: triage next %s\n", step.ConversationID)
				return nil
			}
			return err
		}

		next, err := app.Triage.Answer(ctx, contract.NewAnswerRequest(step.ConversationID, strings.TrimSpace(reply)))
		if err != nil {
			var te *contract.TriageError
			if errors.As(err, &te) && te.Code == contract.ErrInvalidChoice {
				fmt.Fprintln(out, te.Message)
				continue
			}
			return err
		}
		step = next
	}

	if step.Result != nil {
		fmt.Fprint(out, triage.FormatTriage(*step.Result))
	}
	return nil
}

// categoryForm asks for an optional category before the chat starts.
func categoryForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What is bothering you most?").
				Options(categoryOptions()...).
				Value(value),
		),
	).WithTheme(triageHuhTheme()).WithShowHelp(false)
}

func categoryOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(domain.Categories)+1)
	for _, c := range domain.Categories {
		options = append(options, huh.NewOption(c.Label(), string(c)))
	}
	return append(options, huh.NewOption("Not sure", ""))
}

func triageHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
