package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/triage/internal/cli/formatter"
	"github.com/alexanderramin/triage/internal/contract"
	"github.com/alexanderramin/triage/internal/triage"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var category categoryValue

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a triage conversation and print the first question",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := app.Triage.Start(cmd.Context(), contract.NewStartRequest(category.String()))
			if err != nil {
				return err
			}
			printStep(cmd, step)
			return nil
		},
	}
	addCategoryFlag(cmd, &category)
	return cmd
}

func newNextCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "next ID",
		Short: "Show the question awaiting a reply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := app.Triage.Next(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printStep(cmd, step)
			return nil
		},
	}
}

func newAnswerCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "answer ID REPLY",
		Short: "Answer the pending question with a choice number",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := app.Triage.Answer(cmd.Context(), contract.NewAnswerRequest(args[0], args[1]))
			if err != nil {
				var te *contract.TriageError
				if errors.As(err, &te) && te.Code == contract.ErrInvalidChoice && te.Step != nil {
					printStep(cmd, te.Step)
				}
				return err
			}
			printStep(cmd, step)
			return nil
		},
	}
}

func newResultCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "result ID",
		Short: "Print the assessment for the answers given so far",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Triage.Result(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if plainOutput(cmd) {
				fmt.Fprint(out, triage.FormatTriage(*res))
				return nil
			}
			fmt.Fprint(out, formatter.FormatResult(*res))
			return nil
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a conversation with its answer history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := app.Triage.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			history, err := app.Triage.History(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatConversation(conv, app.now()))
			fmt.Fprint(out, formatter.FormatHistory(history))
			return nil
		},
	}
}

func newHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history ID",
		Short: "List the answers recorded for a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := app.Triage.History(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if plainOutput(cmd) {
				for i, h := range history {
					fmt.Fprintf(out, "%d. %s: %s\n", i+1, h.Answer.QuestionKey, h.Answer.Choice)
				}
				return nil
			}
			fmt.Fprint(out, formatter.FormatHistory(history))
			return nil
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	var (
		status statusValue
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List conversations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}
			convs, err := app.Triage.List(cmd.Context(), status.status, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if plainOutput(cmd) {
				for _, c := range convs {
					fmt.Fprintf(out, "%s\t%s\t%s\t%d\n", c.ID, c.Status, c.Category, c.State.AnsweredCount())
				}
				return nil
			}
			fmt.Fprint(out, formatter.FormatConversationList(convs, app.now()))
			return nil
		},
	}
	cmd.Flags().Var(&status, "status", "Filter by status (active|completed)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many conversations, newest first (0 for all)")
	return cmd
}

func newResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset ID",
		Short: "Discard all answers and restart from the first question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := app.Triage.Reset(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printStep(cmd, step)
			return nil
		},
	}
}

func newDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a conversation and its answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !yes && !confirm(cmd.InOrStdin(), out, fmt.Sprintf("Delete conversation %s? [y/N]: ", args[0]), false) {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
			if err := app.Triage.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(out, "Deleted conversation %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newPruneCmd(app *App) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete active conversations idle for longer than a duration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan <= 0 {
				return fmt.Errorf("--older-than must be positive")
			}
			n, err := app.Triage.Expire(cmd.Context(), olderThan)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d conversation(s) idle for more than %s\n", n, olderThan)
			return nil
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", app.ConversationTTL, "Idle duration after which an active conversation is removed")
	return cmd
}

// printStep renders a step as a styled card, or in the plain conversational
// format when --plain is set.
func printStep(cmd *cobra.Command, step *contract.Step) {
	out := cmd.OutOrStdout()
	if plainOutput(cmd) {
		writePlainStep(out, step)
		return
	}
	fmt.Fprint(out, formatter.FormatStep(step))
}

func writePlainStep(out io.Writer, step *contract.Step) {
	fmt.Fprintf(out, "conversation %s\n", step.ConversationID)
	if step.Completed() {
		if step.Result != nil {
			fmt.Fprint(out, triage.FormatTriage(*step.Result))
		}
		return
	}
	fmt.Fprintln(out, triage.FormatQuestion(step.Question))
}
