// Package cli implements the triage command line: one-shot commands for
// scripting, an interactive chat, and the HTTP server entrypoint.
package cli

import (
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/triage/internal/catalog"
	"github.com/alexanderramin/triage/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Triage  service.TriageService
	Assess  service.AssessmentService
	Catalog *catalog.Catalog
	Logger  *slog.Logger

	HTTPAddr        string
	ConversationTTL time.Duration

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Now is overridable for tests.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewRootCmd creates the top-level "triage" command. Run without a
// subcommand on a terminal it opens the interactive chat.
func NewRootCmd(app *App) *cobra.Command {
	var plain bool

	root := &cobra.Command{
		Use:           "triage",
		Short:         "Symptom triage conversations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runChat(cmd, app, "")
			}
			return cmd.Help()
		},
	}
	root.PersistentFlags().BoolVar(&plain, "plain", false, "Print unstyled text output")

	root.AddCommand(
		newStartCmd(app),
		newNextCmd(app),
		newAnswerCmd(app),
		newResultCmd(app),
		newShowCmd(app),
		newHistoryCmd(app),
		newListCmd(app),
		newResetCmd(app),
		newDeleteCmd(app),
		newPruneCmd(app),
		newScoreCmd(app),
		newCatalogCmd(app),
		newChatCmd(app),
		newServeCmd(app),
	)

	return root
}

func plainOutput(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool("plain")
	return err == nil && v
}
