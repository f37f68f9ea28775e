package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/triage/internal/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve triage conversations over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := app.logger()
			handler := httpapi.NewHandler(app.Triage, app.Assess, logger)
			return httpapi.Serve(ctx, addr, handler.Routes(), logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", app.HTTPAddr, "Listen address")
	return cmd
}
