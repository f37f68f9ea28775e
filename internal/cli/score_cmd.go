package cli

import (
	"fmt"

	"github.com/alexanderramin/triage/internal/cli/formatter"
	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/triage"
	"github.com/spf13/cobra"
)

func newScoreCmd(app *App) *cobra.Command {
	var tokens []string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Assess a set of symptom tokens without a conversation",
		Example: `  triage score --token fever --token mosquito_exposure
  triage score --token fever,recent_travel --plain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			present := make([]domain.SymptomToken, len(tokens))
			for i, t := range tokens {
				present[i] = domain.SymptomToken(t)
			}
			res, err := app.Assess.Assess(cmd.Context(), present)
			if err != nil {
				return err
			}
			if plainOutput(cmd) {
				fmt.Fprint(cmd.OutOrStdout(), triage.FormatTriage(*res))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResult(*res))
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&tokens, "token", "t", nil, "Symptom token marked present (repeatable)")
	return cmd
}
