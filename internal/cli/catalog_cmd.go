package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/triage/internal/catalog"
	"github.com/alexanderramin/triage/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect, validate and export the triage catalog",
	}

	cmd.AddCommand(
		newCatalogCheckCmd(app),
		newCatalogViewCmd(app, "conditions", "List conditions and their key symptoms", formatter.FormatConditions),
		newCatalogViewCmd(app, "questions", "List questions with the tokens each choice marks", formatter.FormatQuestions),
		newCatalogViewCmd(app, "categories", "Show the question order per category", formatter.FormatCategories),
		newCatalogExportCmd(app),
	)
	return cmd
}

func newCatalogCheckCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the active catalog or a YAML catalog file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := app.Catalog
			if file != "" {
				loaded, err := catalog.ReadFile(file)
				if err != nil {
					return err
				}
				cat = loaded
			}
			errs := catalog.Validate(cat)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatValidation(errs))
			if len(errs) > 0 {
				return fmt.Errorf("catalog has %d problem(s)", len(errs))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML catalog file to check instead of the active catalog")
	return cmd
}

func newCatalogViewCmd(app *App, use, short string, render func(*catalog.Catalog) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), render(app.Catalog))
			return nil
		},
	}
}

func newCatalogExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active catalog as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := catalog.Marshal(app.Catalog)
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing catalog: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote catalog to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}
