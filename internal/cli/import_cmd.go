package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sixworlds/exosky/internal/cli/formatter"
)

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import planet and star data into the workspace",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "planets <file.csv>",
			Short: "Import planets from an exoplanet archive CSV export",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				w, err := app.ws()
				if err != nil {
					return err
				}
				res, err := w.Imports.ImportPlanets(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res.Record, res.Skipped))
				return nil
			},
		},
		&cobra.Command{
			Use:   "stars <file.json>",
			Short: "Replace the workspace stars with a JSON star list",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				w, err := app.ws()
				if err != nil {
					return err
				}
				res, err := w.Imports.ImportStars(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res.Record, res.Skipped))
				return nil
			},
		},
		newImportHistoryCmd(app),
	)
	return cmd
}

func newImportHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent imports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.ws()
			if err != nil {
				return err
			}
			recs, err := w.Imports.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportHistory(recs, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of imports to show")
	return cmd
}
