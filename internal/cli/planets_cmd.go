package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sixworlds/exosky/internal/cli/formatter"
)

func newPlanetsCmd(app *App) *cobra.Command {
	var stored bool

	cmd := &cobra.Command{
		Use:   "planets",
		Short: "List the planets in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if stored {
				w, err := app.ws()
				if err != nil {
					return err
				}
				planets, err := w.Planets.List(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatPlanets(planets))
				return nil
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Fetching catalog…")
			}
			cat, err := app.source().Fetch(cmd.Context())
			stop()
			if err != nil {
				return fmt.Errorf("loading planet catalog: %w", err)
			}
			fmt.Fprint(out, formatter.FormatPlanetNames(cat.SortedNames()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&stored, "stored", false, "List planets imported into the workspace instead")
	return cmd
}
