package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sixworlds/exosky/internal/cli/formatter"
	"github.com/sixworlds/exosky/internal/service"
)

// exportFunc picks the document an export subcommand writes.
type exportFunc func(svc service.GenerateService) func(ctx context.Context, w io.Writer) (int, error)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export workspace data",
	}

	cmd.AddCommand(
		newExportSubCmd(app, "catalog", "Write the planet catalog JSON the browser loads",
			func(svc service.GenerateService) func(context.Context, io.Writer) (int, error) {
				return svc.ExportCatalog
			}),
		newExportSubCmd(app, "maps", "Write each planet's projected stars as JSON",
			func(svc service.GenerateService) func(context.Context, io.Writer) (int, error) {
				return svc.ExportMaps
			}),
	)
	return cmd
}

func newExportSubCmd(app *App, use, short string, export exportFunc) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ws, err := app.ws()
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer func() {
					if cerr := f.Close(); err == nil && cerr != nil {
						err = fmt.Errorf("closing %s: %w", out, cerr)
					}
				}()
				w = f
			}

			n, err := export(ws.Generate)(cmd.Context(), w)
			if err != nil {
				return err
			}
			if w != cmd.OutOrStdout() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s for %d planets to %s\n",
					formatter.StyleGreen.Render("✔ Exported"), use, n, formatter.Bold(out))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "File to write (default stdout)")
	return cmd
}
