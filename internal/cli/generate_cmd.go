package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sixworlds/exosky/internal/cli/formatter"
	"github.com/sixworlds/exosky/internal/service"
	"github.com/sixworlds/exosky/internal/skygen"
)

type generateFunc func(ctx context.Context, outDir string, opts skygen.Options) (*service.GenerateResult, error)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		outDir string
		opts   skygen.Options
	)

	run := func(kind string, gen func(service.GenerateService) generateFunc) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			if opts.Width < 0 || opts.Size < 0 {
				return fmt.Errorf("--width and --size must not be negative")
			}
			w, err := app.ws()
			if err != nil {
				return err
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Rendering "+kind+"…")
			}
			res, err := gen(w.Generate)(cmd.Context(), outDir, opts)
			stop()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGenerated(kind, res.Planets, res.Files, outDir))
			return nil
		}
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render sky images for every imported planet",
	}
	cmd.PersistentFlags().StringVar(&outDir, "out", "assets", "Directory to write per-planet assets into")
	cmd.PersistentFlags().IntVar(&opts.Width, "width", skygen.DefaultWidth, "Rendered image width in pixels")
	cmd.PersistentFlags().IntVar(&opts.Size, "size", 0, "Downscale images to this size (0 keeps --width)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "skymaps",
			Short: "Render north and south polar sky maps",
			Args:  cobra.NoArgs,
			RunE: run("sky maps", func(g service.GenerateService) generateFunc {
				return g.SkyMaps
			}),
		},
		&cobra.Command{
			Use:   "skyboxes",
			Short: "Render the six skybox faces",
			Args:  cobra.NoArgs,
			RunE: run("skybox faces", func(g service.GenerateService) generateFunc {
				return g.SkyBoxes
			}),
		},
	)
	return cmd
}
