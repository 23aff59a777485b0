package cli

import (
	"github.com/spf13/cobra"

	"github.com/sixworlds/exosky/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	var cfg server.Config

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve generated assets over HTTP",
		Long: "Serve the asset directory under /assets/. Point --catalog-url at\n" +
			"http://<addr>/assets/planets.json and --asset-base at\n" +
			"http://<addr>/assets to browse locally generated skies.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.New(cfg, app.logger()).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&cfg.Dir, "dir", "assets", "Asset directory to serve")
	cmd.Flags().StringVar(&cfg.Addr, "addr", ":8080", "Address to listen on")
	return cmd
}
