package cli

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sixworlds/exosky/internal/catalog"
	"github.com/sixworlds/exosky/internal/config"
	"github.com/sixworlds/exosky/internal/logging"
	"github.com/sixworlds/exosky/internal/selector"
)

// annotationTUI marks commands that draw on the terminal. Their logs go to
// the configured log file.
const annotationTUI = "exosky/tui"

// App holds the configuration and collaborators shared by every command.
type App struct {
	// Config and Logger are resolved by the root command before any
	// subcommand runs. A preset Logger is kept.
	Config config.Config
	Logger *zap.Logger

	NewSource     func(cfg config.Config, logger *zap.Logger) selector.CatalogSource
	OpenWorkspace func(cfg config.Config, logger *zap.Logger) (*Workspace, error)
	Browser       selector.Browser
	RunTUI        func(m tea.Model) error
	IsInteractive func() bool
	Now           func() time.Time

	workspace *Workspace
}

// NewRootCmd creates the top-level "exosky" command and registers all
// subcommands against app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "exosky",
		Short: "Browse the night sky of exoplanets",
		Long: "exosky browses the sky seen from known exoplanets and builds the\n" +
			"sky maps and skyboxes that the browser displays.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.configure(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runBrowse(cmd, app)
			}
			return cmd.Help()
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newBrowseCmd(app),
		newPlanetsCmd(app),
		newSkyMapCmd(app),
		newImportCmd(app),
		newGenerateCmd(app),
		newExportCmd(app),
		newServeCmd(app),
	)
	return root
}

// configure resolves configuration and builds the logger for cmd.
func (a *App) configure(cmd *cobra.Command) error {
	flags := cmd.Flags()
	cfg, err := config.Load(config.ConfigPath(flags))
	if err != nil {
		return err
	}
	if err := config.ApplyFlags(flags, &cfg); err != nil {
		return err
	}
	a.Config = cfg

	if a.Logger != nil {
		return nil
	}
	var outputs []string
	if cmd.Annotations[annotationTUI] == "true" || (!cmd.HasParent() && a.interactive()) {
		outputs = append(outputs, cfg.LogFile)
	}
	logger, err := logging.New(cfg.LogLevel, outputs...)
	if err != nil {
		return err
	}
	a.Logger = logger
	return nil
}

// Close releases the workspace and flushes the logger.
func (a *App) Close() error {
	var err error
	if a.workspace != nil {
		err = a.workspace.Close()
		a.workspace = nil
	}
	logging.Sync(a.Logger)
	return err
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) source() selector.CatalogSource {
	if a.NewSource != nil {
		return a.NewSource(a.Config, a.logger())
	}
	return catalog.NewHTTPSource(catalog.Config{
		URL:     a.Config.CatalogURL,
		Timeout: a.Config.FetchTimeout(),
	}, catalog.NewLogObserver(a.logger()))
}

// errNoWorkspace is returned when a command needs the workspace but the App
// has no way to open one.
var errNoWorkspace = errors.New("workspace unavailable")

// ws opens the workspace on first use.
func (a *App) ws() (*Workspace, error) {
	if a.workspace != nil {
		return a.workspace, nil
	}
	if a.OpenWorkspace == nil {
		return nil, errNoWorkspace
	}
	w, err := a.OpenWorkspace(a.Config, a.logger())
	if err != nil {
		return nil, err
	}
	a.workspace = w
	return w, nil
}
