package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sixworlds/exosky/internal/tui"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "browse",
		Short:       "Browse planets and their skyboxes in the terminal",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationTUI: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, app)
		},
	}
}

func runBrowse(cmd *cobra.Command, app *App) error {
	m := tui.New(cmd.Context(), tui.Deps{
		Source:    app.source(),
		Browser:   app.Browser,
		AssetBase: app.Config.AssetBase,
		Logger:    app.logger(),
	})

	if app.RunTUI != nil {
		return app.RunTUI(m)
	}
	_, err := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	).Run()
	return err
}
