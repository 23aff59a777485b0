package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sixworlds/exosky/internal/browser"
	"github.com/sixworlds/exosky/internal/cli/formatter"
	"github.com/sixworlds/exosky/internal/domain"
	"github.com/sixworlds/exosky/internal/render"
	"github.com/sixworlds/exosky/internal/selector"
)

// errPlanetRequired is returned when no planet is named and no form can be
// shown to pick one.
var errPlanetRequired = errors.New("planet name required when not running interactively")

func newSkyMapCmd(app *App) *cobra.Command {
	var (
		hemisphere string
		printOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "skymap [planet]",
		Short: "Open a planet's north or south sky map in the browser",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := domain.ParseHemisphere(hemisphere)
			if err != nil {
				return err
			}

			rec := &browser.Recorder{}
			var b selector.Browser = rec
			if !printOnly {
				if app.Browser == nil {
					return errors.New("no browser configured; use --print")
				}
				b = app.Browser
			}

			headless := &headlessPresenter{logger: app.logger()}
			sky := render.NewSkyBox(app.Config.AssetBase)
			sky.Attach(domain.SkyBoxTarget, headless)
			ctrl := selector.New(app.source(), sky, b, headless, selector.Options{
				AssetBase: app.Config.AssetBase,
				Target:    domain.SkyBoxTarget,
			})
			if err := ctrl.Initialize(cmd.Context()); err != nil {
				return err
			}

			planet := ""
			if len(args) == 1 {
				planet = args[0]
			} else {
				if !app.interactive() {
					return errPlanetRequired
				}
				if err := skyMapForm(ctrl.Names(), &planet, &h).Run(); err != nil {
					return err
				}
			}

			if err := ctrl.OnSelectionChanged(planet); err != nil {
				return err
			}
			url, err := ctrl.OpenSkyMap(h)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSkyMap(planet, h, url))
			return nil
		},
	}

	cmd.Flags().StringVar(&hemisphere, "hemisphere", "north", "Hemisphere to show: north or south")
	cmd.Flags().BoolVar(&printOnly, "print", false, "Print the sky map URL instead of opening it")
	return cmd
}

// skyMapForm asks for a planet and a hemisphere.
func skyMapForm(names []string, planet *string, h *domain.Hemisphere) *huh.Form {
	options := make([]huh.Option[string], 0, len(names))
	for _, n := range names {
		options = append(options, huh.NewOption(n, n))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Planet").
				Options(options...).
				Height(12).
				Value(planet),
			huh.NewSelect[domain.Hemisphere]().
				Title("Hemisphere").
				Options(
					huh.NewOption("North", domain.North),
					huh.NewOption("South", domain.South),
				).
				Value(h),
		),
	).WithTheme(exoskyHuhTheme()).WithShowHelp(false)
}

// headlessPresenter drives a Controller without a screen.
type headlessPresenter struct {
	logger *zap.Logger
}

func (p *headlessPresenter) AppendOption(string, string) {}
func (p *headlessPresenter) SetSelected(value string) {
	p.logger.Debug("planet selected", zap.String("planet", value))
}
func (p *headlessPresenter) SetLoadingVisible(bool)  {}
func (p *headlessPresenter) SetDragHintVisible(bool) {}
func (p *headlessPresenter) ShowError(err error) {
	p.logger.Warn("selector error", zap.Error(err))
}
func (p *headlessPresenter) Show(scene render.Scene) {
	p.logger.Debug("skybox", zap.String("planet", scene.Planet), zap.Int("textures", len(scene.Textures)))
}
