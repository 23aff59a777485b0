// Package tui is the interactive planet browser. Its Model is both the
// presentation layer and the render surface of a selector.Controller.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sixworlds/exosky/internal/cli/formatter"
	"github.com/sixworlds/exosky/internal/domain"
	"github.com/sixworlds/exosky/internal/render"
	"github.com/sixworlds/exosky/internal/selector"
)

// catalogLoadedMsg carries the result of the off-loop catalog fetch.
type catalogLoadedMsg struct {
	catalog domain.Catalog
	err     error
}

type option struct {
	value string
	label string
}

// sideFaces are the skybox faces reachable by panning.
var sideFaces = []domain.Face{domain.FaceFront, domain.FaceRight, domain.FaceBack, domain.FaceLeft}

// Deps are the collaborators the browser drives.
type Deps struct {
	Source    selector.CatalogSource
	Browser   selector.Browser
	AssetBase string
	Logger    *zap.Logger
}

// Model is the bubbletea model for `exosky browse`.
type Model struct {
	ctx    context.Context
	ctrl   *selector.Controller
	logger *zap.Logger
	keys   keyMap

	spinner  spinner.Model
	options  []option
	cursor   int
	selected string
	loading  bool
	dragHint bool
	err      error

	scene  render.Scene
	face   int
	pitch  int
	notice string
	failed bool

	width, height int
	quitting      bool
}

// New builds the browser and its controller. ctx bounds the catalog fetch.
func New(ctx context.Context, deps Deps) *Model {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Model{
		ctx:    ctx,
		logger: logger.Named("tui"),
		keys:   defaultKeyMap(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(formatter.StylePurple),
		),
	}

	sky := render.NewSkyBox(deps.AssetBase)
	sky.Attach(domain.SkyBoxTarget, m)
	m.ctrl = selector.New(deps.Source, sky, deps.Browser, m, selector.Options{
		AssetBase: deps.AssetBase,
		Target:    domain.SkyBoxTarget,
	})
	return m
}

// Controller exposes the selector the model drives.
func (m *Model) Controller() *selector.Controller { return m.ctrl }

// ── selector.Presenter ───────────────────────────────────────────────────────

func (m *Model) AppendOption(value, label string) {
	m.options = append(m.options, option{value: value, label: label})
}

func (m *Model) SetSelected(value string) {
	m.selected = value
	for i, o := range m.options {
		if o.value == value {
			m.cursor = i
			return
		}
	}
}

func (m *Model) SetLoadingVisible(visible bool) { m.loading = visible }

func (m *Model) SetDragHintVisible(visible bool) { m.dragHint = visible }

func (m *Model) ShowError(err error) { m.err = err }

// ── render.Surface ───────────────────────────────────────────────────────────

func (m *Model) Show(scene render.Scene) {
	m.scene = scene
	m.face, m.pitch = 0, 0
}

// ── tea.Model ────────────────────────────────────────────────────────────────

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCatalog())
}

func (m *Model) fetchCatalog() tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		cat, err := ctrl.FetchCatalog(ctx)
		return catalogLoadedMsg{catalog: cat, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case catalogLoadedMsg:
		if err := m.ctrl.CompleteLoad(msg.catalog, msg.err); err != nil {
			m.logger.Warn("catalog load", zap.Error(err))
			if m.ctrl.State() == selector.StateReady {
				m.setFailure(err)
			}
			return m, nil
		}
		m.logger.Debug("catalog loaded", zap.Int("planets", len(m.options)))
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.ctrl.State() != selector.StateReady {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.options) == 0 {
			return m, nil
		}
		if err := m.ctrl.OnSelectionChanged(m.options[m.cursor].value); err != nil {
			m.setFailure(err)
		} else {
			m.notice = ""
		}
	case key.Matches(msg, m.keys.PanLeft):
		if m.dragHint {
			m.face = (m.face + len(sideFaces) - 1) % len(sideFaces)
			m.pitch = 0
		}
	case key.Matches(msg, m.keys.PanRight):
		if m.dragHint {
			m.face = (m.face + 1) % len(sideFaces)
			m.pitch = 0
		}
	case key.Matches(msg, m.keys.LookUp):
		if m.dragHint && m.pitch < 1 {
			m.pitch++
		}
	case key.Matches(msg, m.keys.LookDown):
		if m.dragHint && m.pitch > -1 {
			m.pitch--
		}
	case key.Matches(msg, m.keys.NorthMap):
		m.openSkyMap(domain.North)
	case key.Matches(msg, m.keys.SouthMap):
		m.openSkyMap(domain.South)
	}
	return m, nil
}

func (m *Model) openSkyMap(h domain.Hemisphere) {
	url, err := m.ctrl.OpenSkyMap(h)
	if err != nil {
		if errors.Is(err, selector.ErrNoSelection) {
			m.setNotice("No planet selected.")
			return
		}
		m.logger.Warn("open sky map", zap.String("url", url), zap.Error(err))
		m.setFailure(err)
		return
	}
	m.logger.Info("opened sky map", zap.String("url", url))
	m.setNotice("Opened " + url)
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.failed = false
}

func (m *Model) setFailure(err error) {
	m.notice = err.Error()
	m.failed = true
}

// CurrentFace returns the skybox face currently in view. Looking up or down
// shows the top or bottom face; panning returns to the horizon.
func (m *Model) CurrentFace() domain.Face {
	switch {
	case m.pitch > 0:
		return domain.FaceUp
	case m.pitch < 0:
		return domain.FaceDown
	}
	return sideFaces[m.face]
}
