// Package selector implements the planet selector: it loads the catalog
// once, fills the selection control in collation order, and keeps the
// rendered skybox in step with the current selection.
//
// A Controller is not safe for concurrent use. Callers serialize access,
// typically by invoking it only from a UI event loop.
package selector

import (
	"context"
	"fmt"

	"github.com/sixworlds/exosky/internal/domain"
)

// Options configures a Controller.
type Options struct {
	// AssetBase is the URL prefix of per-planet assets.
	AssetBase string
	// Target names the surface skyboxes are rendered onto.
	Target string
}

// Controller owns the catalog and the current selection.
type Controller struct {
	source    CatalogSource
	renderer  Renderer
	browser   Browser
	presenter Presenter
	opts      Options

	state   State
	started bool
	catalog domain.Catalog
	names   []string
	current string
}

// New creates a Controller in the Loading state and shows the loading
// indicator.
func New(source CatalogSource, renderer Renderer, browser Browser, presenter Presenter, opts Options) *Controller {
	if opts.AssetBase == "" {
		opts.AssetBase = domain.DefaultAssetBase
	}
	if opts.Target == "" {
		opts.Target = domain.SkyBoxTarget
	}
	c := &Controller{
		source:    source,
		renderer:  renderer,
		browser:   browser,
		presenter: presenter,
		opts:      opts,
		state:     StateLoading,
	}
	presenter.SetLoadingVisible(true)
	presenter.SetDragHintVisible(false)
	return c
}

// State returns the current load state.
func (c *Controller) State() State { return c.state }

// Current returns the selected planet, or "" before the first selection.
func (c *Controller) Current() string { return c.current }

// Names returns the planet names in the order they appear in the selection
// control.
func (c *Controller) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Catalog returns the loaded catalog, or nil before a successful load.
func (c *Controller) Catalog() domain.Catalog { return c.catalog }

// Initialize fetches the catalog and completes the load. It may run once.
func (c *Controller) Initialize(ctx context.Context) error {
	if c.started || c.state != StateLoading {
		return ErrAlreadyInitialized
	}
	c.started = true
	cat, err := c.FetchCatalog(ctx)
	return c.CompleteLoad(cat, err)
}

// FetchCatalog performs the blocking part of Initialize. It reads no
// mutable controller state, so it may run off the event loop; its result
// must be handed to CompleteLoad on the loop.
func (c *Controller) FetchCatalog(ctx context.Context) (domain.Catalog, error) {
	return c.source.Fetch(ctx)
}

// CompleteLoad applies a fetch result. On failure the controller moves to
// LoadFailed, reports the error and keeps the loading indicator up. On
// success it fills the selection control, selects and renders the first
// planet, then swaps the loading indicator for the drag hint.
func (c *Controller) CompleteLoad(cat domain.Catalog, fetchErr error) error {
	if c.state != StateLoading {
		return ErrAlreadyInitialized
	}
	c.started = true

	if fetchErr != nil {
		c.state = StateLoadFailed
		err := fmt.Errorf("loading planet catalog: %w", fetchErr)
		c.presenter.ShowError(err)
		return err
	}

	c.catalog = cat
	c.names = cat.SortedNames()
	for _, name := range c.names {
		c.presenter.AppendOption(name, name)
	}

	var renderErr error
	if len(c.names) > 0 {
		c.current = c.names[0]
		c.presenter.SetSelected(c.current)
		renderErr = c.render(c.current)
	}

	c.state = StateReady
	c.presenter.SetLoadingVisible(false)
	c.presenter.SetDragHintVisible(true)
	return renderErr
}

// OnSelectionChanged makes name the current selection and re-renders.
func (c *Controller) OnSelectionChanged(name string) error {
	if c.state != StateReady {
		return ErrNotReady
	}
	if !c.catalog.Has(name) {
		return fmt.Errorf("%w: %q", ErrUnknownPlanet, name)
	}
	c.current = name
	c.presenter.SetSelected(name)
	return c.render(name)
}

// SkyMapURL returns the sky-map URL for the current selection.
func (c *Controller) SkyMapURL(h domain.Hemisphere) (string, error) {
	if c.current == "" {
		return "", ErrNoSelection
	}
	return domain.SkyMapURL(c.opts.AssetBase, c.current, h), nil
}

// OpenSkyMap opens the current planet's sky map for h in the browser and
// returns the URL it opened.
func (c *Controller) OpenSkyMap(h domain.Hemisphere) (string, error) {
	url, err := c.SkyMapURL(h)
	if err != nil {
		return "", err
	}
	if err := c.browser.Open(url); err != nil {
		return url, fmt.Errorf("opening %s: %w", url, err)
	}
	return url, nil
}

func (c *Controller) render(name string) error {
	if err := c.renderer.SwitchSkyBox(name, c.opts.Target); err != nil {
		return fmt.Errorf("rendering skybox for %s: %w", name, err)
	}
	return nil
}
