package selector

import (
	"context"

	"github.com/sixworlds/exosky/internal/domain"
)

// CatalogSource retrieves the planet catalog.
type CatalogSource interface {
	Fetch(ctx context.Context) (domain.Catalog, error)
}

// Renderer draws a planet's skybox onto the surface named target.
type Renderer interface {
	SwitchSkyBox(planet, target string) error
}

// Browser opens a URL in a new browsing context.
type Browser interface {
	Open(url string) error
}

// Presenter is the presentation layer the controller drives: a selection
// control, a loading indicator, a drag-interaction hint and an error slot.
type Presenter interface {
	AppendOption(value, label string)
	SetSelected(value string)
	SetLoadingVisible(visible bool)
	SetDragHintVisible(visible bool)
	ShowError(err error)
}
