package selector

import "errors"

var (
	// ErrAlreadyInitialized is returned when a load is attempted twice.
	ErrAlreadyInitialized = errors.New("selector already initialized")

	// ErrNotReady is returned for selection events before the catalog loaded.
	ErrNotReady = errors.New("catalog not loaded")

	// ErrUnknownPlanet is returned when a selection names no catalog entry.
	ErrUnknownPlanet = errors.New("unknown planet")

	// ErrNoSelection is returned when a sky map is requested before any
	// planet is selected.
	ErrNoSelection = errors.New("no planet selected")
)
