package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultAssetBase is the root that serves per-planet image assets.
const DefaultAssetBase = "https://sixworlds.github.io/assets"

// DefaultCatalogURL is the catalog document the selector loads at startup.
const DefaultCatalogURL = DefaultAssetBase + "/planets_demo.json"

// SkyBoxTarget identifies the surface the skybox is rendered onto.
const SkyBoxTarget = "skybox"

type Hemisphere string

const (
	North Hemisphere = "north"
	South Hemisphere = "south"
)

// ParseHemisphere accepts "north"/"south" and their one-letter forms.
func ParseHemisphere(s string) (Hemisphere, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "south", "s":
		return South, nil
	default:
		return "", fmt.Errorf("invalid hemisphere %q (want north or south)", s)
	}
}

// Suffix returns the file-name suffix used by sky-map assets.
func (h Hemisphere) Suffix() string {
	if h == South {
		return "s"
	}
	return "n"
}

// Face is one side of the skybox cube.
type Face int

const (
	FaceNone Face = iota
	FaceFront
	FaceRight
	FaceBack
	FaceLeft
	FaceUp
	FaceDown
)

// Faces lists the cube faces in file order.
var Faces = []Face{FaceFront, FaceRight, FaceBack, FaceLeft, FaceUp, FaceDown}

// Suffix returns the two-letter file suffix for the face.
func (f Face) Suffix() string {
	switch f {
	case FaceFront:
		return "ft"
	case FaceRight:
		return "rt"
	case FaceBack:
		return "bk"
	case FaceLeft:
		return "lf"
	case FaceUp:
		return "up"
	case FaceDown:
		return "dn"
	default:
		return ""
	}
}

func (f Face) String() string {
	switch f {
	case FaceFront:
		return "front"
	case FaceRight:
		return "right"
	case FaceBack:
		return "back"
	case FaceLeft:
		return "left"
	case FaceUp:
		return "up"
	case FaceDown:
		return "down"
	default:
		return "none"
	}
}

// SkyMapURL builds the URL of a planet's sky-map image for one hemisphere.
// The planet name is escaped as a single path segment.
func SkyMapURL(base, planet string, h Hemisphere) string {
	return fmt.Sprintf("%s/%s/skymap_%s.png", strings.TrimRight(base, "/"), url.PathEscape(planet), h.Suffix())
}

// SkyBoxFaceURL builds the URL of one skybox face texture.
func SkyBoxFaceURL(base, planet string, f Face) string {
	return fmt.Sprintf("%s/%s/skybox_%s.png", strings.TrimRight(base, "/"), url.PathEscape(planet), f.Suffix())
}
