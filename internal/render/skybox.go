// Package render resolves the textures that make up a planet's skybox and
// hands them to the surface that displays them.
package render

import (
	"errors"
	"fmt"

	"github.com/sixworlds/exosky/internal/domain"
)

// ErrUnknownTarget is returned when no surface is registered for a target id.
var ErrUnknownTarget = errors.New("unknown render target")

// Texture is one skybox face and the URL of its image.
type Texture struct {
	Face domain.Face
	URL  string
}

// Scene is everything a surface needs to draw a planet's sky.
type Scene struct {
	Planet   string
	Textures []Texture
}

// Surface displays a scene.
type Surface interface {
	Show(scene Scene)
}

// SkyBox builds skybox scenes and routes them to surfaces by target id.
type SkyBox struct {
	assetBase string
	surfaces  map[string]Surface
}

// NewSkyBox creates a SkyBox that reads textures from assetBase.
func NewSkyBox(assetBase string) *SkyBox {
	if assetBase == "" {
		assetBase = domain.DefaultAssetBase
	}
	return &SkyBox{assetBase: assetBase, surfaces: make(map[string]Surface)}
}

// Attach registers s as the surface for target.
func (r *SkyBox) Attach(target string, s Surface) {
	r.surfaces[target] = s
}

// Scene returns the six-face scene for planet.
func (r *SkyBox) Scene(planet string) Scene {
	textures := make([]Texture, 0, len(domain.Faces))
	for _, f := range domain.Faces {
		textures = append(textures, Texture{Face: f, URL: domain.SkyBoxFaceURL(r.assetBase, planet, f)})
	}
	return Scene{Planet: planet, Textures: textures}
}

// SwitchSkyBox shows planet's skybox on the surface registered for target.
func (r *SkyBox) SwitchSkyBox(planet, target string) error {
	s, ok := r.surfaces[target]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}
	s.Show(r.Scene(planet))
	return nil
}
