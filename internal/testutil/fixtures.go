package testutil

import (
	"github.com/google/uuid"
	"github.com/sixworlds/exosky/internal/domain"
)

type PlanetOption func(*domain.Planet)

// WithPosition sets the equatorial coordinates of a test planet.
func WithPosition(ra, dec, dist float64) PlanetOption {
	return func(p *domain.Planet) {
		p.RA, p.Dec, p.Dist = ra, dec, dist
	}
}

// WithCartesian places a test planet at Earth-centred coordinates.
func WithCartesian(x, y, z float64) PlanetOption {
	return func(p *domain.Planet) {
		p.XEarth, p.YEarth, p.ZEarth = x, y, z
	}
}

// NewTestPlanet returns a planet ten parsecs out along the x axis.
func NewTestPlanet(name string, opts ...PlanetOption) *domain.Planet {
	p := &domain.Planet{
		Name:   name,
		Dist:   10,
		XEarth: 10,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type StarOption func(*domain.Star)

func WithMag(mag float64) StarOption {
	return func(s *domain.Star) {
		s.Mag = mag
	}
}

// WithStarPosition places a test star at Earth-centred coordinates.
func WithStarPosition(x, y, z float64) StarOption {
	return func(s *domain.Star) {
		s.XEarth, s.YEarth, s.ZEarth = x, y, z
	}
}

func NewTestStar(opts ...StarOption) *domain.Star {
	s := &domain.Star{
		ID:     uuid.New().String(),
		Dist:   1,
		Mag:    5,
		XEarth: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
