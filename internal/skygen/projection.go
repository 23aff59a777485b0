// Package skygen computes how the sky looks from an exoplanet and renders
// it as polar sky maps and cube-map skybox faces.
package skygen

import (
	"math"

	"github.com/sixworlds/exosky/internal/domain"
)

func rad(deg float64) float64 { return deg * math.Pi / 180 }
func deg(rad float64) float64 { return rad * 180 / math.Pi }

// PlacePlanet fills the planet's Earth-relative Cartesian position.
func PlacePlanet(p *domain.Planet) {
	p.XEarth = p.Dist * math.Cos(rad(p.RA))
	p.YEarth = -p.Dist * math.Sin(rad(p.RA))
	p.ZEarth = p.Dist * math.Sin(rad(p.Dec))
}

// PlaceStar fills the star's Earth-relative Cartesian position.
func PlaceStar(s *domain.Star) {
	s.XEarth = s.Dist * math.Cos(rad(s.RA)) * math.Cos(rad(s.Dec))
	s.YEarth = s.Dist * math.Sin(rad(s.RA)) * math.Cos(rad(s.Dec))
	s.ZEarth = s.Dist * math.Sin(rad(s.Dec))
}

// Project returns star as seen from planet. ok is false when the two
// coincide.
func Project(p domain.Planet, s domain.Star) (pt domain.SkyPoint, ok bool) {
	dx := s.XEarth - p.XEarth
	dy := s.YEarth - p.YEarth
	dz := s.ZEarth - p.ZEarth
	l := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if l == 0 {
		return pt, false
	}

	ra := deg(math.Acos(clampUnit(dx / l)))
	if dy < 0 {
		ra = 360 - ra
	}
	dec := deg(math.Asin(clampUnit(dz / l)))

	pt = domain.SkyPoint{RA: ra, Dec: dec, L: l, Mag: ApparentMag(s.Mag, l)}
	if dec < 0 {
		pt.Hemisphere = domain.South
		r := 90 + dec
		pt.X = r * math.Cos(-rad(ra))
		pt.Y = r * math.Sin(-rad(ra))
	} else {
		pt.Hemisphere = domain.North
		r := 90 - dec
		pt.X = r * math.Cos(rad(ra))
		pt.Y = r * math.Sin(rad(ra))
	}
	pt.Face = FaceOf(ra, dec)
	return pt, true
}

// ProjectAll projects every star that does not coincide with the planet.
func ProjectAll(p domain.Planet, stars []domain.Star) []domain.SkyPoint {
	points := make([]domain.SkyPoint, 0, len(stars))
	for _, s := range stars {
		if pt, ok := Project(p, s); ok {
			points = append(points, pt)
		}
	}
	return points
}

// ApparentMag adjusts a magnitude for distance l. At l == 1 the adjustment
// is undefined and mag is returned unchanged.
func ApparentMag(mag, l float64) float64 {
	lg := math.Log10(l)
	if lg == 0 {
		return mag
	}
	return mag - 5*(1/lg)
}

// FaceOf assigns a sky direction to a skybox face. The side faces split
// right ascension into 90° sectors centred on 0, 90, 180 and 270.
func FaceOf(ra, dec float64) domain.Face {
	switch {
	case dec >= 45:
		return domain.FaceUp
	case dec < -45:
		return domain.FaceDown
	case ra >= 45 && ra < 135:
		return domain.FaceRight
	case ra >= 135 && ra < 225:
		return domain.FaceBack
	case ra >= 225 && ra <= 315:
		return domain.FaceLeft
	default:
		return domain.FaceFront
	}
}

// FaceCoords returns the face-local position of a point in degrees, both
// axes in [0, 90].
func FaceCoords(pt domain.SkyPoint) (x, y float64) {
	switch pt.Face {
	case domain.FaceFront:
		x, y = pt.RA+45, pt.Dec+45
	case domain.FaceRight:
		x, y = pt.RA-45, pt.Dec+45
	case domain.FaceBack:
		x, y = pt.RA-135, pt.Dec+45
	case domain.FaceLeft:
		x, y = pt.RA-225, pt.Dec+45
	case domain.FaceUp:
		r := 90 - pt.Dec
		return 45 + r*math.Cos(rad(pt.RA)), 45 + r*math.Sin(rad(pt.RA))
	case domain.FaceDown:
		r := 90 + pt.Dec
		return 45 + r*math.Cos(-rad(pt.RA)), 45 + r*math.Sin(-rad(pt.RA))
	}
	return math.Mod(x, 360), y
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
