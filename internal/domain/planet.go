package domain

// Planet is an exoplanet positioned relative to Earth. Distances are in
// parsecs, angles in degrees.
type Planet struct {
	Name   string  `json:"-"`
	RA     float64 `json:"ra"`
	Dec    float64 `json:"dec"`
	Dist   float64 `json:"dist"`
	XEarth float64 `json:"x_earth"`
	YEarth float64 `json:"y_earth"`
	ZEarth float64 `json:"z_earth"`
}

// Star is a catalog star positioned relative to Earth.
type Star struct {
	ID     string  `json:"id,omitempty"`
	RA     float64 `json:"ra"`
	Dec    float64 `json:"dec"`
	Dist   float64 `json:"dist"`
	Mag    float64 `json:"mag"`
	XEarth float64 `json:"x_earth"`
	YEarth float64 `json:"y_earth"`
	ZEarth float64 `json:"z_earth"`
}

// SkyPoint is a star as seen from a planet. X and Y are the polar sky-map
// coordinates in degrees from the pole.
type SkyPoint struct {
	RA         float64    `json:"ra"`
	Dec        float64    `json:"dec"`
	L          float64    `json:"L"`
	Hemisphere Hemisphere `json:"hemisphere"`
	Mag        float64    `json:"mag"`
	X          float64    `json:"x"`
	Y          float64    `json:"y"`
	Face       Face       `json:"-"`
}
