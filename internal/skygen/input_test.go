package skygen

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/sixworlds/exosky/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const planetsCSV = `# This file was produced by the NASA Exoplanet Archive
# COLUMN pl_name: Planet Name
pl_name,hostname,sy_dist,ra,dec
|Kepler-42 b|,Kepler-42,40.2,0,0
Lonely b,Lonely,,10,10
Polaris b,Polaris,10,90,90
Kepler-42 b,Kepler-42,40.2,180,0
`

func TestReadPlanetsCSV(t *testing.T) {
	planets, err := ReadPlanetsCSV(strings.NewReader(planetsCSV))
	require.NoError(t, err)

	approx := cmpopts.EquateApprox(0, 1e-9)
	want := []domain.Planet{
		{Name: "Kepler-42 b", RA: 180, Dec: 0, Dist: 40.2, XEarth: -40.2, YEarth: 0, ZEarth: 0},
		{Name: "Polaris b", RA: 90, Dec: 90, Dist: 10, XEarth: 0, YEarth: -10, ZEarth: 10},
	}
	if diff := cmp.Diff(want, planets, approx); diff != "" {
		t.Errorf("planets mismatch (-want +got):\n%s", diff)
	}
}

func TestReadPlanetsCSV_MissingColumn(t *testing.T) {
	_, err := ReadPlanetsCSV(strings.NewReader("pl_name,ra,dec\nX,1,2\n"))
	assert.ErrorContains(t, err, "sy_dist")
}

func TestReadPlanetsCSV_BadNumber(t *testing.T) {
	_, err := ReadPlanetsCSV(strings.NewReader("pl_name,sy_dist,ra,dec\nX,far,1,2\n"))
	assert.ErrorContains(t, err, "line 2")
}

func TestReadPlanetsCSV_Empty(t *testing.T) {
	_, err := ReadPlanetsCSV(strings.NewReader("# only comments\n"))
	assert.Error(t, err)
}

func TestSwapQuotes_RoundTrip(t *testing.T) {
	in := `|a,b| "c"`
	assert.Equal(t, `"a,b" |c|`, swapQuotes(in))
	assert.Equal(t, in, swapQuotes(swapQuotes(in)))
}

func TestReadStarsJSON(t *testing.T) {
	in := `[
		{"ra": 0, "dec": 0, "dist": 2, "mag": 1.5},
		{"ra": 10, "dec": 10, "dist": 0, "mag": 3},
		{"ra": 0, "dec": 0, "dist": 5, "mag": 4, "x_earth": 1, "y_earth": 2, "z_earth": 3}
	]`
	stars, err := ReadStarsJSON(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, stars, 2)

	assert.InDelta(t, 2, stars[0].XEarth, 1e-9)
	assert.InDelta(t, 0, stars[0].YEarth, 1e-9)
	assert.Equal(t, 1.5, stars[0].Mag)

	assert.Equal(t, 1.0, stars[1].XEarth, "explicit positions are kept")
	assert.Equal(t, 3.0, stars[1].ZEarth)
}

func TestReadStarsJSON_NotArray(t *testing.T) {
	_, err := ReadStarsJSON(strings.NewReader(`{"ra": 1}`))
	assert.Error(t, err)
}

func TestPlaceStar_UnitSphere(t *testing.T) {
	s := domain.Star{RA: 37, Dec: -12, Dist: 1}
	PlaceStar(&s)
	norm := math.Sqrt(s.XEarth*s.XEarth + s.YEarth*s.YEarth + s.ZEarth*s.ZEarth)
	assert.InDelta(t, 1, norm, 1e-12)
}
