package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/sixworlds/exosky/internal/domain"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "B"},
		[][]string{{Bold("long cell"), "x"}, {"s", "y"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 4)
	assert.Equal(t, "A          B", lines[0])
	assert.Equal(t, "─────────  ─", lines[1])
	assert.Equal(t, "long cell  x", lines[2])
	assert.Equal(t, "s          y", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestFormatPlanetNames(t *testing.T) {
	out := stripANSI(FormatPlanetNames([]string{"Alpha b", "beta c"}))
	assert.Contains(t, out, "PLANET")
	assert.Contains(t, out, "1  Alpha b")
	assert.Contains(t, out, "2  beta c")
	assert.Contains(t, out, "2 planets")

	assert.Contains(t, stripANSI(FormatPlanetNames(nil)), "No planets")
}

func TestFormatImportHistory(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	out := stripANSI(FormatImportHistory([]domain.ImportRecord{
		{Kind: domain.ImportStars, RowCount: 900, Source: "stars.json", CreatedAt: now.Add(-2 * time.Hour)},
		{Kind: domain.ImportPlanets, RowCount: 12, Source: "planets.csv", CreatedAt: now.Add(-48 * time.Hour)},
	}, now))

	assert.Contains(t, out, "IMPORTS")
	assert.Contains(t, out, "2h ago")
	assert.Contains(t, out, "Feb 28, 2026")
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"just now", now.Add(-10 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"future", now.Add(time.Hour), "Today"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanTimestamp(tt.in, now))
		})
	}
}

func TestFormatImportResult(t *testing.T) {
	out := stripANSI(FormatImportResult(domain.ImportRecord{
		Kind: domain.ImportPlanets, RowCount: 3, Source: "/tmp/data/planets.csv",
	}, 1))
	assert.Contains(t, out, "Imported 3 planets from planets.csv")
	assert.Contains(t, out, "1 rows skipped")
}

func TestFormatGenerated_BoxesPerPlanetCounts(t *testing.T) {
	out := stripANSI(FormatGenerated("sky maps", 2, []string{
		"out/Beta c/skymap_n.png",
		"out/Alpha b/skymap_n.png",
		"out/Beta c/skymap_s.png",
		"out/Alpha b/skymap_s.png",
	}, "out"))

	assert.Contains(t, out, "Wrote 4 sky maps for 2 planets in out")
	assert.Contains(t, out, "SKY MAPS")
	assert.Contains(t, out, "╭")
	assert.Less(t, strings.Index(out, "Alpha b"), strings.Index(out, "Beta c"))
	assert.Contains(t, out, "2 files")
}

func TestFormatGenerated_NoFilesHasNoBox(t *testing.T) {
	out := stripANSI(FormatGenerated("skybox faces", 0, nil, "out"))
	assert.Equal(t, "✔ Wrote 0 skybox faces for 0 planets in out\n", out)
}

func TestFormatSkyMap(t *testing.T) {
	out := stripANSI(FormatSkyMap("Kepler-22 b", domain.South, "https://x/Kepler-22 b/skymap_s.png"))
	assert.Contains(t, out, "SOUTH")
	assert.Contains(t, out, "skymap_s.png")
}
