package formatter

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sixworlds/exosky/internal/domain"
)

// FormatPlanetNames renders catalog names as a numbered table. Names are
// printed in the order given.
func FormatPlanetNames(names []string) string {
	if len(names) == 0 {
		return Dim("No planets in catalog.") + "\n"
	}
	rows := make([][]string, 0, len(names))
	for i, name := range names {
		rows = append(rows, []string{Dim(strconv.Itoa(i + 1)), name})
	}
	return RenderTable([]string{"#", "PLANET"}, rows) +
		Dim(fmt.Sprintf("%d planets", len(names))) + "\n"
}

// FormatPlanets renders stored planets with their positions.
func FormatPlanets(planets []domain.Planet) string {
	rows := make([][]string, 0, len(planets))
	for _, p := range planets {
		rows = append(rows, []string{
			Bold(p.Name), FormatDegrees(p.RA), FormatDegrees(p.Dec), FormatParsecs(p.Dist),
		})
	}
	return RenderTable([]string{"PLANET", "RA", "DEC", "DIST"}, rows)
}

// FormatImportResult summarizes a finished import.
func FormatImportResult(rec domain.ImportRecord, skipped int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d %s from %s\n",
		StyleGreen.Render("✔ Imported"), rec.RowCount, rec.Kind, Bold(filepath.Base(rec.Source)))
	if skipped > 0 {
		b.WriteString(Dim(fmt.Sprintf("  %d rows skipped", skipped)) + "\n")
	}
	return b.String()
}

// FormatImportHistory renders recent imports, newest first.
func FormatImportHistory(recs []domain.ImportRecord, now time.Time) string {
	if len(recs) == 0 {
		return Dim("No imports yet.") + "\n"
	}
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{
			string(r.Kind), strconv.Itoa(r.RowCount), r.Source, Dim(HumanTimestamp(r.CreatedAt, now)),
		})
	}
	return Header("Imports") + "\n" + RenderTable([]string{"KIND", "ROWS", "SOURCE", "WHEN"}, rows)
}

// FormatGenerated summarizes files written by a generate command, with a
// boxed per-planet file count.
func FormatGenerated(kind string, planets int, files []string, outDir string) string {
	summary := fmt.Sprintf("%s %d %s for %d planets in %s\n",
		StyleGreen.Render("✔ Wrote"), len(files), kind, planets, Bold(outDir))
	if len(files) == 0 {
		return summary
	}

	counts := map[string]int{}
	var dirs []string
	for _, f := range files {
		dir := filepath.Base(filepath.Dir(f))
		if counts[dir] == 0 {
			dirs = append(dirs, dir)
		}
		counts[dir]++
	}
	sort.Strings(dirs)
	rows := make([][]string, 0, len(dirs))
	for _, d := range dirs {
		rows = append(rows, []string{d, Dim(strconv.Itoa(counts[d]) + " files")})
	}
	table := strings.TrimRight(RenderTable([]string{"PLANET", "FILES"}, rows), "\n")
	return summary + RenderBox(kind, table) + "\n"
}

// FormatSkyMap describes an opened or printed sky map link.
func FormatSkyMap(planet string, h domain.Hemisphere, url string) string {
	return fmt.Sprintf("%s %s\n%s\n", Bold(planet), HemisphereBadge(h), StyleBlue.Render(url))
}
