package skygen

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sixworlds/exosky/internal/domain"
)

// Columns read from the exoplanet archive export.
const (
	colName = "pl_name"
	colDist = "sy_dist"
	colRA   = "ra"
	colDec  = "dec"
)

// ReadPlanetsCSV parses an exoplanet archive CSV export. Lines starting with
// '#' are comments; fields may be quoted with '|'. Rows without a distance
// are skipped. A later row for the same planet replaces an earlier one.
func ReadPlanetsCSV(r io.Reader) ([]domain.Planet, error) {
	var b strings.Builder
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		b.WriteString(swapQuotes(line))
		b.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading planets csv: %w", err)
	}

	cr := csv.NewReader(strings.NewReader(b.String()))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("planets csv: missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("reading planets csv header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(swapQuotes(h))] = i
	}
	for _, col := range []string{colName, colDist, colRA, colDec} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("planets csv: missing column %q", col)
		}
	}

	var planets []domain.Planet
	seen := make(map[string]int)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading planets csv: %w", err)
		}
		line, _ := cr.FieldPos(0)

		field := func(col string) string {
			i := idx[col]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(swapQuotes(rec[i]))
		}

		if field(colDist) == "" {
			continue
		}
		p := domain.Planet{Name: field(colName)}
		if p.Name == "" {
			return nil, fmt.Errorf("planets csv line %d: empty %s", line, colName)
		}
		if p.Dist, err = strconv.ParseFloat(field(colDist), 64); err != nil {
			return nil, fmt.Errorf("planets csv line %d: %s: %w", line, colDist, err)
		}
		if p.RA, err = strconv.ParseFloat(field(colRA), 64); err != nil {
			return nil, fmt.Errorf("planets csv line %d: %s: %w", line, colRA, err)
		}
		if p.Dec, err = strconv.ParseFloat(field(colDec), 64); err != nil {
			return nil, fmt.Errorf("planets csv line %d: %s: %w", line, colDec, err)
		}
		PlacePlanet(&p)

		if i, ok := seen[p.Name]; ok {
			planets[i] = p
			continue
		}
		seen[p.Name] = len(planets)
		planets = append(planets, p)
	}
	return planets, nil
}

// swapQuotes exchanges '|' and '"' so encoding/csv can parse '|'-quoted
// fields. Applying it twice restores the original text.
func swapQuotes(s string) string {
	if !strings.ContainsAny(s, `|"`) {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '|':
			return '"'
		case '"':
			return '|'
		}
		return r
	}, s)
}

type starRecord struct {
	RA     float64  `json:"ra"`
	Dec    float64  `json:"dec"`
	Dist   float64  `json:"dist"`
	Mag    float64  `json:"mag"`
	XEarth *float64 `json:"x_earth"`
	YEarth *float64 `json:"y_earth"`
	ZEarth *float64 `json:"z_earth"`
}

// ReadStarsJSON parses a JSON array of stars. Stars without a positive
// distance are skipped. Missing Cartesian positions are derived from
// ra/dec/dist.
func ReadStarsJSON(r io.Reader) ([]domain.Star, error) {
	var recs []starRecord
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("decoding stars json: %w", err)
	}

	stars := make([]domain.Star, 0, len(recs))
	for _, rec := range recs {
		if rec.Dist <= 0 {
			continue
		}
		s := domain.Star{RA: rec.RA, Dec: rec.Dec, Dist: rec.Dist, Mag: rec.Mag}
		if rec.XEarth != nil && rec.YEarth != nil && rec.ZEarth != nil {
			s.XEarth, s.YEarth, s.ZEarth = *rec.XEarth, *rec.YEarth, *rec.ZEarth
		} else {
			PlaceStar(&s)
		}
		stars = append(stars, s)
	}
	return stars, nil
}
