package domain

import (
	"encoding/json"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Catalog maps planet names to per-planet data. Values are opaque to the
// selector; only the keys are consumed.
type Catalog map[string]json.RawMessage

// Len returns the number of planets in the catalog.
func (c Catalog) Len() int { return len(c) }

// Has reports whether name is a key of the catalog.
func (c Catalog) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// SortedNames returns the catalog keys in ascending locale-aware order.
// Keys that collate equal fall back to byte order so the result is stable.
func (c Catalog) SortedNames() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	SortNames(names)
	return names
}

// SortNames sorts names in place using root-locale collation.
func SortNames(names []string) {
	col := collate.New(language.Und)
	sort.SliceStable(names, func(i, j int) bool {
		if cmp := col.CompareString(names[i], names[j]); cmp != 0 {
			return cmp < 0
		}
		return names[i] < names[j]
	})
}
