package domain

import "time"

type ImportKind string

const (
	ImportPlanets ImportKind = "planets"
	ImportStars   ImportKind = "stars"
)

// ImportRecord is one completed import into the workspace.
type ImportRecord struct {
	ID        string
	Kind      ImportKind
	Source    string
	RowCount  int
	CreatedAt time.Time
}
