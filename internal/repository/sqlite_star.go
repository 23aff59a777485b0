package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sixworlds/exosky/internal/db"
	"github.com/sixworlds/exosky/internal/domain"
)

// SQLiteStarRepo implements StarRepo using a SQLite database.
type SQLiteStarRepo struct {
	db db.DBTX
}

func NewSQLiteStarRepo(conn db.DBTX) *SQLiteStarRepo {
	return &SQLiteStarRepo{db: conn}
}

// Create inserts s, assigning an ID when it has none.
func (r *SQLiteStarRepo) Create(ctx context.Context, s *domain.Star) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	query := `INSERT INTO stars (id, ra, dec, dist, mag, x_earth, y_earth, z_earth, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.RA, s.Dec, s.Dist, s.Mag, s.XEarth, s.YEarth, s.ZEarth, nowUTC())
	if err != nil {
		return fmt.Errorf("inserting star: %w", err)
	}
	return nil
}

// List returns every star, brightest first.
func (r *SQLiteStarRepo) List(ctx context.Context) ([]domain.Star, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, ra, dec, dist, mag, x_earth, y_earth, z_earth FROM stars ORDER BY mag, id`)
	if err != nil {
		return nil, fmt.Errorf("listing stars: %w", err)
	}
	defer rows.Close()

	var stars []domain.Star
	for rows.Next() {
		var s domain.Star
		if err := rows.Scan(&s.ID, &s.RA, &s.Dec, &s.Dist, &s.Mag, &s.XEarth, &s.YEarth, &s.ZEarth); err != nil {
			return nil, fmt.Errorf("scanning star: %w", err)
		}
		stars = append(stars, s)
	}
	return stars, rows.Err()
}

func (r *SQLiteStarRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stars`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting stars: %w", err)
	}
	return n, nil
}

func (r *SQLiteStarRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM stars`); err != nil {
		return fmt.Errorf("deleting stars: %w", err)
	}
	return nil
}
