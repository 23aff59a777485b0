package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sixworlds/exosky/internal/db"
	"github.com/sixworlds/exosky/internal/domain"
)

// SQLitePlanetRepo implements PlanetRepo using a SQLite database.
type SQLitePlanetRepo struct {
	db db.DBTX
}

func NewSQLitePlanetRepo(conn db.DBTX) *SQLitePlanetRepo {
	return &SQLitePlanetRepo{db: conn}
}

// Upsert inserts p or replaces the planet with the same name.
func (r *SQLitePlanetRepo) Upsert(ctx context.Context, p *domain.Planet) error {
	query := `INSERT INTO planets (name, ra, dec, dist, x_earth, y_earth, z_earth, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			ra = excluded.ra, dec = excluded.dec, dist = excluded.dist,
			x_earth = excluded.x_earth, y_earth = excluded.y_earth, z_earth = excluded.z_earth,
			imported_at = excluded.imported_at`
	_, err := r.db.ExecContext(ctx, query,
		p.Name, p.RA, p.Dec, p.Dist, p.XEarth, p.YEarth, p.ZEarth, nowUTC())
	if err != nil {
		return fmt.Errorf("upserting planet %q: %w", p.Name, err)
	}
	return nil
}

func (r *SQLitePlanetRepo) Get(ctx context.Context, name string) (*domain.Planet, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT name, ra, dec, dist, x_earth, y_earth, z_earth FROM planets WHERE name = ?`, name)

	var p domain.Planet
	if err := row.Scan(&p.Name, &p.RA, &p.Dec, &p.Dist, &p.XEarth, &p.YEarth, &p.ZEarth); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("planet %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning planet: %w", err)
	}
	return &p, nil
}

func (r *SQLitePlanetRepo) List(ctx context.Context) ([]domain.Planet, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, ra, dec, dist, x_earth, y_earth, z_earth FROM planets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing planets: %w", err)
	}
	defer rows.Close()

	var planets []domain.Planet
	for rows.Next() {
		var p domain.Planet
		if err := rows.Scan(&p.Name, &p.RA, &p.Dec, &p.Dist, &p.XEarth, &p.YEarth, &p.ZEarth); err != nil {
			return nil, fmt.Errorf("scanning planet: %w", err)
		}
		planets = append(planets, p)
	}
	return planets, rows.Err()
}

func (r *SQLitePlanetRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM planets`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting planets: %w", err)
	}
	return n, nil
}
