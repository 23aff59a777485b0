package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sixworlds/exosky/internal/db"
	"github.com/sixworlds/exosky/internal/domain"
)

// SQLiteImportRepo implements ImportRepo using a SQLite database.
type SQLiteImportRepo struct {
	db db.DBTX
}

func NewSQLiteImportRepo(conn db.DBTX) *SQLiteImportRepo {
	return &SQLiteImportRepo{db: conn}
}

func (r *SQLiteImportRepo) Create(ctx context.Context, rec *domain.ImportRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO imports (id, kind, source, row_count, created_at) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, string(rec.Kind), rec.Source, rec.RowCount, rec.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("recording import: %w", err)
	}
	return nil
}

// ListRecent returns up to limit imports, newest first.
func (r *SQLiteImportRepo) ListRecent(ctx context.Context, limit int) ([]domain.ImportRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, source, row_count, created_at FROM imports
		ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing imports: %w", err)
	}
	defer rows.Close()

	var recs []domain.ImportRecord
	for rows.Next() {
		var (
			rec       domain.ImportRecord
			kind      string
			createdAt string
		)
		if err := rows.Scan(&rec.ID, &kind, &rec.Source, &rec.RowCount, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning import: %w", err)
		}
		rec.Kind = domain.ImportKind(kind)
		rec.CreatedAt = parseTime(createdAt)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
