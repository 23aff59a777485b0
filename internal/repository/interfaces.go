package repository

import (
	"context"
	"errors"

	"github.com/sixworlds/exosky/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type PlanetRepo interface {
	Upsert(ctx context.Context, p *domain.Planet) error
	Get(ctx context.Context, name string) (*domain.Planet, error)
	List(ctx context.Context) ([]domain.Planet, error)
	Count(ctx context.Context) (int, error)
}

type StarRepo interface {
	Create(ctx context.Context, s *domain.Star) error
	List(ctx context.Context) ([]domain.Star, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type ImportRepo interface {
	Create(ctx context.Context, rec *domain.ImportRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.ImportRecord, error)
}
