package service

import (
	"context"
	"io"

	"github.com/sixworlds/exosky/internal/domain"
	"github.com/sixworlds/exosky/internal/skygen"
)

type ImportService interface {
	ImportPlanets(ctx context.Context, path string) (*ImportResult, error)
	ImportStars(ctx context.Context, path string) (*ImportResult, error)
	Recent(ctx context.Context, limit int) ([]domain.ImportRecord, error)
}

type GenerateService interface {
	SkyMaps(ctx context.Context, outDir string, opts skygen.Options) (*GenerateResult, error)
	SkyBoxes(ctx context.Context, outDir string, opts skygen.Options) (*GenerateResult, error)
	ExportCatalog(ctx context.Context, w io.Writer) (int, error)
	ExportMaps(ctx context.Context, w io.Writer) (int, error)
}

// ImportResult summarizes one import run.
type ImportResult struct {
	Record  domain.ImportRecord
	Skipped int
}

// GenerateResult lists the files written by a generate run.
type GenerateResult struct {
	Planets int
	Files   []string
}
