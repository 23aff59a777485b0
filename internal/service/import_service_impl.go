package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sixworlds/exosky/internal/db"
	"github.com/sixworlds/exosky/internal/domain"
	"github.com/sixworlds/exosky/internal/repository"
	"github.com/sixworlds/exosky/internal/skygen"
)

type importService struct {
	uow      db.UnitOfWork
	imports  repository.ImportRepo
	observer UseCaseObserver
}

func NewImportService(
	uow db.UnitOfWork,
	imports repository.ImportRepo,
	observers ...UseCaseObserver,
) ImportService {
	return &importService{
		uow:      uow,
		imports:  imports,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportPlanets(ctx context.Context, path string) (res *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": path}
	defer func() { observe(ctx, s.observer, "import-planets", startedAt, fields, err) }()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening planets file: %w", err)
	}
	defer f.Close()

	planets, err := skygen.ReadPlanetsCSV(f)
	if err != nil {
		return nil, err
	}

	res = &ImportResult{Record: domain.ImportRecord{Kind: domain.ImportPlanets, Source: path}}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlanets := repository.NewSQLitePlanetRepo(tx)
		for i := range planets {
			if planets[i].Dist <= 0 {
				res.Skipped++
				continue
			}
			if err := txPlanets.Upsert(ctx, &planets[i]); err != nil {
				return err
			}
			res.Record.RowCount++
		}
		return repository.NewSQLiteImportRepo(tx).Create(ctx, &res.Record)
	})
	if err != nil {
		return nil, fmt.Errorf("importing planets: %w", err)
	}
	fields["rows"] = res.Record.RowCount
	fields["skipped"] = res.Skipped
	return res, nil
}

// ImportStars replaces the stored star set with the stars in path.
func (s *importService) ImportStars(ctx context.Context, path string) (res *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": path}
	defer func() { observe(ctx, s.observer, "import-stars", startedAt, fields, err) }()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stars file: %w", err)
	}
	defer f.Close()

	stars, err := skygen.ReadStarsJSON(f)
	if err != nil {
		return nil, err
	}

	res = &ImportResult{Record: domain.ImportRecord{Kind: domain.ImportStars, Source: path}}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStars := repository.NewSQLiteStarRepo(tx)
		if err := txStars.DeleteAll(ctx); err != nil {
			return err
		}
		for i := range stars {
			if err := txStars.Create(ctx, &stars[i]); err != nil {
				return err
			}
		}
		res.Record.RowCount = len(stars)
		return repository.NewSQLiteImportRepo(tx).Create(ctx, &res.Record)
	})
	if err != nil {
		return nil, fmt.Errorf("importing stars: %w", err)
	}
	fields["rows"] = res.Record.RowCount
	return res, nil
}

func (s *importService) Recent(ctx context.Context, limit int) ([]domain.ImportRecord, error) {
	return s.imports.ListRecent(ctx, limit)
}
