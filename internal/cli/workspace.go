package cli

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/sixworlds/exosky/internal/config"
	"github.com/sixworlds/exosky/internal/db"
	"github.com/sixworlds/exosky/internal/repository"
	"github.com/sixworlds/exosky/internal/service"
)

// Workspace is the local asset-pipeline store and the services over it.
type Workspace struct {
	Planets  repository.PlanetRepo
	Imports  service.ImportService
	Generate service.GenerateService

	db    *sql.DB
	owned bool
}

// OpenWorkspace opens the database at cfg.DBPath and wires the services.
func OpenWorkspace(cfg config.Config, logger *zap.Logger) (*Workspace, error) {
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening workspace: %w", err)
	}
	w := NewWorkspace(database, cfg.Workers, service.NewLogUseCaseObserver(logger))
	w.owned = true
	return w, nil
}

// NewWorkspace wires services over an open database. The caller keeps
// ownership of database.
func NewWorkspace(database *sql.DB, workers int, observer service.UseCaseObserver) *Workspace {
	planets := repository.NewSQLitePlanetRepo(database)
	stars := repository.NewSQLiteStarRepo(database)
	imports := repository.NewSQLiteImportRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	return &Workspace{
		Planets:  planets,
		Imports:  service.NewImportService(uow, imports, observer),
		Generate: service.NewGenerateService(planets, stars, workers, observer),
		db:       database,
	}
}

// Close closes the database if the workspace opened it.
func (w *Workspace) Close() error {
	if !w.owned {
		return nil
	}
	return w.db.Close()
}
