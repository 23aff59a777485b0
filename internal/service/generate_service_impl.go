package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/sixworlds/exosky/internal/domain"
	"github.com/sixworlds/exosky/internal/repository"
	"github.com/sixworlds/exosky/internal/skygen"
	"golang.org/x/sync/errgroup"
)

// ErrNoStars is returned when sky images are requested before any stars
// were imported.
var ErrNoStars = errors.New("no stars imported")

// renderFunc draws the images for one planet and names the files to write.
type renderFunc func(points []domain.SkyPoint) map[string]image.Image

type generateService struct {
	planets  repository.PlanetRepo
	stars    repository.StarRepo
	workers  int
	observer UseCaseObserver
}

// NewGenerateService renders assets for stored planets with at most workers
// planets in flight.
func NewGenerateService(
	planets repository.PlanetRepo,
	stars repository.StarRepo,
	workers int,
	observers ...UseCaseObserver,
) GenerateService {
	if workers < 1 {
		workers = 1
	}
	return &generateService{
		planets:  planets,
		stars:    stars,
		workers:  workers,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *generateService) SkyMaps(ctx context.Context, outDir string, opts skygen.Options) (*GenerateResult, error) {
	return s.generate(ctx, "generate-skymaps", outDir, opts, func(points []domain.SkyPoint) map[string]image.Image {
		north, south := skygen.RenderSkyMaps(points, opts)
		return map[string]image.Image{
			skygen.SkyMapFile(domain.North): north,
			skygen.SkyMapFile(domain.South): south,
		}
	})
}

func (s *generateService) SkyBoxes(ctx context.Context, outDir string, opts skygen.Options) (*GenerateResult, error) {
	return s.generate(ctx, "generate-skyboxes", outDir, opts, func(points []domain.SkyPoint) map[string]image.Image {
		faces := skygen.RenderSkyBox(points, opts)
		files := make(map[string]image.Image, len(faces))
		for f, img := range faces {
			files[skygen.SkyBoxFile(f)] = img
		}
		return files
	})
}

func (s *generateService) generate(ctx context.Context, name, outDir string, opts skygen.Options, render renderFunc) (res *GenerateResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"out": outDir, "workers": s.workers}
	defer func() { observe(ctx, s.observer, name, startedAt, fields, err) }()

	planets, err := s.planets.List(ctx)
	if err != nil {
		return nil, err
	}
	stars, err := s.stars.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(stars) == 0 {
		return nil, ErrNoStars
	}

	var (
		mu    sync.Mutex
		files []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, p := range planets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			dir, err := skygen.AssetDir(outDir, p.Name)
			if err != nil {
				return err
			}
			var written []string
			for file, img := range render(skygen.ProjectAll(p, stars)) {
				path := filepath.Join(dir, file)
				if err := skygen.WritePNG(path, img, opts); err != nil {
					return fmt.Errorf("planet %q: %w", p.Name, err)
				}
				written = append(written, path)
			}
			mu.Lock()
			files = append(files, written...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(files)
	fields["planets"] = len(planets)
	fields["files"] = len(files)
	return &GenerateResult{Planets: len(planets), Files: files}, nil
}

// ExportCatalog writes the stored planets as a JSON object keyed by planet
// name and returns how many were written.
func (s *generateService) ExportCatalog(ctx context.Context, w io.Writer) (n int, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "export-catalog", startedAt, fields, err) }()

	planets, err := s.planets.List(ctx)
	if err != nil {
		return 0, err
	}
	doc := make(map[string]domain.Planet, len(planets))
	for _, p := range planets {
		doc[p.Name] = p
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return 0, fmt.Errorf("encoding catalog: %w", err)
	}
	fields["planets"] = len(planets)
	return len(planets), nil
}

// ExportMaps writes every stored planet's projected stars as a JSON object
// keyed by planet name, the document the sky-map viewer plots from. Stars
// keep the brightest-first order of the store.
func (s *generateService) ExportMaps(ctx context.Context, w io.Writer) (n int, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "export-maps", startedAt, fields, err) }()

	planets, err := s.planets.List(ctx)
	if err != nil {
		return 0, err
	}
	stars, err := s.stars.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(stars) == 0 {
		return 0, ErrNoStars
	}

	doc := make(map[string][]domain.SkyPoint, len(planets))
	for _, p := range planets {
		doc[p.Name] = skygen.ProjectAll(p, stars)
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return 0, fmt.Errorf("encoding sky maps: %w", err)
	}
	fields["planets"] = len(planets)
	fields["stars"] = len(stars)
	return len(planets), nil
}
