// Package catalog fetches the planet catalog document over HTTP.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/sixworlds/exosky/internal/domain"
)

// DefaultMaxBytes caps the catalog body when Config.MaxBytes is unset.
const DefaultMaxBytes int64 = 32 << 20

// Config configures an HTTPSource.
type Config struct {
	URL      string
	Timeout  time.Duration
	MaxBytes int64
}

func (c Config) maxBytes() int64 {
	if c.MaxBytes > 0 {
		return c.MaxBytes
	}
	return DefaultMaxBytes
}

// HTTPSource loads the catalog with a single GET request.
type HTTPSource struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPSource creates an HTTPSource for cfg.URL.
func NewHTTPSource(cfg Config, observer Observer) *HTTPSource {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &HTTPSource{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// URL returns the catalog location.
func (s *HTTPSource) URL() string { return s.cfg.URL }

// Fetch retrieves and decodes the catalog. There are no retries; the caller
// decides what a failure means.
func (s *HTTPSource) Fetch(ctx context.Context) (domain.Catalog, error) {
	start := time.Now()

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	cat, err := s.doRequest(ctx)
	if err == nil {
		s.observer.OnFetchComplete(FetchEvent{
			URL:     s.cfg.URL,
			Latency: time.Since(start),
			Planets: len(cat),
			Success: true,
		})
		return cat, nil
	}

	err = classify(ctx, err)
	s.observer.OnFetchComplete(FetchEvent{
		URL:       s.cfg.URL,
		Latency:   time.Since(start),
		ErrorCode: errorCode(err),
	})
	return nil, err
}

// CloseIdleConnections releases pooled connections.
func (s *HTTPSource) CloseIdleConnections() {
	s.http.CloseIdleConnections()
}

func (s *HTTPSource) doRequest(ctx context.Context) (domain.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	limit := s.cfg.maxBytes()
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}

	return Decode(body)
}

// Decode parses a catalog document. The document must be a JSON object; an
// empty object is a valid, empty catalog.
func Decode(body []byte) (domain.Catalog, error) {
	var cat domain.Catalog
	if err := json.Unmarshal(body, &cat); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if cat == nil {
		return nil, fmt.Errorf("%w: document is null", ErrMalformed)
	}
	return cat, nil
}

func classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, ErrBadStatus), errors.Is(err, ErrMalformed), errors.Is(err, ErrTooLarge):
		return err
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return ErrTimeout
	case ctx.Err() != nil:
		return ctx.Err()
	case isConnectionError(err):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return fmt.Errorf("fetching catalog: %w", err)
	}
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrBadStatus):
		return "BAD_STATUS"
	case errors.Is(err, ErrMalformed):
		return "MALFORMED"
	case errors.Is(err, ErrTooLarge):
		return "TOO_LARGE"
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	default:
		return "UNKNOWN"
	}
}
