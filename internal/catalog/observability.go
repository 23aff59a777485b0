package catalog

import (
	"time"

	"go.uber.org/zap"
)

// FetchEvent records metadata about a single catalog fetch.
type FetchEvent struct {
	URL       string
	Latency   time.Duration
	Planets   int
	Success   bool
	ErrorCode string
}

// Observer receives events about catalog fetches for logging.
type Observer interface {
	OnFetchComplete(event FetchEvent)
}

// LogObserver writes fetch events to a zap logger.
type LogObserver struct {
	logger *zap.Logger
}

// NewLogObserver creates an Observer that logs events to logger.
func NewLogObserver(logger *zap.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnFetchComplete(event FetchEvent) {
	fields := []zap.Field{
		zap.String("url", event.URL),
		zap.Int64("latency_ms", event.Latency.Milliseconds()),
	}
	if !event.Success {
		o.logger.Warn("catalog_fetch", append(fields, zap.String("error_code", event.ErrorCode))...)
		return
	}
	o.logger.Info("catalog_fetch", append(fields, zap.Int("planets", event.Planets))...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnFetchComplete(FetchEvent) {}
