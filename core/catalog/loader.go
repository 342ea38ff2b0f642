package catalog

import (
	"context"
	"sync"

	"custom-hats/core/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Resolve lists source and pairs its assets into a catalog without caching anything.
func Resolve(ctx context.Context, source Source) (*Catalog, []string, error) {
	assets, err := source.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	items, orphans := Pair(assets)
	return New(items), orphans, nil
}

// Loader produces the process catalog once. Concurrent Load calls share one listing and the first
// successful result is kept for the lifetime of the loader.
type Loader struct {
	source Source
	logger *zap.Logger
	group  singleflight.Group

	mu      sync.RWMutex
	current *Catalog
	orphans []string
}

// NewLoader creates a loader for source.
func NewLoader(source Source, logger *zap.Logger) *Loader {
	return &Loader{source: source, logger: logger}
}

// Load returns the cached catalog or lists the source to build it.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	if c := l.Current(); c != nil {
		return c, nil
	}

	v, err, _ := l.group.Do("catalog", func() (any, error) {
		if c := l.Current(); c != nil {
			return c, nil
		}

		l.logger.Debug("Loading asset bundle", zap.String("path", l.source.Describe()))
		c, orphans, err := Resolve(ctx, l.source)
		if err != nil {
			return nil, err
		}

		l.logger.Debug("Loaded asset bundle",
			zap.String("path", l.source.Describe()),
			zap.Strings("items", c.NameList()),
			zap.Strings("orphans", orphans))
		if len(orphans) > 0 {
			l.logger.Warn("Ignoring unpaired assets", zap.Strings("names", orphans))
		}

		l.mu.Lock()
		l.current = c
		l.orphans = orphans
		l.mu.Unlock()

		metrics.CatalogItems.Set(float64(c.Len()))
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Catalog), nil
}

// Current returns the loaded catalog, or nil while loading has not succeeded.
func (l *Loader) Current() *Catalog {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// Orphans returns the names dropped by the last successful load.
func (l *Loader) Orphans() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string(nil), l.orphans...)
}
