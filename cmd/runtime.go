package cmd

import (
	"context"
	"fmt"
	"time"

	"custom-hats/core/catalog"
	"custom-hats/core/config"
	"custom-hats/core/database"
	"custom-hats/core/dispatch"
	"custom-hats/core/host"
	"custom-hats/core/host/memory"
	"custom-hats/core/host/store"
	"custom-hats/core/retry"
	"custom-hats/core/storage"
	"custom-hats/feature/compat"
	"custom-hats/feature/hats"
	"custom-hats/feature/integrity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds every component of the service, wired from one configuration.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger

	client     storage.Client
	db         *gorm.DB
	options    host.OptionStore
	host       *memory.Host
	source     catalog.Source
	loader     *catalog.Loader
	dispatcher *dispatch.Dispatcher
	bridge     *compat.Bridge
	plugin     *hats.Plugin
	scheduler  *retry.Scheduler
}

// newRuntime wires the components. The catalog is not loaded yet.
func newRuntime(ctx context.Context, cfg *config.Config, logg *zap.Logger, migrate bool) (*runtime, error) {
	rt := &runtime{cfg: cfg, logger: logg, host: memory.New()}

	// Storage is only needed when the bundle lives in a bucket
	if cfg.Catalog.Source == catalog.SourceStorage {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		rt.client = client
	}

	source, err := catalog.NewSource(cfg.Catalog, rt.client, cfg.Storage.Bucket, nil)
	if err != nil {
		return nil, err
	}
	rt.source = source
	rt.loader = catalog.NewLoader(source, logg.Named("catalog"))

	// Options live in the host database when enabled, in memory otherwise
	rt.options = rt.host
	if cfg.Database.Enabled {
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, keeping options in memory", zap.Error(err))
		} else {
			rt.db = conn
			s := store.New(conn)
			if migrate {
				if err := s.Migrate(ctx); err != nil {
					return nil, err
				}
			}
			rt.options = s
			logg.Info("Connected to host database", zap.String("driver", cfg.Database.Driver))
		}
	}

	rt.dispatcher = dispatch.New(logg.Named("dispatch"))
	for _, id := range cfg.Hats.LoadedExtensions {
		if err := rt.dispatcher.Register(id); err != nil {
			return nil, err
		}
	}
	rt.bridge = compat.New(compat.NewMemoryRegistry(), cfg.Hats.BridgeCategory, logg.Named("compat"))

	plugin, err := hats.NewPlugin(cfg.Hats, hats.Deps{
		Catalog:      rt.loader,
		Options:      rt.options,
		Instances:    rt.host,
		Instantiator: rt.host,
		Dispatcher:   rt.dispatcher,
		Bridge:       rt.bridge,
	}, logg.Named("hats"))
	if err != nil {
		return nil, err
	}
	rt.plugin = plugin
	rt.scheduler = retry.New(plugin.Attempt, cfg.Retry, logg.Named("retry"))

	return rt, nil
}

// loadCatalog keeps trying to load the bundle until it succeeds or ctx ends.
func (rt *runtime) loadCatalog(ctx context.Context) {
	for {
		c, err := rt.loader.Load(ctx)
		if err == nil {
			rt.logger.Info("Catalog loaded", zap.Int("items", c.Len()), zap.String("path", rt.source.Describe()))
			return
		}
		rt.logger.Error("Failed to load catalog", zap.String("path", rt.source.Describe()), zap.Error(err))

		select {
		case <-ctx.Done():
			return
		case <-time.After(rt.cfg.Retry.FailureInterval):
		}
	}
}

func (rt *runtime) hatsService() *hats.Service {
	return hats.NewService(rt.plugin, rt.host, rt.scheduler, rt.logger.Named("hats"))
}

func (rt *runtime) integrityService() *integrity.Service {
	return integrity.NewService(rt.client, rt.cfg.Storage.Bucket, rt.logger.Named("integrity"), rt.db, rt.source, rt.options,
		integrity.Config{BundlePath: rt.cfg.Catalog.BundlePath, Anchor: rt.cfg.Hats.Anchor})
}

func (rt *runtime) close() {
	rt.plugin.Close()
	if rt.db != nil {
		if sqlDB, err := rt.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

// loadConfig loads and validates the configuration and builds the logger.
func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := newLogger(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}
