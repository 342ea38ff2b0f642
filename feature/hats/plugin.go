package hats

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"custom-hats/core/catalog"
	"custom-hats/core/dispatch"
	"custom-hats/core/host"
	"custom-hats/core/merge"
	"custom-hats/feature/compat"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// EventAddHatsForCharacter is broadcast by the host when a character instance is created.
const EventAddHatsForCharacter = "OnAddHatsForCharacter"

// CatalogProvider exposes the loaded catalog; Current is nil until loading succeeds.
type CatalogProvider interface {
	Current() *catalog.Catalog
}

// Deps are the collaborators of a Plugin.
type Deps struct {
	Catalog      CatalogProvider
	Options      host.OptionStore
	Instances    host.Instances
	Instantiator host.Instantiator
	Dispatcher   *dispatch.Dispatcher
	Bridge       *compat.Bridge
}

// Plugin merges the catalog into the host. Attempts and announcement broadcasts share one
// timeline lock, so at most one of them touches host collections at a time.
type Plugin struct {
	cfg    Config
	deps   Deps
	logger *zap.Logger

	timeline sync.Mutex

	mu       sync.RWMutex
	inserted bool
}

// NewPlugin creates the plugin and registers its event handlers under cfg.ExtensionID.
func NewPlugin(cfg Config, deps Deps, logger *zap.Logger) (*Plugin, error) {
	p := &Plugin{cfg: cfg, deps: deps, logger: logger}

	err := deps.Dispatcher.Register(cfg.ExtensionID,
		dispatch.On1(EventAddHatsForCharacter, p.onAddHatsForCharacter),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register %s: %w", cfg.ExtensionID, err)
	}
	return p, nil
}

// Close unregisters the plugin from the dispatcher.
func (p *Plugin) Close() {
	p.deps.Dispatcher.Unregister(p.cfg.ExtensionID)
}

// Inserted reports whether the catalog options have been merged.
func (p *Plugin) Inserted() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.inserted
}

// BridgeActive reports whether the bridge extension is loaded.
func (p *Plugin) BridgeActive() bool {
	return p.deps.Dispatcher.Loaded(p.cfg.BridgeID)
}

// Attempt runs one integration pass. It is the retry.Attempt of the service.
func (p *Plugin) Attempt(ctx context.Context) error {
	p.timeline.Lock()
	defer p.timeline.Unlock()
	return p.attempt(ctx)
}

// Broadcast sends event to every loaded extension on the plugin's timeline.
func (p *Plugin) Broadcast(event string, args ...any) (int, error) {
	p.timeline.Lock()
	defer p.timeline.Unlock()
	return p.deps.Dispatcher.Broadcast(event, args...)
}

// Announce broadcasts the creation of inst.
func (p *Plugin) Announce(inst *host.Instance) (int, error) {
	return p.Broadcast(EventAddHatsForCharacter, inst)
}

func (p *Plugin) attempt(ctx context.Context) error {
	cat := p.deps.Catalog.Current()
	if cat.Empty() {
		p.logger.Debug("Skipping attempt", zap.Error(notReady("catalog not loaded")))
		return nil
	}

	if p.BridgeActive() {
		if p.deps.Bridge == nil {
			return fmt.Errorf("bridge %s is loaded but no registry is configured", p.cfg.BridgeID)
		}
		return p.deps.Bridge.LoadOnce(ctx, cat.Items())
	}

	opts, ok, err := p.deps.Options.Options(ctx)
	if err != nil {
		return fmt.Errorf("failed to read catalog options: %w", err)
	}
	if !ok || len(opts) == 0 {
		p.logger.Debug("Skipping attempt", zap.Error(notReady("catalog options not populated")))
		return nil
	}

	// The tail decides on every pass; the flag only gates the preview and instance steps.
	if merge.Inserted(opts, p.cfg.Anchor, cat.Names(), host.OptionName) {
		p.setInserted()
	} else {
		merged, err := merge.Insert(opts, p.cfg.Anchor, buildOptions(cat.Items()))
		if err != nil {
			return fmt.Errorf("failed to insert catalog options: %w", err)
		}
		if err := p.deps.Options.ReplaceOptions(ctx, merged); err != nil {
			return fmt.Errorf("failed to write catalog options: %w", err)
		}
		p.setInserted()
		p.logger.Info("Inserted custom catalog options",
			zap.Int("items", cat.Len()),
			zap.Int("anchor", p.cfg.Anchor))
	}

	if err := p.applyToPreview(cat); err != nil {
		if errors.Is(err, ErrNotReady) {
			p.logger.Warn("Preview not updated", zap.Error(err))
			return nil
		}
		return err
	}

	if err := p.applyToInstance(p.localInstance(), cat); err != nil {
		if errors.Is(err, ErrNotReady) {
			p.logger.Debug("Local instance not updated", zap.Error(err))
			return nil
		}
		return err
	}
	return nil
}

func (p *Plugin) setInserted() {
	p.mu.Lock()
	p.inserted = true
	p.mu.Unlock()
}

func (p *Plugin) localInstance() *host.Instance {
	if inst := p.deps.Instances.Local(); inst != nil {
		return inst
	}
	if actor, ok := p.deps.Instances.LocalActor(); ok {
		return p.deps.Instances.ByActor(actor)
	}
	return nil
}

func buildOptions(items []catalog.Item) []host.Option {
	return lo.Map(items, func(it catalog.Item, _ int) host.Option {
		return host.Option{
			Name:    it.Name,
			Texture: it.Icon.Key,
			Color:   host.White,
			Type:    host.TypeHat,
		}
	})
}
