package compat

import (
	"context"
	"fmt"
	"math"
	"sync"

	"custom-hats/core/catalog"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// secondaryOffset converts a model orientation to the bridge's convention: -90° about X.
var secondaryOffset = quat.Number(r3.NewRotation(-math.Pi/2, r3.Vec{X: 1}))

// Bridge writes catalog items into the bridge extension's registry instead of the host catalog.
type Bridge struct {
	registry Registry
	category string
	logger   *zap.Logger

	mu     sync.Mutex
	loaded bool
}

// New creates a bridge appending to category of registry.
func New(registry Registry, category string, logger *zap.Logger) *Bridge {
	return &Bridge{registry: registry, category: category, logger: logger}
}

// Loaded reports whether LoadOnce has completed.
func (b *Bridge) Loaded() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loaded
}

// LoadOnce appends one entry per item to the bridge category and writes the registry back.
// It has an effect at most once: the flag is set after a successful write, so a failed write is
// retried by the next call.
func (b *Bridge) LoadOnce(ctx context.Context, items []catalog.Item) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.loaded {
		return nil
	}

	b.logger.Info("Loading items into bridge registry",
		zap.String("category", b.category),
		zap.Int("items", len(items)))

	current, err := b.registry.Categories(ctx)
	if err != nil {
		return fmt.Errorf("failed to read bridge registry: %w", err)
	}

	mutable := toMutable(current)
	entries, _ := mutable.Get(b.category)
	entries = append(append([]Entry(nil), entries...), lo.Map(items, func(it catalog.Item, _ int) Entry {
		return ToEntry(it)
	})...)
	mutable.Set(b.category, entries)

	if err := b.registry.SetCategories(ctx, fromMutable(mutable)); err != nil {
		return fmt.Errorf("failed to write bridge registry: %w", err)
	}

	b.loaded = true
	return nil
}

// ToEntry converts a catalog item to a bridge entry.
func ToEntry(it catalog.Item) Entry {
	return Entry{
		Name:              it.Name,
		Icon:              it.Icon.Key,
		Model:             it.Model.Key,
		Rotation:          it.Model.Rotation,
		SecondaryRotation: SecondaryRotation(it.Model.Rotation),
	}
}

// SecondaryRotation applies the bridge's -90° X offset on top of rot.
func SecondaryRotation(rot quat.Number) quat.Number {
	if rot == (quat.Number{}) {
		rot = catalog.Identity
	}
	return quat.Mul(secondaryOffset, rot)
}

// Category returns the registry category the bridge appends to.
func (b *Bridge) Category() string {
	return b.category
}

// Entries returns the current entries of the bridge category and whether the category exists.
func (b *Bridge) Entries(ctx context.Context) ([]Entry, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current, err := b.registry.Categories(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read bridge registry: %w", err)
	}
	cat, ok := lo.Find(current, func(c Category) bool { return c.Name == b.category })
	return cat.Entries, ok, nil
}

// Seed replaces the registry content, as the bridge extension does when it starts. It does not
// reset the loaded flag.
func (b *Bridge) Seed(ctx context.Context, categories []Category) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.registry.SetCategories(ctx, categories); err != nil {
		return fmt.Errorf("failed to write bridge registry: %w", err)
	}
	return nil
}
