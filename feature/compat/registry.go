package compat

import (
	"context"
	"sync"

	"github.com/elliotchance/orderedmap/v2"
	"gonum.org/v1/gonum/num/quat"
)

// Entry is one item in the bridge extension's registry.
type Entry struct {
	Name              string      `json:"name"`
	Icon              string      `json:"icon"`
	Model             string      `json:"model"`
	Rotation          quat.Number `json:"-"`
	SecondaryRotation quat.Number `json:"-"`
}

// Category is a named, ordered list of entries.
type Category struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Registry is the bridge extension's category registry. Values are replaced whole.
type Registry interface {
	Categories(ctx context.Context) ([]Category, error)
	SetCategories(ctx context.Context, categories []Category) error
}

// MemoryRegistry is an in-process Registry.
type MemoryRegistry struct {
	mu         sync.RWMutex
	categories []Category
}

// NewMemoryRegistry creates a registry holding a copy of categories.
func NewMemoryRegistry(categories ...Category) *MemoryRegistry {
	return &MemoryRegistry{categories: cloneCategories(categories)}
}

func (r *MemoryRegistry) Categories(_ context.Context) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneCategories(r.categories), nil
}

func (r *MemoryRegistry) SetCategories(_ context.Context, categories []Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = cloneCategories(categories)
	return nil
}

func cloneCategories(categories []Category) []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = Category{Name: c.Name, Entries: append([]Entry(nil), c.Entries...)}
	}
	return out
}

// toMutable converts a registry value into an ordered map that can be appended to freely.
func toMutable(categories []Category) *orderedmap.OrderedMap[string, []Entry] {
	m := orderedmap.NewOrderedMap[string, []Entry]()
	for _, c := range categories {
		existing, _ := m.Get(c.Name)
		m.Set(c.Name, append(append([]Entry(nil), existing...), c.Entries...))
	}
	return m
}

func fromMutable(m *orderedmap.OrderedMap[string, []Entry]) []Category {
	out := make([]Category, 0, m.Len())
	for el := m.Front(); el != nil; el = el.Next() {
		out = append(out, Category{Name: el.Key, Entries: el.Value})
	}
	return out
}
