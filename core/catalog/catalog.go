package catalog

import (
	"custom-hats/core/merge"

	"github.com/samber/lo"
)

// Catalog is the immutable list of items produced by one bundle load.
type Catalog struct {
	items []Item
	names merge.NameSet
}

// New creates a catalog owning a copy of items.
func New(items []Item) *Catalog {
	owned := append([]Item(nil), items...)
	return &Catalog{
		items: owned,
		names: merge.NewNameSet(lo.Map(owned, func(it Item, _ int) string { return it.Name })...),
	}
}

// Items returns the items in catalog order.
func (c *Catalog) Items() []Item {
	if c == nil {
		return nil
	}
	return append([]Item(nil), c.items...)
}

// Names returns the set of item names.
func (c *Catalog) Names() merge.NameSet {
	if c == nil {
		return merge.NameSet{}
	}
	return c.names
}

// Len is the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Empty reports whether the catalog is missing or has no items.
func (c *Catalog) Empty() bool {
	return c.Len() == 0
}

// NameList returns the item names in catalog order.
func (c *Catalog) NameList() []string {
	return lo.Map(c.Items(), func(it Item, _ int) string { return it.Name })
}
