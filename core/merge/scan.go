package merge

import "github.com/samber/lo"

// NameSet is the set of names a tail scan looks for.
type NameSet map[string]struct{}

// NewNameSet builds a NameSet from the given names.
func NewNameSet(names ...string) NameSet {
	set := make(NameSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// Has reports whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Inserted reports whether any entry at or after anchor has a name contained in names.
// An anchor past the end of target yields false.
func Inserted[E any](target []E, anchor int, names NameSet, nameOf func(E) string) bool {
	return lo.ContainsBy(tail(target, anchor), func(e E) bool {
		return names.Has(nameOf(e))
	})
}

// TailNames returns the names of every entry at or after anchor.
func TailNames[E any](target []E, anchor int, nameOf func(E) string) []string {
	return lo.Map(tail(target, anchor), func(e E, _ int) string {
		return nameOf(e)
	})
}

func tail[E any](target []E, anchor int) []E {
	if anchor < 0 {
		anchor = 0
	}
	if anchor >= len(target) {
		return nil
	}
	return target[anchor:]
}
