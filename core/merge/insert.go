package merge

// Insert splices entries into target at anchor and returns the new collection.
// The inputs are never modified; the result always has its own backing array unless
// entries is empty, in which case target is returned as is.
func Insert[E any](target []E, anchor int, entries []E) ([]E, error) {
	if len(entries) == 0 {
		return target, nil
	}

	if len(target) == 0 {
		out := make([]E, len(entries))
		copy(out, entries)
		return out, nil
	}

	if err := CheckAnchor(len(target), anchor); err != nil {
		return nil, err
	}

	out := make([]E, 0, len(target)+len(entries))
	out = append(out, target[:anchor]...)
	out = append(out, entries...)
	out = append(out, target[anchor:]...)
	return out, nil
}

// CheckAnchor reports whether Insert would accept anchor for a target of the given length.
// An empty target accepts any anchor.
func CheckAnchor(length, anchor int) error {
	if length == 0 {
		return nil
	}
	if anchor < 0 || anchor > length {
		return &RangeError{Anchor: anchor, Length: length}
	}
	return nil
}
