// Package merge implements the anchored splice used to add custom entries to host-owned
// ordered collections.
//
// The package is pure: nothing here touches host state. Callers read the current collection,
// compute the new value with Insert, and write the result back to wherever the host keeps it.
//
// # Insert
//
// Insert places new entries at a fixed anchor position:
//
//	entries[0:anchor] ++ added ++ entries[anchor:]
//
// Both the head and the tail keep their relative order. An anchor equal to the collection
// length appends; an empty or nil collection yields exactly the added entries. An anchor that is
// negative or beyond the length fails with ErrOutOfRange, which indicates a configuration
// error rather than a transient condition.
//
// # Tail Scan
//
// Inserted reports whether any entry from the anchor onward carries a known name. Because custom
// entries always live in the tail, this is enough to make repeated merges idempotent without
// keeping a separate ledger.
//
// # Usage
//
//	names := merge.NewNameSet("top", "crown")
//	if !merge.Inserted(options, 23, names, host.Option.EntryName) {
//	    options, err = merge.Insert(options, 23, added)
//	}
package merge
