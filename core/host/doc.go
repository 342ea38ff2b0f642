// Package host models the parts of the host application that custom items are merged into.
//
// The host owns two kinds of ordered collections: the global catalog options (OptionStore) and
// the attachments of each character instance. Both are read whole, modified as a new slice and
// written back; nothing in this module mutates a host collection in place.
//
// Implementations live in subpackages: memory keeps everything in process and doubles as the
// simulated host of the HTTP surface, store persists options in a database table.
package host
