// Package store persists the host's catalog options in a relational table.
//
// Each option is one row of customization_options with an explicit position column, so the
// ordered collection survives restarts and the anchor index keeps its meaning. Writes replace
// the whole table inside a transaction.
package store
