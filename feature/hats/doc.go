// Package hats merges the custom item catalog into the host application.
//
// # Protocol
//
// The host builds its catalog asynchronously and the asset bundle loads asynchronously too, so
// nothing can be merged at a fixed point in startup. Instead the retry loop calls
// Plugin.Attempt every few seconds. Each attempt checks, in order:
//
//  1. the catalog is loaded;
//  2. whether the bridge extension is present, in which case the items go to its registry
//     (package compat) and the host-native path is skipped for good;
//  3. the host option collection exists and is populated;
//  4. whether the options were already merged (a tail scan on every pass);
//  5. the preview instance and its hat slot;
//  6. the local participant.
//
// Missing preconditions are "not ready": they are logged and the attempt returns nil, so the
// loop polls again at the short interval. Anything else (an anchor past the end of a
// collection, a failed write) fails the attempt and triggers the long interval.
//
// Every merge splices at the configured anchor and is idempotent: a tail scan from the anchor
// for any catalog name tells whether the collection was already extended.
//
// # Announcements
//
// The plugin registers OnAddHatsForCharacter with the dispatcher. The host announces each new
// character instance through a broadcast, and the handler merges attachments into it. Attempts
// and broadcasts issued through the plugin share one lock, so the merge never runs twice at once.
//
// # HTTP
//
//   - GET  /hats: merge status
//   - GET  /hats/options, PUT /hats/options: host option collection
//   - POST /hats/instances: announce an instance
//   - GET  /hats/instances/:id: attachments of an instance
//   - POST /events/:name: broadcast any event
package hats
