// Package metrics exposes Prometheus collectors for the merge loop and the event dispatcher.
//
// Collectors are registered on a dedicated Registry (not the global default) so tests and
// embedding hosts do not collide with other registrations. The HTTP server mounts Handler at
// /metrics through Fiber's net/http adaptor.
package metrics
