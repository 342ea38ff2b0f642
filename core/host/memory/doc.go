// Package memory implements an in-process host.
//
// The option collection starts out missing, like a host whose catalog is still initializing,
// and appears on InitOptions. Instances are registered explicitly by whoever simulates the host,
// which in this service is the HTTP announcement surface.
package memory
