// Package server holds the HTTP server configuration.
//
// The HTTP surface exposes the merge status, accepts instance announcements from the host, and
// serves the integrity checks and metrics. Config defines the listen port and the API key
// checked by core/middleware/auth.
package server
