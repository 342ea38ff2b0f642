// Package loader provides the feature registration system of the HTTP server.
//
// Each feature implements the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps the registered features and loads the enabled ones in registration order.
// The hats feature (status and instance announcements) and the integrity feature (bundle,
// schema and anchor checks) are both registered this way.
package loader
