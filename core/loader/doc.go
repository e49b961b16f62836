// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface and is registered with a Manager,
// which loads the enabled ones in registration order:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The replenishment and integrity features are both loaded this way.
package loader
