package backend

import (
	"errors"

	"github.com/gogpu/shim"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNoBackends is returned by Open when the registry is empty.
	ErrNoBackends = errors.New("backend: no backends registered")
)

// Backend opens devices of one native API generation.
//
// Backends are registered via Register and selected via Get, Default or Open.
type Backend interface {
	// Name returns the backend identifier (e.g., "d3d9", "d3d10").
	Name() string

	// API returns the native generation the backend translates.
	API() shim.API

	// Open creates a native device and wraps it in a shim.Device.
	// Observers given in opts receive the initialization events.
	Open(opts ...shim.Option) (shim.Device, error)
}
