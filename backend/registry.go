package backend

import (
	"fmt"
	"slices"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/shim"
)

// Factory creates a new backend instance.
type Factory func() Backend

// Priority order for backend selection (first available wins).
var registry = gpucontext.NewRegistry[Backend](
	gpucontext.WithPriority(NameD3D10, NameD3D9),
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions.
// If a backend with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registry.Register(name, factory)
}

// Unregister removes a backend from the registry.
func Unregister(name string) {
	registry.Unregister(name)
}

// Available returns the sorted names of the registered backends.
func Available() []string {
	names := registry.Available()
	slices.Sort(names)
	return names
}

// IsRegistered reports whether a backend with the given name is registered.
func IsRegistered(name string) bool {
	return registry.Has(name)
}

// Get returns a backend instance by name, or nil if none is registered.
func Get(name string) Backend {
	return registry.Get(name)
}

// Default returns the highest-priority registered backend.
// Returns nil if no backends are registered.
func Default() Backend {
	return registry.Best()
}

// MustDefault is like Default but panics if no backend is registered.
func MustDefault() Backend {
	b := Default()
	if b == nil {
		panic(ErrNoBackends)
	}
	return b
}

// Open opens a device on the named backend. An empty name selects Default.
func Open(name string, opts ...shim.Option) (shim.Device, error) {
	var b Backend
	if name == "" {
		if b = Default(); b == nil {
			return nil, ErrNoBackends
		}
	} else if b = Get(name); b == nil {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	dev, err := b.Open(opts...)
	if err != nil {
		return nil, fmt.Errorf("backend: open %s: %w", b.Name(), err)
	}
	shim.Logger().Debug("backend: device opened", "backend", b.Name())
	return dev, nil
}

// OpenConfig opens a device on the backend named by cfg, passing cfg to the
// device.
func OpenConfig(cfg shim.Config, opts ...shim.Option) (shim.Device, error) {
	return Open(cfg.Backend, append([]shim.Option{shim.WithConfig(cfg)}, opts...)...)
}
