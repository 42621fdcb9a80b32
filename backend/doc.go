// Package backend selects the native API generation a device is opened on.
//
// Backends are registered via init() functions and selected at runtime.
// The reference backends, which run on the software devices of d3d9/ref
// and d3d10/ref, are registered on import:
//
//	import "github.com/gogpu/shim/backend"
//
// # Backend Selection
//
// Use Default() to get the highest-priority backend, or Get() to request
// a specific backend by name:
//
//	b := backend.Default()   // "d3d10" when registered
//	b := backend.Get("d3d9")
//
// Open and OpenConfig create a device in one step:
//
//	cfg, err := shim.LoadConfig("shim.toml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	dev, err := backend.OpenConfig(cfg, shim.WithObserver(addon))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer dev.Close()
//
// # Available Backends
//
//   - "d3d10": distinct view objects, instancing (preferred)
//   - "d3d9": surfaces, state blocks, device reset
package backend
