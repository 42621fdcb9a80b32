// Package shim translates API-agnostic resource and view descriptions into
// the calls of two native graphics API generations.
//
// # Overview
//
// A Device wraps one native device. Resources and views are described with
// ResourceDesc and ResourceViewDesc, whose usage flags and dimensions are
// shared by every generation. The backend packages convert them to native
// descriptors and back:
//
//   - d3d9: surfaces, state blocks and device reset
//   - d3d10: distinct view objects and instancing
//
// Handles returned by a Device are the addresses of the native objects.
// They are not owning references: the native reference count governs the
// lifetime of every object.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/shim"
//		"github.com/gogpu/shim/backend"
//	)
//
//	dev, err := backend.Open("d3d10", shim.WithObserver(addon))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer dev.Close()
//
//	tex, err := dev.CreateResource(shim.ResourceTypeTexture2D,
//		shim.NewTexture2DDesc(256, 256, 1, format, shim.UsageShaderResource|shim.UsageRenderTarget))
//
// # Observers
//
// An Observer receives lifecycle notifications synchronously on the device
// thread. CreateResource notifications carry a mutable descriptor, so an
// observer can rewrite a resource before the native creation call.
//
// # Logging
//
// Nothing is logged until SetLogger is called:
//
//	shim.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
//
// # Configuration
//
// Config is loaded from TOML with LoadConfig and passed with WithConfig.
package shim
