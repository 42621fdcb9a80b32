// Package d3d9 translates the abstract resource model of package shim to the
// older native API generation and back.
//
// The native API is described by the interfaces in native.go (Device9,
// Texture9, Surface9 and friends). A Device wraps a Device9 and implements
// shim.Device on top of it:
//
//	native, err := ref.NewDevice(ref.DefaultPresentParameters(1280, 720))
//	if err != nil {
//	    return err
//	}
//	dev, err := d3d9.NewDevice(native, shim.WithObserver(addon))
//	if err != nil {
//	    return err
//	}
//	defer dev.Close()
//
// # Views
//
// This API generation has no view objects. Render target and depth-stencil
// views of a surface are the surface itself with an extra reference, views
// of a texture level are the level's surface, and shader resource views of a
// texture are the texture. Destroying a view releases that reference.
//
// # Reset
//
// A device must be reset whenever the swap chain changes. Reset (or
// OnReset, the native Reset, then OnAfterReset when the caller drives the
// native device directly) tears down the helpers used for copy emulation,
// notifies observers and rebuilds everything under the new presentation
// parameters. Copies and clears issued while the device is in StateReset
// are dropped.
//
// # Copies
//
// CopyResource between two textures is emulated with a textured full-screen
// quad. Only the top mip level is transferred.
package d3d9
