// Package d3d10 translates the abstract resource model of package shim to
// the newer native API generation and back.
//
// The native API is described by the interfaces in native.go. A Device
// wraps a Device1 and implements shim.Device on top of it:
//
//	native, err := ref.NewDevice()
//	if err != nil {
//	    return err
//	}
//	dev := d3d10.NewDevice(native, shim.WithObserver(addon))
//	defer dev.Close()
//
// Every view is a distinct native object holding a reference to its
// resource. Shader resource views are always created through the extended
// descriptor, which is the only one able to express cube arrays.
//
// Resources of this generation can always be copied, clears address a view
// directly, and draws with more than one instance use the instanced entry
// points.
package d3d10
