package d3d10

import (
	"fmt"

	"github.com/gogpu/shim"
	"github.com/gogpu/shim/internal/cache"
	"github.com/gogpu/shim/internal/registry"
)

// simultaneousRenderTargets is D3D10_SIMULTANEOUS_RENDER_TARGET_COUNT.
const simultaneousRenderTargets = 8

// Device implements shim.Device on a native Device1.
//
// Unlike the older generation there is no reset: the device is initialized
// once by NewDevice and torn down once by Close.
type Device struct {
	native    Device1
	observers shim.Observers
	caps      shim.Capabilities
	formats   *cache.Memo[Format, FormatSupport]

	resources *registry.Set[Resource]
	views     *registry.Set[View]
	closed    bool
}

var _ shim.Device = (*Device)(nil)

// NewDevice wraps native and notifies observers of the new device and its
// command queue.
func NewDevice(native Device1, opts ...shim.Option) *Device {
	o := shim.ApplyOptions(opts...)
	d := &Device{
		native:    native,
		observers: o.Observers,
		caps:      capabilities(native.FeatureLevel()),
		formats:   cache.New[Format, FormatSupport](o.Config.D3D10.FormatCacheSize),
		resources: registry.New[Resource](),
		views:     registry.New[View](),
	}
	shim.Logger().Info("d3d10: device created",
		"feature_level", native.FeatureLevel(),
		"render_targets", d.caps.MaxRenderTargets)

	d.observers.InitDevice(d)
	d.observers.InitCommandQueue(d)
	return d
}

func capabilities(level FeatureLevel) shim.Capabilities {
	switch {
	case level >= FeatureLevel10_0:
		return shim.Capabilities{
			MaxRenderTargets:   simultaneousRenderTargets,
			SupportsInstancing: true,
			SupportsCubeArrays: level >= FeatureLevel10_1,
		}
	case level >= FeatureLevel9_3:
		return shim.Capabilities{MaxRenderTargets: 4, SupportsInstancing: true}
	default:
		return shim.Capabilities{MaxRenderTargets: 1}
	}
}

// Native returns the wrapped native device.
func (d *Device) Native() Device1 { return d.native }

// NativeResource returns the native resource behind h, or nil when h is not
// live. No reference is added.
func (d *Device) NativeResource(h shim.ResourceHandle) Resource {
	obj, _ := d.resources.Lookup(uint64(h))
	return obj
}

// NativeView returns the native view behind h, or nil when h is not live.
// No reference is added.
func (d *Device) NativeView(h shim.ResourceViewHandle) View {
	obj, _ := d.views.Lookup(uint64(h))
	return obj
}

// API returns shim.APID3D10.
func (d *Device) API() shim.API { return shim.APID3D10 }

// Capabilities returns the capabilities of the native feature level.
func (d *Device) Capabilities() shim.Capabilities { return d.caps }

// CheckFormatSupport cross-checks usage against the native support bits of
// format. The native bits are memoised per format.
func (d *Device) CheckFormatSupport(format uint32, usage shim.Usage) bool {
	if usage.Any(shim.UsageUnorderedAccess) {
		return false
	}

	f := Format(format)
	support := d.formats.GetOrCompute(f, func() FormatSupport {
		s, err := d.native.CheckFormatSupport(f)
		if err != nil {
			shim.Logger().Debug("d3d10: format support query failed", "format", f, "err", err)
			return 0
		}
		return s
	})
	if support == 0 {
		return false
	}

	for _, req := range [...]struct {
		usage   shim.Usage
		support FormatSupport
	}{
		{shim.UsageRenderTarget, SupportRenderTarget},
		{shim.UsageDepthStencil, SupportDepthStencil},
		{shim.UsageShaderResource, SupportShaderSample},
		{shim.UsageResolveSource | shim.UsageResolveDest, SupportMultisampleResolve},
	} {
		if usage.Any(req.usage) && support&req.support == 0 {
			return false
		}
	}
	return true
}

// IsResourceHandleValid reports whether h names a live resource created by
// this device.
func (d *Device) IsResourceHandleValid(h shim.ResourceHandle) bool {
	return d.resources.Has(uint64(h))
}

// IsResourceViewHandleValid reports whether h names a live view created by
// this device.
func (d *Device) IsResourceViewHandleValid(h shim.ResourceViewHandle) bool {
	return d.views.Has(uint64(h))
}

func (d *Device) lookup(h shim.ResourceHandle) Resource {
	obj, ok := d.resources.Lookup(uint64(h))
	if !ok {
		panic(fmt.Sprintf("d3d10: %v: %s", shim.ErrInvalidHandle, h))
	}
	return obj
}

func (d *Device) lookupView(h shim.ResourceViewHandle) View {
	obj, ok := d.views.Lookup(uint64(h))
	if !ok {
		panic(fmt.Sprintf("d3d10: %v: %s", shim.ErrInvalidHandle, h))
	}
	return obj
}

// Flush submits pending native work.
func (d *Device) Flush() {
	d.native.Flush()
}

// Close notifies observers that the command queue and the device are going
// away. Later calls do nothing. The native device is left to the caller.
func (d *Device) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.observers.DestroyCommandQueue(d)
	d.observers.DestroyDevice(d)
	stats := d.formats.Stats()
	d.formats.Reset()
	shim.Logger().Info("d3d10: device closed",
		"live_resources", d.resources.Len(),
		"live_views", d.views.Len(),
		"format_cache_hits", stats.Hits,
		"format_cache_misses", stats.Misses)
}
