package d3d9

import (
	"fmt"

	"github.com/gogpu/shim"
	"github.com/gogpu/shim/internal/cache"
	"github.com/gogpu/shim/internal/registry"
)

// maxRenderTargets is the most render target slots the device ever touches.
// Drivers of this generation rarely expose more than four.
const maxRenderTargets = 8

// Device implements shim.Device on a native Device9.
//
// Device follows the native threading contract: it must only be used from
// the thread owning the native device.
type Device struct {
	native    Device9
	d3d       Direct3D9
	cfg       shim.D3D9Config
	observers shim.Observers

	// Capability snapshot, rebuilt on every reset.
	caps    Caps
	cp      CreationParameters
	formats *cache.Memo[formatQuery, bool]

	resources *registry.Set[Resource9]
	parents   map[uint64]uint64   // sub-surface -> owning texture
	children  map[uint64][]uint64 // owning texture -> sub-surfaces
	implicit  []uint64            // objects owned by the swap chain

	copyState StateBlock9
	backup    backupState
	state     State
}

var _ shim.Device = (*Device)(nil)

type formatQuery struct {
	format Format
	usage  Usage
}

// NewDevice wraps native. It builds the copy helpers and notifies observers
// as if the device had just been reset, using the parameters of the
// implicit swap chain.
func NewDevice(native Device9, opts ...shim.Option) (*Device, error) {
	o := shim.ApplyOptions(opts...)
	if err := o.Config.Validate(); err != nil {
		return nil, fmt.Errorf("d3d9: create device: %w", err)
	}
	d := &Device{
		native:    native,
		d3d:       native.Direct3D(),
		cfg:       o.Config.D3D9,
		observers: o.Observers,
		formats:   cache.New[formatQuery, bool](o.Config.D3D9.FormatCacheSize),
		resources: registry.New[Resource9](),
		parents:   make(map[uint64]uint64),
		children:  make(map[uint64][]uint64),
		backup:    backupState{device: native},
		state:     StateReset,
	}
	if err := d.OnAfterReset(native.PresentParameters()); err != nil {
		return nil, fmt.Errorf("d3d9: create device: %w", err)
	}
	shim.Logger().Info("d3d9: device created",
		"device_type", d.cp.DeviceType,
		"render_targets", d.caps.NumSimultaneousRTs)
	return d, nil
}

// Native returns the wrapped native device.
func (d *Device) Native() Device9 { return d.native }

// NativeResource returns the native object behind a resource or view
// handle, or nil when h is not live. No reference is added.
func (d *Device) NativeResource(h shim.ResourceHandle) Resource9 {
	obj, _ := d.resources.Lookup(uint64(h))
	return obj
}

// API returns shim.APID3D9.
func (d *Device) API() shim.API { return shim.APID3D9 }

// State returns the reset state.
func (d *Device) State() State { return d.state }

// Caps returns the capability snapshot taken at the last reset.
func (d *Device) Caps() Caps { return d.caps }

// Capabilities implements shim.Device.
func (d *Device) Capabilities() shim.Capabilities {
	return shim.Capabilities{MaxRenderTargets: int(d.caps.NumSimultaneousRTs)}
}

// snapshot refreshes the capability snapshot from the native device.
func (d *Device) snapshot() {
	d.caps = d.native.DeviceCaps()
	limit := uint32(max(min(d.cfg.MaxRenderTargets, maxRenderTargets), 1))
	if d.caps.NumSimultaneousRTs > limit {
		d.caps.NumSimultaneousRTs = limit
	}
	d.cp = d.native.CreationParameters()
	d.formats.Reset()
}

// CheckFormatSupport reports whether textures of format can be created with
// usage. The native query is made relative to the configured adapter format
// and its answers are memoised until the next reset.
func (d *Device) CheckFormatSupport(format uint32, usage shim.Usage) bool {
	if usage.Any(shim.UsageUnorderedAccess) {
		return false
	}

	var d3dUsage Usage
	ToUsage(usage, &d3dUsage)

	q := formatQuery{format: Format(format), usage: d3dUsage}
	return d.formats.GetOrCompute(q, func() bool {
		err := d.d3d.CheckDeviceFormat(d.cp.AdapterOrdinal, d.cp.DeviceType,
			Format(d.cfg.AdapterFormat), d3dUsage, RTypeTexture, q.format)
		if err != nil {
			shim.Logger().Debug("d3d9: format not supported", "format", q.format, "usage", usage, "err", err)
			return false
		}
		return true
	})
}

// IsResourceHandleValid reports whether h names a live resource created or
// tracked by this device.
func (d *Device) IsResourceHandleValid(h shim.ResourceHandle) bool {
	return d.resources.Has(uint64(h))
}

// IsResourceViewHandleValid reports whether h names a live view. Views
// share the identity space of resources.
func (d *Device) IsResourceViewHandleValid(h shim.ResourceViewHandle) bool {
	return d.resources.Has(uint64(h))
}

func (d *Device) register(obj Resource9) uint64 {
	h := uint64(obj.Ptr())
	d.resources.Register(h, obj)
	return h
}

// registerChild tracks a level or face surface of parent so that it is
// forgotten together with its container.
func (d *Device) registerChild(parent uint64, s Surface9) uint64 {
	h := uint64(s.Ptr())
	if d.resources.Has(h) {
		return h
	}
	d.resources.Register(h, s)
	d.parents[h] = parent
	d.children[parent] = append(d.children[parent], h)
	return h
}

func (d *Device) unregisterTree(h uint64) {
	for _, c := range d.children[h] {
		d.resources.Unregister(c)
		delete(d.parents, c)
	}
	delete(d.children, h)
	d.resources.Unregister(h)
}

func (d *Device) lookup(h uint64) Resource9 {
	obj, ok := d.resources.Lookup(h)
	if !ok {
		panic(fmt.Sprintf("d3d9: %v: %#x", shim.ErrInvalidHandle, h))
	}
	return obj
}

func (d *Device) lookupSurface(h uint64) Surface9 {
	s, ok := d.lookup(h).(Surface9)
	if !ok {
		panic(fmt.Sprintf("d3d9: handle %#x is not a surface", h))
	}
	return s
}

// release drops one native reference of h and forgets h, along with the
// surfaces tied to the same container, once the object is gone.
func (d *Device) release(h uint64) {
	if d.lookup(h).Release() != 0 {
		return
	}
	if p, ok := d.parents[h]; ok {
		h = p
	}
	d.unregisterTree(h)
}

// Flush is a no-op: this generation submits work implicitly.
func (d *Device) Flush() {}

// Close tears the device down as for a reset. The native device is left to
// the caller.
func (d *Device) Close() {
	d.OnReset()
}
