package shim

// API identifies the native API generation behind a Device.
type API uint32

// Native API generations.
const (
	APIUnknown API = iota
	// APID3D9 is the older generation: surfaces, state blocks, device reset.
	APID3D9
	// APID3D10 is the newer generation: distinct view objects, instancing.
	APID3D10
)

// String returns the API name.
func (a API) String() string {
	switch a {
	case APID3D9:
		return "d3d9"
	case APID3D10:
		return "d3d10"
	default:
		return "unknown"
	}
}

// ClearFlags selects the planes cleared by Device.ClearDepthStencilView.
type ClearFlags uint32

// Clear flags.
const (
	ClearDepth ClearFlags = 1 << iota
	ClearStencil
)

// Capabilities is the public part of a device's capability snapshot.
// It is captured at device creation and, on the older generation,
// rebuilt after every reset.
type Capabilities struct {
	// MaxRenderTargets is the number of simultaneous render target slots.
	MaxRenderTargets int

	// SupportsInstancing reports whether instanced draws are available.
	SupportsInstancing bool

	// SupportsCubeArrays reports whether cube-array views can be created.
	SupportsCubeArrays bool
}

// Device translates abstract resource operations into native calls.
//
// A Device is bound to one native device context and must only be used
// from the thread that owns that context. Creation methods are the only
// operations with a recoverable failure: they return the null handle and a
// non-nil error. Malformed descriptors are programming errors and panic.
type Device interface {
	// API returns the native API generation.
	API() API

	// Capabilities returns the current capability snapshot.
	Capabilities() Capabilities

	// CheckFormatSupport reports whether format can be used with usage.
	// Unordered access is never supported.
	CheckFormatSupport(format uint32, usage Usage) bool

	// IsResourceHandleValid reports whether h is a live resource created
	// or adopted by this device.
	IsResourceHandleValid(h ResourceHandle) bool

	// IsResourceViewHandleValid reports whether h is a live view.
	IsResourceViewHandleValid(h ResourceViewHandle) bool

	// CreateResource creates a native resource of the given type.
	// Registered observers may rewrite desc before creation proceeds.
	CreateResource(typ ResourceType, desc ResourceDesc) (ResourceHandle, error)

	// CreateResourceView creates a view of res.
	CreateResourceView(res ResourceHandle, typ ViewType, desc ResourceViewDesc) (ResourceViewHandle, error)

	// DestroyResource releases the reference returned by CreateResource.
	DestroyResource(h ResourceHandle)

	// DestroyResourceView releases the reference returned by CreateResourceView.
	DestroyResourceView(h ResourceViewHandle)

	// ResourceDesc returns the abstract description of a live resource.
	ResourceDesc(h ResourceHandle) ResourceDesc

	// ResourceFromView returns the resource that owns view.
	ResourceFromView(view ResourceViewHandle) ResourceHandle

	// Draw draws non-indexed primitives.
	Draw(vertices, instances, firstVertex, firstInstance uint32)

	// DrawIndexed draws indexed primitives.
	DrawIndexed(indices, instances, firstIndex uint32, vertexOffset int32, firstInstance uint32)

	// CopyResource copies the contents of src into dst.
	CopyResource(src, dst ResourceHandle)

	// ClearDepthStencilView clears the planes of dsv selected by flags.
	ClearDepthStencilView(dsv ResourceViewHandle, flags ClearFlags, depth float32, stencil uint8)

	// ClearRenderTargetView fills rtv with color.
	ClearRenderTargetView(rtv ResourceViewHandle, color [4]float32)

	// Flush submits pending native work.
	Flush()

	// Close notifies observers of teardown. The native device is not released.
	Close()
}
