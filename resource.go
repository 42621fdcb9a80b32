package shim

import "fmt"

// ResourceType selects the native creation entry point for a resource.
type ResourceType uint32

// Resource types.
const (
	ResourceTypeUnknown ResourceType = iota
	ResourceTypeBuffer
	ResourceTypeTexture1D
	ResourceTypeTexture2D
	ResourceTypeTexture3D

	// ResourceTypeSurface is a standalone render-target or depth-stencil
	// surface. Only the older API generation has such objects.
	ResourceTypeSurface
)

// String returns the resource type name.
func (t ResourceType) String() string {
	switch t {
	case ResourceTypeBuffer:
		return "Buffer"
	case ResourceTypeTexture1D:
		return "Texture1D"
	case ResourceTypeTexture2D:
		return "Texture2D"
	case ResourceTypeTexture3D:
		return "Texture3D"
	case ResourceTypeSurface:
		return "Surface"
	default:
		return "Unknown"
	}
}

// ResourceDesc is the API-agnostic description of a resource.
//
// Fields that are not meaningful for a shape must be zero: a buffer only
// carries Width (its size in bytes) and Usage. Format is an opaque numeric
// code whose meaning depends on the native API generation.
type ResourceDesc struct {
	Width         uint32
	Height        uint32
	DepthOrLayers uint16
	Levels        uint16
	Format        uint32
	Samples       uint16
	Usage         Usage
}

// String returns a compact description for logging.
func (d ResourceDesc) String() string {
	return fmt.Sprintf("%dx%dx%d levels=%d format=%d samples=%d usage=%s",
		d.Width, d.Height, d.DepthOrLayers, d.Levels, d.Format, d.Samples, d.Usage)
}

// NewBufferDesc returns a descriptor for a linear buffer of size bytes.
func NewBufferDesc(size uint32, usage Usage) ResourceDesc {
	return ResourceDesc{Width: size, Usage: usage}
}

// NewTexture2DDesc returns a descriptor for a single-sampled 2D texture.
func NewTexture2DDesc(width, height uint32, levels uint16, format uint32, usage Usage) ResourceDesc {
	return ResourceDesc{
		Width:         width,
		Height:        height,
		DepthOrLayers: 1,
		Levels:        levels,
		Format:        format,
		Samples:       1,
		Usage:         usage,
	}
}

// ResourceHandle is the identity of a native resource.
// It equals the native object's address and is not an owning reference:
// the native reference count governs the object's lifetime.
type ResourceHandle uint64

// ResourceViewHandle is the identity of a native resource view.
// On the older API generation a view may share its identity with the
// resource it was created from.
type ResourceViewHandle uint64

// NullHandle is the zero handle returned when native creation fails.
const NullHandle = 0

// IsNull reports whether h is the null handle.
func (h ResourceHandle) IsNull() bool { return h == NullHandle }

// IsNull reports whether h is the null handle.
func (h ResourceViewHandle) IsNull() bool { return h == NullHandle }

// String formats the handle as an address.
func (h ResourceHandle) String() string { return fmt.Sprintf("resource(%#x)", uint64(h)) }

// String formats the handle as an address.
func (h ResourceViewHandle) String() string { return fmt.Sprintf("view(%#x)", uint64(h)) }
