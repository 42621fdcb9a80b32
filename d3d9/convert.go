package d3d9

import (
	"fmt"
	"math"

	"github.com/gogpu/shim"
)

// ToUsage updates the render-target and depth-stencil bits of d3dUsage from
// usage, leaving other native bits alone. Copies into a resource go through
// the raster pipeline or StretchRect, both of which need a render target, so
// copy and resolve destinations get USAGE_RENDERTARGET too.
func ToUsage(usage shim.Usage, d3dUsage *Usage) {
	if usage.Any(shim.UsageUnorderedAccess) {
		panic("d3d9: unordered access is not supported")
	}

	if usage.Any(shim.UsageRenderTarget | shim.UsageCopyDest | shim.UsageResolveDest) {
		*d3dUsage |= UsageRenderTarget
	} else {
		*d3dUsage &^= UsageRenderTarget
	}

	if usage.Any(shim.UsageDepthStencil) {
		*d3dUsage |= UsageDepthStencil
	} else {
		*d3dUsage &^= UsageDepthStencil
	}
}

// FromUsage returns the abstract bits a native usage states explicitly.
func FromUsage(d3dUsage Usage) shim.Usage {
	var usage shim.Usage
	if d3dUsage&UsageRenderTarget != 0 {
		usage |= shim.UsageRenderTarget
	}
	if d3dUsage&UsageDepthStencil != 0 {
		usage |= shim.UsageDepthStencil
	}
	return usage
}

// ToVolumeDesc writes desc into internal. When levels is nil the resource
// must have a single level.
func ToVolumeDesc(desc shim.ResourceDesc, internal *VolumeDesc, levels *uint32) {
	if desc.Samples != 1 {
		panic(fmt.Sprintf("d3d9: volume cannot have %d samples", desc.Samples))
	}
	internal.Width = desc.Width
	internal.Height = desc.Height
	internal.Depth = uint32(desc.DepthOrLayers)
	internal.Format = Format(desc.Format)
	ToUsage(desc.Usage, &internal.Usage)
	writeLevels(desc, levels)
}

// ToSurfaceDesc writes desc into internal. It serves standalone surfaces as
// well as 2D and cube textures; the type and pool are left to the caller.
// A nil levels means a standalone surface, which has a single layer.
func ToSurfaceDesc(desc shim.ResourceDesc, internal *SurfaceDesc, levels *uint32) {
	if desc.DepthOrLayers != 1 && (levels == nil || desc.DepthOrLayers != shim.LayersPerCube) {
		panic(fmt.Sprintf("d3d9: surface cannot have %d layers", desc.DepthOrLayers))
	}
	internal.Width = desc.Width
	internal.Height = desc.Height
	internal.Format = Format(desc.Format)
	if desc.Samples > 1 {
		internal.MultiSampleType = MultiSampleType(desc.Samples)
	} else {
		internal.MultiSampleType = MultiSampleNone
	}
	ToUsage(desc.Usage, &internal.Usage)
	writeLevels(desc, levels)
}

func writeLevels(desc shim.ResourceDesc, levels *uint32) {
	if levels != nil {
		*levels = uint32(desc.Levels)
		return
	}
	if desc.Levels != 1 {
		panic(fmt.Sprintf("d3d9: resource without mipmaps cannot have %d levels", desc.Levels))
	}
}

// ToIndexBufferDesc writes a buffer desc with index buffer usage into internal.
func ToIndexBufferDesc(desc shim.ResourceDesc, internal *IndexBufferDesc) {
	checkBufferDesc(desc, shim.UsageIndexBuffer)
	internal.Size = desc.Width
	ToUsage(desc.Usage, &internal.Usage)
}

// ToVertexBufferDesc writes a buffer desc with vertex buffer usage into internal.
func ToVertexBufferDesc(desc shim.ResourceDesc, internal *VertexBufferDesc) {
	checkBufferDesc(desc, shim.UsageVertexBuffer)
	internal.Size = desc.Width
	ToUsage(desc.Usage, &internal.Usage)
}

func checkBufferDesc(desc shim.ResourceDesc, kind shim.Usage) {
	if desc.Height != 0 || desc.DepthOrLayers != 0 || desc.Levels != 0 || desc.Format != 0 || desc.Samples != 0 {
		panic("d3d9: buffer desc has texture fields set: " + desc.String())
	}
	if desc.Usage&(shim.UsageIndexBuffer|shim.UsageVertexBuffer) != kind {
		panic("d3d9: buffer needs exactly one of index and vertex buffer usage, got " + desc.Usage.String())
	}
}

// FromVolumeDesc converts a volume or volume texture level desc.
func FromVolumeDesc(internal VolumeDesc, levels uint32) shim.ResourceDesc {
	if internal.Type != RTypeVolume && internal.Type != RTypeVolumeTexture {
		panic("d3d9: not a volume desc: " + internal.Type.String())
	}
	if internal.Depth > math.MaxUint16 || levels > math.MaxUint16 {
		panic(fmt.Sprintf("d3d9: volume depth %d or levels %d out of range", internal.Depth, levels))
	}
	desc := shim.ResourceDesc{
		Width:         internal.Width,
		Height:        internal.Height,
		DepthOrLayers: uint16(internal.Depth),
		Levels:        uint16(levels),
		Format:        uint32(internal.Format),
		Samples:       1,
		Usage:         FromUsage(internal.Usage),
	}
	if internal.Type == RTypeVolumeTexture {
		desc.Usage |= shim.UsageShaderResource
	}
	return desc
}

// FromSurfaceDesc converts a surface, texture or cube texture level desc.
// Copy and resolve usage is derived from what StretchRect accepts on a
// device with caps.
func FromSurfaceDesc(internal SurfaceDesc, levels uint32, caps Caps) shim.ResourceDesc {
	switch internal.Type {
	case RTypeSurface, RTypeTexture, RTypeCubeTexture:
	default:
		panic("d3d9: not a surface desc: " + internal.Type.String())
	}
	if levels > math.MaxUint16 {
		panic(fmt.Sprintf("d3d9: %d levels out of range", levels))
	}
	desc := shim.ResourceDesc{
		Width:         internal.Width,
		Height:        internal.Height,
		DepthOrLayers: 1,
		Levels:        uint16(levels),
		Format:        uint32(internal.Format),
		Samples:       1,
		Usage:         FromUsage(internal.Usage),
	}
	if internal.Type == RTypeCubeTexture {
		desc.DepthOrLayers = shim.LayersPerCube
	}
	if internal.MultiSampleType >= MultiSample2 {
		desc.Samples = uint16(internal.MultiSampleType)
	}
	if internal.Type == RTypeTexture || internal.Type == RTypeCubeTexture {
		desc.Usage |= shim.UsageShaderResource
	}
	desc.Usage |= stretchUsage(internal, caps)
	return desc
}

// FromIndexBufferDesc converts an index buffer desc.
func FromIndexBufferDesc(internal IndexBufferDesc) shim.ResourceDesc {
	return shim.ResourceDesc{
		Width: internal.Size,
		Usage: FromUsage(internal.Usage) | shim.UsageIndexBuffer,
	}
}

// FromVertexBufferDesc converts a vertex buffer desc.
func FromVertexBufferDesc(internal VertexBufferDesc) shim.ResourceDesc {
	return shim.ResourceDesc{
		Width: internal.Size,
		Usage: FromUsage(internal.Usage) | shim.UsageVertexBuffer,
	}
}
