package d3d10

import (
	"fmt"

	"github.com/gogpu/shim"
)

// bindTable maps abstract usage bits onto bind flags.
var bindTable = [...]struct {
	usage shim.Usage
	bind  BindFlag
}{
	{shim.UsageRenderTarget, BindRenderTarget},
	{shim.UsageDepthStencil, BindDepthStencil},
	{shim.UsageShaderResource, BindShaderResource},
	{shim.UsageIndexBuffer, BindIndexBuffer},
	{shim.UsageVertexBuffer, BindVertexBuffer},
	{shim.UsageConstantBuffer, BindConstantBuffer},
}

// ToBindFlags updates the bind flags covered by the abstract usage
// vocabulary, leaving stream output alone.
func ToBindFlags(usage shim.Usage, flags *BindFlag) {
	if usage.Any(shim.UsageUnorderedAccess) {
		panic("d3d10: unordered access is not supported")
	}
	for _, e := range bindTable {
		if usage.Any(e.usage) {
			*flags |= e.bind
		} else {
			*flags &^= e.bind
		}
	}
}

// FromBindFlags returns the usage of a resource bound with flags. Every
// resource of this generation can be copied.
func FromBindFlags(flags BindFlag) shim.Usage {
	usage := shim.UsageCopySource | shim.UsageCopyDest
	for _, e := range bindTable {
		if flags&e.bind != 0 {
			usage |= e.usage
		}
	}
	return usage
}

// ToBufferDesc writes desc into internal. Usage, CPU access and misc flags
// are left to the caller.
func ToBufferDesc(desc shim.ResourceDesc, internal *BufferDesc) {
	if desc.Height != 0 || desc.DepthOrLayers != 0 || desc.Levels != 0 || desc.Samples != 0 {
		panic(fmt.Sprintf("d3d10: buffer description has texture fields: %s", desc))
	}
	internal.ByteWidth = desc.Width
	ToBindFlags(desc.Usage, &internal.BindFlags)
}

// FromBufferDesc converts a buffer description.
func FromBufferDesc(internal BufferDesc) shim.ResourceDesc {
	return shim.ResourceDesc{
		Width: internal.ByteWidth,
		Usage: FromBindFlags(internal.BindFlags),
	}
}

// ToTexture1DDesc writes desc into internal. 1D textures have a height of
// one and cannot be multisampled.
func ToTexture1DDesc(desc shim.ResourceDesc, internal *Texture1DDesc) {
	if desc.Height != 1 {
		panic(fmt.Sprintf("d3d10: 1D texture cannot have height %d", desc.Height))
	}
	if desc.Samples != 1 {
		panic(fmt.Sprintf("d3d10: 1D texture cannot have %d samples", desc.Samples))
	}
	internal.Width = desc.Width
	internal.MipLevels = uint32(desc.Levels)
	internal.ArraySize = uint32(desc.DepthOrLayers)
	internal.Format = Format(desc.Format)
	ToBindFlags(desc.Usage, &internal.BindFlags)
}

// FromTexture1DDesc converts a 1D texture description.
func FromTexture1DDesc(internal Texture1DDesc) shim.ResourceDesc {
	return shim.ResourceDesc{
		Width:         internal.Width,
		Height:        1,
		DepthOrLayers: narrow(internal.ArraySize, "array size"),
		Levels:        narrow(internal.MipLevels, "mip levels"),
		Format:        uint32(internal.Format),
		Samples:       1,
		Usage:         FromBindFlags(internal.BindFlags),
	}
}

// ToTexture2DDesc writes desc into internal. The sample quality is left to
// the caller.
func ToTexture2DDesc(desc shim.ResourceDesc, internal *Texture2DDesc) {
	internal.Width = desc.Width
	internal.Height = desc.Height
	internal.MipLevels = uint32(desc.Levels)
	internal.ArraySize = uint32(desc.DepthOrLayers)
	internal.Format = Format(desc.Format)
	internal.SampleDesc.Count = uint32(desc.Samples)
	ToBindFlags(desc.Usage, &internal.BindFlags)
}

// FromTexture2DDesc converts a 2D texture description. Multisampled
// textures can be resolved from, the others resolved into.
func FromTexture2DDesc(internal Texture2DDesc) shim.ResourceDesc {
	desc := shim.ResourceDesc{
		Width:         internal.Width,
		Height:        internal.Height,
		DepthOrLayers: narrow(internal.ArraySize, "array size"),
		Levels:        narrow(internal.MipLevels, "mip levels"),
		Format:        uint32(internal.Format),
		Samples:       narrow(internal.SampleDesc.Count, "sample count"),
		Usage:         FromBindFlags(internal.BindFlags),
	}
	if desc.Samples > 1 {
		desc.Usage |= shim.UsageResolveSource
	} else {
		desc.Usage |= shim.UsageResolveDest
	}
	return desc
}

// ToTexture3DDesc writes desc into internal. Volumes cannot be
// multisampled.
func ToTexture3DDesc(desc shim.ResourceDesc, internal *Texture3DDesc) {
	if desc.Samples != 1 {
		panic(fmt.Sprintf("d3d10: volume cannot have %d samples", desc.Samples))
	}
	internal.Width = desc.Width
	internal.Height = desc.Height
	internal.Depth = uint32(desc.DepthOrLayers)
	internal.MipLevels = uint32(desc.Levels)
	internal.Format = Format(desc.Format)
	ToBindFlags(desc.Usage, &internal.BindFlags)
}

// FromTexture3DDesc converts a volume texture description.
func FromTexture3DDesc(internal Texture3DDesc) shim.ResourceDesc {
	return shim.ResourceDesc{
		Width:         internal.Width,
		Height:        internal.Height,
		DepthOrLayers: narrow(internal.Depth, "depth"),
		Levels:        narrow(internal.MipLevels, "mip levels"),
		Format:        uint32(internal.Format),
		Samples:       1,
		Usage:         FromBindFlags(internal.BindFlags),
	}
}

func narrow(v uint32, what string) uint16 {
	if v > 0xffff {
		panic(fmt.Sprintf("d3d10: %s %d does not fit the abstract description", what, v))
	}
	return uint16(v)
}

// checkAttachment panics unless desc is a valid depth-stencil or render
// target view description.
func checkAttachment(desc shim.ResourceViewDesc) {
	if desc.Dimension == shim.ViewDimensionBuffer {
		panic("d3d10: attachment views cannot have buffer dimension")
	}
	if desc.Levels != 1 {
		panic(fmt.Sprintf("d3d10: attachment views cover one level, got %d", desc.Levels))
	}
}

// ToDepthStencilViewDesc writes desc into internal. With an unknown
// dimension only the format is written.
func ToDepthStencilViewDesc(desc shim.ResourceViewDesc, internal *DepthStencilViewDesc) {
	checkAttachment(desc)
	internal.Format = Format(desc.Format)
	switch desc.Dimension {
	case shim.ViewDimensionUnknown:
	case shim.ViewDimensionTexture1D:
		internal.ViewDimension = DSVDimensionTexture1D
		internal.Texture1D.MipSlice = desc.FirstLevel
	case shim.ViewDimensionTexture1DArray:
		internal.ViewDimension = DSVDimensionTexture1DArray
		internal.Texture1DArray = ArraySlice{desc.FirstLevel, desc.FirstLayer, desc.Layers}
	case shim.ViewDimensionTexture2D:
		internal.ViewDimension = DSVDimensionTexture2D
		internal.Texture2D.MipSlice = desc.FirstLevel
	case shim.ViewDimensionTexture2DArray:
		internal.ViewDimension = DSVDimensionTexture2DArray
		internal.Texture2DArray = ArraySlice{desc.FirstLevel, desc.FirstLayer, desc.Layers}
	case shim.ViewDimensionTexture2DMultisample:
		internal.ViewDimension = DSVDimensionTexture2DMS
	case shim.ViewDimensionTexture2DMultisampleArray:
		internal.ViewDimension = DSVDimensionTexture2DMSArray
		internal.Texture2DMSArray = MSArraySlice{desc.FirstLayer, desc.Layers}
	default:
		panic("d3d10: depth-stencil view cannot have dimension " + desc.Dimension.String())
	}
}

// FromDepthStencilViewDesc converts a depth-stencil view description.
// Views of a single layer report one layer.
func FromDepthStencilViewDesc(internal DepthStencilViewDesc) shim.ResourceViewDesc {
	desc := shim.ResourceViewDesc{Format: uint32(internal.Format), Levels: 1}
	switch internal.ViewDimension {
	case DSVDimensionTexture1D:
		desc.Dimension = shim.ViewDimensionTexture1D
		desc.FirstLevel = internal.Texture1D.MipSlice
		desc.Layers = 1
	case DSVDimensionTexture1DArray:
		desc.Dimension = shim.ViewDimensionTexture1DArray
		fromArraySlice(internal.Texture1DArray, &desc)
	case DSVDimensionTexture2D:
		desc.Dimension = shim.ViewDimensionTexture2D
		desc.FirstLevel = internal.Texture2D.MipSlice
		desc.Layers = 1
	case DSVDimensionTexture2DArray:
		desc.Dimension = shim.ViewDimensionTexture2DArray
		fromArraySlice(internal.Texture2DArray, &desc)
	case DSVDimensionTexture2DMS:
		desc.Dimension = shim.ViewDimensionTexture2DMultisample
		desc.Layers = 1
	case DSVDimensionTexture2DMSArray:
		desc.Dimension = shim.ViewDimensionTexture2DMultisampleArray
		desc.FirstLayer = internal.Texture2DMSArray.FirstArraySlice
		desc.Layers = internal.Texture2DMSArray.ArraySize
	}
	return desc
}

// ToRenderTargetViewDesc writes desc into internal. With an unknown
// dimension only the format is written.
func ToRenderTargetViewDesc(desc shim.ResourceViewDesc, internal *RenderTargetViewDesc) {
	checkAttachment(desc)
	internal.Format = Format(desc.Format)
	switch desc.Dimension {
	case shim.ViewDimensionUnknown:
	case shim.ViewDimensionTexture1D:
		internal.ViewDimension = RTVDimensionTexture1D
		internal.Texture1D.MipSlice = desc.FirstLevel
	case shim.ViewDimensionTexture1DArray:
		internal.ViewDimension = RTVDimensionTexture1DArray
		internal.Texture1DArray = ArraySlice{desc.FirstLevel, desc.FirstLayer, desc.Layers}
	case shim.ViewDimensionTexture2D:
		internal.ViewDimension = RTVDimensionTexture2D
		internal.Texture2D.MipSlice = desc.FirstLevel
	case shim.ViewDimensionTexture2DArray:
		internal.ViewDimension = RTVDimensionTexture2DArray
		internal.Texture2DArray = ArraySlice{desc.FirstLevel, desc.FirstLayer, desc.Layers}
	case shim.ViewDimensionTexture2DMultisample:
		internal.ViewDimension = RTVDimensionTexture2DMS
	case shim.ViewDimensionTexture2DMultisampleArray:
		internal.ViewDimension = RTVDimensionTexture2DMSArray
		internal.Texture2DMSArray = MSArraySlice{desc.FirstLayer, desc.Layers}
	case shim.ViewDimensionTexture3D:
		internal.ViewDimension = RTVDimensionTexture3D
		internal.Texture3D = WSlice{desc.FirstLevel, desc.FirstLayer, desc.Layers}
	default:
		panic("d3d10: render target view cannot have dimension " + desc.Dimension.String())
	}
}

// FromRenderTargetViewDesc converts a render target view description.
// Buffer views have no abstract form and convert to an unknown dimension.
func FromRenderTargetViewDesc(internal RenderTargetViewDesc) shim.ResourceViewDesc {
	desc := shim.ResourceViewDesc{Format: uint32(internal.Format), Levels: 1}
	switch internal.ViewDimension {
	case RTVDimensionTexture1D:
		desc.Dimension = shim.ViewDimensionTexture1D
		desc.FirstLevel = internal.Texture1D.MipSlice
		desc.Layers = 1
	case RTVDimensionTexture1DArray:
		desc.Dimension = shim.ViewDimensionTexture1DArray
		fromArraySlice(internal.Texture1DArray, &desc)
	case RTVDimensionTexture2D:
		desc.Dimension = shim.ViewDimensionTexture2D
		desc.FirstLevel = internal.Texture2D.MipSlice
		desc.Layers = 1
	case RTVDimensionTexture2DArray:
		desc.Dimension = shim.ViewDimensionTexture2DArray
		fromArraySlice(internal.Texture2DArray, &desc)
	case RTVDimensionTexture2DMS:
		desc.Dimension = shim.ViewDimensionTexture2DMultisample
		desc.Layers = 1
	case RTVDimensionTexture2DMSArray:
		desc.Dimension = shim.ViewDimensionTexture2DMultisampleArray
		desc.FirstLayer = internal.Texture2DMSArray.FirstArraySlice
		desc.Layers = internal.Texture2DMSArray.ArraySize
	case RTVDimensionTexture3D:
		desc.Dimension = shim.ViewDimensionTexture3D
		desc.FirstLevel = internal.Texture3D.MipSlice
		desc.FirstLayer = internal.Texture3D.FirstWSlice
		desc.Layers = internal.Texture3D.WSize
	}
	return desc
}

func fromArraySlice(a ArraySlice, desc *shim.ResourceViewDesc) {
	desc.FirstLevel = a.MipSlice
	desc.FirstLayer = a.FirstArraySlice
	desc.Layers = a.ArraySize
}

// ToShaderResourceViewDesc writes desc into internal. With an unknown
// dimension only the format is written. Cube arrays need the extended
// descriptor, see ToShaderResourceViewDesc1.
func ToShaderResourceViewDesc(desc shim.ResourceViewDesc, internal *ShaderResourceViewDesc) {
	internal.Format = Format(desc.Format)
	switch desc.Dimension {
	case shim.ViewDimensionUnknown:
	case shim.ViewDimensionBuffer:
		if desc.FirstLayer != 0 || desc.Layers != 0 {
			panic("d3d10: buffer views have no layers")
		}
		internal.ViewDimension = SRVDimensionBuffer
		internal.Buffer = BufferRange{desc.FirstElement(), desc.ElementCount()}
	case shim.ViewDimensionTexture1D:
		internal.ViewDimension = SRVDimensionTexture1D
		internal.Texture1D = MipRange{desc.FirstLevel, desc.Levels}
	case shim.ViewDimensionTexture1DArray:
		internal.ViewDimension = SRVDimensionTexture1DArray
		internal.Texture1DArray = ArrayMipRange{desc.FirstLevel, desc.Levels, desc.FirstLayer, desc.Layers}
	case shim.ViewDimensionTexture2D:
		internal.ViewDimension = SRVDimensionTexture2D
		internal.Texture2D = MipRange{desc.FirstLevel, desc.Levels}
	case shim.ViewDimensionTexture2DArray:
		internal.ViewDimension = SRVDimensionTexture2DArray
		internal.Texture2DArray = ArrayMipRange{desc.FirstLevel, desc.Levels, desc.FirstLayer, desc.Layers}
	case shim.ViewDimensionTexture2DMultisample:
		internal.ViewDimension = SRVDimensionTexture2DMS
	case shim.ViewDimensionTexture2DMultisampleArray:
		internal.ViewDimension = SRVDimensionTexture2DMSArray
		internal.Texture2DMSArray = MSArraySlice{desc.FirstLayer, desc.Layers}
	case shim.ViewDimensionTexture3D:
		internal.ViewDimension = SRVDimensionTexture3D
		internal.Texture3D = MipRange{desc.FirstLevel, desc.Levels}
	case shim.ViewDimensionTextureCube:
		internal.ViewDimension = SRVDimensionTextureCube
		internal.TextureCube = MipRange{desc.FirstLevel, desc.Levels}
	default:
		panic("d3d10: shader resource view cannot have dimension " + desc.Dimension.String())
	}
}

// FromShaderResourceViewDesc converts a shader resource view description.
// Volumes report no layers and cubes report six.
func FromShaderResourceViewDesc(internal ShaderResourceViewDesc) shim.ResourceViewDesc {
	desc := shim.ResourceViewDesc{Format: uint32(internal.Format)}
	switch internal.ViewDimension {
	case SRVDimensionBuffer:
		desc.Dimension = shim.ViewDimensionBuffer
		desc.FirstLevel = internal.Buffer.FirstElement
		desc.Levels = internal.Buffer.NumElements
	case SRVDimensionTexture1D:
		desc.Dimension = shim.ViewDimensionTexture1D
		fromMipRange(internal.Texture1D, &desc)
		desc.Layers = 1
	case SRVDimensionTexture1DArray:
		desc.Dimension = shim.ViewDimensionTexture1DArray
		fromArrayMipRange(internal.Texture1DArray, &desc)
	case SRVDimensionTexture2D:
		desc.Dimension = shim.ViewDimensionTexture2D
		fromMipRange(internal.Texture2D, &desc)
		desc.Layers = 1
	case SRVDimensionTexture2DArray:
		desc.Dimension = shim.ViewDimensionTexture2DArray
		fromArrayMipRange(internal.Texture2DArray, &desc)
	case SRVDimensionTexture2DMS:
		desc.Dimension = shim.ViewDimensionTexture2DMultisample
		desc.Levels = 1
		desc.Layers = 1
	case SRVDimensionTexture2DMSArray:
		desc.Dimension = shim.ViewDimensionTexture2DMultisampleArray
		desc.Levels = 1
		desc.FirstLayer = internal.Texture2DMSArray.FirstArraySlice
		desc.Layers = internal.Texture2DMSArray.ArraySize
	case SRVDimensionTexture3D:
		desc.Dimension = shim.ViewDimensionTexture3D
		fromMipRange(internal.Texture3D, &desc)
	case SRVDimensionTextureCube:
		desc.Dimension = shim.ViewDimensionTextureCube
		fromMipRange(internal.TextureCube, &desc)
		desc.Layers = shim.LayersPerCube
	}
	return desc
}

func fromMipRange(m MipRange, desc *shim.ResourceViewDesc) {
	desc.FirstLevel = m.MostDetailedMip
	desc.Levels = m.MipLevels
}

func fromArrayMipRange(a ArrayMipRange, desc *shim.ResourceViewDesc) {
	desc.FirstLevel = a.MostDetailedMip
	desc.Levels = a.MipLevels
	desc.FirstLayer = a.FirstArraySlice
	desc.Layers = a.ArraySize
}

// ToShaderResourceViewDesc1 writes desc into the extended descriptor. Cube
// arrays are stored as a count of whole cubes; a partial cube in desc.Layers
// is dropped and range checks are left to the native device.
func ToShaderResourceViewDesc1(desc shim.ResourceViewDesc, internal *ShaderResourceViewDesc1) {
	if desc.Dimension != shim.ViewDimensionTextureCubeArray {
		ToShaderResourceViewDesc(desc, &internal.ShaderResourceViewDesc)
		return
	}
	internal.Format = Format(desc.Format)
	internal.ViewDimension = SRVDimensionTextureCubeArray
	internal.TextureCubeArray = CubeArrayMipRange{
		MostDetailedMip:  desc.FirstLevel,
		MipLevels:        desc.Levels,
		First2DArrayFace: desc.FirstLayer,
		NumCubes:         desc.Layers / shim.LayersPerCube,
	}
}

// FromShaderResourceViewDesc1 converts an extended shader resource view
// description.
func FromShaderResourceViewDesc1(internal ShaderResourceViewDesc1) shim.ResourceViewDesc {
	if internal.ViewDimension != SRVDimensionTextureCubeArray {
		return FromShaderResourceViewDesc(internal.ShaderResourceViewDesc)
	}
	c := internal.TextureCubeArray
	return shim.ResourceViewDesc{
		Dimension:  shim.ViewDimensionTextureCubeArray,
		Format:     uint32(internal.Format),
		FirstLevel: c.MostDetailedMip,
		Levels:     c.MipLevels,
		FirstLayer: c.First2DArrayFace,
		Layers:     c.NumCubes * shim.LayersPerCube,
	}
}
