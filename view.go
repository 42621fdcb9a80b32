package shim

import "math"

// ViewType selects the pipeline stage a view is created for.
type ViewType uint32

// View types.
const (
	ViewTypeUnknown ViewType = iota
	ViewTypeDepthStencil
	ViewTypeRenderTarget
	ViewTypeShaderResource
	ViewTypeUnorderedAccess
)

// String returns the view type name.
func (t ViewType) String() string {
	switch t {
	case ViewTypeDepthStencil:
		return "DepthStencil"
	case ViewTypeRenderTarget:
		return "RenderTarget"
	case ViewTypeShaderResource:
		return "ShaderResource"
	case ViewTypeUnorderedAccess:
		return "UnorderedAccess"
	default:
		return "Unknown"
	}
}

// ViewDimension describes how a view interprets its resource.
type ViewDimension uint32

// View dimensions.
const (
	// ViewDimensionUnknown leaves every dimension-specific field of a
	// native view descriptor untouched during conversion.
	ViewDimensionUnknown ViewDimension = iota
	ViewDimensionBuffer
	ViewDimensionTexture1D
	ViewDimensionTexture1DArray
	ViewDimensionTexture2D
	ViewDimensionTexture2DArray
	ViewDimensionTexture2DMultisample
	ViewDimensionTexture2DMultisampleArray
	ViewDimensionTexture3D
	ViewDimensionTextureCube
	ViewDimensionTextureCubeArray
)

var viewDimensionNames = [...]string{
	"Unknown",
	"Buffer",
	"Texture1D",
	"Texture1DArray",
	"Texture2D",
	"Texture2DArray",
	"Texture2DMultisample",
	"Texture2DMultisampleArray",
	"Texture3D",
	"TextureCube",
	"TextureCubeArray",
}

// String returns the dimension name.
func (d ViewDimension) String() string {
	if int(d) < len(viewDimensionNames) {
		return viewDimensionNames[d]
	}
	return "Unknown"
}

// LayersPerCube is the number of array layers making up one cube.
const LayersPerCube = 6

// AllLevels and AllLayers select every remaining level or layer.
const (
	AllLevels = math.MaxUint32
	AllLayers = math.MaxUint32
)

// ResourceViewDesc is the API-agnostic description of a resource view.
//
// When Dimension is ViewDimensionBuffer, FirstLevel and Levels hold the
// first element and the element count, and both layer fields must be zero.
// Depth-stencil and render-target views never use the buffer dimension and
// always have Levels == 1.
type ResourceViewDesc struct {
	Dimension  ViewDimension
	Format     uint32
	FirstLevel uint32
	Levels     uint32
	FirstLayer uint32
	Layers     uint32
}

// NewBufferViewDesc returns a buffer view over count elements starting at first.
func NewBufferViewDesc(format uint32, first, count uint32) ResourceViewDesc {
	return ResourceViewDesc{
		Dimension:  ViewDimensionBuffer,
		Format:     format,
		FirstLevel: first,
		Levels:     count,
	}
}

// NewTexture2DViewDesc returns a view of levels mips starting at firstLevel.
func NewTexture2DViewDesc(format uint32, firstLevel, levels uint32) ResourceViewDesc {
	return ResourceViewDesc{
		Dimension:  ViewDimensionTexture2D,
		Format:     format,
		FirstLevel: firstLevel,
		Levels:     levels,
		Layers:     1,
	}
}

// FirstElement returns the first element of a buffer view.
func (d ResourceViewDesc) FirstElement() uint32 { return d.FirstLevel }

// ElementCount returns the element count of a buffer view.
func (d ResourceViewDesc) ElementCount() uint32 { return d.Levels }
