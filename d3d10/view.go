package d3d10

// DSVDimension is a D3D10_DSV_DIMENSION value.
type DSVDimension uint32

// Depth-stencil view dimensions.
const (
	DSVDimensionUnknown DSVDimension = iota
	DSVDimensionTexture1D
	DSVDimensionTexture1DArray
	DSVDimensionTexture2D
	DSVDimensionTexture2DArray
	DSVDimensionTexture2DMS
	DSVDimensionTexture2DMSArray
)

// RTVDimension is a D3D10_RTV_DIMENSION value.
type RTVDimension uint32

// Render target view dimensions.
const (
	RTVDimensionUnknown RTVDimension = iota
	RTVDimensionBuffer
	RTVDimensionTexture1D
	RTVDimensionTexture1DArray
	RTVDimensionTexture2D
	RTVDimensionTexture2DArray
	RTVDimensionTexture2DMS
	RTVDimensionTexture2DMSArray
	RTVDimensionTexture3D
)

// SRVDimension is a D3D10_1_SRV_DIMENSION value. The plain descriptor
// accepts every dimension but SRVDimensionTextureCubeArray.
type SRVDimension uint32

// Shader resource view dimensions.
const (
	SRVDimensionUnknown SRVDimension = iota
	SRVDimensionBuffer
	SRVDimensionTexture1D
	SRVDimensionTexture1DArray
	SRVDimensionTexture2D
	SRVDimensionTexture2DArray
	SRVDimensionTexture2DMS
	SRVDimensionTexture2DMSArray
	SRVDimensionTexture3D
	SRVDimensionTextureCube
	SRVDimensionTextureCubeArray
)

// BufferRange selects elements of a buffer.
type BufferRange struct {
	FirstElement uint32
	NumElements  uint32
}

// MipSlice selects one level of a texture.
type MipSlice struct {
	MipSlice uint32
}

// ArraySlice selects one level of a range of array layers.
type ArraySlice struct {
	MipSlice        uint32
	FirstArraySlice uint32
	ArraySize       uint32
}

// MSArraySlice selects a range of layers of a multisampled array.
type MSArraySlice struct {
	FirstArraySlice uint32
	ArraySize       uint32
}

// WSlice selects one level of a range of depth slices.
type WSlice struct {
	MipSlice    uint32
	FirstWSlice uint32
	WSize       uint32
}

// MipRange selects a range of levels.
type MipRange struct {
	MostDetailedMip uint32
	MipLevels       uint32
}

// ArrayMipRange selects a range of levels of a range of array layers.
type ArrayMipRange struct {
	MostDetailedMip uint32
	MipLevels       uint32
	FirstArraySlice uint32
	ArraySize       uint32
}

// CubeArrayMipRange selects a range of levels of a range of cubes.
type CubeArrayMipRange struct {
	MostDetailedMip  uint32
	MipLevels        uint32
	First2DArrayFace uint32
	NumCubes         uint32
}

// DepthStencilViewDesc is a D3D10_DEPTH_STENCIL_VIEW_DESC. Only the member
// selected by ViewDimension is meaningful.
type DepthStencilViewDesc struct {
	Format           Format
	ViewDimension    DSVDimension
	Texture1D        MipSlice
	Texture1DArray   ArraySlice
	Texture2D        MipSlice
	Texture2DArray   ArraySlice
	Texture2DMSArray MSArraySlice
}

// RenderTargetViewDesc is a D3D10_RENDER_TARGET_VIEW_DESC. Only the member
// selected by ViewDimension is meaningful.
type RenderTargetViewDesc struct {
	Format           Format
	ViewDimension    RTVDimension
	Buffer           BufferRange
	Texture1D        MipSlice
	Texture1DArray   ArraySlice
	Texture2D        MipSlice
	Texture2DArray   ArraySlice
	Texture2DMSArray MSArraySlice
	Texture3D        WSlice
}

// ShaderResourceViewDesc is a D3D10_SHADER_RESOURCE_VIEW_DESC. Only the
// member selected by ViewDimension is meaningful.
type ShaderResourceViewDesc struct {
	Format           Format
	ViewDimension    SRVDimension
	Buffer           BufferRange
	Texture1D        MipRange
	Texture1DArray   ArrayMipRange
	Texture2D        MipRange
	Texture2DArray   ArrayMipRange
	Texture2DMSArray MSArraySlice
	Texture3D        MipRange
	TextureCube      MipRange
}

// ShaderResourceViewDesc1 is a D3D10_SHADER_RESOURCE_VIEW_DESC1: the plain
// descriptor extended with cube arrays.
type ShaderResourceViewDesc1 struct {
	ShaderResourceViewDesc
	TextureCubeArray CubeArrayMipRange
}
