package d3d10

import "fmt"

// Format is a DXGI_FORMAT value.
type Format uint32

// Formats.
const (
	FmtUnknown              Format = 0
	FmtR32G32B32A32Typeless Format = 1
	FmtR32G32B32A32Float    Format = 2
	FmtR16G16B16A16Typeless Format = 9
	FmtR16G16B16A16Float    Format = 10
	FmtR16G16B16A16Unorm    Format = 11
	FmtR32G32Float          Format = 16
	FmtR32G8X24Typeless     Format = 19
	FmtD32FloatS8X24Uint    Format = 20
	FmtR10G10B10A2Unorm     Format = 24
	FmtR11G11B10Float       Format = 26
	FmtR8G8B8A8Typeless     Format = 27
	FmtR8G8B8A8Unorm        Format = 28
	FmtR8G8B8A8UnormSRGB    Format = 29
	FmtR16G16Float          Format = 34
	FmtR16G16Unorm          Format = 35
	FmtR32Typeless          Format = 39
	FmtD32Float             Format = 40
	FmtR32Float             Format = 41
	FmtR32Uint              Format = 42
	FmtR24G8Typeless        Format = 44
	FmtD24UnormS8Uint       Format = 45
	FmtR24UnormX8Typeless   Format = 46
	FmtR8G8Unorm            Format = 49
	FmtR16Typeless          Format = 53
	FmtR16Float             Format = 54
	FmtD16Unorm             Format = 55
	FmtR16Unorm             Format = 56
	FmtR16Uint              Format = 57
	FmtR8Unorm              Format = 61
	FmtA8Unorm              Format = 65
	FmtBC1Unorm             Format = 71
	FmtBC1UnormSRGB         Format = 72
	FmtBC2Unorm             Format = 74
	FmtBC3Unorm             Format = 77
	FmtBC4Unorm             Format = 80
	FmtBC5Unorm             Format = 83
	FmtB5G6R5Unorm          Format = 85
	FmtB8G8R8A8Unorm        Format = 87
	FmtB8G8R8X8Unorm        Format = 88
	FmtB8G8R8A8UnormSRGB    Format = 91
)

var formatNames = map[Format]string{
	FmtUnknown:              "UNKNOWN",
	FmtR32G32B32A32Typeless: "R32G32B32A32_TYPELESS",
	FmtR32G32B32A32Float:    "R32G32B32A32_FLOAT",
	FmtR16G16B16A16Typeless: "R16G16B16A16_TYPELESS",
	FmtR16G16B16A16Float:    "R16G16B16A16_FLOAT",
	FmtR16G16B16A16Unorm:    "R16G16B16A16_UNORM",
	FmtR32G32Float:          "R32G32_FLOAT",
	FmtR32G8X24Typeless:     "R32G8X24_TYPELESS",
	FmtD32FloatS8X24Uint:    "D32_FLOAT_S8X24_UINT",
	FmtR10G10B10A2Unorm:     "R10G10B10A2_UNORM",
	FmtR11G11B10Float:       "R11G11B10_FLOAT",
	FmtR8G8B8A8Typeless:     "R8G8B8A8_TYPELESS",
	FmtR8G8B8A8Unorm:        "R8G8B8A8_UNORM",
	FmtR8G8B8A8UnormSRGB:    "R8G8B8A8_UNORM_SRGB",
	FmtR16G16Float:          "R16G16_FLOAT",
	FmtR16G16Unorm:          "R16G16_UNORM",
	FmtR32Typeless:          "R32_TYPELESS",
	FmtD32Float:             "D32_FLOAT",
	FmtR32Float:             "R32_FLOAT",
	FmtR32Uint:              "R32_UINT",
	FmtR24G8Typeless:        "R24G8_TYPELESS",
	FmtD24UnormS8Uint:       "D24_UNORM_S8_UINT",
	FmtR24UnormX8Typeless:   "R24_UNORM_X8_TYPELESS",
	FmtR8G8Unorm:            "R8G8_UNORM",
	FmtR16Typeless:          "R16_TYPELESS",
	FmtR16Float:             "R16_FLOAT",
	FmtD16Unorm:             "D16_UNORM",
	FmtR16Unorm:             "R16_UNORM",
	FmtR16Uint:              "R16_UINT",
	FmtR8Unorm:              "R8_UNORM",
	FmtA8Unorm:              "A8_UNORM",
	FmtBC1Unorm:             "BC1_UNORM",
	FmtBC1UnormSRGB:         "BC1_UNORM_SRGB",
	FmtBC2Unorm:             "BC2_UNORM",
	FmtBC3Unorm:             "BC3_UNORM",
	FmtBC4Unorm:             "BC4_UNORM",
	FmtBC5Unorm:             "BC5_UNORM",
	FmtB5G6R5Unorm:          "B5G6R5_UNORM",
	FmtB8G8R8A8Unorm:        "B8G8R8A8_UNORM",
	FmtB8G8R8X8Unorm:        "B8G8R8X8_UNORM",
	FmtB8G8R8A8UnormSRGB:    "B8G8R8A8_UNORM_SRGB",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", uint32(f))
}

// BindFlag is a D3D10_BIND_FLAG set.
type BindFlag uint32

// Bind flags.
const (
	BindVertexBuffer   BindFlag = 0x1
	BindIndexBuffer    BindFlag = 0x2
	BindConstantBuffer BindFlag = 0x4
	BindShaderResource BindFlag = 0x8
	BindStreamOutput   BindFlag = 0x10
	BindRenderTarget   BindFlag = 0x20
	BindDepthStencil   BindFlag = 0x40
)

// Usage is a D3D10_USAGE value.
type Usage uint32

// Usages.
const (
	UsageDefault Usage = iota
	UsageImmutable
	UsageDynamic
	UsageStaging
)

// CPUAccessFlag is a D3D10_CPU_ACCESS_FLAG set.
type CPUAccessFlag uint32

// CPU access flags.
const (
	CPUAccessWrite CPUAccessFlag = 0x10000
	CPUAccessRead  CPUAccessFlag = 0x20000
)

// ResourceMiscFlag is a D3D10_RESOURCE_MISC_FLAG set.
type ResourceMiscFlag uint32

// Misc flags.
const (
	MiscGenerateMips ResourceMiscFlag = 0x1
	MiscShared       ResourceMiscFlag = 0x2
	MiscTextureCube  ResourceMiscFlag = 0x4
)

// ResourceDimension is a D3D10_RESOURCE_DIMENSION value.
type ResourceDimension uint32

// Resource dimensions.
const (
	DimensionUnknown ResourceDimension = iota
	DimensionBuffer
	DimensionTexture1D
	DimensionTexture2D
	DimensionTexture3D
)

func (d ResourceDimension) String() string {
	switch d {
	case DimensionBuffer:
		return "BUFFER"
	case DimensionTexture1D:
		return "TEXTURE1D"
	case DimensionTexture2D:
		return "TEXTURE2D"
	case DimensionTexture3D:
		return "TEXTURE3D"
	default:
		return "UNKNOWN"
	}
}

// SampleDesc is a DXGI_SAMPLE_DESC.
type SampleDesc struct {
	Count   uint32
	Quality uint32
}

// BufferDesc is a D3D10_BUFFER_DESC.
type BufferDesc struct {
	ByteWidth      uint32
	Usage          Usage
	BindFlags      BindFlag
	CPUAccessFlags CPUAccessFlag
	MiscFlags      ResourceMiscFlag
}

// Texture1DDesc is a D3D10_TEXTURE1D_DESC.
type Texture1DDesc struct {
	Width          uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         Format
	Usage          Usage
	BindFlags      BindFlag
	CPUAccessFlags CPUAccessFlag
	MiscFlags      ResourceMiscFlag
}

// Texture2DDesc is a D3D10_TEXTURE2D_DESC.
type Texture2DDesc struct {
	Width          uint32
	Height         uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         Format
	SampleDesc     SampleDesc
	Usage          Usage
	BindFlags      BindFlag
	CPUAccessFlags CPUAccessFlag
	MiscFlags      ResourceMiscFlag
}

// Texture3DDesc is a D3D10_TEXTURE3D_DESC.
type Texture3DDesc struct {
	Width          uint32
	Height         uint32
	Depth          uint32
	MipLevels      uint32
	Format         Format
	Usage          Usage
	BindFlags      BindFlag
	CPUAccessFlags CPUAccessFlag
	MiscFlags      ResourceMiscFlag
}

// FormatSupport is a D3D10_FORMAT_SUPPORT set.
type FormatSupport uint32

// Format support bits.
const (
	SupportBuffer             FormatSupport = 0x1
	SupportIAVertexBuffer     FormatSupport = 0x2
	SupportIAIndexBuffer      FormatSupport = 0x4
	SupportTexture1D          FormatSupport = 0x10
	SupportTexture2D          FormatSupport = 0x20
	SupportTexture3D          FormatSupport = 0x40
	SupportTextureCube        FormatSupport = 0x80
	SupportShaderLoad         FormatSupport = 0x100
	SupportShaderSample       FormatSupport = 0x200
	SupportMip                FormatSupport = 0x1000
	SupportRenderTarget       FormatSupport = 0x4000
	SupportBlendable          FormatSupport = 0x8000
	SupportDepthStencil       FormatSupport = 0x10000
	SupportMultisampleResolve FormatSupport = 0x40000
	SupportDisplay            FormatSupport = 0x80000
)

// ClearFlag is a D3D10_CLEAR_FLAG set.
type ClearFlag uint32

// Clear flags.
const (
	ClearDepth   ClearFlag = 0x1
	ClearStencil ClearFlag = 0x2
)
