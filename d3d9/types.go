package d3d9

import "fmt"

// Format is a D3DFORMAT value.
type Format uint32

// MakeFourCC packs four characters into a FOURCC format code.
func MakeFourCC(a, b, c, d byte) Format {
	return Format(a) | Format(b)<<8 | Format(c)<<16 | Format(d)<<24
}

// Formats.
const (
	FmtUnknown       Format = 0
	FmtR8G8B8        Format = 20
	FmtA8R8G8B8      Format = 21
	FmtX8R8G8B8      Format = 22
	FmtR5G6B5        Format = 23
	FmtX1R5G5B5      Format = 24
	FmtA1R5G5B5      Format = 25
	FmtA4R4G4B4      Format = 26
	FmtA8            Format = 28
	FmtA2B10G10R10   Format = 31
	FmtA8B8G8R8      Format = 32
	FmtX8B8G8R8      Format = 33
	FmtG16R16        Format = 34
	FmtA2R10G10B10   Format = 35
	FmtA16B16G16R16  Format = 36
	FmtL8            Format = 50
	FmtD16Lockable   Format = 70
	FmtD32           Format = 71
	FmtD15S1         Format = 73
	FmtD24S8         Format = 75
	FmtD24X8         Format = 77
	FmtD24X4S4       Format = 79
	FmtD16           Format = 80
	FmtD32FLockable  Format = 82
	FmtD24FS8        Format = 83
	FmtD32Lockable   Format = 84
	FmtS8Lockable    Format = 85
	FmtIndex16       Format = 101
	FmtIndex32       Format = 102
	FmtR16F          Format = 111
	FmtG16R16F       Format = 112
	FmtA16B16G16R16F Format = 113
	FmtR32F          Format = 114
	FmtG32R32F       Format = 115
	FmtA32B32G32R32F Format = 116

	FmtDXT1 Format = 'D' | 'X'<<8 | 'T'<<16 | '1'<<24
	FmtDXT2 Format = 'D' | 'X'<<8 | 'T'<<16 | '2'<<24
	FmtDXT3 Format = 'D' | 'X'<<8 | 'T'<<16 | '3'<<24
	FmtDXT4 Format = 'D' | 'X'<<8 | 'T'<<16 | '4'<<24
	FmtDXT5 Format = 'D' | 'X'<<8 | 'T'<<16 | '5'<<24

	// FmtNull is the render target format without memory behind it.
	FmtNull Format = 'N' | 'U'<<8 | 'L'<<16 | 'L'<<24

	// FmtINTZ is the vendor depth format that can also be sampled.
	FmtINTZ Format = 'I' | 'N'<<8 | 'T'<<16 | 'Z'<<24
)

// String returns the format name, or the number for unnamed formats.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	if f > 0xffff {
		return fmt.Sprintf("FOURCC(%c%c%c%c)", byte(f), byte(f>>8), byte(f>>16), byte(f>>24))
	}
	return fmt.Sprintf("Format(%d)", uint32(f))
}

var formatNames = map[Format]string{
	FmtUnknown:       "UNKNOWN",
	FmtA8R8G8B8:      "A8R8G8B8",
	FmtX8R8G8B8:      "X8R8G8B8",
	FmtR5G6B5:        "R5G6B5",
	FmtA8B8G8R8:      "A8B8G8R8",
	FmtX8B8G8R8:      "X8B8G8R8",
	FmtA16B16G16R16F: "A16B16G16R16F",
	FmtR32F:          "R32F",
	FmtD16:           "D16",
	FmtD24S8:         "D24S8",
	FmtD24X8:         "D24X8",
	FmtD32:           "D32",
	FmtDXT1:          "DXT1",
	FmtDXT5:          "DXT5",
	FmtNull:          "NULL",
	FmtINTZ:          "INTZ",
}

// Usage is a combination of D3DUSAGE flags.
type Usage uint32

// Usage flags.
const (
	UsageRenderTarget Usage = 0x00000001
	UsageDepthStencil Usage = 0x00000002
	UsageWriteOnly    Usage = 0x00000008
	UsageDynamic      Usage = 0x00000200
)

// Pool is a D3DPOOL value.
type Pool uint32

// Memory pools.
const (
	PoolDefault   Pool = 0
	PoolManaged   Pool = 1
	PoolSystemMem Pool = 2
	PoolScratch   Pool = 3
)

// ResourceType is a D3DRESOURCETYPE value.
type ResourceType uint32

// Resource types.
const (
	RTypeSurface       ResourceType = 1
	RTypeVolume        ResourceType = 2
	RTypeTexture       ResourceType = 3
	RTypeVolumeTexture ResourceType = 4
	RTypeCubeTexture   ResourceType = 5
	RTypeVertexBuffer  ResourceType = 6
	RTypeIndexBuffer   ResourceType = 7
)

// String returns the resource type name.
func (t ResourceType) String() string {
	switch t {
	case RTypeSurface:
		return "SURFACE"
	case RTypeVolume:
		return "VOLUME"
	case RTypeTexture:
		return "TEXTURE"
	case RTypeVolumeTexture:
		return "VOLUMETEXTURE"
	case RTypeCubeTexture:
		return "CUBETEXTURE"
	case RTypeVertexBuffer:
		return "VERTEXBUFFER"
	case RTypeIndexBuffer:
		return "INDEXBUFFER"
	default:
		return fmt.Sprintf("ResourceType(%d)", uint32(t))
	}
}

// MultiSampleType is a D3DMULTISAMPLE_TYPE value.
// Values from 2 to 16 equal the sample count.
type MultiSampleType uint32

// Multisample types.
const (
	MultiSampleNone        MultiSampleType = 0
	MultiSampleNonMaskable MultiSampleType = 1
	MultiSample2           MultiSampleType = 2
	MultiSample4           MultiSampleType = 4
	MultiSample8           MultiSampleType = 8
)

// DevType is a D3DDEVTYPE value.
type DevType uint32

// Device types.
const (
	DevTypeHAL     DevType = 1
	DevTypeRef     DevType = 2
	DevTypeSW      DevType = 3
	DevTypeNullRef DevType = 4
)

// Caps2 flags.
const (
	DevCaps2CanStretchRectFromTextures = 0x00000010
)

// Caps is the subset of D3DCAPS9 the translation layer relies on.
type Caps struct {
	DeviceType         DevType
	AdapterOrdinal     uint32
	Caps2              uint32
	MaxTextureWidth    uint32
	MaxTextureHeight   uint32
	MaxVolumeExtent    uint32
	NumSimultaneousRTs uint32
}

// CreationParameters is D3DDEVICE_CREATION_PARAMETERS.
type CreationParameters struct {
	AdapterOrdinal uint32
	DeviceType     DevType
	FocusWindow    uintptr
	BehaviorFlags  uint32
}

// SwapEffect is a D3DSWAPEFFECT value.
type SwapEffect uint32

// Swap effects.
const (
	SwapEffectDiscard SwapEffect = 1
	SwapEffectFlip    SwapEffect = 2
	SwapEffectCopy    SwapEffect = 3
)

// PresentParameters is D3DPRESENT_PARAMETERS.
type PresentParameters struct {
	BackBufferWidth           uint32
	BackBufferHeight          uint32
	BackBufferFormat          Format
	BackBufferCount           uint32
	MultiSampleType           MultiSampleType
	MultiSampleQuality        uint32
	SwapEffect                SwapEffect
	DeviceWindow              uintptr
	Windowed                  bool
	EnableAutoDepthStencil    bool
	AutoDepthStencilFormat    Format
	Flags                     uint32
	FullScreenRefreshRateInHz uint32
	PresentationInterval      uint32
}

// SurfaceDesc is D3DSURFACE_DESC. It also describes the levels of 2D and
// cube textures.
type SurfaceDesc struct {
	Format             Format
	Type               ResourceType
	Usage              Usage
	Pool               Pool
	MultiSampleType    MultiSampleType
	MultiSampleQuality uint32
	Width              uint32
	Height             uint32
}

// VolumeDesc is D3DVOLUME_DESC. It also describes the levels of volume textures.
type VolumeDesc struct {
	Format Format
	Type   ResourceType
	Usage  Usage
	Pool   Pool
	Width  uint32
	Height uint32
	Depth  uint32
}

// IndexBufferDesc is D3DINDEXBUFFER_DESC.
type IndexBufferDesc struct {
	Format Format
	Type   ResourceType
	Usage  Usage
	Pool   Pool
	Size   uint32
}

// VertexBufferDesc is D3DVERTEXBUFFER_DESC.
type VertexBufferDesc struct {
	Format Format
	Type   ResourceType
	Usage  Usage
	Pool   Pool
	Size   uint32
	FVF    FVF
}

// Viewport is D3DVIEWPORT9.
type Viewport struct {
	X, Y          uint32
	Width, Height uint32
	MinZ, MaxZ    float32
}

// Color is a packed D3DCOLOR (0xAARRGGBB).
type Color uint32

// ColorValue packs normalized components the way D3DCOLOR_COLORVALUE does:
// each component is scaled by 255 and truncated.
func ColorValue(r, g, b, a float32) Color {
	return Color(uint32(uint8(a*255))<<24 | uint32(uint8(r*255))<<16 | uint32(uint8(g*255))<<8 | uint32(uint8(b*255)))
}

// RGBA unpacks the color into 8-bit components.
func (c Color) RGBA() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// ClearFlags selects the buffers cleared by Device9.Clear.
type ClearFlags uint32

// Clear flags.
const (
	ClearTarget  ClearFlags = 0x1
	ClearZBuffer ClearFlags = 0x2
	ClearStencil ClearFlags = 0x4
)

// PrimitiveType is a D3DPRIMITIVETYPE value.
type PrimitiveType uint32

// Primitive types.
const (
	PTPointList     PrimitiveType = 1
	PTLineList      PrimitiveType = 2
	PTLineStrip     PrimitiveType = 3
	PTTriangleList  PrimitiveType = 4
	PTTriangleStrip PrimitiveType = 5
	PTTriangleFan   PrimitiveType = 6
)

// FVF is a flexible vertex format code.
type FVF uint32

// Flexible vertex format flags.
const (
	FVFXYZ  FVF = 0x002
	FVFTex1 FVF = 0x100
)

// CubemapFace is a D3DCUBEMAP_FACES value.
type CubemapFace uint32

// Cube map faces.
const (
	CubemapFacePositiveX CubemapFace = iota
	CubemapFaceNegativeX
	CubemapFacePositiveY
	CubemapFaceNegativeY
	CubemapFacePositiveZ
	CubemapFaceNegativeZ
)

// TextureFilterType is a D3DTEXTUREFILTERTYPE value.
type TextureFilterType uint32

// Texture filters.
const (
	TexFNone   TextureFilterType = 0
	TexFPoint  TextureFilterType = 1
	TexFLinear TextureFilterType = 2
)

// StateBlockType is a D3DSTATEBLOCKTYPE value.
type StateBlockType uint32

// State block types.
const (
	SBTAll         StateBlockType = 1
	SBTPixelState  StateBlockType = 2
	SBTVertexState StateBlockType = 3
)
