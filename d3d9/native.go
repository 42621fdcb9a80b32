package d3d9

import "image"

// Unknown is the reference-counted base of every native object.
//
// Ptr returns the object identity. It stays stable for the lifetime of the
// object and is unique among live objects of the same device.
type Unknown interface {
	AddRef() uint32
	Release() uint32
	Ptr() uintptr
}

// Direct3D9 is the factory object a device was created from.
type Direct3D9 interface {
	// CheckDeviceFormat reports whether checkFormat can be used with usage
	// on a resource of rtype. It returns ErrNotAvailable when it cannot.
	CheckDeviceFormat(adapter uint32, devType DevType, adapterFormat Format, usage Usage, rtype ResourceType, checkFormat Format) error
}

// Resource9 is the base of everything a device creates.
type Resource9 interface {
	Unknown
	Type() ResourceType
}

// Surface9 is a 2D image, either standalone or one level or face of a
// texture.
type Surface9 interface {
	Resource9
	Desc() SurfaceDesc
	// Container returns a new reference to the owning texture. Standalone
	// surfaces return ErrNotFound.
	Container() (Resource9, error)
}

// BaseTexture9 is the base of the texture types.
type BaseTexture9 interface {
	Resource9
	LevelCount() uint32
}

// Texture9 is a mipmapped 2D texture.
type Texture9 interface {
	BaseTexture9
	LevelDesc(level uint32) (SurfaceDesc, error)
	// SurfaceLevel returns a new reference to the surface of level.
	SurfaceLevel(level uint32) (Surface9, error)
}

// CubeTexture9 is a mipmapped texture with six faces.
type CubeTexture9 interface {
	BaseTexture9
	LevelDesc(level uint32) (SurfaceDesc, error)
	CubeMapSurface(face CubemapFace, level uint32) (Surface9, error)
}

// VolumeTexture9 is a mipmapped 3D texture.
type VolumeTexture9 interface {
	BaseTexture9
	LevelDesc(level uint32) (VolumeDesc, error)
}

// VertexBuffer9 holds vertex data.
type VertexBuffer9 interface {
	Resource9
	Desc() VertexBufferDesc
}

// IndexBuffer9 holds index data.
type IndexBuffer9 interface {
	Resource9
	Desc() IndexBufferDesc
}

// StateBlock9 is a recorded set of device states.
type StateBlock9 interface {
	Unknown
	// Capture refreshes the recorded states from the device.
	Capture() error
	// Apply writes the recorded states to the device.
	Apply() error
}

// VertexShader9 is a compiled vertex program.
type VertexShader9 interface{ Unknown }

// PixelShader9 is a compiled pixel program.
type PixelShader9 interface{ Unknown }

// Device9 is the native device. Getters returning objects return new
// references the caller must release.
type Device9 interface {
	Unknown

	Direct3D() Direct3D9
	DeviceCaps() Caps
	CreationParameters() CreationParameters
	// PresentParameters returns the parameters of the implicit swap chain.
	PresentParameters() PresentParameters
	Reset(pp *PresentParameters) error

	CreateTexture(width, height, levels uint32, usage Usage, format Format, pool Pool) (Texture9, error)
	CreateCubeTexture(edge, levels uint32, usage Usage, format Format, pool Pool) (CubeTexture9, error)
	CreateVolumeTexture(width, height, depth, levels uint32, usage Usage, format Format, pool Pool) (VolumeTexture9, error)
	CreateVertexBuffer(length uint32, usage Usage, fvf FVF, pool Pool) (VertexBuffer9, error)
	CreateIndexBuffer(length uint32, usage Usage, format Format, pool Pool) (IndexBuffer9, error)
	CreateRenderTarget(width, height uint32, format Format, ms MultiSampleType, quality uint32, lockable bool) (Surface9, error)
	CreateDepthStencilSurface(width, height uint32, format Format, ms MultiSampleType, quality uint32, discard bool) (Surface9, error)

	BeginStateBlock() error
	EndStateBlock() (StateBlock9, error)
	CreateStateBlock(typ StateBlockType) (StateBlock9, error)

	SetFVF(fvf FVF) error
	SetVertexShader(vs VertexShader9) error
	SetPixelShader(ps PixelShader9) error
	SetRenderState(state RenderStateType, value uint32) error
	SetTextureStageState(stage uint32, typ TextureStageStateType, value uint32) error
	SetSamplerState(sampler uint32, typ SamplerStateType, value uint32) error
	SetTexture(stage uint32, tex BaseTexture9) error

	// SetRenderTarget binds s to slot index and resets the viewport to
	// cover it. A nil surface unbinds the slot; slot 0 cannot be unbound.
	SetRenderTarget(index uint32, s Surface9) error
	// RenderTarget returns ErrNotFound for an empty slot.
	RenderTarget(index uint32) (Surface9, error)
	SetDepthStencilSurface(s Surface9) error
	// DepthStencilSurface returns ErrNotFound when none is bound.
	DepthStencilSurface() (Surface9, error)
	SetViewport(vp Viewport) error
	Viewport() Viewport

	DrawPrimitive(pt PrimitiveType, startVertex, primCount uint32) error
	DrawIndexedPrimitive(pt PrimitiveType, baseVertex int32, minIndex, numVertices, startIndex, primCount uint32) error
	// DrawPrimitiveUP draws from caller memory laid out with the current FVF.
	DrawPrimitiveUP(pt PrimitiveType, primCount uint32, data []byte, stride uint32) error
	StretchRect(src Surface9, srcRect *image.Rectangle, dst Surface9, dstRect *image.Rectangle, filter TextureFilterType) error
	Clear(rects []image.Rectangle, flags ClearFlags, color Color, z float32, stencil uint32) error
}
