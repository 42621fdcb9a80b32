package d3d10

import "fmt"

// Unknown is the reference-counted base of every native object.
//
// Ptr returns the object identity. It stays stable for the lifetime of the
// object and is unique among live objects of the same device.
type Unknown interface {
	AddRef() uint32
	Release() uint32
	Ptr() uintptr
}

// Resource is the base of buffers and textures.
type Resource interface {
	Unknown
	Type() ResourceDimension
}

// Buffer is a linear resource.
type Buffer interface {
	Resource
	Desc() BufferDesc
}

// Texture1D is a 1D texture or texture array.
type Texture1D interface {
	Resource
	Desc() Texture1DDesc
}

// Texture2D is a 2D texture, texture array or cube.
type Texture2D interface {
	Resource
	Desc() Texture2DDesc
}

// Texture3D is a volume texture.
type Texture3D interface {
	Resource
	Desc() Texture3DDesc
}

// View is the base of the view types.
type View interface {
	Unknown
	// Resource returns a new reference to the viewed resource.
	Resource() Resource
}

// DepthStencilView binds a resource as depth-stencil target.
type DepthStencilView interface {
	View
	Desc() DepthStencilViewDesc
}

// RenderTargetView binds a resource as color target.
type RenderTargetView interface {
	View
	Desc() RenderTargetViewDesc
}

// ShaderResourceView1 binds a resource for sampling.
type ShaderResourceView1 interface {
	View
	Desc1() ShaderResourceViewDesc1
}

// FeatureLevel is a D3D10_FEATURE_LEVEL1 value.
type FeatureLevel uint32

// Feature levels.
const (
	FeatureLevel9_1  FeatureLevel = 0x9100
	FeatureLevel9_3  FeatureLevel = 0x9300
	FeatureLevel10_0 FeatureLevel = 0xa000
	FeatureLevel10_1 FeatureLevel = 0xa100
)

func (l FeatureLevel) String() string {
	return fmt.Sprintf("%d_%d", uint32(l>>12), uint32(l>>8&0xf))
}

// Device1 is the native device. Create methods return the only reference
// to the new object.
type Device1 interface {
	Unknown

	FeatureLevel() FeatureLevel
	CheckFormatSupport(format Format) (FormatSupport, error)

	CreateBuffer(desc *BufferDesc) (Buffer, error)
	CreateTexture1D(desc *Texture1DDesc) (Texture1D, error)
	CreateTexture2D(desc *Texture2DDesc) (Texture2D, error)
	CreateTexture3D(desc *Texture3DDesc) (Texture3D, error)

	CreateDepthStencilView(res Resource, desc *DepthStencilViewDesc) (DepthStencilView, error)
	CreateRenderTargetView(res Resource, desc *RenderTargetViewDesc) (RenderTargetView, error)
	CreateShaderResourceView1(res Resource, desc *ShaderResourceViewDesc1) (ShaderResourceView1, error)

	Draw(vertexCount, startVertex uint32)
	DrawInstanced(vertexCountPerInstance, instanceCount, startVertex, startInstance uint32)
	DrawIndexed(indexCount, startIndex uint32, baseVertex int32)
	DrawIndexedInstanced(indexCountPerInstance, instanceCount, startIndex uint32, baseVertex int32, startInstance uint32)

	// CopyResource copies src into dst. Both must have the same dimension,
	// size and format class.
	CopyResource(dst, src Resource)
	ClearRenderTargetView(rtv RenderTargetView, color [4]float32)
	ClearDepthStencilView(dsv DepthStencilView, flags ClearFlag, depth float32, stencil uint8)
	Flush()
}
