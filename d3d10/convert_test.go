package d3d10

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/shim"
)

func TestToBindFlags(t *testing.T) {
	tests := []struct {
		name  string
		usage shim.Usage
		start BindFlag
		want  BindFlag
	}{
		{"none", shim.UsageNone, 0, 0},
		{"render target", shim.UsageRenderTarget, 0, BindRenderTarget},
		{"depth stencil", shim.UsageDepthStencil, 0, BindDepthStencil},
		{"shader resource", shim.UsageShaderResource, 0, BindShaderResource},
		{"index buffer", shim.UsageIndexBuffer, 0, BindIndexBuffer},
		{"vertex buffer", shim.UsageVertexBuffer, 0, BindVertexBuffer},
		{"constant buffer", shim.UsageConstantBuffer, 0, BindConstantBuffer},
		{"copy only", shim.UsageCopySource | shim.UsageCopyDest | shim.UsageResolveDest, 0, 0},
		{"clears stale bits", shim.UsageShaderResource, BindRenderTarget | BindDepthStencil, BindShaderResource},
		{"keeps stream output", shim.UsageVertexBuffer, BindStreamOutput | BindIndexBuffer, BindStreamOutput | BindVertexBuffer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start
			ToBindFlags(tt.usage, &got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToBindFlagsUnorderedAccessPanics(t *testing.T) {
	var f BindFlag
	assert.Panics(t, func() { ToBindFlags(shim.UsageUnorderedAccess|shim.UsageShaderResource, &f) })
}

func TestFromBindFlagsAlwaysCopyable(t *testing.T) {
	for _, f := range []BindFlag{0, BindRenderTarget, BindStreamOutput, BindVertexBuffer | BindIndexBuffer} {
		u := FromBindFlags(f)
		assert.True(t, u.Has(shim.UsageCopySource|shim.UsageCopyDest), "FromBindFlags(%#x) = %s", uint32(f), u)
		assert.False(t, u.Any(shim.UsageUnorderedAccess))
	}
	assert.Equal(t,
		shim.UsageRenderTarget|shim.UsageShaderResource|shim.UsageCopySource|shim.UsageCopyDest,
		FromBindFlags(BindRenderTarget|BindShaderResource|BindStreamOutput))
}

func TestBufferDescRoundTrip(t *testing.T) {
	desc := shim.NewBufferDesc(4096, shim.UsageVertexBuffer|shim.UsageShaderResource)

	internal := BufferDesc{Usage: UsageDynamic, CPUAccessFlags: CPUAccessWrite}
	ToBufferDesc(desc, &internal)
	assert.Equal(t, uint32(4096), internal.ByteWidth)
	assert.Equal(t, BindVertexBuffer|BindShaderResource, internal.BindFlags)
	assert.Equal(t, UsageDynamic, internal.Usage, "native usage is left to the caller")
	assert.Equal(t, CPUAccessWrite, internal.CPUAccessFlags)

	back := FromBufferDesc(internal)
	assert.Equal(t, desc.Width, back.Width)
	assert.Zero(t, back.Height)
	assert.Zero(t, back.Samples)
	assert.Equal(t, desc.Usage|shim.UsageCopySource|shim.UsageCopyDest, back.Usage)
}

func TestBufferDescRejectsTextureFields(t *testing.T) {
	for name, mutate := range map[string]func(*shim.ResourceDesc){
		"height":  func(d *shim.ResourceDesc) { d.Height = 1 },
		"layers":  func(d *shim.ResourceDesc) { d.DepthOrLayers = 1 },
		"levels":  func(d *shim.ResourceDesc) { d.Levels = 1 },
		"samples": func(d *shim.ResourceDesc) { d.Samples = 1 },
	} {
		t.Run(name, func(t *testing.T) {
			desc := shim.NewBufferDesc(64, shim.UsageVertexBuffer)
			mutate(&desc)
			var internal BufferDesc
			assert.Panics(t, func() { ToBufferDesc(desc, &internal) })
		})
	}
}

func TestTexture1DDescRoundTrip(t *testing.T) {
	desc := shim.ResourceDesc{
		Width: 512, Height: 1, DepthOrLayers: 4, Levels: 3,
		Format: uint32(FmtR16Float), Samples: 1,
		Usage: shim.UsageShaderResource | shim.UsageRenderTarget,
	}
	var internal Texture1DDesc
	ToTexture1DDesc(desc, &internal)
	assert.Equal(t, Texture1DDesc{
		Width: 512, MipLevels: 3, ArraySize: 4, Format: FmtR16Float,
		BindFlags: BindShaderResource | BindRenderTarget,
	}, internal)

	back := FromTexture1DDesc(internal)
	want := desc
	want.Usage |= shim.UsageCopySource | shim.UsageCopyDest
	assert.Equal(t, want, back)
}

func TestTexture1DDescRejectsShape(t *testing.T) {
	var internal Texture1DDesc
	desc := shim.ResourceDesc{Width: 64, Height: 2, DepthOrLayers: 1, Levels: 1, Samples: 1}
	assert.Panics(t, func() { ToTexture1DDesc(desc, &internal) }, "height")
	desc.Height, desc.Samples = 1, 4
	assert.Panics(t, func() { ToTexture1DDesc(desc, &internal) }, "samples")
}

func TestTexture2DDescResolveBits(t *testing.T) {
	single := shim.NewTexture2DDesc(128, 64, 1, uint32(FmtR8G8B8A8Unorm), shim.UsageRenderTarget)
	var internal Texture2DDesc
	internal.SampleDesc.Quality = 3
	internal.MiscFlags = MiscGenerateMips
	ToTexture2DDesc(single, &internal)
	assert.Equal(t, uint32(128), internal.Width)
	assert.Equal(t, uint32(64), internal.Height)
	assert.Equal(t, uint32(1), internal.ArraySize)
	assert.Equal(t, SampleDesc{Count: 1, Quality: 3}, internal.SampleDesc, "quality is left to the caller")
	assert.Equal(t, MiscGenerateMips, internal.MiscFlags)

	back := FromTexture2DDesc(internal)
	assert.Equal(t, single.Width, back.Width)
	assert.Equal(t, single.Levels, back.Levels)
	assert.True(t, back.Usage.Has(shim.UsageRenderTarget|shim.UsageResolveDest))
	assert.False(t, back.Usage.Any(shim.UsageResolveSource))

	ms := single
	ms.Samples = 4
	ToTexture2DDesc(ms, &internal)
	back = FromTexture2DDesc(internal)
	assert.Equal(t, uint16(4), back.Samples)
	assert.True(t, back.Usage.Has(shim.UsageResolveSource))
	assert.False(t, back.Usage.Any(shim.UsageResolveDest))
}

func TestTexture3DDescRoundTrip(t *testing.T) {
	desc := shim.ResourceDesc{
		Width: 32, Height: 16, DepthOrLayers: 8, Levels: 2,
		Format: uint32(FmtR8G8B8A8Unorm), Samples: 1, Usage: shim.UsageShaderResource,
	}
	var internal Texture3DDesc
	ToTexture3DDesc(desc, &internal)
	assert.Equal(t, uint32(8), internal.Depth)
	assert.Equal(t, uint32(2), internal.MipLevels)

	back := FromTexture3DDesc(internal)
	want := desc
	want.Usage |= shim.UsageCopySource | shim.UsageCopyDest
	assert.Equal(t, want, back)

	desc.Samples = 2
	assert.Panics(t, func() { ToTexture3DDesc(desc, &internal) })
}

func TestFromDescNarrowingPanics(t *testing.T) {
	assert.Panics(t, func() { FromTexture2DDesc(Texture2DDesc{Width: 1, Height: 1, MipLevels: 1, ArraySize: 70000}) })
	assert.Panics(t, func() { FromTexture3DDesc(Texture3DDesc{Width: 1, Height: 1, Depth: 1 << 16, MipLevels: 1}) })
}

func TestDepthStencilViewDescRoundTrip(t *testing.T) {
	f := uint32(FmtD24UnormS8Uint)
	tests := []struct {
		name string
		desc shim.ResourceViewDesc
		dim  DSVDimension
	}{
		{"1d", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture1D, Format: f, FirstLevel: 2, Levels: 1, Layers: 1}, DSVDimensionTexture1D},
		{"1d array", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture1DArray, Format: f, FirstLevel: 1, Levels: 1, FirstLayer: 2, Layers: 3}, DSVDimensionTexture1DArray},
		{"2d", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture2D, Format: f, FirstLevel: 3, Levels: 1, Layers: 1}, DSVDimensionTexture2D},
		{"2d array", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture2DArray, Format: f, Levels: 1, FirstLayer: 1, Layers: 5}, DSVDimensionTexture2DArray},
		{"2d ms", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture2DMultisample, Format: f, Levels: 1, Layers: 1}, DSVDimensionTexture2DMS},
		{"2d ms array", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture2DMultisampleArray, Format: f, Levels: 1, FirstLayer: 4, Layers: 2}, DSVDimensionTexture2DMSArray},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var internal DepthStencilViewDesc
			ToDepthStencilViewDesc(tt.desc, &internal)
			assert.Equal(t, tt.dim, internal.ViewDimension)
			assert.Equal(t, FmtD24UnormS8Uint, internal.Format)
			assert.Equal(t, tt.desc, FromDepthStencilViewDesc(internal))
		})
	}
}

func TestRenderTargetViewDescRoundTrip(t *testing.T) {
	f := uint32(FmtR8G8B8A8Unorm)
	tests := []struct {
		name string
		desc shim.ResourceViewDesc
		dim  RTVDimension
	}{
		{"1d", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture1D, Format: f, Levels: 1, Layers: 1}, RTVDimensionTexture1D},
		{"1d array", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture1DArray, Format: f, FirstLevel: 1, Levels: 1, Layers: 2}, RTVDimensionTexture1DArray},
		{"2d", shim.NewTexture2DViewDesc(f, 2, 1), RTVDimensionTexture2D},
		{"2d array", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture2DArray, Format: f, Levels: 1, FirstLayer: 3, Layers: 3}, RTVDimensionTexture2DArray},
		{"2d ms", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture2DMultisample, Format: f, Levels: 1, Layers: 1}, RTVDimensionTexture2DMS},
		{"2d ms array", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture2DMultisampleArray, Format: f, Levels: 1, FirstLayer: 1, Layers: 1}, RTVDimensionTexture2DMSArray},
		{"3d", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture3D, Format: f, FirstLevel: 1, Levels: 1, FirstLayer: 2, Layers: 4}, RTVDimensionTexture3D},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var internal RenderTargetViewDesc
			ToRenderTargetViewDesc(tt.desc, &internal)
			assert.Equal(t, tt.dim, internal.ViewDimension)
			assert.Equal(t, tt.desc, FromRenderTargetViewDesc(internal))
		})
	}
}

func TestAttachmentViewsRejectInvalidDescs(t *testing.T) {
	f := uint32(FmtR8G8B8A8Unorm)
	buffer := shim.NewBufferViewDesc(f, 0, 16)
	mips := shim.NewTexture2DViewDesc(f, 0, 2)
	cube := shim.ResourceViewDesc{Dimension: shim.ViewDimensionTextureCube, Format: f, Levels: 1, Layers: 6}

	var dsv DepthStencilViewDesc
	var rtv RenderTargetViewDesc
	for name, desc := range map[string]shim.ResourceViewDesc{"buffer": buffer, "levels": mips, "cube": cube} {
		assert.Panics(t, func() { ToDepthStencilViewDesc(desc, &dsv) }, "dsv %s", name)
		assert.Panics(t, func() { ToRenderTargetViewDesc(desc, &rtv) }, "rtv %s", name)
	}
	volume := shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture3D, Format: f, Levels: 1, Layers: 1}
	assert.Panics(t, func() { ToDepthStencilViewDesc(volume, &dsv) })
}

func TestFromRenderTargetViewDescBuffer(t *testing.T) {
	internal := RenderTargetViewDesc{
		Format:        FmtR32Float,
		ViewDimension: RTVDimensionBuffer,
		Buffer:        BufferRange{FirstElement: 4, NumElements: 8},
	}
	desc := FromRenderTargetViewDesc(internal)
	assert.Equal(t, shim.ViewDimensionUnknown, desc.Dimension)
	assert.Equal(t, uint32(FmtR32Float), desc.Format)
}

func TestShaderResourceViewDescRoundTrip(t *testing.T) {
	f := uint32(FmtR8G8B8A8Unorm)
	tests := []struct {
		name string
		desc shim.ResourceViewDesc
		dim  SRVDimension
	}{
		{"buffer", shim.NewBufferViewDesc(uint32(FmtR32Float), 16, 64), SRVDimensionBuffer},
		{"1d", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture1D, Format: f, FirstLevel: 1, Levels: 2, Layers: 1}, SRVDimensionTexture1D},
		{"1d array", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture1DArray, Format: f, Levels: 3, FirstLayer: 1, Layers: 2}, SRVDimensionTexture1DArray},
		{"2d", shim.NewTexture2DViewDesc(f, 1, shim.AllLevels), SRVDimensionTexture2D},
		{"2d array", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture2DArray, Format: f, Levels: 1, FirstLayer: 2, Layers: 6}, SRVDimensionTexture2DArray},
		{"2d ms", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture2DMultisample, Format: f, Levels: 1, Layers: 1}, SRVDimensionTexture2DMS},
		{"2d ms array", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture2DMultisampleArray, Format: f, Levels: 1, FirstLayer: 1, Layers: 3}, SRVDimensionTexture2DMSArray},
		{"3d", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture3D, Format: f, FirstLevel: 0, Levels: 3}, SRVDimensionTexture3D},
		{"cube", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTextureCube, Format: f, Levels: 4, Layers: 6}, SRVDimensionTextureCube},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var internal ShaderResourceViewDesc
			ToShaderResourceViewDesc(tt.desc, &internal)
			assert.Equal(t, tt.dim, internal.ViewDimension)
			assert.Equal(t, tt.desc, FromShaderResourceViewDesc(internal))

			var ext ShaderResourceViewDesc1
			ToShaderResourceViewDesc1(tt.desc, &ext)
			assert.Equal(t, internal, ext.ShaderResourceViewDesc)
			assert.Equal(t, tt.desc, FromShaderResourceViewDesc1(ext))
		})
	}
}

func TestShaderResourceViewDescBuffer(t *testing.T) {
	var internal ShaderResourceViewDesc
	ToShaderResourceViewDesc(shim.NewBufferViewDesc(uint32(FmtR32Float), 16, 64), &internal)
	assert.Equal(t, BufferRange{FirstElement: 16, NumElements: 64}, internal.Buffer)

	withLayers := shim.NewBufferViewDesc(uint32(FmtR32Float), 0, 4)
	withLayers.Layers = 1
	assert.Panics(t, func() { ToShaderResourceViewDesc(withLayers, &internal) })
}

func TestShaderResourceViewDescCubeArray(t *testing.T) {
	desc := shim.ResourceViewDesc{
		Dimension:  shim.ViewDimensionTextureCubeArray,
		Format:     uint32(FmtR16G16B16A16Float),
		FirstLevel: 1,
		Levels:     2,
		FirstLayer: 6,
		Layers:     12,
	}

	var plain ShaderResourceViewDesc
	assert.Panics(t, func() { ToShaderResourceViewDesc(desc, &plain) }, "needs the extended descriptor")

	var internal ShaderResourceViewDesc1
	ToShaderResourceViewDesc1(desc, &internal)
	assert.Equal(t, SRVDimensionTextureCubeArray, internal.ViewDimension)
	assert.Equal(t, CubeArrayMipRange{MostDetailedMip: 1, MipLevels: 2, First2DArrayFace: 6, NumCubes: 2}, internal.TextureCubeArray)
	assert.Equal(t, desc, FromShaderResourceViewDesc1(internal))

	desc.Layers = 7
	ToShaderResourceViewDesc1(desc, &internal)
	assert.Equal(t, uint32(1), internal.TextureCubeArray.NumCubes, "partial cubes are dropped")

	desc.Layers = shim.AllLayers
	assert.NotPanics(t, func() { ToShaderResourceViewDesc1(desc, &internal) })
	assert.Equal(t, uint32(shim.AllLayers/shim.LayersPerCube), internal.TextureCubeArray.NumCubes)
}

func TestUnknownDimensionWritesOnlyFormat(t *testing.T) {
	desc := shim.ResourceViewDesc{Format: uint32(FmtD32Float), FirstLevel: 5, Levels: 1, FirstLayer: 7, Layers: 9}

	dsv := DepthStencilViewDesc{
		ViewDimension:  DSVDimensionTexture2DArray,
		Texture2DArray: ArraySlice{MipSlice: 2, FirstArraySlice: 3, ArraySize: 4},
	}
	wantDSV := dsv
	wantDSV.Format = FmtD32Float
	ToDepthStencilViewDesc(desc, &dsv)
	assert.Equal(t, wantDSV, dsv)

	rtv := RenderTargetViewDesc{
		ViewDimension: RTVDimensionTexture3D,
		Texture3D:     WSlice{MipSlice: 1, FirstWSlice: 2, WSize: 3},
	}
	wantRTV := rtv
	wantRTV.Format = FmtD32Float
	ToRenderTargetViewDesc(desc, &rtv)
	assert.Equal(t, wantRTV, rtv)

	srv := ShaderResourceViewDesc1{TextureCubeArray: CubeArrayMipRange{NumCubes: 3}}
	srv.ViewDimension = SRVDimensionTexture2D
	srv.Texture2D = MipRange{MostDetailedMip: 1, MipLevels: 2}
	wantSRV := srv
	wantSRV.Format = FmtD32Float
	desc.Levels = 3
	ToShaderResourceViewDesc1(desc, &srv)
	require.Equal(t, wantSRV, srv)
}
