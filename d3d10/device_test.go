package d3d10_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/shim"
	"github.com/gogpu/shim/d3d10"
	"github.com/gogpu/shim/d3d10/ref"
)

// recorder logs observer notifications and optionally rewrites resource
// descriptions.
type recorder struct {
	shim.NopObserver
	events  []string
	rewrite func(shim.ResourceType, *shim.ResourceDesc)
}

func (r *recorder) InitDevice(shim.Device)          { r.events = append(r.events, "init_device") }
func (r *recorder) InitCommandQueue(shim.Device)    { r.events = append(r.events, "init_command_queue") }
func (r *recorder) DestroyCommandQueue(shim.Device) { r.events = append(r.events, "destroy_command_queue") }
func (r *recorder) DestroyDevice(shim.Device)       { r.events = append(r.events, "destroy_device") }

func (r *recorder) CreateResource(_ shim.Device, typ shim.ResourceType, desc *shim.ResourceDesc) {
	r.events = append(r.events, "create_resource:"+typ.String())
	if r.rewrite != nil {
		r.rewrite(typ, desc)
	}
}

func newDevice(t *testing.T, refOpts []ref.Option, opts ...shim.Option) (*d3d10.Device, *ref.Device) {
	t.Helper()
	native, err := ref.NewDevice(refOpts...)
	require.NoError(t, err)
	dev := d3d10.NewDevice(native, opts...)
	t.Cleanup(dev.Close)
	return dev, native
}

const allUsage = shim.UsageRenderTarget | shim.UsageShaderResource | shim.UsageCopySource | shim.UsageCopyDest

func colorTexture(w, h uint32) shim.ResourceDesc {
	return shim.NewTexture2DDesc(w, h, 1, uint32(d3d10.FmtR8G8B8A8Unorm), allUsage)
}

func createResource(t *testing.T, dev *d3d10.Device, typ shim.ResourceType, desc shim.ResourceDesc) shim.ResourceHandle {
	t.Helper()
	h, err := dev.CreateResource(typ, desc)
	require.NoError(t, err)
	require.False(t, h.IsNull())
	return h
}

func createView(t *testing.T, dev *d3d10.Device, res shim.ResourceHandle, typ shim.ViewType, desc shim.ResourceViewDesc) shim.ResourceViewHandle {
	t.Helper()
	h, err := dev.CreateResourceView(res, typ, desc)
	require.NoError(t, err)
	require.False(t, h.IsNull())
	return h
}

func TestNewDeviceNotifiesObservers(t *testing.T) {
	rec := &recorder{}
	native, err := ref.NewDevice()
	require.NoError(t, err)
	dev := d3d10.NewDevice(native, shim.WithObserver(rec))

	assert.Equal(t, []string{"init_device", "init_command_queue"}, rec.events)
	assert.Equal(t, shim.APID3D10, dev.API())
	assert.Same(t, native, dev.Native())

	dev.Close()
	dev.Close()
	assert.Equal(t, []string{
		"init_device",
		"init_command_queue",
		"destroy_command_queue",
		"destroy_device",
	}, rec.events)
}

func TestCapabilities(t *testing.T) {
	tests := []struct {
		level d3d10.FeatureLevel
		want  shim.Capabilities
	}{
		{d3d10.FeatureLevel10_1, shim.Capabilities{MaxRenderTargets: 8, SupportsInstancing: true, SupportsCubeArrays: true}},
		{d3d10.FeatureLevel10_0, shim.Capabilities{MaxRenderTargets: 8, SupportsInstancing: true}},
		{d3d10.FeatureLevel9_3, shim.Capabilities{MaxRenderTargets: 4, SupportsInstancing: true}},
		{d3d10.FeatureLevel9_1, shim.Capabilities{MaxRenderTargets: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			dev, _ := newDevice(t, []ref.Option{ref.WithFeatureLevel(tt.level)})
			assert.Equal(t, tt.want, dev.Capabilities())
		})
	}
}

func TestCheckFormatSupport(t *testing.T) {
	dev, native := newDevice(t, nil)
	tests := []struct {
		name   string
		format d3d10.Format
		usage  shim.Usage
		want   bool
	}{
		{"color target", d3d10.FmtR8G8B8A8Unorm, allUsage, true},
		{"color resolve", d3d10.FmtR8G8B8A8Unorm, shim.UsageResolveSource | shim.UsageResolveDest, true},
		{"copy only", d3d10.FmtR8G8B8A8Typeless, shim.UsageCopySource | shim.UsageCopyDest, true},
		{"depth", d3d10.FmtD24UnormS8Uint, shim.UsageDepthStencil, true},
		{"depth sampled", d3d10.FmtD24UnormS8Uint, shim.UsageDepthStencil | shim.UsageShaderResource, false},
		{"compressed target", d3d10.FmtBC1Unorm, shim.UsageRenderTarget, false},
		{"compressed sampled", d3d10.FmtBC1Unorm, shim.UsageShaderResource, true},
		{"integer sampled", d3d10.FmtR32Uint, shim.UsageShaderResource, false},
		{"integer resolve", d3d10.FmtR32Uint, shim.UsageResolveDest, false},
		{"unordered access", d3d10.FmtR8G8B8A8Unorm, shim.UsageUnorderedAccess, false},
		{"unsupported format", d3d10.FmtB5G6R5Unorm, shim.UsageNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dev.CheckFormatSupport(uint32(tt.format), tt.usage))
		})
	}

	// One native query per distinct format, none for unordered access.
	assert.Equal(t, 6, native.Queries())
	dev.CheckFormatSupport(uint32(d3d10.FmtR8G8B8A8Unorm), shim.UsageShaderResource)
	assert.Equal(t, 6, native.Queries())
}

func TestFormatCacheSizeFromConfig(t *testing.T) {
	cfg := shim.DefaultConfig()
	cfg.D3D10.FormatCacheSize = 1
	dev, native := newDevice(t, nil, shim.WithConfig(cfg))

	rgba, depth := uint32(d3d10.FmtR8G8B8A8Unorm), uint32(d3d10.FmtD32Float)
	dev.CheckFormatSupport(rgba, shim.UsageRenderTarget)
	dev.CheckFormatSupport(depth, shim.UsageDepthStencil)
	dev.CheckFormatSupport(rgba, shim.UsageRenderTarget)
	assert.Equal(t, 3, native.Queries(), "a single-entry cache must re-query evicted formats")
}

func TestCreateResources(t *testing.T) {
	dev, native := newDevice(t, nil)
	rgba := uint32(d3d10.FmtR8G8B8A8Unorm)
	tests := []struct {
		name string
		typ  shim.ResourceType
		desc shim.ResourceDesc
	}{
		{"buffer", shim.ResourceTypeBuffer, shim.NewBufferDesc(256, shim.UsageVertexBuffer|shim.UsageIndexBuffer)},
		{"constant buffer", shim.ResourceTypeBuffer, shim.NewBufferDesc(64, shim.UsageConstantBuffer)},
		{"1d", shim.ResourceTypeTexture1D, shim.ResourceDesc{Width: 256, Height: 1, DepthOrLayers: 2, Levels: 1, Format: rgba, Samples: 1, Usage: shim.UsageShaderResource}},
		{"2d", shim.ResourceTypeTexture2D, colorTexture(64, 32)},
		{"2d ms", shim.ResourceTypeTexture2D, shim.ResourceDesc{Width: 64, Height: 64, DepthOrLayers: 1, Levels: 1, Format: rgba, Samples: 4, Usage: shim.UsageRenderTarget}},
		{"3d", shim.ResourceTypeTexture3D, shim.ResourceDesc{Width: 16, Height: 16, DepthOrLayers: 8, Levels: 1, Format: rgba, Samples: 1, Usage: shim.UsageShaderResource}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createResource(t, dev, tt.typ, tt.desc)
			assert.True(t, dev.IsResourceHandleValid(h))
			assert.NotNil(t, dev.NativeResource(h))

			got := dev.ResourceDesc(h)
			assert.Equal(t, tt.desc.Width, got.Width)
			assert.Equal(t, tt.desc.Height, got.Height)
			assert.Equal(t, tt.desc.DepthOrLayers, got.DepthOrLayers)
			assert.Equal(t, tt.desc.Levels, got.Levels)
			assert.Equal(t, tt.desc.Format, got.Format)
			assert.Equal(t, tt.desc.Samples, got.Samples)
			assert.True(t, got.Usage.Has(tt.desc.Usage|shim.UsageCopySource|shim.UsageCopyDest),
				"usage %s lost bits of %s", got.Usage, tt.desc.Usage)

			dev.DestroyResource(h)
			assert.False(t, dev.IsResourceHandleValid(h))
			assert.Nil(t, dev.NativeResource(h))
		})
	}
	assert.Zero(t, native.LiveObjects())
	assert.Zero(t, native.MemoryUsed())
}

func TestCreateResourceObserverRewrite(t *testing.T) {
	rec := &recorder{rewrite: func(typ shim.ResourceType, desc *shim.ResourceDesc) {
		if typ == shim.ResourceTypeTexture2D {
			desc.Format = uint32(d3d10.FmtB8G8R8A8Unorm)
			desc.Levels = 2
		}
	}}
	dev, _ := newDevice(t, nil, shim.WithObserver(rec))

	h := createResource(t, dev, shim.ResourceTypeTexture2D, colorTexture(32, 32))
	got := dev.ResourceDesc(h)
	assert.Equal(t, uint32(d3d10.FmtB8G8R8A8Unorm), got.Format)
	assert.Equal(t, uint16(2), got.Levels)
	assert.Contains(t, rec.events, "create_resource:Texture2D")
}

func TestCreateResourceFailure(t *testing.T) {
	dev, native := newDevice(t, []ref.Option{ref.WithMemory(1 << 12)})

	h, err := dev.CreateResource(shim.ResourceTypeTexture2D, colorTexture(256, 256))
	assert.True(t, h.IsNull())
	assert.ErrorIs(t, err, shim.ErrCreationFailed)
	assert.ErrorIs(t, err, d3d10.ErrOutOfMemory)

	h, err = dev.CreateResource(shim.ResourceTypeTexture2D,
		shim.NewTexture2DDesc(8, 8, 1, uint32(d3d10.FmtB5G6R5Unorm), shim.UsageShaderResource))
	assert.True(t, h.IsNull())
	assert.ErrorIs(t, err, shim.ErrCreationFailed)
	assert.ErrorIs(t, err, d3d10.ErrInvalidArg)

	h, err = dev.CreateResource(shim.ResourceTypeSurface, colorTexture(8, 8))
	assert.True(t, h.IsNull())
	assert.ErrorIs(t, err, shim.ErrCreationFailed)
	assert.ErrorIs(t, err, shim.ErrUnsupported)

	assert.Zero(t, native.LiveObjects())
}

func TestCreateResourceUnorderedAccessPanics(t *testing.T) {
	dev, _ := newDevice(t, nil)
	desc := colorTexture(8, 8)
	desc.Usage |= shim.UsageUnorderedAccess
	assert.Panics(t, func() { _, _ = dev.CreateResource(shim.ResourceTypeTexture2D, desc) })
}

func TestViewsAreDistinctObjects(t *testing.T) {
	dev, native := newDevice(t, nil)
	res := createResource(t, dev, shim.ResourceTypeTexture2D, colorTexture(64, 64))
	rgba := uint32(d3d10.FmtR8G8B8A8Unorm)

	rtv := createView(t, dev, res, shim.ViewTypeRenderTarget, shim.NewTexture2DViewDesc(rgba, 0, 1))
	srv := createView(t, dev, res, shim.ViewTypeShaderResource, shim.NewTexture2DViewDesc(rgba, 0, 1))
	assert.NotEqual(t, uint64(res), uint64(rtv))
	assert.NotEqual(t, rtv, srv)
	assert.True(t, dev.IsResourceViewHandleValid(rtv))
	assert.True(t, dev.IsResourceViewHandleValid(srv))
	assert.False(t, dev.IsResourceViewHandleValid(shim.ResourceViewHandle(res)))
	assert.Equal(t, res, dev.ResourceFromView(rtv))
	assert.Equal(t, res, dev.ResourceFromView(srv))
	assert.Equal(t, 3, native.LiveObjects())

	typ, desc := dev.ViewDesc(rtv)
	assert.Equal(t, shim.ViewTypeRenderTarget, typ)
	assert.Equal(t, shim.NewTexture2DViewDesc(rgba, 0, 1), desc)
	typ, desc = dev.ViewDesc(srv)
	assert.Equal(t, shim.ViewTypeShaderResource, typ)
	assert.Equal(t, shim.NewTexture2DViewDesc(rgba, 0, 1), desc)
}

func TestViewKeepsResourceAlive(t *testing.T) {
	dev, native := newDevice(t, nil)
	res := createResource(t, dev, shim.ResourceTypeTexture2D, colorTexture(16, 16))
	rtv := createView(t, dev, res, shim.ViewTypeRenderTarget,
		shim.ResourceViewDesc{Format: uint32(d3d10.FmtR8G8B8A8Unorm), Levels: 1})

	dev.DestroyResource(res)
	assert.True(t, dev.IsResourceHandleValid(res), "the view still references the resource")
	assert.Equal(t, res, dev.ResourceFromView(rtv))

	dev.DestroyResourceView(rtv)
	assert.False(t, dev.IsResourceViewHandleValid(rtv))
	assert.False(t, dev.IsResourceHandleValid(res))
	assert.Zero(t, native.LiveObjects())
}

func TestDestroyViewBeforeResource(t *testing.T) {
	dev, native := newDevice(t, nil)
	res := createResource(t, dev, shim.ResourceTypeTexture2D, colorTexture(16, 16))
	srv := createView(t, dev, res, shim.ViewTypeShaderResource, shim.NewTexture2DViewDesc(uint32(d3d10.FmtR8G8B8A8Unorm), 0, 1))

	dev.DestroyResourceView(srv)
	assert.True(t, dev.IsResourceHandleValid(res))
	dev.DestroyResource(res)
	assert.False(t, dev.IsResourceHandleValid(res))
	assert.Zero(t, native.LiveObjects())
}

func TestUnknownDimensionViewResolvesToResource(t *testing.T) {
	dev, _ := newDevice(t, nil)
	desc := colorTexture(64, 64)
	desc.Levels = 0
	res := createResource(t, dev, shim.ResourceTypeTexture2D, desc)
	assert.Equal(t, uint16(7), dev.ResourceDesc(res).Levels)

	srv := createView(t, dev, res, shim.ViewTypeShaderResource, shim.ResourceViewDesc{})
	_, got := dev.ViewDesc(srv)
	assert.Equal(t, shim.ResourceViewDesc{
		Dimension: shim.ViewDimensionTexture2D,
		Format:    uint32(d3d10.FmtR8G8B8A8Unorm),
		Levels:    7,
		Layers:    1,
	}, got)
}

func TestCubeViews(t *testing.T) {
	desc := shim.NewTexture2DDesc(32, 32, 1, uint32(d3d10.FmtR16G16B16A16Float), shim.UsageShaderResource)
	desc.DepthOrLayers = 12
	cube := shim.ResourceViewDesc{
		Dimension: shim.ViewDimensionTextureCube,
		Format:    desc.Format,
		Levels:    1,
		Layers:    shim.LayersPerCube,
	}
	cubes := shim.ResourceViewDesc{
		Dimension: shim.ViewDimensionTextureCubeArray,
		Format:    desc.Format,
		Levels:    1,
		Layers:    12,
	}

	dev, _ := newDevice(t, nil)
	res := createResource(t, dev, shim.ResourceTypeTexture2D, desc)
	tex, ok := dev.NativeResource(res).(*ref.Texture2D)
	require.True(t, ok)
	assert.NotZero(t, tex.Desc().MiscFlags&d3d10.MiscTextureCube, "sampled cube-shaped arrays are cube-compatible")

	v := createView(t, dev, res, shim.ViewTypeShaderResource, cube)
	_, got := dev.ViewDesc(v)
	assert.Equal(t, cube, got)

	v = createView(t, dev, res, shim.ViewTypeShaderResource, cubes)
	_, got = dev.ViewDesc(v)
	assert.Equal(t, cubes, got)

	partial := cubes
	partial.Layers = 7
	v = createView(t, dev, res, shim.ViewTypeShaderResource, partial)
	_, got = dev.ViewDesc(v)
	assert.Equal(t, uint32(shim.LayersPerCube), got.Layers)

	all := cubes
	all.Layers = shim.AllLayers
	h, err := dev.CreateResourceView(res, shim.ViewTypeShaderResource, all)
	assert.True(t, h.IsNull())
	assert.ErrorIs(t, err, shim.ErrCreationFailed)

	t.Run("feature level 10.0", func(t *testing.T) {
		dev, _ := newDevice(t, []ref.Option{ref.WithFeatureLevel(d3d10.FeatureLevel10_0)})
		assert.False(t, dev.Capabilities().SupportsCubeArrays)

		six := desc
		six.DepthOrLayers = shim.LayersPerCube
		res := createResource(t, dev, shim.ResourceTypeTexture2D, six)
		createView(t, dev, res, shim.ViewTypeShaderResource, cube)

		cubes.Layers = shim.LayersPerCube
		h, err := dev.CreateResourceView(res, shim.ViewTypeShaderResource, cubes)
		assert.True(t, h.IsNull())
		assert.ErrorIs(t, err, shim.ErrCreationFailed)
	})
}

func TestBufferShaderResourceView(t *testing.T) {
	dev, _ := newDevice(t, nil)
	buf := createResource(t, dev, shim.ResourceTypeBuffer, shim.NewBufferDesc(1024, shim.UsageShaderResource))
	want := shim.NewBufferViewDesc(uint32(d3d10.FmtR32Float), 8, 32)

	v := createView(t, dev, buf, shim.ViewTypeShaderResource, want)
	typ, got := dev.ViewDesc(v)
	assert.Equal(t, shim.ViewTypeShaderResource, typ)
	assert.Equal(t, want, got)
	assert.Equal(t, uint32(8), got.FirstElement())
	assert.Equal(t, uint32(32), got.ElementCount())
}

func TestCreateResourceViewErrors(t *testing.T) {
	dev, _ := newDevice(t, nil)
	res := createResource(t, dev, shim.ResourceTypeTexture2D,
		shim.NewTexture2DDesc(16, 16, 1, uint32(d3d10.FmtR8G8B8A8Unorm), shim.UsageShaderResource))

	h, err := dev.CreateResourceView(res, shim.ViewTypeRenderTarget, shim.ResourceViewDesc{Levels: 1})
	assert.True(t, h.IsNull())
	assert.ErrorIs(t, err, shim.ErrCreationFailed)
	assert.ErrorIs(t, err, d3d10.ErrInvalidArg)

	h, err = dev.CreateResourceView(res, shim.ViewTypeUnorderedAccess, shim.ResourceViewDesc{})
	assert.True(t, h.IsNull())
	assert.ErrorIs(t, err, shim.ErrUnsupported)

	assert.Panics(t, func() {
		_, _ = dev.CreateResourceView(shim.ResourceHandle(0xdead), shim.ViewTypeShaderResource, shim.ResourceViewDesc{})
	})
}

func TestDrawDispatch(t *testing.T) {
	dev, native := newDevice(t, nil)

	dev.Draw(3, 1, 6, 0)
	dev.Draw(3, 0, 0, 0)
	dev.Draw(36, 10, 0, 2)
	dev.DrawIndexed(6, 1, 12, -4, 0)
	dev.DrawIndexed(6, 4, 0, 2, 1)

	assert.Equal(t, []ref.DrawCall{
		{Count: 3, Instances: 1, Start: 6},
		{Count: 3, Instances: 1},
		{Instanced: true, Count: 36, Instances: 10, StartInstance: 2},
		{Indexed: true, Count: 6, Instances: 1, Start: 12, BaseVertex: -4},
		{Indexed: true, Instanced: true, Count: 6, Instances: 4, BaseVertex: 2, StartInstance: 1},
	}, native.Draws())
}

func TestClearAndCopy(t *testing.T) {
	dev, native := newDevice(t, nil)
	rgba := uint32(d3d10.FmtR8G8B8A8Unorm)
	src := createResource(t, dev, shim.ResourceTypeTexture2D, colorTexture(8, 8))
	dst := createResource(t, dev, shim.ResourceTypeTexture2D, colorTexture(8, 8))

	rtv := createView(t, dev, src, shim.ViewTypeRenderTarget, shim.NewTexture2DViewDesc(rgba, 0, 1))
	dev.ClearRenderTargetView(rtv, [4]float32{1, 0.5, 0, 1})

	srcTex := dev.NativeResource(src).(*ref.Texture2D)
	dstTex := dev.NativeResource(dst).(*ref.Texture2D)
	want := color.RGBA{255, 128, 0, 255}
	assert.Equal(t, want, srcTex.Subresource(0, 0).Image.RGBAAt(3, 5))
	assert.Equal(t, color.RGBA{}, dstTex.Subresource(0, 0).Image.RGBAAt(3, 5))

	dev.CopyResource(src, dst)
	assert.Equal(t, want, dstTex.Subresource(0, 0).Image.RGBAAt(7, 7))
	assert.Zero(t, native.Dropped())

	small := createResource(t, dev, shim.ResourceTypeTexture2D, colorTexture(4, 4))
	dev.CopyResource(src, small)
	assert.Equal(t, 1, native.Dropped(), "copies between different shapes are dropped")
}

func TestClearDepthStencilView(t *testing.T) {
	dev, native := newDevice(t, nil)
	f := uint32(d3d10.FmtD24UnormS8Uint)
	res := createResource(t, dev, shim.ResourceTypeTexture2D, shim.NewTexture2DDesc(8, 8, 1, f, shim.UsageDepthStencil))
	dsv := createView(t, dev, res, shim.ViewTypeDepthStencil,
		shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture2D, Format: f, Levels: 1, Layers: 1})
	sub := dev.NativeResource(res).(*ref.Texture2D).Subresource(0, 0)

	dev.ClearDepthStencilView(dsv, shim.ClearDepth, 0.25, 7)
	assert.Equal(t, float32(0.25), sub.Depth[10])
	assert.Zero(t, sub.Stencil[10])

	dev.ClearDepthStencilView(dsv, shim.ClearStencil, 1, 7)
	assert.Equal(t, float32(0.25), sub.Depth[10])
	assert.Equal(t, uint8(7), sub.Stencil[10])

	dev.ClearDepthStencilView(dsv, shim.ClearDepth|shim.ClearStencil, 2, 1)
	assert.Equal(t, float32(1), sub.Depth[63])
	assert.Equal(t, uint8(1), sub.Stencil[63])
	assert.Zero(t, native.Dropped())

	assert.Panics(t, func() { dev.ClearRenderTargetView(dsv, [4]float32{}) })
}

func TestFlush(t *testing.T) {
	dev, native := newDevice(t, nil)
	dev.Flush()
	dev.Flush()
	assert.Equal(t, 2, native.Flushes())
}

func TestInvalidHandlesPanic(t *testing.T) {
	dev, _ := newDevice(t, nil)
	bogus := shim.ResourceHandle(0x1234)
	assert.False(t, dev.IsResourceHandleValid(bogus))
	assert.False(t, dev.IsResourceHandleValid(shim.NullHandle))
	assert.Panics(t, func() { dev.ResourceDesc(bogus) })
	assert.Panics(t, func() { dev.DestroyResource(bogus) })
	assert.Panics(t, func() { dev.ResourceFromView(shim.ResourceViewHandle(0x1234)) })
	assert.Panics(t, func() { dev.CopyResource(bogus, bogus) })
}
