// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package webgpu

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/shim"
	"github.com/gogpu/shim/d3d10"
	"github.com/gogpu/shim/d3d9"
)

func newCodec(t *testing.T, api shim.API) *Codec {
	t.Helper()
	c, err := NewCodec(api)
	require.NoError(t, err)
	return c
}

func TestTextureUsage(t *testing.T) {
	tests := []struct {
		name  string
		usage shim.Usage
		want  gputypes.TextureUsage
	}{
		{"none", shim.UsageNone, gputypes.TextureUsageNone},
		{"render target", shim.UsageRenderTarget, gputypes.TextureUsageRenderAttachment},
		{"depth stencil", shim.UsageDepthStencil, gputypes.TextureUsageRenderAttachment},
		{"sampled", shim.UsageShaderResource, gputypes.TextureUsageTextureBinding},
		{"storage", shim.UsageUnorderedAccess, gputypes.TextureUsageStorageBinding},
		{"resolve source", shim.UsageResolveSource, gputypes.TextureUsageCopySrc},
		{"resolve dest", shim.UsageResolveDest, gputypes.TextureUsageCopyDst},
		{"buffer bits", shim.UsageVertexBuffer | shim.UsageConstantBuffer, gputypes.TextureUsageNone},
		{
			"copyable target",
			shim.UsageRenderTarget | shim.UsageCopySource | shim.UsageCopyDest,
			gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc | gputypes.TextureUsageCopyDst,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TextureUsage(tt.usage))
		})
	}
}

func TestFromTextureUsage(t *testing.T) {
	ra := gputypes.TextureUsageRenderAttachment
	assert.Equal(t, shim.UsageDepthStencil, FromTextureUsage(ra, gputypes.TextureFormatDepth24PlusStencil8, 1))
	assert.Equal(t, shim.UsageRenderTarget|shim.UsageResolveDest, FromTextureUsage(ra, gputypes.TextureFormatRGBA8Unorm, 1))
	assert.Equal(t, shim.UsageRenderTarget|shim.UsageResolveSource, FromTextureUsage(ra, gputypes.TextureFormatRGBA8Unorm, 4))
	assert.Equal(t,
		shim.UsageShaderResource|shim.UsageUnorderedAccess|shim.UsageCopySource|shim.UsageCopyDest,
		FromTextureUsage(gputypes.TextureUsageTextureBinding|gputypes.TextureUsageStorageBinding|
			gputypes.TextureUsageCopySrc|gputypes.TextureUsageCopyDst, gputypes.TextureFormatR32Float, 1))
}

func TestBufferDescriptor(t *testing.T) {
	desc := shim.NewBufferDesc(4096,
		shim.UsageVertexBuffer|shim.UsageIndexBuffer|shim.UsageConstantBuffer|shim.UsageCopySource|shim.UsageCopyDest)

	b := ToBufferDescriptor(desc)
	assert.Equal(t, uint64(4096), b.Size)
	assert.Equal(t, "Buffer", b.Label)
	assert.False(t, b.MappedAtCreation)
	assert.Equal(t, gputypes.BufferUsageVertex|gputypes.BufferUsageIndex|gputypes.BufferUsageUniform|
		gputypes.BufferUsageCopySrc|gputypes.BufferUsageCopyDst, b.Usage)

	back, err := FromBufferDescriptor(b)
	require.NoError(t, err)
	assert.Equal(t, desc, back)

	storage := ToBufferDescriptor(shim.NewBufferDesc(16, shim.UsageUnorderedAccess|shim.UsageShaderResource))
	assert.Equal(t, gputypes.BufferUsageStorage, storage.Usage)
	back, err = FromBufferDescriptor(storage)
	require.NoError(t, err)
	assert.Equal(t, shim.UsageShaderResource, back.Usage)

	_, err = FromBufferDescriptor(gputypes.BufferDescriptor{Size: 1 << 33})
	assert.ErrorIs(t, err, shim.ErrUnsupported)
	got, err := FromBufferDescriptor(gputypes.BufferDescriptor{Size: 64, Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageIndirect})
	require.NoError(t, err)
	assert.Equal(t, shim.UsageNone, got.Usage)
}

func TestTextureDescriptorRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		api  shim.API
		typ  shim.ResourceType
		desc shim.ResourceDesc
		dim  gputypes.TextureDimension
		want gputypes.TextureFormat
	}{
		{
			"d3d9 texture", shim.APID3D9, shim.ResourceTypeTexture2D,
			shim.NewTexture2DDesc(256, 128, 4, uint32(d3d9.FmtA8R8G8B8), shim.UsageRenderTarget|shim.UsageShaderResource),
			gputypes.TextureDimension2D, gputypes.TextureFormatBGRA8Unorm,
		},
		{
			"d3d9 cube", shim.APID3D9, shim.ResourceTypeTexture2D,
			shim.ResourceDesc{Width: 64, Height: 64, DepthOrLayers: 6, Levels: 1, Format: uint32(d3d9.FmtDXT5), Samples: 1, Usage: shim.UsageShaderResource},
			gputypes.TextureDimension2D, gputypes.TextureFormatBC3RGBAUnorm,
		},
		{
			"d3d10 1d array", shim.APID3D10, shim.ResourceTypeTexture1D,
			shim.ResourceDesc{Width: 512, Height: 1, DepthOrLayers: 3, Levels: 2, Format: uint32(d3d10.FmtR16Float), Samples: 1, Usage: shim.UsageShaderResource},
			gputypes.TextureDimension1D, gputypes.TextureFormatR16Float,
		},
		{
			"d3d10 multisampled", shim.APID3D10, shim.ResourceTypeTexture2D,
			shim.ResourceDesc{Width: 32, Height: 32, DepthOrLayers: 1, Levels: 1, Format: uint32(d3d10.FmtD24UnormS8Uint), Samples: 4, Usage: shim.UsageDepthStencil},
			gputypes.TextureDimension2D, gputypes.TextureFormatDepth24PlusStencil8,
		},
		{
			"d3d10 volume", shim.APID3D10, shim.ResourceTypeTexture3D,
			shim.ResourceDesc{Width: 16, Height: 16, DepthOrLayers: 8, Levels: 1, Format: uint32(d3d10.FmtR8G8B8A8Unorm), Samples: 1, Usage: shim.UsageShaderResource | shim.UsageCopyDest},
			gputypes.TextureDimension3D, gputypes.TextureFormatRGBA8Unorm,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCodec(t, tt.api)
			td, err := c.ToTextureDescriptor(tt.typ, tt.desc)
			require.NoError(t, err)
			assert.Equal(t, tt.dim, td.Dimension)
			assert.Equal(t, tt.want, td.Format)
			assert.Equal(t, tt.desc.Width, td.Size.Width)
			assert.Equal(t, uint32(tt.desc.DepthOrLayers), td.Size.DepthOrArrayLayers)
			assert.Equal(t, uint32(tt.desc.Levels), td.MipLevelCount)
			assert.Equal(t, uint32(tt.desc.Samples), td.SampleCount)
			assert.False(t, td.Usage.ContainsUnknownBits())

			typ, back, err := c.FromTextureDescriptor(td)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, typ)
			assert.Equal(t, tt.desc.Width, back.Width)
			assert.Equal(t, tt.desc.Height, back.Height)
			assert.Equal(t, tt.desc.DepthOrLayers, back.DepthOrLayers)
			assert.Equal(t, tt.desc.Levels, back.Levels)
			assert.Equal(t, tt.desc.Format, back.Format)
			assert.Equal(t, tt.desc.Samples, back.Samples)
			assert.True(t, back.Usage.Has(tt.desc.Usage), "usage %s lost bits of %s", back.Usage, tt.desc.Usage)
		})
	}
}

func TestTextureDescriptorFullChain(t *testing.T) {
	c := newCodec(t, shim.APID3D10)
	desc := shim.NewTexture2DDesc(256, 64, 0, uint32(d3d10.FmtR8G8B8A8Unorm), shim.UsageShaderResource)
	td, err := c.ToTextureDescriptor(shim.ResourceTypeTexture2D, desc)
	require.NoError(t, err)
	assert.Equal(t, uint32(9), td.MipLevelCount)

	vol := shim.ResourceDesc{Width: 4, Height: 4, DepthOrLayers: 32, Format: uint32(d3d10.FmtR8G8B8A8Unorm), Samples: 1}
	td, err = c.ToTextureDescriptor(shim.ResourceTypeTexture3D, vol)
	require.NoError(t, err)
	assert.Equal(t, uint32(6), td.MipLevelCount, "volume chains follow the depth too")
}

func TestTextureDescriptorErrors(t *testing.T) {
	c := newCodec(t, shim.APID3D10)

	_, err := c.ToTextureDescriptor(shim.ResourceTypeBuffer, shim.NewBufferDesc(64, shim.UsageVertexBuffer))
	assert.ErrorIs(t, err, shim.ErrUnsupported)

	_, err = c.ToTextureDescriptor(shim.ResourceTypeTexture2D,
		shim.NewTexture2DDesc(8, 8, 1, uint32(d3d10.FmtR24G8Typeless), shim.UsageDepthStencil))
	assert.ErrorIs(t, err, shim.ErrUnsupported)

	_, _, err = c.FromTextureDescriptor(gputypes.TextureDescriptor{
		Size: gputypes.Extent3D{Width: 8, Height: 8, DepthOrArrayLayers: 1}, MipLevelCount: 1, SampleCount: 1,
		Dimension: gputypes.TextureDimension2D, Format: gputypes.TextureFormatASTC4x4Unorm,
	})
	assert.ErrorIs(t, err, shim.ErrUnsupported)

	_, _, err = c.FromTextureDescriptor(gputypes.TextureDescriptor{
		Size: gputypes.Extent3D{Width: 8, Height: 8, DepthOrArrayLayers: 1 << 17}, MipLevelCount: 1, SampleCount: 1,
		Dimension: gputypes.TextureDimension2D, Format: gputypes.TextureFormatRGBA8Unorm,
	})
	assert.ErrorIs(t, err, shim.ErrUnsupported)
}

func TestTextureViewDescriptorRoundTrip(t *testing.T) {
	c := newCodec(t, shim.APID3D10)
	rgba := uint32(d3d10.FmtR8G8B8A8Unorm)
	tests := []struct {
		name string
		desc shim.ResourceViewDesc
		dim  gputypes.TextureViewDimension
	}{
		{"1d", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture1D, Format: rgba, Levels: 1, Layers: 1}, gputypes.TextureViewDimension1D},
		{"2d", shim.NewTexture2DViewDesc(rgba, 1, 3), gputypes.TextureViewDimension2D},
		{"2d all levels", shim.NewTexture2DViewDesc(rgba, 0, shim.AllLevels), gputypes.TextureViewDimension2D},
		{"2d array", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture2DArray, Format: rgba, Levels: 1, FirstLayer: 2, Layers: 4}, gputypes.TextureViewDimension2DArray},
		{"cube", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTextureCube, Format: rgba, Levels: 2, Layers: 6}, gputypes.TextureViewDimensionCube},
		{"cube array", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTextureCubeArray, Format: rgba, Levels: 1, FirstLayer: 6, Layers: 12}, gputypes.TextureViewDimensionCubeArray},
		{"3d", shim.ResourceViewDesc{Dimension: shim.ViewDimensionTexture3D, Format: rgba, Levels: 2}, gputypes.TextureViewDimension3D},
		{"unknown", shim.ResourceViewDesc{Levels: shim.AllLevels, Layers: shim.AllLayers}, gputypes.TextureViewDimensionUndefined},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := c.ToTextureViewDescriptor(tt.desc)
			require.NoError(t, err)
			assert.Equal(t, tt.dim, v.Dimension)
			assert.Equal(t, gputypes.TextureAspectAll, v.Aspect)

			back, err := c.FromTextureViewDescriptor(v)
			require.NoError(t, err)
			assert.Equal(t, tt.desc, back)
		})
	}
}

func TestTextureViewDescriptorCounts(t *testing.T) {
	c := newCodec(t, shim.APID3D9)
	v, err := c.ToTextureViewDescriptor(shim.NewTexture2DViewDesc(0, 2, shim.AllLevels))
	require.NoError(t, err)
	assert.Equal(t, gputypes.TextureFormatUndefined, v.Format, "an unknown format inherits the texture format")
	assert.Equal(t, uint32(2), v.BaseMipLevel)
	assert.Zero(t, v.MipLevelCount)
	assert.Equal(t, uint32(1), v.ArrayLayerCount)

	v, err = c.ToTextureViewDescriptor(shim.ResourceViewDesc{
		Dimension: shim.ViewDimensionTexture3D, Format: uint32(d3d9.FmtA8R8G8B8), Levels: 1, FirstLayer: 3, Layers: 2,
	})
	require.NoError(t, err)
	assert.Zero(t, v.BaseArrayLayer)
	assert.Equal(t, uint32(1), v.ArrayLayerCount, "volume views cover one layer")

	v, err = c.ToTextureViewDescriptor(shim.ResourceViewDesc{
		Dimension: shim.ViewDimensionTexture2DMultisampleArray, Format: uint32(d3d9.FmtA8R8G8B8), Levels: 1, Layers: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, gputypes.TextureViewDimension2DArray, v.Dimension)
}

func TestTextureViewDescriptorErrors(t *testing.T) {
	c := newCodec(t, shim.APID3D10)
	for name, desc := range map[string]shim.ResourceViewDesc{
		"buffer":   shim.NewBufferViewDesc(uint32(d3d10.FmtR32Float), 0, 16),
		"1d array": {Dimension: shim.ViewDimensionTexture1DArray, Format: uint32(d3d10.FmtR32Float), Levels: 1, Layers: 2},
		"typeless": shim.NewTexture2DViewDesc(uint32(d3d10.FmtR32Typeless), 0, 1),
	} {
		_, err := c.ToTextureViewDescriptor(desc)
		assert.ErrorIs(t, err, shim.ErrUnsupported, name)
	}

	_, err := c.FromTextureViewDescriptor(gputypes.TextureViewDescriptor{Dimension: 42})
	assert.ErrorIs(t, err, shim.ErrUnsupported)
	_, err = c.FromTextureViewDescriptor(gputypes.TextureViewDescriptor{
		Dimension: gputypes.TextureViewDimension2D, Format: gputypes.TextureFormatETC2RGB8Unorm,
	})
	assert.ErrorIs(t, err, shim.ErrUnsupported)
}
