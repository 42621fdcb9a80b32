// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package webgpu

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shim"
)

// TextureUsage converts abstract usage to WebGPU texture usage. Both
// attachment kinds become RenderAttachment; resolves are copies.
func TextureUsage(u shim.Usage) gputypes.TextureUsage {
	var out gputypes.TextureUsage
	if u.Any(shim.UsageRenderTarget | shim.UsageDepthStencil) {
		out |= gputypes.TextureUsageRenderAttachment
	}
	if u.Any(shim.UsageShaderResource) {
		out |= gputypes.TextureUsageTextureBinding
	}
	if u.Any(shim.UsageUnorderedAccess) {
		out |= gputypes.TextureUsageStorageBinding
	}
	if u.Any(shim.UsageCopySource | shim.UsageResolveSource) {
		out |= gputypes.TextureUsageCopySrc
	}
	if u.Any(shim.UsageCopyDest | shim.UsageResolveDest) {
		out |= gputypes.TextureUsageCopyDst
	}
	return out
}

// FromTextureUsage converts WebGPU texture usage of a texture with the
// given format and sample count to abstract usage. A render attachment is
// a depth-stencil target for depth formats and a color target otherwise;
// color attachments can be resolved from when multisampled and into when
// not.
func FromTextureUsage(u gputypes.TextureUsage, format gputypes.TextureFormat, samples uint32) shim.Usage {
	var out shim.Usage
	if u.Contains(gputypes.TextureUsageRenderAttachment) {
		switch {
		case format.IsDepthStencil():
			out |= shim.UsageDepthStencil
		case samples > 1:
			out |= shim.UsageRenderTarget | shim.UsageResolveSource
		default:
			out |= shim.UsageRenderTarget | shim.UsageResolveDest
		}
	}
	if u.Contains(gputypes.TextureUsageTextureBinding) {
		out |= shim.UsageShaderResource
	}
	if u.Contains(gputypes.TextureUsageStorageBinding) {
		out |= shim.UsageUnorderedAccess
	}
	if u.Contains(gputypes.TextureUsageCopySrc) {
		out |= shim.UsageCopySource
	}
	if u.Contains(gputypes.TextureUsageCopyDst) {
		out |= shim.UsageCopyDest
	}
	return out
}

// BufferUsage converts abstract usage to WebGPU buffer usage. Shader
// resources and unordered access are both storage bindings.
func BufferUsage(u shim.Usage) gputypes.BufferUsage {
	var out gputypes.BufferUsage
	for _, e := range bufferTable {
		if u.Any(e.usage) {
			out |= e.wgpu
		}
	}
	return out
}

// FromBufferUsage converts WebGPU buffer usage to abstract usage. Storage
// bindings become shader resources; mapping and indirect bits have no
// abstract form.
func FromBufferUsage(u gputypes.BufferUsage) shim.Usage {
	var out shim.Usage
	for _, e := range bufferTable {
		if u.Contains(e.wgpu) && e.usage != shim.UsageUnorderedAccess {
			out |= e.usage
		}
	}
	return out
}

var bufferTable = [...]struct {
	usage shim.Usage
	wgpu  gputypes.BufferUsage
}{
	{shim.UsageVertexBuffer, gputypes.BufferUsageVertex},
	{shim.UsageIndexBuffer, gputypes.BufferUsageIndex},
	{shim.UsageConstantBuffer, gputypes.BufferUsageUniform},
	{shim.UsageShaderResource, gputypes.BufferUsageStorage},
	{shim.UsageUnorderedAccess, gputypes.BufferUsageStorage},
	{shim.UsageCopySource, gputypes.BufferUsageCopySrc},
	{shim.UsageCopyDest, gputypes.BufferUsageCopyDst},
}

// ToBufferDescriptor converts a buffer description.
func ToBufferDescriptor(desc shim.ResourceDesc) gputypes.BufferDescriptor {
	return gputypes.BufferDescriptor{
		Label: shim.ResourceTypeBuffer.String(),
		Size:  uint64(desc.Width),
		Usage: BufferUsage(desc.Usage),
	}
}

// FromBufferDescriptor converts a WebGPU buffer descriptor. Buffers larger
// than 4 GiB have no abstract description.
func FromBufferDescriptor(b gputypes.BufferDescriptor) (shim.ResourceDesc, error) {
	if b.Size > math.MaxUint32 {
		return shim.ResourceDesc{}, fmt.Errorf("webgpu: buffer of %d bytes: %w", b.Size, shim.ErrUnsupported)
	}
	return shim.NewBufferDesc(uint32(b.Size), FromBufferUsage(b.Usage)), nil
}

// Codec converts texture and view descriptions of one native generation
// to the WebGPU vocabulary and back.
type Codec struct {
	formats *FormatTable
}

// NewCodec returns a codec for api.
func NewCodec(api shim.API) (*Codec, error) {
	t, err := Formats(api)
	if err != nil {
		return nil, err
	}
	return &Codec{formats: t}, nil
}

// Formats returns the format table of the codec.
func (c *Codec) Formats() *FormatTable { return c.formats }

// ToTextureDescriptor converts a texture description. A level count of
// zero requests the full chain and is expanded, since WebGPU needs an
// explicit count.
func (c *Codec) ToTextureDescriptor(typ shim.ResourceType, desc shim.ResourceDesc) (gputypes.TextureDescriptor, error) {
	var dim gputypes.TextureDimension
	switch typ {
	case shim.ResourceTypeTexture1D:
		dim = gputypes.TextureDimension1D
	case shim.ResourceTypeTexture2D, shim.ResourceTypeSurface:
		dim = gputypes.TextureDimension2D
	case shim.ResourceTypeTexture3D:
		dim = gputypes.TextureDimension3D
	default:
		return gputypes.TextureDescriptor{}, fmt.Errorf("webgpu: %s has no texture descriptor: %w", typ, shim.ErrUnsupported)
	}
	format, err := c.formats.toWebGPU(desc.Format)
	if err != nil {
		return gputypes.TextureDescriptor{}, err
	}

	layers := uint32(max(desc.DepthOrLayers, 1))
	levels := uint32(desc.Levels)
	if levels == 0 {
		largest := max(desc.Width, desc.Height)
		if dim == gputypes.TextureDimension3D {
			largest = max(largest, layers)
		}
		levels = uint32(bits.Len32(largest))
	}
	return gputypes.TextureDescriptor{
		Label: typ.String(),
		Size: gputypes.Extent3D{
			Width:              desc.Width,
			Height:             max(desc.Height, 1),
			DepthOrArrayLayers: layers,
		},
		MipLevelCount: levels,
		SampleCount:   uint32(max(desc.Samples, 1)),
		Dimension:     dim,
		Format:        format,
		Usage:         TextureUsage(desc.Usage),
	}, nil
}

// FromTextureDescriptor converts a WebGPU texture descriptor.
func (c *Codec) FromTextureDescriptor(t gputypes.TextureDescriptor) (shim.ResourceType, shim.ResourceDesc, error) {
	var typ shim.ResourceType
	switch t.Dimension {
	case gputypes.TextureDimension1D:
		typ = shim.ResourceTypeTexture1D
	case gputypes.TextureDimension2D, gputypes.TextureDimensionUndefined:
		typ = shim.ResourceTypeTexture2D
	case gputypes.TextureDimension3D:
		typ = shim.ResourceTypeTexture3D
	default:
		return 0, shim.ResourceDesc{}, fmt.Errorf("webgpu: texture dimension %s: %w", t.Dimension, shim.ErrUnsupported)
	}
	format, err := c.formats.fromWebGPU(t.Format)
	if err != nil {
		return 0, shim.ResourceDesc{}, err
	}
	if t.Size.DepthOrArrayLayers > math.MaxUint16 || t.MipLevelCount > math.MaxUint16 || t.SampleCount > math.MaxUint16 {
		return 0, shim.ResourceDesc{}, fmt.Errorf("webgpu: texture %+v exceeds the abstract description: %w", t.Size, shim.ErrUnsupported)
	}
	samples := max(t.SampleCount, 1)
	return typ, shim.ResourceDesc{
		Width:         t.Size.Width,
		Height:        t.Size.Height,
		DepthOrLayers: uint16(t.Size.DepthOrArrayLayers),
		Levels:        uint16(t.MipLevelCount),
		Format:        format,
		Samples:       uint16(samples),
		Usage:         FromTextureUsage(t.Usage, t.Format, samples),
	}, nil
}

var viewDimensions = map[shim.ViewDimension]gputypes.TextureViewDimension{
	shim.ViewDimensionUnknown:                   gputypes.TextureViewDimensionUndefined,
	shim.ViewDimensionTexture1D:                 gputypes.TextureViewDimension1D,
	shim.ViewDimensionTexture2D:                 gputypes.TextureViewDimension2D,
	shim.ViewDimensionTexture2DArray:            gputypes.TextureViewDimension2DArray,
	shim.ViewDimensionTexture2DMultisample:      gputypes.TextureViewDimension2D,
	shim.ViewDimensionTexture2DMultisampleArray: gputypes.TextureViewDimension2DArray,
	shim.ViewDimensionTexture3D:                 gputypes.TextureViewDimension3D,
	shim.ViewDimensionTextureCube:               gputypes.TextureViewDimensionCube,
	shim.ViewDimensionTextureCubeArray:          gputypes.TextureViewDimensionCubeArray,
}

// ToTextureViewDescriptor converts a view description. WebGPU has neither
// buffer views nor 1D arrays. Multisampled views become their single-sample
// dimension, and "all remaining" counts become zero, which WebGPU reads the
// same way. Volume views always cover one array layer.
func (c *Codec) ToTextureViewDescriptor(desc shim.ResourceViewDesc) (gputypes.TextureViewDescriptor, error) {
	dim, ok := viewDimensions[desc.Dimension]
	if !ok {
		return gputypes.TextureViewDescriptor{}, fmt.Errorf("webgpu: view dimension %s: %w", desc.Dimension, shim.ErrUnsupported)
	}
	v := gputypes.TextureViewDescriptor{
		Label:           desc.Dimension.String(),
		Dimension:       dim,
		Aspect:          gputypes.TextureAspectAll,
		BaseMipLevel:    desc.FirstLevel,
		MipLevelCount:   count(desc.Levels),
		BaseArrayLayer:  desc.FirstLayer,
		ArrayLayerCount: count(desc.Layers),
	}
	if dim == gputypes.TextureViewDimension3D {
		v.BaseArrayLayer, v.ArrayLayerCount = 0, 1
	}
	if desc.Format != 0 {
		f, err := c.formats.toWebGPU(desc.Format)
		if err != nil {
			return gputypes.TextureViewDescriptor{}, err
		}
		v.Format = f
	}
	return v, nil
}

// FromTextureViewDescriptor converts a WebGPU view descriptor. Zero counts
// become "all remaining", cubes cover six layers and volumes none.
func (c *Codec) FromTextureViewDescriptor(v gputypes.TextureViewDescriptor) (shim.ResourceViewDesc, error) {
	desc := shim.ResourceViewDesc{
		FirstLevel: v.BaseMipLevel,
		Levels:     uncount(v.MipLevelCount),
		FirstLayer: v.BaseArrayLayer,
		Layers:     uncount(v.ArrayLayerCount),
	}
	switch v.Dimension {
	case gputypes.TextureViewDimensionUndefined:
		desc.Dimension = shim.ViewDimensionUnknown
	case gputypes.TextureViewDimension1D:
		desc.Dimension = shim.ViewDimensionTexture1D
	case gputypes.TextureViewDimension2D:
		desc.Dimension = shim.ViewDimensionTexture2D
	case gputypes.TextureViewDimension2DArray:
		desc.Dimension = shim.ViewDimensionTexture2DArray
	case gputypes.TextureViewDimensionCube:
		desc.Dimension = shim.ViewDimensionTextureCube
		desc.Layers = shim.LayersPerCube
	case gputypes.TextureViewDimensionCubeArray:
		desc.Dimension = shim.ViewDimensionTextureCubeArray
	case gputypes.TextureViewDimension3D:
		desc.Dimension = shim.ViewDimensionTexture3D
		desc.FirstLayer, desc.Layers = 0, 0
	default:
		return shim.ResourceViewDesc{}, fmt.Errorf("webgpu: view dimension %s: %w", v.Dimension, shim.ErrUnsupported)
	}
	if v.Format != gputypes.TextureFormatUndefined {
		f, err := c.formats.fromWebGPU(v.Format)
		if err != nil {
			return shim.ResourceViewDesc{}, err
		}
		desc.Format = f
	}
	return desc, nil
}

func count(n uint32) uint32 {
	if n == shim.AllLevels {
		return 0
	}
	return n
}

func uncount(n uint32) uint32 {
	if n == 0 {
		return shim.AllLevels
	}
	return n
}
