// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package webgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shim"
	"github.com/gogpu/shim/d3d10"
	"github.com/gogpu/shim/d3d9"
)

// formatEntry pairs a native format with its WebGPU equivalent. Lossy
// entries map to WebGPU but are never chosen when mapping back, because a
// closer native format exists.
type formatEntry struct {
	native uint32
	wgpu   gputypes.TextureFormat
	lossy  bool
}

var d3d9Formats = []formatEntry{
	{uint32(d3d9.FmtA8R8G8B8), gputypes.TextureFormatBGRA8Unorm, false},
	{uint32(d3d9.FmtX8R8G8B8), gputypes.TextureFormatBGRA8Unorm, true},
	{uint32(d3d9.FmtA8B8G8R8), gputypes.TextureFormatRGBA8Unorm, false},
	{uint32(d3d9.FmtX8B8G8R8), gputypes.TextureFormatRGBA8Unorm, true},
	{uint32(d3d9.FmtA2B10G10R10), gputypes.TextureFormatRGB10A2Unorm, false},
	{uint32(d3d9.FmtG16R16), gputypes.TextureFormatRG16Unorm, false},
	{uint32(d3d9.FmtA16B16G16R16), gputypes.TextureFormatRGBA16Unorm, false},
	{uint32(d3d9.FmtR16F), gputypes.TextureFormatR16Float, false},
	{uint32(d3d9.FmtG16R16F), gputypes.TextureFormatRG16Float, false},
	{uint32(d3d9.FmtA16B16G16R16F), gputypes.TextureFormatRGBA16Float, false},
	{uint32(d3d9.FmtR32F), gputypes.TextureFormatR32Float, false},
	{uint32(d3d9.FmtG32R32F), gputypes.TextureFormatRG32Float, false},
	{uint32(d3d9.FmtA32B32G32R32F), gputypes.TextureFormatRGBA32Float, false},
	{uint32(d3d9.FmtD16), gputypes.TextureFormatDepth16Unorm, false},
	{uint32(d3d9.FmtD16Lockable), gputypes.TextureFormatDepth16Unorm, true},
	{uint32(d3d9.FmtD24X8), gputypes.TextureFormatDepth24Plus, false},
	{uint32(d3d9.FmtD24S8), gputypes.TextureFormatDepth24PlusStencil8, false},
	{uint32(d3d9.FmtINTZ), gputypes.TextureFormatDepth24PlusStencil8, true},
	{uint32(d3d9.FmtD32FLockable), gputypes.TextureFormatDepth32Float, false},
	{uint32(d3d9.FmtDXT1), gputypes.TextureFormatBC1RGBAUnorm, false},
	{uint32(d3d9.FmtDXT2), gputypes.TextureFormatBC2RGBAUnorm, true},
	{uint32(d3d9.FmtDXT3), gputypes.TextureFormatBC2RGBAUnorm, false},
	{uint32(d3d9.FmtDXT4), gputypes.TextureFormatBC3RGBAUnorm, true},
	{uint32(d3d9.FmtDXT5), gputypes.TextureFormatBC3RGBAUnorm, false},
}

var d3d10Formats = []formatEntry{
	{uint32(d3d10.FmtR32G32B32A32Float), gputypes.TextureFormatRGBA32Float, false},
	{uint32(d3d10.FmtR16G16B16A16Float), gputypes.TextureFormatRGBA16Float, false},
	{uint32(d3d10.FmtR16G16B16A16Unorm), gputypes.TextureFormatRGBA16Unorm, false},
	{uint32(d3d10.FmtR32G32Float), gputypes.TextureFormatRG32Float, false},
	{uint32(d3d10.FmtD32FloatS8X24Uint), gputypes.TextureFormatDepth32FloatStencil8, false},
	{uint32(d3d10.FmtR10G10B10A2Unorm), gputypes.TextureFormatRGB10A2Unorm, false},
	{uint32(d3d10.FmtR11G11B10Float), gputypes.TextureFormatRG11B10Ufloat, false},
	{uint32(d3d10.FmtR8G8B8A8Unorm), gputypes.TextureFormatRGBA8Unorm, false},
	{uint32(d3d10.FmtR8G8B8A8UnormSRGB), gputypes.TextureFormatRGBA8UnormSrgb, false},
	{uint32(d3d10.FmtR16G16Float), gputypes.TextureFormatRG16Float, false},
	{uint32(d3d10.FmtR16G16Unorm), gputypes.TextureFormatRG16Unorm, false},
	{uint32(d3d10.FmtD32Float), gputypes.TextureFormatDepth32Float, false},
	{uint32(d3d10.FmtR32Float), gputypes.TextureFormatR32Float, false},
	{uint32(d3d10.FmtR32Uint), gputypes.TextureFormatR32Uint, false},
	{uint32(d3d10.FmtD24UnormS8Uint), gputypes.TextureFormatDepth24PlusStencil8, false},
	{uint32(d3d10.FmtR8G8Unorm), gputypes.TextureFormatRG8Unorm, false},
	{uint32(d3d10.FmtR16Float), gputypes.TextureFormatR16Float, false},
	{uint32(d3d10.FmtD16Unorm), gputypes.TextureFormatDepth16Unorm, false},
	{uint32(d3d10.FmtR16Unorm), gputypes.TextureFormatR16Unorm, false},
	{uint32(d3d10.FmtR16Uint), gputypes.TextureFormatR16Uint, false},
	{uint32(d3d10.FmtR8Unorm), gputypes.TextureFormatR8Unorm, false},
	{uint32(d3d10.FmtBC1Unorm), gputypes.TextureFormatBC1RGBAUnorm, false},
	{uint32(d3d10.FmtBC1UnormSRGB), gputypes.TextureFormatBC1RGBAUnormSrgb, false},
	{uint32(d3d10.FmtBC2Unorm), gputypes.TextureFormatBC2RGBAUnorm, false},
	{uint32(d3d10.FmtBC3Unorm), gputypes.TextureFormatBC3RGBAUnorm, false},
	{uint32(d3d10.FmtBC4Unorm), gputypes.TextureFormatBC4RUnorm, false},
	{uint32(d3d10.FmtBC5Unorm), gputypes.TextureFormatBC5RGUnorm, false},
	{uint32(d3d10.FmtB8G8R8A8Unorm), gputypes.TextureFormatBGRA8Unorm, false},
	{uint32(d3d10.FmtB8G8R8X8Unorm), gputypes.TextureFormatBGRA8Unorm, true},
	{uint32(d3d10.FmtB8G8R8A8UnormSRGB), gputypes.TextureFormatBGRA8UnormSrgb, false},
}

// FormatTable maps the formats of one native generation to WebGPU texture
// formats and back. Native formats without a WebGPU equivalent, such as
// typeless or luminance formats, are absent.
type FormatTable struct {
	api      shim.API
	toWGPU   map[uint32]gputypes.TextureFormat
	toNative map[gputypes.TextureFormat]uint32
}

var (
	d3d9Table  = newFormatTable(shim.APID3D9, d3d9Formats)
	d3d10Table = newFormatTable(shim.APID3D10, d3d10Formats)
)

func newFormatTable(api shim.API, entries []formatEntry) *FormatTable {
	t := &FormatTable{
		api:      api,
		toWGPU:   make(map[uint32]gputypes.TextureFormat, len(entries)),
		toNative: make(map[gputypes.TextureFormat]uint32, len(entries)),
	}
	for _, e := range entries {
		t.toWGPU[e.native] = e.wgpu
		if !e.lossy {
			t.toNative[e.wgpu] = e.native
		}
	}
	return t
}

// Formats returns the format table of api.
func Formats(api shim.API) (*FormatTable, error) {
	switch api {
	case shim.APID3D9:
		return d3d9Table, nil
	case shim.APID3D10:
		return d3d10Table, nil
	default:
		return nil, fmt.Errorf("webgpu: no format table for api %s: %w", api, shim.ErrUnsupported)
	}
}

// API returns the native generation of the table.
func (t *FormatTable) API() shim.API { return t.api }

// Len returns the number of native formats with a WebGPU equivalent.
func (t *FormatTable) Len() int { return len(t.toWGPU) }

// ToWebGPU returns the WebGPU format of a native format.
func (t *FormatTable) ToWebGPU(format uint32) (gputypes.TextureFormat, bool) {
	f, ok := t.toWGPU[format]
	return f, ok
}

// FromWebGPU returns the native format closest to f.
func (t *FormatTable) FromWebGPU(f gputypes.TextureFormat) (uint32, bool) {
	n, ok := t.toNative[f]
	return n, ok
}

func (t *FormatTable) toWebGPU(format uint32) (gputypes.TextureFormat, error) {
	f, ok := t.toWGPU[format]
	if !ok {
		return gputypes.TextureFormatUndefined, fmt.Errorf("webgpu: %s format %d: %w", t.api, format, shim.ErrUnsupported)
	}
	return f, nil
}

func (t *FormatTable) fromWebGPU(f gputypes.TextureFormat) (uint32, error) {
	n, ok := t.toNative[f]
	if !ok {
		return 0, fmt.Errorf("webgpu: %s has no format %s: %w", t.api, f, shim.ErrUnsupported)
	}
	return n, nil
}
