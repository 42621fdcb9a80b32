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

func TestFormatTables(t *testing.T) {
	for api, entries := range map[shim.API][]formatEntry{
		shim.APID3D9:  d3d9Formats,
		shim.APID3D10: d3d10Formats,
	} {
		t.Run(api.String(), func(t *testing.T) {
			table, err := Formats(api)
			require.NoError(t, err)
			assert.Equal(t, api, table.API())
			assert.Equal(t, len(entries), table.Len(), "duplicate native formats")

			exact := make(map[gputypes.TextureFormat]int)
			for _, e := range entries {
				got, ok := table.ToWebGPU(e.native)
				assert.True(t, ok, "format %d", e.native)
				assert.Equal(t, e.wgpu, got, "format %d", e.native)

				back, ok := table.FromWebGPU(e.wgpu)
				assert.True(t, ok, "%s", e.wgpu)
				if e.lossy {
					assert.NotEqual(t, e.native, back, "lossy format %d chosen for %s", e.native, e.wgpu)
				} else {
					exact[e.wgpu]++
					assert.Equal(t, e.native, back, "%s", e.wgpu)
				}
			}
			for f, n := range exact {
				assert.Equal(t, 1, n, "%s has %d exact native formats", f, n)
			}
		})
	}
}

func TestFormatsUnknownAPI(t *testing.T) {
	_, err := Formats(shim.APIUnknown)
	assert.ErrorIs(t, err, shim.ErrUnsupported)
	_, err = NewCodec(shim.APIUnknown)
	assert.ErrorIs(t, err, shim.ErrUnsupported)
}

func TestFormatsWithoutEquivalent(t *testing.T) {
	d9, _ := Formats(shim.APID3D9)
	for _, f := range []d3d9.Format{d3d9.FmtL8, d3d9.FmtA8, d3d9.FmtR5G6B5, d3d9.FmtNull, d3d9.FmtIndex16} {
		_, ok := d9.ToWebGPU(uint32(f))
		assert.False(t, ok, "d3d9 format %d", f)
	}

	d10, _ := Formats(shim.APID3D10)
	for _, f := range []d3d10.Format{d3d10.FmtUnknown, d3d10.FmtR8G8B8A8Typeless, d3d10.FmtR24G8Typeless, d3d10.FmtA8Unorm} {
		_, ok := d10.ToWebGPU(uint32(f))
		assert.False(t, ok, "d3d10 format %s", f)
	}

	_, ok := d9.FromWebGPU(gputypes.TextureFormatBC7RGBAUnorm)
	assert.False(t, ok)
	_, ok = d10.FromWebGPU(gputypes.TextureFormatUndefined)
	assert.False(t, ok)
}

func TestDepthFormatsStayDepth(t *testing.T) {
	for _, table := range []*FormatTable{d3d9Table, d3d10Table} {
		for native, f := range table.toWGPU {
			back, ok := table.FromWebGPU(f)
			require.True(t, ok)
			nf, _ := table.ToWebGPU(back)
			assert.Equal(t, f.IsDepthStencil(), nf.IsDepthStencil(), "%s format %d", table.API(), native)
		}
	}
}
