package d3d9

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/shim"
)

// Draw draws vertices as a triangle list. This generation has no
// instancing: more than one instance or a non-zero first instance panics.
func (d *Device) Draw(vertices, instances, firstVertex, firstInstance uint32) {
	checkNotInstanced(instances, firstInstance)
	if err := d.native.DrawPrimitive(PTTriangleList, firstVertex, vertices/3); err != nil {
		shim.Logger().Debug("d3d9: draw", "err", err)
	}
}

// DrawIndexed draws indices as a triangle list. See Draw for instancing.
func (d *Device) DrawIndexed(indices, instances, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	checkNotInstanced(instances, firstInstance)
	if err := d.native.DrawIndexedPrimitive(PTTriangleList, vertexOffset, 0, indices, firstIndex, indices/3); err != nil {
		shim.Logger().Debug("d3d9: draw indexed", "err", err)
	}
}

func checkNotInstanced(instances, firstInstance uint32) {
	if instances > 1 || firstInstance != 0 {
		panic("d3d9: instanced drawing is not supported")
	}
}

type copyPair struct {
	src, dst ResourceType
}

// CopyResource copies src into dst. Pairs involving a standalone surface
// go through StretchRect, using the top level of a texture side. Copies
// between two textures are drawn with the copy pipeline; only the top level
// is transferred. Other pairs panic.
func (d *Device) CopyResource(src, dst shim.ResourceHandle) {
	s := d.lookup(uint64(src))
	t := d.lookup(uint64(dst))

	var err error
	switch (copyPair{s.Type(), t.Type()}) {
	case copyPair{RTypeSurface, RTypeSurface}:
		err = d.native.StretchRect(s.(Surface9), nil, t.(Surface9), nil, TexFNone)

	case copyPair{RTypeSurface, RTypeTexture}:
		err = withTopLevel(t.(Texture9), func(level Surface9) error {
			return d.native.StretchRect(s.(Surface9), nil, level, nil, TexFNone)
		})

	case copyPair{RTypeTexture, RTypeSurface}:
		err = withTopLevel(s.(Texture9), func(level Surface9) error {
			return d.native.StretchRect(level, nil, t.(Surface9), nil, TexFNone)
		})

	case copyPair{RTypeTexture, RTypeTexture}:
		err = d.drawCopy(s.(Texture9), t.(Texture9))

	default:
		panic("d3d9: cannot copy " + s.Type().String() + " to " + t.Type().String())
	}
	if err != nil {
		shim.Logger().Debug("d3d9: copy resource", "src", src, "dst", dst, "err", err)
	}
}

func withTopLevel(tex Texture9, fn func(Surface9) error) error {
	level, err := tex.SurfaceLevel(0)
	if err != nil {
		return err
	}
	defer level.Release()
	return fn(level)
}

// quadVertices is a triangle strip covering clip space, laid out as
// FVFXYZ|FVFTex1: x, y, z, u, v.
var quadVertices = packFloats([][5]float32{
	{-1, 1, 0, 0, 0},
	{1, 1, 0, 1, 0},
	{-1, -1, 0, 0, 1},
	{1, -1, 0, 1, 1},
})

const quadStride = 5 * 4

func packFloats(vertices [][5]float32) []byte {
	b := make([]byte, 0, len(vertices)*quadStride)
	for _, v := range vertices {
		for _, f := range v {
			b = binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
		}
	}
	return b
}

// drawCopy renders src into the top level of dst with the copy pipeline.
// Every state it changes is restored before it returns.
func (d *Device) drawCopy(src, dst Texture9) error {
	if n := src.LevelCount(); n > 1 {
		shim.Logger().Warn("d3d9: texture copy transfers the top level only", "levels", n)
	}
	return d.withBackup(func() error {
		if err := d.copyState.Apply(); err != nil {
			return err
		}
		return withTopLevel(dst, func(target Surface9) error {
			if err := d.native.SetTexture(0, src); err != nil {
				return err
			}
			if err := d.bindRenderTarget(target); err != nil {
				return err
			}
			if err := d.native.SetDepthStencilSurface(nil); err != nil {
				return err
			}
			return d.native.DrawPrimitiveUP(PTTriangleStrip, 2, quadVertices, quadStride)
		})
	})
}

// bindRenderTarget binds s to slot 0 and empties the other slots.
func (d *Device) bindRenderTarget(s Surface9) error {
	if err := d.native.SetRenderTarget(0, s); err != nil {
		return err
	}
	for i := uint32(1); i < d.caps.NumSimultaneousRTs; i++ {
		if err := d.native.SetRenderTarget(i, nil); err != nil {
			return err
		}
	}
	return nil
}

// ClearDepthStencilView clears dsv by binding it as the depth-stencil
// surface for the duration of the clear.
func (d *Device) ClearDepthStencilView(dsv shim.ResourceViewHandle, flags shim.ClearFlags, depth float32, stencil uint8) {
	s := d.lookupSurface(uint64(dsv))

	var native ClearFlags
	if flags&shim.ClearDepth != 0 {
		native |= ClearZBuffer
	}
	if flags&shim.ClearStencil != 0 {
		native |= ClearStencil
	}

	err := d.withBackup(func() error {
		if err := d.native.SetDepthStencilSurface(s); err != nil {
			return err
		}
		return d.native.Clear(nil, native, 0, depth, uint32(stencil))
	})
	if err != nil {
		shim.Logger().Debug("d3d9: clear depth-stencil view", "view", dsv, "err", err)
	}
}

// ClearRenderTargetView clears rtv by binding it as the only render target
// for the duration of the clear.
func (d *Device) ClearRenderTargetView(rtv shim.ResourceViewHandle, color [4]float32) {
	s := d.lookupSurface(uint64(rtv))

	err := d.withBackup(func() error {
		if err := d.bindRenderTarget(s); err != nil {
			return err
		}
		return d.native.Clear(nil, ClearTarget, ColorValue(color[0], color[1], color[2], color[3]), 0, 0)
	})
	if err != nil {
		shim.Logger().Debug("d3d9: clear render target view", "view", rtv, "err", err)
	}
}

// withBackup runs fn between a state capture and its restore.
func (d *Device) withBackup(fn func() error) error {
	if d.state != StateActive {
		return ErrDeviceReset
	}
	restore, err := d.backup.capture(d.caps.NumSimultaneousRTs)
	if err != nil {
		return err
	}
	defer restore()
	return fn()
}
