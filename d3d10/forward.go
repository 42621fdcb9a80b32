package d3d10

import "github.com/gogpu/shim"

// Draw forwards to Draw, or to DrawInstanced for more than one instance.
func (d *Device) Draw(vertices, instances, firstVertex, firstInstance uint32) {
	if instances <= 1 {
		d.native.Draw(vertices, firstVertex)
		return
	}
	d.native.DrawInstanced(vertices, instances, firstVertex, firstInstance)
}

// DrawIndexed forwards to DrawIndexed, or to DrawIndexedInstanced for more
// than one instance.
func (d *Device) DrawIndexed(indices, instances, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	if instances <= 1 {
		d.native.DrawIndexed(indices, firstIndex, vertexOffset)
		return
	}
	d.native.DrawIndexedInstanced(indices, instances, firstIndex, vertexOffset, firstInstance)
}

// CopyResource copies src into dst with the native full-resource copy.
func (d *Device) CopyResource(src, dst shim.ResourceHandle) {
	d.native.CopyResource(d.lookup(dst), d.lookup(src))
}

// ClearDepthStencilView clears the planes of dsv selected by flags.
func (d *Device) ClearDepthStencilView(dsv shim.ResourceViewHandle, flags shim.ClearFlags, depth float32, stencil uint8) {
	v, ok := d.lookupView(dsv).(DepthStencilView)
	if !ok {
		panic("d3d10: " + dsv.String() + " is not a depth-stencil view")
	}
	var native ClearFlag
	if flags&shim.ClearDepth != 0 {
		native |= ClearDepth
	}
	if flags&shim.ClearStencil != 0 {
		native |= ClearStencil
	}
	d.native.ClearDepthStencilView(v, native, depth, stencil)
}

// ClearRenderTargetView fills rtv with color.
func (d *Device) ClearRenderTargetView(rtv shim.ResourceViewHandle, color [4]float32) {
	v, ok := d.lookupView(rtv).(RenderTargetView)
	if !ok {
		panic("d3d10: " + rtv.String() + " is not a render target view")
	}
	d.native.ClearRenderTargetView(v, color)
}
