package ref

import (
	"math"

	"github.com/gogpu/shim/d3d10"
)

// view is the base of the view objects. It holds a reference to its
// resource until the view is destroyed.
type view struct {
	object
	res d3d10.Resource
}

// Resource returns a new reference to the viewed resource.
func (v *view) Resource() d3d10.Resource {
	v.res.AddRef()
	return v.res
}

// DepthStencilView is a depth-stencil view with a fully resolved desc.
type DepthStencilView struct {
	view
	desc d3d10.DepthStencilViewDesc
}

func (v *DepthStencilView) Desc() d3d10.DepthStencilViewDesc { return v.desc }

// RenderTargetView is a render target view with a fully resolved desc.
type RenderTargetView struct {
	view
	desc d3d10.RenderTargetViewDesc
}

func (v *RenderTargetView) Desc() d3d10.RenderTargetViewDesc { return v.desc }

// ShaderResourceView is a shader resource view with a fully resolved desc.
type ShaderResourceView struct {
	view
	desc d3d10.ShaderResourceViewDesc1
}

func (v *ShaderResourceView) Desc1() d3d10.ShaderResourceViewDesc1 { return v.desc }

// inRange reports whether [first, first+count) is a non-empty part of
// [0, total).
func inRange(first, count, total uint32) bool {
	return count > 0 && first < total && count <= total-first
}

// remaining resolves the "all remaining" count.
func remaining(first, count, total uint32) uint32 {
	if count == math.MaxUint32 && first < total {
		return total - first
	}
	return count
}

// viewFormat resolves the format of a view of e. Buffers are untyped and
// take any format with buffer support.
func (d *Device) viewFormat(e extent, f d3d10.Format) (d3d10.Format, error) {
	if e.dim == d3d10.DimensionBuffer {
		if d.formats[f]&d3d10.SupportBuffer == 0 {
			return 0, d3d10.ErrInvalidArg
		}
		return f, nil
	}
	if !castable(e.format, f) {
		return 0, d3d10.ErrInvalidArg
	}
	if f == d3d10.FmtUnknown {
		f = e.format
	}
	return f, nil
}

func (d *Device) resolveDSV(e extent, in *d3d10.DepthStencilViewDesc) (d3d10.DepthStencilViewDesc, error) {
	var desc d3d10.DepthStencilViewDesc
	if in != nil {
		desc = *in
	}
	if e.bind&d3d10.BindDepthStencil == 0 {
		return desc, d3d10.ErrInvalidArg
	}
	f, err := d.viewFormat(e, desc.Format)
	if err != nil || !isDepth(f) {
		return desc, d3d10.ErrInvalidArg
	}
	desc.Format = f

	if desc.ViewDimension == d3d10.DSVDimensionUnknown {
		switch {
		case e.dim == d3d10.DimensionTexture1D && e.layers > 1:
			desc.ViewDimension = d3d10.DSVDimensionTexture1DArray
			desc.Texture1DArray = d3d10.ArraySlice{ArraySize: e.layers}
		case e.dim == d3d10.DimensionTexture1D:
			desc.ViewDimension = d3d10.DSVDimensionTexture1D
		case e.dim == d3d10.DimensionTexture2D && e.samples > 1 && e.layers > 1:
			desc.ViewDimension = d3d10.DSVDimensionTexture2DMSArray
			desc.Texture2DMSArray = d3d10.MSArraySlice{ArraySize: e.layers}
		case e.dim == d3d10.DimensionTexture2D && e.samples > 1:
			desc.ViewDimension = d3d10.DSVDimensionTexture2DMS
		case e.dim == d3d10.DimensionTexture2D && e.layers > 1:
			desc.ViewDimension = d3d10.DSVDimensionTexture2DArray
			desc.Texture2DArray = d3d10.ArraySlice{ArraySize: e.layers}
		case e.dim == d3d10.DimensionTexture2D:
			desc.ViewDimension = d3d10.DSVDimensionTexture2D
		default:
			return desc, d3d10.ErrInvalidArg
		}
	}

	var ok bool
	switch desc.ViewDimension {
	case d3d10.DSVDimensionTexture1D:
		ok = e.dim == d3d10.DimensionTexture1D && desc.Texture1D.MipSlice < e.levels
	case d3d10.DSVDimensionTexture1DArray:
		a := &desc.Texture1DArray
		a.ArraySize = remaining(a.FirstArraySlice, a.ArraySize, e.layers)
		ok = e.dim == d3d10.DimensionTexture1D && a.MipSlice < e.levels && inRange(a.FirstArraySlice, a.ArraySize, e.layers)
	case d3d10.DSVDimensionTexture2D:
		ok = e.dim == d3d10.DimensionTexture2D && e.samples == 1 && desc.Texture2D.MipSlice < e.levels
	case d3d10.DSVDimensionTexture2DArray:
		a := &desc.Texture2DArray
		a.ArraySize = remaining(a.FirstArraySlice, a.ArraySize, e.layers)
		ok = e.dim == d3d10.DimensionTexture2D && e.samples == 1 && a.MipSlice < e.levels && inRange(a.FirstArraySlice, a.ArraySize, e.layers)
	case d3d10.DSVDimensionTexture2DMS:
		ok = e.dim == d3d10.DimensionTexture2D && e.samples > 1
	case d3d10.DSVDimensionTexture2DMSArray:
		a := &desc.Texture2DMSArray
		a.ArraySize = remaining(a.FirstArraySlice, a.ArraySize, e.layers)
		ok = e.dim == d3d10.DimensionTexture2D && e.samples > 1 && inRange(a.FirstArraySlice, a.ArraySize, e.layers)
	}
	if !ok {
		return desc, d3d10.ErrInvalidArg
	}
	return desc, nil
}

func (d *Device) resolveRTV(e extent, in *d3d10.RenderTargetViewDesc) (d3d10.RenderTargetViewDesc, error) {
	var desc d3d10.RenderTargetViewDesc
	if in != nil {
		desc = *in
	}
	if e.bind&d3d10.BindRenderTarget == 0 {
		return desc, d3d10.ErrInvalidArg
	}
	f, err := d.viewFormat(e, desc.Format)
	if err != nil || d.formats[f]&d3d10.SupportRenderTarget == 0 {
		return desc, d3d10.ErrInvalidArg
	}
	desc.Format = f

	if desc.ViewDimension == d3d10.RTVDimensionUnknown {
		switch {
		case e.dim == d3d10.DimensionTexture1D && e.layers > 1:
			desc.ViewDimension = d3d10.RTVDimensionTexture1DArray
			desc.Texture1DArray = d3d10.ArraySlice{ArraySize: e.layers}
		case e.dim == d3d10.DimensionTexture1D:
			desc.ViewDimension = d3d10.RTVDimensionTexture1D
		case e.dim == d3d10.DimensionTexture2D && e.samples > 1 && e.layers > 1:
			desc.ViewDimension = d3d10.RTVDimensionTexture2DMSArray
			desc.Texture2DMSArray = d3d10.MSArraySlice{ArraySize: e.layers}
		case e.dim == d3d10.DimensionTexture2D && e.samples > 1:
			desc.ViewDimension = d3d10.RTVDimensionTexture2DMS
		case e.dim == d3d10.DimensionTexture2D && e.layers > 1:
			desc.ViewDimension = d3d10.RTVDimensionTexture2DArray
			desc.Texture2DArray = d3d10.ArraySlice{ArraySize: e.layers}
		case e.dim == d3d10.DimensionTexture2D:
			desc.ViewDimension = d3d10.RTVDimensionTexture2D
		case e.dim == d3d10.DimensionTexture3D:
			desc.ViewDimension = d3d10.RTVDimensionTexture3D
			desc.Texture3D = d3d10.WSlice{WSize: e.depth}
		default:
			return desc, d3d10.ErrInvalidArg
		}
	}

	var ok bool
	switch desc.ViewDimension {
	case d3d10.RTVDimensionBuffer:
		ok = e.dim == d3d10.DimensionBuffer && desc.Buffer.NumElements > 0
	case d3d10.RTVDimensionTexture1D:
		ok = e.dim == d3d10.DimensionTexture1D && desc.Texture1D.MipSlice < e.levels
	case d3d10.RTVDimensionTexture1DArray:
		a := &desc.Texture1DArray
		a.ArraySize = remaining(a.FirstArraySlice, a.ArraySize, e.layers)
		ok = e.dim == d3d10.DimensionTexture1D && a.MipSlice < e.levels && inRange(a.FirstArraySlice, a.ArraySize, e.layers)
	case d3d10.RTVDimensionTexture2D:
		ok = e.dim == d3d10.DimensionTexture2D && e.samples == 1 && desc.Texture2D.MipSlice < e.levels
	case d3d10.RTVDimensionTexture2DArray:
		a := &desc.Texture2DArray
		a.ArraySize = remaining(a.FirstArraySlice, a.ArraySize, e.layers)
		ok = e.dim == d3d10.DimensionTexture2D && e.samples == 1 && a.MipSlice < e.levels && inRange(a.FirstArraySlice, a.ArraySize, e.layers)
	case d3d10.RTVDimensionTexture2DMS:
		ok = e.dim == d3d10.DimensionTexture2D && e.samples > 1
	case d3d10.RTVDimensionTexture2DMSArray:
		a := &desc.Texture2DMSArray
		a.ArraySize = remaining(a.FirstArraySlice, a.ArraySize, e.layers)
		ok = e.dim == d3d10.DimensionTexture2D && e.samples > 1 && inRange(a.FirstArraySlice, a.ArraySize, e.layers)
	case d3d10.RTVDimensionTexture3D:
		w := &desc.Texture3D
		if w.MipSlice < e.levels {
			depth := levelSize(e.depth, w.MipSlice)
			w.WSize = remaining(w.FirstWSlice, w.WSize, depth)
			ok = e.dim == d3d10.DimensionTexture3D && inRange(w.FirstWSlice, w.WSize, depth)
		}
	}
	if !ok {
		return desc, d3d10.ErrInvalidArg
	}
	return desc, nil
}

func (d *Device) resolveSRV(e extent, in *d3d10.ShaderResourceViewDesc1) (d3d10.ShaderResourceViewDesc1, error) {
	var desc d3d10.ShaderResourceViewDesc1
	if in != nil {
		desc = *in
	}
	if e.bind&d3d10.BindShaderResource == 0 {
		return desc, d3d10.ErrInvalidArg
	}
	f, err := d.viewFormat(e, desc.Format)
	if err != nil || d.formats[f]&(d3d10.SupportShaderLoad|d3d10.SupportShaderSample) == 0 {
		return desc, d3d10.ErrInvalidArg
	}
	desc.Format = f

	cube := e.misc&d3d10.MiscTextureCube != 0
	all := uint32(math.MaxUint32)
	if desc.ViewDimension == d3d10.SRVDimensionUnknown {
		switch {
		case e.dim == d3d10.DimensionTexture1D && e.layers > 1:
			desc.ViewDimension = d3d10.SRVDimensionTexture1DArray
			desc.Texture1DArray = d3d10.ArrayMipRange{MipLevels: all, ArraySize: e.layers}
		case e.dim == d3d10.DimensionTexture1D:
			desc.ViewDimension = d3d10.SRVDimensionTexture1D
			desc.Texture1D = d3d10.MipRange{MipLevels: all}
		case e.dim == d3d10.DimensionTexture2D && e.samples > 1 && e.layers > 1:
			desc.ViewDimension = d3d10.SRVDimensionTexture2DMSArray
			desc.Texture2DMSArray = d3d10.MSArraySlice{ArraySize: e.layers}
		case e.dim == d3d10.DimensionTexture2D && e.samples > 1:
			desc.ViewDimension = d3d10.SRVDimensionTexture2DMS
		case e.dim == d3d10.DimensionTexture2D && cube && e.layers == 6:
			desc.ViewDimension = d3d10.SRVDimensionTextureCube
			desc.TextureCube = d3d10.MipRange{MipLevels: all}
		case e.dim == d3d10.DimensionTexture2D && cube && d.level >= d3d10.FeatureLevel10_1:
			desc.ViewDimension = d3d10.SRVDimensionTextureCubeArray
			desc.TextureCubeArray = d3d10.CubeArrayMipRange{MipLevels: all, NumCubes: e.layers / 6}
		case e.dim == d3d10.DimensionTexture2D && e.layers > 1:
			desc.ViewDimension = d3d10.SRVDimensionTexture2DArray
			desc.Texture2DArray = d3d10.ArrayMipRange{MipLevels: all, ArraySize: e.layers}
		case e.dim == d3d10.DimensionTexture2D:
			desc.ViewDimension = d3d10.SRVDimensionTexture2D
			desc.Texture2D = d3d10.MipRange{MipLevels: all}
		case e.dim == d3d10.DimensionTexture3D:
			desc.ViewDimension = d3d10.SRVDimensionTexture3D
			desc.Texture3D = d3d10.MipRange{MipLevels: all}
		default:
			return desc, d3d10.ErrInvalidArg
		}
	}

	mips := func(m *d3d10.MipRange) bool {
		m.MipLevels = remaining(m.MostDetailedMip, m.MipLevels, e.levels)
		return inRange(m.MostDetailedMip, m.MipLevels, e.levels)
	}
	var ok bool
	switch desc.ViewDimension {
	case d3d10.SRVDimensionBuffer:
		ok = e.dim == d3d10.DimensionBuffer && desc.Buffer.NumElements > 0
	case d3d10.SRVDimensionTexture1D:
		ok = e.dim == d3d10.DimensionTexture1D && mips(&desc.Texture1D)
	case d3d10.SRVDimensionTexture1DArray:
		a := &desc.Texture1DArray
		ok = e.dim == d3d10.DimensionTexture1D && arrayMips(a, e)
	case d3d10.SRVDimensionTexture2D:
		ok = e.dim == d3d10.DimensionTexture2D && e.samples == 1 && mips(&desc.Texture2D)
	case d3d10.SRVDimensionTexture2DArray:
		ok = e.dim == d3d10.DimensionTexture2D && e.samples == 1 && arrayMips(&desc.Texture2DArray, e)
	case d3d10.SRVDimensionTexture2DMS:
		ok = e.dim == d3d10.DimensionTexture2D && e.samples > 1
	case d3d10.SRVDimensionTexture2DMSArray:
		a := &desc.Texture2DMSArray
		a.ArraySize = remaining(a.FirstArraySlice, a.ArraySize, e.layers)
		ok = e.dim == d3d10.DimensionTexture2D && e.samples > 1 && inRange(a.FirstArraySlice, a.ArraySize, e.layers)
	case d3d10.SRVDimensionTexture3D:
		ok = e.dim == d3d10.DimensionTexture3D && mips(&desc.Texture3D)
	case d3d10.SRVDimensionTextureCube:
		ok = e.dim == d3d10.DimensionTexture2D && cube && mips(&desc.TextureCube)
	case d3d10.SRVDimensionTextureCubeArray:
		c := &desc.TextureCubeArray
		m := d3d10.MipRange{MostDetailedMip: c.MostDetailedMip, MipLevels: c.MipLevels}
		ok = e.dim == d3d10.DimensionTexture2D && cube && d.level >= d3d10.FeatureLevel10_1 &&
			mips(&m) && c.NumCubes > 0 && c.NumCubes <= e.layers/6 &&
			inRange(c.First2DArrayFace, c.NumCubes*6, e.layers)
		c.MipLevels = m.MipLevels
	}
	if !ok {
		return desc, d3d10.ErrInvalidArg
	}
	return desc, nil
}

func arrayMips(a *d3d10.ArrayMipRange, e extent) bool {
	a.MipLevels = remaining(a.MostDetailedMip, a.MipLevels, e.levels)
	a.ArraySize = remaining(a.FirstArraySlice, a.ArraySize, e.layers)
	return inRange(a.MostDetailedMip, a.MipLevels, e.levels) && inRange(a.FirstArraySlice, a.ArraySize, e.layers)
}
