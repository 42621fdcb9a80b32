package ref

import "github.com/gogpu/shim/d3d10"

// DefaultFormats returns the format support of the reference device.
func DefaultFormats() map[d3d10.Format]d3d10.FormatSupport {
	const (
		textures = d3d10.SupportTexture1D | d3d10.SupportTexture2D | d3d10.SupportTexture3D |
			d3d10.SupportTextureCube | d3d10.SupportMip
		sampled  = textures | d3d10.SupportShaderLoad | d3d10.SupportShaderSample | d3d10.SupportBuffer
		color    = sampled | d3d10.SupportRenderTarget | d3d10.SupportBlendable | d3d10.SupportMultisampleResolve
		integer  = textures | d3d10.SupportShaderLoad | d3d10.SupportRenderTarget | d3d10.SupportBuffer | d3d10.SupportIAIndexBuffer
		typeless = d3d10.SupportTexture1D | d3d10.SupportTexture2D | d3d10.SupportTextureCube | d3d10.SupportMip
		depth    = d3d10.SupportTexture1D | d3d10.SupportTexture2D | d3d10.SupportMip | d3d10.SupportDepthStencil
		bc       = d3d10.SupportTexture2D | d3d10.SupportTexture3D | d3d10.SupportTextureCube |
			d3d10.SupportMip | d3d10.SupportShaderLoad | d3d10.SupportShaderSample
	)
	return map[d3d10.Format]d3d10.FormatSupport{
		d3d10.FmtR32G32B32A32Typeless: typeless,
		d3d10.FmtR32G32B32A32Float:    sampled | d3d10.SupportRenderTarget | d3d10.SupportIAVertexBuffer,
		d3d10.FmtR16G16B16A16Typeless: typeless,
		d3d10.FmtR16G16B16A16Float:    color,
		d3d10.FmtR16G16B16A16Unorm:    color,
		d3d10.FmtR32G32Float:          color | d3d10.SupportIAVertexBuffer,
		d3d10.FmtR32G8X24Typeless:     typeless,
		d3d10.FmtD32FloatS8X24Uint:    depth,
		d3d10.FmtR10G10B10A2Unorm:     color,
		d3d10.FmtR11G11B10Float:       color,
		d3d10.FmtR8G8B8A8Typeless:     typeless,
		d3d10.FmtR8G8B8A8Unorm:        color | d3d10.SupportDisplay,
		d3d10.FmtR8G8B8A8UnormSRGB:    color | d3d10.SupportDisplay,
		d3d10.FmtR16G16Float:          color,
		d3d10.FmtR16G16Unorm:          color,
		d3d10.FmtR32Typeless:          typeless,
		d3d10.FmtD32Float:             depth,
		d3d10.FmtR32Float:             color,
		d3d10.FmtR32Uint:              integer,
		d3d10.FmtR24G8Typeless:        typeless,
		d3d10.FmtD24UnormS8Uint:       depth,
		d3d10.FmtR24UnormX8Typeless:   d3d10.SupportTexture2D | d3d10.SupportMip | d3d10.SupportShaderLoad | d3d10.SupportShaderSample,
		d3d10.FmtR8G8Unorm:            color,
		d3d10.FmtR16Typeless:          typeless,
		d3d10.FmtR16Float:             color,
		d3d10.FmtD16Unorm:             depth,
		d3d10.FmtR16Unorm:             color,
		d3d10.FmtR16Uint:              integer,
		d3d10.FmtR8Unorm:              color,
		d3d10.FmtA8Unorm:              color,
		d3d10.FmtBC1Unorm:             bc,
		d3d10.FmtBC1UnormSRGB:         bc,
		d3d10.FmtBC2Unorm:             bc,
		d3d10.FmtBC3Unorm:             bc,
		d3d10.FmtBC4Unorm:             bc,
		d3d10.FmtBC5Unorm:             bc,
		d3d10.FmtB8G8R8A8Unorm:        color | d3d10.SupportDisplay,
		d3d10.FmtB8G8R8X8Unorm:        color,
		d3d10.FmtB8G8R8A8UnormSRGB:    color | d3d10.SupportDisplay,
	}
}

// families lists the typed formats a typeless format can be viewed as.
var families = map[d3d10.Format][]d3d10.Format{
	d3d10.FmtR32G32B32A32Typeless: {d3d10.FmtR32G32B32A32Float},
	d3d10.FmtR16G16B16A16Typeless: {d3d10.FmtR16G16B16A16Float, d3d10.FmtR16G16B16A16Unorm},
	d3d10.FmtR32G8X24Typeless:     {d3d10.FmtD32FloatS8X24Uint},
	d3d10.FmtR8G8B8A8Typeless:     {d3d10.FmtR8G8B8A8Unorm, d3d10.FmtR8G8B8A8UnormSRGB},
	d3d10.FmtR32Typeless:          {d3d10.FmtD32Float, d3d10.FmtR32Float, d3d10.FmtR32Uint},
	d3d10.FmtR24G8Typeless:        {d3d10.FmtD24UnormS8Uint, d3d10.FmtR24UnormX8Typeless},
	d3d10.FmtR16Typeless:          {d3d10.FmtD16Unorm, d3d10.FmtR16Float, d3d10.FmtR16Unorm, d3d10.FmtR16Uint},
}

// familyOf returns the typeless format f belongs to, or f itself.
func familyOf(f d3d10.Format) d3d10.Format {
	for typeless, members := range families {
		for _, m := range members {
			if m == f {
				return typeless
			}
		}
	}
	return f
}

// castable reports whether a resource of format res can be viewed as view.
// FmtUnknown views inherit the resource format, which then must be typed.
func castable(res, view d3d10.Format) bool {
	if view == d3d10.FmtUnknown {
		_, typeless := families[res]
		return !typeless
	}
	if view == res {
		return true
	}
	for _, m := range families[res] {
		if m == view {
			return true
		}
	}
	return false
}

func isDepth(f d3d10.Format) bool {
	switch f {
	case d3d10.FmtD32FloatS8X24Uint, d3d10.FmtD32Float, d3d10.FmtD24UnormS8Uint, d3d10.FmtD16Unorm:
		return true
	default:
		return false
	}
}

func isCompressed(f d3d10.Format) bool {
	return f >= d3d10.FmtBC1Unorm && f <= d3d10.FmtBC5Unorm
}

// storage describes which planes a texture of format f keeps.
func storage(f d3d10.Format) (color, depth bool) {
	if isCompressed(f) {
		return false, false
	}
	if isDepth(f) {
		return false, true
	}
	for _, m := range families[f] {
		if isDepth(m) {
			depth = true
		}
	}
	return true, depth
}
