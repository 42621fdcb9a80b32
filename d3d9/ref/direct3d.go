package ref

import "github.com/gogpu/shim/d3d9"

// FormatSupport is a set of ways a format can be used.
type FormatSupport uint8

// Format support bits.
const (
	SupportTexture FormatSupport = 1 << iota
	SupportRenderTarget
	SupportDepthStencil
)

// DefaultFormats returns the format support of the reference adapter.
func DefaultFormats() map[d3d9.Format]FormatSupport {
	const (
		tex   = SupportTexture
		color = SupportTexture | SupportRenderTarget
		depth = SupportTexture | SupportDepthStencil
	)
	return map[d3d9.Format]FormatSupport{
		d3d9.FmtA8R8G8B8:      color,
		d3d9.FmtX8R8G8B8:      color,
		d3d9.FmtR5G6B5:        color,
		d3d9.FmtX1R5G5B5:      color,
		d3d9.FmtA1R5G5B5:      color,
		d3d9.FmtA2R10G10B10:   color,
		d3d9.FmtA2B10G10R10:   color,
		d3d9.FmtA8B8G8R8:      color,
		d3d9.FmtX8B8G8R8:      color,
		d3d9.FmtG16R16:        color,
		d3d9.FmtA16B16G16R16:  color,
		d3d9.FmtR16F:          color,
		d3d9.FmtG16R16F:       color,
		d3d9.FmtA16B16G16R16F: color,
		d3d9.FmtR32F:          color,
		d3d9.FmtG32R32F:       color,
		d3d9.FmtA32B32G32R32F: color,
		d3d9.FmtA4R4G4B4:      tex,
		d3d9.FmtA8:            tex,
		d3d9.FmtL8:            tex,
		d3d9.FmtDXT1:          tex,
		d3d9.FmtDXT2:          tex,
		d3d9.FmtDXT3:          tex,
		d3d9.FmtDXT4:          tex,
		d3d9.FmtDXT5:          tex,
		d3d9.FmtD16:           depth,
		d3d9.FmtD15S1:         depth,
		d3d9.FmtD24S8:         depth,
		d3d9.FmtD24X8:         depth,
		d3d9.FmtD24X4S4:       depth,
		d3d9.FmtD32:           depth,
		d3d9.FmtD24FS8:        depth,
		d3d9.FmtINTZ:          depth,
		d3d9.FmtNull:          SupportRenderTarget,
	}
}

// Direct3D is the reference adapter.
type Direct3D struct {
	formats map[d3d9.Format]FormatSupport
	queries int
}

// NewDirect3D returns an adapter with DefaultFormats.
func NewDirect3D() *Direct3D {
	return &Direct3D{formats: DefaultFormats()}
}

// SetFormatSupport overrides the support of f. Zero removes f.
func (d *Direct3D) SetFormatSupport(f d3d9.Format, s FormatSupport) {
	if s == 0 {
		delete(d.formats, f)
		return
	}
	d.formats[f] = s
}

// Queries returns how many times CheckDeviceFormat was called.
func (d *Direct3D) Queries() int { return d.queries }

// CheckDeviceFormat implements d3d9.Direct3D9.
func (d *Direct3D) CheckDeviceFormat(adapter uint32, devType d3d9.DevType, adapterFormat d3d9.Format, usage d3d9.Usage, rtype d3d9.ResourceType, checkFormat d3d9.Format) error {
	d.queries++
	if adapter != 0 || !isDisplayFormat(adapterFormat) {
		return d3d9.ErrInvalidCall
	}
	switch rtype {
	case d3d9.RTypeSurface, d3d9.RTypeTexture, d3d9.RTypeCubeTexture, d3d9.RTypeVolumeTexture:
	default:
		return d3d9.ErrInvalidCall
	}
	if !d.supports(checkFormat, usage, rtype != d3d9.RTypeSurface) {
		return d3d9.ErrNotAvailable
	}
	return nil
}

func (d *Direct3D) supports(f d3d9.Format, usage d3d9.Usage, texture bool) bool {
	s, ok := d.formats[f]
	if !ok {
		return false
	}
	if texture && s&SupportTexture == 0 {
		return false
	}
	if usage&d3d9.UsageRenderTarget != 0 && s&SupportRenderTarget == 0 {
		return false
	}
	if usage&d3d9.UsageDepthStencil != 0 && s&SupportDepthStencil == 0 {
		return false
	}
	return true
}

func isDisplayFormat(f d3d9.Format) bool {
	switch f {
	case d3d9.FmtX8R8G8B8, d3d9.FmtX1R5G5B5, d3d9.FmtR5G6B5, d3d9.FmtA2R10G10B10:
		return true
	default:
		return false
	}
}

type storage uint8

const (
	storageColor storage = iota
	storageDepth
	storageNone
)

func storageOf(f d3d9.Format) storage {
	switch f {
	case d3d9.FmtD16Lockable, d3d9.FmtD32, d3d9.FmtD15S1, d3d9.FmtD24S8, d3d9.FmtD24X8,
		d3d9.FmtD24X4S4, d3d9.FmtD16, d3d9.FmtD32FLockable, d3d9.FmtD24FS8, d3d9.FmtD32Lockable,
		d3d9.FmtS8Lockable, d3d9.FmtINTZ:
		return storageDepth
	case d3d9.FmtNull:
		return storageNone
	default:
		return storageColor
	}
}

func isCompressed(f d3d9.Format) bool {
	switch f {
	case d3d9.FmtDXT1, d3d9.FmtDXT2, d3d9.FmtDXT3, d3d9.FmtDXT4, d3d9.FmtDXT5:
		return true
	default:
		return false
	}
}
