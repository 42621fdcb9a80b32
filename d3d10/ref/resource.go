package ref

import (
	"image"
	"math/bits"

	"github.com/gogpu/shim/d3d10"
)

func levelCount(levels, largest uint32) uint32 {
	full := uint32(bits.Len32(largest))
	if levels == 0 || levels > full {
		return full
	}
	return levels
}

func levelSize(size, level uint32) uint32 {
	return max(size>>level, 1)
}

// Buffer is a linear resource with byte storage.
type Buffer struct {
	object
	desc d3d10.BufferDesc
	data []byte
}

func (b *Buffer) Type() d3d10.ResourceDimension { return d3d10.DimensionBuffer }

func (b *Buffer) Desc() d3d10.BufferDesc { return b.desc }

// Bytes returns the buffer storage.
func (b *Buffer) Bytes() []byte { return b.data }

// Texture1D is a 1D texture without storage.
type Texture1D struct {
	object
	desc d3d10.Texture1DDesc
}

func (t *Texture1D) Type() d3d10.ResourceDimension { return d3d10.DimensionTexture1D }

func (t *Texture1D) Desc() d3d10.Texture1DDesc { return t.desc }

// Subresource is one level of one array slice of a 2D texture. Color
// planes are stored as 8-bit RGBA, one sample per pixel.
type Subresource struct {
	Image   *image.RGBA
	Depth   []float32
	Stencil []uint8
}

// Texture2D is a 2D texture with real storage for uncompressed formats.
type Texture2D struct {
	object
	desc d3d10.Texture2DDesc
	subs []*Subresource
}

func (t *Texture2D) Type() d3d10.ResourceDimension { return d3d10.DimensionTexture2D }

func (t *Texture2D) Desc() d3d10.Texture2DDesc { return t.desc }

// Subresource returns the storage of level mip in array slice, or nil for
// compressed formats.
func (t *Texture2D) Subresource(mip, slice uint32) *Subresource {
	if t.subs == nil {
		return nil
	}
	return t.subs[slice*t.desc.MipLevels+mip]
}

func newSubresources(desc d3d10.Texture2DDesc) ([]*Subresource, uint64) {
	color, depth := storage(desc.Format)
	var size uint64
	subs := make([]*Subresource, desc.ArraySize*desc.MipLevels)
	for slice := range desc.ArraySize {
		for mip := range desc.MipLevels {
			w, h := int(levelSize(desc.Width, mip)), int(levelSize(desc.Height, mip))
			s := &Subresource{}
			if color {
				s.Image = image.NewRGBA(image.Rect(0, 0, w, h))
			}
			if depth {
				s.Depth = make([]float32, w*h)
				s.Stencil = make([]uint8, w*h)
			}
			subs[slice*desc.MipLevels+mip] = s
			size += uint64(w) * uint64(h) * 4 * uint64(desc.SampleDesc.Count)
		}
	}
	if !color && !depth {
		return nil, size
	}
	return subs, size
}

func (s *Subresource) copyFrom(src *Subresource) {
	if s.Image != nil && src.Image != nil {
		copy(s.Image.Pix, src.Image.Pix)
	}
	copy(s.Depth, src.Depth)
	copy(s.Stencil, src.Stencil)
}

// Texture3D is a volume texture without storage.
type Texture3D struct {
	object
	desc d3d10.Texture3DDesc
}

func (t *Texture3D) Type() d3d10.ResourceDimension { return d3d10.DimensionTexture3D }

func (t *Texture3D) Desc() d3d10.Texture3DDesc { return t.desc }

// extent is the common shape of every resource kind.
type extent struct {
	dim     d3d10.ResourceDimension
	format  d3d10.Format
	width   uint32
	height  uint32
	depth   uint32
	levels  uint32
	layers  uint32
	samples uint32
	bind    d3d10.BindFlag
	misc    d3d10.ResourceMiscFlag
}

func extentOf(res d3d10.Resource) (extent, bool) {
	switch r := res.(type) {
	case *Buffer:
		return extent{dim: d3d10.DimensionBuffer, width: r.desc.ByteWidth, bind: r.desc.BindFlags, misc: r.desc.MiscFlags}, true
	case *Texture1D:
		d := r.desc
		return extent{d3d10.DimensionTexture1D, d.Format, d.Width, 1, 1, d.MipLevels, d.ArraySize, 1, d.BindFlags, d.MiscFlags}, true
	case *Texture2D:
		d := r.desc
		return extent{d3d10.DimensionTexture2D, d.Format, d.Width, d.Height, 1, d.MipLevels, d.ArraySize, d.SampleDesc.Count, d.BindFlags, d.MiscFlags}, true
	case *Texture3D:
		d := r.desc
		return extent{d3d10.DimensionTexture3D, d.Format, d.Width, d.Height, d.Depth, d.MipLevels, 1, 1, d.BindFlags, d.MiscFlags}, true
	default:
		return extent{}, false
	}
}
