package ref

import (
	"image"
	"image/color"
	"math"
	"math/bits"

	"github.com/gogpu/shim/d3d9"
)

// container is the texture owning a level or face surface.
type container interface {
	d3d9.Resource9
	RefCount() uint32
}

// Surface is a 2D image. Color formats are stored as 8-bit RGBA, depth
// formats as 32-bit float depth plus 8-bit stencil. NULL surfaces have no
// storage.
type Surface struct {
	object
	desc  d3d9.SurfaceDesc
	owner container

	img     *image.RGBA
	depth   []float32
	stencil []uint8
}

func newSurface(desc d3d9.SurfaceDesc) *Surface {
	s := &Surface{desc: desc}
	w, h := int(desc.Width), int(desc.Height)
	switch storageOf(desc.Format) {
	case storageColor:
		s.img = image.NewRGBA(image.Rect(0, 0, w, h))
	case storageDepth:
		s.depth = make([]float32, w*h)
		s.stencil = make([]uint8, w*h)
	}
	return s
}

// AddRef adds a reference to the surface, or to its texture for levels and
// faces.
func (s *Surface) AddRef() uint32 {
	if s.owner != nil {
		return s.owner.AddRef()
	}
	return s.object.AddRef()
}

// Release drops a reference from the surface, or from its texture for
// levels and faces.
func (s *Surface) Release() uint32 {
	if s.owner != nil {
		return s.owner.Release()
	}
	return s.object.Release()
}

// RefCount returns the reference count of the surface or its texture.
func (s *Surface) RefCount() uint32 {
	if s.owner != nil {
		return s.owner.RefCount()
	}
	return s.object.RefCount()
}

// Type returns d3d9.RTypeSurface.
func (s *Surface) Type() d3d9.ResourceType { return d3d9.RTypeSurface }

// Desc returns the surface description.
func (s *Surface) Desc() d3d9.SurfaceDesc { return s.desc }

// Container returns the owning texture.
func (s *Surface) Container() (d3d9.Resource9, error) {
	if s.owner == nil {
		return nil, d3d9.ErrNotFound
	}
	s.owner.AddRef()
	return s.owner, nil
}

// Bounds returns the surface rectangle.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(s.desc.Width), int(s.desc.Height))
}

// Image returns the color storage, or nil for depth and NULL formats.
func (s *Surface) Image() *image.RGBA { return s.img }

// DepthAt returns the depth value at (x, y).
func (s *Surface) DepthAt(x, y int) float32 { return s.depth[y*int(s.desc.Width)+x] }

// StencilAt returns the stencil value at (x, y).
func (s *Surface) StencilAt(x, y int) uint8 { return s.stencil[y*int(s.desc.Width)+x] }

// Fill sets every pixel of a color surface to c.
func (s *Surface) Fill(c color.RGBA) {
	if s.img == nil {
		return
	}
	for i := 0; i < len(s.img.Pix); i += 4 {
		s.img.Pix[i], s.img.Pix[i+1], s.img.Pix[i+2], s.img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
}

func (s *Surface) size() uint64 {
	return uint64(s.desc.Width) * uint64(s.desc.Height) * 4
}

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

// Texture is a mipmapped 2D texture.
type Texture struct {
	object
	levels []*Surface
}

func (t *Texture) Type() d3d9.ResourceType { return d3d9.RTypeTexture }

func (t *Texture) LevelCount() uint32 { return uint32(len(t.levels)) }

func (t *Texture) LevelDesc(level uint32) (d3d9.SurfaceDesc, error) {
	if level >= t.LevelCount() {
		return d3d9.SurfaceDesc{}, d3d9.ErrInvalidCall
	}
	return t.levels[level].desc, nil
}

func (t *Texture) SurfaceLevel(level uint32) (d3d9.Surface9, error) {
	if level >= t.LevelCount() {
		return nil, d3d9.ErrInvalidCall
	}
	s := t.levels[level]
	s.AddRef()
	return s, nil
}

// Level returns the surface of level without adding a reference.
func (t *Texture) Level(level uint32) *Surface { return t.levels[level] }

// CubeTexture is a mipmapped texture with six faces.
type CubeTexture struct {
	object
	faces [6][]*Surface
}

func (t *CubeTexture) Type() d3d9.ResourceType { return d3d9.RTypeCubeTexture }

func (t *CubeTexture) LevelCount() uint32 { return uint32(len(t.faces[0])) }

func (t *CubeTexture) LevelDesc(level uint32) (d3d9.SurfaceDesc, error) {
	if level >= t.LevelCount() {
		return d3d9.SurfaceDesc{}, d3d9.ErrInvalidCall
	}
	return t.faces[0][level].desc, nil
}

func (t *CubeTexture) CubeMapSurface(face d3d9.CubemapFace, level uint32) (d3d9.Surface9, error) {
	if face > d3d9.CubemapFaceNegativeZ || level >= t.LevelCount() {
		return nil, d3d9.ErrInvalidCall
	}
	s := t.faces[face][level]
	s.AddRef()
	return s, nil
}

// VolumeTexture is a mipmapped 3D texture without storage.
type VolumeTexture struct {
	object
	levels []d3d9.VolumeDesc
}

func (t *VolumeTexture) Type() d3d9.ResourceType { return d3d9.RTypeVolumeTexture }

func (t *VolumeTexture) LevelCount() uint32 { return uint32(len(t.levels)) }

func (t *VolumeTexture) LevelDesc(level uint32) (d3d9.VolumeDesc, error) {
	if level >= t.LevelCount() {
		return d3d9.VolumeDesc{}, d3d9.ErrInvalidCall
	}
	return t.levels[level], nil
}

// VertexBuffer holds vertex data.
type VertexBuffer struct {
	object
	desc d3d9.VertexBufferDesc
	data []byte
}

func (b *VertexBuffer) Type() d3d9.ResourceType { return d3d9.RTypeVertexBuffer }

func (b *VertexBuffer) Desc() d3d9.VertexBufferDesc { return b.desc }

// IndexBuffer holds index data.
type IndexBuffer struct {
	object
	desc d3d9.IndexBufferDesc
	data []byte
}

func (b *IndexBuffer) Type() d3d9.ResourceType { return d3d9.RTypeIndexBuffer }

func (b *IndexBuffer) Desc() d3d9.IndexBufferDesc { return b.desc }

// sample reads the surface at normalized coordinates (u, v) with clamp or
// wrap addressing. Texel centers sit at half-integer coordinates.
func (s *Surface) sample(u, v float64, filter d3d9.TextureFilterType, addrU, addrV uint32) color.RGBA {
	if s.img == nil {
		return color.RGBA{A: 255}
	}
	w, h := int(s.desc.Width), int(s.desc.Height)
	if filter != d3d9.TexFLinear {
		x := address(int(math.Floor(u*float64(w))), w, addrU)
		y := address(int(math.Floor(v*float64(h))), h, addrV)
		return s.img.RGBAAt(x, y)
	}

	fx := u*float64(w) - 0.5
	fy := v*float64(h) - 0.5
	x0, y0 := math.Floor(fx), math.Floor(fy)
	tx, ty := fx-x0, fy-y0
	xa, xb := address(int(x0), w, addrU), address(int(x0)+1, w, addrU)
	ya, yb := address(int(y0), h, addrV), address(int(y0)+1, h, addrV)

	c00, c10 := s.img.RGBAAt(xa, ya), s.img.RGBAAt(xb, ya)
	c01, c11 := s.img.RGBAAt(xa, yb), s.img.RGBAAt(xb, yb)
	lerp := func(a, b, c, d uint8) uint8 {
		top := float64(a)*(1-tx) + float64(b)*tx
		bottom := float64(c)*(1-tx) + float64(d)*tx
		return uint8(math.Round(top*(1-ty) + bottom*ty))
	}
	return color.RGBA{
		R: lerp(c00.R, c10.R, c01.R, c11.R),
		G: lerp(c00.G, c10.G, c01.G, c11.G),
		B: lerp(c00.B, c10.B, c01.B, c11.B),
		A: lerp(c00.A, c10.A, c01.A, c11.A),
	}
}

func address(i, n int, mode uint32) int {
	if mode == d3d9.TAddressWrap {
		i %= n
		if i < 0 {
			i += n
		}
		return i
	}
	return min(max(i, 0), n-1)
}
