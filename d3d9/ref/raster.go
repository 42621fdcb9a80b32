package ref

import (
	"encoding/binary"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/shim/d3d9"
)

type vertex struct {
	x, y float64
	u, v float64
}

func decodeVertices(data []byte, n, stride uint32, uv bool) []vertex {
	f := func(off uint32) float64 {
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(data[off:])))
	}
	vs := make([]vertex, n)
	for i := range vs {
		base := uint32(i) * stride
		vs[i].x, vs[i].y = f(base), f(base+4)
		if uv {
			vs[i].u, vs[i].v = f(base+12), f(base+16)
		}
	}
	return vs
}

// DrawPrimitiveUP rasterizes triangle lists and strips into render target 0.
// Pixels are sampled at their centers.
func (d *Device) DrawPrimitiveUP(pt d3d9.PrimitiveType, primCount uint32, data []byte, stride uint32) error {
	fvf := d3d9.FVF(d.get(fvfKey))
	uv := fvf&d3d9.FVFTex1 != 0
	if fvf&d3d9.FVFXYZ == 0 || stride < 12 || (uv && stride < 20) {
		return d3d9.ErrInvalidCall
	}

	var n uint32
	switch pt {
	case d3d9.PTTriangleList:
		n = primCount * 3
	case d3d9.PTTriangleStrip:
		n = primCount + 2
	default:
		return d3d9.ErrInvalidCall
	}
	size := uint64(12)
	if uv {
		size = 20
	}
	if primCount == 0 || uint64(n-1)*uint64(stride)+size > uint64(len(data)) {
		return d3d9.ErrInvalidCall
	}

	rt := d.rts[0]
	if rt == nil || rt.img == nil {
		return nil
	}
	vs := decodeVertices(data, n, stride, uv)
	for i := uint32(0); i < primCount; i++ {
		if pt == d3d9.PTTriangleList {
			d.fillTriangle(rt.img, vs[3*i], vs[3*i+1], vs[3*i+2])
		} else {
			d.fillTriangle(rt.img, vs[i], vs[i+1], vs[i+2])
		}
	}
	return nil
}

func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func (d *Device) viewportRect() image.Rectangle {
	vp := d.viewport
	return image.Rect(int(vp.X), int(vp.Y), int(vp.X+vp.Width), int(vp.Y+vp.Height))
}

func (d *Device) fillTriangle(dst *image.RGBA, a, b, c vertex) {
	vp := d.viewport
	toScreen := func(v vertex) (float64, float64) {
		return float64(vp.X) + (v.x+1)/2*float64(vp.Width), float64(vp.Y) + (1-v.y)/2*float64(vp.Height)
	}
	ax, ay := toScreen(a)
	bx, by := toScreen(b)
	cx, cy := toScreen(c)
	area := edge(ax, ay, bx, by, cx, cy)
	if area == 0 {
		return
	}

	clip := d.viewportRect().Intersect(dst.Bounds())
	x0 := max(clip.Min.X, int(math.Floor(min(ax, bx, cx))))
	y0 := max(clip.Min.Y, int(math.Floor(min(ay, by, cy))))
	x1 := min(clip.Max.X, int(math.Ceil(max(ax, bx, cx))))
	y1 := min(clip.Max.Y, int(math.Ceil(max(ay, by, cy))))

	const eps = -1e-9
	for y := y0; y < y1; y++ {
		py := float64(y) + 0.5
		for x := x0; x < x1; x++ {
			px := float64(x) + 0.5
			wa := edge(bx, by, cx, cy, px, py) / area
			wb := edge(cx, cy, ax, ay, px, py) / area
			wc := edge(ax, ay, bx, by, px, py) / area
			if wa < eps || wb < eps || wc < eps {
				continue
			}
			u := wa*a.u + wb*b.u + wc*c.u
			v := wa*a.v + wb*b.v + wc*c.v
			d.writePixel(dst, x, y, d.shade(u, v))
		}
	}
}

// shade evaluates texture stage 0.
func (d *Device) shade(u, v float64) color.RGBA {
	diffuse := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	texel := diffuse
	if tex, ok := d.textures[0].(*Texture); ok && tex != nil {
		texel = tex.levels[0].sample(u, v,
			d3d9.TextureFilterType(d.get(samplerKey(0, d3d9.SampMagFilter))),
			d.get(samplerKey(0, d3d9.SampAddressU)),
			d.get(samplerKey(0, d3d9.SampAddressV)))
	}
	arg := func(a uint32) color.RGBA {
		if a == d3d9.TATexture {
			return texel
		}
		return diffuse
	}
	combine := func(op, a1, a2 uint32) color.RGBA {
		switch op {
		case d3d9.TOPSelectArg1:
			return arg(a1)
		case d3d9.TOPModulate:
			x, y := arg(a1), arg(a2)
			return color.RGBA{
				R: uint8(uint16(x.R) * uint16(y.R) / 255),
				G: uint8(uint16(x.G) * uint16(y.G) / 255),
				B: uint8(uint16(x.B) * uint16(y.B) / 255),
				A: uint8(uint16(x.A) * uint16(y.A) / 255),
			}
		default:
			return diffuse
		}
	}
	rgb := combine(d.get(stageKey(0, d3d9.TSSColorOp)), d.get(stageKey(0, d3d9.TSSColorArg1)), d.get(stageKey(0, d3d9.TSSColorArg2)))
	alpha := combine(d.get(stageKey(0, d3d9.TSSAlphaOp)), d.get(stageKey(0, d3d9.TSSAlphaArg1)), d.get(stageKey(0, d3d9.TSSAlphaArg2)))
	rgb.A = alpha.A
	return rgb
}

func (d *Device) writePixel(dst *image.RGBA, x, y int, c color.RGBA) {
	mask := d.get(renderKey(d3d9.RSColorWriteEnable))
	if mask == d3d9.ColorWriteAll {
		dst.SetRGBA(x, y, c)
		return
	}
	old := dst.RGBAAt(x, y)
	if mask&d3d9.ColorWriteRed == 0 {
		c.R = old.R
	}
	if mask&d3d9.ColorWriteGreen == 0 {
		c.G = old.G
	}
	if mask&d3d9.ColorWriteBlue == 0 {
		c.B = old.B
	}
	if mask&d3d9.ColorWriteAlpha == 0 {
		c.A = old.A
	}
	dst.SetRGBA(x, y, c)
}

// Clear fills the bound targets inside the viewport, limited to rects when
// given.
func (d *Device) Clear(rects []image.Rectangle, flags d3d9.ClearFlags, c d3d9.Color, z float32, stencil uint32) error {
	if flags&(d3d9.ClearZBuffer|d3d9.ClearStencil) != 0 && d.ds == nil {
		return d3d9.ErrInvalidCall
	}
	area := d.viewportRect()
	regions := []image.Rectangle{area}
	if len(rects) > 0 {
		regions = regions[:0]
		for _, r := range rects {
			regions = append(regions, r.Intersect(area))
		}
	}

	if flags&d3d9.ClearTarget != 0 {
		r, g, b, a := c.RGBA()
		fill := image.NewUniform(color.RGBA{R: r, G: g, B: b, A: a})
		for _, rt := range d.rts {
			if rt == nil || rt.img == nil {
				continue
			}
			for _, region := range regions {
				draw.Draw(rt.img, region.Intersect(rt.Bounds()), fill, image.Point{}, draw.Src)
			}
		}
	}

	if ds := d.ds; ds != nil && ds.depth != nil {
		for _, region := range regions {
			region = region.Intersect(ds.Bounds())
			for y := region.Min.Y; y < region.Max.Y; y++ {
				for x := region.Min.X; x < region.Max.X; x++ {
					i := y*int(ds.desc.Width) + x
					if flags&d3d9.ClearZBuffer != 0 {
						ds.depth[i] = z
					}
					if flags&d3d9.ClearStencil != 0 {
						ds.stencil[i] = uint8(stencil)
					}
				}
			}
		}
	}
	return nil
}

// StretchRect copies between surfaces under the rules of the real API:
// both must live in the default pool, texture levels are only accepted as
// sources when the caps allow it and as destinations when they are render
// targets, compressed and NULL formats are rejected, and depth surfaces can
// only be copied whole between standalone surfaces of equal size.
func (d *Device) StretchRect(src d3d9.Surface9, srcRect *image.Rectangle, dst d3d9.Surface9, dstRect *image.Rectangle, filter d3d9.TextureFilterType) error {
	s, err := d.surface(src)
	if err != nil || s == nil {
		return d3d9.ErrInvalidCall
	}
	t, err := d.surface(dst)
	if err != nil || t == nil || s == t {
		return d3d9.ErrInvalidCall
	}
	if s.desc.Pool != d3d9.PoolDefault || t.desc.Pool != d3d9.PoolDefault {
		return d3d9.ErrInvalidCall
	}
	if s.owner != nil && d.caps.Caps2&d3d9.DevCaps2CanStretchRectFromTextures == 0 {
		return d3d9.ErrInvalidCall
	}
	if t.owner != nil && t.desc.Usage&d3d9.UsageRenderTarget == 0 {
		return d3d9.ErrInvalidCall
	}
	if t.desc.MultiSampleType != d3d9.MultiSampleNone {
		return d3d9.ErrInvalidCall
	}
	if isCompressed(s.desc.Format) || isCompressed(t.desc.Format) {
		return d3d9.ErrInvalidCall
	}

	sr, dr := s.Bounds(), t.Bounds()
	if srcRect != nil {
		sr = *srcRect
	}
	if dstRect != nil {
		dr = *dstRect
	}
	if !sr.In(s.Bounds()) || !dr.In(t.Bounds()) || sr.Empty() || dr.Empty() {
		return d3d9.ErrInvalidCall
	}

	switch ss, ts := storageOf(s.desc.Format), storageOf(t.desc.Format); {
	case ss == storageNone || ts == storageNone:
		return d3d9.ErrInvalidCall
	case ss == storageDepth || ts == storageDepth:
		if ss != ts || s.owner != nil || t.owner != nil || srcRect != nil || dstRect != nil ||
			s.desc.Width != t.desc.Width || s.desc.Height != t.desc.Height || filter != d3d9.TexFNone {
			return d3d9.ErrInvalidCall
		}
		copy(t.depth, s.depth)
		copy(t.stencil, s.stencil)
		return nil
	}

	if sr.Size() == dr.Size() {
		draw.Copy(t.img, dr.Min, s.img, sr, draw.Src, nil)
		return nil
	}
	var scaler draw.Scaler = draw.NearestNeighbor
	if filter == d3d9.TexFLinear {
		scaler = draw.ApproxBiLinear
	}
	scaler.Scale(t.img, dr, s.img, sr, draw.Src, nil)
	return nil
}
