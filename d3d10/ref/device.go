package ref

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/shim/d3d10"
)

// Resource limits of feature level 10.
const (
	maxTexture1D = 8192
	maxTexture2D = 8192
	maxTexture3D = 2048
	maxArraySize = 512
	maxSamples   = 8
)

// DrawCall records a draw. The reference device does not rasterize.
type DrawCall struct {
	Indexed       bool
	Instanced     bool
	Count         uint32
	Instances     uint32
	Start         uint32
	BaseVertex    int32
	StartInstance uint32
}

// Option configures a Device.
type Option func(*Device)

// WithFeatureLevel sets the feature level the device reports. Cube array
// views need 10.1.
func WithFeatureLevel(l d3d10.FeatureLevel) Option {
	return func(d *Device) { d.level = l }
}

// WithMemory limits the bytes of resource storage the device hands out.
// Creation beyond the limit fails with d3d10.ErrOutOfMemory.
func WithMemory(bytes uint64) Option {
	return func(d *Device) { d.memLimit = bytes }
}

// WithFormatSupport overrides the support of f. Zero removes f.
func WithFormatSupport(f d3d10.Format, s d3d10.FormatSupport) Option {
	return func(d *Device) {
		if s == 0 {
			delete(d.formats, f)
			return
		}
		d.formats[f] = s
	}
}

// Device is a software implementation of d3d10.Device1.
//
// Textures in 2D keep real pixel storage so that copies and clears can be
// verified. Draws are recorded, not rasterized. Calls the native API would
// silently ignore are counted by Dropped.
type Device struct {
	object
	level   d3d10.FeatureLevel
	formats map[d3d10.Format]d3d10.FormatSupport

	memLimit uint64
	memUsed  uint64
	live     int

	queries int
	flushes int
	dropped int
	draws   []DrawCall
}

var _ d3d10.Device1 = (*Device)(nil)

// NewDevice creates a device at feature level 10.1 with DefaultFormats.
func NewDevice(opts ...Option) (*Device, error) {
	d := &Device{
		level:   d3d10.FeatureLevel10_1,
		formats: DefaultFormats(),
	}
	d.init(nil)
	for _, opt := range opts {
		opt(d)
	}
	switch d.level {
	case d3d10.FeatureLevel9_1, d3d10.FeatureLevel9_3, d3d10.FeatureLevel10_0, d3d10.FeatureLevel10_1:
	default:
		return nil, fmt.Errorf("ref: create device: feature level %s: %w", d.level, d3d10.ErrInvalidArg)
	}
	return d, nil
}

func (d *Device) FeatureLevel() d3d10.FeatureLevel { return d.level }

// LiveObjects returns the number of resources and views not yet destroyed.
func (d *Device) LiveObjects() int { return d.live }

// MemoryUsed returns the bytes of storage held by live resources.
func (d *Device) MemoryUsed() uint64 { return d.memUsed }

// Queries returns how many times CheckFormatSupport was called.
func (d *Device) Queries() int { return d.queries }

// Flushes returns how many times Flush was called.
func (d *Device) Flushes() int { return d.flushes }

// Dropped returns the number of invalid copy and clear calls ignored.
func (d *Device) Dropped() int { return d.dropped }

// Draws returns the recorded draws.
func (d *Device) Draws() []DrawCall { return d.draws }

// CheckFormatSupport returns the support bits of format. Unknown formats
// fail with d3d10.ErrUnsupported.
func (d *Device) CheckFormatSupport(format d3d10.Format) (d3d10.FormatSupport, error) {
	d.queries++
	s, ok := d.formats[format]
	if !ok {
		return 0, d3d10.ErrUnsupported
	}
	return s, nil
}

// supportOf returns the support of f merged with that of the typed
// formats it can be viewed as.
func (d *Device) supportOf(f d3d10.Format) d3d10.FormatSupport {
	s := d.formats[f]
	for _, m := range families[f] {
		s |= d.formats[m]
	}
	return s
}

func (d *Device) alloc(n uint64) error {
	if d.memLimit > 0 && d.memUsed+n > d.memLimit {
		return d3d10.ErrOutOfMemory
	}
	d.memUsed += n
	d.live++
	return nil
}

func (d *Device) free(n uint64) {
	d.memUsed -= n
	d.live--
}

func (d *Device) checkTexture(format d3d10.Format, dim d3d10.FormatSupport, bind d3d10.BindFlag) error {
	s := d.supportOf(format)
	if d.formats[format]&dim == 0 {
		return d3d10.ErrInvalidArg
	}
	if bind&(d3d10.BindVertexBuffer|d3d10.BindIndexBuffer|d3d10.BindConstantBuffer|d3d10.BindStreamOutput) != 0 {
		return d3d10.ErrInvalidArg
	}
	if bind&d3d10.BindRenderTarget != 0 && s&d3d10.SupportRenderTarget == 0 {
		return d3d10.ErrInvalidArg
	}
	if bind&d3d10.BindDepthStencil != 0 && s&d3d10.SupportDepthStencil == 0 {
		return d3d10.ErrInvalidArg
	}
	if bind&d3d10.BindShaderResource != 0 && s&(d3d10.SupportShaderLoad|d3d10.SupportShaderSample) == 0 {
		return d3d10.ErrInvalidArg
	}
	return nil
}

func (d *Device) CreateBuffer(desc *d3d10.BufferDesc) (d3d10.Buffer, error) {
	if desc == nil || desc.ByteWidth == 0 || desc.BindFlags&d3d10.BindDepthStencil != 0 {
		return nil, d3d10.ErrInvalidArg
	}
	if desc.BindFlags&d3d10.BindConstantBuffer != 0 &&
		(desc.BindFlags != d3d10.BindConstantBuffer || desc.ByteWidth%16 != 0) {
		return nil, d3d10.ErrInvalidArg
	}
	if err := d.alloc(uint64(desc.ByteWidth)); err != nil {
		return nil, err
	}
	b := &Buffer{desc: *desc, data: make([]byte, desc.ByteWidth)}
	b.init(func() { d.free(uint64(b.desc.ByteWidth)) })
	return b, nil
}

func (d *Device) CreateTexture1D(desc *d3d10.Texture1DDesc) (d3d10.Texture1D, error) {
	if desc == nil || desc.Width == 0 || desc.Width > maxTexture1D || desc.ArraySize == 0 || desc.ArraySize > maxArraySize {
		return nil, d3d10.ErrInvalidArg
	}
	if err := d.checkTexture(desc.Format, d3d10.SupportTexture1D, desc.BindFlags); err != nil {
		return nil, err
	}
	t := &Texture1D{desc: *desc}
	t.desc.MipLevels = levelCount(desc.MipLevels, desc.Width)
	var size uint64
	for mip := range t.desc.MipLevels {
		size += uint64(levelSize(desc.Width, mip)) * 4 * uint64(desc.ArraySize)
	}
	if err := d.alloc(size); err != nil {
		return nil, err
	}
	t.init(func() { d.free(size) })
	return t, nil
}

func (d *Device) CreateTexture2D(desc *d3d10.Texture2DDesc) (d3d10.Texture2D, error) {
	if desc == nil || desc.Width == 0 || desc.Height == 0 || desc.Width > maxTexture2D || desc.Height > maxTexture2D ||
		desc.ArraySize == 0 || desc.ArraySize > maxArraySize {
		return nil, d3d10.ErrInvalidArg
	}
	if err := d.checkTexture(desc.Format, d3d10.SupportTexture2D, desc.BindFlags); err != nil {
		return nil, err
	}
	switch n := desc.SampleDesc.Count; {
	case n == 1:
	case n == 2 || n == 4 || n == maxSamples:
		if desc.MipLevels != 1 || desc.MiscFlags&d3d10.MiscTextureCube != 0 ||
			desc.BindFlags&(d3d10.BindRenderTarget|d3d10.BindDepthStencil) == 0 {
			return nil, d3d10.ErrInvalidArg
		}
	default:
		return nil, d3d10.ErrInvalidArg
	}
	if desc.MiscFlags&d3d10.MiscTextureCube != 0 {
		if desc.ArraySize%6 != 0 || desc.Width != desc.Height {
			return nil, d3d10.ErrInvalidArg
		}
		if desc.ArraySize > 6 && d.level < d3d10.FeatureLevel10_1 {
			return nil, d3d10.ErrInvalidArg
		}
	}

	t := &Texture2D{desc: *desc}
	t.desc.MipLevels = levelCount(desc.MipLevels, max(desc.Width, desc.Height))
	var size uint64
	t.subs, size = newSubresources(t.desc)
	if err := d.alloc(size); err != nil {
		return nil, err
	}
	t.init(func() { d.free(size) })
	return t, nil
}

func (d *Device) CreateTexture3D(desc *d3d10.Texture3DDesc) (d3d10.Texture3D, error) {
	if desc == nil || desc.Width == 0 || desc.Height == 0 || desc.Depth == 0 ||
		max(desc.Width, desc.Height, desc.Depth) > maxTexture3D || desc.BindFlags&d3d10.BindDepthStencil != 0 {
		return nil, d3d10.ErrInvalidArg
	}
	if err := d.checkTexture(desc.Format, d3d10.SupportTexture3D, desc.BindFlags); err != nil {
		return nil, err
	}
	t := &Texture3D{desc: *desc}
	t.desc.MipLevels = levelCount(desc.MipLevels, max(desc.Width, desc.Height, desc.Depth))
	var size uint64
	for mip := range t.desc.MipLevels {
		size += uint64(levelSize(desc.Width, mip)) * uint64(levelSize(desc.Height, mip)) * uint64(levelSize(desc.Depth, mip)) * 4
	}
	if err := d.alloc(size); err != nil {
		return nil, err
	}
	t.init(func() { d.free(size) })
	return t, nil
}

// initView ties v to res: the view holds a reference to res until it is
// destroyed.
func (d *Device) initView(v *view, res d3d10.Resource) {
	res.AddRef()
	v.res = res
	d.live++
	v.init(func() {
		res.Release()
		d.live--
	})
}

func (d *Device) CreateDepthStencilView(res d3d10.Resource, desc *d3d10.DepthStencilViewDesc) (d3d10.DepthStencilView, error) {
	e, ok := extentOf(res)
	if !ok {
		return nil, d3d10.ErrInvalidArg
	}
	resolved, err := d.resolveDSV(e, desc)
	if err != nil {
		return nil, err
	}
	v := &DepthStencilView{desc: resolved}
	d.initView(&v.view, res)
	return v, nil
}

func (d *Device) CreateRenderTargetView(res d3d10.Resource, desc *d3d10.RenderTargetViewDesc) (d3d10.RenderTargetView, error) {
	e, ok := extentOf(res)
	if !ok {
		return nil, d3d10.ErrInvalidArg
	}
	resolved, err := d.resolveRTV(e, desc)
	if err != nil {
		return nil, err
	}
	v := &RenderTargetView{desc: resolved}
	d.initView(&v.view, res)
	return v, nil
}

func (d *Device) CreateShaderResourceView1(res d3d10.Resource, desc *d3d10.ShaderResourceViewDesc1) (d3d10.ShaderResourceView1, error) {
	e, ok := extentOf(res)
	if !ok {
		return nil, d3d10.ErrInvalidArg
	}
	resolved, err := d.resolveSRV(e, desc)
	if err != nil {
		return nil, err
	}
	v := &ShaderResourceView{desc: resolved}
	d.initView(&v.view, res)
	return v, nil
}

func (d *Device) Draw(vertexCount, startVertex uint32) {
	d.draws = append(d.draws, DrawCall{Count: vertexCount, Instances: 1, Start: startVertex})
}

func (d *Device) DrawInstanced(vertexCountPerInstance, instanceCount, startVertex, startInstance uint32) {
	d.draws = append(d.draws, DrawCall{
		Instanced:     true,
		Count:         vertexCountPerInstance,
		Instances:     instanceCount,
		Start:         startVertex,
		StartInstance: startInstance,
	})
}

func (d *Device) DrawIndexed(indexCount, startIndex uint32, baseVertex int32) {
	d.draws = append(d.draws, DrawCall{Indexed: true, Count: indexCount, Instances: 1, Start: startIndex, BaseVertex: baseVertex})
}

func (d *Device) DrawIndexedInstanced(indexCountPerInstance, instanceCount, startIndex uint32, baseVertex int32, startInstance uint32) {
	d.draws = append(d.draws, DrawCall{
		Indexed:       true,
		Instanced:     true,
		Count:         indexCountPerInstance,
		Instances:     instanceCount,
		Start:         startIndex,
		BaseVertex:    baseVertex,
		StartInstance: startInstance,
	})
}

// CopyResource copies src into dst. Resources must differ and match in
// shape and format family; otherwise the call is dropped.
func (d *Device) CopyResource(dst, src d3d10.Resource) {
	ed, ok1 := extentOf(dst)
	es, ok2 := extentOf(src)
	if !ok1 || !ok2 || dst.Ptr() == src.Ptr() || !sameShape(ed, es) {
		d.dropped++
		return
	}
	switch t := dst.(type) {
	case *Buffer:
		copy(t.data, src.(*Buffer).data)
	case *Texture2D:
		from := src.(*Texture2D)
		for i, sub := range t.subs {
			if i < len(from.subs) {
				sub.copyFrom(from.subs[i])
			}
		}
	}
}

func sameShape(a, b extent) bool {
	return a.dim == b.dim && a.width == b.width && a.height == b.height && a.depth == b.depth &&
		a.levels == b.levels && a.layers == b.layers && a.samples == b.samples &&
		familyOf(a.format) == familyOf(b.format)
}

// targets returns the subresources of t selected by a mip slice and an
// array range.
func (t *Texture2D) targets(mip, first, count uint32) []*Subresource {
	if t.subs == nil {
		return nil
	}
	var subs []*Subresource
	for slice := first; slice < first+count; slice++ {
		subs = append(subs, t.Subresource(mip, slice))
	}
	return subs
}

func (d *Device) ClearRenderTargetView(rtv d3d10.RenderTargetView, c [4]float32) {
	v, ok := rtv.(*RenderTargetView)
	if !ok {
		d.dropped++
		return
	}
	t, ok := v.res.(*Texture2D)
	if !ok {
		return
	}
	var subs []*Subresource
	switch desc := v.desc; desc.ViewDimension {
	case d3d10.RTVDimensionTexture2D:
		subs = t.targets(desc.Texture2D.MipSlice, 0, 1)
	case d3d10.RTVDimensionTexture2DArray:
		subs = t.targets(desc.Texture2DArray.MipSlice, desc.Texture2DArray.FirstArraySlice, desc.Texture2DArray.ArraySize)
	case d3d10.RTVDimensionTexture2DMS:
		subs = t.targets(0, 0, 1)
	case d3d10.RTVDimensionTexture2DMSArray:
		subs = t.targets(0, desc.Texture2DMSArray.FirstArraySlice, desc.Texture2DMSArray.ArraySize)
	}
	px := color.RGBA{unorm8(c[0]), unorm8(c[1]), unorm8(c[2]), unorm8(c[3])}
	for _, s := range subs {
		if s.Image == nil {
			continue
		}
		for i := 0; i < len(s.Image.Pix); i += 4 {
			s.Image.Pix[i], s.Image.Pix[i+1], s.Image.Pix[i+2], s.Image.Pix[i+3] = px.R, px.G, px.B, px.A
		}
	}
}

func (d *Device) ClearDepthStencilView(dsv d3d10.DepthStencilView, flags d3d10.ClearFlag, depth float32, stencil uint8) {
	v, ok := dsv.(*DepthStencilView)
	if !ok || flags&^(d3d10.ClearDepth|d3d10.ClearStencil) != 0 {
		d.dropped++
		return
	}
	t, ok := v.res.(*Texture2D)
	if !ok {
		return
	}
	var subs []*Subresource
	switch desc := v.desc; desc.ViewDimension {
	case d3d10.DSVDimensionTexture2D:
		subs = t.targets(desc.Texture2D.MipSlice, 0, 1)
	case d3d10.DSVDimensionTexture2DArray:
		subs = t.targets(desc.Texture2DArray.MipSlice, desc.Texture2DArray.FirstArraySlice, desc.Texture2DArray.ArraySize)
	case d3d10.DSVDimensionTexture2DMS:
		subs = t.targets(0, 0, 1)
	case d3d10.DSVDimensionTexture2DMSArray:
		subs = t.targets(0, desc.Texture2DMSArray.FirstArraySlice, desc.Texture2DMSArray.ArraySize)
	}
	depth = min(max(depth, 0), 1)
	for _, s := range subs {
		if flags&d3d10.ClearDepth != 0 {
			for i := range s.Depth {
				s.Depth[i] = depth
			}
		}
		if flags&d3d10.ClearStencil != 0 {
			for i := range s.Stencil {
				s.Stencil[i] = stencil
			}
		}
	}
}

func (d *Device) Flush() { d.flushes++ }

func unorm8(v float32) uint8 {
	return uint8(math.Round(float64(min(max(v, 0), 1)) * 255))
}
