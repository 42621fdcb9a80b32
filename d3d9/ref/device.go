package ref

import (
	"fmt"

	"github.com/gogpu/shim/d3d9"
)

// DrawCall records a draw issued through the stream-source entry points,
// which the reference device does not rasterize.
type DrawCall struct {
	Primitive  d3d9.PrimitiveType
	Indexed    bool
	BaseVertex int32
	Start      uint32
	Count      uint32
}

// Option configures a Device.
type Option func(*Device)

// WithCaps lets fn adjust the device caps.
func WithCaps(fn func(*d3d9.Caps)) Option {
	return func(d *Device) { fn(&d.caps) }
}

// WithVideoMemory limits the bytes of surface storage the device hands
// out. Creation beyond the limit fails with d3d9.ErrOutOfVideoMemory.
func WithVideoMemory(bytes uint64) Option {
	return func(d *Device) { d.memLimit = bytes }
}

// WithDirect3D makes the device report d as its adapter.
func WithDirect3D(d3d *Direct3D) Option {
	return func(d *Device) { d.d3d = d3d }
}

// DefaultCaps returns the caps of the reference device.
func DefaultCaps() d3d9.Caps {
	return d3d9.Caps{
		DeviceType:         d3d9.DevTypeRef,
		Caps2:              d3d9.DevCaps2CanStretchRectFromTextures,
		MaxTextureWidth:    8192,
		MaxTextureHeight:   8192,
		MaxVolumeExtent:    2048,
		NumSimultaneousRTs: 4,
	}
}

// DefaultPresentParameters returns windowed parameters for a back buffer
// of the given size with an automatic D24S8 depth-stencil surface.
func DefaultPresentParameters(width, height uint32) d3d9.PresentParameters {
	return d3d9.PresentParameters{
		BackBufferWidth:        width,
		BackBufferHeight:       height,
		BackBufferFormat:       d3d9.FmtX8R8G8B8,
		BackBufferCount:        1,
		SwapEffect:             d3d9.SwapEffectDiscard,
		Windowed:               true,
		EnableAutoDepthStencil: true,
		AutoDepthStencilFormat: d3d9.FmtD24S8,
	}
}

// Device is a software implementation of d3d9.Device9.
//
// It keeps real pixel storage for color surfaces and rasterizes
// DrawPrimitiveUP with the fixed-function texture stage 0. Transforms are
// identity, so positions are taken as clip-space coordinates. Depth tests,
// blending and culling are not performed.
type Device struct {
	object
	d3d  *Direct3D
	caps d3d9.Caps
	pp   d3d9.PresentParameters

	backBuffer *Surface
	autoDepth  *Surface

	values   map[stateKey]uint32
	textures [maxStages]d3d9.BaseTexture9
	vs       d3d9.VertexShader9
	ps       d3d9.PixelShader9
	viewport d3d9.Viewport
	rts      [maxRenderTargets]*Surface
	ds       *Surface

	recording   *block
	stateBlocks int

	memLimit uint64
	memUsed  uint64
	live     int

	draws []DrawCall
}

var _ d3d9.Device9 = (*Device)(nil)

// NewDevice creates a device with an implicit swap chain described by pp.
func NewDevice(pp d3d9.PresentParameters, opts ...Option) (*Device, error) {
	d := &Device{
		d3d:  NewDirect3D(),
		caps: DefaultCaps(),
	}
	d.init(nil)
	for _, opt := range opts {
		opt(d)
	}
	if err := d.present(pp); err != nil {
		return nil, fmt.Errorf("ref: create device: %w", err)
	}
	return d, nil
}

// Direct3D implements d3d9.Device9.
func (d *Device) Direct3D() d3d9.Direct3D9 { return d.d3d }

// Adapter returns the reference adapter.
func (d *Device) Adapter() *Direct3D { return d.d3d }

func (d *Device) DeviceCaps() d3d9.Caps { return d.caps }

func (d *Device) CreationParameters() d3d9.CreationParameters {
	return d3d9.CreationParameters{DeviceType: d.caps.DeviceType}
}

func (d *Device) PresentParameters() d3d9.PresentParameters { return d.pp }

// BackBuffer returns the back buffer without adding a reference.
func (d *Device) BackBuffer() *Surface { return d.backBuffer }

// LiveObjects returns the number of resources not yet destroyed, swap chain
// surfaces included.
func (d *Device) LiveObjects() int { return d.live }

// StateBlocks returns the number of live state blocks.
func (d *Device) StateBlocks() int { return d.stateBlocks }

// Draws returns the draws issued through DrawPrimitive and
// DrawIndexedPrimitive.
func (d *Device) Draws() []DrawCall { return d.draws }

// RenderState returns the current value of render state s.
func (d *Device) RenderState(s d3d9.RenderStateType) uint32 { return d.get(renderKey(s)) }

// Texture returns the texture bound to stage without adding a reference.
func (d *Device) Texture(stage uint32) d3d9.BaseTexture9 { return d.textures[stage] }

// present builds the swap chain surfaces for pp and resets device state.
func (d *Device) present(pp d3d9.PresentParameters) error {
	if pp.BackBufferWidth == 0 || pp.BackBufferHeight == 0 {
		return d3d9.ErrInvalidCall
	}
	if pp.BackBufferFormat == d3d9.FmtUnknown {
		pp.BackBufferFormat = d3d9.FmtX8R8G8B8
	}
	if !d.d3d.supports(pp.BackBufferFormat, d3d9.UsageRenderTarget, false) {
		return d3d9.ErrInvalidCall
	}
	if pp.EnableAutoDepthStencil && !d.d3d.supports(pp.AutoDepthStencilFormat, d3d9.UsageDepthStencil, false) {
		return d3d9.ErrInvalidCall
	}

	bb, err := d.newStandalone(pp.BackBufferWidth, pp.BackBufferHeight, pp.BackBufferFormat, d3d9.UsageRenderTarget, pp.MultiSampleType)
	if err != nil {
		return err
	}
	var ds *Surface
	if pp.EnableAutoDepthStencil {
		ds, err = d.newStandalone(pp.BackBufferWidth, pp.BackBufferHeight, pp.AutoDepthStencilFormat, d3d9.UsageDepthStencil, pp.MultiSampleType)
		if err != nil {
			bb.Release()
			return err
		}
	}

	d.pp = pp
	d.backBuffer, d.autoDepth = bb, ds
	d.values = defaultStates(pp.EnableAutoDepthStencil)
	d.vs, d.ps = nil, nil
	d.bindRenderTarget(0, bb)
	d.bindDepthStencil(ds)
	return nil
}

// Reset recreates the swap chain surfaces. Like the real API it fails while
// a state block is alive or being recorded.
func (d *Device) Reset(pp *d3d9.PresentParameters) error {
	if pp == nil || d.recording != nil || d.stateBlocks > 0 {
		return d3d9.ErrInvalidCall
	}

	for stage := range d.textures {
		d.bindTexture(uint32(stage), nil)
	}
	for i := range d.rts {
		d.bindRenderTarget(uint32(i), nil)
	}
	d.bindDepthStencil(nil)
	if d.backBuffer != nil {
		d.backBuffer.Release()
		d.backBuffer = nil
	}
	if d.autoDepth != nil {
		d.autoDepth.Release()
		d.autoDepth = nil
	}
	d.draws = nil

	if err := d.present(*pp); err != nil {
		return fmt.Errorf("ref: reset: %w", err)
	}
	return nil
}

func (d *Device) alloc(n uint64) error {
	if d.memLimit > 0 && d.memUsed+n > d.memLimit {
		return d3d9.ErrOutOfVideoMemory
	}
	d.memUsed += n
	d.live++
	return nil
}

func (d *Device) free(n uint64) {
	d.memUsed -= n
	d.live--
}

func (d *Device) newStandalone(width, height uint32, format d3d9.Format, usage d3d9.Usage, ms d3d9.MultiSampleType) (*Surface, error) {
	if width == 0 || height == 0 || width > d.caps.MaxTextureWidth || height > d.caps.MaxTextureHeight {
		return nil, d3d9.ErrInvalidCall
	}
	s := newSurface(d3d9.SurfaceDesc{
		Format:          format,
		Type:            d3d9.RTypeSurface,
		Usage:           usage,
		Pool:            d3d9.PoolDefault,
		MultiSampleType: ms,
		Width:           width,
		Height:          height,
	})
	if err := d.alloc(s.size()); err != nil {
		return nil, err
	}
	s.init(func() { d.free(s.size()) })
	return s, nil
}

func (d *Device) checkTexture(width, height uint32, usage d3d9.Usage, format d3d9.Format, pool d3d9.Pool) error {
	if width == 0 || height == 0 || width > d.caps.MaxTextureWidth || height > d.caps.MaxTextureHeight {
		return d3d9.ErrInvalidCall
	}
	if usage&(d3d9.UsageRenderTarget|d3d9.UsageDepthStencil) != 0 && pool != d3d9.PoolDefault {
		return d3d9.ErrInvalidCall
	}
	if !d.d3d.supports(format, usage, true) {
		return d3d9.ErrInvalidCall
	}
	return nil
}

// newLevels creates the surfaces of a mip chain owned by owner.
func (d *Device) newLevels(owner container, width, height, levels uint32, usage d3d9.Usage, format d3d9.Format, pool d3d9.Pool) ([]*Surface, uint64) {
	n := levelCount(levels, max(width, height))
	surfaces := make([]*Surface, n)
	var size uint64
	for i := range surfaces {
		s := newSurface(d3d9.SurfaceDesc{
			Format: format,
			Type:   d3d9.RTypeSurface,
			Usage:  usage,
			Pool:   pool,
			Width:  levelSize(width, uint32(i)),
			Height: levelSize(height, uint32(i)),
		})
		s.ptr = allocPtr()
		s.owner = owner
		size += s.size()
		surfaces[i] = s
	}
	return surfaces, size
}

func (d *Device) CreateTexture(width, height, levels uint32, usage d3d9.Usage, format d3d9.Format, pool d3d9.Pool) (d3d9.Texture9, error) {
	if err := d.checkTexture(width, height, usage, format, pool); err != nil {
		return nil, err
	}
	t := &Texture{}
	var size uint64
	t.levels, size = d.newLevels(t, width, height, levels, usage, format, pool)
	if err := d.alloc(size); err != nil {
		return nil, err
	}
	t.init(func() { d.free(size) })
	return t, nil
}

func (d *Device) CreateCubeTexture(edge, levels uint32, usage d3d9.Usage, format d3d9.Format, pool d3d9.Pool) (d3d9.CubeTexture9, error) {
	if err := d.checkTexture(edge, edge, usage, format, pool); err != nil {
		return nil, err
	}
	t := &CubeTexture{}
	var total uint64
	for face := range t.faces {
		var size uint64
		t.faces[face], size = d.newLevels(t, edge, edge, levels, usage, format, pool)
		total += size
	}
	if err := d.alloc(total); err != nil {
		return nil, err
	}
	t.init(func() { d.free(total) })
	return t, nil
}

func (d *Device) CreateVolumeTexture(width, height, depth, levels uint32, usage d3d9.Usage, format d3d9.Format, pool d3d9.Pool) (d3d9.VolumeTexture9, error) {
	if usage&(d3d9.UsageRenderTarget|d3d9.UsageDepthStencil) != 0 || depth == 0 ||
		width > d.caps.MaxVolumeExtent || height > d.caps.MaxVolumeExtent || depth > d.caps.MaxVolumeExtent {
		return nil, d3d9.ErrInvalidCall
	}
	if err := d.checkTexture(width, height, usage, format, pool); err != nil {
		return nil, err
	}
	t := &VolumeTexture{levels: make([]d3d9.VolumeDesc, levelCount(levels, max(width, height, depth)))}
	var size uint64
	for i := range t.levels {
		l := uint32(i)
		t.levels[i] = d3d9.VolumeDesc{
			Format: format,
			Type:   d3d9.RTypeVolume,
			Usage:  usage,
			Pool:   pool,
			Width:  levelSize(width, l),
			Height: levelSize(height, l),
			Depth:  levelSize(depth, l),
		}
		size += uint64(t.levels[i].Width) * uint64(t.levels[i].Height) * uint64(t.levels[i].Depth) * 4
	}
	if err := d.alloc(size); err != nil {
		return nil, err
	}
	t.init(func() { d.free(size) })
	return t, nil
}

func (d *Device) CreateVertexBuffer(length uint32, usage d3d9.Usage, fvf d3d9.FVF, pool d3d9.Pool) (d3d9.VertexBuffer9, error) {
	if length == 0 || usage&(d3d9.UsageRenderTarget|d3d9.UsageDepthStencil) != 0 {
		return nil, d3d9.ErrInvalidCall
	}
	if err := d.alloc(uint64(length)); err != nil {
		return nil, err
	}
	b := &VertexBuffer{
		desc: d3d9.VertexBufferDesc{Format: d3d9.FmtUnknown, Type: d3d9.RTypeVertexBuffer, Usage: usage, Pool: pool, Size: length, FVF: fvf},
		data: make([]byte, length),
	}
	b.init(func() { d.free(uint64(length)) })
	return b, nil
}

func (d *Device) CreateIndexBuffer(length uint32, usage d3d9.Usage, format d3d9.Format, pool d3d9.Pool) (d3d9.IndexBuffer9, error) {
	if length == 0 || usage&(d3d9.UsageRenderTarget|d3d9.UsageDepthStencil) != 0 {
		return nil, d3d9.ErrInvalidCall
	}
	if format != d3d9.FmtIndex16 && format != d3d9.FmtIndex32 {
		return nil, d3d9.ErrInvalidCall
	}
	if err := d.alloc(uint64(length)); err != nil {
		return nil, err
	}
	b := &IndexBuffer{
		desc: d3d9.IndexBufferDesc{Format: format, Type: d3d9.RTypeIndexBuffer, Usage: usage, Pool: pool, Size: length},
		data: make([]byte, length),
	}
	b.init(func() { d.free(uint64(length)) })
	return b, nil
}

func (d *Device) CreateRenderTarget(width, height uint32, format d3d9.Format, ms d3d9.MultiSampleType, quality uint32, lockable bool) (d3d9.Surface9, error) {
	if !d.d3d.supports(format, d3d9.UsageRenderTarget, false) {
		return nil, d3d9.ErrInvalidCall
	}
	s, err := d.newStandalone(width, height, format, d3d9.UsageRenderTarget, ms)
	if err != nil {
		return nil, err
	}
	s.desc.MultiSampleQuality = quality
	return s, nil
}

func (d *Device) CreateDepthStencilSurface(width, height uint32, format d3d9.Format, ms d3d9.MultiSampleType, quality uint32, discard bool) (d3d9.Surface9, error) {
	if !d.d3d.supports(format, d3d9.UsageDepthStencil, false) {
		return nil, d3d9.ErrInvalidCall
	}
	s, err := d.newStandalone(width, height, format, d3d9.UsageDepthStencil, ms)
	if err != nil {
		return nil, err
	}
	s.desc.MultiSampleQuality = quality
	return s, nil
}

func (d *Device) BeginStateBlock() error {
	if d.recording != nil {
		return d3d9.ErrInvalidCall
	}
	d.recording = newBlock()
	return nil
}

func (d *Device) EndStateBlock() (d3d9.StateBlock9, error) {
	if d.recording == nil {
		return nil, d3d9.ErrInvalidCall
	}
	b := d.recording
	d.recording = nil
	return d.newStateBlock(b), nil
}

// CreateStateBlock captures every state the device tracks. All block types
// capture the same set.
func (d *Device) CreateStateBlock(typ d3d9.StateBlockType) (d3d9.StateBlock9, error) {
	if d.recording != nil || typ < d3d9.SBTAll || typ > d3d9.SBTVertexState {
		return nil, d3d9.ErrInvalidCall
	}
	b := newBlock()
	for k, v := range d.values {
		b.values[k] = v
	}
	for stage, tex := range d.textures {
		b.setTexture(uint32(stage), tex)
	}
	b.shaders = true
	b.vs, b.ps = d.vs, d.ps
	vp := d.viewport
	b.viewport = &vp
	return d.newStateBlock(b), nil
}

func (d *Device) get(k stateKey) uint32 { return d.values[k] }

func (d *Device) set(k stateKey, v uint32) {
	if d.recording != nil {
		d.recording.values[k] = v
		return
	}
	d.values[k] = v
}

func (d *Device) SetFVF(fvf d3d9.FVF) error {
	d.set(fvfKey, uint32(fvf))
	return nil
}

func (d *Device) SetVertexShader(vs d3d9.VertexShader9) error {
	if d.recording != nil {
		d.recording.shaders = true
		d.recording.vs = vs
		return nil
	}
	d.vs = vs
	return nil
}

func (d *Device) SetPixelShader(ps d3d9.PixelShader9) error {
	if d.recording != nil {
		d.recording.shaders = true
		d.recording.ps = ps
		return nil
	}
	d.ps = ps
	return nil
}

func (d *Device) SetRenderState(state d3d9.RenderStateType, value uint32) error {
	d.set(renderKey(state), value)
	return nil
}

func (d *Device) SetTextureStageState(stage uint32, typ d3d9.TextureStageStateType, value uint32) error {
	if stage >= maxStages {
		return d3d9.ErrInvalidCall
	}
	d.set(stageKey(stage, typ), value)
	return nil
}

func (d *Device) SetSamplerState(sampler uint32, typ d3d9.SamplerStateType, value uint32) error {
	if sampler >= maxStages {
		return d3d9.ErrInvalidCall
	}
	d.set(samplerKey(sampler, typ), value)
	return nil
}

func (d *Device) SetTexture(stage uint32, tex d3d9.BaseTexture9) error {
	if stage >= maxStages {
		return d3d9.ErrInvalidCall
	}
	if d.recording != nil {
		d.recording.setTexture(stage, tex)
		return nil
	}
	d.bindTexture(stage, tex)
	return nil
}

func (d *Device) bindTexture(stage uint32, tex d3d9.BaseTexture9) {
	if tex != nil {
		tex.AddRef()
	}
	if old := d.textures[stage]; old != nil {
		old.Release()
	}
	d.textures[stage] = tex
}

func (d *Device) surface(s d3d9.Surface9) (*Surface, error) {
	if s == nil {
		return nil, nil
	}
	rs, ok := s.(*Surface)
	if !ok || rs == nil {
		return nil, d3d9.ErrInvalidCall
	}
	return rs, nil
}

func (d *Device) SetRenderTarget(index uint32, s d3d9.Surface9) error {
	if index >= d.caps.NumSimultaneousRTs || index >= maxRenderTargets {
		return d3d9.ErrInvalidCall
	}
	rs, err := d.surface(s)
	if err != nil {
		return err
	}
	if rs == nil && index == 0 {
		return d3d9.ErrInvalidCall
	}
	if rs != nil && rs.desc.Usage&d3d9.UsageRenderTarget == 0 {
		return d3d9.ErrInvalidCall
	}
	d.bindRenderTarget(index, rs)
	return nil
}

func (d *Device) bindRenderTarget(index uint32, s *Surface) {
	if s != nil {
		s.AddRef()
	}
	if old := d.rts[index]; old != nil {
		old.Release()
	}
	d.rts[index] = s
	if index == 0 && s != nil {
		d.viewport = d3d9.Viewport{Width: s.desc.Width, Height: s.desc.Height, MaxZ: 1}
	}
}

func (d *Device) RenderTarget(index uint32) (d3d9.Surface9, error) {
	if index >= d.caps.NumSimultaneousRTs || index >= maxRenderTargets {
		return nil, d3d9.ErrInvalidCall
	}
	s := d.rts[index]
	if s == nil {
		return nil, d3d9.ErrNotFound
	}
	s.AddRef()
	return s, nil
}

func (d *Device) SetDepthStencilSurface(s d3d9.Surface9) error {
	rs, err := d.surface(s)
	if err != nil {
		return err
	}
	if rs != nil && rs.desc.Usage&d3d9.UsageDepthStencil == 0 {
		return d3d9.ErrInvalidCall
	}
	d.bindDepthStencil(rs)
	return nil
}

func (d *Device) bindDepthStencil(s *Surface) {
	if s != nil {
		s.AddRef()
	}
	if d.ds != nil {
		d.ds.Release()
	}
	d.ds = s
}

func (d *Device) DepthStencilSurface() (d3d9.Surface9, error) {
	if d.ds == nil {
		return nil, d3d9.ErrNotFound
	}
	d.ds.AddRef()
	return d.ds, nil
}

func (d *Device) SetViewport(vp d3d9.Viewport) error {
	if vp.Width == 0 || vp.Height == 0 {
		return d3d9.ErrInvalidCall
	}
	if d.recording != nil {
		d.recording.viewport = &vp
		return nil
	}
	d.viewport = vp
	return nil
}

func (d *Device) Viewport() d3d9.Viewport { return d.viewport }

func (d *Device) DrawPrimitive(pt d3d9.PrimitiveType, startVertex, primCount uint32) error {
	d.draws = append(d.draws, DrawCall{Primitive: pt, Start: startVertex, Count: primCount})
	return nil
}

func (d *Device) DrawIndexedPrimitive(pt d3d9.PrimitiveType, baseVertex int32, minIndex, numVertices, startIndex, primCount uint32) error {
	d.draws = append(d.draws, DrawCall{Primitive: pt, Indexed: true, BaseVertex: baseVertex, Start: startIndex, Count: primCount})
	return nil
}
