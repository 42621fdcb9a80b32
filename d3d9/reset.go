package d3d9

import (
	"fmt"

	"github.com/gogpu/shim"
)

// State is the reset state of a Device.
type State uint8

const (
	// StateReset means the copy helpers are released and observers have
	// been told the device is gone. Copies and clears are dropped.
	StateReset State = iota
	// StateActive means the device is fully initialized.
	StateActive
)

func (s State) String() string {
	if s == StateActive {
		return "Active"
	}
	return "Reset"
}

type renderState struct {
	state RenderStateType
	value uint32
}

type stageState struct {
	state TextureStageStateType
	value uint32
}

type samplerState struct {
	state SamplerStateType
	value uint32
}

// pipelineState is a fixed-function configuration for texture stage and
// sampler 0, with shaders unbound.
type pipelineState struct {
	fvf      FVF
	render   []renderState
	stage    []stageState
	samplers []samplerState
}

// copyPipelineState samples texture 0 and writes it unchanged to the bound
// render target.
var copyPipelineState = pipelineState{
	fvf: FVFXYZ | FVFTex1,
	render: []renderState{
		{RSZEnable, 0},
		{RSFillMode, FillSolid},
		{RSAlphaTestEnable, 0},
		{RSSrcBlend, BlendOne},
		{RSDestBlend, BlendZero},
		{RSCullMode, CullNone},
		{RSAlphaBlendEnable, 0},
		{RSFogEnable, 0},
		{RSStencilEnable, 0},
		{RSClipping, 0},
		{RSLighting, 0},
		{RSColorWriteEnable, ColorWriteAll},
		{RSScissorTestEnable, 0},
		{RSBlendOp, BlendOpAdd},
		{RSSRGBWriteEnable, 0},
		{RSBlendOpAlpha, BlendOpAdd},
	},
	stage: []stageState{
		{TSSColorOp, TOPSelectArg1},
		{TSSColorArg1, TATexture},
		{TSSAlphaOp, TOPSelectArg1},
		{TSSAlphaArg1, TATexture},
		{TSSTexCoordIndex, 0},
		{TSSTextureTransformFlags, TTFFDisable},
	},
	samplers: []samplerState{
		{SampAddressU, TAddressClamp},
		{SampAddressV, TAddressClamp},
		{SampAddressW, TAddressClamp},
		{SampMagFilter, uint32(TexFLinear)},
		{SampMinFilter, uint32(TexFLinear)},
		{SampMipFilter, uint32(TexFNone)},
		{SampMipMapLODBias, 0},
		{SampMaxMipLevel, 0},
		{SampSRGBTexture, 0},
	},
}

// apply sets every state of p on dev and returns the first failure.
func (p *pipelineState) apply(dev Device9) error {
	if err := dev.SetFVF(p.fvf); err != nil {
		return fmt.Errorf("set fvf: %w", err)
	}
	if err := dev.SetPixelShader(nil); err != nil {
		return fmt.Errorf("unbind pixel shader: %w", err)
	}
	if err := dev.SetVertexShader(nil); err != nil {
		return fmt.Errorf("unbind vertex shader: %w", err)
	}
	for _, s := range p.render {
		if err := dev.SetRenderState(s.state, s.value); err != nil {
			return fmt.Errorf("render state %d: %w", s.state, err)
		}
	}
	for _, s := range p.stage {
		if err := dev.SetTextureStageState(0, s.state, s.value); err != nil {
			return fmt.Errorf("texture stage state %d: %w", s.state, err)
		}
	}
	for _, s := range p.samplers {
		if err := dev.SetSamplerState(0, s.state, s.value); err != nil {
			return fmt.Errorf("sampler state %d: %w", s.state, err)
		}
	}
	return nil
}

// record captures p into a new state block.
func (p *pipelineState) record(dev Device9) (StateBlock9, error) {
	if err := dev.BeginStateBlock(); err != nil {
		return nil, fmt.Errorf("%w: begin: %w", ErrStateBlock, err)
	}
	applyErr := p.apply(dev)
	sb, err := dev.EndStateBlock()
	if err != nil {
		return nil, fmt.Errorf("%w: end: %w", ErrStateBlock, err)
	}
	if applyErr != nil {
		sb.Release()
		return nil, fmt.Errorf("%w: %w", ErrStateBlock, applyErr)
	}
	return sb, nil
}

// OnReset prepares the device for a native reset. Observers receive
// DestroyCommandQueue and DestroyDevice, then the copy helpers and the
// swap chain's depth-stencil surface are released. Calling it on a device
// that is already in StateReset does nothing.
func (d *Device) OnReset() {
	if d.state == StateReset {
		return
	}

	d.observers.DestroyCommandQueue(d)
	d.observers.DestroyDevice(d)

	d.releaseHelpers()
	for _, h := range d.implicit {
		d.unregisterTree(h)
	}
	d.implicit = nil
	stats := d.formats.Stats()
	d.formats.Reset()
	d.state = StateReset

	shim.Logger().Info("d3d9: device reset",
		"format_cache_hits", stats.Hits,
		"format_cache_misses", stats.Misses)
}

func (d *Device) releaseHelpers() {
	if d.copyState != nil {
		d.copyState.Release()
		d.copyState = nil
	}
	d.backup.release()
}

// OnAfterReset rebuilds the device after a native reset with parameters pp.
// It refreshes the capability snapshot, records the copy pipeline, prepares
// the state backup, notifies observers and re-synthesizes the automatic
// depth-stencil surface. On failure everything built so far is released
// and the device stays in StateReset; a later successful reset recovers it.
func (d *Device) OnAfterReset(pp PresentParameters) error {
	if d.state == StateActive {
		panic("d3d9: OnAfterReset on an active device")
	}

	d.snapshot()

	sb, err := copyPipelineState.record(d.native)
	if err != nil {
		return err
	}
	d.copyState = sb
	if err := d.backup.init(); err != nil {
		d.releaseHelpers()
		return err
	}
	d.state = StateActive

	d.observers.InitDevice(d)
	d.observers.InitCommandQueue(d)

	if pp.EnableAutoDepthStencil {
		d.bindAutoDepthStencil()
	}

	shim.Logger().Info("d3d9: device initialized",
		"width", pp.BackBufferWidth,
		"height", pp.BackBufferHeight,
		"auto_depth_stencil", pp.EnableAutoDepthStencil)
	return nil
}

// Reset resets the native device with pp, tearing the device down before
// and rebuilding it after.
func (d *Device) Reset(pp *PresentParameters) error {
	d.OnReset()
	if err := d.native.Reset(pp); err != nil {
		return fmt.Errorf("d3d9: reset: %w", err)
	}
	return d.OnAfterReset(*pp)
}

// bindAutoDepthStencil offers the swap chain's depth-stencil surface to
// observers as a resource creation. When they change its description a
// texture-backed replacement is created and bound in its place. Observers
// are then told which depth-stencil view is bound.
func (d *Device) bindAutoDepthStencil() {
	ds, err := d.native.DepthStencilSurface()
	if err != nil {
		shim.Logger().Debug("d3d9: no automatic depth-stencil surface", "err", err)
		return
	}
	defer ds.Release()

	desc := ds.Desc()
	api := FromSurfaceDesc(desc, 1, d.caps)
	d.observers.CreateResource(d, shim.ResourceTypeSurface, &api)
	newDesc := desc
	ToSurfaceDesc(api, &newDesc, nil)

	var dsv uint64
	if newDesc != desc {
		if dsv, err = d.replaceDepthStencil(newDesc); err != nil {
			shim.Logger().Warn("d3d9: cannot replace automatic depth-stencil surface", "desc", api, "err", err)
		}
	}
	if dsv == 0 {
		dsv = d.register(ds)
		d.implicit = append(d.implicit, dsv)
	}

	d.observers.SetRenderTargetsAndDepthStencil(d, nil, shim.ResourceViewHandle(dsv))
}

// replaceDepthStencil creates a single-level texture matching desc and
// binds its surface as the depth-stencil surface. The binding keeps the
// texture alive. It returns the surface handle.
func (d *Device) replaceDepthStencil(desc SurfaceDesc) (uint64, error) {
	if desc.MultiSampleType != MultiSampleNone {
		return 0, fmt.Errorf("%w: multisampled textures", shim.ErrUnsupported)
	}
	tex, err := d.native.CreateTexture(desc.Width, desc.Height, 1, desc.Usage, desc.Format, desc.Pool)
	if err != nil {
		return 0, err
	}
	defer tex.Release()

	s, err := tex.SurfaceLevel(0)
	if err != nil {
		return 0, err
	}
	defer s.Release()

	if err := d.native.SetDepthStencilSurface(s); err != nil {
		return 0, err
	}
	h := d.register(tex)
	d.implicit = append(d.implicit, h)
	return d.registerChild(h, s), nil
}
