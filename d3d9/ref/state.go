package ref

import "github.com/gogpu/shim/d3d9"

const (
	maxStages        = 8
	maxRenderTargets = 8
)

type stateKind uint8

const (
	kindFVF stateKind = iota
	kindRender
	kindStage
	kindSampler
)

type stateKey struct {
	kind  stateKind
	slot  uint32
	state uint32
}

var fvfKey = stateKey{kind: kindFVF}

func renderKey(s d3d9.RenderStateType) stateKey {
	return stateKey{kind: kindRender, state: uint32(s)}
}

func stageKey(stage uint32, s d3d9.TextureStageStateType) stateKey {
	return stateKey{kind: kindStage, slot: stage, state: uint32(s)}
}

func samplerKey(sampler uint32, s d3d9.SamplerStateType) stateKey {
	return stateKey{kind: kindSampler, slot: sampler, state: uint32(s)}
}

// defaultStates returns the documented device defaults for the states the
// rasterizer reads or the copy pipeline writes.
func defaultStates(zEnable bool) map[stateKey]uint32 {
	z := uint32(0)
	if zEnable {
		z = 1
	}
	m := map[stateKey]uint32{
		renderKey(d3d9.RSZEnable):           z,
		renderKey(d3d9.RSFillMode):          d3d9.FillSolid,
		renderKey(d3d9.RSZWriteEnable):      1,
		renderKey(d3d9.RSAlphaTestEnable):   0,
		renderKey(d3d9.RSSrcBlend):          d3d9.BlendOne,
		renderKey(d3d9.RSDestBlend):         d3d9.BlendZero,
		renderKey(d3d9.RSCullMode):          d3d9.CullCCW,
		renderKey(d3d9.RSAlphaBlendEnable):  0,
		renderKey(d3d9.RSFogEnable):         0,
		renderKey(d3d9.RSStencilEnable):     0,
		renderKey(d3d9.RSClipping):          1,
		renderKey(d3d9.RSLighting):          1,
		renderKey(d3d9.RSColorWriteEnable):  d3d9.ColorWriteAll,
		renderKey(d3d9.RSBlendOp):           d3d9.BlendOpAdd,
		renderKey(d3d9.RSScissorTestEnable): 0,
		renderKey(d3d9.RSSRGBWriteEnable):   0,
		renderKey(d3d9.RSBlendOpAlpha):      d3d9.BlendOpAdd,
	}
	m[fvfKey] = 0
	for stage := uint32(0); stage < maxStages; stage++ {
		op := uint32(d3d9.TOPDisable)
		alphaOp := uint32(d3d9.TOPDisable)
		if stage == 0 {
			op, alphaOp = d3d9.TOPModulate, d3d9.TOPSelectArg1
		}
		m[stageKey(stage, d3d9.TSSColorOp)] = op
		m[stageKey(stage, d3d9.TSSColorArg1)] = d3d9.TATexture
		m[stageKey(stage, d3d9.TSSColorArg2)] = d3d9.TACurrent
		m[stageKey(stage, d3d9.TSSAlphaOp)] = alphaOp
		m[stageKey(stage, d3d9.TSSAlphaArg1)] = d3d9.TATexture
		m[stageKey(stage, d3d9.TSSAlphaArg2)] = d3d9.TACurrent
		m[stageKey(stage, d3d9.TSSTexCoordIndex)] = stage
		m[stageKey(stage, d3d9.TSSTextureTransformFlags)] = d3d9.TTFFDisable

		m[samplerKey(stage, d3d9.SampAddressU)] = d3d9.TAddressWrap
		m[samplerKey(stage, d3d9.SampAddressV)] = d3d9.TAddressWrap
		m[samplerKey(stage, d3d9.SampAddressW)] = d3d9.TAddressWrap
		m[samplerKey(stage, d3d9.SampMagFilter)] = uint32(d3d9.TexFPoint)
		m[samplerKey(stage, d3d9.SampMinFilter)] = uint32(d3d9.TexFPoint)
		m[samplerKey(stage, d3d9.SampMipFilter)] = uint32(d3d9.TexFNone)
		m[samplerKey(stage, d3d9.SampMipMapLODBias)] = 0
		m[samplerKey(stage, d3d9.SampMaxMipLevel)] = 0
		m[samplerKey(stage, d3d9.SampSRGBTexture)] = 0
	}
	return m
}

// block is a set of recorded states. Only the states present are applied.
type block struct {
	values   map[stateKey]uint32
	textures map[uint32]d3d9.BaseTexture9
	shaders  bool
	vs       d3d9.VertexShader9
	ps       d3d9.PixelShader9
	viewport *d3d9.Viewport
}

func newBlock() *block {
	return &block{
		values:   make(map[stateKey]uint32),
		textures: make(map[uint32]d3d9.BaseTexture9),
	}
}

func (b *block) setTexture(stage uint32, tex d3d9.BaseTexture9) {
	if tex != nil {
		tex.AddRef()
	}
	if old := b.textures[stage]; old != nil {
		old.Release()
	}
	b.textures[stage] = tex
}

func (b *block) release() {
	for stage := range b.textures {
		b.setTexture(stage, nil)
	}
}

// StateBlock is a recorded or captured set of device states.
type StateBlock struct {
	object
	dev *Device
	b   *block
}

func (d *Device) newStateBlock(b *block) *StateBlock {
	sb := &StateBlock{dev: d, b: b}
	sb.init(func() {
		b.release()
		d.stateBlocks--
	})
	d.stateBlocks++
	return sb
}

// Capture refreshes the recorded states from the device.
func (sb *StateBlock) Capture() error {
	d := sb.dev
	if d.recording != nil {
		return d3d9.ErrInvalidCall
	}
	for k := range sb.b.values {
		sb.b.values[k] = d.get(k)
	}
	for stage := range sb.b.textures {
		sb.b.setTexture(stage, d.textures[stage])
	}
	if sb.b.shaders {
		sb.b.vs, sb.b.ps = d.vs, d.ps
	}
	if sb.b.viewport != nil {
		vp := d.viewport
		sb.b.viewport = &vp
	}
	return nil
}

// Apply writes the recorded states to the device.
func (sb *StateBlock) Apply() error {
	d := sb.dev
	if d.recording != nil {
		return d3d9.ErrInvalidCall
	}
	for k, v := range sb.b.values {
		d.values[k] = v
	}
	for stage, tex := range sb.b.textures {
		d.bindTexture(stage, tex)
	}
	if sb.b.shaders {
		d.vs, d.ps = sb.b.vs, sb.b.ps
	}
	if sb.b.viewport != nil {
		d.viewport = *sb.b.viewport
	}
	return nil
}

// Recorded reports whether the block holds a value for render state s
// and returns it.
func (sb *StateBlock) Recorded(s d3d9.RenderStateType) (uint32, bool) {
	v, ok := sb.b.values[renderKey(s)]
	return v, ok
}
