package d3d9

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stateRecorder captures the fixed-function states written to it. Methods
// it does not override panic through the nil embedded Device9.
type stateRecorder struct {
	Device9

	fvf       FVF
	shaders   int
	render    map[RenderStateType]uint32
	stage     map[TextureStageStateType]uint32
	samplers  map[SamplerStateType]uint32
	recording bool
	fail      RenderStateType
	released  int
}

func newStateRecorder() *stateRecorder {
	return &stateRecorder{
		render:   make(map[RenderStateType]uint32),
		stage:    make(map[TextureStageStateType]uint32),
		samplers: make(map[SamplerStateType]uint32),
	}
}

func (r *stateRecorder) SetFVF(fvf FVF) error {
	r.fvf = fvf
	return nil
}

func (r *stateRecorder) SetPixelShader(ps PixelShader9) error {
	if ps == nil {
		r.shaders++
	}
	return nil
}

func (r *stateRecorder) SetVertexShader(vs VertexShader9) error {
	if vs == nil {
		r.shaders++
	}
	return nil
}

func (r *stateRecorder) SetRenderState(s RenderStateType, v uint32) error {
	if s == r.fail {
		return ErrInvalidCall
	}
	r.render[s] = v
	return nil
}

func (r *stateRecorder) SetTextureStageState(stage uint32, s TextureStageStateType, v uint32) error {
	if stage != 0 {
		return ErrInvalidCall
	}
	r.stage[s] = v
	return nil
}

func (r *stateRecorder) SetSamplerState(sampler uint32, s SamplerStateType, v uint32) error {
	if sampler != 0 {
		return ErrInvalidCall
	}
	r.samplers[s] = v
	return nil
}

func (r *stateRecorder) BeginStateBlock() error {
	if r.recording {
		return ErrInvalidCall
	}
	r.recording = true
	return nil
}

func (r *stateRecorder) EndStateBlock() (StateBlock9, error) {
	if !r.recording {
		return nil, ErrInvalidCall
	}
	r.recording = false
	return &recordedBlock{owner: r}, nil
}

type recordedBlock struct {
	StateBlock9
	owner *stateRecorder
}

func (b *recordedBlock) Release() uint32 {
	b.owner.released++
	return 0
}

func TestCopyPipelineState(t *testing.T) {
	r := newStateRecorder()
	require.NoError(t, copyPipelineState.apply(r))

	assert.Equal(t, FVFXYZ|FVFTex1, r.fvf)
	assert.Equal(t, 2, r.shaders)
	assert.Equal(t, map[RenderStateType]uint32{
		RSZEnable:           0,
		RSFillMode:          FillSolid,
		RSAlphaTestEnable:   0,
		RSSrcBlend:          BlendOne,
		RSDestBlend:         BlendZero,
		RSCullMode:          CullNone,
		RSAlphaBlendEnable:  0,
		RSFogEnable:         0,
		RSStencilEnable:     0,
		RSClipping:          0,
		RSLighting:          0,
		RSColorWriteEnable:  ColorWriteAll,
		RSScissorTestEnable: 0,
		RSBlendOp:           BlendOpAdd,
		RSSRGBWriteEnable:   0,
		RSBlendOpAlpha:      BlendOpAdd,
	}, r.render)
	assert.Equal(t, map[TextureStageStateType]uint32{
		TSSColorOp:               TOPSelectArg1,
		TSSColorArg1:             TATexture,
		TSSAlphaOp:               TOPSelectArg1,
		TSSAlphaArg1:             TATexture,
		TSSTexCoordIndex:         0,
		TSSTextureTransformFlags: TTFFDisable,
	}, r.stage)
	assert.Equal(t, map[SamplerStateType]uint32{
		SampAddressU:      TAddressClamp,
		SampAddressV:      TAddressClamp,
		SampAddressW:      TAddressClamp,
		SampMagFilter:     uint32(TexFLinear),
		SampMinFilter:     uint32(TexFLinear),
		SampMipFilter:     uint32(TexFNone),
		SampMipMapLODBias: 0,
		SampMaxMipLevel:   0,
		SampSRGBTexture:   0,
	}, r.samplers)
}

func TestPipelineStateRecord(t *testing.T) {
	r := newStateRecorder()
	sb, err := copyPipelineState.record(r)
	require.NoError(t, err)
	assert.NotNil(t, sb)
	assert.False(t, r.recording)
	assert.Zero(t, r.released)
}

func TestPipelineStateRecordFailure(t *testing.T) {
	r := newStateRecorder()
	r.fail = RSCullMode
	sb, err := copyPipelineState.record(r)
	assert.Nil(t, sb)
	assert.True(t, errors.Is(err, ErrStateBlock))
	assert.True(t, errors.Is(err, ErrInvalidCall))
	assert.False(t, r.recording, "recording must be closed on failure")
	assert.Equal(t, 1, r.released, "partial block must be released")

	r = newStateRecorder()
	r.recording = true
	_, err = copyPipelineState.record(r)
	assert.ErrorIs(t, err, ErrStateBlock)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Reset", StateReset.String())
	assert.Equal(t, "Active", StateActive.String())
}
