package d3d9

// RenderStateType is a D3DRENDERSTATETYPE value.
type RenderStateType uint32

// Render states.
const (
	RSZEnable           RenderStateType = 7
	RSFillMode          RenderStateType = 8
	RSZWriteEnable      RenderStateType = 14
	RSAlphaTestEnable   RenderStateType = 15
	RSSrcBlend          RenderStateType = 19
	RSDestBlend         RenderStateType = 20
	RSCullMode          RenderStateType = 22
	RSAlphaBlendEnable  RenderStateType = 27
	RSFogEnable         RenderStateType = 28
	RSStencilEnable     RenderStateType = 52
	RSClipping          RenderStateType = 136
	RSLighting          RenderStateType = 137
	RSColorWriteEnable  RenderStateType = 168
	RSBlendOp           RenderStateType = 171
	RSScissorTestEnable RenderStateType = 174
	RSSRGBWriteEnable   RenderStateType = 194
	RSBlendOpAlpha      RenderStateType = 209
)

// Render state values.
const (
	FillSolid = 3

	BlendZero = 1
	BlendOne  = 2

	CullNone = 1
	CullCW   = 2
	CullCCW  = 3

	BlendOpAdd = 1

	ColorWriteRed   = 0x1
	ColorWriteGreen = 0x2
	ColorWriteBlue  = 0x4
	ColorWriteAlpha = 0x8
	ColorWriteAll   = ColorWriteRed | ColorWriteGreen | ColorWriteBlue | ColorWriteAlpha
)

// TextureStageStateType is a D3DTEXTURESTAGESTATETYPE value.
type TextureStageStateType uint32

// Texture stage states.
const (
	TSSColorOp               TextureStageStateType = 1
	TSSColorArg1             TextureStageStateType = 2
	TSSColorArg2             TextureStageStateType = 3
	TSSAlphaOp               TextureStageStateType = 4
	TSSAlphaArg1             TextureStageStateType = 5
	TSSAlphaArg2             TextureStageStateType = 6
	TSSTexCoordIndex         TextureStageStateType = 11
	TSSTextureTransformFlags TextureStageStateType = 24
)

// Texture stage values.
const (
	TOPDisable    = 1
	TOPSelectArg1 = 2
	TOPModulate   = 4

	TADiffuse = 0
	TACurrent = 1
	TATexture = 2

	TTFFDisable = 0
)

// SamplerStateType is a D3DSAMPLERSTATETYPE value.
type SamplerStateType uint32

// Sampler states.
const (
	SampAddressU      SamplerStateType = 1
	SampAddressV      SamplerStateType = 2
	SampAddressW      SamplerStateType = 3
	SampMagFilter     SamplerStateType = 5
	SampMinFilter     SamplerStateType = 6
	SampMipFilter     SamplerStateType = 7
	SampMipMapLODBias SamplerStateType = 8
	SampMaxMipLevel   SamplerStateType = 9
	SampSRGBTexture   SamplerStateType = 11
)

// Texture addressing modes.
const (
	TAddressWrap   = 1
	TAddressMirror = 2
	TAddressClamp  = 3
)
