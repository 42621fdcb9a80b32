package d3d9

import "github.com/gogpu/shim"

// formatClass groups formats by how StretchRect treats them.
type formatClass uint8

const (
	classColor formatClass = iota
	classCompressed
	classDepth
	classNull
)

// formatClasses lists every format that is not plain color. Driver behavior
// changes over time; keep this table current instead of adding checks to
// callers.
var formatClasses = map[Format]formatClass{
	FmtDXT1: classCompressed,
	FmtDXT2: classCompressed,
	FmtDXT3: classCompressed,
	FmtDXT4: classCompressed,
	FmtDXT5: classCompressed,

	// Stretching depth-stencil surfaces is limited to surface-to-surface
	// copies of identical size, so it is not offered at all.
	FmtD16Lockable:  classDepth,
	FmtD32:          classDepth,
	FmtD15S1:        classDepth,
	FmtD24S8:        classDepth,
	FmtD24X8:        classDepth,
	FmtD24X4S4:      classDepth,
	FmtD16:          classDepth,
	FmtD32FLockable: classDepth,
	FmtD24FS8:       classDepth,
	FmtD32Lockable:  classDepth,
	FmtS8Lockable:   classDepth,

	// NULL render targets have no memory.
	FmtNull: classNull,
}

func classify(f Format) formatClass {
	if c, ok := formatClasses[f]; ok {
		return c
	}
	return classColor
}

// stretchRule is the copy usage a format class grants to a stretchable
// resource, split by the condition that enables each part.
type stretchRule struct {
	always       shim.Usage
	multisampled shim.Usage
	renderTarget shim.Usage
}

var stretchRules = [...]stretchRule{
	classColor: {
		always:       shim.UsageCopySource,
		multisampled: shim.UsageResolveSource,
		renderTarget: shim.UsageCopyDest | shim.UsageResolveDest,
	},
	classCompressed: {},
	classDepth:      {},
	classNull:       {},
}

// stretchable reports whether StretchRect accepts the resource at all:
// it must live in the default pool and be a surface, or a texture on
// hardware that can stretch from textures.
func stretchable(desc SurfaceDesc, caps Caps) bool {
	if desc.Pool != PoolDefault {
		return false
	}
	switch desc.Type {
	case RTypeSurface:
		return true
	case RTypeTexture:
		return caps.Caps2&DevCaps2CanStretchRectFromTextures != 0
	default:
		return false
	}
}

// stretchUsage returns the copy and resolve usage implied for desc.
func stretchUsage(desc SurfaceDesc, caps Caps) shim.Usage {
	if !stretchable(desc, caps) {
		return shim.UsageNone
	}
	rule := stretchRules[classify(desc.Format)]
	usage := rule.always
	if desc.MultiSampleType >= MultiSample2 {
		usage |= rule.multisampled
	}
	if desc.Usage&UsageRenderTarget != 0 {
		usage |= rule.renderTarget
	}
	return usage
}
