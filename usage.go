package shim

import "strings"

// Usage is a bitmask describing how a resource may be used by the pipeline.
// The same vocabulary is shared by every native API generation; each
// generation maps it onto its own flags through a fixed table.
type Usage uint32

// Usage flags.
const (
	// UsageRenderTarget allows the resource to be bound as a color target.
	UsageRenderTarget Usage = 1 << iota

	// UsageDepthStencil allows the resource to be bound as a depth-stencil target.
	UsageDepthStencil

	// UsageShaderResource allows the resource to be sampled from shaders.
	UsageShaderResource

	// UsageUnorderedAccess requests random-access writes from shaders.
	// Neither native generation covered here supports it.
	UsageUnorderedAccess

	// UsageIndexBuffer allows the resource to be bound as an index buffer.
	UsageIndexBuffer

	// UsageVertexBuffer allows the resource to be bound as a vertex buffer.
	UsageVertexBuffer

	// UsageConstantBuffer allows the resource to be bound as a constant buffer.
	UsageConstantBuffer

	// UsageCopySource allows the resource to be the source of a copy.
	UsageCopySource

	// UsageCopyDest allows the resource to be the destination of a copy.
	UsageCopyDest

	// UsageResolveSource allows the resource to be resolved from (multisampled).
	UsageResolveSource

	// UsageResolveDest allows the resource to be the target of a resolve.
	UsageResolveDest
)

// UsageNone is the empty usage set.
const UsageNone Usage = 0

var usageNames = [...]string{
	"RenderTarget",
	"DepthStencil",
	"ShaderResource",
	"UnorderedAccess",
	"IndexBuffer",
	"VertexBuffer",
	"ConstantBuffer",
	"CopySource",
	"CopyDest",
	"ResolveSource",
	"ResolveDest",
}

// Has reports whether all bits of flags are set in u.
func (u Usage) Has(flags Usage) bool {
	return u&flags == flags
}

// Any reports whether at least one bit of flags is set in u.
func (u Usage) Any(flags Usage) bool {
	return u&flags != 0
}

// String returns the set flags joined with '|'.
func (u Usage) String() string {
	if u == UsageNone {
		return "None"
	}
	var b strings.Builder
	for i, name := range usageNames {
		if u&(1<<i) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(name)
	}
	if rest := u &^ (1<<len(usageNames) - 1); rest != 0 {
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString("Unknown")
	}
	return b.String()
}
