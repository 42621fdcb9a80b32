package shim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type traceObserver struct {
	NopObserver
	name  string
	trace *[]string
}

func (o traceObserver) InitDevice(Device) { *o.trace = append(*o.trace, o.name+".init") }

func (o traceObserver) CreateResource(_ Device, _ ResourceType, desc *ResourceDesc) {
	*o.trace = append(*o.trace, o.name+".create")
	desc.Levels++
}

func TestWithObserverIgnoresNil(t *testing.T) {
	o := ApplyOptions(WithObserver(nil))
	assert.Empty(t, o.Observers)
}

func TestObserversFanOutInOrder(t *testing.T) {
	var trace []string
	o := ApplyOptions(
		WithObserver(traceObserver{name: "a", trace: &trace}),
		WithObserver(NopObserver{}),
		WithObserver(traceObserver{name: "b", trace: &trace}),
	)
	assert.Len(t, o.Observers, 3)

	o.Observers.InitDevice(nil)
	desc := NewTexture2DDesc(4, 4, 1, 0, UsageShaderResource)
	o.Observers.CreateResource(nil, ResourceTypeTexture2D, &desc)
	o.Observers.DestroyDevice(nil)

	assert.Equal(t, []string{"a.init", "b.init", "a.create", "b.create"}, trace)
	assert.Equal(t, uint16(3), desc.Levels, "each observer sees the previous rewrite")
}

func TestWithConfigLastWins(t *testing.T) {
	a, b := DefaultConfig(), DefaultConfig()
	a.Backend, b.Backend = "d3d9", "d3d10"
	o := ApplyOptions(WithConfig(a), WithConfig(b))
	assert.Equal(t, "d3d10", o.Config.Backend)
}
