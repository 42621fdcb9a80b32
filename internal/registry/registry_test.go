package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type object struct{ name string }

func TestSetRegister(t *testing.T) {
	s := New[*object]()
	p := &object{name: "texture"}
	s.Register(0x1000, p)

	assert.True(t, s.Has(0x1000))
	got, ok := s.Lookup(0x1000)
	assert.True(t, ok)
	assert.Same(t, p, got)
	assert.Equal(t, 1, s.Len())
}

func TestSetZeroNeverRegistered(t *testing.T) {
	s := New[*object]()
	s.Register(0, &object{})
	s.Register(0x2000, &object{})

	assert.False(t, s.Has(0))
	_, ok := s.Lookup(0)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestSetUnknownAndUnregistered(t *testing.T) {
	s := New[*object]()
	assert.False(t, s.Has(0xdead0))

	s.Register(0x3000, &object{})
	s.Unregister(0x3000)
	assert.False(t, s.Has(0x3000))
	s.Unregister(0x4000) // no-op
	assert.Zero(t, s.Len())
}
