package ref

import "sync/atomic"

var lastPtr atomic.Uintptr

// allocPtr returns a fresh object identity. Identities are never reused.
func allocPtr() uintptr {
	return 0x10000 + lastPtr.Add(1)*0x40
}

// object is the reference-counted base of every native object.
type object struct {
	refs  uint32
	ptr   uintptr
	final func()
}

func (o *object) init(final func()) {
	o.refs = 1
	o.ptr = allocPtr()
	o.final = final
}

// AddRef adds a reference and returns the new count.
func (o *object) AddRef() uint32 {
	o.refs++
	return o.refs
}

// Release drops a reference and returns the new count. The object is
// destroyed when the count reaches zero.
func (o *object) Release() uint32 {
	if o.refs == 0 {
		panic("ref: release of a destroyed object")
	}
	o.refs--
	if o.refs == 0 && o.final != nil {
		o.final()
	}
	return o.refs
}

// Ptr returns the object identity.
func (o *object) Ptr() uintptr { return o.ptr }

// RefCount returns the current reference count.
func (o *object) RefCount() uint32 { return o.refs }
