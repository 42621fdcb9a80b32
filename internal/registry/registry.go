// Package registry tracks which native object identities are live.
//
// A Set answers "is this handle one we created" in constant time. It keeps
// the native interface value next to the identity so that a handle can be
// resolved back to its object, but it never acquires or releases native
// references: the native reference count alone governs object lifetime.
package registry

// Set is an identity set of native objects keyed by their address.
//
// A Set belongs to one device and is only used from the thread owning the
// device context, so it has no internal locking. Guard it externally if
// that contract cannot be upheld.
type Set[T any] struct {
	objects map[uint64]T
}

// New returns an empty set.
func New[T any]() *Set[T] {
	return &Set[T]{objects: make(map[uint64]T)}
}

// Register records obj under identity h.
// Registering the zero identity has no effect.
func (s *Set[T]) Register(h uint64, obj T) {
	if h == 0 {
		return
	}
	s.objects[h] = obj
}

// Unregister forgets identity h.
func (s *Set[T]) Unregister(h uint64) {
	delete(s.objects, h)
}

// Has reports whether h is registered. The zero identity is never registered.
func (s *Set[T]) Has(h uint64) bool {
	if h == 0 {
		return false
	}
	_, ok := s.objects[h]
	return ok
}

// Lookup returns the object registered under h.
func (s *Set[T]) Lookup(h uint64) (T, bool) {
	if h == 0 {
		var zero T
		return zero, false
	}
	obj, ok := s.objects[h]
	return obj, ok
}

// Len returns the number of registered identities.
func (s *Set[T]) Len() int {
	return len(s.objects)
}
