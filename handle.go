package keystone

import "weak"

// Owned wraps a transient resolve result. It is a thin, movable box: copying
// an Owned value copies the handle, not the underlying construction. Every
// resolve of a transient produces a fresh, independent Owned[T].
type Owned[T any] struct {
	value T
}

// newOwned wraps a freshly constructed value.
func newOwned[T any](v T) Owned[T] {
	return Owned[T]{value: v}
}

// Get returns the wrapped value.
func (o Owned[T]) Get() T {
	return o.value
}

// Shared wraps a singleton resolve result. Every resolver that asks for the
// same singleton type receives a Shared value pointing at the same
// underlying storage; cloning a Shared (passing it by value) is cheap and
// does not duplicate the singleton.
type Shared[T any] struct {
	box *T
}

// newShared boxes v in a fresh *T; copies of the returned Shared share that
// *T. Singleton resolves use sharedFromBox instead.
func newShared[T any](v T) Shared[T] {
	return Shared[T]{box: &v}
}

// sharedFromBox wraps an already-boxed pointer, so every resolve of the
// same singleton cell produces a Shared handle pointing at the exact same
// storage rather than a fresh copy.
func sharedFromBox[T any](box *T) Shared[T] {
	return Shared[T]{box: box}
}

// Get returns the shared value.
func (s Shared[T]) Get() T {
	return *s.box
}

// Equal reports whether two Shared handles point at the same underlying
// singleton instance. Used to assert "construct-once, share-after" identity.
func (s Shared[T]) Equal(other Shared[T]) bool {
	return s.box == other.box
}

// WeakShared is a non-owning reference to a *T, used for child-registry
// back-references to a parent so that parent/child lifetimes stay
// independent and never form a strong reference cycle.
type WeakShared[T any] struct {
	ptr weak.Pointer[T]
}

// NewWeakShared creates a weak reference to a strongly-owned value.
func NewWeakShared[T any](strong *T) WeakShared[T] {
	return WeakShared[T]{ptr: weak.Make(strong)}
}

// Upgrade attempts to obtain a strong pointer. It fails (ok == false) once
// the referent has been garbage collected.
func (w WeakShared[T]) Upgrade() (*T, bool) {
	strong := w.ptr.Value()

	return strong, strong != nil
}
