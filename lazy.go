package keystone

import (
	"context"
	"fmt"
	"sync"
)

// Lazy wraps a singleton dependency that is resolved from a Registry on
// first access rather than eagerly, adapted from vessel's lazy.go
// Lazy[T] (itself resolving by name against a di.Container) onto a
// TypeKey-addressed Registry. Useful for breaking an apparent circular
// dependency: two singletons that each only need the other lazily, not at
// construction time, can hold a Lazy[T] of each other instead of a direct
// SingletonDep[T] and the validator never sees an edge between them.
type Lazy[T any] struct {
	registry *Registry
	once     sync.Once
	value    Shared[T]
	err      error
}

// NewLazy creates a Lazy handle for T, bound to registry.
func NewLazy[T any](registry *Registry) *Lazy[T] {
	return &Lazy[T]{registry: registry}
}

// Get resolves T as a singleton the first time it's called; later calls
// return the cached result (value or error) without touching the
// registry again.
func (l *Lazy[T]) Get(ctx context.Context) (Shared[T], error) {
	l.once.Do(func() {
		l.value, l.err = ResolveSingleton[T](ctx, l.registry)
	})

	return l.value, l.err
}

// MustGet is Get, panicking on error.
func (l *Lazy[T]) MustGet(ctx context.Context) Shared[T] {
	v, err := l.Get(ctx)
	if err != nil {
		panic(fmt.Sprintf("keystone: lazy dependency failed: %v", err))
	}

	return v
}

// OptionalLazy is Lazy, except resolving a type that was never registered
// yields (zero, false) instead of an error.
type OptionalLazy[T any] struct {
	registry *Registry
	once     sync.Once
	value    Shared[T]
	found    bool
	err      error
}

// NewOptionalLazy creates an OptionalLazy handle for T, bound to registry.
func NewOptionalLazy[T any](registry *Registry) *OptionalLazy[T] {
	return &OptionalLazy[T]{registry: registry}
}

// Get resolves T as a singleton on first call, short-circuiting to
// (zero, false, nil) if T has no provider.
func (l *OptionalLazy[T]) Get(ctx context.Context) (Shared[T], bool, error) {
	l.once.Do(func() {
		if !HasType[T](l.registry) {
			return
		}

		l.value, l.err = ResolveSingleton[T](ctx, l.registry)
		l.found = l.err == nil
	})

	return l.value, l.found, l.err
}

// Factory wraps a transient dependency, constructing a fresh instance on
// every call to Provide instead of resolving once. Adapted from vessel's
// lazy.go Provider[T], renamed to avoid colliding with this package's own
// provider record type.
type Factory[T any] struct {
	registry *Registry
}

// NewFactory creates a Factory for T, bound to registry.
func NewFactory[T any](registry *Registry) *Factory[T] {
	return &Factory[T]{registry: registry}
}

// Provide resolves a fresh T.
func (f *Factory[T]) Provide(ctx context.Context) (Owned[T], error) {
	return ResolveTransient[T](ctx, f.registry)
}

// MustProvide is Provide, panicking on error.
func (f *Factory[T]) MustProvide(ctx context.Context) Owned[T] {
	v, err := f.Provide(ctx)
	if err != nil {
		panic(fmt.Sprintf("keystone: factory provide failed: %v", err))
	}

	return v
}
