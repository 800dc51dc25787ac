package keystone

import "context"

// This file generalizes xraph/vessel's named/keyed lookups
// (provide_constructor.go's InjectType/InjectNamed/HasType/HasTypeNamed,
// service_key.go's ServiceKey) onto the TypeKey-addressed Registry: a plain
// Register*/Resolve* call uses the unnamed key for T, while the *Named
// variants disambiguate multiple providers that produce the same T.

// RegisterTransientNamed registers a named, no-dependency transient
// provider for T.
func RegisterTransientNamed[T any](r *Registry, name string, ctor func() (T, error)) {
	registerProvider(r, newTransientProvider(namedKeyFor[T](name), Deps0{}, func(Deps0) (T, error) { return ctor() }))
}

// RegisterSingletonNamed registers a named, no-dependency singleton
// provider for T.
func RegisterSingletonNamed[T any](r *Registry, name string, ctor func() (T, error)) {
	registerProvider(r, newSingletonProvider(namedKeyFor[T](name), Deps0{}, func(Deps0) (T, error) { return ctor() }))
}

// ResolveTransientNamed resolves the named transient provider for T,
// through the same hook-wrapped path an unnamed ResolveTransient uses.
func ResolveTransientNamed[T any](ctx context.Context, r *Registry, name string) (Owned[T], error) {
	return resolveTransientTypedKey[T](ctx, r, namedKeyFor[T](name))
}

// ResolveSingletonNamed resolves the named singleton provider for T,
// constructing it at most once through its cell just like ResolveSingleton.
func ResolveSingletonNamed[T any](ctx context.Context, r *Registry, name string) (Shared[T], error) {
	return resolveSingletonTypedKey[T](ctx, r, namedKeyFor[T](name))
}

// HasType reports whether T has an unnamed provider registered on r or any
// of its ancestors.
func HasType[T any](r *Registry) bool {
	p, _ := findProvider(r, keyFor[T]())

	return p != nil
}

// HasNamed reports whether T has a provider registered under name on r or
// any of its ancestors.
func HasNamed[T any](r *Registry, name string) bool {
	p, _ := findProvider(r, namedKeyFor[T](name))

	return p != nil
}
