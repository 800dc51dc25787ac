package keystone

import "context"

// provider is the type-erased registration stored in a Registry: a tagged
// constructor plus its lifetime policy, grounded in vessel's
// typeRegistration (type_registry.go) and generalized to cover ferrunix's
// Builder::transient / Builder::singleton split.
type provider struct {
	key      TypeKey
	lifetime Lifetime
	deps     []depInfo

	// build runs the constructor (after materializing deps against r) and
	// returns the produced value. For a Transient provider it returns a T;
	// for a Singleton provider it returns a *T so the cell's storage can be
	// shared by every resolver without copying.
	build func(ctx context.Context, r *Registry) (any, error)

	// cell is non-nil only when lifetime == Singleton.
	cell *cell
}

// newTransientProvider builds a provider whose build closure materializes
// deps and invokes ctor fresh on every resolve.
func newTransientProvider[T any, D Descriptor[D]](key TypeKey, deps D, ctor func(D) (T, error)) *provider {
	return &provider{
		key:      key,
		lifetime: Transient,
		deps:     deps.typeIDs(),
		build: func(ctx context.Context, r *Registry) (any, error) {
			materialized, err := deps.materialize(ctx, r)
			if err != nil {
				return nil, err
			}

			v, err := ctor(materialized)
			if err != nil {
				return nil, errCtor(key, err)
			}

			return v, nil
		},
	}
}

// newSingletonProvider builds a provider whose construction is guarded by a
// cell: deps materialize and ctor runs at most once, and build returns a
// *T so every Shared[T] handed out shares the same storage.
func newSingletonProvider[T any, D Descriptor[D]](key TypeKey, deps D, ctor func(D) (T, error)) *provider {
	return &provider{
		key:      key,
		lifetime: Singleton,
		deps:     deps.typeIDs(),
		cell:     newCell(),
		build: func(ctx context.Context, r *Registry) (any, error) {
			materialized, err := deps.materialize(ctx, r)
			if err != nil {
				return nil, err
			}

			v, err := ctor(materialized)
			if err != nil {
				return nil, errCtor(key, err)
			}

			return &v, nil
		},
	}
}
