package keystone

// RegisterBatch runs each RegistrationFunc against r in order, stopping at
// the first error. Adapted from xraph/vessel's batch.go RegisterServices,
// generalized from a slice of (name, factory, options) tuples to plain
// closures, since a RegistrationFunc here is already the fully type-safe
// unit of registration (a closure over RegisterTransient[T]/
// RegisterSingletonWithDeps[T, D]/etc.), with nothing left for a
// batch-specific struct to add.
//
// Example:
//
//	err := keystone.RegisterBatch(r,
//	    func(r *keystone.Registry) error { keystone.RegisterSingleton(r, NewDatabase); return nil },
//	    func(r *keystone.Registry) error { keystone.RegisterSingleton(r, NewCache); return nil },
//	)
func RegisterBatch(r *Registry, fns ...RegistrationFunc) error {
	for _, fn := range fns {
		if err := fn(r); err != nil {
			return err
		}
	}

	return nil
}
