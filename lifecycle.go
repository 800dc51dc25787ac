package keystone

import (
	"context"
	"reflect"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Service is implemented by singleton instances that need explicit
// lifecycle management beyond construction, grounded in vessel's
// di.Service / startService-stopService split (container_impl.go), with
// Start/Stop generalized here to run across the whole registered graph in
// dependency order instead of per-named-service lookup.
type Service interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// HealthChecker is implemented by singleton instances that can report
// their own health once started, mirroring vessel's di.HealthChecker
// used from containerImpl.Health.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// RegisterLifecycle marks key as participating in Start/Stop/Health by
// recording it in r's lifecycle set. A type only needs to be registered
// here if callers want Start/Stop/Health to manage it; a singleton that
// implements Service but is never passed to RegisterLifecycle is still
// constructed lazily on first Resolve, but Start, Stop and Health never
// call it.
func RegisterLifecycle[T any](r *Registry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lifecycleKeys = append(r.lifecycleKeys, keyFor[T]())
}

// unboxSingleton unwraps the *T a singleton provider's build returns into
// the plain T value, so type assertions against Service/HealthChecker see
// the instance itself rather than a pointer-to-it.
func unboxSingleton(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return rv.Elem().Interface()
	}

	return v
}

// Start resolves every lifecycle-registered singleton in dependency order
// and, for each that implements Service, calls Start. On any failure it
// stops whatever already started, in reverse order, before returning the
// original error.
func (r *Registry) Start(ctx context.Context) error {
	r.mu.Lock()
	keys := append([]TypeKey(nil), r.lifecycleKeys...)
	r.mu.Unlock()

	order, err := r.startOrder(keys)
	if err != nil {
		return err
	}

	started := make([]Service, 0, len(order))

	for _, key := range order {
		p, _ := findProvider(r, key)
		if p == nil || p.lifetime != Singleton {
			continue
		}

		v, err := resolveSingletonValue(ctx, r, key)
		if err != nil {
			r.stopAll(ctx, started)

			return err
		}

		instance := unboxSingleton(v)

		if svc, ok := instance.(Service); ok {
			if err := svc.Start(ctx); err != nil {
				r.stopAll(ctx, started)

				return err
			}

			started = append(started, svc)
		}
	}

	return nil
}

// Stop stops every already-constructed lifecycle singleton in reverse
// start order, aggregating every failure with multierr rather than
// stopping at the first one. vessel's scope_impl.go does the same
// "keep tearing down, collect errors" for Disposable cleanup.
func (r *Registry) Stop(ctx context.Context) error {
	r.mu.Lock()
	keys := append([]TypeKey(nil), r.lifecycleKeys...)
	r.mu.Unlock()

	order, err := r.startOrder(keys)
	if err != nil {
		return err
	}

	var errs error

	for i := len(order) - 1; i >= 0; i-- {
		p, _ := findProvider(r, order[i])
		if p == nil || p.lifetime != Singleton || !p.cell.isFilled() {
			continue
		}

		v, err := resolveSingletonValue(ctx, r, order[i])
		if err != nil {
			continue
		}

		if svc, ok := unboxSingleton(v).(Service); ok {
			errs = multierr.Append(errs, svc.Stop(ctx))
		}
	}

	return errs
}

// Health runs HealthChecker.Health on every already-constructed
// lifecycle singleton, aggregating failures.
func (r *Registry) Health(ctx context.Context) error {
	r.mu.Lock()
	keys := append([]TypeKey(nil), r.lifecycleKeys...)
	r.mu.Unlock()

	var errs error

	for _, key := range keys {
		p, _ := findProvider(r, key)
		if p == nil || p.lifetime != Singleton || !p.cell.isFilled() {
			continue
		}

		v, err := resolveSingletonValue(ctx, r, key)
		if err != nil {
			errs = multierr.Append(errs, err)

			continue
		}

		if checker, ok := unboxSingleton(v).(HealthChecker); ok {
			errs = multierr.Append(errs, checker.Health(ctx))
		}
	}

	return errs
}

// startOrder returns the lifecycle key set in dependency-first order
// (dependencies before dependents), so Start/Stop only order the types
// the caller actually asked to manage but still respect the graph.
func (r *Registry) startOrder(keys []TypeKey) ([]TypeKey, error) {
	if err := r.ValidateAll(); err != nil {
		return nil, err
	}

	full, err := r.topoSort()
	if err != nil {
		return nil, err
	}

	want := make(map[TypeKey]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}

	filtered := make([]TypeKey, 0, len(keys))

	for _, k := range full {
		if want[k] {
			filtered = append(filtered, k)
		}
	}

	return filtered, nil
}

func (r *Registry) stopAll(ctx context.Context, started []Service) {
	for i := len(started) - 1; i >= 0; i-- {
		if err := started[i].Stop(ctx); err != nil {
			r.logger.Warn("error stopping service during rollback", zap.Error(err))
		}
	}
}
