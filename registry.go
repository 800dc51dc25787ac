package keystone

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Registry is the provider store and resolution root. A Registry may have
// a parent (created via Child); lookups that miss locally fall back to the
// parent, so a child can selectively override individual registrations
// while sharing everything else. The parent is held weakly (WeakShared) so
// a child never keeps its parent alive and the two lifetimes stay
// independent, matching vessel's scope/container split (scope_impl.go),
// generalized away from request-scoped HTTP semantics.
type Registry struct {
	mu        sync.RWMutex
	providers map[TypeKey]*provider
	groups    map[TypeKey][]*provider

	parent    WeakShared[Registry]
	hasParent bool

	validator *validator
	logger    *zap.Logger
	hooks     hookChain

	lifecycleKeys []TypeKey
}

// New creates an empty, parentless Registry.
func New(opts ...Option) *Registry {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Registry{
		providers: make(map[TypeKey]*provider),
		groups:    make(map[TypeKey][]*provider),
		validator: newValidator(),
		logger:    cfg.logger,
	}
}

// Child creates a new Registry whose lookups fall back to r when a type
// isn't registered locally. r must outlive the child only while the child
// resolves something it doesn't itself provide; the reference back is
// weak, so keeping a child around past its parent's lifetime is safe and
// simply starts failing those fallback lookups.
func (r *Registry) Child(opts ...Option) *Registry {
	child := New(opts...)
	child.parent = NewWeakShared(r)
	child.hasParent = true

	return child
}

type inFlightKeyType struct{}

// withInFlight extends ctx's in-flight singleton set with key. ok is false
// if key is already in the set, meaning the caller is already constructing
// that singleton somewhere up its own call stack.
func withInFlight(ctx context.Context, key TypeKey) (context.Context, bool) {
	existing, _ := ctx.Value(inFlightKeyType{}).(map[TypeKey]bool)
	if existing[key] {
		return ctx, false
	}

	next := make(map[TypeKey]bool, len(existing)+1)
	for k := range existing {
		next[k] = true
	}

	next[key] = true

	return context.WithValue(ctx, inFlightKeyType{}, next), true
}

// findProvider looks up key in r, falling back to ancestors. It returns the
// provider and the Registry that actually owns it (needed so dependency
// materialization and singleton cells resolve against the owning scope's
// providers, not the originating child's).
func findProvider(r *Registry, key TypeKey) (*provider, *Registry) {
	r.mu.RLock()
	p, ok := r.providers[key]
	r.mu.RUnlock()

	if ok {
		return p, r
	}

	if !r.hasParent {
		return nil, nil
	}

	parent, alive := r.parent.Upgrade()
	if !alive {
		return nil, nil
	}

	return findProvider(parent, key)
}

// collectGroup gathers every provider registered under groupKey in r and
// its ancestors, nearest scope first.
func collectGroup(r *Registry, groupKey TypeKey) []*provider {
	r.mu.RLock()
	local := append([]*provider(nil), r.groups[groupKey]...)
	r.mu.RUnlock()

	if !r.hasParent {
		return local
	}

	parent, alive := r.parent.Upgrade()
	if !alive {
		return local
	}

	return append(local, collectGroup(parent, groupKey)...)
}

func registerProvider(r *Registry, p *provider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[p.key]; exists {
		panic(fmt.Sprintf("keystone: type %s is already registered", p.key))
	}

	r.providers[p.key] = p
	r.validator.registerNode(p.key, p.deps)
	r.logger.Debug("registered provider", zap.Stringer("type", p.key), zap.Stringer("lifetime", p.lifetime))
}

func registerGroupMember(r *Registry, groupKey TypeKey, p *provider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.groups[groupKey] = append(r.groups[groupKey], p)
	r.logger.Debug("registered group member", zap.Stringer("group", groupKey))
}

// RegisterTransient registers a no-dependency transient provider for T.
// Panics if T is already registered on r.
func RegisterTransient[T any](r *Registry, ctor func() (T, error)) {
	RegisterTransientWithDeps(r, Deps0{}, func(Deps0) (T, error) { return ctor() })
}

// RegisterTransientWithDeps registers a transient provider for T whose
// constructor consumes the materialized dependency tuple deps.
func RegisterTransientWithDeps[T any, D Descriptor[D]](r *Registry, deps D, ctor func(D) (T, error)) {
	registerProvider(r, newTransientProvider(keyFor[T](), deps, ctor))
}

// RegisterSingleton registers a no-dependency singleton provider for T.
// Panics if T is already registered on r.
func RegisterSingleton[T any](r *Registry, ctor func() (T, error)) {
	RegisterSingletonWithDeps(r, Deps0{}, func(Deps0) (T, error) { return ctor() })
}

// RegisterSingletonWithDeps registers a singleton provider for T whose
// constructor consumes the materialized dependency tuple deps.
func RegisterSingletonWithDeps[T any, D Descriptor[D]](r *Registry, deps D, ctor func(D) (T, error)) {
	registerProvider(r, newSingletonProvider(keyFor[T](), deps, ctor))
}

// RegisterGroup adds ctor as a no-dependency transient member of the named
// value group, contributing its result to every GroupOf[T](group) resolve.
// Unlike RegisterTransient, group membership never panics on repeat calls.
// A group is built up from any number of registrations.
func RegisterGroup[T any](r *Registry, group string, ctor func() (T, error)) {
	RegisterGroupWithDeps(r, group, Deps0{}, func(Deps0) (T, error) { return ctor() })
}

// RegisterGroupWithDeps adds ctor, with dependencies, as a member of the
// named value group.
func RegisterGroupWithDeps[T any, D Descriptor[D]](r *Registry, group string, deps D, ctor func(D) (T, error)) {
	groupKey := TypeKey{typ: typeOf[T](), name: group}
	registerGroupMember(r, groupKey, newTransientProvider(groupKey, deps, ctor))
}

// resolveTransientTyped is the typed entry point TransientDep.materialize
// calls.
func resolveTransientTyped[T any](ctx context.Context, r *Registry) (Owned[T], error) {
	return resolveTransientTypedKey[T](ctx, r, keyFor[T]())
}

// resolveTransientTypedKey is resolveTransientTyped generalized to an
// arbitrary TypeKey, so named resolves (group.go) go through the same
// hook-wrapped path as unnamed ones instead of bypassing it.
func resolveTransientTypedKey[T any](ctx context.Context, r *Registry, key TypeKey) (Owned[T], error) {
	if err := r.hooks.beforeResolve(ctx, key); err != nil {
		return Owned[T]{}, err
	}

	v, err := resolveTransientValue(ctx, r, key)

	r.hooks.afterResolve(ctx, key, v, err)

	if err != nil {
		return Owned[T]{}, err
	}

	typed, ok := v.(T)
	if !ok {
		return Owned[T]{}, errTypeMismatch(key, v)
	}

	return newOwned(typed), nil
}

func resolveTransientValue(ctx context.Context, r *Registry, key TypeKey) (any, error) {
	p, owner := findProvider(r, key)
	if p == nil {
		return nil, errTypeMissing(key)
	}

	if p.lifetime != Transient {
		return nil, errTypeMismatch(key, nil)
	}

	return p.build(ctx, owner)
}

// resolveSingletonTyped is the typed entry point SingletonDep.materialize
// calls.
func resolveSingletonTyped[T any](ctx context.Context, r *Registry) (Shared[T], error) {
	return resolveSingletonTypedKey[T](ctx, r, keyFor[T]())
}

// resolveSingletonTypedKey is resolveSingletonTyped generalized to an
// arbitrary TypeKey, shared with group.go's named resolve path.
func resolveSingletonTypedKey[T any](ctx context.Context, r *Registry, key TypeKey) (Shared[T], error) {
	if err := r.hooks.beforeResolve(ctx, key); err != nil {
		return Shared[T]{}, err
	}

	box, err := resolveSingletonValue(ctx, r, key)

	r.hooks.afterResolve(ctx, key, box, err)

	if err != nil {
		return Shared[T]{}, err
	}

	typed, ok := box.(*T)
	if !ok {
		return Shared[T]{}, errTypeMismatch(key, box)
	}

	return sharedFromBox(typed), nil
}

func resolveSingletonValue(ctx context.Context, r *Registry, key TypeKey) (any, error) {
	p, owner := findProvider(r, key)
	if p == nil {
		return nil, errTypeMissing(key)
	}

	if p.lifetime != Singleton {
		return nil, errTypeMismatch(key, nil)
	}

	nextCtx, ok := withInFlight(ctx, key)
	if !ok {
		return nil, errReentrantSingleton(key)
	}

	return p.cell.getOrInit(func() (any, error) {
		return p.build(nextCtx, owner)
	})
}

// resolveGroupTyped is the typed entry point GroupDep.materialize calls. A
// missing or empty group resolves to an empty, non-error slice: there is
// nothing to validate statically about a value group, so there's nothing
// to fail.
func resolveGroupTyped[T any](ctx context.Context, r *Registry, group string) ([]T, error) {
	groupKey := TypeKey{typ: typeOf[T](), name: group}

	members := collectGroup(r, groupKey)
	out := make([]T, 0, len(members))

	for _, p := range members {
		v, err := p.build(ctx, r)
		if err != nil {
			return nil, err
		}

		typed, ok := v.(T)
		if !ok {
			return nil, errTypeMismatch(groupKey, v)
		}

		out = append(out, typed)
	}

	return out, nil
}

// ResolveTransient resolves T as a transient, returning a fresh value built
// against r (and, for any dependency it declares, r's full ancestor chain).
func ResolveTransient[T any](ctx context.Context, r *Registry) (Owned[T], error) {
	return resolveTransientTyped[T](ctx, r)
}

// ResolveSingleton resolves T as a singleton, constructing it on first use
// and returning the same Shared handle thereafter.
func ResolveSingleton[T any](ctx context.Context, r *Registry) (Shared[T], error) {
	return resolveSingletonTyped[T](ctx, r)
}

// ResolveGroup resolves every member of the named value group whose
// produced type is T.
func ResolveGroup[T any](ctx context.Context, r *Registry, group string) ([]T, error) {
	return resolveGroupTyped[T](ctx, r, group)
}

// MustResolveTransient is ResolveTransient, panicking on error. Intended
// for program wiring at startup, not for request-time resolution.
func MustResolveTransient[T any](ctx context.Context, r *Registry) Owned[T] {
	v, err := ResolveTransient[T](ctx, r)
	if err != nil {
		panic(err)
	}

	return v
}

// MustResolveSingleton is ResolveSingleton, panicking on error.
func MustResolveSingleton[T any](ctx context.Context, r *Registry) Shared[T] {
	v, err := ResolveSingleton[T](ctx, r)
	if err != nil {
		panic(err)
	}

	return v
}

// ValidateAll reports the coarse validity of r's dependency graph: nil, or
// one of ErrCycle / ErrMissingDependencies.
func (r *Registry) ValidateAll() error {
	full := r.validator.validateAllFull()
	if full == nil {
		return nil
	}

	return full.underlying
}

// ValidateAllFull reports full diagnostics for r's dependency graph: every
// missing edge, or a witness node on a detected cycle.
func (r *Registry) ValidateAllFull() *FullValidationError {
	return r.validator.validateAllFull()
}

// Validate reports whether T's own transitive dependency subgraph is
// registered and cycle-free.
func Validate[T any](r *Registry) error {
	return r.validator.validateOne(keyFor[T]())
}

// topoSort returns every provider key reachable from r (including
// ancestors) in dependency-first order, for Start/Stop to restrict and
// filter against the caller's lifecycle set.
func (r *Registry) topoSort() ([]TypeKey, error) {
	visited := make(map[TypeKey]int)
	order := make([]TypeKey, 0)

	var visit func(reg *Registry, key TypeKey) error
	visit = func(reg *Registry, key TypeKey) error {
		switch visited[key] {
		case 2:
			return nil
		case 1:
			return ErrCycle
		}

		visited[key] = 1

		if p, owner := findProvider(reg, key); p != nil {
			for _, d := range p.deps {
				if d.kind == depKindGroup {
					continue
				}

				if err := visit(owner, d.key); err != nil {
					return err
				}
			}
		}

		visited[key] = 2
		order = append(order, key)

		return nil
	}

	r.mu.RLock()
	keys := make([]TypeKey, 0, len(r.providers))
	for k := range r.providers {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	for _, k := range keys {
		if err := visit(r, k); err != nil {
			return nil, err
		}
	}

	return order, nil
}
