package keystone

// ProviderInfo is diagnostic information about one registered provider,
// returned by Inspect/Query. It mirrors the shape of vessel's ServiceInfo
// (container_impl.go's Inspect), generalized from a named-service
// registry to a TypeKey-addressed one.
type ProviderInfo struct {
	Type     string
	Name     string
	Lifetime Lifetime
	Started  bool
	Deps     []string
}

// Inspect returns diagnostic information about the provider registered for
// key, or the zero ProviderInfo if nothing is registered.
func (r *Registry) Inspect(key TypeKey) ProviderInfo {
	p, _ := findProvider(r, key)
	if p == nil {
		return ProviderInfo{}
	}

	return providerInfo(p)
}

func providerInfo(p *provider) ProviderInfo {
	deps := make([]string, 0, len(p.deps))
	for _, d := range p.deps {
		deps = append(deps, d.key.String())
	}

	started := p.lifetime == Singleton && p.cell.isFilled()

	return ProviderInfo{
		Type:     p.key.String(),
		Name:     p.key.Name(),
		Lifetime: p.lifetime,
		Started:  started,
		Deps:     deps,
	}
}

// Providers returns diagnostic information for every provider registered
// directly on r. Ancestors are not included.
func (r *Registry) Providers() []ProviderInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ProviderInfo, 0, len(r.providers))
	for _, p := range r.providers {
		out = append(out, providerInfo(p))
	}

	return out
}

// ProviderQuery narrows Query to providers matching every non-zero field.
type ProviderQuery struct {
	Lifetime *Lifetime
	Started  *bool
}

// Query returns diagnostic info for every provider on r matching q.
func Query(r *Registry, q ProviderQuery) []ProviderInfo {
	var results []ProviderInfo

	for _, info := range r.Providers() {
		if q.Lifetime != nil && info.Lifetime != *q.Lifetime {
			continue
		}

		if q.Started != nil && info.Started != *q.Started {
			continue
		}

		results = append(results, info)
	}

	return results
}

// FindByLifetime returns every directly-registered provider with the given
// lifetime.
func FindByLifetime(r *Registry, lifetime Lifetime) []ProviderInfo {
	return Query(r, ProviderQuery{Lifetime: &lifetime})
}

// FindStarted returns every directly-registered singleton that has already
// been constructed.
func FindStarted(r *Registry) []ProviderInfo {
	started := true

	return Query(r, ProviderQuery{Started: &started})
}

// FindNotStarted returns every directly-registered provider that is not an
// already-constructed singleton: unconstructed singletons and all
// transients.
func FindNotStarted(r *Registry) []ProviderInfo {
	started := false

	return Query(r, ProviderQuery{Started: &started})
}

// FindByGroup returns the TypeKeys of every member registered (directly on
// r, not its ancestors) under the named group for produced type T.
func FindByGroup[T any](r *Registry, group string) []TypeKey {
	groupKey := TypeKey{typ: typeOf[T](), name: group}

	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.groups[groupKey]
	out := make([]TypeKey, 0, len(members))

	for _, p := range members {
		out = append(out, p.key)
	}

	return out
}
