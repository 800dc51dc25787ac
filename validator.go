package keystone

import "sync"

// validator is the dependency-graph checker attached to every Registry. It
// is grounded in ferrunix-core's DependencyValidator (cycle_detection.rs):
// each registered type contributes a visitor closure that, when run, walks
// its declared dependency edges and either follows an already-visited node,
// recurses into that dependency's own visitor, or, if no visitor is
// registered for it, records the edge in missing. The computed verdict is
// memoised and invalidated on every successful registration.
type validator struct {
	mu sync.Mutex

	// visitors holds one closure per registered (non-group) type. Visiting a
	// node walks edges instead of precomputing them so a type's visitor can
	// be added before or after the types it depends on.
	visitors map[TypeKey]func(ctx *visitCtx)

	// names lets diagnostics print something better than a reflect.Type.
	names map[TypeKey]string

	// cached holds the last computed full verdict (nil for a valid graph);
	// valid is false whenever a registration has happened since it was
	// computed.
	cached *FullValidationError
	valid  bool
}

// visitCtx accumulates state across one validate() pass: which nodes have
// been visited (to avoid repeat work and to detect the grey/black
// distinction cycles need), the current grey path (for cycle witness
// extraction) and the missing-dependency edges discovered along the way.
// cycle is the grey path plus the node that closed it; that last node is
// the one guaranteed to lie on the cycle.
type visitCtx struct {
	visited map[TypeKey]nodeColor
	path    []TypeKey
	missing []MissingEdge
	cycle   []TypeKey
}

type nodeColor int

const (
	colorWhite nodeColor = iota
	colorGrey
	colorBlack
)

func newValidator() *validator {
	return &validator{
		visitors: make(map[TypeKey]func(ctx *visitCtx)),
		names:    make(map[TypeKey]string),
	}
}

// registerNode adds (or replaces) the visitor for key given its direct
// dependency edges, and invalidates the cached verdict.
func (v *validator) registerNode(key TypeKey, deps []depInfo) {
	v.mu.Lock()
	defer v.mu.Unlock()

	edges := make([]TypeKey, 0, len(deps))
	for _, d := range deps {
		// GroupDep edges are deliberately excluded: group membership is
		// dynamic and an empty group is always valid, so it can't
		// contribute to a missing-dependency or cycle verdict.
		if d.kind == depKindGroup {
			continue
		}

		edges = append(edges, d.key)
	}

	v.visitors[key] = func(ctx *visitCtx) { v.visit(ctx, key, edges) }
	v.names[key] = key.String()
	v.valid = false
}

// visit implements one node's traversal: white means unseen (recurse into
// it), grey means it's an ancestor on the current path (cycle found), black
// means it was already fully explored (nothing to do).
func (v *validator) visit(ctx *visitCtx, key TypeKey, edges []TypeKey) {
	switch ctx.visited[key] {
	case colorBlack:
		return
	case colorGrey:
		ctx.cycle = append(append([]TypeKey{}, ctx.path...), key)

		return
	}

	ctx.visited[key] = colorGrey
	ctx.path = append(ctx.path, key)

	for _, dep := range edges {
		if len(ctx.cycle) > 0 {
			break
		}

		visitor, ok := v.visitors[dep]
		if !ok {
			ctx.missing = append(ctx.missing, MissingEdge{Owner: key.String(), Missing: dep.String()})

			continue
		}

		visitor(ctx)
	}

	ctx.path = ctx.path[:len(ctx.path)-1]
	ctx.visited[key] = colorBlack
}

// runAll executes every registered visitor and returns the accumulated
// diagnostics, without consulting or updating the cache.
func (v *validator) runAll() *visitCtx {
	ctx := &visitCtx{visited: make(map[TypeKey]nodeColor)}

	for key, visitor := range v.visitors {
		if ctx.visited[key] != colorWhite {
			continue
		}

		visitor(ctx)
	}

	return ctx
}

// validateAllFull runs the full check, memoising the verdict until the next
// registration. A nil return means the graph is valid.
func (v *validator) validateAllFull() *FullValidationError {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.valid {
		return v.cached
	}

	ctx := v.runAll()

	var result *FullValidationError

	switch {
	case len(ctx.cycle) > 0:
		result = &FullValidationError{
			HasCycle:   true,
			CycleNode:  ctx.cycle[len(ctx.cycle)-1].String(),
			underlying: ErrCycle,
		}
	case len(ctx.missing) > 0:
		result = &FullValidationError{
			Missing:    ctx.missing,
			underlying: ErrMissingDependencies,
		}
	}

	v.cached = result
	v.valid = true

	return result
}

// validateOne reports whether a single type's transitive dependencies are
// all registered and cycle-free, without exposing the rest of the graph's
// diagnostics.
func (v *validator) validateOne(key TypeKey) error {
	v.mu.Lock()
	visitor, ok := v.visitors[key]
	v.mu.Unlock()

	if !ok {
		return errTypeMissing(key)
	}

	ctx := &visitCtx{visited: make(map[TypeKey]nodeColor)}
	visitor(ctx)

	switch {
	case len(ctx.cycle) > 0:
		return ErrCycle
	case len(ctx.missing) > 0:
		return ErrMissingDependencies
	default:
		return nil
	}
}
