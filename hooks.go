package keystone

import "context"

// Hook intercepts resolve operations on a Registry, adapted from
// vessel's Middleware (middleware.go) onto TypeKey-addressed resolves
// instead of named-service ones, and dropped down to the two events that
// make sense for a DI container with no separate start phase of its own.
// Start/Stop already get their own ordering in lifecycle.go.
type Hook interface {
	// BeforeResolve runs before a provider's constructor is invoked.
	// Returning an error aborts the resolve.
	BeforeResolve(ctx context.Context, key TypeKey) error

	// AfterResolve runs after a resolve completes, successfully or not.
	AfterResolve(ctx context.Context, key TypeKey, value any, err error)
}

// hookChain runs every registered Hook in registration order.
type hookChain struct {
	hooks []Hook
}

func (c *hookChain) beforeResolve(ctx context.Context, key TypeKey) error {
	for _, h := range c.hooks {
		if err := h.BeforeResolve(ctx, key); err != nil {
			return err
		}
	}

	return nil
}

func (c *hookChain) afterResolve(ctx context.Context, key TypeKey, value any, err error) {
	for _, h := range c.hooks {
		h.AfterResolve(ctx, key, value, err)
	}
}

// FuncHook adapts plain functions to Hook, mirroring vessel's
// FuncMiddleware convenience wrapper. Either field may be left nil.
type FuncHook struct {
	BeforeResolveFunc func(ctx context.Context, key TypeKey) error
	AfterResolveFunc  func(ctx context.Context, key TypeKey, value any, err error)
}

func (f *FuncHook) BeforeResolve(ctx context.Context, key TypeKey) error {
	if f.BeforeResolveFunc != nil {
		return f.BeforeResolveFunc(ctx, key)
	}

	return nil
}

func (f *FuncHook) AfterResolve(ctx context.Context, key TypeKey, value any, err error) {
	if f.AfterResolveFunc != nil {
		f.AfterResolveFunc(ctx, key, value, err)
	}
}

// Use registers a Hook to run on every subsequent resolve against r.
func (r *Registry) Use(h Hook) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hooks.hooks = append(r.hooks.hooks, h)
}
