package keystone

import "sync"

type cellState int

const (
	cellEmpty cellState = iota
	cellInitializing
	cellFilled
)

// cell is a type-erased singleton storage slot with exactly-once
// construction: the first resolver to find the cell empty runs the
// constructor, every other resolver blocks on a condition variable until
// it finishes. A failed constructor resets the cell back to empty rather
// than poisoning it, so a later resolve can retry. ferrunix's registry.rs
// never caches a constructor error either.
type cell struct {
	mu    sync.Mutex
	cond  *sync.Cond
	state cellState
	value any
}

func newCell() *cell {
	c := &cell{}
	c.cond = sync.NewCond(&c.mu)

	return c
}

// isFilled reports whether the cell has already completed construction.
func (c *cell) isFilled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state == cellFilled
}

// getOrInit returns the cell's value, invoking build to construct it the
// first time. Concurrent callers block until construction finishes.
// Reentrant construction (a constructor that transitively asks for its own
// singleton) is rejected before getOrInit is ever called, by the in-flight
// set carried on the resolve context; see withInFlight in registry.go.
func (c *cell) getOrInit(build func() (any, error)) (any, error) {
	c.mu.Lock()
	for {
		switch c.state {
		case cellFilled:
			v := c.value
			c.mu.Unlock()

			return v, nil

		case cellInitializing:
			c.cond.Wait()

		case cellEmpty:
			c.state = cellInitializing
			c.mu.Unlock()

			v, err := build()

			c.mu.Lock()
			if err != nil {
				c.state = cellEmpty
				c.cond.Broadcast()
				c.mu.Unlock()

				return nil, err
			}

			c.value = v
			c.state = cellFilled
			c.cond.Broadcast()
			c.mu.Unlock()

			return v, nil
		}
	}
}
