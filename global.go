package keystone

import "sync"

// RegistrationFunc registers providers onto a Registry. Packages that want
// their types available on the global registry without every caller
// wiring them by hand call Register(fn) from an init(), the same
// link-time-collector idea as ferrunix's inventory-based autoregistered(),
// adapted to the idiom Go actually has for it: database/sql's driver
// registry and its many descendants collect into a package-level slice
// under a mutex rather than relying on a linker plugin crate.
type RegistrationFunc func(*Registry) error

var (
	globalMu      sync.Mutex
	globalFuncs   []RegistrationFunc
	globalReg     *Registry
	globalApplied bool
)

// Register queues fn for the global Registry. If Global() has not built it
// yet, fn runs on the next Global() call; otherwise fn runs immediately.
// Queued functions run again after ResetGlobal. Safe to call from init().
func Register(fn RegistrationFunc) {
	globalMu.Lock()
	defer globalMu.Unlock()

	globalFuncs = append(globalFuncs, fn)

	// A registration queued after Global() already built and froze the
	// process-wide Registry needs to run against it immediately, the same
	// autoregistered()-at-any-time guarantee ferrunix documents.
	if globalApplied {
		if err := fn(globalReg); err != nil {
			panic(err)
		}
	}
}

// Global returns the process-wide Registry, constructing it and running
// every RegistrationFunc queued so far on first call. Subsequent calls
// return the same instance.
func Global(opts ...Option) *Registry {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalReg == nil {
		globalReg = New(opts...)
	}

	if !globalApplied {
		globalApplied = true

		for _, fn := range globalFuncs {
			if err := fn(globalReg); err != nil {
				panic(err)
			}
		}
	}

	return globalReg
}

// ResetGlobal discards the process-wide Registry and the applied-state
// flag, so the next Global() call rebuilds from scratch and re-runs every
// queued RegistrationFunc. This is hazardous outside of tests: any handle
// obtained from the previous global Registry (Shared singletons included)
// keeps working on its own, but a new Global() call starts an entirely
// independent provider graph. ferrunix's own reset_global() carries the
// same warning and is marked unsafe for exactly this reason.
func ResetGlobal() {
	globalMu.Lock()
	defer globalMu.Unlock()

	globalReg = nil
	globalApplied = false
}
