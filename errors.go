package keystone

import (
	"errors"
	"fmt"
)

// Error codes, named the way xraph/vessel's errors.go names its CodeXxx
// constants, kept here as plain strings since vessel's own go-utils/errs
// structured-error package isn't a fetchable dependency.
const (
	codeTypeMissing        = "TYPE_MISSING"
	codeCtorFailed         = "CTOR_FAILED"
	codeTypeMismatch       = "TYPE_MISMATCH"
	codeCycle              = "CYCLE_DETECTED"
	codeMissingDeps        = "MISSING_DEPENDENCIES"
	codeReentrantSingleton = "REENTRANT_SINGLETON"
)

// ResolveError is returned by Registry resolve operations. It always carries
// a stable Code for programmatic matching in addition to a human-readable
// message, mirroring the shape of vessel's *errs.Error.
type ResolveError struct {
	Code    string
	Message string
	Type    string
	Cause   error
}

func (e *ResolveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("keystone: %s: %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("keystone: %s: %s", e.Code, e.Message)
}

func (e *ResolveError) Unwrap() error {
	return e.Cause
}

// IsCtorErr reports whether err is a constructor-originated failure, i.e. the
// library did not interfere with it and it should surface unchanged.
func (e *ResolveError) IsCtorErr() bool {
	return e != nil && e.Code == codeCtorFailed
}

// errTypeMissing builds a ResolveError for an unregistered TypeKey.
func errTypeMissing(key TypeKey) error {
	return &ResolveError{
		Code:    codeTypeMissing,
		Message: fmt.Sprintf("no provider registered for %s", key),
		Type:    key.String(),
	}
}

// errCtor wraps a user constructor failure.
func errCtor(key TypeKey, cause error) error {
	return &ResolveError{
		Code:    codeCtorFailed,
		Message: fmt.Sprintf("constructor for %s returned an error", key),
		Type:    key.String(),
		Cause:   cause,
	}
}

// errTypeMismatch signals an implementation bug: a downcast failed.
func errTypeMismatch(key TypeKey, got any) error {
	return &ResolveError{
		Code:    codeTypeMismatch,
		Message: fmt.Sprintf("resolved value for %s has unexpected type %T (implementation bug)", key, got),
		Type:    key.String(),
		Cause:   &ImplError{Invariant: "descriptor slot type assertion"},
	}
}

// ImplError marks a failure that should be impossible if the library itself
// is correct, as opposed to a caller mistake (missing registration) or a
// constructor failure. Seeing one escape to a caller means an invariant the
// library is supposed to maintain internally was violated.
type ImplError struct {
	Invariant string
}

func (e *ImplError) Error() string {
	return fmt.Sprintf("keystone: internal invariant violated: %s", e.Invariant)
}

// errReentrantSingleton signals a singleton constructor that tried to
// resolve itself, which the validator should have already ruled out.
func errReentrantSingleton(key TypeKey) error {
	return &ResolveError{
		Code:    codeReentrantSingleton,
		Message: fmt.Sprintf("singleton %s requested while its own constructor was still running", key),
		Type:    key.String(),
	}
}

// ValidationError is the coarse validation failure: a cycle or missing
// dependencies were detected. Use errors.Is against ErrCycle / ErrMissingDependencies
// to discriminate, or call ValidateAllFull for full diagnostics.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("keystone: %s: %s", e.Code, e.Message)
}

// ErrCycle is the sentinel identifying a cycle ValidationError.
var ErrCycle = &ValidationError{Code: codeCycle, Message: "dependency graph contains a cycle"}

// ErrMissingDependencies is the sentinel identifying a missing-dependency
// ValidationError.
var ErrMissingDependencies = &ValidationError{Code: codeMissingDeps, Message: "one or more dependencies are not registered"}

// Is implements the errors.Is matching protocol by code, so copies built for
// a specific registry still compare equal to the package sentinels.
func (e *ValidationError) Is(target error) bool {
	var ve *ValidationError
	if errors.As(target, &ve) {
		return ve.Code == e.Code
	}

	return false
}

// MissingEdge names one dependency a registered type is missing.
type MissingEdge struct {
	Owner   string
	Missing string
}

// FullValidationError carries rich diagnostics: either the name of one node
// on a detected cycle, or every missing-dependency owner and its missing
// edges. A cycle takes precedence; its missing edges are then not reported.
// It reports a single witness node rather than enumerating every cycle in
// the graph; see DESIGN.md for why.
type FullValidationError struct {
	Missing    []MissingEdge
	CycleNode  string
	HasCycle   bool
	underlying *ValidationError
}

func (e *FullValidationError) Error() string {
	if e.HasCycle {
		return fmt.Sprintf("keystone: dependency graph has a cycle involving %q", e.CycleNode)
	}

	return fmt.Sprintf("keystone: %d type(s) have missing dependencies: %v", len(e.Missing), e.Missing)
}

func (e *FullValidationError) Unwrap() error {
	return e.underlying
}
