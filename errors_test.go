package keystone

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveError_WrapsConstructorFailure(t *testing.T) {
	r := New()

	cause := errors.New("db unreachable")
	RegisterTransient(r, func() (*greeter, error) { return nil, cause })

	_, err := ResolveTransient[*greeter](context.Background(), r)
	require.Error(t, err)

	var resolveErr *ResolveError
	require.ErrorAs(t, err, &resolveErr)
	assert.Equal(t, codeCtorFailed, resolveErr.Code)
	assert.True(t, resolveErr.IsCtorErr())
	assert.ErrorIs(t, err, cause)
}

func TestErrTypeMismatch_WrapsImplError(t *testing.T) {
	err := errTypeMismatch(keyFor[*greeter](), 42)

	var resolveErr *ResolveError
	require.ErrorAs(t, err, &resolveErr)
	assert.Equal(t, codeTypeMismatch, resolveErr.Code)

	var implErr *ImplError
	require.ErrorAs(t, err, &implErr)
	assert.Contains(t, implErr.Error(), "descriptor slot type assertion")
}

func TestValidationError_IsMatchesByCode(t *testing.T) {
	cycleCopy := &ValidationError{Code: codeCycle, Message: "different instance, same code"}
	assert.ErrorIs(t, cycleCopy, ErrCycle)
	assert.NotErrorIs(t, cycleCopy, ErrMissingDependencies)
}

func TestFullValidationError_UnwrapsToSentinel(t *testing.T) {
	full := &FullValidationError{HasCycle: true, CycleNode: "x", underlying: ErrCycle}
	assert.ErrorIs(t, full, ErrCycle)
}
