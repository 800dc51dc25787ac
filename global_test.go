package keystone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobal_AppliesQueuedRegistrations(t *testing.T) {
	ResetGlobal()
	t.Cleanup(ResetGlobal)

	Register(func(r *Registry) error {
		RegisterSingleton(r, func() (*greeter, error) { return &greeter{greeting: "global"}, nil })

		return nil
	})

	r := Global()
	assert.True(t, HasType[*greeter](r))
	assert.Same(t, r, Global())
}

func TestRegister_AfterGlobalBuiltRunsImmediately(t *testing.T) {
	ResetGlobal()
	t.Cleanup(ResetGlobal)

	r := Global()

	Register(func(r *Registry) error {
		RegisterSingleton(r, func() (*logger, error) { return &logger{}, nil })

		return nil
	})

	assert.True(t, HasType[*logger](r))
}

func TestResetGlobal_RebuildsFromScratch(t *testing.T) {
	ResetGlobal()
	t.Cleanup(ResetGlobal)

	first := Global()
	ResetGlobal()
	second := Global()

	require.NotSame(t, first, second)
}
