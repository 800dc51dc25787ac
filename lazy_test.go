package keystone

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazy_ResolvesOnceOnFirstGet(t *testing.T) {
	r := New()

	calls := 0
	RegisterSingleton(r, func() (*greeter, error) {
		calls++

		return &greeter{greeting: "hi"}, nil
	})

	l := NewLazy[*greeter](r)

	_, err := l.Get(context.Background())
	require.NoError(t, err)

	_, err = l.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
}

func TestOptionalLazy_MissingTypeIsNotAnError(t *testing.T) {
	r := New()

	l := NewOptionalLazy[*greeter](r)

	_, found, err := l.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOptionalLazy_FindsRegisteredType(t *testing.T) {
	r := New()

	RegisterSingleton(r, func() (*greeter, error) { return &greeter{greeting: "hi"}, nil })

	l := NewOptionalLazy[*greeter](r)

	shared, found, err := l.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "hi", shared.Get().greeting)
}

func TestFactory_ProvidesFreshInstances(t *testing.T) {
	r := New()

	RegisterTransient(r, func() (*greeter, error) { return &greeter{greeting: "hi"}, nil })

	f := NewFactory[*greeter](r)

	a, err := f.Provide(context.Background())
	require.NoError(t, err)

	b, err := f.Provide(context.Background())
	require.NoError(t, err)

	assert.NotSame(t, a.Get(), b.Get())
}
