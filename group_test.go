package keystone

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedRegistration_Disambiguates(t *testing.T) {
	r := New()

	RegisterTransientNamed(r, "primary", func() (*greeter, error) { return &greeter{greeting: "p"}, nil })
	RegisterTransientNamed(r, "secondary", func() (*greeter, error) { return &greeter{greeting: "s"}, nil })

	primary, err := ResolveTransientNamed[*greeter](context.Background(), r, "primary")
	require.NoError(t, err)
	assert.Equal(t, "p", primary.Get().greeting)

	secondary, err := ResolveTransientNamed[*greeter](context.Background(), r, "secondary")
	require.NoError(t, err)
	assert.Equal(t, "s", secondary.Get().greeting)

	assert.False(t, HasType[*greeter](r), "unnamed lookup should not match named registrations")
	assert.True(t, HasNamed[*greeter](r, "primary"))
	assert.False(t, HasNamed[*greeter](r, "nonexistent"))
}

func TestResolveSingletonNamed_ConstructsOnce(t *testing.T) {
	r := New()

	calls := 0
	RegisterSingletonNamed(r, "primary", func() (*greeter, error) {
		calls++

		return &greeter{greeting: "p"}, nil
	})

	first, err := ResolveSingletonNamed[*greeter](context.Background(), r, "primary")
	require.NoError(t, err)

	second, err := ResolveSingletonNamed[*greeter](context.Background(), r, "primary")
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.True(t, first.Equal(second))
}

func TestFindByGroup_ReturnsMemberKeys(t *testing.T) {
	r := New()

	RegisterGroup(r, "greeters", func() (*greeter, error) { return &greeter{greeting: "a"}, nil })
	RegisterGroup(r, "greeters", func() (*greeter, error) { return &greeter{greeting: "b"}, nil })

	keys := FindByGroup[*greeter](r, "greeters")
	assert.Len(t, keys, 2)
}

func TestQuery_FiltersByLifetimeAndStarted(t *testing.T) {
	r := New()

	RegisterSingleton(r, func() (*logger, error) { return &logger{}, nil })
	RegisterTransient(r, func() (*greeter, error) { return &greeter{}, nil })

	singletons := FindByLifetime(r, Singleton)
	require.Len(t, singletons, 1)
	assert.Equal(t, Singleton, singletons[0].Lifetime)

	assert.Len(t, FindStarted(r), 0)

	_, err := ResolveSingleton[*logger](context.Background(), r)
	require.NoError(t, err)

	assert.Len(t, FindStarted(r), 1)
	assert.Len(t, FindNotStarted(r), 1)
}
