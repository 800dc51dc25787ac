package keystone

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type partA struct{}
type partB struct{}
type partC struct{}

func TestDescriptor_Deps3MaterializesAllSlots(t *testing.T) {
	r := New()

	RegisterTransient(r, func() (*partA, error) { return &partA{}, nil })
	RegisterTransient(r, func() (*partB, error) { return &partB{}, nil })
	RegisterSingleton(r, func() (*partC, error) { return &partC{}, nil })

	RegisterTransientWithDeps(r,
		NewDeps3(TransientOf[*partA](), TransientOf[*partB](), SingletonOf[*partC]()),
		func(d Deps3[TransientDep[*partA], TransientDep[*partB], SingletonDep[*partC]]) (string, error) {
			require.NotNil(t, d.D1.Get())
			require.NotNil(t, d.D2.Get())
			require.NotNil(t, d.D3.Get().Get())

			return "ok", nil
		},
	)

	v, err := ResolveTransient[string](context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, "ok", v.Get())
}

func TestDescriptor_Deps0NoDependencies(t *testing.T) {
	r := New()

	RegisterTransientWithDeps(r, Deps0{}, func(Deps0) (string, error) { return "no-deps", nil })

	v, err := ResolveTransient[string](context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, "no-deps", v.Get())
}

func TestDescriptor_MissingDependencyPropagatesError(t *testing.T) {
	r := New()

	RegisterTransientWithDeps(r, NewDeps1(TransientOf[*partA]()), func(d Deps1[TransientDep[*partA]]) (string, error) {
		return "unreachable", nil
	})

	_, err := ResolveTransient[string](context.Background(), r)
	require.Error(t, err)

	var resolveErr *ResolveError
	require.ErrorAs(t, err, &resolveErr)
	assert.Equal(t, codeTypeMissing, resolveErr.Code)
}
