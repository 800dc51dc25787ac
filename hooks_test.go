package keystone

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUse_RunsHooksAroundResolve(t *testing.T) {
	r := New()

	var before, after []string

	r.Use(&FuncHook{
		BeforeResolveFunc: func(ctx context.Context, key TypeKey) error {
			before = append(before, key.String())

			return nil
		},
		AfterResolveFunc: func(ctx context.Context, key TypeKey, value any, err error) {
			after = append(after, key.String())
		},
	})

	RegisterTransient(r, func() (*greeter, error) { return &greeter{greeting: "hi"}, nil })

	_, err := ResolveTransient[*greeter](context.Background(), r)
	require.NoError(t, err)

	require.Len(t, before, 1)
	require.Len(t, after, 1)
	assert.Equal(t, before[0], after[0])
}

func TestUse_BeforeResolveCanAbort(t *testing.T) {
	r := New()

	sentinel := assert.AnError

	r.Use(&FuncHook{
		BeforeResolveFunc: func(ctx context.Context, key TypeKey) error {
			return sentinel
		},
	})

	RegisterTransient(r, func() (*greeter, error) { return &greeter{}, nil })

	_, err := ResolveTransient[*greeter](context.Background(), r)
	assert.ErrorIs(t, err, sentinel)
}
