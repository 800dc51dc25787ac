package keystone

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterBatch_RunsInOrderAndStopsOnError(t *testing.T) {
	r := New()

	var ran []string

	err := RegisterBatch(r,
		func(r *Registry) error {
			ran = append(ran, "logger")
			RegisterSingleton(r, func() (*logger, error) { return &logger{}, nil })

			return nil
		},
		func(r *Registry) error {
			ran = append(ran, "fails")

			return errors.New("boom")
		},
		func(r *Registry) error {
			ran = append(ran, "greeter")
			RegisterTransient(r, func() (*greeter, error) { return &greeter{}, nil })

			return nil
		},
	)

	require.Error(t, err)
	assert.Equal(t, []string{"logger", "fails"}, ran)
	assert.True(t, HasType[*logger](r))
	assert.False(t, HasType[*greeter](r))
}
