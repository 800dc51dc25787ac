package keystone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type widget struct{}

func TestTypeKey_EqualityByTypeAndName(t *testing.T) {
	a := keyFor[widget]()
	b := keyFor[widget]()
	assert.Equal(t, a, b)

	named := namedKeyFor[widget]("primary")
	assert.NotEqual(t, a, named)

	otherName := namedKeyFor[widget]("secondary")
	assert.NotEqual(t, named, otherName)
}

func TestTypeKey_DistinctTypesNeverCollide(t *testing.T) {
	assert.NotEqual(t, keyFor[widget](), keyFor[greeter]())
}

func TestTypeKey_PreservesInterfaceIdentity(t *testing.T) {
	type namer interface{ Name() string }

	key := keyFor[namer]()
	assert.Contains(t, key.String(), "namer")
}

func TestTypeKey_String(t *testing.T) {
	named := namedKeyFor[widget]("primary")
	assert.Contains(t, named.String(), "primary")
	assert.Equal(t, "primary", named.Name())

	unnamed := keyFor[widget]()
	assert.Equal(t, "", unnamed.Name())
}
