package keystone

import (
	"fmt"
	"reflect"
)

// TypeKey uniquely identifies a registerable type within a Registry, with an
// optional name used to disambiguate multiple providers for the same type.
//
// Two TypeKeys are equal iff they share both the underlying reflect.Type and
// the name; reflect.Type values are process-unique per type, so distinct Go
// types never collide.
type TypeKey struct {
	typ  reflect.Type
	name string
}

// String returns a human-readable, diagnostics-only representation.
func (k TypeKey) String() string {
	base := "<nil>"
	if k.typ != nil {
		base = k.typ.String()
	}

	if k.name == "" {
		return base
	}

	return fmt.Sprintf("%s[%s]", base, k.name)
}

// Name returns the disambiguating name, or "" if the key is unnamed.
func (k TypeKey) Name() string {
	return k.name
}

// keyFor returns the TypeKey for T, unnamed.
func keyFor[T any]() TypeKey {
	return TypeKey{typ: typeOf[T]()}
}

// namedKeyFor returns the TypeKey for T disambiguated by name.
func namedKeyFor[T any](name string) TypeKey {
	return TypeKey{typ: typeOf[T](), name: name}
}

// typeOf returns the reflect.Type for T, including interface types (unlike
// reflect.TypeOf(zero), which loses interface identity for nil interface
// values).
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
