// Package typeid centralizes the type-identity comparison used by every
// "of type" assertion, so "same type" means the exact runtime type and
// never assignability.
package typeid

import "reflect"

// NoneName is reported as the actual type when a value is absent.
const NoneName = "none"

// Of returns the reflect.Type of the type argument. It works for
// interface types as well as concrete ones.
func Of[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Different reports whether the runtime type of actual is not exactly
// the expected type. A nil actual is always different.
func Different(expected reflect.Type, actual any) bool {
	if actual == nil {
		return true
	}
	return reflect.TypeOf(actual) != expected
}

// Name returns the display name of a value's runtime type, or NoneName
// when the value is absent.
func Name(v any) string {
	if v == nil {
		return NoneName
	}
	return reflect.TypeOf(v).String()
}
