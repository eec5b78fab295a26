package check

import (
	"fmt"
	"net/url"
	"reflect"

	"github.com/abdul-hamid-achik/resultspec/packages/fail"
	"github.com/abdul-hamid-achik/resultspec/packages/result"
)

// base carries the state shared by every assertion builder: the result
// value under test, the family the builder narrows into and the failure
// context used for message prefixes.
type base struct {
	value  any
	family result.Kind
	ctx    *fail.Context
}

// Option configures an assertion builder at construction.
type Option func(*base)

// WithContext sets the failure-context prefix prepended to every
// failure message raised from the builder.
func WithContext(prefix string) Option {
	return func(b *base) {
		b.ctx = fail.NewContext(prefix)
	}
}

func newBase(v any, family result.Kind, opts []Option) base {
	b := base{
		value:  v,
		family: family,
		ctx:    fail.NewContext(""),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// as narrows the wrapped result to the variant V. It is the single
// funnel every field assertion passes through: a value of the wrong
// shape raises a narrowing failure naming the containment label, so no
// validator ever sees data it cannot inspect.
func as[V any](b *base, label string) V {
	v, ok := b.value.(V)
	if !ok {
		b.ctx.Fail(string(b.family)+" result", "to contain "+label, "such could not be found")
	}
	return v
}

// validateLocation checks that expected is a well-formed URI before
// comparing, so a malformed expectation is reported as an input problem
// rather than a value mismatch.
func validateLocation(ctx *fail.Context, actual, expected string) {
	if _, err := url.Parse(expected); err != nil {
		ctx.Fail("location", fmt.Sprintf("to be %q", expected), "the expected location is not a well-formed URI")
	}

	if actual != expected {
		ctx.Fail("location", fmt.Sprintf("to be %q", expected), fmt.Sprintf("instead received %q", actual))
	}
}

func validateLocationPassing(ctx *fail.Context, actual string, pred func(location string) bool) {
	if !pred(actual) {
		ctx.Fail("location", "to pass the given predicate", "it failed")
	}
}

func validateString(ctx *fail.Context, subject, actual, expected string) {
	if actual != expected {
		ctx.Fail(subject, fmt.Sprintf("to be %q", expected), fmt.Sprintf("instead received %q", actual))
	}
}

func validateRouteValue(ctx *fail.Context, values map[string]any, key string, value any) {
	actual, ok := values[key]
	if !ok {
		ctx.Fail("route values", fmt.Sprintf("to contain entry with %q key and %v value", key, value), "such was not found")
	}

	if !looselyEqual(actual, value) {
		ctx.Fail("route values", fmt.Sprintf("to contain entry with %q key and %v value", key, value), fmt.Sprintf("instead received %v", actual))
	}
}

// looselyEqual compares recorded values against expectations, treating
// numerically equal values as equal regardless of their Go type (JSON
// decoding yields float64 for every number).
func looselyEqual(actual, expected any) bool {
	if reflect.DeepEqual(actual, expected) {
		return true
	}

	actualNum, aOk := toFloat64(actual)
	expectedNum, eOk := toFloat64(expected)
	if aOk && eOk {
		return actualNum == expectedNum
	}

	return fmt.Sprintf("%v", actual) == fmt.Sprintf("%v", expected)
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
