package check

import (
	"fmt"

	"github.com/abdul-hamid-achik/resultspec/packages/result"
	"github.com/abdul-hamid-achik/resultspec/packages/typeid"
)

// CreatedAssert asserts on results from the created family.
type CreatedAssert struct {
	base
}

// Created wraps an action result for created-family assertions.
func Created(v any, opts ...Option) *CreatedAssert {
	return &CreatedAssert{base: newBase(v, result.KindCreated, opts)}
}

// And is a readability connector; it returns the builder unchanged.
func (a *CreatedAssert) And() *CreatedAssert { return a }

// AtLocation asserts that the result carries exactly the given
// location. The expected string must itself be a well-formed URI,
// absolute or relative.
func (a *CreatedAssert) AtLocation(location string) *CreatedAssert {
	res := as[*result.LocationResult](&a.base, "location")
	validateLocation(a.ctx, res.Location, location)
	return a
}

// AtLocationPassing asserts that the result location satisfies the
// given predicate.
func (a *CreatedAssert) AtLocationPassing(pred func(location string) bool) *CreatedAssert {
	res := as[*result.LocationResult](&a.base, "location")
	validateLocationPassing(a.ctx, res.Location, pred)
	return a
}

// AtLocationWith asserts on individual components of the result
// location through a URI sub-builder.
func (a *CreatedAssert) AtLocationWith(assert func(*URI)) *CreatedAssert {
	res := as[*result.LocationResult](&a.base, "location")
	assert(newURI(a.ctx, res.Location))
	return a
}

// AtAction asserts that the result routes to the given action name.
func (a *CreatedAssert) AtAction(name string) *CreatedAssert {
	res := as[*result.ActionRouteResult](&a.base, "action name")
	validateString(a.ctx, "action name", res.Action, name)
	return a
}

// AtController asserts that the result routes to the given controller
// name.
func (a *CreatedAssert) AtController(name string) *CreatedAssert {
	res := as[*result.ActionRouteResult](&a.base, "controller name")
	validateString(a.ctx, "controller name", res.Controller, name)
	return a
}

// AtRoute asserts that the result routes to the given named route.
func (a *CreatedAssert) AtRoute(name string) *CreatedAssert {
	res := as[*result.NamedRouteResult](&a.base, "route name")
	validateString(a.ctx, "route name", res.Route, name)
	return a
}

// ContainingRouteValue asserts that the result's route values contain
// the given entry.
func (a *CreatedAssert) ContainingRouteValue(key string, value any) *CreatedAssert {
	res := as[result.RouteValued](&a.base, "route values")
	validateRouteValue(a.ctx, res.ResultRouteValues(), key, value)
	return a
}

// ContainingFormatterOfType asserts that the result carries at least
// one output formatter of the exact type T.
func ContainingFormatterOfType[T any](a *CreatedAssert) *CreatedAssert {
	res := as[*result.LocationResult](&a.base, "formatters")

	expected := typeid.Of[T]()
	for _, f := range res.Formatters {
		if !typeid.Different(expected, f) {
			return a
		}
	}

	a.ctx.Fail("formatters", fmt.Sprintf("to contain formatter of %s type", expected), "such was not found")
	return a
}

// WithURLResolverOfType asserts that the result's URL resolver is of
// the exact type T.
func WithURLResolverOfType[T any](a *CreatedAssert) *CreatedAssert {
	res := as[*result.LocationResult](&a.base, "URL resolver")

	expected := typeid.Of[T]()
	if typeid.Different(expected, res.Resolver) {
		a.ctx.Fail("URL resolver", fmt.Sprintf("to be of %s type", expected), fmt.Sprintf("instead received %s", typeid.Name(res.Resolver)))
	}

	return a
}
