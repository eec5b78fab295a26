package check

import (
	"github.com/abdul-hamid-achik/resultspec/packages/result"
)

// RedirectAssert asserts on results from the redirect family.
type RedirectAssert struct {
	base
}

// Redirect wraps an action result for redirect-family assertions.
func Redirect(v any, opts ...Option) *RedirectAssert {
	return &RedirectAssert{base: newBase(v, result.KindRedirect, opts)}
}

// And is a readability connector; it returns the builder unchanged.
func (a *RedirectAssert) And() *RedirectAssert { return a }

// To asserts that the redirect targets exactly the given location. The
// expected string must itself be a well-formed URI.
func (a *RedirectAssert) To(location string) *RedirectAssert {
	res := as[*result.RedirectResult](&a.base, "location")
	validateLocation(a.ctx, res.Location, location)
	return a
}

// ToPassing asserts that the redirect location satisfies the given
// predicate.
func (a *RedirectAssert) ToPassing(pred func(location string) bool) *RedirectAssert {
	res := as[*result.RedirectResult](&a.base, "location")
	validateLocationPassing(a.ctx, res.Location, pred)
	return a
}

// ToWith asserts on individual components of the redirect location
// through a URI sub-builder.
func (a *RedirectAssert) ToWith(assert func(*URI)) *RedirectAssert {
	res := as[*result.RedirectResult](&a.base, "location")
	assert(newURI(a.ctx, res.Location))
	return a
}

// Permanent asserts that the redirect is permanent.
func (a *RedirectAssert) Permanent() *RedirectAssert {
	res := as[*result.RedirectResult](&a.base, "location")
	if !res.Permanent {
		a.ctx.Fail("redirect", "to be permanent", "it was temporary")
	}
	return a
}

// Temporary asserts that the redirect is temporary.
func (a *RedirectAssert) Temporary() *RedirectAssert {
	res := as[*result.RedirectResult](&a.base, "location")
	if res.Permanent {
		a.ctx.Fail("redirect", "to be temporary", "it was permanent")
	}
	return a
}

// ToAction asserts that the redirect routes to the given action name.
func (a *RedirectAssert) ToAction(name string) *RedirectAssert {
	res := as[*result.RedirectToActionResult](&a.base, "action name")
	validateString(a.ctx, "action name", res.Action, name)
	return a
}

// ToController asserts that the redirect routes to the given
// controller name.
func (a *RedirectAssert) ToController(name string) *RedirectAssert {
	res := as[*result.RedirectToActionResult](&a.base, "controller name")
	validateString(a.ctx, "controller name", res.Controller, name)
	return a
}

// ToRoute asserts that the redirect routes to the given named route.
func (a *RedirectAssert) ToRoute(name string) *RedirectAssert {
	res := as[*result.RedirectToRouteResult](&a.base, "route name")
	validateString(a.ctx, "route name", res.Route, name)
	return a
}

// ContainingRouteValue asserts that the redirect's route values
// contain the given entry.
func (a *RedirectAssert) ContainingRouteValue(key string, value any) *RedirectAssert {
	res := as[result.RouteValued](&a.base, "route values")
	validateRouteValue(a.ctx, res.ResultRouteValues(), key, value)
	return a
}
