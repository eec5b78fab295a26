package check

import (
	"fmt"
	"net/url"

	"github.com/abdul-hamid-achik/resultspec/packages/fail"
)

// URI asserts on individual components of a location URI. It is only
// reachable through AtLocationWith / ToWith, so the location has
// already been narrowed when a URI is built.
type URI struct {
	ctx    *fail.Context
	actual *url.URL
}

func newURI(ctx *fail.Context, location string) *URI {
	u, err := url.Parse(location)
	if err != nil {
		ctx.Fail("location", "to be a well-formed URI", fmt.Sprintf("%q could not be parsed", location))
	}
	return &URI{ctx: ctx, actual: u}
}

// And is a readability connector; it returns the builder unchanged.
func (u *URI) And() *URI { return u }

// WithScheme asserts on the URI scheme.
func (u *URI) WithScheme(scheme string) *URI {
	u.compare("scheme", u.actual.Scheme, scheme)
	return u
}

// WithHost asserts on the URI host, without the port.
func (u *URI) WithHost(host string) *URI {
	u.compare("host", u.actual.Hostname(), host)
	return u
}

// WithPort asserts on the URI port.
func (u *URI) WithPort(port string) *URI {
	u.compare("port", u.actual.Port(), port)
	return u
}

// WithPath asserts on the URI path.
func (u *URI) WithPath(path string) *URI {
	u.compare("path", u.actual.Path, path)
	return u
}

// WithQuery asserts that the URI query contains the given parameter
// with exactly the given value.
func (u *URI) WithQuery(key, value string) *URI {
	values := u.actual.Query()
	if !values.Has(key) {
		u.ctx.Fail("location query", fmt.Sprintf("to contain parameter %q", key), "such was not found")
	}
	u.compare(fmt.Sprintf("query parameter %q", key), values.Get(key), value)
	return u
}

// WithFragment asserts on the URI fragment.
func (u *URI) WithFragment(fragment string) *URI {
	u.compare("fragment", u.actual.Fragment, fragment)
	return u
}

func (u *URI) compare(part, actual, expected string) {
	if actual != expected {
		u.ctx.Fail("location "+part, fmt.Sprintf("to be %q", expected), fmt.Sprintf("instead received %q", actual))
	}
}
