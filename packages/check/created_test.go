package check

import (
	"io"
	"strings"
	"testing"

	"github.com/abdul-hamid-achik/resultspec/packages/fail"
	"github.com/abdul-hamid-achik/resultspec/packages/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct{}

func (stubResolver) Resolve(string, map[string]any) (string, error) { return "", nil }

type otherResolver struct{}

func (otherResolver) Resolve(string, map[string]any) (string, error) { return "", nil }

type jsonFormatter struct{}

func (jsonFormatter) Format(io.Writer, any) error { return nil }

func TestCreated_AtLocation(t *testing.T) {
	res := &result.LocationResult{Location: "/items/5"}

	failure := fail.Protect(func() {
		Created(res).AtLocation("/items/5")
	})
	assert.Nil(t, failure)

	failure = fail.Protect(func() {
		Created(res).AtLocation("/items/6")
	})
	require.NotNil(t, failure)
	assert.Contains(t, failure.Error(), `"/items/6"`)
	assert.Contains(t, failure.Error(), `"/items/5"`)
	assert.Equal(t, "location", failure.Subject)
}

func TestCreated_AtLocation_MalformedExpected(t *testing.T) {
	res := &result.LocationResult{Location: "/items/5"}

	failure := fail.Protect(func() {
		Created(res).AtLocation("://items/5")
	})
	require.NotNil(t, failure)
	assert.Contains(t, failure.Actual, "not a well-formed URI")
}

func TestCreated_AtLocationPassing(t *testing.T) {
	res := &result.LocationResult{Location: "/items/5"}

	failure := fail.Protect(func() {
		Created(res).AtLocationPassing(func(loc string) bool {
			return strings.HasPrefix(loc, "/items/")
		})
	})
	assert.Nil(t, failure)

	failure = fail.Protect(func() {
		Created(res).AtLocationPassing(func(string) bool { return false })
	})
	require.NotNil(t, failure)
	assert.Equal(t, "to pass the given predicate", failure.Expectation)
	assert.Equal(t, "it failed", failure.Actual)
}

func TestCreated_AtLocationWith(t *testing.T) {
	res := &result.LocationResult{Location: "https://api.example.com:8080/items/5?expand=all#top"}

	failure := fail.Protect(func() {
		Created(res).AtLocationWith(func(u *URI) {
			u.WithScheme("https").
				And().
				WithHost("api.example.com").
				WithPort("8080").
				WithPath("/items/5").
				WithQuery("expand", "all").
				WithFragment("top")
		})
	})
	assert.Nil(t, failure)

	failure = fail.Protect(func() {
		Created(res).AtLocationWith(func(u *URI) {
			u.WithHost("other.example.com")
		})
	})
	require.NotNil(t, failure)
	assert.Equal(t, "location host", failure.Subject)
}

func TestCreated_AtRoute(t *testing.T) {
	res := &result.NamedRouteResult{Route: "GetItem"}

	failure := fail.Protect(func() {
		Created(res).AtRoute("GetItem")
	})
	assert.Nil(t, failure)

	failure = fail.Protect(func() {
		Created(res).AtRoute("DeleteItem")
	})
	require.NotNil(t, failure)
	assert.Contains(t, failure.Error(), `"DeleteItem"`)
	assert.Contains(t, failure.Error(), `"GetItem"`)
}

func TestCreated_AtAction_NarrowingFailure(t *testing.T) {
	// A location result cannot satisfy an action-route assertion.
	res := &result.LocationResult{Location: "/items/5"}

	failure := fail.Protect(func() {
		Created(res).AtAction("Index")
	})
	require.NotNil(t, failure)
	assert.Equal(t, "created result", failure.Subject)
	assert.Contains(t, failure.Expectation, "action name")
	assert.Equal(t, "such could not be found", failure.Actual)
}

func TestCreated_AtActionAndController(t *testing.T) {
	res := &result.ActionRouteResult{Action: "Index", Controller: "Items"}

	failure := fail.Protect(func() {
		Created(res).AtAction("Index").And().AtController("Items")
	})
	assert.Nil(t, failure)

	failure = fail.Protect(func() {
		Created(res).AtController("Orders")
	})
	require.NotNil(t, failure)
	assert.Equal(t, "controller name", failure.Subject)
}

func TestCreated_ContainingRouteValue(t *testing.T) {
	res := &result.ActionRouteResult{
		Action:      "Index",
		RouteValues: map[string]any{"id": 5, "slug": "widget"},
	}

	failure := fail.Protect(func() {
		Created(res).ContainingRouteValue("id", 5).ContainingRouteValue("slug", "widget")
	})
	assert.Nil(t, failure)

	// Recorded route values decode numbers as float64; they still match.
	recorded := &result.NamedRouteResult{
		Route:       "GetItem",
		RouteValues: map[string]any{"id": float64(5)},
	}
	failure = fail.Protect(func() {
		Created(recorded).ContainingRouteValue("id", 5)
	})
	assert.Nil(t, failure)

	failure = fail.Protect(func() {
		Created(res).ContainingRouteValue("id", 6)
	})
	require.NotNil(t, failure)
	assert.Equal(t, "route values", failure.Subject)

	failure = fail.Protect(func() {
		Created(res).ContainingRouteValue("missing", 1)
	})
	require.NotNil(t, failure)
	assert.Equal(t, "such was not found", failure.Actual)
}

func TestCreated_WithURLResolverOfType(t *testing.T) {
	res := &result.LocationResult{Location: "/items/5", Resolver: stubResolver{}}

	failure := fail.Protect(func() {
		WithURLResolverOfType[stubResolver](Created(res))
	})
	assert.Nil(t, failure)

	failure = fail.Protect(func() {
		WithURLResolverOfType[otherResolver](Created(res))
	})
	require.NotNil(t, failure)
	assert.Contains(t, failure.Expectation, "otherResolver")
	assert.Contains(t, failure.Actual, "stubResolver")
}

func TestCreated_WithURLResolverOfType_Absent(t *testing.T) {
	res := &result.LocationResult{Location: "/items/5"}

	failure := fail.Protect(func() {
		WithURLResolverOfType[stubResolver](Created(res))
	})
	require.NotNil(t, failure)
	assert.Contains(t, failure.Actual, "none")
}

func TestCreated_ContainingFormatterOfType(t *testing.T) {
	res := &result.LocationResult{
		Location:   "/items/5",
		Formatters: []result.Formatter{jsonFormatter{}},
	}

	failure := fail.Protect(func() {
		ContainingFormatterOfType[jsonFormatter](Created(res))
	})
	assert.Nil(t, failure)

	type missing struct{ jsonFormatter }
	failure = fail.Protect(func() {
		ContainingFormatterOfType[missing](Created(res))
	})
	require.NotNil(t, failure)
	assert.Equal(t, "such was not found", failure.Actual)
}

func TestCreated_ChainIsIdempotentAndOrderIndependent(t *testing.T) {
	res := &result.ActionRouteResult{Action: "Index", Controller: "Items"}

	failure := fail.Protect(func() {
		Created(res).AtAction("Index").AtAction("Index")
	})
	assert.Nil(t, failure, "repeating a passing assertion must not raise")

	forward := fail.Protect(func() {
		Created(res).AtAction("Index").AtController("Items")
	})
	reversed := fail.Protect(func() {
		Created(res).AtController("Items").AtAction("Index")
	})
	assert.Nil(t, forward)
	assert.Nil(t, reversed)
}

func TestCreated_ContextPrefix(t *testing.T) {
	res := &result.LocationResult{Location: "/items/5"}

	failure := fail.Protect(func() {
		Created(res, WithContext("when calling GetItem expected")).AtLocation("/items/6")
	})
	require.NotNil(t, failure)
	assert.Equal(t,
		`when calling GetItem expected location to be "/items/6", but instead received "/items/5".`,
		failure.Error())
}
