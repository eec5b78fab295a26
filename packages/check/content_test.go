package check

import (
	"testing"

	"github.com/abdul-hamid-achik/resultspec/packages/fail"
	"github.com/abdul-hamid-achik/resultspec/packages/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContent_WithBody(t *testing.T) {
	res := &result.ContentResult{Body: "<h1>hi</h1>", ContentType: "text/html", StatusCode: 200}

	failure := fail.Protect(func() {
		Content(res).
			WithBody("<h1>hi</h1>").
			And().
			WithContentType("text/html").
			WithStatusCode(200)
	})
	assert.Nil(t, failure)

	failure = fail.Protect(func() {
		Content(res).WithBody("<h1>bye</h1>")
	})
	require.NotNil(t, failure)
	assert.Equal(t, "content body", failure.Subject)
}

func TestContent_WithStatusCode_Mismatch(t *testing.T) {
	res := &result.ContentResult{StatusCode: 200}

	failure := fail.Protect(func() {
		Content(res).WithStatusCode(201)
	})
	require.NotNil(t, failure)
	assert.Equal(t, "expected status code to be 201, but instead received 200.", failure.Error())
}

func TestContent_NarrowingFailure(t *testing.T) {
	res := &result.LocationResult{Location: "/items/5"}

	failure := fail.Protect(func() {
		Content(res).WithBody("x")
	})
	require.NotNil(t, failure)
	assert.Equal(t, "content result", failure.Subject)
}
