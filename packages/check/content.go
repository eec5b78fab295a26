package check

import (
	"fmt"

	"github.com/abdul-hamid-achik/resultspec/packages/fail"
	"github.com/abdul-hamid-achik/resultspec/packages/result"
)

// ContentAssert asserts on results from the content family.
type ContentAssert struct {
	base
}

// Content wraps an action result for content-family assertions.
func Content(v any, opts ...Option) *ContentAssert {
	return &ContentAssert{base: newBase(v, result.KindContent, opts)}
}

// And is a readability connector; it returns the builder unchanged.
func (a *ContentAssert) And() *ContentAssert { return a }

// WithBody asserts that the content body is exactly the given string.
func (a *ContentAssert) WithBody(body string) *ContentAssert {
	res := as[*result.ContentResult](&a.base, "body")
	validateString(a.ctx, "content body", res.Body, body)
	return a
}

// WithContentType asserts on the content type.
func (a *ContentAssert) WithContentType(contentType string) *ContentAssert {
	res := as[result.ContentTyped](&a.base, "content type")
	validateString(a.ctx, "content type", res.ResultContentType(), contentType)
	return a
}

// WithStatusCode asserts on the status code.
func (a *ContentAssert) WithStatusCode(code int) *ContentAssert {
	res := as[result.StatusCoded](&a.base, "status code")
	validateStatusCode(a.ctx, res.ResultStatusCode(), code)
	return a
}

func validateStatusCode(ctx *fail.Context, actual, expected int) {
	if actual != expected {
		ctx.Fail("status code", fmt.Sprintf("to be %d", expected), fmt.Sprintf("instead received %d", actual))
	}
}
