package check

import (
	"fmt"

	"github.com/abdul-hamid-achik/resultspec/packages/result"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

// JSONAssert asserts on results from the json family.
type JSONAssert struct {
	base
}

// JSON wraps an action result for JSON-family assertions.
func JSON(v any, opts ...Option) *JSONAssert {
	return &JSONAssert{base: newBase(v, result.KindJSON, opts)}
}

// And is a readability connector; it returns the builder unchanged.
func (a *JSONAssert) And() *JSONAssert { return a }

// WithStatusCode asserts on the status code.
func (a *JSONAssert) WithStatusCode(code int) *JSONAssert {
	res := as[result.StatusCoded](&a.base, "status code")
	validateStatusCode(a.ctx, res.ResultStatusCode(), code)
	return a
}

// WithPath asserts that the value at a gjson path inside the JSON body
// equals the given value. Numbers compare by value regardless of their
// Go type.
func (a *JSONAssert) WithPath(path string, value any) *JSONAssert {
	res := as[*result.JSONResult](&a.base, "JSON body")

	if !gjson.ValidBytes(res.Body) {
		a.ctx.Fail("JSON body", "to be valid JSON", "it could not be parsed")
	}

	actual := gjson.GetBytes(res.Body, path)
	subject := fmt.Sprintf("JSON value at %q", path)
	if !actual.Exists() {
		a.ctx.Fail(subject, fmt.Sprintf("to be %v", value), "no value was found")
	}

	if !looselyEqual(actual.Value(), value) {
		a.ctx.Fail(subject, fmt.Sprintf("to be %v", value), fmt.Sprintf("instead received %v", actual.Value()))
	}

	return a
}

// MatchingSchema asserts that the JSON body matches the given JSON
// schema document. A schema that does not compile is reported as an
// input problem, not a body mismatch.
func (a *JSONAssert) MatchingSchema(schema string) *JSONAssert {
	res := as[*result.JSONResult](&a.base, "JSON body")

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		a.ctx.Fail("JSON schema", "to be a valid schema document", "it could not be compiled")
	}

	validation, err := compiled.Validate(gojsonschema.NewBytesLoader(res.Body))
	if err != nil {
		a.ctx.Fail("JSON body", "to match the given schema", "it could not be parsed")
	}

	if !validation.Valid() {
		a.ctx.Fail("JSON body", "to match the given schema", fmt.Sprintf("%d violations were found", len(validation.Errors())))
	}

	return a
}
