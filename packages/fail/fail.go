package fail

import "fmt"

// DefaultPrefix is the failure-context prefix used when the caller does
// not supply one.
const DefaultPrefix = "expected"

// Error is a raised assertion failure. The three message components are
// kept as structured fields so reporters can render richer output than
// the flat message.
type Error struct {
	// Context is the sentence prefix identifying the subject under
	// test, e.g. "when calling GetItem expected".
	Context string

	// Subject names what was inspected, e.g. "created result" or
	// "location".
	Subject string

	// Expectation describes what should have held, e.g.
	// `to be "/items/5"`.
	Expectation string

	// Actual describes what was found instead, e.g.
	// `instead received "/items/6"`.
	Actual string
}

// Error formats the failure as a single sentence:
// "<context> <subject> <expectation>, but <actual>."
func (e *Error) Error() string {
	return fmt.Sprintf("%s %s %s, but %s.", e.Context, e.Subject, e.Expectation, e.Actual)
}

// Context threads the failure-context prefix through a chain of
// assertions. The zero value is not usable; construct with NewContext.
type Context struct {
	prefix string
}

// NewContext returns a Context carrying the given sentence prefix. An
// empty prefix falls back to DefaultPrefix.
func NewContext(prefix string) *Context {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Context{prefix: prefix}
}

// Prefix returns the sentence prefix carried by the context.
func (c *Context) Prefix() string {
	return c.prefix
}

// Fail raises an *Error built from the three message components. It
// never returns; the panic is expected to be recovered by Protect or by
// the surrounding test runner.
func (c *Context) Fail(subject, expectation, actual string) {
	panic(&Error{
		Context:     c.prefix,
		Subject:     subject,
		Expectation: expectation,
		Actual:      actual,
	})
}

// Protect runs fn and recovers a raised *Error, returning it. It
// returns nil when fn completes without raising. Panics that are not
// assertion failures are re-raised untouched.
func Protect(fn func()) (failure *Error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ferr, ok := r.(*Error)
		if !ok {
			panic(r)
		}
		failure = ferr
	}()

	fn()
	return nil
}
