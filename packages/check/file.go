package check

import (
	"bytes"
	"fmt"
	"io"
	"reflect"

	"github.com/abdul-hamid-achik/resultspec/packages/result"
	"github.com/abdul-hamid-achik/resultspec/packages/typeid"
)

// FileAssert asserts on results from the file family.
type FileAssert struct {
	base
}

// File wraps an action result for file-family assertions.
func File(v any, opts ...Option) *FileAssert {
	return &FileAssert{base: newBase(v, result.KindFile, opts)}
}

// And is a readability connector; it returns the builder unchanged.
func (a *FileAssert) And() *FileAssert { return a }

// WithStream asserts that the result stream carries exactly the same
// bytes as the given reader. Both sides are read in full before
// comparing; a mismatch of any kind, including length, is reported
// without a diff.
func (a *FileAssert) WithStream(expected io.Reader) *FileAssert {
	res := as[*result.StreamFileResult](&a.base, "stream")

	expectedBytes, err := io.ReadAll(expected)
	if err != nil {
		a.ctx.Fail("file stream", "to have contents as the provided one", "the provided stream could not be read")
	}

	actualBytes, err := io.ReadAll(res.Stream)
	if err != nil {
		a.ctx.Fail("file stream", "to have contents as the provided one", "the result stream could not be read")
	}
	// Rewind so later assertions against the same result see the same
	// bytes.
	res.Stream = bytes.NewReader(actualBytes)

	if !bytes.Equal(actualBytes, expectedBytes) {
		a.ctx.Fail("file stream", "to have contents as the provided one", "instead received different result")
	}

	return a
}

// WithContents asserts that the result's byte contents are exactly the
// given bytes. A mismatch of any kind, including length, is reported
// without a diff.
func (a *FileAssert) WithContents(expected []byte) *FileAssert {
	res := as[*result.ByteContentFileResult](&a.base, "contents")

	if !bytes.Equal(res.Contents, expected) {
		a.ctx.Fail("file contents", "to be as provided", "instead received different result")
	}

	return a
}

// WithPath asserts on the virtual file path.
func (a *FileAssert) WithPath(path string) *FileAssert {
	res := as[*result.VirtualFileResult](&a.base, "path")
	validateString(a.ctx, "file path", res.Path, path)
	return a
}

// WithDownloadName asserts on the file download name.
func (a *FileAssert) WithDownloadName(name string) *FileAssert {
	res := as[result.Downloadable](&a.base, "name")
	validateString(a.ctx, "file download name", res.FileDownloadName(), name)
	return a
}

// WithContentType asserts on the file content type.
func (a *FileAssert) WithContentType(contentType string) *FileAssert {
	res := as[result.ContentTyped](&a.base, "content type")
	validateString(a.ctx, "content type", res.ResultContentType(), contentType)
	return a
}

// WithFileProvider asserts that the result uses exactly the given
// provider instance. Providers are compared by identity, never by
// structural equality.
func (a *FileAssert) WithFileProvider(provider result.FileProvider) *FileAssert {
	res := as[*result.VirtualFileResult](&a.base, "provider")

	if !sameProvider(res.Provider, provider) {
		a.ctx.Fail("file provider", "to be the same as the provided one", "instead received different result")
	}

	return a
}

// sameProvider compares providers without tripping over dynamic types
// the == operator cannot handle. Pointer providers compare by address;
// non-comparable value providers are never the same instance.
func sameProvider(actual, expected result.FileProvider) bool {
	if actual == nil || expected == nil {
		return actual == expected
	}

	av, ev := reflect.ValueOf(actual), reflect.ValueOf(expected)
	if av.Type() != ev.Type() {
		return false
	}
	if av.Kind() == reflect.Pointer {
		return av.Pointer() == ev.Pointer()
	}
	if !av.Type().Comparable() {
		return false
	}
	return actual == expected
}

// WithFileProviderOfType asserts that the result's provider is of the
// exact type T.
func WithFileProviderOfType[T any](a *FileAssert) *FileAssert {
	res := as[*result.VirtualFileResult](&a.base, "provider")

	expected := typeid.Of[T]()
	if typeid.Different(expected, res.Provider) {
		a.ctx.Fail("file provider", fmt.Sprintf("to be of %s type", expected), fmt.Sprintf("instead received %s", typeid.Name(res.Provider)))
	}

	return a
}
