package fail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	err := &Error{
		Context:     "expected",
		Subject:     "created result",
		Expectation: "to contain location",
		Actual:      "such could not be found",
	}

	assert.Equal(t, "expected created result to contain location, but such could not be found.", err.Error())
}

func TestContext_Fail(t *testing.T) {
	ctx := NewContext("when calling GetItem expected")

	failure := Protect(func() {
		ctx.Fail("location", `to be "/items/5"`, `instead received "/items/6"`)
	})

	require.NotNil(t, failure)
	assert.Equal(t, "when calling GetItem expected", failure.Context)
	assert.Equal(t, "location", failure.Subject)
	assert.Equal(t, `when calling GetItem expected location to be "/items/5", but instead received "/items/6".`, failure.Error())
}

func TestNewContext_DefaultPrefix(t *testing.T) {
	ctx := NewContext("")
	assert.Equal(t, DefaultPrefix, ctx.Prefix())
}

func TestProtect_NoFailure(t *testing.T) {
	failure := Protect(func() {})
	assert.Nil(t, failure)
}

func TestProtect_ForeignPanic(t *testing.T) {
	assert.Panics(t, func() {
		Protect(func() { panic("not an assertion failure") })
	})
}
