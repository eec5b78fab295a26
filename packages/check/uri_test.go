package check

import (
	"testing"

	"github.com/abdul-hamid-achik/resultspec/packages/fail"
	"github.com/abdul-hamid-achik/resultspec/packages/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURI_WithQuery_MissingParameter(t *testing.T) {
	res := &result.LocationResult{Location: "/items?page=2"}

	failure := fail.Protect(func() {
		Created(res).AtLocationWith(func(u *URI) {
			u.WithQuery("size", "10")
		})
	})
	require.NotNil(t, failure)
	assert.Equal(t, "location query", failure.Subject)
	assert.Equal(t, "such was not found", failure.Actual)
}

func TestURI_RelativeLocation(t *testing.T) {
	res := &result.LocationResult{Location: "/items/5"}

	failure := fail.Protect(func() {
		Created(res).AtLocationWith(func(u *URI) {
			u.WithScheme("").WithHost("").WithPath("/items/5")
		})
	})
	assert.Nil(t, failure)
}
