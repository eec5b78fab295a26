package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		res  Result
		kind Kind
	}{
		{res: &LocationResult{}, kind: KindCreated},
		{res: &ActionRouteResult{}, kind: KindCreated},
		{res: &NamedRouteResult{}, kind: KindCreated},
		{res: &StreamFileResult{}, kind: KindFile},
		{res: &VirtualFileResult{}, kind: KindFile},
		{res: &ByteContentFileResult{}, kind: KindFile},
		{res: &RedirectResult{}, kind: KindRedirect},
		{res: &RedirectToActionResult{}, kind: KindRedirect},
		{res: &RedirectToRouteResult{}, kind: KindRedirect},
		{res: &ContentResult{}, kind: KindContent},
		{res: &JSONResult{}, kind: KindJSON},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.res.Kind())
	}
}

func TestAccessorInterfaces(t *testing.T) {
	var _ Downloadable = &StreamFileResult{}
	var _ Downloadable = &ByteContentFileResult{}
	var _ ContentTyped = &VirtualFileResult{}
	var _ ContentTyped = &ContentResult{}
	var _ RouteValued = &ActionRouteResult{}
	var _ RouteValued = &RedirectToRouteResult{}
	var _ StatusCoded = &JSONResult{}

	// Virtual files have no download name; the assertion layer relies
	// on this narrowing failing.
	var res any = &VirtualFileResult{}
	_, ok := res.(Downloadable)
	assert.False(t, ok)
}
