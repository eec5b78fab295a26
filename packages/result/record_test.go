package result

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRecord_Location(t *testing.T) {
	res, err := FromRecord([]byte(`{"kind": "location", "location": "/items/5"}`))
	require.NoError(t, err)

	loc, ok := res.(*LocationResult)
	require.True(t, ok)
	assert.Equal(t, "/items/5", loc.Location)
	assert.Equal(t, KindCreated, loc.Kind())
}

func TestFromRecord_ActionRoute(t *testing.T) {
	res, err := FromRecord([]byte(`{"kind": "action-route", "action": "Index", "controller": "Items", "route_values": {"id": 5}}`))
	require.NoError(t, err)

	ar, ok := res.(*ActionRouteResult)
	require.True(t, ok)
	assert.Equal(t, "Index", ar.Action)
	assert.Equal(t, "Items", ar.Controller)
	assert.Equal(t, float64(5), ar.RouteValues["id"])
}

func TestFromRecord_ByteFile(t *testing.T) {
	tests := []struct {
		name   string
		record string
		want   string
	}{
		{
			name:   "plain contents",
			record: `{"kind": "byte-file", "contents": "hello", "content_type": "text/plain"}`,
			want:   "hello",
		},
		{
			name:   "base64 contents",
			record: `{"kind": "byte-file", "contents_base64": "aGVsbG8=", "content_type": "text/plain"}`,
			want:   "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := FromRecord([]byte(tt.record))
			require.NoError(t, err)

			bf, ok := res.(*ByteContentFileResult)
			require.True(t, ok)
			assert.Equal(t, tt.want, string(bf.Contents))
			assert.Equal(t, "text/plain", bf.ContentType)
		})
	}
}

func TestFromRecord_StreamFile(t *testing.T) {
	res, err := FromRecord([]byte(`{"kind": "stream-file", "contents": "streamed", "download_name": "report.txt"}`))
	require.NoError(t, err)

	sf, ok := res.(*StreamFileResult)
	require.True(t, ok)
	assert.Equal(t, "report.txt", sf.FileDownloadName())

	data, err := io.ReadAll(sf.Stream)
	require.NoError(t, err)
	assert.Equal(t, "streamed", string(data))
}

func TestFromRecord_Redirect(t *testing.T) {
	res, err := FromRecord([]byte(`{"kind": "redirect", "location": "/login", "permanent": true}`))
	require.NoError(t, err)

	rd, ok := res.(*RedirectResult)
	require.True(t, ok)
	assert.Equal(t, "/login", rd.Location)
	assert.True(t, rd.Permanent)
}

func TestFromRecord_JSON(t *testing.T) {
	res, err := FromRecord([]byte(`{"kind": "json", "body": {"id": 5}, "status_code": 201}`))
	require.NoError(t, err)

	jr, ok := res.(*JSONResult)
	require.True(t, ok)
	assert.JSONEq(t, `{"id": 5}`, string(jr.Body))
	assert.Equal(t, 201, jr.StatusCode)
}

func TestFromRecord_Errors(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{name: "not JSON", record: `kind: location`},
		{name: "missing kind", record: `{"location": "/items/5"}`},
		{name: "unknown kind", record: `{"kind": "teapot"}`},
		{name: "bad base64", record: `{"kind": "byte-file", "contents_base64": "!!!"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRecord([]byte(tt.record))
			assert.Error(t, err)
		})
	}
}
