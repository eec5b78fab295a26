package result

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// FromRecord decodes a recorded action result from its JSON form. A
// record is an object with a "kind" discriminator naming the variant
// plus that variant's fields, e.g.
//
//	{"kind": "location", "location": "/items/5"}
//
// File contents may be recorded as plain text ("contents") or base64
// ("contents_base64"). Stream-backed results are reconstructed over the
// recorded bytes.
func FromRecord(data []byte) (Result, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("record is not valid JSON")
	}

	kind := gjson.GetBytes(data, "kind").String()
	if kind == "" {
		return nil, fmt.Errorf("record has no kind")
	}

	switch kind {
	case "location":
		var rec struct {
			Location string `json:"location"`
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s record: %w", kind, err)
		}
		return &LocationResult{Location: rec.Location}, nil

	case "action-route":
		var rec struct {
			Action      string         `json:"action"`
			Controller  string         `json:"controller"`
			RouteValues map[string]any `json:"route_values"`
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s record: %w", kind, err)
		}
		return &ActionRouteResult{Action: rec.Action, Controller: rec.Controller, RouteValues: rec.RouteValues}, nil

	case "named-route":
		var rec struct {
			Route       string         `json:"route"`
			RouteValues map[string]any `json:"route_values"`
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s record: %w", kind, err)
		}
		return &NamedRouteResult{Route: rec.Route, RouteValues: rec.RouteValues}, nil

	case "stream-file":
		contents, meta, err := fileRecord(data, kind)
		if err != nil {
			return nil, err
		}
		return &StreamFileResult{
			Stream:       bytes.NewReader(contents),
			ContentType:  meta.ContentType,
			DownloadName: meta.DownloadName,
		}, nil

	case "byte-file":
		contents, meta, err := fileRecord(data, kind)
		if err != nil {
			return nil, err
		}
		return &ByteContentFileResult{
			Contents:     contents,
			ContentType:  meta.ContentType,
			DownloadName: meta.DownloadName,
		}, nil

	case "virtual-file":
		var rec struct {
			Path        string `json:"path"`
			ContentType string `json:"content_type"`
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s record: %w", kind, err)
		}
		return &VirtualFileResult{Path: rec.Path, ContentType: rec.ContentType}, nil

	case "redirect":
		var rec struct {
			Location  string `json:"location"`
			Permanent bool   `json:"permanent"`
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s record: %w", kind, err)
		}
		return &RedirectResult{Location: rec.Location, Permanent: rec.Permanent}, nil

	case "redirect-action":
		var rec struct {
			Action      string         `json:"action"`
			Controller  string         `json:"controller"`
			RouteValues map[string]any `json:"route_values"`
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s record: %w", kind, err)
		}
		return &RedirectToActionResult{Action: rec.Action, Controller: rec.Controller, RouteValues: rec.RouteValues}, nil

	case "redirect-route":
		var rec struct {
			Route       string         `json:"route"`
			RouteValues map[string]any `json:"route_values"`
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s record: %w", kind, err)
		}
		return &RedirectToRouteResult{Route: rec.Route, RouteValues: rec.RouteValues}, nil

	case "content":
		var rec struct {
			Body        string `json:"body"`
			ContentType string `json:"content_type"`
			StatusCode  int    `json:"status_code"`
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s record: %w", kind, err)
		}
		return &ContentResult{Body: rec.Body, ContentType: rec.ContentType, StatusCode: rec.StatusCode}, nil

	case "json":
		var rec struct {
			Body       json.RawMessage `json:"body"`
			StatusCode int             `json:"status_code"`
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s record: %w", kind, err)
		}
		return &JSONResult{Body: rec.Body, StatusCode: rec.StatusCode}, nil

	default:
		return nil, fmt.Errorf("unknown result kind %q", kind)
	}
}

type fileMeta struct {
	ContentType  string `json:"content_type"`
	DownloadName string `json:"download_name"`
}

func fileRecord(data []byte, kind string) ([]byte, fileMeta, error) {
	var rec struct {
		fileMeta
		Contents       string `json:"contents"`
		ContentsBase64 string `json:"contents_base64"`
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fileMeta{}, fmt.Errorf("decoding %s record: %w", kind, err)
	}

	if rec.ContentsBase64 != "" {
		contents, err := base64.StdEncoding.DecodeString(rec.ContentsBase64)
		if err != nil {
			return nil, fileMeta{}, fmt.Errorf("decoding %s record contents: %w", kind, err)
		}
		return contents, rec.fileMeta, nil
	}

	return []byte(rec.Contents), rec.fileMeta, nil
}
