package result

import "io"

// Kind tags the family a result variant belongs to. It is used as the
// subject of narrowing-failure messages ("created result", "file
// result") and as the discriminator in recorded results.
type Kind string

const (
	KindCreated  Kind = "created"
	KindFile     Kind = "file"
	KindRedirect Kind = "redirect"
	KindContent  Kind = "content"
	KindJSON     Kind = "json"
)

// Result is an action result of some concrete variant.
type Result interface {
	Kind() Kind
}

// FileProvider abstracts the file system a virtual file result reads
// from. Assertions compare providers by identity or runtime type and
// never call Open.
type FileProvider interface {
	Open(path string) (io.ReadCloser, error)
}

// Formatter abstracts an output formatter attached to a created result.
type Formatter interface {
	Format(w io.Writer, v any) error
}

// URLResolver abstracts the URL generation helper attached to a created
// result.
type URLResolver interface {
	Resolve(route string, values map[string]any) (string, error)
}

// Created family

// LocationResult is a created result carrying a location URI.
type LocationResult struct {
	Location   string
	Formatters []Formatter
	Resolver   URLResolver
}

func (*LocationResult) Kind() Kind { return KindCreated }

// ActionRouteResult is a created result addressed by action and
// controller name.
type ActionRouteResult struct {
	Action      string
	Controller  string
	RouteValues map[string]any
}

func (*ActionRouteResult) Kind() Kind { return KindCreated }

// NamedRouteResult is a created result addressed by route name.
type NamedRouteResult struct {
	Route       string
	RouteValues map[string]any
}

func (*NamedRouteResult) Kind() Kind { return KindCreated }

// File family

// StreamFileResult is a file result backed by a readable stream.
type StreamFileResult struct {
	Stream       io.Reader
	ContentType  string
	DownloadName string
}

func (*StreamFileResult) Kind() Kind { return KindFile }

// VirtualFileResult is a file result addressed by a path inside a file
// provider.
type VirtualFileResult struct {
	Path        string
	Provider    FileProvider
	ContentType string
}

func (*VirtualFileResult) Kind() Kind { return KindFile }

// ByteContentFileResult is a file result holding its contents in
// memory.
type ByteContentFileResult struct {
	Contents     []byte
	ContentType  string
	DownloadName string
}

func (*ByteContentFileResult) Kind() Kind { return KindFile }

// Redirect family

// RedirectResult is a plain redirect to a location URI.
type RedirectResult struct {
	Location  string
	Permanent bool
}

func (*RedirectResult) Kind() Kind { return KindRedirect }

// RedirectToActionResult is a redirect addressed by action and
// controller name.
type RedirectToActionResult struct {
	Action      string
	Controller  string
	RouteValues map[string]any
}

func (*RedirectToActionResult) Kind() Kind { return KindRedirect }

// RedirectToRouteResult is a redirect addressed by route name.
type RedirectToRouteResult struct {
	Route       string
	RouteValues map[string]any
}

func (*RedirectToRouteResult) Kind() Kind { return KindRedirect }

// Content family

// ContentResult is a plain text or markup response body.
type ContentResult struct {
	Body        string
	ContentType string
	StatusCode  int
}

func (*ContentResult) Kind() Kind { return KindContent }

// JSONResult is a JSON response body kept as raw bytes so assertions
// can query into it.
type JSONResult struct {
	Body       []byte
	StatusCode int
}

func (*JSONResult) Kind() Kind { return KindJSON }

// Accessor interfaces shared by several variants. Assertions that apply
// to more than one concrete shape narrow to these instead.

// RouteValued is any variant addressed through a set of route values.
type RouteValued interface {
	Result
	ResultRouteValues() map[string]any
}

// StatusCoded is any variant exposing a status code.
type StatusCoded interface {
	Result
	ResultStatusCode() int
}

// Downloadable is any file variant exposing a download name.
type Downloadable interface {
	Result
	FileDownloadName() string
}

// ContentTyped is any variant exposing a content type.
type ContentTyped interface {
	Result
	ResultContentType() string
}

func (r *ActionRouteResult) ResultRouteValues() map[string]any      { return r.RouteValues }
func (r *NamedRouteResult) ResultRouteValues() map[string]any       { return r.RouteValues }
func (r *RedirectToActionResult) ResultRouteValues() map[string]any { return r.RouteValues }
func (r *RedirectToRouteResult) ResultRouteValues() map[string]any  { return r.RouteValues }

func (r *ContentResult) ResultStatusCode() int { return r.StatusCode }
func (r *JSONResult) ResultStatusCode() int    { return r.StatusCode }

func (r *StreamFileResult) FileDownloadName() string      { return r.DownloadName }
func (r *ByteContentFileResult) FileDownloadName() string { return r.DownloadName }

func (r *StreamFileResult) ResultContentType() string      { return r.ContentType }
func (r *VirtualFileResult) ResultContentType() string     { return r.ContentType }
func (r *ByteContentFileResult) ResultContentType() string { return r.ContentType }
func (r *ContentResult) ResultContentType() string         { return r.ContentType }
