package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Identity is a verified caller identity attached to a Request by
// authentication middleware. Guard middleware downstream only inspects it;
// it never creates one.
type Identity struct {
	// Subject identifies the authenticated principal (user ID).
	Subject string

	// Roles are the roles granted to the principal.
	Roles []string
}

// HasRole reports whether the identity carries the given role.
func (id *Identity) HasRole(role string) bool {
	if id == nil {
		return false
	}
	for _, r := range id.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Request is the framework's view of one HTTP request.
//
// A Request is created once per inbound request and owned by the goroutine
// serving it. The router writes extracted path parameters into it before the
// handler chain runs; middleware may attach derived values (request ID,
// session, identity) as the request travels inward.
type Request struct {
	// Method is the HTTP method, e.g. "GET".
	Method string

	// Path is the URL path component, e.g. "/users/42".
	Path string

	// Header holds the request headers.
	Header http.Header

	// Query holds the parsed query string parameters.
	Query url.Values

	// User is the verified identity, if authentication middleware attached
	// one. Nil means the request is anonymous.
	User *Identity

	params map[string]string
	values map[any]any
	body   io.ReadCloser
	form   url.Values
	raw    *http.Request
}

// NewRequest builds a Request from an inbound *http.Request.
// The original request remains reachable via Raw for interop with
// net/http-level collaborators.
func NewRequest(r *http.Request) *Request {
	return &Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Header: r.Header,
		Query:  r.URL.Query(),
		params: make(map[string]string),
		body:   r.Body,
		raw:    r,
	}
}

// Param returns the path parameter captured under name, or "" when absent.
func (r *Request) Param(name string) string {
	return r.params[name]
}

// Params returns the path parameter map. The map is owned by the request;
// callers must not retain it past the request's lifetime.
func (r *Request) Params() map[string]string {
	return r.params
}

// SetParam records a path parameter, overwriting any previous value under the
// same name. The router calls this for every captured segment of the matched
// route.
func (r *Request) SetParam(name, value string) {
	r.params[name] = value
}

// QueryParam returns the first query string value for key, or "".
func (r *Request) QueryParam(key string) string {
	return r.Query.Get(key)
}

// SetValue attaches an arbitrary per-request value under key.
// Middleware uses this to hand derived data (request IDs, sessions, trace
// spans) to inner handlers.
func (r *Request) SetValue(key, value any) {
	if r.values == nil {
		r.values = make(map[any]any)
	}
	r.values[key] = value
}

// Value returns the per-request value stored under key, or nil.
func (r *Request) Value(key any) any {
	return r.values[key]
}

// Body returns the request body reader. The body can be consumed once.
func (r *Request) Body() io.Reader {
	if r.body == nil {
		return nil
	}
	return r.body
}

// JSON decodes the request body as JSON into v.
func (r *Request) JSON(v any) error {
	if r.body == nil {
		return BadRequest("empty request body")
	}
	if err := json.NewDecoder(r.body).Decode(v); err != nil {
		return BadRequest("decoding JSON body: %v", err)
	}
	return nil
}

// Form parses and returns the request body as URL-encoded form values.
// The parse result is cached; repeated calls are cheap.
func (r *Request) Form() (url.Values, error) {
	if r.form != nil {
		return r.form, nil
	}
	if r.body == nil {
		r.form = url.Values{}
		return r.form, nil
	}
	b, err := io.ReadAll(r.body)
	if err != nil {
		return nil, fmt.Errorf("reading form body: %w", err)
	}
	form, err := url.ParseQuery(string(b))
	if err != nil {
		return nil, BadRequest("parsing form body: %v", err)
	}
	r.form = form
	return r.form, nil
}

// Raw returns the underlying *http.Request, or nil when the Request was
// constructed without one.
func (r *Request) Raw() *http.Request {
	return r.raw
}

// Context returns the underlying request context, falling back to
// context.Background for synthetic requests.
func (r *Request) Context() context.Context {
	if r.raw != nil {
		return r.raw.Context()
	}
	return context.Background()
}
