package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is an HTTP status, headers and body under construction.
// Builder methods return the receiver so responses read fluently:
//
//	return server.NewResponse().Status(http.StatusCreated).JSON(user)
type Response struct {
	// StatusCode is the HTTP status to send. Defaults to 200.
	StatusCode int

	// Headers are the response headers.
	Headers http.Header

	// Body is the response body.
	Body []byte
}

// NewResponse creates an empty 200 response.
func NewResponse() *Response {
	return &Response{
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
	}
}

// Status sets the HTTP status code.
func (r *Response) Status(code int) *Response {
	r.StatusCode = code
	return r
}

// Header sets a response header, replacing any existing value.
func (r *Response) Header(key, value string) *Response {
	r.Headers.Set(key, value)
	return r
}

// JSON serializes v as the response body and sets the content type.
// A value that cannot be marshalled produces a 500 plain-text response; by
// that point the handler has already returned, so there is nobody left to
// hand the error to.
func (r *Response) JSON(v any) *Response {
	b, err := json.Marshal(v)
	if err != nil {
		r.StatusCode = http.StatusInternalServerError
		return r.Text(fmt.Sprintf("encoding response: %v", err))
	}
	r.Body = b
	r.Headers.Set("Content-Type", "application/json; charset=utf-8")
	return r
}

// Text sets a plain-text response body.
func (r *Response) Text(s string) *Response {
	r.Body = []byte(s)
	r.Headers.Set("Content-Type", "text/plain; charset=utf-8")
	return r
}

// HTML sets an HTML response body.
func (r *Response) HTML(s string) *Response {
	r.Body = []byte(s)
	r.Headers.Set("Content-Type", "text/html; charset=utf-8")
	return r
}

// Bytes sets a raw response body without touching the content type.
func (r *Response) Bytes(b []byte) *Response {
	r.Body = b
	return r
}

// Redirect turns the response into a 302 redirect to location.
func (r *Response) Redirect(location string) *Response {
	r.StatusCode = http.StatusFound
	r.Headers.Set("Location", location)
	return r
}

// Write sends the response over w. It is called exactly once, at the outer
// edge of the dispatch pipeline.
func (r *Response) Write(w http.ResponseWriter) error {
	for key, values := range r.Headers {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	if len(r.Body) > 0 && w.Header().Get("Content-Length") == "" {
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(r.Body)))
	}
	w.WriteHeader(r.StatusCode)
	if len(r.Body) == 0 {
		return nil
	}
	_, err := w.Write(r.Body)
	return err
}
