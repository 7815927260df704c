// Package response provides the HTTP response value object assembled during
// one request lifecycle: a status code, an ordered multi-valued header list,
// and an appendable body buffer that is transmitted exactly once.
package response

import (
	"bytes"
	"errors"
	"net/http"
)

// ErrAlreadySent is returned when Send is called more than once.
var ErrAlreadySent = errors.New("response has already been sent")

// Header is one response header entry. Repeated names are allowed and their
// relative order is preserved.
type Header struct {
	Name  string
	Value string
}

// Response accumulates the outcome of one request attempt. A fresh instance
// replaces it if an exception resets the lifecycle.
type Response struct {
	code    int
	headers []Header
	body    bytes.Buffer
	sent    bool
}

// New creates an empty Response with status 200.
func New() *Response {
	return &Response{code: http.StatusOK}
}

// Code returns the status code.
func (r *Response) Code() int { return r.code }

// SetCode sets the status code.
func (r *Response) SetCode(code int) { r.code = code }

// AddHeader appends a header entry, keeping earlier values of the same name.
func (r *Response) AddHeader(name, value string) {
	r.headers = append(r.headers, Header{Name: name, Value: value})
}

// SetHeader replaces all entries of the given name with a single value.
func (r *Response) SetHeader(name, value string) {
	kept := r.headers[:0]
	for _, h := range r.headers {
		if h.Name != name {
			kept = append(kept, h)
		}
	}
	r.headers = append(kept, Header{Name: name, Value: value})
}

// Header returns the first value of the named header.
func (r *Response) Header(name string) (string, bool) {
	for _, h := range r.headers {
		if h.Name == name {
			return h.Value, true
		}
	}
	return "", false
}

// Headers returns a copy of the ordered header list.
func (r *Response) Headers() []Header {
	out := make([]Header, len(r.headers))
	copy(out, r.headers)
	return out
}

// Write appends to the body buffer, implementing io.Writer.
func (r *Response) Write(p []byte) (int, error) {
	return r.body.Write(p)
}

// WriteString appends a string to the body buffer.
func (r *Response) WriteString(s string) {
	r.body.WriteString(s)
}

// Body returns the accumulated body bytes.
func (r *Response) Body() []byte { return r.body.Bytes() }

// Len returns the body length in bytes.
func (r *Response) Len() int { return r.body.Len() }

// Truncate discards the body, keeping code and headers. Used for HEAD
// requests where only the status line and headers are sent.
func (r *Response) Truncate() { r.body.Reset() }

// Sent reports whether the response has been transmitted.
func (r *Response) Sent() bool { return r.sent }

// Send transmits code, headers, and body over the given transport. A second
// call returns ErrAlreadySent without writing anything.
func (r *Response) Send(w http.ResponseWriter) error {
	if r.sent {
		return ErrAlreadySent
	}
	r.sent = true

	for _, h := range r.headers {
		w.Header().Add(h.Name, h.Value)
	}
	w.WriteHeader(r.code)
	_, err := w.Write(r.body.Bytes())
	return err
}
