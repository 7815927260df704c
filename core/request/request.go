// Package request provides the HTTP request value object consumed by the
// routing and dispatch pipeline: method, URI, query and post fields, cookies,
// server environment variables, and normalized file uploads.
package request

import (
	"net/http"
	"net/url"
	"strings"
)

// Request is an immutable-ish carrier of one incoming HTTP request. Build one
// with New, FromHTTP, or FromEnviron.
type Request struct {
	method  string
	uri     string // path with optional query string, as received
	query   url.Values
	post    url.Values
	cookies map[string]string
	env     map[string]string
	uploads map[string]Upload
}

// Option configures a Request during construction.
type Option func(*Request)

// WithQuery sets the query parameters explicitly, replacing any parsed from
// the URI.
func WithQuery(q url.Values) Option {
	return func(r *Request) { r.query = q }
}

// WithPost sets the posted form fields.
func WithPost(p url.Values) Option {
	return func(r *Request) { r.post = p }
}

// WithCookie adds a cookie.
func WithCookie(name, value string) Option {
	return func(r *Request) { r.cookies[name] = value }
}

// WithEnv merges server environment variables into the request.
func WithEnv(env map[string]string) Option {
	return func(r *Request) {
		for k, v := range env {
			r.env[k] = v
		}
	}
}

// WithUploads sets the file upload collection.
func WithUploads(uploads map[string]Upload) Option {
	return func(r *Request) { r.uploads = uploads }
}

// New creates a Request for the given method and URI. A query string in the
// URI is parsed into the query parameters but excluded from Path.
func New(method, uri string, opts ...Option) *Request {
	r := &Request{
		method:  method,
		uri:     uri,
		query:   url.Values{},
		post:    url.Values{},
		cookies: make(map[string]string),
		env:     make(map[string]string),
		uploads: make(map[string]Upload),
	}

	if i := strings.IndexByte(uri, '?'); i >= 0 {
		if q, err := url.ParseQuery(uri[i+1:]); err == nil {
			r.query = q
		}
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Method returns the HTTP method as received, without case normalization.
func (r *Request) Method() string { return r.method }

// URI returns the full request URI, including any query string.
func (r *Request) URI() string { return r.uri }

// Path returns the URI path with the query string excluded.
func (r *Request) Path() string {
	if i := strings.IndexByte(r.uri, '?'); i >= 0 {
		return r.uri[:i]
	}
	return r.uri
}

// Query returns the first value of the named query parameter.
func (r *Request) Query(key string) string { return r.query.Get(key) }

// QueryValues returns all query parameters.
func (r *Request) QueryValues() url.Values { return r.query }

// Post returns the first value of the named posted form field.
func (r *Request) Post(key string) string { return r.post.Get(key) }

// PostValues returns all posted form fields, including bracket-keyed ones.
func (r *Request) PostValues() url.Values { return r.post }

// PostMap collects nested form fields posted under bracket syntax, mapping
// "prefix[a]=x&prefix[b]=y" to {"a": "x", "b": "y"}.
func (r *Request) PostMap(prefix string) map[string]string {
	out := make(map[string]string)
	open := prefix + "["
	for key, vals := range r.post {
		if len(vals) == 0 || !strings.HasPrefix(key, open) || !strings.HasSuffix(key, "]") {
			continue
		}
		inner := key[len(open) : len(key)-1]
		if inner != "" {
			out[inner] = vals[0]
		}
	}
	return out
}

// Cookie returns the named cookie value.
func (r *Request) Cookie(name string) (string, bool) {
	v, ok := r.cookies[name]
	return v, ok
}

// Env returns the named server environment variable, or "" if unset.
func (r *Request) Env(key string) string { return r.env[key] }

// Upload returns the resolved upload for the given form field.
func (r *Request) Upload(field string) (Upload, bool) {
	u, ok := r.uploads[field]
	return u, ok
}

// Uploads returns the resolved upload collection.
func (r *Request) Uploads() map[string]Upload { return r.uploads }

// parseCookieHeader splits a Cookie header value into name/value pairs.
func parseCookieHeader(header string) map[string]string {
	out := make(map[string]string)
	if header == "" {
		return out
	}
	hr := http.Request{Header: http.Header{"Cookie": {header}}}
	for _, c := range hr.Cookies() {
		out[c.Name] = c.Value
	}
	return out
}
