package request

import (
	"net/http"
	"net/url"
	"os"
	"strings"
)

// FromHTTP builds a Request from a standard library request, parsing form
// bodies (including multipart uploads, which are spooled to temporary files)
// and exposing headers through CGI-style environment variables.
func FromHTTP(hr *http.Request) (*Request, error) {
	r := New(hr.Method, hr.URL.RequestURI())
	r.query = hr.URL.Query()

	ct := hr.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := hr.ParseMultipartForm(32 << 20); err != nil {
			return nil, err
		}
		for field, parts := range hr.MultipartForm.File {
			if len(parts) == 0 {
				continue
			}
			u, err := spoolUpload(parts[0])
			if err != nil {
				return nil, err
			}
			r.uploads[field] = u
		}
	} else if err := hr.ParseForm(); err != nil {
		return nil, err
	}
	r.post = hr.PostForm

	for _, c := range hr.Cookies() {
		r.cookies[c.Name] = c.Value
	}

	r.env["REQUEST_METHOD"] = hr.Method
	r.env["REQUEST_URI"] = hr.URL.RequestURI()
	r.env["QUERY_STRING"] = hr.URL.RawQuery
	r.env["REMOTE_ADDR"] = hr.RemoteAddr
	r.env["SERVER_PROTOCOL"] = hr.Proto
	if hr.Host != "" {
		r.env["HTTP_HOST"] = hr.Host
	}
	for name, vals := range hr.Header {
		if len(vals) == 0 {
			continue
		}
		key := "HTTP_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
		r.env[key] = vals[0]
	}

	return r, nil
}

// FromEnviron builds a Request from CGI-style process environment variables:
// REQUEST_METHOD, REQUEST_URI, QUERY_STRING, HTTP_COOKIE, and the rest of
// the environment as server variables. Missing method and URI default to
// "GET" and "/".
func FromEnviron() *Request {
	env := make(map[string]string, len(os.Environ()))
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	method := env["REQUEST_METHOD"]
	if method == "" {
		method = http.MethodGet
	}
	uri := env["REQUEST_URI"]
	if uri == "" {
		uri = "/"
	}

	r := New(method, uri, WithEnv(env))

	if qs := env["QUERY_STRING"]; qs != "" && len(r.query) == 0 {
		if q, err := url.ParseQuery(qs); err == nil {
			r.query = q
		}
	}
	r.cookies = parseCookieHeader(env["HTTP_COOKIE"])

	return r
}
