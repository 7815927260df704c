package request_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enlighten/core/request"
)

func TestRequest_New(t *testing.T) {
	t.Parallel()

	t.Run("parses_query_from_uri", func(t *testing.T) {
		t.Parallel()

		req := request.New(http.MethodGet, "/pots?test=abc&page=2")

		assert.Equal(t, "/pots", req.Path())
		assert.Equal(t, "/pots?test=abc&page=2", req.URI())
		assert.Equal(t, "abc", req.Query("test"))
		assert.Equal(t, "2", req.Query("page"))
	})

	t.Run("path_without_query_is_uri", func(t *testing.T) {
		t.Parallel()

		req := request.New(http.MethodGet, "/pots")
		assert.Equal(t, "/pots", req.Path())
		assert.Empty(t, req.Query("test"))
	})

	t.Run("method_is_kept_verbatim", func(t *testing.T) {
		t.Parallel()

		req := request.New("patch", "/x")
		assert.Equal(t, "patch", req.Method())
	})

	t.Run("options_populate_fields", func(t *testing.T) {
		t.Parallel()

		req := request.New(http.MethodPost, "/x",
			request.WithPost(url.Values{"name": {"pot"}}),
			request.WithCookie("session", "s3cret"),
			request.WithEnv(map[string]string{"REMOTE_ADDR": "10.0.0.1"}),
		)

		assert.Equal(t, "pot", req.Post("name"))
		c, ok := req.Cookie("session")
		require.True(t, ok)
		assert.Equal(t, "s3cret", c)
		assert.Equal(t, "10.0.0.1", req.Env("REMOTE_ADDR"))
	})
}

func TestRequest_PostMap(t *testing.T) {
	t.Parallel()

	req := request.New(http.MethodPost, "/x", request.WithPost(url.Values{
		"user[name]":  {"alice"},
		"user[email]": {"a@example.com"},
		"plain":       {"value"},
	}))

	nested := req.PostMap("user")
	assert.Equal(t, map[string]string{"name": "alice", "email": "a@example.com"}, nested)
	assert.Empty(t, req.PostMap("missing"))
}

func TestRequest_FromHTTP(t *testing.T) {
	t.Parallel()

	t.Run("carries_method_uri_query_and_cookies", func(t *testing.T) {
		t.Parallel()

		hr := httptest.NewRequest(http.MethodPatch, "/pots?test=abc", nil)
		hr.AddCookie(&http.Cookie{Name: "session", Value: "tok"})

		req, err := request.FromHTTP(hr)
		require.NoError(t, err)

		assert.Equal(t, http.MethodPatch, req.Method())
		assert.Equal(t, "/pots", req.Path())
		assert.Equal(t, "abc", req.Query("test"))
		c, ok := req.Cookie("session")
		require.True(t, ok)
		assert.Equal(t, "tok", c)
	})

	t.Run("parses_form_body", func(t *testing.T) {
		t.Parallel()

		body := strings.NewReader("name=pot&user%5Brole%5D=admin")
		hr := httptest.NewRequest(http.MethodPost, "/x", body)
		hr.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		req, err := request.FromHTTP(hr)
		require.NoError(t, err)

		assert.Equal(t, "pot", req.Post("name"))
		assert.Equal(t, map[string]string{"role": "admin"}, req.PostMap("user"))
	})

	t.Run("exposes_headers_as_env_vars", func(t *testing.T) {
		t.Parallel()

		hr := httptest.NewRequest(http.MethodGet, "/x", nil)
		hr.Header.Set("X-Request-ID", "abc-123")

		req, err := request.FromHTTP(hr)
		require.NoError(t, err)

		assert.Equal(t, "abc-123", req.Env("HTTP_X_REQUEST_ID"))
		assert.Equal(t, http.MethodGet, req.Env("REQUEST_METHOD"))
	})
}

func TestRequest_FromEnviron(t *testing.T) {
	t.Setenv("REQUEST_METHOD", http.MethodPost)
	t.Setenv("REQUEST_URI", "/submit?kind=quick")
	t.Setenv("HTTP_COOKIE", "session=tok; theme=dark")

	req := request.FromEnviron()

	assert.Equal(t, http.MethodPost, req.Method())
	assert.Equal(t, "/submit", req.Path())
	assert.Equal(t, "quick", req.Query("kind"))

	c, ok := req.Cookie("theme")
	require.True(t, ok)
	assert.Equal(t, "dark", c)
}
