package enlighten_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enlighten"
	"github.com/dmitrymomot/enlighten/core/di"
	"github.com/dmitrymomot/enlighten/core/filters"
	"github.com/dmitrymomot/enlighten/core/router"
	"github.com/dmitrymomot/enlighten/hooks"
)

func TestHandler(t *testing.T) {
	t.Parallel()

	t.Run("serves_matched_route", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/hello/{name}", router.Func(func(name string) string {
			return "Hello, " + name + "!"
		}, di.Named("name")))

		w := httptest.NewRecorder()
		enlighten.Handler(r, nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hello/go", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Hello, go!", w.Body.String())
	})

	t.Run("serves_404_for_unknown_path", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		enlighten.Handler(router.New(), nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("head_request_sends_headers_without_body", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Handle("/pots", router.Func(func() string { return "pot listing" }))

		w := httptest.NewRecorder()
		enlighten.Handler(r, nil).ServeHTTP(w, httptest.NewRequest(http.MethodHead, "/pots", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("shared_router_isolates_request_state", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/echo/{word}", router.Func(func(word string) string {
			return word
		}, di.Named("word")))
		h := enlighten.Handler(r, nil)

		first := httptest.NewRecorder()
		h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/echo/one", nil))
		second := httptest.NewRecorder()
		h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/echo/two", nil))

		assert.Equal(t, "one", first.Body.String())
		assert.Equal(t, "two", second.Body.String())
	})

	t.Run("request_id_hook_sets_header", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/x", router.Func(func() string { return "ok" }))

		f := filters.New()
		f.Register(filters.BeforeRoute, hooks.RequestID())

		w := httptest.NewRecorder()
		enlighten.Handler(r, f).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}
