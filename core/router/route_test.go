package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enlighten/core/router"
)

func noop() {}

func TestRoute_Match(t *testing.T) {
	t.Parallel()

	newRoute := func(pattern string) *router.Route {
		return router.New().Handle(pattern, router.Func(noop))
	}

	t.Run("captures_single_dynamic_segment", func(t *testing.T) {
		t.Parallel()

		rt := newRoute("/users/{id}")

		params, ok := rt.Match("/users/42")
		require.True(t, ok)
		assert.Equal(t, "42", params["id"])
	})

	t.Run("captures_multiple_segments", func(t *testing.T) {
		t.Parallel()

		rt := newRoute("/posts/{year}/{slug}")

		params, ok := rt.Match("/posts/2026/hello-world")
		require.True(t, ok)
		assert.Equal(t, "2026", params["year"])
		assert.Equal(t, "hello-world", params["slug"])
	})

	t.Run("rejects_wrong_literal_prefix", func(t *testing.T) {
		t.Parallel()

		rt := newRoute("/users/{id}")

		_, ok := rt.Match("/accounts/42")
		assert.False(t, ok)
	})

	t.Run("rejects_wrong_segment_count", func(t *testing.T) {
		t.Parallel()

		rt := newRoute("/users/{id}")

		_, ok := rt.Match("/users/42/edit")
		assert.False(t, ok)

		_, ok = rt.Match("/users")
		assert.False(t, ok)
	})

	t.Run("anchored_matching_rejects_prefix_match", func(t *testing.T) {
		t.Parallel()

		rt := newRoute("/pots")

		_, ok := rt.Match("/pots/extra")
		assert.False(t, ok)

		_, ok = rt.Match("/pots")
		assert.True(t, ok)
	})

	t.Run("static_pattern_is_literal_equality", func(t *testing.T) {
		t.Parallel()

		// The dot must not act as a regexp wildcard.
		rt := newRoute("/feed.xml")

		_, ok := rt.Match("/feedaxml")
		assert.False(t, ok)

		_, ok = rt.Match("/feed.xml")
		assert.True(t, ok)
	})

	t.Run("custom_regexp_fragment", func(t *testing.T) {
		t.Parallel()

		rt := newRoute(`/users/{id:\d+}`)

		params, ok := rt.Match("/users/42")
		require.True(t, ok)
		assert.Equal(t, "42", params["id"])

		_, ok = rt.Match("/users/abc")
		assert.False(t, ok)
	})

	t.Run("custom_fragment_with_nested_braces", func(t *testing.T) {
		t.Parallel()

		rt := newRoute(`/archive/{year:\d{4}}`)

		params, ok := rt.Match("/archive/2026")
		require.True(t, ok)
		assert.Equal(t, "2026", params["year"])

		_, ok = rt.Match("/archive/26")
		assert.False(t, ok)
	})

	t.Run("default_fragment_stops_at_slash", func(t *testing.T) {
		t.Parallel()

		rt := newRoute("/files/{name}")

		_, ok := rt.Match("/files/a/b")
		assert.False(t, ok)
	})
}

func TestRouter_PatternValidation(t *testing.T) {
	t.Parallel()

	t.Run("panics_without_leading_slash", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			router.New().Handle("users", router.Func(noop))
		})
	})

	t.Run("panics_on_missing_closing_brace", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			router.New().Handle("/users/{id", router.Func(noop))
		})
	})

	t.Run("panics_on_duplicate_param", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			router.New().Handle("/{id}/{id}", router.Func(noop))
		})
	})

	t.Run("panics_on_invalid_param_name", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			router.New().Handle("/{1bad}", router.Func(noop))
		})
	})

	t.Run("panics_on_invalid_custom_regexp", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			router.New().Handle("/{id:[}", router.Func(noop))
		})
	})

	t.Run("panics_on_nil_target", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			router.New().Handle("/x", router.Func(nil))
		})
	})

	t.Run("panics_on_non_canonical_method", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			router.New().Method("get", "/x", router.Func(noop))
		})
	})
}
