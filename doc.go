// Package enlighten is a small HTTP micro-framework: a pattern-based router
// with dynamic segment capture, a dependency context that resolves handler
// arguments by type or by named capture, and a before/after/exception filter
// pipeline orchestrated by a per-request Application lifecycle.
//
// A minimal application:
//
//	r := router.New()
//	r.Get("/hello/{name}", router.Func(func(name string) string {
//		return "Hello, " + name + "!"
//	}, di.Named("name")))
//
//	http.ListenAndServe(":8080", enlighten.Handler(r, nil))
//
// Each incoming request gets its own Application instance, which runs the
// lifecycle: before-route filters, route resolution (200 on a match, 404 on
// a miss), dispatch, after-route filters, and guaranteed finalization of the
// captured output into the response. Errors and recovered panics from any of
// these steps funnel into the on-exception filters; with no exception filter
// registered, the error escapes Start after cleanup.
package enlighten
