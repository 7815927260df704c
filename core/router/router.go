package router

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/enlighten/core/di"
	"github.com/dmitrymomot/enlighten/core/request"
)

// Router holds an ordered collection of routes. Registration order is
// precedence order: the first route passing both the method check and the
// pattern match wins. Resolution is stateless per call, so one Router is
// reusable across requests; captures go into the caller's Context.
type Router struct {
	routes       []*Route
	subdirectory string
	controllers  map[string]any
}

// Option configures a Router during creation.
type Option func(*Router)

// WithSubdirectory sets a URI prefix stripped from request paths before
// matching. Paths outside the subdirectory match no route.
func WithSubdirectory(prefix string) Option {
	return func(r *Router) {
		r.subdirectory = strings.TrimSuffix(prefix, "/")
	}
}

// New creates an empty Router.
func New(opts ...Option) *Router {
	r := &Router{controllers: make(map[string]any)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get registers a route constrained to GET requests.
func (r *Router) Get(pattern string, t Target) *Route { return r.handle(MethodGet, pattern, t) }

// Post registers a route constrained to POST requests.
func (r *Router) Post(pattern string, t Target) *Route { return r.handle(MethodPost, pattern, t) }

// Put registers a route constrained to PUT requests.
func (r *Router) Put(pattern string, t Target) *Route { return r.handle(MethodPut, pattern, t) }

// Patch registers a route constrained to PATCH requests.
func (r *Router) Patch(pattern string, t Target) *Route { return r.handle(MethodPatch, pattern, t) }

// Head registers a route constrained to HEAD requests.
func (r *Router) Head(pattern string, t Target) *Route { return r.handle(MethodHead, pattern, t) }

// Options registers a route constrained to OPTIONS requests.
func (r *Router) Options(pattern string, t Target) *Route { return r.handle(MethodOptions, pattern, t) }

// Delete registers a route constrained to DELETE requests.
func (r *Router) Delete(pattern string, t Target) *Route { return r.handle(MethodDelete, pattern, t) }

// Handle registers a route with no method constraint.
func (r *Router) Handle(pattern string, t Target) *Route { return r.handle("", pattern, t) }

// Method registers a route constrained to one canonical HTTP method.
// Panics on a verb outside the canonical set; constraints are exact-string,
// so a lowercased verb would never match.
func (r *Router) Method(method, pattern string, t Target) *Route {
	if !methods[method] {
		panic(fmt.Errorf("%w: %s", ErrInvalidMethod, method))
	}
	return r.handle(method, pattern, t)
}

// Controller registers a constructor under a name referencable from Action
// targets. The constructor's parameters resolve through the Context at
// dispatch time; it returns the controller instance, optionally with an
// error.
func (r *Router) Controller(name string, ctor any) {
	if name == "" || strings.ContainsRune(name, '@') {
		panic(fmt.Errorf("%w: controller name %q", ErrInvalidTarget, name))
	}
	if ctor == nil {
		panic(fmt.Errorf("%w: controller %q", ErrNilTarget, name))
	}
	r.controllers[name] = ctor
}

// Routes returns the registered method/pattern pairs in precedence order.
func (r *Router) Routes() []RouteInfo {
	out := make([]RouteInfo, 0, len(r.routes))
	for _, rt := range r.routes {
		out = append(out, RouteInfo{Method: rt.method, Pattern: rt.pattern})
	}
	return out
}

// RouteInfo describes a registered route for introspection.
type RouteInfo struct {
	Method  string
	Pattern string
}

// Route resolves req to the first matching route, or (nil, false) when no
// route matches; a miss is a normal outcome, never an error. On a match the
// captured values and the route itself are registered into ctx before
// returning.
func (r *Router) Route(req *request.Request, ctx *di.Context) (*Route, bool) {
	path, ok := r.effectivePath(req.Path())
	if !ok {
		return nil, false
	}

	for _, rt := range r.routes {
		// Method constraint first: cheaper than the pattern match.
		if !rt.allows(req.Method()) {
			continue
		}
		params, matched := rt.Match(path)
		if !matched {
			continue
		}

		for name, val := range params {
			ctx.SetValue(name, val)
		}
		di.Register(ctx, rt)
		return rt, true
	}

	return nil, false
}

// effectivePath strips the configured subdirectory prefix. A path outside
// the subdirectory resolves to no route at all.
func (r *Router) effectivePath(path string) (string, bool) {
	if r.subdirectory == "" {
		return path, true
	}
	if !strings.HasPrefix(path, r.subdirectory) {
		return "", false
	}
	p := strings.TrimPrefix(path, r.subdirectory)
	if p == "" {
		p = "/"
	}
	return p, true
}

// handle validates and appends a route. The pattern is compiled here so
// malformed patterns fail at registration, not at match time.
func (r *Router) handle(method, pattern string, t Target) *Route {
	if len(pattern) == 0 || pattern[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern))
	}
	if t.fn == nil && t.ref == "" {
		panic(fmt.Errorf("%w: '%s'", ErrNilTarget, pattern))
	}

	rt := &Route{pattern: pattern, target: t, method: method}
	if _, err := rt.compile(); err != nil {
		panic(err)
	}

	r.routes = append(r.routes, rt)
	return rt
}
