package router

import (
	"net/http"
	"regexp"
	"sync"

	"github.com/dmitrymomot/enlighten/core/di"
)

// Canonical HTTP method constants accepted as route constraints. Comparison
// against the request method is exact-string and case-sensitive.
const (
	MethodGet     = http.MethodGet
	MethodPost    = http.MethodPost
	MethodPut     = http.MethodPut
	MethodPatch   = http.MethodPatch
	MethodHead    = http.MethodHead
	MethodOptions = http.MethodOptions
	MethodDelete  = http.MethodDelete
)

// methods is the set of verbs accepted by Method registration.
var methods = map[string]bool{
	MethodGet:     true,
	MethodPost:    true,
	MethodPut:     true,
	MethodPatch:   true,
	MethodHead:    true,
	MethodOptions: true,
	MethodDelete:  true,
}

// Target is what a matched route invokes. It is a tagged union of a direct
// callable and a controller-method reference.
type Target struct {
	fn   any
	ref  string
	args []di.Arg
}

// Func wraps a direct callable. The arg specs align positionally with the
// callable's parameters; positions without a spec resolve by type.
func Func(fn any, args ...di.Arg) Target {
	return Target{fn: fn, args: args}
}

// Action references a registered controller method, e.g. "Users@Show". The
// controller constructor and the method resolve through the Context at
// dispatch time; the arg specs apply to the method's parameters.
func Action(ref string, args ...di.Arg) Target {
	return Target{ref: ref, args: args}
}

// Route is one pattern-to-target binding with an optional method constraint.
// It is immutable after registration except for the lazy, idempotent
// compilation of its matcher.
type Route struct {
	pattern string
	target  Target
	method  string // empty means unconstrained

	once  sync.Once
	rx    *regexp.Regexp
	rxErr error
}

// Pattern returns the route's registered pattern.
func (r *Route) Pattern() string { return r.pattern }

// Method returns the route's method constraint, or "" if unconstrained.
func (r *Route) Method() string { return r.method }

// compile builds the matcher once. Repeated calls return the same result.
func (r *Route) compile() (*regexp.Regexp, error) {
	r.once.Do(func() {
		r.rx, r.rxErr = compilePattern(r.pattern)
	})
	return r.rx, r.rxErr
}

// Match tests path against the route's pattern. On success it returns the
// captured value for each dynamic segment, keyed by segment name. Matching
// is anchored: partial and prefix matches never succeed.
func (r *Route) Match(path string) (map[string]string, bool) {
	rx, err := r.compile()
	if err != nil {
		return nil, false
	}

	m := rx.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}

	params := make(map[string]string)
	for i, name := range rx.SubexpNames() {
		if i > 0 && name != "" {
			params[name] = m[i]
		}
	}
	return params, true
}

// allows checks the method constraint. The comparison is exact-string.
func (r *Route) allows(method string) bool {
	return r.method == "" || r.method == method
}
