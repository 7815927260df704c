package router

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrymomot/enlighten/core/di"
)

var errorType = reflect.TypeFor[error]()

// Dispatch resolves the route's target to a callable and invokes it through
// ctx. String and []byte results are appended to the capture writer
// registered in ctx; an error result or a recovered panic propagates to the
// caller unmodified.
func (r *Router) Dispatch(rt *Route, ctx *di.Context) error {
	fn, err := r.callable(rt.target, ctx)
	if err != nil {
		return err
	}
	return ctx.Invoke(fn, rt.target.args...)
}

// callable resolves a target variant to an invokable value. Direct callables
// pass through; controller references construct the controller via the
// Context and bind the named exported method.
func (r *Router) callable(t Target, ctx *di.Context) (any, error) {
	if t.fn != nil {
		return t.fn, nil
	}

	name, method, ok := strings.Cut(t.ref, "@")
	if !ok || name == "" || method == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, t.ref)
	}

	ctor, ok := r.controllers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownController, name)
	}

	results, err := ctx.Call(ctor)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: constructor for %q returns nothing", ErrInvalidTarget, name)
	}
	if last := results[len(results)-1]; last.Type().Implements(errorType) {
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
		results = results[:len(results)-1]
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: constructor for %q returns only an error", ErrInvalidTarget, name)
	}

	m := results[0].MethodByName(method)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, t.ref)
	}
	return m.Interface(), nil
}
