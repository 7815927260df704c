// Package filters implements the lifecycle hook registry: ordered lists of
// callables attached to the fixed before-route, after-route, and
// on-exception hook points.
package filters

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/enlighten/core/di"
)

// Hook names the lifecycle points a filter can attach to.
type Hook string

// The fixed hook set. Registration under any other name panics.
const (
	BeforeRoute Hook = "before_route"
	AfterRoute  Hook = "after_route"
	OnException Hook = "on_exception"
)

// Registration errors, raised as panics.
var (
	ErrUnknownHook = errors.New("unknown filter hook")
	ErrNilCallable = errors.New("filter callable cannot be nil")
)

type entry struct {
	fn   any
	args []di.Arg
}

// Filters maps each hook to its ordered callable list. It is mutable
// single-owner state scoped to one Application; no locking.
type Filters struct {
	hooks map[Hook][]entry
}

// New creates an empty Filters registry.
func New() *Filters {
	return &Filters{hooks: make(map[Hook][]entry)}
}

// Register appends a callable to the hook's ordered list. The arg specs
// align positionally with the callable's parameters, exactly as in route
// dispatch.
func (f *Filters) Register(hook Hook, fn any, args ...di.Arg) {
	switch hook {
	case BeforeRoute, AfterRoute, OnException:
	default:
		panic(fmt.Errorf("%w: %q", ErrUnknownHook, hook))
	}
	if fn == nil {
		panic(fmt.Errorf("%w: hook %q", ErrNilCallable, hook))
	}
	f.hooks[hook] = append(f.hooks[hook], entry{fn: fn, args: args})
}

// Len returns the number of callables registered for a hook.
func (f *Filters) Len(hook Hook) int {
	return len(f.hooks[hook])
}

// Trigger invokes every callable registered for the hook in registration
// order, each resolved through ctx. The handled result reports only whether
// at least one callable was registered, independent of what the callables
// did; a hook with zero registrations is a no-op signaling "not handled".
// A callable error aborts the remaining callables and propagates.
func (f *Filters) Trigger(hook Hook, ctx *di.Context) (handled bool, err error) {
	entries := f.hooks[hook]
	handled = len(entries) > 0

	for _, e := range entries {
		if err := ctx.Invoke(e.fn, e.args...); err != nil {
			return handled, err
		}
	}

	return handled, nil
}
