package enlighten

import (
	"bytes"
	"io"
	"net/http"

	"github.com/dmitrymomot/enlighten/core/di"
	"github.com/dmitrymomot/enlighten/core/filters"
	"github.com/dmitrymomot/enlighten/core/response"
	"github.com/dmitrymomot/enlighten/core/router"
)

// Start runs one full request lifecycle and returns the assembled Response.
//
// The happy path: before-route filters, route resolution (200 and dispatch
// on a match, 404 and no dispatch on a miss), after-route filters. Any error
// or recovered panic from those steps discards the captured output, replaces
// the Response with a fresh 500, registers the error in the Context, and
// triggers the on-exception filters; if none are registered the original
// error is returned alongside the response.
//
// Finalization is guaranteed regardless of path: the capture buffer is
// appended to the body, HEAD requests get an empty body, and the response is
// sent over the configured transport exactly once.
func (a *App) Start() (resp *response.Response, err error) {
	a.bootstrap()

	di.Register(a.ctx, a)
	di.Register(a.ctx, a.req)
	di.Register(a.ctx, a.router)
	di.Register(a.ctx, a.filters)

	// The capture buffer is owned by this call and released by the deferred
	// finalization, success or failure.
	capture := &bytes.Buffer{}
	di.Register[io.Writer](a.ctx, capture)

	resp = response.New()
	di.Register(a.ctx, resp)

	defer func() {
		_, _ = capture.WriteTo(resp)
		if a.req.Method() == http.MethodHead {
			resp.Truncate()
		}
		if a.transport != nil {
			if serr := resp.Send(a.transport); serr != nil && err == nil {
				err = serr
			}
		}
	}()

	if rerr := a.run(resp); rerr != nil {
		// Discard partial output and response state, 200/404 code included.
		capture.Reset()
		resp = response.New()
		resp.SetCode(http.StatusInternalServerError)
		di.Register(a.ctx, resp)
		di.Register[error](a.ctx, rerr)

		handled, ferr := a.filters.Trigger(filters.OnException, a.ctx)
		switch {
		case !handled:
			err = rerr
		case ferr != nil:
			err = ferr
		}
	}

	return resp, err
}

// run executes the routed portion of the lifecycle. Every error it returns
// funnels into the single exception path in Start.
func (a *App) run(resp *response.Response) error {
	if _, err := a.filters.Trigger(filters.BeforeRoute, a.ctx); err != nil {
		return err
	}

	if rt, ok := a.router.Route(a.req, a.ctx); ok {
		resp.SetCode(http.StatusOK)
		if err := a.router.Dispatch(rt, a.ctx); err != nil {
			return err
		}
	} else {
		// Not an error: a miss simply yields 404 with no dispatch.
		resp.SetCode(http.StatusNotFound)
	}

	if _, err := a.filters.Trigger(filters.AfterRoute, a.ctx); err != nil {
		return err
	}

	return nil
}

// Dispatch invokes a matched route directly, outside the full lifecycle.
// The bootstrap step still runs, so a default request and router exist.
func (a *App) Dispatch(rt *router.Route) error {
	a.bootstrap()
	return a.router.Dispatch(rt, a.ctx)
}
