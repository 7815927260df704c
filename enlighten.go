package enlighten

import (
	"net/http"

	"github.com/dmitrymomot/enlighten/core/di"
	"github.com/dmitrymomot/enlighten/core/filters"
	"github.com/dmitrymomot/enlighten/core/request"
	"github.com/dmitrymomot/enlighten/core/router"
)

// App orchestrates one request lifecycle from Start to completion. It owns
// the per-request dependency Context; the Router and Filters may be shared
// across App instances since resolution state lives in the Context.
type App struct {
	req       *request.Request
	router    *router.Router
	filters   *filters.Filters
	ctx       *di.Context
	transport http.ResponseWriter
}

// Option configures an App during creation.
type Option func(*App)

// WithRequest binds the request explicitly instead of building it from the
// process environment.
func WithRequest(req *request.Request) Option {
	return func(a *App) { a.req = req }
}

// WithRouter sets the router; a default empty router is constructed
// otherwise.
func WithRouter(r *router.Router) Option {
	return func(a *App) { a.router = r }
}

// WithFilters sets the filter registry.
func WithFilters(f *filters.Filters) Option {
	return func(a *App) {
		if f != nil {
			a.filters = f
		}
	}
}

// WithTransport sets where the finalized response is sent. Without a
// transport the response is only returned from Start.
func WithTransport(w http.ResponseWriter) Option {
	return func(a *App) { a.transport = w }
}

// New creates an App with an empty dependency Context and filter registry.
func New(opts ...Option) *App {
	a := &App{
		ctx:     di.NewContext(),
		filters: filters.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Context returns the App's dependency context for pre-registering
// application services resolvable by handlers and filters.
func (a *App) Context() *di.Context { return a.ctx }

// Filters returns the filter registry.
func (a *App) Filters() *filters.Filters { return a.filters }

// Router returns the router, constructing the default one if unset.
func (a *App) Router() *router.Router {
	if a.router == nil {
		a.router = router.New()
	}
	return a.router
}

// Request returns the bound request, building it from the environment if
// unset.
func (a *App) Request() *request.Request {
	if a.req == nil {
		a.req = request.FromEnviron()
	}
	return a.req
}

// bootstrap ensures the collaborators a lifecycle needs exist. It also runs
// before direct Dispatch calls that bypass Start.
func (a *App) bootstrap() {
	a.Request()
	a.Router()
}
