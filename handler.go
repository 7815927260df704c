package enlighten

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/enlighten/core/filters"
	"github.com/dmitrymomot/enlighten/core/logger"
	"github.com/dmitrymomot/enlighten/core/request"
	"github.com/dmitrymomot/enlighten/core/router"
)

// Handler adapts the framework to net/http. Each incoming request gets its
// own Application wired to the shared router and filters; the response is
// sent through the http.ResponseWriter during lifecycle finalization.
//
// An error escaping Start means no exception filter handled it; by then the
// finalized 500 response has already been sent, so the error is only logged.
func Handler(rt *router.Router, f *filters.Filters, opts ...Option) http.Handler {
	log := slog.Default()

	return http.HandlerFunc(func(w http.ResponseWriter, hr *http.Request) {
		req, err := request.FromHTTP(hr)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		appOpts := append([]Option{
			WithRequest(req),
			WithRouter(rt),
			WithFilters(f),
			WithTransport(w),
		}, opts...)

		if _, err := New(appOpts...).Start(); err != nil {
			log.Error("unhandled application error",
				logger.Method(req.Method()),
				logger.Path(req.Path()),
				logger.Error(err),
			)
		}
	})
}
