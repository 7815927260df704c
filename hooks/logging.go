package hooks

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/enlighten/core/logger"
	"github.com/dmitrymomot/enlighten/core/request"
	"github.com/dmitrymomot/enlighten/core/response"
)

// AccessLog returns an after-route filter that logs the outcome of each
// request.
func AccessLog(log *slog.Logger) any {
	return func(req *request.Request, resp *response.Response) {
		rid, _ := resp.Header("X-Request-ID")
		log.Info("request served",
			logger.Method(req.Method()),
			logger.Path(req.Path()),
			logger.Status(resp.Code()),
			logger.RequestID(rid),
		)
	}
}

// ErrorLog returns an on-exception filter that logs the failure and writes a
// plain error body. Registering it marks exceptions as handled, so the
// lifecycle produces a 500 response instead of re-raising.
func ErrorLog(log *slog.Logger) any {
	return func(err error, req *request.Request, w io.Writer) {
		log.Error("request failed",
			logger.Method(req.Method()),
			logger.Path(req.Path()),
			logger.Error(err),
		)
		_, _ = io.WriteString(w, http.StatusText(http.StatusInternalServerError))
	}
}
