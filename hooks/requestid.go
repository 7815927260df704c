// Package hooks provides ready-made filter callables for common
// cross-cutting concerns: request identification, access logging, and
// exception logging. Each constructor returns a callable suitable for
// filters.Register; parameters resolve through the dependency Context.
package hooks

import (
	"github.com/dmitrymomot/enlighten/core/request"
	"github.com/dmitrymomot/enlighten/core/response"
	"github.com/google/uuid"
)

// RequestIDConfig configures the request ID filter.
type RequestIDConfig struct {
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName specifies the response header for the ID (default: "X-Request-ID")
	HeaderName string
	// UseExisting reuses an ID supplied by the client, when present
	UseExisting bool
}

// RequestID returns a before-route filter that assigns each request a unique
// identifier and exposes it on the response headers.
func RequestID() any {
	return RequestIDWithConfig(RequestIDConfig{UseExisting: true})
}

// RequestIDWithConfig returns a request ID filter with custom configuration.
func RequestIDWithConfig(cfg RequestIDConfig) any {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(req *request.Request, resp *response.Response) {
		var id string
		if cfg.UseExisting {
			id = req.Env("HTTP_X_REQUEST_ID")
		}
		if id == "" {
			id = cfg.Generator()
		}
		resp.SetHeader(cfg.HeaderName, id)
	}
}
