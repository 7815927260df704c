// Package logger provides slog attribute helpers shared by the server and
// the built-in filters. Helpers return the empty Attr for nil inputs, so
// call sites never need explicit nil checks.
package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// Returns the empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component identifies the emitting subsystem.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// Method creates an attribute for an HTTP method.
func Method(m string) slog.Attr {
	return slog.String("method", m)
}

// Path creates an attribute for a request path.
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Status creates an attribute for a response status code.
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// RequestID creates an attribute for a request identifier.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}
