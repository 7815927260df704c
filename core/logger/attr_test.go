package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/enlighten/core/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "boom", attr.Value.Any().(error).Error())
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	assert.Equal(t, slog.String("request_id", "abc"), logger.RequestID("abc"))
}

func TestRequestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.String("method", "GET"), logger.Method("GET"))
	assert.Equal(t, slog.String("path", "/pots"), logger.Path("/pots"))
	assert.Equal(t, slog.Int("status", 404), logger.Status(404))
	assert.Equal(t, slog.String("component", "server"), logger.Component("server"))
	assert.Equal(t, slog.Duration("duration", time.Second), logger.Duration(time.Second))
}
