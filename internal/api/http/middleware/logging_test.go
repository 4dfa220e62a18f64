package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specflow/quote-server/internal/logger"
)

func TestLogging_Handle(t *testing.T) {
	var buf bytes.Buffer
	l := &logger.Logger{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	logging := NewLogging(l)
	wrapped := logging.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/leads/absent", nil)
	w := httptest.NewRecorder()

	wrapped.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	out := buf.String()
	assert.Contains(t, out, "request completed")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/api/admin/leads/absent")
	assert.Contains(t, out, "status=404")
}

func TestLogging_Handle_DefaultsToOK(t *testing.T) {
	var buf bytes.Buffer
	l := &logger.Logger{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	logging := NewLogging(l)
	wrapped := logging.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, buf.String(), "status=200")
}
