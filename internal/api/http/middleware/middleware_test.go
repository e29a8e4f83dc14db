package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func statusHandler(code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
		_, _ = w.Write([]byte("body"))
	})
}

func TestLogging_LevelByStatus(t *testing.T) {
	tests := []struct {
		name  string
		code  int
		level zapcore.Level
	}{
		{name: "ok", code: http.StatusCreated, level: zapcore.InfoLevel},
		{name: "client error", code: http.StatusUnprocessableEntity, level: zapcore.WarnLevel},
		{name: "server error", code: http.StatusInternalServerError, level: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			handler := Logging(zap.New(core))(statusHandler(tt.code))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cards", nil))

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, "http request", entry.Message)

			fields := entry.ContextMap()
			assert.Equal(t, int64(tt.code), fields["status"])
			assert.Equal(t, "/cards", fields["path"])
			assert.Equal(t, int64(4), fields["bytes"])
		})
	}
}

func TestRateLimit(t *testing.T) {
	handler := RateLimit(1, 2, zaptest.NewLogger(t))(statusHandler(http.StatusOK))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/card?id=x", nil))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestMetrics_PassesThrough(t *testing.T) {
	handler := Metrics()(statusHandler(http.StatusNotFound))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/card?id=missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "body", rec.Body.String())
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "/cards", normalizePath("/cards"))
	assert.Equal(t, "/card", normalizePath("/card"))
	assert.Equal(t, "/metrics", normalizePath("/metrics"))
	assert.Equal(t, "other", normalizePath("/card/0123456789abcdef"))
}
