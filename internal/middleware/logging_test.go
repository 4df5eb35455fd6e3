package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/middleware"
)

func newLoggedEcho(buf *bytes.Buffer) *echo.Echo {
	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(middleware.Logging(middleware.LoggingConfig{
		Logger:    slog.New(slog.NewJSONHandler(buf, nil)),
		SkipPaths: []string{"/health"},
	}))
	return e
}

func TestRequestID_GeneratedAndPropagated(t *testing.T) {
	// Arrange
	var logs bytes.Buffer
	e := newLoggedEcho(&logs)
	var correlationID string
	e.GET("/api/v1/skills", func(c echo.Context) error {
		correlationID = appcore.CorrelationID(c.Request().Context())
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/skills", nil)
	rec := httptest.NewRecorder()

	// Act
	e.ServeHTTP(rec, req)

	// Assert
	requestID := rec.Header().Get(middleware.RequestIDHeader)
	require.NotEmpty(t, requestID)
	assert.Equal(t, requestID, correlationID)
	assert.Contains(t, logs.String(), `"request_id":"`+requestID+`"`)
}

func TestRequestID_KeepsIncomingHeader(t *testing.T) {
	var logs bytes.Buffer
	e := newLoggedEcho(&logs)
	e.GET("/x", func(c echo.Context) error {
		return c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "req-123", rec.Body.String())
}

func TestLogging_Levels(t *testing.T) {
	tests := []struct {
		name      string
		handler   echo.HandlerFunc
		wantLevel string
		wantCode  int
	}{
		{
			name:      "success is info",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLevel: `"level":"INFO"`,
			wantCode:  http.StatusOK,
		},
		{
			name:      "client error is warn",
			handler:   func(_ echo.Context) error { return echo.NewHTTPError(http.StatusNotFound) },
			wantLevel: `"level":"WARN"`,
			wantCode:  http.StatusNotFound,
		},
		{
			name:      "handler error is error",
			handler:   func(_ echo.Context) error { return errors.New("db down") },
			wantLevel: `"level":"ERROR"`,
			wantCode:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			e := newLoggedEcho(&logs)
			e.GET("/x", tt.handler)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, logs.String(), tt.wantLevel)
			assert.Contains(t, logs.String(), `"status":`)
		})
	}
}

func TestLogging_SkipPaths(t *testing.T) {
	var logs bytes.Buffer
	e := newLoggedEcho(&logs)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, logs.String())
}
