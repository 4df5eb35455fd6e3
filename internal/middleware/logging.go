package middleware

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lllypuk/talentnet/internal/application/appcore"
)

const (
	// RequestIDHeader carries the request id in and out.
	RequestIDHeader = echo.HeaderXRequestID

	// RequestIDKey is the echo context key for the request id.
	RequestIDKey = "request_id"
)

// LoggingConfig holds configuration for the logging middleware.
type LoggingConfig struct {
	Logger    *slog.Logger
	SkipPaths []string
}

// DefaultLoggingConfig returns a LoggingConfig that skips probe endpoints.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Logger:    slog.Default(),
		SkipPaths: []string{"/health", "/ready", "/metrics"},
	}
}

// RequestID takes X-Request-ID from the request or generates a new one.
// The id is echoed in the response, stored in the echo context and attached
// to the request context as the correlation id of emitted domain events.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			requestID := req.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(RequestIDHeader, requestID)
			c.Set(RequestIDKey, requestID)
			c.SetRequest(req.WithContext(appcore.WithCorrelationID(req.Context(), requestID)))

			return next(c)
		}
	}
}

// Logging logs one line per request: info for 2xx/3xx, warn for 4xx, error for 5xx.
func Logging(config LoggingConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	skip := make(map[string]struct{}, len(config.SkipPaths))
	for _, path := range config.SkipPaths {
		skip[path] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := skip[c.Request().URL.Path]; ok {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				// let echo write the response so the logged status is the real one
				c.Error(err)
			}

			config.Logger.LogAttrs(c.Request().Context(), levelFor(c.Response().Status), "HTTP request",
				requestAttrs(c, time.Since(start), err)...)

			return nil
		}
	}
}

func requestAttrs(c echo.Context, latency time.Duration, err error) []slog.Attr {
	req := c.Request()
	attrs := []slog.Attr{
		slog.String("request_id", GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", c.Response().Status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.Int64("response_size", c.Response().Size),
	}
	if query := req.URL.RawQuery; query != "" {
		attrs = append(attrs, slog.String("query", query))
	}
	if err != nil {
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code >= statusServerError {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
	}
	return attrs
}

const (
	statusClientError = 400
	statusServerError = 500
)

func levelFor(status int) slog.Level {
	switch {
	case status >= statusServerError:
		return slog.LevelError
	case status >= statusClientError:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// GetRequestID retrieves the request id from the echo context.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
