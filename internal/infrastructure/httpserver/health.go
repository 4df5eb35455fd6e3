// Package httpserver provides the echo server, router, response envelope
// and health endpoints of the API.
package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health status values.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	// StatusDegraded marks an optional component that is failing.
	StatusDegraded = "degraded"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// ComponentStatus is one line of the /health/details report.
type ComponentStatus struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the body of every health endpoint.
type HealthResponse struct {
	Status     string            `json:"status"`
	Components []ComponentStatus `json:"components,omitempty"`
}

// HealthChecker reports readiness and per-component status.
type HealthChecker interface {
	IsReady(ctx context.Context) bool
	GetHealthStatus(ctx context.Context) []ComponentStatus
}

// RegisterHealthEndpoints serves the probes outside the API prefix:
//   - GET /health: liveness, 200 while the process runs
//   - GET /ready: 503 while a required component is down
//   - GET /health/details: every component; 503 when one is unhealthy
//
// A nil checker reports ready with no components.
func (r *Router) RegisterHealthEndpoints(checker HealthChecker) {
	components := func(ctx context.Context) []ComponentStatus {
		if checker == nil {
			return nil
		}
		return checker.GetHealthStatus(ctx)
	}

	r.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: StatusHealthy})
	})

	r.echo.GET("/ready", func(c echo.Context) error {
		ctx := c.Request().Context()
		code, status := http.StatusOK, StatusReady
		if checker != nil && !checker.IsReady(ctx) {
			code, status = http.StatusServiceUnavailable, StatusNotReady
		}
		return c.JSON(code, HealthResponse{Status: status, Components: components(ctx)})
	})

	r.echo.GET("/health/details", func(c echo.Context) error {
		list := components(c.Request().Context())
		status := overallStatus(list)
		code := http.StatusOK
		if status == StatusUnhealthy {
			code = http.StatusServiceUnavailable
		}
		return c.JSON(code, HealthResponse{Status: status, Components: list})
	})
}

// overallStatus: unhealthy wins over degraded, degraded over healthy.
func overallStatus(components []ComponentStatus) string {
	status := StatusHealthy
	for _, comp := range components {
		switch comp.Status {
		case StatusUnhealthy:
			return StatusUnhealthy
		case StatusDegraded:
			status = StatusDegraded
		}
	}
	return status
}
