package appcore

import (
	"context"
	"time"
)

// HealthChecker is one probe of the readiness view, for example a storage ping
// or the state of the event bus breaker.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) HealthStatus
}

// HealthStatus is the outcome of a single probe. Details are shown on /health/details.
type HealthStatus struct {
	Healthy   bool           `json:"healthy"`
	Message   string         `json:"message,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	CheckedAt time.Time      `json:"checked_at"`
}

// Healthy returns a passing status stamped with the current time.
func Healthy(message string, details map[string]any) HealthStatus {
	return HealthStatus{Healthy: true, Message: message, Details: details, CheckedAt: time.Now()}
}

// Unhealthy returns a failing status stamped with the current time.
func Unhealthy(message string, details map[string]any) HealthStatus {
	return HealthStatus{Message: message, Details: details, CheckedAt: time.Now()}
}
