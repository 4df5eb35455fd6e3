// Package healthcheck provides component health checks and aggregates them
// into the readiness view served by the HTTP health endpoints.
package healthcheck

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/infrastructure/httpserver"
)

const defaultCheckTimeout = 3 * time.Second

type entry struct {
	checker  appcore.HealthChecker
	required bool
}

// Registry runs registered checkers concurrently. A failing required checker
// makes the service not ready; a failing optional one only degrades it.
type Registry struct {
	entries []entry
	timeout time.Duration
}

// NewRegistry creates an empty registry. timeout bounds each check; zero means 3s.
func NewRegistry(timeout time.Duration) *Registry {
	if timeout <= 0 {
		timeout = defaultCheckTimeout
	}
	return &Registry{timeout: timeout}
}

// Require adds checkers that gate readiness.
func (r *Registry) Require(checkers ...appcore.HealthChecker) *Registry {
	for _, c := range checkers {
		r.entries = append(r.entries, entry{checker: c, required: true})
	}
	return r
}

// Observe adds checkers that are reported but never gate readiness.
func (r *Registry) Observe(checkers ...appcore.HealthChecker) *Registry {
	for _, c := range checkers {
		r.entries = append(r.entries, entry{checker: c})
	}
	return r
}

// IsReady implements httpserver.HealthChecker.
func (r *Registry) IsReady(ctx context.Context) bool {
	statuses := r.run(ctx)
	for i, e := range r.entries {
		if e.required && !statuses[i].Healthy {
			return false
		}
	}
	return true
}

// GetHealthStatus implements httpserver.HealthChecker.
func (r *Registry) GetHealthStatus(ctx context.Context) []httpserver.ComponentStatus {
	statuses := r.run(ctx)
	components := make([]httpserver.ComponentStatus, len(r.entries))
	for i, e := range r.entries {
		status := httpserver.StatusHealthy
		switch {
		case statuses[i].Healthy:
		case e.required:
			status = httpserver.StatusUnhealthy
		default:
			status = httpserver.StatusDegraded
		}
		components[i] = httpserver.ComponentStatus{
			Name:    e.checker.Name(),
			Status:  status,
			Message: statuses[i].Message,
		}
	}
	return components
}

func (r *Registry) run(ctx context.Context) []appcore.HealthStatus {
	statuses := make([]appcore.HealthStatus, len(r.entries))
	var g errgroup.Group
	for i, e := range r.entries {
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()
			statuses[i] = e.checker.Check(checkCtx)
			return nil
		})
	}
	_ = g.Wait()
	return statuses
}

var _ httpserver.HealthChecker = (*Registry)(nil)
