package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lllypuk/talentnet/internal/infrastructure/httpserver"
)

func serve(t *testing.T, e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSetupRoutes_ReturnsServerAndRouter(t *testing.T) {
	c := newMockContainer(t)

	server, router := SetupRoutes(c)

	require.NotNil(t, server)
	require.NotNil(t, router)
	assert.Same(t, server.Echo(), router.Echo())
	assert.Equal(t, c.Config.Server.Address(), server.Address())
}

func TestSetupRoutes_HealthEndpoints(t *testing.T) {
	c := newMockContainer(t)
	_, router := SetupRoutes(c)

	tests := []struct {
		path   string
		status string
	}{
		{"/health", httpserver.StatusHealthy},
		{"/ready", httpserver.StatusReady},
		{"/health/details", httpserver.StatusHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(t, router.Echo(), http.MethodGet, tt.path, nil)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.status)
		})
	}
}

func TestSetupRoutes_APIRoutesRegistered(t *testing.T) {
	c := newMockContainer(t)
	_, router := SetupRoutes(c)

	registered := make(map[string]bool)
	for _, route := range router.Echo().Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, route := range []string{
		"POST /api/v1/users",
		"GET /api/v1/users/:id",
		"POST /api/v1/users/:id/deactivate",
		"POST /api/v1/users/:id/following/:target_id",
		"DELETE /api/v1/users/:id/following/:target_id",
		"GET /api/v1/users/:id/followers",
		"GET /api/v1/users/:id/followers/count",
		"GET /api/v1/users/:id/following",
		"GET /api/v1/users/:id/following/count",
		"POST /api/v1/mentorship/requests",
		"GET /api/v1/mentorship/requests",
		"GET /api/v1/mentorship/requests/:request_id",
		"POST /api/v1/mentorship/requests/:request_id/accept",
		"POST /api/v1/mentorship/requests/:request_id/reject",
		"POST /api/v1/skills",
		"GET /api/v1/users/:id/skills",
		"GET /api/v1/users/:id/skills/offers",
		"POST /api/v1/users/:id/skills/offers",
		"PUT /api/v1/users/:id/skills/:skill_id/acquire",
		"GET /metrics",
	} {
		assert.True(t, registered[route], "missing route %s", route)
	}
}

func TestSetupRoutes_FollowFlowPublishesMetrics(t *testing.T) {
	// Arrange
	c := newMockContainer(t)
	require.NoError(t, c.StartEventBus(t.Context()))
	_, router := SetupRoutes(c)
	e := router.Echo()

	for _, body := range []map[string]any{
		{"id": 1, "username": "alice"},
		{"id": 2, "username": "bob"},
	} {
		rec := serve(t, e, http.MethodPost, "/api/v1/users", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	// Act
	rec := serve(t, e, http.MethodPost, "/api/v1/users/1/following/2", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	metricsRec := serve(t, e, http.MethodGet, "/metrics", nil)

	// Assert
	assert.Equal(t, http.StatusOK, metricsRec.Code)
	assert.Contains(t, metricsRec.Body.String(), "talentnet_events_published_total")
	assert.Contains(t, metricsRec.Body.String(), `event_type="follow.created"`)
}

func TestSetupRoutes_RateLimit(t *testing.T) {
	// Arrange
	cfg := mockConfig()
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.Limit = 2
	c, err := NewContainer(cfg)
	require.NoError(t, err)
	_, router := SetupRoutes(c)
	e := router.Echo()

	// Act
	first := serve(t, e, http.MethodGet, "/api/v1/users/1", nil)
	second := serve(t, e, http.MethodGet, "/api/v1/users/1", nil)
	third := serve(t, e, http.MethodGet, "/api/v1/users/1", nil)
	health := serve(t, e, http.MethodGet, "/health", nil)

	// Assert
	assert.Equal(t, http.StatusNotFound, first.Code)
	assert.Equal(t, http.StatusNotFound, second.Code)
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, http.StatusOK, health.Code)
}

func TestRateLimitConfig_Disabled(t *testing.T) {
	c := &Container{Config: mockConfig()}

	assert.Nil(t, rateLimitConfig(c))
}
