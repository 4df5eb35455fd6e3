// Package main provides the API server entry point.
package main

import (
	"github.com/lllypuk/talentnet/internal/infrastructure/httpserver"
	"github.com/lllypuk/talentnet/internal/middleware"
)

// rateLimitKeyPrefix namespaces rate limit counters in Redis.
const rateLimitKeyPrefix = "talentnet:ratelimit:"

// SetupRoutes configures the HTTP server, the middleware chain and all API routes.
func SetupRoutes(c *Container) (*httpserver.Server, *httpserver.Router) {
	server := httpserver.NewServer(httpserver.ServerConfigFrom(c.Config.Server, c.Config.Server.Port), c.Logger)

	routerConfig := httpserver.RouterConfig{
		Logger:         c.Logger,
		LoggingConfig:  middleware.DefaultLoggingConfig(),
		RecoveryConfig: middleware.DefaultRecoveryConfig(),
		RateLimit:      rateLimitConfig(c),
		APIPrefix:      httpserver.DefaultAPIPrefix,
	}
	routerConfig.LoggingConfig.Logger = c.Logger
	routerConfig.RecoveryConfig.Logger = c.Logger

	router := httpserver.NewRouter(server.Echo(), routerConfig)

	// Health and metrics live outside the API prefix
	router.RegisterHealthEndpoints(c.Health)
	router.RegisterMetricsEndpoint(c.Metrics)

	router.RegisterAll(
		c.ProfileHandler,
		c.FollowHandler,
		c.MentorshipHandler,
		c.SkillHandler,
	)

	if c.Config.IsDevelopment() {
		router.PrintRoutes()
	}

	return server, router
}

// rateLimitConfig returns nil when rate limiting is disabled. Counters go to
// Redis when the container has a client so limits hold across instances.
func rateLimitConfig(c *Container) *middleware.RateLimitConfig {
	if !c.Config.RateLimit.Enabled {
		return nil
	}

	var store middleware.RateLimitStore
	if c.Redis != nil {
		store = middleware.NewRedisRateLimitStore(c.Redis, rateLimitKeyPrefix)
	} else {
		store = middleware.NewMemoryRateLimitStore()
	}

	return &middleware.RateLimitConfig{
		Logger:    c.Logger,
		Store:     store,
		Limit:     int(c.Config.RateLimit.Limit),
		Window:    c.Config.RateLimit.Window,
		SkipPaths: []string{"/health", "/ready", "/health/details", "/metrics"},
	}
}
