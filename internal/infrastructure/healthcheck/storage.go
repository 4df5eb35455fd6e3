package healthcheck

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/lllypuk/talentnet/internal/application/appcore"
)

// MongoChecker pings the primary.
type MongoChecker struct {
	client *mongo.Client
}

// NewMongoChecker creates a MongoDB health checker.
func NewMongoChecker(client *mongo.Client) *MongoChecker {
	return &MongoChecker{client: client}
}

// Name returns the name of this health checker.
func (c *MongoChecker) Name() string { return "mongodb" }

// Check performs the health check.
func (c *MongoChecker) Check(ctx context.Context) appcore.HealthStatus {
	start := time.Now()
	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return appcore.Unhealthy(fmt.Sprintf("ping failed: %v", err), nil)
	}
	return appcore.Healthy("", map[string]any{"latency_ms": time.Since(start).Milliseconds()})
}

// RedisChecker pings Redis.
type RedisChecker struct {
	client *redis.Client
}

// NewRedisChecker creates a Redis health checker.
func NewRedisChecker(client *redis.Client) *RedisChecker {
	return &RedisChecker{client: client}
}

// Name returns the name of this health checker.
func (c *RedisChecker) Name() string { return "redis" }

// Check performs the health check.
func (c *RedisChecker) Check(ctx context.Context) appcore.HealthStatus {
	start := time.Now()
	if err := c.client.Ping(ctx).Err(); err != nil {
		return appcore.Unhealthy(fmt.Sprintf("ping failed: %v", err), nil)
	}
	return appcore.Healthy("", map[string]any{"latency_ms": time.Since(start).Milliseconds()})
}
