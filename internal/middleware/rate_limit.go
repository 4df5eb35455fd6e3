package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Rate limit defaults.
const (
	DefaultRateLimit       = 100
	DefaultRateLimitWindow = time.Minute
	defaultRateLimitPrefix = "talentnet:ratelimit:"
)

// RateLimitStore counts requests per key in fixed windows.
type RateLimitStore interface {
	// Increment bumps the counter for key and returns the new count and the time
	// left in the current window. The window starts on the first hit.
	Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RateLimitConfig holds configuration for the rate limit middleware.
type RateLimitConfig struct {
	Logger    *slog.Logger
	Store     RateLimitStore
	Limit     int
	Window    time.Duration
	SkipPaths []string

	// KeyFunc defaults to the client IP.
	KeyFunc func(c echo.Context) string
}

// RateLimit rejects requests over Limit per Window with 429.
// Store failures let the request through.
func RateLimit(config RateLimitConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Limit <= 0 {
		config.Limit = DefaultRateLimit
	}
	if config.Window <= 0 {
		config.Window = DefaultRateLimitWindow
	}
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string { return "ip:" + c.RealIP() }
	}

	skip := make(map[string]struct{}, len(config.SkipPaths))
	for _, path := range config.SkipPaths {
		skip[path] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := skip[c.Request().URL.Path]; ok || config.Store == nil {
				return next(c)
			}

			key := config.KeyFunc(c)
			count, ttl, err := config.Store.Increment(c.Request().Context(), key, config.Window)
			if err != nil {
				config.Logger.ErrorContext(c.Request().Context(), "rate limit store failed",
					slog.String("key", key),
					slog.String("error", err.Error()),
				)
				return next(c)
			}

			limit := int64(config.Limit)
			header := c.Response().Header()
			header.Set("X-Ratelimit-Limit", strconv.FormatInt(limit, 10))
			header.Set("X-Ratelimit-Remaining", strconv.FormatInt(max(limit-count, 0), 10))

			if count <= limit {
				return next(c)
			}

			retryAfter := int64(ttl.Round(time.Second).Seconds())
			header.Set("Retry-After", strconv.FormatInt(retryAfter, 10))
			config.Logger.WarnContext(c.Request().Context(), "rate limit exceeded",
				slog.String("key", key),
				slog.Int64("count", count),
				slog.Int64("limit", limit),
			)
			return c.JSON(http.StatusTooManyRequests, map[string]any{
				"success": false,
				"error": map[string]any{
					"code":    "RATE_LIMIT_EXCEEDED",
					"message": "Too many requests. Please try again later.",
				},
			})
		}
	}
}

// MemoryRateLimitStore keeps counters in process memory.
type MemoryRateLimitStore struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]rateLimitEntry
}

type rateLimitEntry struct {
	count     int64
	expiresAt time.Time
}

// NewMemoryRateLimitStore creates an in-memory store.
func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	return &MemoryRateLimitStore{now: time.Now, entries: make(map[string]rateLimitEntry)}
}

// Increment implements RateLimitStore.
func (s *MemoryRateLimitStore) Increment(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, ok := s.entries[key]
	if !ok || !now.Before(entry.expiresAt) {
		entry = rateLimitEntry{expiresAt: now.Add(window)}
	}
	entry.count++
	s.entries[key] = entry

	return entry.count, entry.expiresAt.Sub(now), nil
}

// RedisRateLimitStore shares counters between api replicas.
type RedisRateLimitStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisRateLimitStore creates a Redis-backed store.
func NewRedisRateLimitStore(client *redis.Client, keyPrefix string) *RedisRateLimitStore {
	if keyPrefix == "" {
		keyPrefix = defaultRateLimitPrefix
	}
	return &RedisRateLimitStore{client: client, keyPrefix: keyPrefix}
}

// Increment implements RateLimitStore with INCR and EXPIRE NX in one transaction.
func (s *RedisRateLimitStore) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	fullKey := s.keyPrefix + key

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, fullKey)
	pipe.ExpireNX(ctx, fullKey, window)
	ttl := pipe.PTTL(ctx, fullKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	return incr.Val(), ttl.Val(), nil
}
