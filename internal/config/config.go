// Package config provides configuration loading and validation for the application.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Default configuration constants.
const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 8080
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	DefaultMongoDBTimeout     = 10 * time.Second
	DefaultMongoDBMaxPoolSize = 100

	DefaultRedisPoolSize = 10

	DefaultBreakerFailures    = 5
	DefaultBreakerOpenTimeout = 30 * time.Second
	DefaultHandlerRetries     = 3
	DefaultDeadLetterKey      = "talentnet:events:dead_letter"

	DefaultCooldownMonths = 3
	DefaultMinOffers      = 1

	DefaultRateLimit       = 100
	DefaultRateLimitWindow = time.Minute

	DefaultWorkerPort             = 8081
	DefaultDeadLetterPollInterval = 30 * time.Second
)

// AppMode defines the application wiring mode.
type AppMode string

// Application wiring modes.
const (
	// AppModeReal uses MongoDB and Redis.
	// This is the default mode and should be used in production.
	AppModeReal AppMode = "real"

	// AppModeMock uses in-memory repositories and the in-memory event bus.
	// This mode is NOT allowed in production environments.
	AppModeMock AppMode = "mock"
)

// Config holds the complete application configuration.
type Config struct {
	App        AppConfig        `yaml:"app"`
	Server     ServerConfig     `yaml:"server"`
	MongoDB    MongoDBConfig    `yaml:"mongodb"`
	Redis      RedisConfig      `yaml:"redis"`
	EventBus   EventBusConfig   `yaml:"eventbus"`
	Log        LogConfig        `yaml:"log"`
	RateLimit  RateLimitConfig  `yaml:"ratelimit"`
	Mentorship MentorshipConfig `yaml:"mentorship"`
	Skill      SkillConfig      `yaml:"skill"`
	Worker     WorkerConfig     `yaml:"worker"`
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	// Mode controls dependency wiring: "real" (default) or "mock".
	// In production, only "real" mode is allowed.
	Mode AppMode `yaml:"mode" env:"APP_MODE"`

	// Name is the application name used in logs.
	Name string `yaml:"name" env:"APP_NAME"`

	// Environment is "development" or "production".
	Environment string `yaml:"environment" env:"APP_ENV"`
}

// IsRealMode returns true if the application should use real implementations.
func (c AppConfig) IsRealMode() bool {
	return c.Mode == "" || c.Mode == AppModeReal
}

// IsMockMode returns true if the application should use mock implementations.
func (c AppConfig) IsMockMode() bool {
	return c.Mode == AppModeMock
}

// ServerConfig holds HTTP server configuration.
//
//nolint:golines // Struct tags require longer lines for readability
type ServerConfig struct {
	Host            string        `yaml:"host" env:"SERVER_HOST"`
	Port            int           `yaml:"port" env:"SERVER_PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	BodyLimit       string        `yaml:"body_limit" env:"SERVER_BODY_LIMIT"`
}

// Address returns the full server address (host:port).
func (c ServerConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// MongoDBConfig holds MongoDB connection configuration.
//
//nolint:golines // Struct tags require longer lines for readability
type MongoDBConfig struct {
	URI         string        `yaml:"uri" env:"MONGODB_URI"`
	Database    string        `yaml:"database" env:"MONGODB_DATABASE"`
	Timeout     time.Duration `yaml:"timeout" env:"MONGODB_TIMEOUT"`
	MaxPoolSize uint64        `yaml:"max_pool_size" env:"MONGODB_MAX_POOL_SIZE"`

	// Transactions требуют replica set; на standalone сервере выключить
	Transactions bool `yaml:"transactions" env:"MONGODB_TRANSACTIONS"`
}

// RedisConfig holds Redis connection configuration.
//
//nolint:golines // Struct tags require longer lines for readability
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
	PoolSize int    `yaml:"pool_size" env:"REDIS_POOL_SIZE"`
}

// EventBusConfig holds event bus configuration.
//
//nolint:golines // Struct tags require longer lines for readability
type EventBusConfig struct {
	Type               string        `yaml:"type" env:"EVENTBUS_TYPE"` // redis | inmemory
	RedisChannelPrefix string        `yaml:"redis_channel_prefix" env:"EVENTBUS_REDIS_CHANNEL_PREFIX"`
	HandlerRetries     int           `yaml:"handler_retries" env:"EVENTBUS_HANDLER_RETRIES"`
	BreakerFailures    uint32        `yaml:"breaker_failures" env:"EVENTBUS_BREAKER_FAILURES"`
	BreakerOpenTimeout time.Duration `yaml:"breaker_open_timeout" env:"EVENTBUS_BREAKER_OPEN_TIMEOUT"`
	DeadLetterKey      string        `yaml:"dead_letter_key" env:"EVENTBUS_DEAD_LETTER_KEY"`
	DeadLetterAlert    int64         `yaml:"dead_letter_alert" env:"EVENTBUS_DEAD_LETTER_ALERT"`
}

// LogConfig holds logging configuration.
//
//nolint:golines // Struct tags require longer lines for readability
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`   // debug | info | warn | error
	Format string `yaml:"format" env:"LOG_FORMAT"` // json | text
}

// RateLimitConfig holds per-client request limiting configuration.
//
//nolint:golines // Struct tags require longer lines for readability
type RateLimitConfig struct {
	Enabled bool          `yaml:"enabled" env:"RATELIMIT_ENABLED"`
	Limit   int64         `yaml:"limit" env:"RATELIMIT_LIMIT"`
	Window  time.Duration `yaml:"window" env:"RATELIMIT_WINDOW"`
}

// MentorshipConfig holds mentorship workflow settings.
type MentorshipConfig struct {
	// CooldownMonths is the minimum gap between two requests of the same pair.
	CooldownMonths int `yaml:"cooldown_months" env:"MENTORSHIP_COOLDOWN_MONTHS"`
}

// SkillConfig holds skill ledger settings.
type SkillConfig struct {
	// MinOffers is the number of offers needed before a skill can be acquired.
	MinOffers int `yaml:"min_offers" env:"SKILL_MIN_OFFERS"`
}

// WorkerConfig holds settings of the event worker binary.
//
//nolint:golines // Struct tags require longer lines for readability
type WorkerConfig struct {
	// Port serves /metrics and health endpoints of the worker.
	Port                   int           `yaml:"port" env:"WORKER_PORT"`
	DeadLetterPollInterval time.Duration `yaml:"dead_letter_poll_interval" env:"WORKER_DEAD_LETTER_POLL_INTERVAL"`
}

// Configuration errors.
var (
	ErrConfigNotFound      = errors.New("configuration file not found")
	ErrConfigInvalid       = errors.New("invalid configuration")
	ErrInvalidDuration     = errors.New("invalid duration format")
	ErrInvalidLogLevel     = errors.New("invalid log level: must be debug, info, warn, or error")
	ErrInvalidLogFormat    = errors.New("invalid log format: must be json or text")
	ErrInvalidEventBusType = errors.New("invalid event bus type: must be redis or inmemory")
	ErrInvalidAppMode      = errors.New("invalid app mode: must be real or mock")
	ErrMockModeInProd      = errors.New("mock mode is not allowed in production")
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Mode:        AppModeReal,
			Name:        "talentnet",
			Environment: "development",
		},
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			BodyLimit:       "1M",
		},
		MongoDB: MongoDBConfig{
			URI:          "mongodb://localhost:27017",
			Database:     "talentnet",
			Timeout:      DefaultMongoDBTimeout,
			MaxPoolSize:  DefaultMongoDBMaxPoolSize,
			Transactions: false,
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			PoolSize: DefaultRedisPoolSize,
		},
		EventBus: EventBusConfig{
			Type:               "redis",
			RedisChannelPrefix: "events:",
			HandlerRetries:     DefaultHandlerRetries,
			BreakerFailures:    DefaultBreakerFailures,
			BreakerOpenTimeout: DefaultBreakerOpenTimeout,
			DeadLetterKey:      DefaultDeadLetterKey,
			DeadLetterAlert:    100,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
			Limit:   DefaultRateLimit,
			Window:  DefaultRateLimitWindow,
		},
		Mentorship: MentorshipConfig{
			CooldownMonths: DefaultCooldownMonths,
		},
		Skill: SkillConfig{
			MinOffers: DefaultMinOffers,
		},
		Worker: WorkerConfig{
			Port:                   DefaultWorkerPort,
			DeadLetterPollInterval: DefaultDeadLetterPollInterval,
		},
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errs []error

	errs = c.validateApp(errs)
	errs = c.validateServer(errs)
	errs = c.validateStorage(errs)
	errs = c.validateLog(errs)
	errs = c.validateEventBus(errs)
	errs = c.validateDomain(errs)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, errors.Join(errs...))
	}

	return nil
}

func (c *Config) validateApp(errs []error) []error {
	if c.App.Mode != "" && c.App.Mode != AppModeReal && c.App.Mode != AppModeMock {
		errs = append(errs, fmt.Errorf("%w: got %q", ErrInvalidAppMode, c.App.Mode))
	}
	if c.App.IsMockMode() && c.IsProduction() {
		errs = append(errs, ErrMockModeInProd)
	}
	return errs
}

func (c *Config) validateServer(errs []error) []error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if c.RateLimit.Enabled && (c.RateLimit.Limit <= 0 || c.RateLimit.Window <= 0) {
		errs = append(errs, errors.New("ratelimit.limit and ratelimit.window must be positive"))
	}
	return errs
}

// validateStorage проверяет MongoDB и Redis только в real режиме
func (c *Config) validateStorage(errs []error) []error {
	if c.App.IsMockMode() {
		return errs
	}
	if c.MongoDB.URI == "" {
		errs = append(errs, errors.New("mongodb.uri is required"))
	}
	if c.MongoDB.Database == "" {
		errs = append(errs, errors.New("mongodb.database is required"))
	}
	if c.Redis.Addr == "" {
		errs = append(errs, errors.New("redis.addr is required"))
	}
	return errs
}

func (c *Config) validateLog(errs []error) []error {
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ErrInvalidLogLevel)
	}
	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[strings.ToLower(c.Log.Format)] {
		errs = append(errs, ErrInvalidLogFormat)
	}
	return errs
}

func (c *Config) validateEventBus(errs []error) []error {
	validEventBusTypes := map[string]bool{"redis": true, "inmemory": true}
	if !validEventBusTypes[strings.ToLower(c.EventBus.Type)] {
		errs = append(errs, ErrInvalidEventBusType)
	}
	if c.EventBus.HandlerRetries < 0 {
		errs = append(errs, errors.New("eventbus.handler_retries must not be negative"))
	}
	if c.EventBus.BreakerFailures == 0 {
		errs = append(errs, errors.New("eventbus.breaker_failures must be positive"))
	}
	return errs
}

func (c *Config) validateDomain(errs []error) []error {
	if c.Mentorship.CooldownMonths <= 0 {
		errs = append(errs, errors.New("mentorship.cooldown_months must be positive"))
	}
	if c.Skill.MinOffers <= 0 {
		errs = append(errs, errors.New("skill.min_offers must be positive"))
	}
	if c.Worker.Port <= 0 || c.Worker.Port > 65535 {
		errs = append(errs, fmt.Errorf("worker.port must be between 1 and 65535, got %d", c.Worker.Port))
	}
	return errs
}

// IsDevelopment returns true if the log level indicates a development environment.
func (c *Config) IsDevelopment() bool {
	return strings.ToLower(c.Log.Level) == "debug"
}

// IsProduction reports whether app.environment is "production".
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}

// EnvironmentName is the environment reported in startup logs: production,
// then development (debug logging), then app.environment, else "unknown".
func (c *Config) EnvironmentName() string {
	switch {
	case c.IsProduction():
		return "production"
	case c.IsDevelopment():
		return "development"
	case c.App.Environment != "":
		return c.App.Environment
	default:
		return "unknown"
	}
}
