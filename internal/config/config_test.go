package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lllypuk/talentnet/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.NotNil(t, cfg)

	// Server defaults
	assert.Equal(t, config.DefaultHost, cfg.Server.Host)
	assert.Equal(t, config.DefaultPort, cfg.Server.Port)
	assert.Equal(t, config.DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)

	// Storage defaults
	assert.Equal(t, "talentnet", cfg.MongoDB.Database)
	assert.False(t, cfg.MongoDB.Transactions)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)

	// EventBus defaults
	assert.Equal(t, "redis", cfg.EventBus.Type)
	assert.Equal(t, "events:", cfg.EventBus.RedisChannelPrefix)
	assert.Equal(t, uint32(config.DefaultBreakerFailures), cfg.EventBus.BreakerFailures)
	assert.Equal(t, config.DefaultDeadLetterKey, cfg.EventBus.DeadLetterKey)

	// Domain defaults
	assert.Equal(t, 3, cfg.Mentorship.CooldownMonths)
	assert.Equal(t, config.DefaultMinOffers, cfg.Skill.MinOffers)

	assert.False(t, cfg.RateLimit.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestServerConfig_Address(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		port     int
		expected string
	}{
		{name: "default address", host: "0.0.0.0", port: 8080, expected: "0.0.0.0:8080"},
		{name: "localhost", host: "localhost", port: 3000, expected: "localhost:3000"},
		{name: "ipv6", host: "::1", port: 9090, expected: "[::1]:9090"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.ServerConfig{Host: tt.host, Port: tt.port}
			assert.Equal(t, tt.expected, cfg.Address())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{"port out of range", func(c *config.Config) { c.Server.Port = 70000 }, "server.port"},
		{"zero read timeout", func(c *config.Config) { c.Server.ReadTimeout = 0 }, "server.read_timeout"},
		{"missing mongo uri", func(c *config.Config) { c.MongoDB.URI = "" }, "mongodb.uri is required"},
		{"missing redis addr", func(c *config.Config) { c.Redis.Addr = "" }, "redis.addr is required"},
		{"bad log level", func(c *config.Config) { c.Log.Level = "trace" }, "invalid log level"},
		{"bad log format", func(c *config.Config) { c.Log.Format = "xml" }, "invalid log format"},
		{"bad bus type", func(c *config.Config) { c.EventBus.Type = "kafka" }, "invalid event bus type"},
		{"zero breaker failures", func(c *config.Config) { c.EventBus.BreakerFailures = 0 }, "breaker_failures"},
		{"zero cooldown", func(c *config.Config) { c.Mentorship.CooldownMonths = 0 }, "cooldown_months"},
		{"zero min offers", func(c *config.Config) { c.Skill.MinOffers = 0 }, "min_offers"},
		{"bad mode", func(c *config.Config) { c.App.Mode = "fake" }, "invalid app mode"},
		{
			"mock in production",
			func(c *config.Config) {
				c.App.Mode = config.AppModeMock
				c.App.Environment = "production"
			},
			"mock mode is not allowed",
		},
		{
			"rate limit without window",
			func(c *config.Config) {
				c.RateLimit.Enabled = true
				c.RateLimit.Window = 0
			},
			"ratelimit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			require.ErrorIs(t, err, config.ErrConfigInvalid)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Validate_CollectsAllErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.Level = "trace"
	cfg.EventBus.Type = "kafka"

	err := cfg.Validate()

	require.ErrorIs(t, err, config.ErrInvalidLogLevel)
	require.ErrorIs(t, err, config.ErrInvalidEventBusType)
}

func TestConfig_Validate_MockModeSkipsStorage(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.App.Mode = config.AppModeMock
	cfg.MongoDB.URI = ""
	cfg.Redis.Addr = ""

	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.App.IsMockMode())
	assert.False(t, cfg.App.IsRealMode())
}

func TestLoadFromPath_ValidYAML(t *testing.T) {
	// Arrange
	configPath := writeFile(t, "config.yaml", `
app:
  name: "talentnet-test"
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 45s
mongodb:
  uri: "mongodb://testhost:27017"
  database: "testdb"
  transactions: true
redis:
  addr: "redis:6379"
  db: 1
eventbus:
  type: "inmemory"
  handler_retries: 5
  breaker_open_timeout: 1m
log:
  level: "debug"
  format: "text"
ratelimit:
  enabled: true
  limit: 10
  window: 30s
mentorship:
  cooldown_months: 6
skill:
  min_offers: 2
`)

	// Act
	cfg, err := config.LoadFromPath(configPath)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "talentnet-test", cfg.App.Name)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 45*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "testdb", cfg.MongoDB.Database)
	assert.True(t, cfg.MongoDB.Transactions)
	assert.Equal(t, 1, cfg.Redis.DB)
	assert.Equal(t, "inmemory", cfg.EventBus.Type)
	assert.Equal(t, 5, cfg.EventBus.HandlerRetries)
	assert.Equal(t, time.Minute, cfg.EventBus.BreakerOpenTimeout)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, int64(10), cfg.RateLimit.Limit)
	assert.Equal(t, 6, cfg.Mentorship.CooldownMonths)
	assert.Equal(t, 2, cfg.Skill.MinOffers)

	// Unset sections keep defaults
	assert.Equal(t, config.DefaultWriteTimeout, cfg.Server.WriteTimeout)
}

func TestLoadFromPath_NonExistent(t *testing.T) {
	cfg, err := config.LoadFromPath("/non/existent/path/config.yaml")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "configuration file not found")
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	configPath := writeFile(t, "invalid.yaml", `
server:
  port: this-is-not-a-number
`)

	cfg, err := config.LoadFromPath(configPath)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	// Arrange
	t.Setenv("SERVER_HOST", "env-host")
	t.Setenv("SERVER_PORT", "3333")
	t.Setenv("MONGODB_TRANSACTIONS", "true")
	t.Setenv("EVENTBUS_BREAKER_FAILURES", "9")
	t.Setenv("MENTORSHIP_COOLDOWN_MONTHS", "1")
	configPath := writeFile(t, "config.yaml", `
server:
  host: "file-host"
  port: 8080
`)

	// Act
	cfg, err := config.LoadFromPath(configPath)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "env-host", cfg.Server.Host)
	assert.Equal(t, 3333, cfg.Server.Port)
	assert.True(t, cfg.MongoDB.Transactions)
	assert.Equal(t, uint32(9), cfg.EventBus.BreakerFailures)
	assert.Equal(t, 1, cfg.Mentorship.CooldownMonths)
}

func TestLoader_LoadFromEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"duration", "SERVER_READ_TIMEOUT", "not-a-duration", "invalid duration"},
		{"integer", "SKILL_MIN_OFFERS", "many", "invalid integer"},
		{"bool", "RATELIMIT_ENABLED", "sometimes", "invalid boolean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg, err := config.NewLoader().WithConfigPaths(nil).WithEnvFiles().Load("")

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoader_DotEnv(t *testing.T) {
	// Arrange
	envFile := writeFile(t, ".env", "SKILL_MIN_OFFERS=7\nLOG_LEVEL=warn\n")
	// godotenv.Load пишет в окружение процесса; t.Setenv вернет исходные значения
	t.Setenv("SKILL_MIN_OFFERS", "")
	t.Setenv("LOG_LEVEL", "error")
	require.NoError(t, os.Unsetenv("SKILL_MIN_OFFERS"))

	// Act
	cfg, err := config.NewLoader().WithConfigPaths(nil).WithEnvFiles(envFile).Load("")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Skill.MinOffers)
	// Переменная процесса важнее .env
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoader_ConfigPathEnvVar(t *testing.T) {
	configPath := writeFile(t, "custom-config.yaml", `
server:
  host: "config-path-host"
  port: 7777
`)
	t.Setenv("CONFIG_PATH", configPath)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "config-path-host", cfg.Server.Host)
	assert.Equal(t, 7777, cfg.Server.Port)
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.False(t, cfg.IsProduction())

	cfg.App.Environment = "Production"
	assert.True(t, cfg.IsProduction())
}

func TestConfig_EnvironmentName(t *testing.T) {
	tests := []struct {
		name        string
		logLevel    string
		environment string
		expected    string
	}{
		{"production by app environment", "info", "production", "production"},
		{"production wins over debug logging", "debug", "Production", "production"},
		{"development when debug", "debug", "staging", "development"},
		{"configured environment otherwise", "info", "staging", "staging"},
		{"unknown when nothing is set", "info", "", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Log.Level = tt.logLevel
			cfg.App.Environment = tt.environment

			assert.Equal(t, tt.expected, cfg.EnvironmentName())
		})
	}
}
