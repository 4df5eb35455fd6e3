// Package main provides the API server entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	followapp "github.com/lllypuk/talentnet/internal/application/follow"
	mentorshipapp "github.com/lllypuk/talentnet/internal/application/mentorship"
	skillapp "github.com/lllypuk/talentnet/internal/application/skill"
	userapp "github.com/lllypuk/talentnet/internal/application/user"
	"github.com/lllypuk/talentnet/internal/config"
	"github.com/lllypuk/talentnet/internal/domain/event"
	"github.com/lllypuk/talentnet/internal/domain/mentorship"
	httphandler "github.com/lllypuk/talentnet/internal/handler/http"
	"github.com/lllypuk/talentnet/internal/infrastructure/eventbus"
	"github.com/lllypuk/talentnet/internal/infrastructure/healthcheck"
	"github.com/lllypuk/talentnet/internal/infrastructure/metrics"
	mongodbinfra "github.com/lllypuk/talentnet/internal/infrastructure/mongodb"
	"github.com/lllypuk/talentnet/internal/infrastructure/repository/memory"
	"github.com/lllypuk/talentnet/internal/infrastructure/repository/mongodb"
	"github.com/lllypuk/talentnet/internal/service"
)

// Container initialization timeouts.
const (
	containerInitTimeout   = 30 * time.Second
	redisPingTimeout       = 5 * time.Second
	mongoDisconnectTimeout = 10 * time.Second
	healthCheckTimeout     = 3 * time.Second
)

// Event bus types accepted by config.EventBus.Type.
const (
	eventBusRedis    = "redis"
	eventBusInMemory = "inmemory"
)

// Container holds all application dependencies and manages their lifecycle.
type Container struct {
	// Configuration
	Config *config.Config
	Logger *slog.Logger

	// Infrastructure
	MongoDB     *mongo.Client
	Redis       *redis.Client
	RedisBus    *eventbus.RedisEventBus
	MemoryBus   *eventbus.InMemoryEventBus
	EventBus    event.Bus
	DeadLetters *eventbus.DeadLetterHandler
	Tx          appcore.TxManager
	LogHandler  *eventbus.LoggingHandler

	// Observability
	Metrics      *prometheus.Registry
	EventMetrics *metrics.EventMetrics
	Health       *healthcheck.Registry

	// Repositories
	UserRepo       userapp.Repository
	FollowRepo     followapp.Repository
	MentorshipRepo mentorshipapp.Repository
	SkillRepo      skillapp.SkillRepository
	OfferRepo      skillapp.OfferRepository

	// Services
	ProfileService    *service.ProfileService
	FollowService     *service.FollowService
	MentorshipService *service.MentorshipService
	SkillService      *service.SkillService

	// HTTP Handlers
	ProfileHandler    *httphandler.ProfileHandler
	FollowHandler     *httphandler.FollowHandler
	MentorshipHandler *httphandler.MentorshipHandler
	SkillHandler      *httphandler.SkillHandler
}

// ContainerOption configures the Container.
type ContainerOption func(*Container)

// WithLogger sets a custom logger for the container.
func WithLogger(logger *slog.Logger) ContainerOption {
	return func(c *Container) {
		c.Logger = logger
	}
}

// NewContainer creates a new dependency injection container.
// The wiring mode (real/mock) is determined by config.App.Mode.
func NewContainer(cfg *config.Config, opts ...ContainerOption) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logWiringMode()
	c.setupMetrics()

	if c.Config.App.IsMockMode() {
		c.setupMockInfrastructure()
	} else if err := c.setupInfrastructure(); err != nil {
		// Clean up any partially initialized resources
		_ = c.Close()
		return nil, fmt.Errorf("failed to setup infrastructure: %w", err)
	}

	c.setupHealth()
	c.setupServices()
	c.setupHTTPHandlers()

	if err := c.validateWiring(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("wiring validation failed: %w", err)
	}

	return c, nil
}

// logWiringMode logs the current wiring mode configuration.
func (c *Container) logWiringMode() {
	mode := c.Config.App.Mode
	if mode == "" {
		mode = config.AppModeReal
	}

	if c.Config.App.IsMockMode() {
		c.Logger.Warn("container starting in MOCK mode",
			slog.String("mode", string(mode)),
			slog.Bool("is_development", c.Config.IsDevelopment()),
			slog.Bool("is_production", c.Config.IsProduction()),
		)
		return
	}

	c.Logger.Info("container starting in REAL mode",
		slog.String("mode", string(mode)),
		slog.Bool("is_development", c.Config.IsDevelopment()),
		slog.Bool("is_production", c.Config.IsProduction()),
	)
}

// validateWiring ensures all required dependencies are properly initialized.
func (c *Container) validateWiring() error {
	var errs []error

	if c.Config.App.IsRealMode() {
		if c.MongoDB == nil {
			errs = append(errs, errors.New("mongodb client not initialized"))
		}
		if c.Redis == nil {
			errs = append(errs, errors.New("redis client not initialized"))
		}
	}
	if c.EventBus == nil {
		errs = append(errs, errors.New("event bus not initialized"))
	}
	if c.Tx == nil {
		errs = append(errs, errors.New("transaction manager not initialized"))
	}
	if c.ProfileHandler == nil || c.FollowHandler == nil || c.MentorshipHandler == nil || c.SkillHandler == nil {
		errs = append(errs, errors.New("http handlers not initialized"))
	}

	return errors.Join(errs...)
}

// setupMetrics creates a private registry so tests can build several containers.
func (c *Container) setupMetrics() {
	c.Metrics = prometheus.NewRegistry()
	c.Metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.EventMetrics = metrics.NewEventMetrics(c.Metrics)
}

// setupMockInfrastructure wires in-memory repositories and the in-memory event bus.
func (c *Container) setupMockInfrastructure() {
	users := memory.NewUserRepository()
	c.UserRepo = users
	c.FollowRepo = memory.NewFollowRepository(users)
	c.MentorshipRepo = memory.NewMentorshipRepository()
	c.SkillRepo = memory.NewSkillRepository()
	c.OfferRepo = memory.NewOfferRepository()
	c.Tx = appcore.NoopTxManager{}

	c.setupMemoryBus()
}

// setupInfrastructure initializes MongoDB, Redis, the event bus and the repositories.
func (c *Container) setupInfrastructure() error {
	ctx, cancel := context.WithTimeout(context.Background(), containerInitTimeout)
	defer cancel()

	if err := c.setupMongoDB(ctx); err != nil {
		return fmt.Errorf("mongodb: %w", err)
	}

	if err := c.setupRedis(ctx); err != nil {
		return fmt.Errorf("redis: %w", err)
	}

	c.setupEventBus()
	c.setupRepositories()

	return nil
}

// setupMongoDB initializes the MongoDB client.
func (c *Container) setupMongoDB(ctx context.Context) error {
	clientOpts := options.Client().
		ApplyURI(c.Config.MongoDB.URI).
		SetMaxPoolSize(c.Config.MongoDB.MaxPoolSize)

	client, connectErr := mongo.Connect(clientOpts)
	if connectErr != nil {
		return fmt.Errorf("failed to connect: %w", connectErr)
	}
	c.MongoDB = client

	// Verify connection
	pingCtx, cancel := context.WithTimeout(ctx, c.Config.MongoDB.Timeout)
	defer cancel()

	if pingErr := client.Ping(pingCtx, nil); pingErr != nil {
		return fmt.Errorf("failed to ping: %w", pingErr)
	}

	c.Logger.InfoContext(ctx, "connected to MongoDB",
		slog.String("database", c.Config.MongoDB.Database),
	)

	db := client.Database(c.Config.MongoDB.Database)
	indexCtx, indexCancel := context.WithTimeout(ctx, c.Config.MongoDB.Timeout)
	defer indexCancel()

	if indexErr := mongodbinfra.CreateAllIndexes(indexCtx, db); indexErr != nil {
		return fmt.Errorf("failed to create indexes: %w", indexErr)
	}

	c.Logger.InfoContext(ctx, "MongoDB indexes created successfully")

	return nil
}

// setupRedis initializes the Redis client.
func (c *Container) setupRedis(ctx context.Context) error {
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.Redis.Addr,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
		PoolSize: c.Config.Redis.PoolSize,
	})

	// Verify connection
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if pingErr := c.Redis.Ping(pingCtx).Err(); pingErr != nil {
		return fmt.Errorf("failed to ping: %w", pingErr)
	}

	c.Logger.InfoContext(ctx, "connected to Redis",
		slog.String("addr", c.Config.Redis.Addr),
	)

	return nil
}

// retryConfig applies the configured handler retries on top of the defaults.
func (c *Container) retryConfig() eventbus.RetryConfig {
	retry := eventbus.DefaultRetryConfig()
	if c.Config.EventBus.HandlerRetries > 0 {
		retry.MaxRetries = c.Config.EventBus.HandlerRetries
	}
	return retry
}

// setupEventBus picks the Redis or in-memory bus according to config.
func (c *Container) setupEventBus() {
	if strings.EqualFold(c.Config.EventBus.Type, eventBusInMemory) {
		c.setupMemoryBus()
		return
	}

	c.DeadLetters = eventbus.NewDeadLetterHandler(
		c.Redis,
		eventbus.WithDeadLetterQueueKey(c.Config.EventBus.DeadLetterKey),
		eventbus.WithDeadLetterLogger(c.Logger),
	)

	breaker := eventbus.DefaultBreakerConfig()
	if c.Config.EventBus.BreakerFailures > 0 {
		breaker.ConsecutiveFailures = c.Config.EventBus.BreakerFailures
	}
	if c.Config.EventBus.BreakerOpenTimeout > 0 {
		breaker.OpenTimeout = c.Config.EventBus.BreakerOpenTimeout
	}

	c.RedisBus = eventbus.NewRedisEventBus(
		c.Redis,
		eventbus.WithLogger(c.Logger),
		eventbus.WithChannelPrefix(c.Config.EventBus.RedisChannelPrefix),
		eventbus.WithRetryConfig(c.retryConfig()),
		eventbus.WithBreakerConfig(breaker),
		eventbus.WithDeadLetter(c.DeadLetters),
	)
	c.EventBus = metrics.NewInstrumentedBus(c.RedisBus, c.EventMetrics)

	c.Logger.Debug("event bus initialized",
		slog.String("type", eventBusRedis),
		slog.String("prefix", c.Config.EventBus.RedisChannelPrefix),
	)
}

func (c *Container) setupMemoryBus() {
	c.MemoryBus = eventbus.NewInMemoryEventBus(
		eventbus.WithInMemoryLogger(c.Logger),
		eventbus.WithInMemoryRetry(c.retryConfig()),
	)
	c.EventBus = metrics.NewInstrumentedBus(c.MemoryBus, c.EventMetrics)

	c.Logger.Debug("event bus initialized", slog.String("type", eventBusInMemory))
}

// setupRepositories creates the MongoDB repositories and the transaction manager.
func (c *Container) setupRepositories() {
	db := c.MongoDB.Database(c.Config.MongoDB.Database)
	repoOpts := []mongodb.Option{mongodb.WithLogger(c.Logger)}

	c.UserRepo = mongodb.NewMongoUserRepository(db.Collection(mongodbinfra.CollectionUsers), repoOpts...)
	c.FollowRepo = mongodb.NewMongoFollowRepository(
		db.Collection(mongodbinfra.CollectionFollows),
		mongodbinfra.CollectionUsers,
		repoOpts...,
	)
	c.MentorshipRepo = mongodb.NewMongoMentorshipRepository(
		db.Collection(mongodbinfra.CollectionMentorshipRequests),
		repoOpts...,
	)
	c.SkillRepo = mongodb.NewMongoSkillRepository(
		db.Collection(mongodbinfra.CollectionSkills),
		db.Collection(mongodbinfra.CollectionUserSkills),
		db.Collection(mongodbinfra.CollectionCounters),
		repoOpts...,
	)
	c.OfferRepo = mongodb.NewMongoOfferRepository(db.Collection(mongodbinfra.CollectionSkillOffers), repoOpts...)

	if c.Config.MongoDB.Transactions {
		c.Tx = mongodb.NewTxManager(c.MongoDB, c.Logger)
	} else {
		c.Tx = appcore.NoopTxManager{}
	}

	c.Logger.Debug("repositories initialized",
		slog.Bool("transactions", c.Config.MongoDB.Transactions),
	)
}

// setupHealth registers readiness checks. Storage gates readiness,
// the event bus only shows up in the details.
func (c *Container) setupHealth() {
	c.Health = healthcheck.NewRegistry(healthCheckTimeout)

	if c.MongoDB != nil {
		c.Health.Require(healthcheck.NewMongoChecker(c.MongoDB))
	}
	if c.Redis != nil {
		c.Health.Require(healthcheck.NewRedisChecker(c.Redis))
	}
	if c.RedisBus != nil {
		c.Health.Observe(healthcheck.NewBreakerChecker(c.RedisBus))
	}
	if c.DeadLetters != nil {
		c.Health.Observe(healthcheck.NewDeadLetterChecker(c.DeadLetters, c.Config.EventBus.DeadLetterAlert))
	}
}

// setupServices wires use cases into services.
func (c *Container) setupServices() {
	opts := []appcore.Option{
		appcore.WithLogger(c.Logger),
		appcore.WithEventBus(c.EventBus),
	}
	cooldown := mentorship.NewCooldownPolicy(c.Config.Mentorship.CooldownMonths)

	c.ProfileService = service.NewProfileService(service.ProfileServiceConfig{
		RegisterUC:   userapp.NewRegisterProfileUseCase(c.UserRepo, opts...),
		GetUC:        userapp.NewGetProfileUseCase(c.UserRepo, opts...),
		DeactivateUC: userapp.NewDeactivateProfileUseCase(c.UserRepo, opts...),
	})

	c.FollowService = service.NewFollowService(service.FollowServiceConfig{
		FollowUC:         followapp.NewFollowUserUseCase(c.FollowRepo, c.UserRepo, c.Tx, opts...),
		UnfollowUC:       followapp.NewUnfollowUserUseCase(c.FollowRepo, c.Tx, opts...),
		ListFollowersUC:  followapp.NewListFollowersUseCase(c.FollowRepo, opts...),
		ListFollowingUC:  followapp.NewListFollowingUseCase(c.FollowRepo, opts...),
		CountFollowersUC: followapp.NewCountFollowersUseCase(c.FollowRepo, opts...),
		CountFollowingUC: followapp.NewCountFollowingUseCase(c.FollowRepo, opts...),
	})

	c.MentorshipService = service.NewMentorshipService(service.MentorshipServiceConfig{
		RequestUC: mentorshipapp.NewRequestMentorshipUseCase(
			c.MentorshipRepo, c.UserRepo, c.Tx, cooldown, opts...,
		),
		AcceptUC:      mentorshipapp.NewAcceptRequestUseCase(c.MentorshipRepo, c.Tx, opts...),
		RejectUC:      mentorshipapp.NewRejectRequestUseCase(c.MentorshipRepo, c.Tx, opts...),
		GetRequestsUC: mentorshipapp.NewGetRequestsUseCase(c.MentorshipRepo, opts...),
		GetRequestUC:  mentorshipapp.NewGetRequestUseCase(c.MentorshipRepo, opts...),
	})

	c.SkillService = service.NewSkillService(service.SkillServiceConfig{
		CreateUC: skillapp.NewCreateSkillUseCase(c.SkillRepo, opts...),
		OfferUC:  skillapp.NewOfferSkillUseCase(c.SkillRepo, c.OfferRepo, c.UserRepo, opts...),
		AcquireUC: skillapp.NewAcquireSkillFromOffersUseCase(
			c.SkillRepo, c.OfferRepo, c.Tx, c.Config.Skill.MinOffers, opts...,
		),
		UserSkillsUC: skillapp.NewGetUserSkillsUseCase(c.SkillRepo, opts...),
		OfferedUC:    skillapp.NewGetOfferedSkillsUseCase(c.SkillRepo, c.OfferRepo, opts...),
	})

	c.Logger.Debug("services initialized",
		slog.Int("cooldown_months", c.Config.Mentorship.CooldownMonths),
		slog.Int("min_offers", c.Config.Skill.MinOffers),
	)
}

// setupHTTPHandlers creates the REST handlers.
func (c *Container) setupHTTPHandlers() {
	c.ProfileHandler = httphandler.NewProfileHandler(c.ProfileService)
	c.FollowHandler = httphandler.NewFollowHandler(c.FollowService)
	c.MentorshipHandler = httphandler.NewMentorshipHandler(c.MentorshipService)
	c.SkillHandler = httphandler.NewSkillHandler(c.SkillService)
}

// registerEventHandlers subscribes the audit log to every domain event.
func (c *Container) registerEventHandlers() error {
	c.LogHandler = eventbus.NewLoggingHandler(c.Logger)

	var sub eventbus.Subscriber
	switch {
	case c.RedisBus != nil:
		sub = c.RedisBus
	case c.MemoryBus != nil:
		sub = c.MemoryBus
	default:
		return errors.New("no event bus to subscribe to")
	}

	return eventbus.RegisterForAll(sub, c.LogHandler.Handle)
}

// StartEventBus registers event handlers and starts the Redis subscriber loop.
// This should be called before the HTTP server starts accepting requests.
func (c *Container) StartEventBus(ctx context.Context) error {
	if err := c.registerEventHandlers(); err != nil {
		return fmt.Errorf("failed to register event handlers: %w", err)
	}

	// the in-memory bus dispatches on Publish and has nothing to start
	if c.RedisBus == nil {
		c.Logger.InfoContext(ctx, "in-memory event bus ready")
		return nil
	}

	go func() {
		if err := c.RedisBus.Start(ctx); err != nil {
			c.Logger.Error("event bus error", slog.String("error", err.Error()))
		}
	}()

	c.Logger.InfoContext(ctx, "event bus started")
	return nil
}

// Close releases all container resources. The event bus goes first so no
// handler runs against a closed client.
func (c *Container) Close() error {
	c.Logger.Info("closing container resources...")

	var errs []error

	if c.RedisBus != nil {
		if err := c.RedisBus.Shutdown(); err != nil {
			errs = append(errs, fmt.Errorf("event bus shutdown: %w", err))
		} else {
			c.Logger.Debug("event bus stopped")
		}
	}

	var g errgroup.Group
	if c.Redis != nil {
		g.Go(func() error {
			if err := c.Redis.Close(); err != nil {
				return fmt.Errorf("redis close: %w", err)
			}
			c.Logger.Debug("redis connection closed")
			return nil
		})
	}
	if c.MongoDB != nil {
		g.Go(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), mongoDisconnectTimeout)
			defer cancel()

			if err := c.MongoDB.Disconnect(ctx); err != nil {
				return fmt.Errorf("mongodb disconnect: %w", err)
			}
			c.Logger.Debug("mongodb connection closed")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	c.Logger.Info("all container resources closed")
	return nil
}
