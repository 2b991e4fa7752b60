package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/cantikstore/storefront/internal/config"
	"github.com/cantikstore/storefront/internal/event"
	handler "github.com/cantikstore/storefront/internal/handler/http"
	"github.com/cantikstore/storefront/internal/repository/fallback"
	localrepo "github.com/cantikstore/storefront/internal/repository/local"
	postgresrepo "github.com/cantikstore/storefront/internal/repository/postgres"
	redisrepo "github.com/cantikstore/storefront/internal/repository/redis"
	"github.com/cantikstore/storefront/internal/service"
	"github.com/cantikstore/storefront/internal/storage"
	"github.com/cantikstore/storefront/internal/storage/bucket"
	"github.com/cantikstore/storefront/pkg/database"
	"github.com/cantikstore/storefront/pkg/health"
	"github.com/cantikstore/storefront/pkg/httpclient"
	pkgkafka "github.com/cantikstore/storefront/pkg/kafka"
	"github.com/cantikstore/storefront/pkg/tracing"
)

// App wires together all dependencies and runs the storefront.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	pool            *pgxpool.Pool
	rdb             *redis.Client
	producer        *pkgkafka.Producer
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
//
// An unreachable PostgreSQL is not fatal: the storefront starts with the
// connection flag down and serves from the local fallback until a later
// probe succeeds.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	app := &App{cfg: cfg, logger: logger}

	if cfg.TracingEnabled {
		tcfg := tracing.DefaultConfig("storefront")
		tcfg.OTLPEndpoint = cfg.OTLPEndpoint
		tcfg.Environment = cfg.Environment
		tcfg.Enabled = true
		shutdown, err := tracing.InitTracer(ctx, tcfg)
		if err != nil {
			return nil, fmt.Errorf("init tracer: %w", err)
		}
		app.tracingShutdown = shutdown
	}

	// Remote document store. A failed connect leaves a lazy pool in place
	// so reachability probes can flip the storefront online later.
	pgCfg := database.DefaultPostgresConfig()
	pgCfg.Host = cfg.PostgresHost
	pgCfg.Port = cfg.PostgresPort
	pgCfg.User = cfg.PostgresUser
	pgCfg.Password = cfg.PostgresPass
	pgCfg.DBName = cfg.PostgresDB
	pgCfg.SSLMode = cfg.PostgresSSL

	remoteUp := true
	pool, err := database.NewPostgresPool(ctx, &pgCfg, logger)
	if err != nil {
		logger.Warn("postgres unreachable at startup, starting in fallback mode",
			slog.String("error", err.Error()),
		)
		remoteUp = false
		pool, err = pgxpool.New(ctx, pgCfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("create postgres pool: %w", err)
		}
	}
	app.pool = pool

	remote := postgresrepo.NewCatalog(pool)
	if remoteUp {
		if err := remote.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
	}

	// Local fallback store.
	store, err := localrepo.NewStore(cfg.LocalStoreDir, logger)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	local := localrepo.NewCatalog(store)

	connState := fallback.NewConnState(remoteUp)
	catalog := fallback.NewCatalog(remote, local, connState, logger)

	// Redis for carts and admin sessions.
	rdb, err := database.NewRedisClient(ctx, database.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	app.rdb = rdb
	logger.Info("connected to Redis", slog.String("addr", cfg.RedisAddr))

	// Kafka producer, optional.
	var eventProducer *event.Producer
	if cfg.KafkaEnabled {
		producer := pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
		app.producer = producer
		eventProducer = event.NewProducer(producer, logger)
		logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))
	}

	// Image bucket, optional; without it uploads inline as data URIs.
	var imageStore storage.Storage = storage.Disabled{}
	if cfg.BucketEndpoint != "" {
		cbClient := httpclient.NewCircuitBreakerClient(
			httpclient.New(httpclient.DefaultConfig()),
			httpclient.DefaultCircuitBreakerConfig("image-bucket"),
			logger,
		)
		imageStore = bucket.NewClient(bucket.Config{
			Endpoint:  cfg.BucketEndpoint,
			ProjectID: cfg.BucketProject,
			BucketID:  cfg.BucketID,
		}, cbClient)
	}

	// Build the dependency graph.
	cartTTL := time.Duration(cfg.CartTTLHours) * time.Hour
	sessionTTL := time.Duration(cfg.AdminSessionTTLMins) * time.Minute

	cartRepo := redisrepo.NewCartRepository(rdb, cartTTL)
	sessionRepo := redisrepo.NewSessionRepository(rdb, sessionTTL)

	cartService := service.NewCartService(cartRepo, logger)
	catalogService := service.NewCatalogService(catalog, eventProducer, logger)
	checkoutService := service.NewCheckoutService(cartService, catalog, eventProducer, logger, service.CheckoutConfig{
		WhatsAppNumber:        cfg.WhatsAppNumber,
		FreeDeliveryThreshold: cfg.FreeDeliveryThreshold,
		DeliveryCharge:        cfg.DeliveryCharge,
		StoreName:             cfg.StoreName,
	})
	adminService := service.NewAdminService(sessionRepo, catalogService, logger, cfg.AdminPassword)
	mediaService := service.NewMediaService(imageStore, logger)

	// Warm the admin dashboard cache; failures are recoverable via refresh.
	if err := adminService.LoadData(ctx); err != nil {
		logger.Warn("initial dashboard load incomplete", slog.String("error", err.Error()))
	}

	// Health checks. Readiness needs Redis; the remote store is optional
	// because the fallback keeps the storefront serving without it.
	healthHandler := health.NewHandler()
	healthHandler.Register("redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})

	router := handler.NewRouter(handler.Services{
		Cart:     cartService,
		Catalog:  catalogService,
		Checkout: checkoutService,
		Admin:    adminService,
		Media:    mediaService,
	}, healthHandler, logger)

	app.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return app, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
		}
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
		}
	}

	if a.pool != nil {
		a.pool.Close()
	}

	if a.tracingShutdown != nil {
		if err := a.tracingShutdown(shutdownCtx); err != nil {
			a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
