package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/adapters"
	"storefront/internal/adapters/storage"
	"storefront/internal/catalog"
	catalogsvc "storefront/internal/catalog/service"
	"storefront/internal/checkout"
	"storefront/internal/events"
	apphttp "storefront/internal/http"
	"storefront/internal/http/router"
	"storefront/internal/scheduler"
	"storefront/internal/search"
	"storefront/internal/storefront"
	"storefront/internal/storefront/component"
	"storefront/platform/config"
	"storefront/platform/db"
	"storefront/platform/logger"
	"storefront/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

const storageBucketEnsureErrPrefix = "failed to ensure storage bucket exists: "
const storageBucketEnsureErrMsg = "failed to ensure storage bucket exists"

// ensureBucket wraps the retry logic for verifying a MinIO bucket exists.
func ensureBucket(ctx context.Context, log *logger.Logger, storageSvc storage.StorageService, name, bucket string) {
	if err := withRetry(ctx, log, "ensure "+name+" bucket", 5, 2*time.Second, func() error {
		return storageSvc.EnsureBucketExists(ctx, bucket)
	}); err != nil {
		log.Error(storageBucketEnsureErrMsg, "error", err, "bucket", bucket)
		panic(storageBucketEnsureErrPrefix + err.Error())
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	health := map[string]apphttp.HealthChecker{}

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	var pool *pgxpool.Pool
	if cfg.IsDatabaseEnabled() {
		if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
			p, err := db.NewPool(ctx, cfg)
			if err != nil {
				return err
			}
			pool = p
			return nil
		}); err != nil {
			log.Error("failed to connect to database", "error", err)
			panic("failed to connect to database: " + err.Error())
		}
		defer pool.Close()
		log.Info("database connection established")

		if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
			return db.RunMigrations(ctx, pool)
		}); err != nil {
			log.Error("failed to run database migrations", "error", err)
			panic("failed to run database migrations: " + err.Error())
		}
		log.Info("database migrations complete")
		health["database"] = db.NewPoolAdapter(pool)
	} else {
		log.Warn("DATABASE_URL not configured; serving the in-memory catalog")
	}

	var images catalogsvc.ImageResolver
	if cfg.IsMinIOEnabled() {
		storageSvc, err := storage.NewMinIOService(cfg)
		if err != nil {
			log.Error("failed to initialize storage", "error", err)
			panic("failed to initialize storage: " + err.Error())
		}
		ensureBucket(ctx, log, storageSvc, "product images", cfg.GetMinioBucketProductImages())
		images = adapters.NewProductImagePresigner(storageSvc, cfg.GetMinioBucketProductImages(), log)
	}

	queue, closeQueue := initCheckoutQueue(cfg, log)
	if closeQueue != nil {
		defer closeQueue()
	}

	if cfg.GetRedisURL() != "" {
		redisHealth, err := scheduler.NewRedisHealth(cfg)
		if err != nil {
			log.Error("failed to initialize redis health check", "error", err)
		} else {
			defer func() { _ = redisHealth.Close() }()
			health["redis"] = redisHealth
		}
	}

	eventBus := events.NewInMemoryBus(log)
	val := validator.New()

	// ========================================================================
	// Domain Modules
	// ========================================================================

	var catalogModule *catalog.Module
	if pool != nil {
		catalogModule = catalog.NewModule(pool, images, val, log)
	} else {
		catalogModule, err = catalog.NewMemoryModule(cfg, images, val, log)
		if err != nil {
			log.Error("failed to seed catalog", "error", err)
			panic("failed to seed catalog: " + err.Error())
		}
	}

	checkoutModule := checkout.NewModule(eventBus, queue, log)
	searchModule := search.NewModule(adapters.NewCatalogSearchSource(catalogModule.Service()), val)

	// Anti-Corruption Layer: the cart only sees catalog products through its own Product type
	cartProducts := adapters.NewCartProductReader(catalogModule.Service())
	checkoutSvc := checkoutModule.Service()
	emitters := func(sessionID string) component.CheckoutEmitter {
		return adapters.NewCartCheckoutEmitter(checkoutSvc, sessionID)
	}

	storefrontModule := storefront.NewModule(cartProducts, searchModule.Service(), emitters, cfg, val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   health,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			catalogModule,
			searchModule,
			storefrontModule,
		},
	}

	engine := router.New(app)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		storefrontModule.RunSweeper(gctx)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		panic("server error: " + err.Error())
	}
	log.Info("server stopped", "open_sessions", storefrontModule.Sessions().Len())
}

func initCheckoutQueue(cfg config.SchedulerConfig, log *logger.Logger) (scheduler.CheckoutEnqueuer, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; checkout intents will only be logged")
		return nil, nil
	}

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize checkout queue client", "error", err)
		return nil, nil
	}

	return client, func() {
		_ = client.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
