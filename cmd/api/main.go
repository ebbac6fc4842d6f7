package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/linskybing/oasis/docs"
	"github.com/linskybing/oasis/internal/api/handlers"
	"github.com/linskybing/oasis/internal/api/middleware"
	"github.com/linskybing/oasis/internal/api/routes"
	"github.com/linskybing/oasis/internal/application"
	"github.com/linskybing/oasis/internal/config"
	"github.com/linskybing/oasis/internal/config/db"
	"github.com/linskybing/oasis/internal/cron"
	"github.com/linskybing/oasis/internal/logging"
	"github.com/linskybing/oasis/internal/notify"
	"github.com/linskybing/oasis/internal/observability/metrics"
	"github.com/linskybing/oasis/internal/observability/tracing"
	"github.com/linskybing/oasis/internal/repository"
	"github.com/linskybing/oasis/internal/seed"
	"github.com/linskybing/oasis/internal/storage"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// @title OASIS API
// @version 1.0
// @description Internship matching between companies, apprentices and instructors.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()
	logging.Init(config.LogLevel, config.IsProduction)
	log := logging.L()

	// Initialize JWT signing key
	middleware.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := "development"
	if config.IsProduction {
		env = "production"
	}
	shutdownTracing, err := tracing.Init(ctx, config.OtelEndpoint, config.ServiceName, env)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize tracing")
	}

	// Initialize database connection and schema
	db.Init()
	if err := db.Migrate(db.DB); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	var (
		notifier notify.Notifier    = notify.NewMemoryNotifier()
		limiter  middleware.Limiter = middleware.NewMemoryLimiter()
	)
	if config.RedisURL != "" {
		rdb, err := notify.NewRedisClient(config.RedisURL)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to redis")
		}
		defer func() { _ = rdb.Close() }()
		notifier = notify.NewRedisNotifier(rdb, config.NoticeTTL)
		limiter = middleware.NewRedisLimiter(rdb)
	} else {
		log.Warn("REDIS_URL not set, notices and rate limits are kept in process")
	}

	var blobs storage.BlobStore
	if minioStore, err := storage.NewMinioStore(ctx); err != nil {
		log.WithError(err).Warn("object storage unavailable, uploads are kept in memory")
		blobs = storage.NewMemoryStore()
	} else {
		blobs = minioStore
	}

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, blobs)

	if err := services.User.EnsureReservedAdmin(); err != nil {
		log.WithError(err).Fatal("failed to provision reserved admin")
	}
	if f, err := seed.Load(config.SeedFile, services.Catalog); err != nil {
		log.WithError(err).Fatal("failed to seed catalog")
	} else if config.SeedFile != "" {
		log.WithField("programs", len(f.Programs)).WithField("sectors", len(f.Sectors)).Info("catalog seeded")
	}

	// Start background tasks
	cron.StartCleanupTask(ctx, services.Audit)

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logging.Middleware())
	router.Use(metrics.Middleware())
	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, handlers.New(services, notifier), middleware.NewAuth(notifier), limiter)

	server := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           otelhttp.NewHandler(router, config.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("addr", server.Addr).Info("starting API server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start")
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown error")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.WithError(err).Warn("tracing shutdown error")
	}
	log.Info("server stopped")
}
