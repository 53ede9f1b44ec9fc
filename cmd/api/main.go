package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/rings-closed-engine/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/rings-closed-engine/internal/adapters/handler/http"
	"github.com/comitanigiacomo/rings-closed-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/rings-closed-engine/internal/config"
	"github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"
	"github.com/comitanigiacomo/rings-closed-engine/internal/core/services"
	"github.com/comitanigiacomo/rings-closed-engine/internal/core/workers"
	"github.com/comitanigiacomo/rings-closed-engine/internal/logger"
)

// @title       Rings Closed Engine API
// @version     1.0
// @description Stores daily activity summaries and computes per-dimension activity streaks.
// @BasePath    /api/v1
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Critical: invalid configuration: %v", err)
	}

	lg := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = lg.Sync() }()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lg.Info("Connecting to database...", zap.String("host", cfg.DBHost), zap.String("database", cfg.DBName))

	db, err := sqlx.Connect("pgx", cfg.DSN())
	if err != nil {
		lg.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.DBMaxOpen)
	db.SetMaxIdleConns(cfg.DBMaxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := repository.EnsureSchema(ctx, db, lg); err != nil {
		lg.Fatal("Failed to prepare database schema", zap.Error(err))
	}

	lg.Info("Database connected successfully")

	rdb, err := cache.NewRedisClient(ctx, cache.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		PoolSize: cfg.RedisPoolSize,
	})
	if err != nil {
		lg.Warn("Redis unavailable, running without cache and rate limiting", zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close()
	}

	userRepo := repository.NewPostgresUserRepository(db.DB)
	snapshotRepo := repository.NewPostgresSnapshotRepository(db)
	activityRepo := activityRepository(db, rdb, cfg.CacheTTL, lg)

	worker := workers.NewStreakWorker(userRepo, activityRepo, snapshotRepo, workers.Options{
		QueueSize:   cfg.WorkerQueueSize,
		Concurrency: cfg.SnapshotConcurrency,
	}, lg)
	worker.Start(ctx)
	worker.StartScheduler(ctx, cfg.RefreshInterval)

	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL, userRepo)
	authService := services.NewAuthService(userRepo, tokenService).WithDefaultTimezone(cfg.Location().String())
	activityService := services.NewActivityService(activityRepo, worker)
	streakService := services.NewStreakService(userRepo, activityRepo, snapshotRepo)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:     adapterHTTP.NewAuthHandler(authService),
		ActivityHandler: adapterHTTP.NewActivityHandler(activityService),
		StreakHandler:   adapterHTTP.NewStreakHandler(streakService),
		Tokens:          tokenService,
		DB:              db,
		Redis:           rdb,
		Logger:          lg,
		StartTime:       startTime,
		RateLimit:       cfg.RateLimit,
		RateWindow:      cfg.RateLimitWindow,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		lg.Info("Rings Closed Engine listening", zap.String("addr", srv.Addr), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("Critical server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	lg.Info("Stop signal received. Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("Forced shutdown", zap.Error(err))
		return
	}

	lg.Info("Server stopped gracefully")
}

// activityRepository puts the Redis read cache in front of Postgres when Redis is reachable.
func activityRepository(db *sqlx.DB, rdb *redis.Client, ttl time.Duration, lg *zap.Logger) domain.ActivityRepository {
	pg := repository.NewPostgresActivityRepository(db)
	if rdb == nil {
		return pg
	}
	return repository.NewCachedActivityRepository(pg, rdb, ttl, lg)
}
