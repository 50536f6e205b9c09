package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"schooladmin_backend/internals/configs"
	database "schooladmin_backend/internals/databases"
	"schooladmin_backend/internals/features/reports/catalog"
	"schooladmin_backend/internals/features/users/auth/scheduler"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/logging"
	middlewares "schooladmin_backend/internals/middlewares"
	"schooladmin_backend/internals/observability"
	"schooladmin_backend/internals/observability/metrics"
	routes "schooladmin_backend/internals/route"
	"schooladmin_backend/internals/seeds"
)

var version = "dev"

func main() {
	envLoaded := configs.LoadEnv()

	cfg, err := configs.Load()
	if err != nil {
		panic(err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer lg.Closer()
	log := lg.Base
	log.Info("starting", zap.String("env", cfg.Env), zap.String("version", version), zap.Bool("dotenv", envLoaded))

	flushSentry, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, version)
	if err != nil {
		log.Warn("sentry disabled", zap.Error(err))
	}
	defer flushSentry()
	metrics.Init()

	// report definitions are checked before anything is served
	cat, err := catalog.Load()
	if err != nil {
		log.Fatal("report catalog invalid", zap.Error(err))
	}

	// 🔌 DB connect + pool + migrations
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}
	defer database.Close(db)
	if err := database.TunePool(db); err != nil {
		log.Fatal("db pool", zap.Error(err))
	}
	if cfg.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := database.Migrate(ctx, db)
		cancel()
		if err != nil {
			log.Fatal("migrations failed", zap.Error(err))
		}
		log.Info("migrations applied")
	}

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = seeds.RunAllSeeds(seedCtx, db, cfg, log)
	seedCancel()
	if err != nil {
		log.Fatal("seeding failed", zap.Error(err))
	}

	cleanup, err := scheduler.StartRefreshTokenCleanup(db, cfg.TokenCleanupSchedule, log)
	if err != nil {
		log.Fatal("invalid TOKEN_CLEANUP_SCHEDULE", zap.Error(err))
	}
	defer cleanup.Stop()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ErrorHandler:          helper.ErrorHandler(log),
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	middlewares.SetupMiddlewares(app, cfg, log)
	routes.SetupRoutes(app, db, cfg, cat, log)

	// Start server non-blocking
	go func() {
		log.Info("listening", zap.String("port", cfg.Port))
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
}
