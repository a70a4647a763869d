package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	customerHandler "github.com/dosahouse/pos-order-service/backend/internal/api/handlers/customer"
	itemHandler "github.com/dosahouse/pos-order-service/backend/internal/api/handlers/item"
	orderHandler "github.com/dosahouse/pos-order-service/backend/internal/api/handlers/order"
	"github.com/dosahouse/pos-order-service/backend/internal/api/server"
	"github.com/dosahouse/pos-order-service/backend/internal/config"
	"github.com/dosahouse/pos-order-service/backend/internal/pkg/cache"
	"github.com/dosahouse/pos-order-service/backend/internal/pkg/logger"
	"github.com/dosahouse/pos-order-service/backend/internal/pkg/validator"
	customerRepo "github.com/dosahouse/pos-order-service/backend/internal/repository/customer"
	itemRepo "github.com/dosahouse/pos-order-service/backend/internal/repository/item"
	orderRepo "github.com/dosahouse/pos-order-service/backend/internal/repository/order"
	customerService "github.com/dosahouse/pos-order-service/backend/internal/service/customer"
	itemService "github.com/dosahouse/pos-order-service/backend/internal/service/item"
	orderService "github.com/dosahouse/pos-order-service/backend/internal/service/order"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()
	log := logger.SetupLogger(cfg.Logger.Env, cfg.Logger.LogFilePath)
	defer log.Sync()

	runMigrations(cfg, log)

	dbpool, err := pgxpool.New(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal("error creating connection pool", zap.Error(err))
	}

	custRepo := customerRepo.New(dbpool)
	itRepo := itemRepo.New(dbpool)
	ordRepo := orderRepo.New(dbpool)

	orderCache := cache.New(cfg.Cache.TTL, cfg.Cache.CleanupInterval, log, ordRepo)
	if err = orderCache.Preload(ctx, cfg.Cache.PreloadLimit); err != nil {
		log.Warn("order cache preload failed, continuing with a cold cache", zap.Error(err))
	}

	custService := customerService.New(custRepo, orderCache)
	itService := itemService.New(itRepo, orderCache)
	ordService := orderService.New(ordRepo, orderCache)

	val := validator.New()

	ch := customerHandler.New(log, val, custService)
	ih := itemHandler.New(log, val, itService)
	oh := orderHandler.New(log, val, ordService)

	r := server.NewRouter(ch, ih, oh)
	srv := server.NewServer(cfg.Server.HTTPPort, r)

	go func() {
		log.Info("starting HTTP server", zap.String("port", cfg.Server.HTTPPort))
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("shutting down HTTP server...")
	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("could not shutdown HTTP server", zap.Error(err))
		os.Exit(1)
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		log.Fatal("timeout exceeded, forcing shutdown")
	}

	log.Info("closing database pool...")
	dbpool.Close()
}

func runMigrations(cfg *config.Config, log *zap.Logger) {
	m, err := migrate.New("file://"+cfg.MigrationsPath, cfg.DatabaseURL())
	if err != nil {
		log.Fatal("error creating migration instance", zap.Error(err))
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal("error running migrations", zap.Error(err))
	}

	log.Info("database schema up to date")
}
