package main

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/dosahouse/pos-order-service/backend/internal/config"
	"github.com/dosahouse/pos-order-service/backend/internal/pkg/kafka"
	"github.com/dosahouse/pos-order-service/backend/internal/pkg/kafka/handlers"
	"github.com/dosahouse/pos-order-service/backend/internal/pkg/logger"
	"github.com/dosahouse/pos-order-service/backend/internal/pkg/validator"
	orderRepo "github.com/dosahouse/pos-order-service/backend/internal/repository/order"
	orderService "github.com/dosahouse/pos-order-service/backend/internal/service/order"
)

func main() {
	var wg sync.WaitGroup

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()
	log := logger.SetupLogger(cfg.Logger.Env, cfg.Logger.LogFilePath)
	defer log.Sync()

	dbpool, err := pgxpool.New(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal("backend/cmd/consumer/main.go, error creating connection pool", zap.Error(err))
	}

	repo := orderRepo.New(dbpool)
	ordService := orderService.New(repo, nil)
	val := validator.New()

	orderCreatedHandler := handlers.NewCreateHandler(val, ordService)

	reader := kafka.NewReader(cfg.Kafka.GroupID, cfg.Kafka.Topic, cfg.Kafka.Brokers)
	consumer := kafka.NewConsumer(reader, log, orderCreatedHandler)
	wg.Add(1)
	go consumer.ConsumeMessage(ctx, &wg)

	log.Info("kafka consumer started")

	<-ctx.Done()
	log.Info("shutdown signal received")

	wg.Wait()

	log.Info("closing kafka consumer")
	err = consumer.Close()
	if err != nil {
		log.Error("backend/cmd/consumer/main.go, error closing kafka consumer", zap.Error(err))
	}

	log.Info("closing database pool")
	dbpool.Close()
}
