package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"fusion-kitchen/agg-svc/internal/service"
	"fusion-kitchen/agg-svc/internal/storage"
	"fusion-kitchen/config"
)

const consumerGroup = "agg-svc-consumer"

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	rdb := config.MustInitRedis(cfg.Redis, logger)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.KafkaBroker, cfg.OrderEventsTopic, consumerGroup)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb), logger)
	consumer.Start(ctx)
}
