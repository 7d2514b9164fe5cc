package main

import (
	"context"
	"net/http"
	"time"

	"fusion-kitchen/config"
	httpapi "fusion-kitchen/kitchen-svc/internal/api/http"
	"fusion-kitchen/kitchen-svc/internal/service"
	"fusion-kitchen/kitchen-svc/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	db := config.MustInitPostgres(cfg.DB, logger)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		logger.Fatal("failed to ensure schema", zap.Error(err))
	}

	rdb := config.MustInitRedis(cfg.Redis, logger)
	defer rdb.Close()
	cache := storage.NewRedisCache(rdb, cfg.IdempotencyTTL)

	writer := config.NewKafkaWriter(cfg.KafkaBroker, cfg.OrderEventsTopic)
	defer writer.Close()
	publisher := storage.NewKafkaPublisher(writer)

	inventorySvc := service.NewInventoryService(repo, logger)
	orderSvc := service.NewOrderService(repo, inventorySvc, publisher, cache,
		service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}, logger)
	shoppingSvc := service.NewShoppingListService(
		service.NewLocalRecommender(repo),
		service.NewAgentRecommender(cfg.AgentURL, &http.Client{Timeout: 60 * time.Second}),
		logger)
	menuSvc := service.NewMenuService(repo)
	reportSvc := service.NewReportService(repo, cache, logger)

	handler := httpapi.NewHandler(orderSvc, inventorySvc, shoppingSvc, menuSvc, reportSvc, logger)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(cfg.HTTPAddr, router, logger)
}
