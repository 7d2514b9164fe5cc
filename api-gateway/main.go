package main

import (
	"net/http"
	"time"

	"fusion-kitchen/api-gateway/internal/gateway"
	"fusion-kitchen/config"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	gw := gateway.NewGateway(gateway.Config{
		KitchenSvcURL: cfg.Gateway.KitchenSvcURL,
		AgentURL:      cfg.AgentURL,
		FrontendDir:   cfg.Gateway.FrontendDir,
	}, &http.Client{Timeout: 60 * time.Second}, logger)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(gw.SetupRoutes())

	logger.Info("api gateway starting", zap.String("addr", cfg.Gateway.Addr))
	if err := http.ListenAndServe(cfg.Gateway.Addr, handler); err != nil {
		logger.Fatal("api gateway stopped", zap.Error(err))
	}
}
