package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"chainlens/internal/backend"
	"chainlens/internal/config"
	"chainlens/internal/feed"
	"chainlens/internal/model"
	"chainlens/internal/session"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig("cmd/config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewProduction(zap.Fields(zap.String("service", "chainlens")))
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	client := backend.New(cfg.Backend.BaseURL, cfg.Backend.APIKey,
		backend.WithCache(256, cfg.Backend.CacheTTL.Std()))

	if _, err := client.Health(ctx); err != nil {
		logger.Warn("backend health check failed, starting anyway", zap.Error(err))
	}

	chains := session.New(model.ChainBitcoin)
	logger.Info("session initialized", zap.String("active_chain", chains.Active().String()))

	feed.Run(ctx, cfg, client, &feed.LogSink{Log: logger}, logger)

	select {}
}
