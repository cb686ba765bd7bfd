package main

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"personapath/internal/config"
	"personapath/internal/llm"
	"personapath/internal/repository"
	"personapath/internal/server"
	"personapath/internal/service"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	log := logrus.New()

	// Load configuration
	cfgPath := "configs/config.yml"
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Database connection
	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	repository.MigrateDB(db, logger)

	// Seed demo users, roles and mentors on an empty database
	if cfg.Seed.Enabled {
		if err := repository.SeedDemoData(db, service.HashPassword, logger); err != nil {
			logger.Warn("Failed to seed demo data", zap.Error(err))
		}
	}

	// LLM provider chain (optional - answers fall back to templates)
	llmClient, err := llm.NewMultiProviderClient(cfg.Assistant.Providers, cfg.Assistant.MaxFailures, logger)
	if err != nil {
		logger.Fatal("Failed to initialize LLM providers", zap.Error(err))
	}
	if llmClient != nil {
		defer llmClient.Close()
		logger.Info("LLM enrichment enabled", zap.Int("providers", len(cfg.Assistant.Providers)))
	}

	// Initialize and run the server
	srv, err := server.NewServer(db, cfg, llmClient, logger, log)
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}
	srv.Run(cfg.Server.Port)
}
