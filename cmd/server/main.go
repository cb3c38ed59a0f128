package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/example/storefront/pkg/api"
	"github.com/example/storefront/pkg/config"
	"github.com/example/storefront/pkg/repository"
	"github.com/example/storefront/pkg/service"
)

func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "config/config.yaml"
}

func main() {
	// Load config
	cfg, err := config.Load(configPath())
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Setup logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting storefront API",
		zap.String("name", cfg.Server.Name),
		zap.Int("port", cfg.Server.Port))

	// Database
	db, err := repository.NewDB(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer repository.CloseDB(db)

	ctx := context.Background()

	// Redis cache (optional)
	var cache *repository.RedisRepository
	if cfg.Redis.Enabled {
		cache = repository.NewRedisRepository(&cfg.Redis)
		defer cache.Close()
		if err := cache.Ping(ctx); err != nil {
			logger.Warn("Redis connection failed", zap.Error(err))
		} else {
			logger.Info("Redis connected successfully")
		}
	}

	// MongoDB audit trail (optional)
	var audit *repository.MongoRepository
	if cfg.MongoDB.Enabled {
		audit, err = repository.NewMongoRepository(&cfg.MongoDB)
		if err != nil {
			logger.Warn("MongoDB connection failed, order auditing disabled", zap.Error(err))
			audit = nil
		} else {
			defer audit.Close(ctx)
		}
	}

	// Wire repositories and services
	catalog := service.NewCatalogService(
		repository.NewProductRepository(db),
		repository.NewReviewRepository(db),
		cache,
		cfg.Redis.CacheTTL,
		logger,
	)
	orders := service.NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewCustomerRepository(db),
		audit,
		logger,
	)

	handler := api.NewHandler(catalog, orders, logger, cfg.Database.StatementTimeout)
	server := api.NewServer(cfg, logger, handler)
	server.SetupRoutes()

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-serverErr:
		logger.Fatal("Server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down cleanly", zap.Error(err))
	}

	logger.Info("Service stopped")
}
