package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dkwon/shoplab-backend/config"
	"github.com/dkwon/shoplab-backend/internal/app/controller"
	"github.com/dkwon/shoplab-backend/internal/app/service"
	"github.com/dkwon/shoplab-backend/internal/db"
	"github.com/dkwon/shoplab-backend/internal/router"
	"github.com/dkwon/shoplab-backend/internal/seed"
	"github.com/dkwon/shoplab-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := cfg.Log.Level
	if logLevel == "" {
		logLevel = "info"
		if cfg.Server.Environment == "development" {
			logLevel = "debug"
		}
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      cfg.Log.Format,
		EnableColor: true,
	})

	logger.Info("Starting SHOPLAB Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize repositories
	repos := seed.NewRepositories(db.GetDB())

	// Initialize services
	seedService := service.NewSeedService(db.GetDB(), cfg.Seed)
	querylabService := service.NewQuerylabService(repos.Customers, repos.Products, repos.Orders)

	// Initialize controllers
	seedController := controller.NewSeedController(seedService)
	querylabController := controller.NewQuerylabController(querylabService)

	// Setup router
	r := router.NewRouter(seedController, querylabController, cfg)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
