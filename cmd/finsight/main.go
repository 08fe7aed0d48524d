package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finsight/internal/api"
	"finsight/internal/api/handlers"
	"finsight/internal/contracts"
	"finsight/internal/service"
	"finsight/pkg/config"
	"finsight/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting finsight service")

	// Load contract registry (embedded defaults plus optional overlay dir)
	registry, err := contracts.Load(cfg.Contracts.Dir, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to load contract registry", zap.Error(err))
	}

	// Initialize services
	dispatchService := service.NewDispatchService(registry, appLogger)
	classificationService := service.NewClassificationService(appLogger)
	ratiosService := service.NewRatiosService(appLogger)
	riskService := service.NewRiskService(appLogger)
	analysisService := service.NewAnalysisService(
		registry,
		classificationService,
		ratiosService,
		riskService,
		appLogger,
	)

	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(dispatchService, analysisService, appLogger)
	contractHandler := handlers.NewContractHandler(registry, appLogger)

	// Setup router
	app := api.SetupRouter(analysisHandler, contractHandler)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
