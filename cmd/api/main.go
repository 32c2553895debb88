package main

// @title Rosreestr Cadastral Tools API
// @version 1.0.0
// @description Координаты и сведения об объектах недвижимости по кадастровому номеру.
// @description
// @description Инструменты:
// @description - get_cadastral_coordinates - объект по кадастровому номеру
// @description - batch_get_cadastral_coordinates - пакетный запрос с общей FeatureCollection
// @description - check_ip_location - геолокация текущего IP (диагностика выбора источника)

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/cadastral-mcp/docs"
	"github.com/cadastral-mcp/internal/config"
	httpDelivery "github.com/cadastral-mcp/internal/delivery/http"
	"github.com/cadastral-mcp/internal/delivery/http/handler"
	"github.com/cadastral-mcp/internal/infrastructure/ipapi"
	"github.com/cadastral-mcp/internal/infrastructure/rosreestr"
	"github.com/cadastral-mcp/internal/infrastructure/rosreestr2coord"
	"github.com/cadastral-mcp/internal/pkg/logger"
	"github.com/cadastral-mcp/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Output)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Rosreestr Cadastral Tools API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("api_url", cfg.Rosreestr.BaseURL),
		zap.Bool("api_token_configured", cfg.HasAPIToken()),
		zap.String("designated_region", cfg.Routing.DesignatedRegion),
	)

	if !cfg.HasAPIToken() {
		log.Warn("ROSREESTR_API_TOKEN is not set, remote API requests will return a configuration error")
	}

	// 3. Initialize clients
	apiRepo := rosreestr.NewClient(&cfg.Rosreestr, log)
	parserRepo := rosreestr2coord.NewParser(&cfg.Direct, log)
	geoRepo := ipapi.NewClient(&cfg.Geo, log)

	// 4. Initialize use cases
	geoLocator := usecase.NewGeoLocator(geoRepo, cfg.Routing.DesignatedRegion, log)
	router := usecase.NewRouter(
		usecase.NewRemoteAPIStrategy(apiRepo, log),
		usecase.NewDirectLibraryStrategy(parserRepo, log),
		geoLocator,
		log,
	)
	batch := usecase.NewBatchAggregator(router, cfg.Routing.ForceRemoteAPI, log)
	dispatcher := usecase.NewToolDispatcher(router, batch, geoLocator, cfg.Routing.ForceRemoteAPI, log)

	// 5. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewToolHandler(dispatcher, log),
	)

	// 6. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
