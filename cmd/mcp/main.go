package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cadastral-mcp/internal/config"
	"github.com/cadastral-mcp/internal/delivery/mcp"
	"github.com/cadastral-mcp/internal/infrastructure/ipapi"
	"github.com/cadastral-mcp/internal/infrastructure/rosreestr"
	"github.com/cadastral-mcp/internal/infrastructure/rosreestr2coord"
	"github.com/cadastral-mcp/internal/pkg/logger"
	"github.com/cadastral-mcp/internal/usecase"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

const (
	serverName    = "rosreestr"
	serverVersion = "1.0.0"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize logger; stdout занят протоколом, логи только в stderr
	log, err := logger.New(cfg.Log.Level, "stderr")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting Rosreestr MCP server",
		zap.String("api_url", cfg.Rosreestr.BaseURL),
		zap.Bool("api_token_configured", cfg.HasAPIToken()),
		zap.String("designated_region", cfg.Routing.DesignatedRegion),
		zap.Bool("force_remote_api", cfg.Routing.ForceRemoteAPI))

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

	server := mcp.NewServer(dispatcher, mcp.ServerInfo{Name: serverName, Version: serverVersion}, log)

	// 5. Serve stdio until the client closes input or a signal arrives
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := server.Run(ctx, &sdkmcp.StdioTransport{}); err != nil &&
		!errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		log.Error("MCP server stopped with error", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}

	log.Info("MCP server stopped")
}
