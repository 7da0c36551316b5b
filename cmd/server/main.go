package main

import (
	"log"
	"os"
	"runtime"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/dharmasatrya/travelsearch/internal/config"
	"github.com/dharmasatrya/travelsearch/internal/handler"
	"github.com/dharmasatrya/travelsearch/internal/logging"
	"github.com/dharmasatrya/travelsearch/internal/search"
	"github.com/dharmasatrya/travelsearch/internal/serpapi"
)

const (
	serverName    = "serpapi-travel"
	serverVersion = "1.0.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("starting serpapi travel server",
		zap.String("version", serverVersion),
		zap.String("go_version", runtime.Version()),
		zap.String("transport", cfg.Transport))
	if wd, err := os.Getwd(); err == nil {
		logger.Info("working directory", zap.String("path", wd))
	}
	if cfg.EnvFileFound() {
		logger.Info(".env file found")
	} else {
		logger.Warn(".env file not found in current directory")
	}

	// A missing key degrades searches to error documents; it does not stop
	// the server from registering its tools.
	if cfg.SerpAPIKey == "" {
		logger.Warn("SERPAPI_API_KEY not found; searches will fail until it is configured")
	} else {
		logger.Info("SERPAPI_API_KEY found in environment")
	}

	client := serpapi.NewClient(serpapi.Config{
		APIKey:  cfg.SerpAPIKey,
		BaseURL: cfg.SerpAPIBaseURL,
		Timeout: cfg.RequestTimeout,
	}, logger)
	svc := search.NewService(client, logger)

	switch cfg.Transport {
	case "http":
		runHTTP(cfg, svc, logger)
	default:
		runStdio(svc, logger)
	}
}

func runStdio(svc *search.Service, logger *zap.Logger) {
	srv := server.NewMCPServer(serverName, serverVersion)
	handler.NewToolHandler(svc, logger).Register(srv)

	logger.Info("serving MCP over stdio")
	if err := server.ServeStdio(srv); err != nil {
		logger.Fatal("stdio server exited", zap.Error(err))
	}
}

func runHTTP(cfg config.Config, svc *search.Service, logger *zap.Logger) {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	// Inbound limit only; upstream calls stay strictly one per invocation.
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(20))))

	h := handler.NewSearchHandler(svc)
	api := e.Group("/api/v1")
	api.POST("/flights/search", h.SearchFlights)
	api.POST("/hotels/search", h.SearchHotels)
	e.GET("/health", handler.HealthHandler)

	logger.Info("serving HTTP", zap.String("addr", cfg.HTTPAddr))
	if err := e.Start(cfg.HTTPAddr); err != nil {
		logger.Fatal("HTTP server exited", zap.Error(err))
	}
}
