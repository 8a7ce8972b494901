package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bootline/internal/config"
	"bootline/internal/infrastructure"
	httpiface "bootline/internal/interfaces/http"
	"bootline/internal/repository"
	"bootline/internal/usecases"
)

func main() {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	store, dataSource := repository.LoadOrders(cfg.Data.CSVPaths)

	classifier := usecases.NewClassifier(usecases.DefaultRules)
	executor := usecases.NewActionExecutor(store)
	composer := usecases.NewResponseComposer()
	kpi := usecases.NewKPIService(store)

	var agent *usecases.AgentService
	if cfg.Model.APIKey != "" {
		client := infrastructure.NewAnthropicClient(
			cfg.Model.APIKey,
			cfg.Model.BaseURL,
			cfg.Model.Name,
			cfg.Model.MaxTokens,
			time.Duration(cfg.Model.TimeoutSec)*time.Second,
		)
		agent = usecases.NewAgentService(client, executor, cfg.Model.MaxRounds)
		slog.Info("agent mode enabled", "model", cfg.Model.Name)
	} else {
		slog.Warn("no model API key configured, using template replies")
	}

	handler := httpiface.NewHandler(store, classifier, executor, composer, agent, kpi, dataSource)
	mw := httpiface.NewMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	if strings.ToLower(cfg.LogLevel) != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	handler.SetupRoutes(router, mw)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("starting server", "addr", addr, "records", store.Count())
	if err := router.Run(addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
}
