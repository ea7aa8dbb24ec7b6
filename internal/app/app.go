// Package app wires configuration, clients, and services into a single
// application container shared by the server and command entrypoints.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/agrilens/agrilens/internal/catalog"
	"github.com/agrilens/agrilens/internal/clients/gemini"
	"github.com/agrilens/agrilens/internal/clients/yahoo"
	"github.com/agrilens/agrilens/internal/common"
	"github.com/agrilens/agrilens/internal/interfaces"
	"github.com/agrilens/agrilens/internal/services/commentary"
	"github.com/agrilens/agrilens/internal/services/market"
)

// App holds the wired application components.
type App struct {
	Config *common.Config
	Logger *common.Logger

	Catalog *catalog.Store

	MarketClient interfaces.MarketDataClient
	GeminiClient interfaces.GenerativeClient

	MarketService     interfaces.MarketService
	CommentaryService interfaces.CommentaryService

	StartupTime time.Time
}

// NewApp creates and wires the application. An empty configPath falls back to
// AGRILENS_CONFIG, then agrilens.toml beside the binary, then
// config/agrilens.toml in the working directory.
func NewApp(configPath string) (*App, error) {
	common.LoadVersionFromFile()

	config, err := common.LoadConfig(resolveConfigPaths(configPath)...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	logger.Info().
		Str("version", common.GetVersion()).
		Str("environment", config.Environment).
		Msg("Initializing application")

	app := &App{
		Config:      config,
		Logger:      logger,
		Catalog:     catalog.NewStore(),
		StartupTime: time.Now(),
	}

	app.MarketClient = yahoo.NewClient(
		yahoo.WithBaseURL(config.Clients.Yahoo.BaseURL),
		yahoo.WithRateLimit(config.Clients.Yahoo.RateLimit),
		yahoo.WithTimeout(config.Clients.Yahoo.GetTimeout()),
		yahoo.WithLogger(logger),
	)
	app.MarketService = market.NewService(app.MarketClient, logger)

	// Commentary is optional: without a Gemini key every other endpoint
	// still works.
	apiKey, err := common.ResolveAPIKey("gemini_api_key", config.Clients.Gemini.APIKey)
	if err != nil {
		logger.Warn().Err(err).Msg("Gemini API key not configured, commentary disabled")
		return app, nil
	}

	geminiClient, err := gemini.NewClient(context.Background(), apiKey,
		gemini.WithModel(config.Clients.Gemini.Model),
		gemini.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	app.GeminiClient = geminiClient
	app.CommentaryService = commentary.NewService(app.MarketClient, geminiClient, app.Catalog, logger)

	return app, nil
}

// resolveConfigPaths returns the config file candidates in merge order.
func resolveConfigPaths(configPath string) []string {
	if configPath != "" {
		return []string{configPath}
	}
	if env := os.Getenv("AGRILENS_CONFIG"); env != "" {
		return []string{env}
	}

	var paths []string
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), "agrilens.toml"))
	}
	paths = append(paths, filepath.Join("config", "agrilens.toml"))
	return paths
}
