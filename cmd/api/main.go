package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"lifelog-engine/config"
	_ "lifelog-engine/docs" // Swagger docs
	"lifelog-engine/internal/currency"
	"lifelog-engine/internal/httpserver"
	"lifelog-engine/internal/middleware"
	"lifelog-engine/internal/parse"
	parseHTTP "lifelog-engine/internal/parse/delivery/http"
	parseUC "lifelog-engine/internal/parse/usecase"
	profileHTTP "lifelog-engine/internal/profile/delivery/http"
	profileMem "lifelog-engine/internal/profile/repository/memory"
	profileUC "lifelog-engine/internal/profile/usecase"
	"lifelog-engine/internal/router"
	varsHTTP "lifelog-engine/internal/vars/delivery/http"
	varsMem "lifelog-engine/internal/vars/repository/memory"
	varsUC "lifelog-engine/internal/vars/usecase"
	"lifelog-engine/pkg/datemath"
	"lifelog-engine/pkg/exchangerate"
	"lifelog-engine/pkg/llm"
	"lifelog-engine/pkg/log"
	"lifelog-engine/pkg/translate"
)

// @title       Lifelog Engine API
// @description Turns free-text life-log lines into classified, display-ready result items.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Lifelog Engine...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM manager. Classification and extraction share one fallback
	// chain; with no usable provider both degrade and the deterministic
	// pipeline carries the line.
	providers, err := llm.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "No usable LLM providers, deterministic fallbacks only: %v", err)
	}
	manager := llm.NewManager(providers, llmManagerConfig(cfg.LLM), logger)

	// 4. Translator (optional)
	var translator parse.Translator
	switch {
	case cfg.Translate.APIKey != "":
		client, trErr := translate.NewClientWithAPIKey(ctx, cfg.Translate.APIKey)
		if trErr != nil {
			logger.Warnf(ctx, "Translate not available (optional): %v", trErr)
		} else {
			translator = client
		}
	case cfg.Translate.CredentialsPath != "":
		client, trErr := translate.NewClientFromCredentialsFile(ctx, cfg.Translate.CredentialsPath)
		if trErr != nil {
			logger.Warnf(ctx, "Translate not available (optional): %v", trErr)
		} else {
			translator = client
		}
	default:
		logger.Info(ctx, "Translate not configured, parsing original text only")
	}

	// 5. Date/time sanitizer
	sanitizer, err := datemath.NewSanitizer(datemath.Config{
		Timezone: cfg.Engine.Timezone,
		DayFirst: cfg.Engine.DayFirst,
	})
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Engine.Timezone, err)
		sanitizer, _ = datemath.NewSanitizer(datemath.Config{Timezone: "UTC", DayFirst: cfg.Engine.DayFirst})
	}

	// 6. Currency converter (TTL-cached USD-pivot rates)
	rates := exchangerate.New()
	if cfg.Currency.BaseURL != "" {
		rates = rates.WithBaseURL(cfg.Currency.BaseURL)
	}
	cache := currency.NewCache()
	if ttl, ttlErr := time.ParseDuration(cfg.Currency.CacheTTL); ttlErr == nil && ttl > 0 {
		cache = expirable.NewLRU[string, float64](currency.CacheSize, nil, ttl)
	}
	converter := currency.New(logger, rates, cache)

	// 7. Domains
	profileUseCase := profileUC.New(logger, profileMem.New())
	varsUseCase := varsUC.New(logger, varsMem.New(), converter, profileUseCase)
	semanticRouter := router.New(manager, logger)
	parseUseCase := parseUC.New(logger, semanticRouter, manager, translator, sanitizer, varsUseCase, profileUseCase)

	// 8. Middleware
	mw := middleware.New(logger, middleware.Config{
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
	})

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Middleware:     mw,
		ParseHandler:   parseHTTP.New(logger, parseUseCase),
		VarsHandler:    varsHTTP.New(logger, varsUseCase),
		ProfileHandler: profileHTTP.New(logger, profileUseCase),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// llmManagerConfig converts the duration strings from config, falling back
// to safe defaults when they do not parse.
func llmManagerConfig(cfg config.LLMConfig) *llm.Config {
	retryDelay, err := time.ParseDuration(cfg.RetryDelay)
	if err != nil || retryDelay <= 0 {
		retryDelay = time.Second
	}

	maxTotal, err := time.ParseDuration(cfg.MaxTotalTimeout)
	if err != nil || maxTotal <= 0 {
		maxTotal = time.Minute
	}

	return &llm.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}
}
