package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"personal-assistant/config"
	_ "personal-assistant/docs" // Swagger docs
	assistantHTTP "personal-assistant/internal/assistant/delivery/http"
	assistantUC "personal-assistant/internal/assistant/usecase"
	calendarHTTP "personal-assistant/internal/calendar/delivery/http"
	calendarUC "personal-assistant/internal/calendar/usecase"
	"personal-assistant/internal/httpserver"
	intentHTTP "personal-assistant/internal/intent/delivery/http"
	intentUC "personal-assistant/internal/intent/usecase"
	"personal-assistant/pkg/gauth"
	"personal-assistant/pkg/gcalendar"
	"personal-assistant/pkg/llmprovider"
	"personal-assistant/pkg/log"
	"personal-assistant/pkg/metrics"
	"personal-assistant/pkg/ner"
)

// @title       Personal Assistant API
// @description Intent parsing, language-model drafting and Google Calendar management.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Personal Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Intent domain
	intentHandler := intentHTTP.New(logger, intentUC.New(logger, ner.New()))

	// 4. Assistant domain (language model)
	var assistantHandler assistantHTTP.Handler
	llm, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Warnf(ctx, "Assistant routes disabled, no language model available: %v", err)
		logger.Warn(ctx, "→ Set OPENAI_API_KEY or configure llm.providers")
	} else {
		logger.Infof(ctx, "Language model providers: %v", llm.Providers())
		assistantHandler = assistantHTTP.New(logger, assistantUC.New(logger, llm, cfg.LLM.MaxTokens))
	}

	// 5. Calendar domain
	var calendarHandler calendarHTTP.Handler
	calendarClient, err := newCalendarClient(ctx, cfg.GoogleCalendar, logger)
	if err != nil {
		logger.Warnf(ctx, "Calendar routes disabled: %v", err)
		logger.Warn(ctx, "→ Run `go run ./scripts/gcal-auth` to authorize Google Calendar")
	} else {
		logger.Info(ctx, "Google Calendar initialized")
		calendarHandler = calendarHTTP.New(logger, calendarUC.New(logger, calendarClient, cfg.GoogleCalendar.CalendarID))
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		ShutdownTimeout:  cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:   cfg.HTTPServer.TrustedProxies,
		CORS:             cfg.CORS,
		RateLimit:        cfg.RateLimit,
		Metrics:          metrics.MustNew(prometheus.NewRegistry()),
		IntentHandler:    intentHandler,
		AssistantHandler: assistantHandler,
		CalendarHandler:  calendarHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newCalendarClient loads the OAuth client, makes sure a usable credential
// bundle exists and builds the Calendar client on top of it.
func newCalendarClient(ctx context.Context, cfg config.GoogleCalendarConfig, logger log.Logger) (*gcalendar.Client, error) {
	oauthCfg, err := gauth.LoadOAuthConfig(cfg.CredentialsPath, gcalendar.Scope)
	if err != nil {
		return nil, err
	}

	var authorizer gauth.Authorizer
	if cfg.Interactive {
		authorizer = &gauth.LocalServerFlow{Port: cfg.AuthPort, Out: os.Stderr}
	}

	manager := gauth.NewManager(gauth.Config{
		OAuth:      oauthCfg,
		Store:      gauth.NewFileStore(cfg.TokenPath),
		Logger:     logger,
		Authorizer: authorizer,
	})

	ts, err := manager.Ensure(ctx)
	if err != nil {
		return nil, err
	}

	return gcalendar.NewClient(ctx, ts)
}
