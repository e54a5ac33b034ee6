package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"personal-assistant/config"
	assistantHTTP "personal-assistant/internal/assistant/delivery/http"
	calendarHTTP "personal-assistant/internal/calendar/delivery/http"
	intentHTTP "personal-assistant/internal/intent/delivery/http"
	"personal-assistant/internal/middleware"
	"personal-assistant/pkg/log"
	"personal-assistant/pkg/metrics"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware
	metrics         *metrics.HTTP

	// Domains
	intentHandler    intentHTTP.Handler
	assistantHandler assistantHTTP.Handler
	calendarHandler  calendarHTTP.Handler
}

// Config is the dependency bag passed to New(). A nil domain handler skips
// that domain's routes.
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	TrustedProxies  []string
	CORS            config.CORSConfig
	RateLimit       config.RateLimitConfig
	Metrics         *metrics.HTTP

	IntentHandler    intentHTTP.Handler
	AssistantHandler assistantHTTP.Handler
	CalendarHandler  calendarHTTP.Handler
}

// New creates a new HTTPServer instance with all routes mapped.
func New(cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:                cfg.Logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		shutdownTimeout:  cfg.ShutdownTimeout,
		metrics:          cfg.Metrics,
		intentHandler:    cfg.IntentHandler,
		assistantHandler: cfg.AssistantHandler,
		calendarHandler:  cfg.CalendarHandler,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	srv.mw = middleware.New(srv.l, cfg.CORS, cfg.RateLimit, cfg.Metrics)
	srv.mapHandlers()

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
