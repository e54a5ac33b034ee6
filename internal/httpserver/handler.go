package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "personal-assistant/internal/assistant/delivery/http"
	calendarHTTP "personal-assistant/internal/calendar/delivery/http"
	intentHTTP "personal-assistant/internal/intent/delivery/http"
	"personal-assistant/internal/model"
	"personal-assistant/pkg/response"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(
		gin.CustomRecovery(srv.recoverPanic),
		srv.mw.RequestID(),
		srv.mw.AccessLog(),
		srv.mw.Metrics(),
		srv.mw.CORS(),
		srv.mw.RateLimit(),
	)

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

// recoverPanic logs the panic and replies 500 without leaking details.
func (srv *HTTPServer) recoverPanic(c *gin.Context, rec any) {
	err := fmt.Errorf("panic: %v", rec)
	srv.l.Errorf(c.Request.Context(), "internal.httpserver.recoverPanic: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	response.InternalError(c, err)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes at the root path.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	if srv.intentHandler != nil {
		intentHTTP.RegisterRoutes(srv.gin, srv.intentHandler)
		srv.l.Infof(ctx, "Intent routes registered")
	} else {
		srv.l.Infof(ctx, "Intent handler not configured, skipping routes")
	}

	if srv.assistantHandler != nil {
		assistantHTTP.RegisterRoutes(srv.gin, srv.assistantHandler)
		srv.l.Infof(ctx, "Assistant routes registered")
	} else {
		srv.l.Infof(ctx, "Assistant handler not configured, skipping routes")
	}

	if srv.calendarHandler != nil {
		calendarHTTP.RegisterRoutes(srv.gin, srv.calendarHandler)
		srv.l.Infof(ctx, "Calendar routes registered")
	} else {
		srv.l.Infof(ctx, "Calendar handler not configured, skipping routes")
	}
}
