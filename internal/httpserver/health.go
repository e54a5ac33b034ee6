package httpserver

import (
	"github.com/gin-gonic/gin"

	pkgErrors "personal-assistant/pkg/errors"
	"personal-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "personal-assistant"
)

func (srv *HTTPServer) status(state string) gin.H {
	return gin.H{
		"status":      state,
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck reports which capabilities are wired. The service is ready
// once at least one domain is registered.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "No capability configured"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	domains := gin.H{
		"intent":    srv.intentHandler != nil,
		"assistant": srv.assistantHandler != nil,
		"calendar":  srv.calendarHandler != nil,
	}

	if srv.intentHandler == nil && srv.assistantHandler == nil && srv.calendarHandler == nil {
		body := srv.status("not_ready")
		body["domains"] = domains
		c.JSON(pkgErrors.ErrServiceUnavailable.StatusCode, response.Resp{
			ErrorCode: pkgErrors.ErrServiceUnavailable.StatusCode,
			Message:   pkgErrors.ErrServiceUnavailable.Message,
			Data:      body,
		})
		return
	}

	body := srv.status("ready")
	body["domains"] = domains
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
