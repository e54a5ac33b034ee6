package middleware

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS returns the cross-origin handler, or a pass-through when disabled.
// An empty origin list or "*" allows any origin without credentials.
func (mw Middleware) CORS() gin.HandlerFunc {
	if !mw.cors.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(mw.cors.AllowOrigins) == 0 || slices.Contains(mw.cors.AllowOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = mw.cors.AllowOrigins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
