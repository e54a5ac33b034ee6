package middleware

import (
	"personal-assistant/config"
	"personal-assistant/pkg/log"
	"personal-assistant/pkg/metrics"
)

// Middleware bundles the cross-cutting gin handlers of the HTTP server.
type Middleware struct {
	l       log.Logger
	cors    config.CORSConfig
	limiter *rateLimiter
	metrics *metrics.HTTP
}

// New creates the middleware set. A nil metrics disables request metrics and
// a disabled rate limit config disables throttling.
func New(l log.Logger, cors config.CORSConfig, rl config.RateLimitConfig, m *metrics.HTTP) Middleware {
	mw := Middleware{
		l:       l,
		cors:    cors,
		metrics: m,
	}
	if rl.Enabled && rl.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(rl.RequestsPerMin, rl.MaxTrackedPeers)
	}
	return mw
}
