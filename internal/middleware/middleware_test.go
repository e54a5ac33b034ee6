package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-assistant/config"
	"personal-assistant/pkg/log"
	"personal-assistant/pkg/metrics"
)

func newEngine(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFromContext(c.Request.Context()))
	})
	return r
}

func get(r http.Handler, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), config.CORSConfig{}, config.RateLimitConfig{}, nil)
	r := newEngine(mw, mw.RequestID())

	w := get(r, nil)
	require.Equal(t, http.StatusOK, w.Code)
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String(), "id is stored in the request context")

	w = get(r, map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6 and one token per second.
	mw := New(log.NewNop(), config.CORSConfig{}, config.RateLimitConfig{Enabled: true, RequestsPerMin: 60}, nil)
	r := newEngine(mw, mw.RateLimit())
	require.NoError(t, r.SetTrustedProxies([]string{"192.0.2.1"}))

	alice := map[string]string{"X-Forwarded-For": "10.0.0.1"}
	for i := 0; i < 6; i++ {
		require.Equal(t, http.StatusOK, get(r, alice).Code, "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, get(r, alice).Code)

	bob := map[string]string{"X-Forwarded-For": "10.0.0.2"}
	assert.Equal(t, http.StatusOK, get(r, bob).Code, "limits are per client behind a trusted proxy")
}

func TestRateLimit_IgnoresHeadersFromUntrustedPeer(t *testing.T) {
	// 10/min gives a burst of 1.
	mw := New(log.NewNop(), config.CORSConfig{}, config.RateLimitConfig{Enabled: true, RequestsPerMin: 10}, nil)
	r := newEngine(mw, mw.RateLimit())
	require.NoError(t, r.SetTrustedProxies(nil))

	limited := 0
	for i := 0; i < 50; i++ {
		w := get(r, map[string]string{
			"X-Forwarded-For": "10.0.0." + strconv.Itoa(i),
			"X-Real-IP":       "10.1.0." + strconv.Itoa(i),
		})
		if w.Code == http.StatusTooManyRequests {
			limited++
		}
	}
	assert.Equal(t, 49, limited, "rotating forwarding headers must not reset the budget")
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(log.NewNop(), config.CORSConfig{}, config.RateLimitConfig{Enabled: false, RequestsPerMin: 1}, nil)
	r := newEngine(mw, mw.RateLimit())

	for i := 0; i < 20; i++ {
		require.Equal(t, http.StatusOK, get(r, nil).Code)
	}
}

func TestMetrics(t *testing.T) {
	m := metrics.MustNew(prometheus.NewRegistry())
	mw := New(log.NewNop(), config.CORSConfig{}, config.RateLimitConfig{}, m)
	r := newEngine(mw, mw.Metrics())

	get(r, nil)
	get(r, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestCount.WithLabelValues(http.MethodGet, "/ping", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.InFlight))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestCount.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

func TestMetrics_PanickingHandler(t *testing.T) {
	m := metrics.MustNew(prometheus.NewRegistry())
	mw := New(log.NewNop(), config.CORSConfig{}, config.RateLimitConfig{}, m)
	r := newEngine(mw, gin.Recovery(), mw.Metrics())
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
		require.Equal(t, http.StatusInternalServerError, w.Code)
	}

	assert.Equal(t, 0.0, testutil.ToFloat64(m.InFlight))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.RequestCount.WithLabelValues(http.MethodGet, "/boom", "500")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration), "latency is observed for the panicking route")
}

func TestCORS(t *testing.T) {
	mw := New(log.NewNop(), config.CORSConfig{Enabled: true, AllowOrigins: []string{"https://app.example.com"}}, config.RateLimitConfig{}, nil)
	r := newEngine(mw, mw.CORS())

	w := get(r, map[string]string{"Origin": "https://app.example.com"})
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = get(r, map[string]string{"Origin": "https://evil.example.com"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCORS_Disabled(t *testing.T) {
	mw := New(log.NewNop(), config.CORSConfig{Enabled: false}, config.RateLimitConfig{}, nil)
	r := newEngine(mw, mw.CORS())

	w := get(r, map[string]string{"Origin": "https://any.example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
