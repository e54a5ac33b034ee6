package httpserver

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-assistant/config"
	"personal-assistant/internal/intent"
	intentHTTP "personal-assistant/internal/intent/delivery/http"
	intentUC "personal-assistant/internal/intent/usecase"
	"personal-assistant/pkg/log"
	"personal-assistant/pkg/metrics"
	"personal-assistant/pkg/ner"
)

type stubExtractor struct{}

func (stubExtractor) Extract(ctx context.Context, text string) ([]ner.Entity, error) {
	return []ner.Entity{}, nil
}

func newIntentHandler() intentHTTP.Handler {
	var uc intent.UseCase = intentUC.New(log.NewNop(), stubExtractor{})
	return intentHTTP.New(log.NewNop(), uc)
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{Mode: gin.TestMode, Port: 1})
	assert.Error(t, err, "logger is required")

	_, err = New(Config{Logger: log.NewNop(), Port: 1})
	assert.Error(t, err, "mode is required")

	_, err = New(Config{Logger: log.NewNop(), Mode: gin.TestMode})
	assert.Error(t, err, "port is required")
}

func TestRoutes(t *testing.T) {
	srv, err := New(Config{
		Logger:        log.NewNop(),
		Port:          5000,
		Mode:          gin.TestMode,
		Environment:   "test",
		Metrics:       metrics.MustNew(prometheus.NewRegistry()),
		IntentHandler: newIntentHandler(),
	})
	require.NoError(t, err)
	h := srv.Handler()

	t.Run("health", func(t *testing.T) {
		for _, path := range []string{"/health", "/live"} {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code, path)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		}
	})

	t.Run("ready lists domains", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data struct {
				Domains map[string]bool `json:"domains"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, map[string]bool{"intent": true, "assistant": false, "calendar": false}, body.Data.Domains)
	})

	t.Run("parse intent end to end", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/parse-intent", strings.NewReader(`{"input":"set a reminder"}`))
		req.Header.Set("Content-Type", "application/json")
		h.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"intent":"set_reminder","entities":[]}`, w.Body.String())
	})

	t.Run("unconfigured domain is absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/view-upcoming-events", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `personal_assistant_http_requests_total{method="POST",route="/parse-intent",status="200"} 1`)
	})
}

func TestReady_NoDomains(t *testing.T) {
	srv, err := New(Config{Logger: log.NewNop(), Port: 5000, Mode: gin.TestMode})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestNew_InvalidTrustedProxies(t *testing.T) {
	_, err := New(Config{Logger: log.NewNop(), Port: 5000, Mode: gin.TestMode, TrustedProxies: []string{"not-an-ip"}})
	assert.Error(t, err)
}

func TestRateLimit_ForwardedForFromUntrustedPeer(t *testing.T) {
	srv, err := New(Config{
		Logger:        log.NewNop(),
		Port:          5000,
		Mode:          gin.TestMode,
		RateLimit:     config.RateLimitConfig{Enabled: true, RequestsPerMin: 10},
		IntentHandler: newIntentHandler(),
	})
	require.NoError(t, err)
	h := srv.Handler()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/live", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0."+strconv.Itoa(i))
		h.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}

func TestRecovery(t *testing.T) {
	srv, err := New(Config{Logger: log.NewNop(), Port: 5000, Mode: gin.TestMode})
	require.NoError(t, err)
	srv.gin.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestRun_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	srv, err := New(Config{Logger: log.NewNop(), Port: port, Mode: gin.TestMode, ShutdownTimeout: time.Second})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + strconv.Itoa(port) + "/live")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
