package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticHealth bool

func (h staticHealth) Healthy(context.Context) bool { return bool(h) }

func newTestServer(t *testing.T, healthy bool) *Server {
	t.Helper()
	s := New(&Config{Port: DefaultPort, CorsOrigins: []string{"*"}}, staticHealth(healthy)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health")
	t.Cleanup(s.stop)
	return s
}

func TestServer_HealthChecks(t *testing.T) {
	for _, healthy := range []bool{true, false} {
		s := newTestServer(t, healthy)

		rec := httptest.NewRecorder()
		s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		if healthy {
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
		} else {
			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		}
	}
}

func TestServer_RequestIDAndErrors(t *testing.T) {
	s := newTestServer(t, true)
	s.Echo.GET("/boom", func(c echo.Context) error {
		return errors.New("loader crashed")
	})
	s.Echo.GET("/panic", func(c echo.Context) error {
		panic("unexpected")
	})

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch resources","details":"loader crashed"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServer_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_hits_total", Help: "test"})
	require.NoError(t, reg.Register(counter))
	counter.Inc()

	s := newTestServer(t, true).SetupMetrics("/metrics", reg)

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_hits_total 1")
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", " https://a.example , https://b.example,")
	t.Setenv("USE_HTTP2", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.True(t, cfg.UseHttp2)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CorsOrigins)

	t.Setenv("CORS_ORIGINS", "")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins)

	for _, port := range []string{"http", "0", "70000"} {
		t.Setenv("PORT", port)
		_, err := LoadConfig()
		assert.Error(t, err, port)
	}
}
