package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/seguros-online/app-simulacao/internal/config"
	middlewares "github.com/seguros-online/app-simulacao/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		RateLimitRPS:   5,
		RateLimitBurst: 10,
	}
}

func TestSetupRouterServesPagesAndProbes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, err := SetupRouter(testConfig(), Deps{})
	require.NoError(t, err)

	for _, path := range []string{"/", "/simulacao", "/simulacao/auto", "/liveness", "/readiness", "/api/v1/categorias"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Header().Get(middlewares.RequestIDHeader), path)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nao-existe", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetupRouterHealthShowsLocalMode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, err := SetupRouter(testConfig(), Deps{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quote_endpoint":"local"`)
}

func TestSetupRouterRateLimitsPosts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1
	r, err := SetupRouter(cfg, Deps{})
	require.NoError(t, err)

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contacto", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusUnprocessableEntity, post())
	assert.Equal(t, http.StatusTooManyRequests, post())

	// GETs não consomem o limite
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/categorias", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetupRouterCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, err := SetupRouter(testConfig(), Deps{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/simulacao", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
