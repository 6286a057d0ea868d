package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// Check verifica uma dependência; nil significa ok.
type Check func(ctx context.Context) error

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	checks map[string]Check
	info   map[string]string
}

// NewHealthHandler cria o handler com as verificações de prontidão e a
// informação estática (modo de envio, versão) devolvida em /health.
func NewHealthHandler(checks map[string]Check, info map[string]string) *HealthHandler {
	return &HealthHandler{checks: checks, info: info}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Info      map[string]string `json:"info,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva (sem checagem de dependências)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Verifica se a aplicação está pronta para receber tráfego (conteúdo e templates carregados)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	response := h.run(ctx, "ready", "not_ready")
	c.JSON(statusFromHealth(response.Status, "not_ready"), response)
}

// Health godoc
// @Summary Comprehensive health check endpoint
// @Description Verifica a saúde completa da aplicação e indica o modo de envio dos pedidos
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	response := h.run(ctx, "healthy", "unhealthy")
	response.Info = h.info
	c.JSON(statusFromHealth(response.Status, "unhealthy"), response)
}

func (h *HealthHandler) run(ctx context.Context, ok, failed string) HealthResponse {
	response := HealthResponse{
		Status:    ok,
		Checks:    make(map[string]string, len(h.checks)),
		Timestamp: time.Now().Unix(),
	}

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			response.Checks[name] = "failed"
			response.Status = failed
			if response.Error == "" {
				response.Error = name + ": " + err.Error()
			}
			continue
		}
		response.Checks[name] = "ok"
	}
	return response
}

func statusFromHealth(status, failed string) int {
	if status == failed {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
