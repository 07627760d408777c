package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReadinessProbe reports whether the model provider is currently being
// short-circuited.
type ReadinessProbe interface {
	Open() bool
}

// HealthHandler handles the index and health check endpoints.
type HealthHandler struct {
	service string
	version string
	probe   ReadinessProbe
}

// NewHealthHandler creates a new HealthHandler. probe may be nil.
func NewHealthHandler(service, version string, probe ReadinessProbe) *HealthHandler {
	return &HealthHandler{service: service, version: version, probe: probe}
}

// Index handles GET /
// @Summary Service index
// @Description Service name, version and the available endpoints
// @Tags health
// @Produce json
// @Success 200 {object} IndexResponse
// @Router / [get]
func (h *HealthHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, IndexResponse{
		Service: h.service,
		Version: h.version,
		Endpoints: []string{
			"GET /health",
			"GET /readyz",
			"POST /classify-text",
			"POST /upload",
			"POST /api/classify",
			"GET /swagger/index.html",
		},
	})
}

// Liveness handles GET /health and GET /healthz
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Service: h.service})
}

// Readiness handles GET /readyz
// @Summary Readiness check
// @Description Reports 503 while the language-model provider is rate limited
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.probe != nil && h.probe.Open() {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:  "unavailable",
			Service: h.service,
			Detail:  "language model provider is rate limited",
		})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ready", Service: h.service})
}
