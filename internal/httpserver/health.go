package httpserver

import (
	"github.com/gin-gonic/gin"

	"personal-scheduling-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Tu agenda, siempre a mano"
	HealthVersion = "1.0.0"
	ServiceName   = "personal-scheduling-assistant"
)

// healthPayload is shared by the three probe endpoints; only status differs.
func healthPayload(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck reports overall service health.
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthPayload("healthy"))
}

// readyCheck reports readiness to serve traffic.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, healthPayload("ready"))
}

// liveCheck reports process liveness.
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthPayload("alive"))
}
