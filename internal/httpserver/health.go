package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"university-assistant/pkg/response"
)

const (
	ServiceName    = "university-assistant"
	ServiceVersion = "1.0.0"
)

// statusBody is shared by the system probes.
func (srv HTTPServer) statusBody(status string) gin.H {
	return gin.H{
		"status":      status,
		"service":     ServiceName,
		"version":     ServiceVersion,
		"environment": srv.environment,
		"uptime":      time.Since(srv.startedAt).Truncate(time.Second).String(),
	}
}

// healthCheck reports that the process is up.
// @Summary Health Check
// @Description Reports that the intake API process is serving requests
// @Tags System
// @Produce json
// @Success 200 {object} response.Resp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.statusBody("healthy"))
}

// readyCheck also lists the storage, webhook and classifier backends the process was wired with.
// @Summary Readiness Check
// @Description Reports readiness and the configured backends
// @Tags System
// @Produce json
// @Success 200 {object} response.Resp
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	body := srv.statusBody("ready")
	body["components"] = srv.components
	response.OK(c, body)
}

// @Summary Liveness Check
// @Tags System
// @Produce json
// @Success 200 {object} response.Resp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{"status": "alive"})
}
