package httpserver

import (
	"github.com/gin-gonic/gin"

	"github.com/prubiera85/sd-notifications/pkg/response"
)

const (
	serviceName    = "sd-notifications"
	serviceVersion = "1.0.0"
)

// The service is a single stateless binary: once the process serves
// requests it is healthy, ready, and live all at once. The three routes
// exist so standard probe configs work unchanged; they differ only in
// the status string.
func (srv HTTPServer) probe(status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, gin.H{
			"status":  status,
			"service": serviceName,
			"version": serviceVersion,
		})
	}
}

// healthCheck responds to health probes.
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) { srv.probe("healthy")(c) }

// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) { srv.probe("ready")(c) }

// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) { srv.probe("alive")(c) }
