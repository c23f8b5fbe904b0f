// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController serves the liveness endpoint used by load balancers
// and the integration suite's readiness poll.
type HealthController struct {
	pingDB func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance. pingDB
// reports whether the database connection is usable.
func NewHealthController(pingDB func() bool) *HealthController {
	return &HealthController{pingDB: pingDB}
}

// Check handles GET /health requests. The endpoint always answers 200;
// a broken database shows up in the payload rather than the status code
// so the process is not restarted for a transient outage.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := "disconnected"
	if h.pingDB != nil && h.pingDB() {
		dbStatus = "connected"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Database:  dbStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
