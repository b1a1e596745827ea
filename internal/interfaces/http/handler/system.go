package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bizdesk/backend/internal/infrastructure/persistence"
)

// SystemHandler handles health and info endpoints
type SystemHandler struct {
	BaseHandler
	db        *persistence.Database
	appName   string
	version   string
	startedAt time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database, appName, version string) *SystemHandler {
	return &SystemHandler{
		db:        db,
		appName:   appName,
		version:   version,
		startedAt: time.Now(),
	}
}

// Health handles GET /system/health. The store is pinged so load
// balancers see a failing backend before operators do.
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	storeStatus := "ok"
	if err := h.db.Ping(); err != nil {
		status = "degraded"
		storeStatus = "unavailable"
	}

	h.Success(c, gin.H{
		"status": status,
		"store":  storeStatus,
		"uptime": time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// Info handles GET /system/info
func (h *SystemHandler) Info(c *gin.Context) {
	h.Success(c, gin.H{
		"name":    h.appName,
		"version": h.version,
	})
}
