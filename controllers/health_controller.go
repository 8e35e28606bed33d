package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"storefront/utils"
)

// HealthCheck reports process liveness and which storage mode is active.
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  cfg.StorageMode,
		"uptime":    time.Since(startTime).Round(time.Second).String(),
	})
}

// APIStatus describes the service and its public endpoints.
func APIStatus(c *gin.Context) {
	utils.Success(c, "Service status", gin.H{
		"status":   "ok",
		"version":  Version,
		"database": cfg.StorageMode,
		"endpoints": []string{
			"POST /api/orders",
			"POST /api/payments",
			"POST /api/admin/login",
			"POST /api/admin/logout",
			"GET /api/admin/check",
			"GET /api/admin/stats",
			"GET /api/admin/orders",
			"GET /health",
			"GET /api/status",
		},
	})
}
