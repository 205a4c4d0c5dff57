package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Govind-619/EnrollPay/config"
)

// HealthController reports process liveness and configuration shape.
type HealthController struct {
	Config    *config.Config
	StartedAt time.Time
}

// NewHealthController records the process start time.
func NewHealthController(cfg *config.Config) *HealthController {
	return &HealthController{Config: cfg, StartedAt: time.Now()}
}

// GET /health
func (hc *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":              true,
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
		"env":             hc.Config.Env,
		"uptime":          time.Since(hc.StartedAt).Round(time.Second).String(),
		"sheetConfigured": hc.Config.SheetID != "",
		"webhookSecured":  hc.Config.WebhookSecret != "",
	})
}
