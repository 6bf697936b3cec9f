package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harune/mediasqueeze-go/tool"
	"github.com/harune/mediasqueeze-go/transfer"
)

const backendProbeTimeout = 800 * time.Millisecond

// AgentStatus returns agent liveness and backend reachability for the web UI.
// GET /api/agent/v1/status
func AgentStatus(c *gin.Context) {
	cfg := tool.GetCurrentConfig()
	reachable := false
	if host := tool.BackendHost(cfg.BackendURL); host != "" {
		reachable = tool.QuickICMPProbe(host, backendProbeTimeout)
	}
	c.JSON(http.StatusOK, gin.H{
		"running":           true,
		"backend_url":       cfg.BackendURL,
		"backend_reachable": reachable,
	})
}

// TriggerCleanup forwards a cleanup sweep request to the backend.
// POST /api/agent/v1/cleanup
func TriggerCleanup(c *gin.Context) {
	cfg := tool.GetCurrentConfig()
	result, err := transfer.RequestCleanup(context.Background(), cfg.BackendURL)
	if err != nil {
		c.JSON(http.StatusBadGateway, tool.FastReturnError("Cleanup failed: "+err.Error()))
		return
	}
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "Cleanup failed"
		}
		c.JSON(http.StatusBadGateway, tool.FastReturnError(msg))
		return
	}
	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(result))
}
