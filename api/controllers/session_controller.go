package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harune/mediasqueeze-go/api/models"
	"github.com/harune/mediasqueeze-go/tool"
	"github.com/harune/mediasqueeze-go/types"
)

// SessionState returns the current session snapshot plus visible result
// panels, enough for the web UI to render itself from scratch.
// GET /api/agent/v1/state
func SessionState(c *gin.Context) {
	snapshot := models.Snapshot()
	results := make(map[string]*types.CompressResult)
	for _, kind := range types.AllMediaKinds {
		if r, ok := models.GetResultPanel(kind); ok {
			results[kind.String()] = r
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"session": snapshot,
		"results": results,
	})
}

// ResetSession clears both slots, the in-flight flag and all panels, and
// restores default settings. The UI calls this on every tab switch; it is
// idempotent so repeated calls are harmless.
// POST /api/agent/v1/reset
func ResetSession(c *gin.Context) {
	models.ResetAll()
	c.JSON(http.StatusOK, tool.FastReturnSuccess())
}

// settingsPatchRequest updates the compressor knobs for one kind. These are
// the "UI controls" the compress flow reads.
type settingsPatchRequest struct {
	FileType  string `json:"file_type"`
	Quality   *int   `json:"quality,omitempty"`
	MaxWidth  *int   `json:"max_width,omitempty"`
	MaxHeight *int   `json:"max_height,omitempty"`
}

// PatchSettings stores user-chosen quality and dimension constraints.
// PATCH /api/agent/v1/settings
func PatchSettings(c *gin.Context) {
	var request settingsPatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Invalid request body: "+err.Error()))
		return
	}
	kind, err := types.ParseMediaKind(request.FileType)
	if err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError(err.Error()))
		return
	}

	settings := models.GetSettings(kind)
	if request.Quality != nil {
		if *request.Quality < 1 || *request.Quality > 100 {
			c.JSON(http.StatusBadRequest, tool.FastReturnError("quality must be between 1 and 100"))
			return
		}
		settings.Quality = *request.Quality
	}
	if request.MaxWidth != nil {
		settings.MaxWidth = max(*request.MaxWidth, 0)
	}
	if request.MaxHeight != nil {
		settings.MaxHeight = max(*request.MaxHeight, 0)
	}
	models.SetSettings(kind, settings)

	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(settings))
}
