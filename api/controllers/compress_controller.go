package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harune/mediasqueeze-go/api/models"
	"github.com/harune/mediasqueeze-go/notify"
	"github.com/harune/mediasqueeze-go/tool"
	"github.com/harune/mediasqueeze-go/transfer"
	"github.com/harune/mediasqueeze-go/types"
)

// compressSubmitRequest carries optional overrides for the stored compressor
// settings. Values come from free-form UI controls, so they are accepted as
// any JSON scalar and coerced; absent or non-numeric means "use stored".
type compressSubmitRequest struct {
	FileType  string `json:"file_type"`
	Quality   any    `json:"quality,omitempty"`
	MaxWidth  any    `json:"max_width,omitempty"`
	MaxHeight any    `json:"max_height,omitempty"`
}

// SubmitCompression reads the session slot and compressor settings for a
// kind and drives one compression request against the backend. There is no
// global in-flight guard here: compressions for different kinds may overlap,
// and a same-kind overlap is last-response-wins on the result panel.
// POST /api/agent/v1/compress
func SubmitCompression(c *gin.Context) {
	var request compressSubmitRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Invalid request body: "+err.Error()))
		return
	}
	kind, err := types.ParseMediaKind(request.FileType)
	if err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError(err.Error()))
		return
	}

	uploaded, ok := models.GetUploadedFile(kind)
	if !ok {
		msg := fmt.Sprintf("please upload a %s file first", kind.Label())
		notify.Error(kind, msg)
		c.JSON(http.StatusBadRequest, tool.FastReturnError(msg))
		return
	}

	settings := models.GetSettings(kind)
	quality := coerceInt(request.Quality, settings.Quality)
	if quality < 1 || quality > 100 {
		quality = settings.Quality
	}
	maxWidth := coerceInt(request.MaxWidth, settings.MaxWidth)
	maxHeight := coerceInt(request.MaxHeight, settings.MaxHeight)

	submissionID := tool.GenerateShortSubmissionID()
	notify.BusyStart(submissionID, fmt.Sprintf("Compressing %s... This may take a moment for large files.", kind.Label()))
	defer notify.BusyEnd(submissionID)

	backendURL := tool.GetCurrentConfig().BackendURL
	tool.DefaultLogger.Infof("[%s] Compressing %s %s: quality=%d maxWidth=%d maxHeight=%d",
		submissionID, kind.Label(), uploaded.StorageName, quality, maxWidth, maxHeight)

	result, err := transfer.SubmitCompression(context.Background(), backendURL, &types.CompressRequest{
		Filename:  uploaded.StorageName,
		FileType:  kind,
		Quality:   quality,
		MaxWidth:  maxWidth,
		MaxHeight: maxHeight,
	})
	if err != nil {
		notify.Error(kind, "Compression failed: "+err.Error())
		c.JSON(http.StatusBadGateway, tool.FastReturnError("Compression failed: "+err.Error()))
		return
	}
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "Compression failed"
		}
		notify.Error(kind, msg)
		c.JSON(http.StatusBadGateway, tool.FastReturnError(msg))
		return
	}

	result.DownloadURL = tool.RebaseDownloadURL(backendURL, result.DownloadURL)
	models.SetResultPanel(kind, result)
	notify.CompressDone(kind, result)

	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(result))
}

// coerceInt turns a JSON scalar into an int, falling back when the value is
// absent or not numeric. Mirrors the UI's parseInt-or-default handling of
// free-text dimension inputs.
func coerceInt(v any, fallback int) int {
	switch n := v.(type) {
	case nil:
		return fallback
	case float64:
		return int(n)
	case int:
		return n
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return fallback
		}
		parsed, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
