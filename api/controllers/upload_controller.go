package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harune/mediasqueeze-go/api/models"
	"github.com/harune/mediasqueeze-go/notify"
	"github.com/harune/mediasqueeze-go/tool"
	"github.com/harune/mediasqueeze-go/transfer"
	"github.com/harune/mediasqueeze-go/types"
)

// SubmitUpload drives one file selection through validate → submit →
// store-session. The global in-flight flag serializes uploads across both
// media kinds; a second selection while one is outstanding is dropped
// silently, matching the UI race semantics rather than erroring.
// POST /api/agent/v1/upload  (multipart: file, file_type)
func SubmitUpload(c *gin.Context) {
	kind, err := types.ParseMediaKind(c.PostForm("file_type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError(err.Error()))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		// Absent selection is a validation failure, surfaced to the user.
		notify.Error(kind, "no file selected")
		c.JSON(http.StatusBadRequest, tool.FastReturnError("no file selected"))
		return
	}
	fileName := fileHeader.Filename

	// Duplicate-submission suppression: a re-fired selection event for the
	// same name is dropped before validation, while the previous submission
	// has not settled.
	if models.IsDuplicateSubmission(kind, fileName) {
		tool.DefaultLogger.Debugf("Same file already being uploaded, skipping: %s", fileName)
		c.JSON(http.StatusOK, tool.FastReturnSkipped("duplicate"))
		return
	}

	if models.IsUploadInProgress() {
		// Log-only, no user-facing error: this is a UI race, not a user mistake.
		tool.DefaultLogger.Debugf("Upload already in progress, dropping %s submission %q", kind.Label(), fileName)
		c.JSON(http.StatusOK, tool.FastReturnSkipped("upload_in_progress"))
		return
	}

	if err := tool.CheckFile(kind, fileName, fileHeader.Size); err != nil {
		notify.Error(kind, err.Error())
		c.JSON(http.StatusBadRequest, tool.FastReturnError(err.Error()))
		return
	}

	epoch, ok := models.TryBeginUpload(kind, fileName)
	if !ok {
		tool.DefaultLogger.Debugf("Upload already in progress, dropping %s submission %q", kind.Label(), fileName)
		c.JSON(http.StatusOK, tool.FastReturnSkipped("upload_in_progress"))
		return
	}
	// Terminal guarantee: flag and token are released exactly once no matter
	// how this submission ends.
	defer models.FinishUpload(kind)

	submissionID := tool.GenerateShortSubmissionID()
	notify.BusyStart(submissionID, fmt.Sprintf("Uploading %s...", kind.Label()))
	defer notify.BusyEnd(submissionID)

	src, err := fileHeader.Open()
	if err != nil {
		notify.Error(kind, "failed to read selected file")
		c.JSON(http.StatusInternalServerError, tool.FastReturnError("failed to read selected file: "+err.Error()))
		return
	}
	defer func() {
		if err := src.Close(); err != nil {
			tool.DefaultLogger.Errorf("Failed to close uploaded file: %v", err)
		}
	}()

	backendURL := tool.GetCurrentConfig().BackendURL
	tool.DefaultLogger.Infof("[%s] Uploading %s: %s (%s)", submissionID, kind.Label(), fileName, tool.FormatFileSize(fileHeader.Size))

	// Background context: once dispatched, the submission runs to completion
	// even if the UI connection goes away.
	result, err := transfer.SubmitFile(context.Background(), backendURL, kind, fileName, src)
	if err != nil {
		notify.Error(kind, "Upload failed: "+err.Error())
		c.JSON(http.StatusBadGateway, tool.FastReturnError("Upload failed: "+err.Error()))
		return
	}
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "Upload failed"
		}
		notify.Error(kind, msg)
		c.JSON(http.StatusBadGateway, tool.FastReturnError(msg))
		return
	}
	if result.Filename == "" {
		// Success flag without a storage token: treat as a backend error
		// rather than storing an unusable slot.
		notify.Error(kind, "Upload failed")
		c.JSON(http.StatusBadGateway, tool.FastReturnError("Upload failed"))
		return
	}

	uploaded := &types.UploadedFile{
		StorageName:  result.Filename,
		OriginalName: result.OriginalName,
		SizeLabel:    result.FileSize,
		DownloadURL:  tool.RebaseDownloadURL(backendURL, result.DownloadURL),
	}
	if !models.StoreUploadedFile(epoch, kind, uploaded) {
		// A reset happened while the request was in flight; the cleared
		// session stays cleared.
		tool.DefaultLogger.Warnf("[%s] Discarding stale upload response for %s: %s", submissionID, kind.Label(), result.Filename)
		c.JSON(http.StatusOK, tool.FastReturnSkipped("stale"))
		return
	}
	models.HideResultPanel(kind)
	notify.UploadDone(kind, uploaded)

	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(uploaded))
}
