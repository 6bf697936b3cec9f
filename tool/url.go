package tool

import (
	"fmt"
	"strings"
)

// BuildUploadURL builds the backend /upload URL.
func BuildUploadURL(backendURL string) string {
	return strings.TrimRight(backendURL, "/") + "/upload"
}

// BuildCompressURL builds the backend /compress URL.
func BuildCompressURL(backendURL string) string {
	return strings.TrimRight(backendURL, "/") + "/compress"
}

// BuildCleanupURL builds the backend /cleanup URL.
func BuildCleanupURL(backendURL string) string {
	return strings.TrimRight(backendURL, "/") + "/cleanup"
}

// RebaseDownloadURL makes a backend-relative download URL absolute. The
// backend hands out paths like /download/original/abc.png; the browser talks
// to the agent, so links must point at the backend host.
func RebaseDownloadURL(backendURL, downloadURL string) string {
	if downloadURL == "" || strings.Contains(downloadURL, "://") {
		return downloadURL
	}
	if !strings.HasPrefix(downloadURL, "/") {
		downloadURL = "/" + downloadURL
	}
	return fmt.Sprintf("%s%s", strings.TrimRight(backendURL, "/"), downloadURL)
}
