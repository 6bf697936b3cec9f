package tool

import (
	"fmt"
	"strings"

	"github.com/harune/mediasqueeze-go/types"
)

// Allowed file extensions per media kind. Matching is case-insensitive on
// the substring after the last dot; a name without a dot never matches.
var (
	AllowedImageExtensions = []string{"png", "jpg", "jpeg", "gif", "bmp", "webp"}
	AllowedVideoExtensions = []string{"mp4", "avi", "mov", "mkv", "webm", "flv"}
)

// CheckFile decides whether a candidate file may be submitted. Pure: no side
// effects, no I/O. The returned error message is shown to the user verbatim.
func CheckFile(kind types.MediaKind, fileName string, size int64) error {
	if strings.TrimSpace(fileName) == "" {
		return fmt.Errorf("no file selected")
	}
	if size <= 0 {
		return fmt.Errorf("no file selected")
	}
	if size > MaxUploadBytes {
		return fmt.Errorf("file size exceeds 100MB limit, please choose a smaller file")
	}
	ext := extensionOf(fileName)
	switch kind {
	case types.MediaKindVideo:
		if !containsFold(AllowedVideoExtensions, ext) {
			return fmt.Errorf("invalid video format, allowed: MP4, AVI, MOV, MKV, WEBM, FLV")
		}
	default:
		if !containsFold(AllowedImageExtensions, ext) {
			return fmt.Errorf("invalid image format, allowed: PNG, JPG, JPEG, GIF, BMP, WEBP")
		}
	}
	return nil
}

// extensionOf returns the part after the last dot, or "" when there is none.
func extensionOf(fileName string) string {
	idx := strings.LastIndex(fileName, ".")
	if idx < 0 || idx == len(fileName)-1 {
		return ""
	}
	return fileName[idx+1:]
}

func containsFold(list []string, ext string) bool {
	if ext == "" {
		return false
	}
	for _, allowed := range list {
		if strings.EqualFold(allowed, ext) {
			return true
		}
	}
	return false
}
