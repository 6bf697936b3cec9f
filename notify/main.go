package notify

import (
	"fmt"
	"sync"

	"github.com/harune/mediasqueeze-go/tool"
	"github.com/harune/mediasqueeze-go/types"
)

// Hub is the broadcast sink for UI notifications. Satisfied by notifyhub.Hub.
type Hub interface {
	Broadcast(notification *types.Notification)
}

var (
	mu        sync.RWMutex
	hub       Hub
	UseNotify = true
)

// SetUseNotify sets whether to broadcast notifications at all.
func SetUseNotify(use bool) {
	mu.Lock()
	defer mu.Unlock()
	UseNotify = use
}

// SetHub wires the websocket hub. Until it is set, notifications only hit the log.
func SetHub(h Hub) {
	mu.Lock()
	defer mu.Unlock()
	hub = h
}

func send(n *types.Notification) {
	mu.RLock()
	h, use := hub, UseNotify
	mu.RUnlock()
	if !use || h == nil {
		return
	}
	h.Broadcast(n)
}

// BusyStart tells the UI a submission is in flight. The message is
// kind-specific ("Uploading image...", "Compressing video...").
func BusyStart(submissionID, message string) {
	tool.DefaultLogger.Debugf("[%s] busy: %s", submissionID, message)
	send(&types.Notification{
		Type:    types.NotifyTypeBusyStart,
		Message: message,
		Data:    map[string]any{"submissionId": submissionID},
	})
}

// BusyEnd returns the UI to idle. Sent exactly once per submission, from the
// terminal path, regardless of outcome.
func BusyEnd(submissionID string) {
	send(&types.Notification{
		Type: types.NotifyTypeBusyEnd,
		Data: map[string]any{"submissionId": submissionID},
	})
}

// UploadDone shows the accepted file's info section and hides any stale
// result panel for the kind.
func UploadDone(kind types.MediaKind, file *types.UploadedFile) {
	tool.DefaultLogger.Infof("%s uploaded successfully: %s", kind.Label(), file.StorageName)
	send(&types.Notification{
		Type:    types.NotifyTypeUploadDone,
		Title:   fmt.Sprintf("%s uploaded", kind.Label()),
		Message: file.OriginalName,
		Data: map[string]any{
			"fileType":   kind.String(),
			"file":       file,
			"hideResult": true,
		},
	})
}

// CompressDone shows the result panel for the kind and asks the UI to scroll
// it into view.
func CompressDone(kind types.MediaKind, result *types.CompressResult) {
	tool.DefaultLogger.Infof("%s compressed successfully: %s", kind.Label(), result.CompressedFilename)
	send(&types.Notification{
		Type:    types.NotifyTypeCompressDone,
		Title:   fmt.Sprintf("%s compressed", kind.Label()),
		Message: fmt.Sprintf("%s, %.0f%% smaller", result.CompressedSize, result.CompressionRatio),
		Data: map[string]any{
			"fileType":       kind.String(),
			"result":         result,
			"scrollIntoView": true,
		},
	})
}

// Error surfaces a terminal failure to the user, verbatim.
func Error(kind types.MediaKind, message string) {
	tool.DefaultLogger.Warnf("%s flow error: %s", kind.Label(), message)
	send(&types.Notification{
		Type:    types.NotifyTypeError,
		Message: message,
		Data:    map[string]any{"fileType": kind.String()},
	})
}
