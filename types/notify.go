package types

// Notification represents a notification message structure
type Notification struct {
	Type    string         `json:"type,omitempty"`    // Notification type, e.g. "busy_start", "upload_done", etc.
	Title   string         `json:"title,omitempty"`   // Notification title
	Message string         `json:"message,omitempty"` // Notification message/content
	Data    map[string]any `json:"data,omitempty"`    // Additional data fields
}

// Notification types broadcast to the web UI.
const (
	NotifyTypeBusyStart    = "busy_start"    // a network submission was dispatched
	NotifyTypeBusyEnd      = "busy_end"      // the submission settled, UI returns to idle
	NotifyTypeUploadDone   = "upload_done"   // show file info, hide stale result panel
	NotifyTypeCompressDone = "compress_done" // show result panel, scroll into view
	NotifyTypeError        = "error"         // user-visible failure message
)
