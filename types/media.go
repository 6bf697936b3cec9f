package types

import (
	"fmt"
	"strings"
)

// MediaKind is one of the two upload categories the agent handles.
// The set is closed: every session slot, settings entry and backend
// request is keyed by one of these.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// AllMediaKinds lists every supported kind, in UI tab order.
var AllMediaKinds = []MediaKind{MediaKindImage, MediaKindVideo}

// ParseMediaKind normalizes a wire value ("image" | "video") into a MediaKind.
func ParseMediaKind(s string) (MediaKind, error) {
	switch MediaKind(strings.ToLower(strings.TrimSpace(s))) {
	case MediaKindImage:
		return MediaKindImage, nil
	case MediaKindVideo:
		return MediaKindVideo, nil
	default:
		return "", fmt.Errorf("unknown media kind: %q (expected \"image\" or \"video\")", s)
	}
}

// String implements fmt.Stringer, returning the wire value.
func (k MediaKind) String() string {
	return string(k)
}

// Label returns the kind name for user-facing messages.
func (k MediaKind) Label() string {
	switch k {
	case MediaKindVideo:
		return "video"
	default:
		return "image"
	}
}
