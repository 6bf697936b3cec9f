package types

// UploadedFile records a file the backend accepted for one MediaKind slot.
// A later successful upload for the same kind replaces it wholesale; a
// session reset clears it.
type UploadedFile struct {
	StorageName  string `json:"storageName"`  // backend-assigned opaque token
	OriginalName string `json:"originalName"` // display name as selected by the user
	SizeLabel    string `json:"sizeLabel"`    // human-readable size, backend-formatted
	DownloadURL  string `json:"downloadUrl"`  // download URL for the original
}

// CompressorSettings holds the per-kind knobs the compress flow reads.
// Zero width/height means unconstrained.
type CompressorSettings struct {
	Quality   int `json:"quality"`
	MaxWidth  int `json:"maxWidth"`
	MaxHeight int `json:"maxHeight"`
}

// Default quality per kind, restored on every reset.
const (
	DefaultImageQuality = 85
	DefaultVideoQuality = 70
)

// DefaultCompressorSettings returns the documented defaults for a kind.
func DefaultCompressorSettings(kind MediaKind) CompressorSettings {
	quality := DefaultImageQuality
	if kind == MediaKindVideo {
		quality = DefaultVideoQuality
	}
	return CompressorSettings{Quality: quality}
}

// SessionSnapshot is the read-only view of the tracker returned to the web UI.
type SessionSnapshot struct {
	UploadInProgress bool                             `json:"uploadInProgress"`
	Files            map[MediaKind]*UploadedFile      `json:"files"`
	Settings         map[MediaKind]CompressorSettings `json:"settings"`
}
