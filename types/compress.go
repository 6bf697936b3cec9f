package types

// CompressRequest is the backend /compress request body.
// MaxWidth/MaxHeight of 0 mean unconstrained.
type CompressRequest struct {
	Filename  string    `json:"filename"` // storage token from the upload response
	FileType  MediaKind `json:"file_type"`
	Quality   int       `json:"quality"`
	MaxWidth  int       `json:"max_width"`
	MaxHeight int       `json:"max_height"`
}

// CompressResult is the backend /compress response body.
type CompressResult struct {
	Success            bool    `json:"success"`
	CompressedFilename string  `json:"compressed_filename"`
	CompressedSize     string  `json:"compressed_size"`
	CompressionRatio   float64 `json:"compression_ratio"` // percent reduction
	DownloadURL        string  `json:"download_url"`
	Error              string  `json:"error,omitempty"`
}

// CleanupResult is the backend /cleanup response body.
type CleanupResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
