package types

// UploadResult is the backend /upload response body.
// Success is reported in-band; a missing or false success flag means the
// Error field carries the reason (possibly empty).
type UploadResult struct {
	Success      bool   `json:"success"`
	Filename     string `json:"filename"` // backend storage token
	OriginalName string `json:"original_name"`
	FileSize     string `json:"file_size"` // backend-formatted, e.g. "2.00 MB"
	FileType     string `json:"file_type,omitempty"`
	DownloadURL  string `json:"download_url"`
	Error        string `json:"error,omitempty"`
}
