package tool

import "fmt"

// FormatFileSize renders a byte count the same way the backend does, so
// locally produced labels line up with backend-formatted ones.
func FormatFileSize(size int64) string {
	value := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if value < 1024.0 {
			return fmt.Sprintf("%.2f %s", value, unit)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%.2f TB", value)
}
