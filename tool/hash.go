package tool

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

func GenerateRandomUUID() string {
	return uuid.New().String()
}

// GenerateShortSubmissionID returns a short alphanumeric ID (8 chars) used to
// correlate one upload/compress submission across log lines and notifications.
func GenerateShortSubmissionID() string {
	b := make([]byte, 4) // 4 bytes = 8 hex chars
	if _, err := rand.Read(b); err != nil {
		return GenerateRandomUUID()[:8] // fallback
	}
	return hex.EncodeToString(b)
}
