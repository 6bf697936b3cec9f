package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// UploadRateLimit caps how fast the upload endpoint accepts submissions.
// A double-fired selection event already gets dropped by the in-flight
// guard; this keeps a misbehaving UI loop from hammering the backend.
func UploadRateLimit(perSecond int) gin.HandlerFunc {
	if perSecond < 1 {
		perSecond = 1
	}
	limiter := rate.NewLimiter(rate.Limit(perSecond), perSecond)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many upload requests"})
			return
		}
		c.Next()
	}
}
