package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OnlyAllowLocal rejects everything not coming from the local machine. The
// agent API mutates session state, so it is not meant to be exposed beyond
// the browser sitting next to it.
func OnlyAllowLocal(c *gin.Context) {
	if c.ClientIP() == "127.0.0.1" || c.ClientIP() == "::1" {
		c.Next()
	} else {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	}
}
