package tool

import (
	"github.com/gin-gonic/gin"
)

func FastReturnError(msg string) gin.H {
	return gin.H{
		"error": msg,
	}
}

func FastReturnSuccess() gin.H {
	return gin.H{
		"status": "ok",
	}
}

func FastReturnSuccessWithData(data any) gin.H {
	return gin.H{
		"data": data,
	}
}

// FastReturnSkipped marks a request that was deliberately dropped without a
// user-facing error (in-flight guard, duplicate submission).
func FastReturnSkipped(reason string) gin.H {
	return gin.H{
		"status":  "skipped",
		"skipped": reason,
	}
}
