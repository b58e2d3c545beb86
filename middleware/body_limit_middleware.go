package middleware

import (
	limits "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"
)

// BodyLimit rejects request bodies larger than maxBytes with 413.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return limits.RequestSizeLimiter(maxBytes)
}
