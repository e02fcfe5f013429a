package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxRequestIDKey is the gin context key carrying the per-request ID.
const CtxRequestIDKey = "request_id"

// RequestIDMiddleware injects a unique request_id into the Gin context and
// echoes it as X-Request-ID so clients can correlate error reports with
// server logs.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set(CtxRequestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
