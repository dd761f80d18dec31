package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aartibhkm/admin2/config"
)

// RequestIDHeader carries the request id back to the caller
const RequestIDHeader = "X-Request-ID"

// ContextRequestID is the context key the request id is stored under
const ContextRequestID = "requestID"

// RequestID assigns each request a uuid, echoes it in the response header
// and logs the request line with it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(ContextRequestID, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()

		config.Info("[%s] %s %s -> %d", requestID, c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}
