// Package middleware holds the gin middleware shared by every MacBench
// route: request ids, access logging, metrics, CORS, panic recovery and
// body limits.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID carries the request id in both directions.
	HeaderRequestID = "X-Request-ID"

	contextKeyRequestID = "request_id"
	maxRequestIDLength  = 128
)

// RequestID reuses a sane incoming X-Request-ID or generates a UUID, stores
// it on the gin context and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		c.Set(contextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// GetRequestID returns the id set by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(contextKeyRequestID)
}

//Personal.AI order the ending
