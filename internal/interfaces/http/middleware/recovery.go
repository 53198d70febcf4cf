package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/MacBench/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MacBench/pkg/errors"
)

// Recovery turns a panic into a masked 500 response and an Error log entry.
func Recovery(logger logging.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("panic recovered",
			logging.String("panic", fmt.Sprint(recovered)),
			logging.String("path", c.Request.URL.Path),
			logging.String("request_id", GetRequestID(c)),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"code":      errors.ErrCodeInternal.String(),
			"message":   errors.DefaultMessageForCode(errors.ErrCodeInternal),
			"requestId": GetRequestID(c),
		})
	})
}

// BodyLimit caps request bodies at limit bytes.  Zero disables the cap.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}

//Personal.AI order the ending
