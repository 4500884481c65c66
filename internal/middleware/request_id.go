package middleware

import (
	"go-leave/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID  = "X-Request-ID"
	ContextRequestID = "request_id"

	// outbox_events.request_id is VARCHAR(64)
	maxRequestIDLength = 64
)

// RequestID accepts a caller supplied X-Request-ID when it is short and printable,
// otherwise a fresh uuid is issued. The id is echoed back on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if !validRequestID(rid) {
			rid = uuid.NewString()
		}

		c.Set(ContextRequestID, rid)
		c.Request = c.Request.WithContext(contextutil.WithRequestID(c.Request.Context(), rid))
		c.Header(HeaderRequestID, rid)
		c.Next()
	}
}

func validRequestID(rid string) bool {
	if rid == "" || len(rid) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(rid); i++ {
		if rid[i] < 0x21 || rid[i] > 0x7e {
			return false
		}
	}
	return true
}
