package middleware

import (
	"go-leave/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger must run after AuthMiddleware so the user id and role are known.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString(ContextRequestID)
		if rid == "" {
			rid = c.GetHeader(HeaderRequestID)
		}
		if !validRequestID(rid) {
			rid = uuid.NewString()
			c.Set(ContextRequestID, rid)
			c.Header(HeaderRequestID, rid)
		}

		uid, role := Actor(c)

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("user_id", uid),
			zap.String("role", string(role)),
		)

		// service/repo ambil metadata lewat contextutil tanpa tahu gin
		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
