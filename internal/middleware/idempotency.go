package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-leave/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	idempotencyLockTTL   = 30 * time.Second
	idempotencyResultTTL = 24 * time.Hour
)

// storedResponse is what a finished request leaves behind for its replays.
type storedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response of a POST that already succeeded with the same
// Idempotency-Key, and rejects a duplicate that arrives while the first one is still running.
func Idempotency(rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	log := logger.Named("middleware.idempotency")
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), c.GetString(ContextUserID), idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var stored storedResponse
			if err := json.Unmarshal(val, &stored); err == nil && stored.Status != 0 {
				c.Header("Idempotent-Replay", "true")
				c.Data(stored.Status, stored.ContentType, stored.Body)
				c.Abort()
				return
			}
			log.Warn("idempotency result unreadable, running request", zap.String("key", cacheKey))
		}

		// lock pendek supaya kalau server crash lock hilang sendiri
		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock failed, continuing without it", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			abortWith(c, apperror.ErrIdempotencyInFlight)
			return
		}
		defer rdb.Del(ctx, lockKey)

		rec := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = rec

		c.Next()

		status := rec.Status()
		if status < 200 || status >= 300 {
			return
		}
		val, err := json.Marshal(storedResponse{
			Status:      status,
			ContentType: rec.Header().Get("Content-Type"),
			Body:        rec.body.Bytes(),
		})
		if err != nil {
			log.Warn("idempotency result encode failed", zap.String("key", cacheKey), zap.Error(err))
			return
		}
		if err := rdb.Set(ctx, cacheKey, val, idempotencyResultTTL).Err(); err != nil {
			log.Warn("idempotency result store failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}
}
