package middleware

import (
	"sync"

	"go-leave/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type KeyedRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit // request per detik
	b        int        // burst
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		r:        r,
		b:        b,
	}
}

func (k *KeyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	limiter, exists := k.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(k.r, k.b)
		k.limiters[key] = limiter
	}
	return limiter
}

func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			abortWith(c, apperror.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

// RateLimitByUser skips anonymous requests; put it after AuthMiddleware.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		if userID == "" {
			c.Next()
			return
		}
		if !limiter.GetLimiter(userID).Allow() {
			abortWith(c, apperror.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
