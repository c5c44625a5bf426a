package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/soberpath/go-notification-service/internal/metrics"
	"golang.org/x/time/rate"
)

// UserRateLimiter manages rate limiters per user
type UserRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

// NewUserRateLimiter creates a new per-user rate limiter
func NewUserRateLimiter(rps float64, burst int) *UserRateLimiter {
	return &UserRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

// GetLimiter returns the rate limiter for a specific user
func (rl *UserRateLimiter) GetLimiter(userID string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.limiters[userID]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		// Double-check after acquiring write lock
		limiter, exists = rl.limiters[userID]
		if !exists {
			limiter = rate.NewLimiter(rl.rate, rl.burst)
			rl.limiters[userID] = limiter
		}
		rl.mu.Unlock()
	}

	return limiter
}

// RateLimitMiddleware limits request rate per authenticated user. Runs after
// RequireUser, so the user id is always present.
func RateLimitMiddleware(rl *UserRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == "" {
			c.Next()
			return
		}

		if !rl.GetLimiter(userID).Allow() {
			metrics.RateLimitExceeded.WithLabelValues(userID).Inc()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
