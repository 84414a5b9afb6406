package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	limiters = make(map[string]*limiterEntry)
	mu       sync.Mutex
)

func getLimiter(key string, r rate.Limit, b int) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	entry, exists := limiters[key]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(r, b)}
		limiters[key] = entry
	}
	entry.lastSeen = time.Now()

	// Drop idle keys so the map does not grow with one-off visitors.
	if len(limiters) > 10000 {
		cutoff := time.Now().Add(-10 * time.Minute)
		for k, e := range limiters {
			if e.lastSeen.Before(cutoff) {
				delete(limiters, k)
			}
		}
	}

	return entry.limiter
}

// RateLimitMiddleware throttles per key, typically the client IP for
// public write endpoints.
func RateLimitMiddleware(r rate.Limit, b int, keyFunc func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFunc(c)
		limiter := getLimiter(key, r, b)

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please slow down :("})
			return
		}

		c.Next()
	}
}
