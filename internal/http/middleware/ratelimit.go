package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type visitorInfo struct {
	windowStart time.Time
	count       int
}

var (
	rlMu     sync.Mutex
	visitors = make(map[string]*visitorInfo)
)

// SimpleRateLimit is the in-process fallback limiter: fixed window per
// client IP, used when Redis is not configured.
func SimpleRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rlMu.Lock()
		v, ok := visitors[ip]
		if !ok || now.Sub(v.windowStart) > window {
			visitors[ip] = &visitorInfo{windowStart: now, count: 1}
			rlMu.Unlock()
			c.Next()
			return
		}
		v.count++
		count := v.count
		rlMu.Unlock()

		if count > maxRequests {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
