// file: internal/server/middleware/ratelimit.go
// version: 1.1.0
// guid: 1331705a-85cb-4158-92f5-5ce203d8a0e7

package middleware

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

// IPRateLimiter is a lightweight per-IP token bucket limiter.
type IPRateLimiter struct {
	mu             sync.Mutex
	entries        map[string]*limiterEntry
	requestsPerMin int
	burst          int
	idleTTL        time.Duration
}

func NewIPRateLimiter(requestsPerMinute int, burst int) *IPRateLimiter {
	r := &IPRateLimiter{
		entries: make(map[string]*limiterEntry),
		idleTTL: 15 * time.Minute,
	}
	r.requestsPerMin, r.burst = normalizeLimit(requestsPerMinute, burst)
	return r
}

func normalizeLimit(requestsPerMinute, burst int) (int, int) {
	if requestsPerMinute < 1 {
		requestsPerMinute = 1
	}
	if burst < 1 {
		burst = 1
	}
	return requestsPerMinute, burst
}

func perSecond(requestsPerMinute int) rate.Limit {
	return rate.Limit(float64(requestsPerMinute) / 60.0)
}

// SetLimit changes the limit for new and existing buckets.
func (r *IPRateLimiter) SetLimit(requestsPerMinute int, burst int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requestsPerMin, r.burst = normalizeLimit(requestsPerMinute, burst)
	for _, entry := range r.entries {
		entry.limiter.SetLimit(perSecond(r.requestsPerMin))
		entry.limiter.SetBurst(r.burst)
	}
}

func (r *IPRateLimiter) limiterForIP(ip string) *rate.Limiter {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	for key, entry := range r.entries {
		if now.Sub(entry.lastSeen) > r.idleTTL {
			delete(r.entries, key)
		}
	}

	entry, ok := r.entries[ip]
	if !ok {
		entry = &limiterEntry{
			limiter:  rate.NewLimiter(perSecond(r.requestsPerMin), r.burst),
			lastSeen: now,
		}
		r.entries[ip] = entry
		return entry.limiter
	}

	entry.lastSeen = now
	return entry.limiter
}

// Middleware returns a Gin middleware that enforces the configured limit.
func (r *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		if !r.limiterForIP(ip).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":  "rate limit exceeded",
				"code":   "RATE_LIMITED",
				"status": http.StatusTooManyRequests,
			})
			return
		}
		c.Next()
	}
}
