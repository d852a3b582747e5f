package middleware

import (
	"net/http"
	"sync"
	"time"

	"iconhive/config"
	"iconhive/metrics"
	"iconhive/utils/response"

	"github.com/gin-gonic/gin"
)

type RateLimiter struct {
	visitors map[string]*Visitor
	mu       sync.Mutex
	rate     int           // Tokens added per interval
	burst    int           // Burst capacity
	interval time.Duration // Refill interval
	now      func() time.Time
}

type Visitor struct {
	tokens      int
	lastUpdated time.Time
}

func NewRateLimiter(rate int, burst int) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*Visitor),
		rate:     rate,
		burst:    burst,
		interval: time.Minute,
		now:      time.Now,
	}
}

// NewRateLimiterFromConfig builds a limiter from one of the config presets
func NewRateLimiterFromConfig(cfg config.RateLimitConfig) *RateLimiter {
	return NewRateLimiter(cfg.Rate, cfg.Burst)
}

// Allow takes a token for ip, refilling the bucket for every elapsed interval
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	visitor, exists := rl.visitors[ip]
	if !exists {
		visitor = &Visitor{tokens: rl.burst, lastUpdated: now}
		rl.visitors[ip] = visitor
	}

	elapsed := now.Sub(visitor.lastUpdated)
	refill := int(elapsed / rl.interval)
	if refill > 0 {
		visitor.tokens += refill * rl.rate
		if visitor.tokens > rl.burst {
			visitor.tokens = rl.burst
		}
		visitor.lastUpdated = visitor.lastUpdated.Add(time.Duration(refill) * rl.interval)
	}

	if visitor.tokens > 0 {
		visitor.tokens--
		return true
	}

	return false
}

func RateLimiterMiddleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.Allow(ip) {
			metrics.RateLimiterRejections.WithLabelValues(ip).Inc()
			response.Abort(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
			return
		}
		c.Next()
	}
}
