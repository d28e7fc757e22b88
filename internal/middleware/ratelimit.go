package middleware

import (
	"net/http"
	"sync"
	"time"

	apperrors "tourbook/internal/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimitMessage is returned once a client has spent its allowance.
const RateLimitMessage = "Too many requests from this IP, please try again in an hour!"

// visitorTTL is how long an idle client keeps its bucket. After an hour the
// bucket is full again, so dropping it loses nothing.
const visitorTTL = time.Hour

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	now      func() time.Time
}

// NewRateLimiter allows perHour requests per client per hour, all of which
// may arrive at once.
func NewRateLimiter(perHour int) *RateLimiter {
	if perHour <= 0 {
		perHour = 100
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(float64(perHour) / time.Hour.Seconds()),
		burst:    perHour,
		now:      time.Now,
	}
}

// Allow spends one token of ip's bucket.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	v, exists := rl.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// Evict drops clients idle for longer than an hour and returns how many
// were removed.
func (rl *RateLimiter) Evict() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-visitorTTL)
	removed := 0
	for ip, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, ip)
			removed++
		}
	}
	return removed
}

// Run evicts idle clients every interval until stop is closed.
func (rl *RateLimiter) Run(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.Evict()
		case <-stop:
			return
		}
	}
}

// RateLimit rejects clients that exceeded their allowance with 429.
func RateLimit(rl *RateLimiter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.Allow(ip) {
			log.Warn("Rate limit exceeded",
				zap.String("request_id", GetRequestID(c)),
				zap.String("ip", ip),
				zap.String("path", c.Request.URL.Path),
			)
			_ = c.Error(apperrors.Operational(http.StatusTooManyRequests, RateLimitMessage, nil))
			c.Abort()
			return
		}

		c.Next()
	}
}
