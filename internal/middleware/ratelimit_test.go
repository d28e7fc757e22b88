package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(3)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("1.1.1.1"), "request %d", i+1)
	}
	assert.False(t, rl.Allow("1.1.1.1"))
	assert.True(t, rl.Allow("2.2.2.2"), "clients have separate buckets")

	now = now.Add(21 * time.Minute)
	assert.True(t, rl.Allow("1.1.1.1"), "a token refills every 20 minutes")
	assert.False(t, rl.Allow("1.1.1.1"))
}

func TestRateLimiter_Evict(t *testing.T) {
	rl := NewRateLimiter(100)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.Allow("1.1.1.1")
	now = now.Add(30 * time.Minute)
	rl.Allow("2.2.2.2")
	now = now.Add(45 * time.Minute)

	assert.Equal(t, 1, rl.Evict())
	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "2.2.2.2")
}

func TestRateLimiter_Run(t *testing.T) {
	rl := NewRateLimiter(1)
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		rl.Run(time.Millisecond, stop)
		close(done)
	}()
	close(stop)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after stop")
	}
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler("production", zap.NewNop()), RateLimit(NewRateLimiter(2), zap.NewNop()))
	r.GET("/api/v1/tours", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tours", nil))
		codes = append(codes, w.Code)
		if i == 2 {
			assert.Contains(t, w.Body.String(), RateLimitMessage)
		}
	}

	assert.Equal(t, []int{200, 200, 429}, codes)
}
