package middleware

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/pennyflow/backend/internal/domain/error"
	"github.com/pennyflow/backend/internal/integration/entrypoint/dto"
)

const (
	loginAttemptLimit  = 5
	loginAttemptWindow = time.Minute
)

// clientWindow counts a single client's attempts within the current window.
type clientWindow struct {
	attempts int
	expires  time.Time
}

// RateLimiter caps login attempts per client IP with a fixed window. State is
// in-process only; a multi-instance deployment would need a shared store.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*clientWindow
	limit   int
	window  time.Duration
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*clientWindow),
		limit:   loginAttemptLimit,
		window:  loginAttemptWindow,
	}
}

// Middleware rejects requests over the per-IP limit with 429. Disabled under
// the test environment so suites can log in repeatedly.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if os.Getenv("E2E_MODE") == "true" || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		key := c.ClientIP()
		if key == "" {
			key = c.Request.RemoteAddr
		}

		if !rl.allow(key) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.prune(now)

	w := rl.windows[key]
	if w == nil || now.After(w.expires) {
		rl.windows[key] = &clientWindow{attempts: 1, expires: now.Add(rl.window)}
		return true
	}
	if w.attempts >= rl.limit {
		return false
	}
	w.attempts++
	return true
}

// prune drops expired windows so the map does not grow with every client IP
// ever seen. Caller holds the lock.
func (rl *RateLimiter) prune(now time.Time) {
	for key, w := range rl.windows {
		if now.After(w.expires) {
			delete(rl.windows, key)
		}
	}
}
