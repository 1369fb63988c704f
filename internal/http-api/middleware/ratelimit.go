package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Rate limiting for credential endpoints: 5 attempts per second with a
// burst of 10, tracked per client IP.
const (
	loginRateLimit = 5
	loginRateBurst = 10
)

type clientLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func (cl *clientLimiters) get(ip string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	limiter, ok := cl.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(loginRateLimit), loginRateBurst)
		cl.limiters[ip] = limiter
	}
	return limiter
}

// LoginRateLimiter throttles login/register attempts per client IP to
// slow down credential stuffing. Over-limit requests get 429.
func LoginRateLimiter() gin.HandlerFunc {
	limiters := &clientLimiters{limiters: make(map[string]*rate.Limiter)}
	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many attempts, slow down"})
			c.Abort()
			return
		}
		c.Next()
	}
}
