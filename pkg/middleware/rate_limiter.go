package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// SearchRateLimiter throttles the search-as-you-type list endpoints per
// client, the server-side counterpart of the old front-end's keystroke
// debounce. Limiters are keyed by session user (falling back to client IP for
// anonymous storefront requests).
type SearchRateLimiter struct {
	limiters    map[string]*rateLimiterEntry
	mu          sync.Mutex
	rate        rate.Limit
	burst       int
	cleanupTick time.Duration
	entryTTL    time.Duration
}

type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewSearchRateLimiter creates a limiter allowing ratePerSecond requests with
// the given burst and starts its background cleanup.
func NewSearchRateLimiter(ratePerSecond float64, burst int) *SearchRateLimiter {
	rl := &SearchRateLimiter{
		limiters:    make(map[string]*rateLimiterEntry),
		rate:        rate.Limit(ratePerSecond),
		burst:       burst,
		cleanupTick: 5 * time.Minute,
		entryTTL:    10 * time.Minute,
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *SearchRateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if entry, exists := rl.limiters[key]; exists {
		entry.lastSeen = time.Now()
		return entry.limiter
	}

	limiter := rate.NewLimiter(rl.rate, rl.burst)
	rl.limiters[key] = &rateLimiterEntry{limiter: limiter, lastSeen: time.Now()}
	return limiter
}

func (rl *SearchRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanupTick)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		cutoff := time.Now().Add(-rl.entryTTL)
		for key, entry := range rl.limiters {
			if entry.lastSeen.Before(cutoff) {
				delete(rl.limiters, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware applies the limit only to requests carrying a search query;
// plain list loads pass through untouched.
func (rl *SearchRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("q") == "" {
			c.Next()
			return
		}

		key := c.ClientIP()
		if user := CurrentUser(c); user != nil {
			key = "user:" + strconv.Itoa(user.ID)
		}

		limiter := rl.getLimiter(key)
		if !limiter.Allow() {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "Too many search requests. Please slow down.",
			})
			return
		}
		c.Next()
	}
}
