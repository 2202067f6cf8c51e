package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
)

type window struct {
	start time.Time
	count int
}

// RateLimiter counts requests per client in fixed windows.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	period  time.Duration
	clients map[string]*window
	now     func() time.Time
}

// NewRateLimiter allows limit requests per client per period. A limit of
// zero or less disables limiting.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		period:  period,
		clients: make(map[string]*window),
		now:     time.Now,
	}
}

// Allow records a request from key and reports whether it is within the limit.
func (l *RateLimiter) Allow(key string) bool {
	if l.limit <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)

	w, ok := l.clients[key]
	if !ok {
		l.clients[key] = &window{start: now, count: 1}
		return true
	}
	if w.count >= l.limit {
		return false
	}
	w.count++
	return true
}

// prune drops expired windows. Caller holds mu.
func (l *RateLimiter) prune(now time.Time) {
	for key, w := range l.clients {
		if now.Sub(w.start) >= l.period {
			delete(l.clients, key)
		}
	}
}

// Middleware rejects requests over the limit with TOO_MANY_REQUESTS,
// keyed by client IP.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			RenderError(c, apperrors.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
