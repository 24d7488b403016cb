package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

type RateLimiterConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiter keeps one token bucket per client address. Buckets idle for
// longer than ttl are dropped on the next sweep.
type ipLimiter struct {
	mu       sync.Mutex
	cfg      RateLimiterConfig
	visitors map[string]*visitor
	ttl      time.Duration
	lastGC   time.Time
	now      func() time.Time
}

func newIPLimiter(cfg RateLimiterConfig) *ipLimiter {
	return &ipLimiter{
		cfg:      cfg,
		visitors: map[string]*visitor{},
		ttl:      3 * time.Minute,
		now:      time.Now,
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastGC) > l.ttl {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > l.ttl {
				delete(l.visitors, k)
			}
		}
		l.lastGC = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(l.cfg.RequestsPerSecond), l.cfg.Burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// NewRateLimiterMiddleware limits each client IP independently. A
// non-positive rate disables limiting.
func NewRateLimiterMiddleware(cfg RateLimiterConfig) gin.HandlerFunc {
	if cfg.RequestsPerSecond <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	l := newIPLimiter(cfg)

	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			httperr.Write(c, http.StatusTooManyRequests, "rate_limited", "Too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
