package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const limiterTTL = 10 * time.Minute

// RateLimiter applies a per-client token bucket, keyed by the request's real
// IP. Used on the auth endpoints to slow down credential stuffing.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	clients  map[string]*clientLimiter
	lastSeen time.Time
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter allows ratePerMinute sustained requests with the given burst
// per client.
func NewRateLimiter(ratePerMinute, burst int) *RateLimiter {
	if ratePerMinute <= 0 {
		ratePerMinute = 30
	}
	if burst <= 0 {
		burst = 10
	}
	return &RateLimiter{
		limit:   rate.Limit(float64(ratePerMinute) / 60.0),
		burst:   burst,
		clients: make(map[string]*clientLimiter),
	}
}

// Middleware returns the echo middleware enforcing the limit.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "Too many requests"})
			}
			return next(c)
		}
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	// Opportunistic sweep of stale entries; keeps the map bounded without a
	// background goroutine.
	if now.Sub(rl.lastSeen) > limiterTTL {
		for k, cl := range rl.clients {
			if now.Sub(cl.lastAccess) > limiterTTL {
				delete(rl.clients, k)
			}
		}
		rl.lastSeen = now
	}

	cl, ok := rl.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = cl
	}
	cl.lastAccess = now

	return cl.limiter.Allow()
}
