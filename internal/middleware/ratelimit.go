package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/JonnyWalker81/daybook/backend/internal/apierror"
	"github.com/JonnyWalker81/daybook/backend/internal/clock"
	"github.com/JonnyWalker81/daybook/backend/internal/logger"
	"github.com/gin-gonic/gin"
)

// Default limits per client IP.
const (
	DefaultGeneralLimit = 300
	DefaultAuthLimit    = 10
	DefaultLimitWindow  = time.Minute
)

// RateLimiter counts requests per client IP in fixed windows.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*window
	limit   int
	window  time.Duration
	name    string
	clock   clock.Clock
	stop    chan struct{}
	once    sync.Once
}

type window struct {
	start time.Time
	count int
}

// NewRateLimiter starts a limiter allowing limit requests per window. A
// background sweep drops idle clients until Stop is called. A nil clock
// means the system clock.
func NewRateLimiter(limit int, per time.Duration, name string, clk clock.Clock) *RateLimiter {
	if clk == nil {
		clk = clock.NewReal()
	}
	if per <= 0 {
		per = DefaultLimitWindow
	}
	rl := &RateLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		window:  per,
		name:    name,
		clock:   clk,
		stop:    make(chan struct{}),
	}
	go rl.sweep()

	logger.Debug("rate limiter started",
		logger.String("limiter", name),
		logger.Int("limit", limit),
		logger.Duration("window", per),
	)
	return rl
}

// Stop ends the background sweep. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
		}

		now := rl.clock.Now()
		rl.mu.Lock()
		dropped := 0
		for ip, w := range rl.clients {
			if now.Sub(w.start) > rl.window {
				delete(rl.clients, ip)
				dropped++
			}
		}
		remaining := len(rl.clients)
		rl.mu.Unlock()

		if dropped > 0 {
			logger.Debug("rate limiter sweep",
				logger.String("limiter", rl.name),
				logger.Int("dropped", dropped),
				logger.Int("remaining", remaining),
			)
		}
	}
}

// allow records one request from ip and reports whether it fits the
// current window, the number of requests seen in it, and when it resets.
func (rl *RateLimiter) allow(ip string) (bool, int, time.Time) {
	now := rl.clock.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.clients[ip]
	if !ok || !now.Before(w.start.Add(rl.window)) {
		w = &window{start: now}
		rl.clients[ip] = w
	}
	w.count++
	return w.count <= rl.limit, w.count, w.start.Add(rl.window)
}

// Handler rejects requests over the limit with a 429 problem and a
// Retry-After header counting down to the window reset.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		allowed, count, reset := rl.allow(ip)

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		if !allowed {
			logger.Ctx(c.Request.Context()).Warn("rate limit exceeded",
				logger.String("limiter", rl.name),
				logger.String("client_ip", ip),
				logger.Int("count", count),
			)
			retryAfter := int(math.Ceil(reset.Sub(rl.clock.Now()).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			apierror.WriteProblem(c, apierror.NewRateLimitError(apierror.GetRequestID(c), retryAfter))
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(rl.limit-count))
		c.Next()
	}
}

// RateLimit limits general API traffic with the default allowance.
func RateLimit() gin.HandlerFunc {
	return NewRateLimiter(DefaultGeneralLimit, DefaultLimitWindow, "general", nil).Handler()
}

// RateLimitAuth is the stricter limiter in front of the auth endpoints.
func RateLimitAuth() gin.HandlerFunc {
	return NewRateLimiter(DefaultAuthLimit, DefaultLimitWindow, "auth", nil).Handler()
}
