package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Limiter names reported to the Recorder.
const (
	LimiterIP     = "ip"
	LimiterGlobal = "global"
	LimiterStrict = "strict"
)

// RateLimitConfig defines rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
	// IdleTTL evicts per-client buckets not seen for this long. Zero keeps
	// them forever.
	IdleTTL time.Duration
	// Name labels rejections. Defaults to LimiterIP or LimiterGlobal.
	Name string
}

// DefaultRateLimitConfig returns production-ready rate limit configuration.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 100,
		Burst:             200,
		IdleTTL:           10 * time.Minute,
	}
}

// StrictRateLimitConfig is the tighter budget for sensitive routes.
func StrictRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 1,
		Burst:             5,
		IdleTTL:           10 * time.Minute,
		Name:              LimiterStrict,
	}
}

// Recorder receives rate limit rejections.
type Recorder interface {
	RecordRateLimited(limiter string)
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	cfg      RateLimitConfig
	recorder Recorder
	now      func() time.Time

	mu        sync.Mutex
	clients   map[string]*client
	lastSweep time.Time
}

// NewRateLimiter creates a per-IP limiter. recorder may be nil.
func NewRateLimiter(cfg RateLimitConfig, recorder Recorder) *RateLimiter {
	if cfg.Name == "" {
		cfg.Name = LimiterIP
	}
	return &RateLimiter{
		cfg:       cfg,
		recorder:  recorder,
		now:       time.Now,
		clients:   make(map[string]*client),
		lastSweep: time.Now(),
	}
}

// Clients returns the number of tracked client buckets.
func (rl *RateLimiter) Clients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

func (rl *RateLimiter) limiterFor(ip string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sweep(now)

	cl, exists := rl.clients[ip]
	if !exists {
		cl = &client{limiter: rate.NewLimiter(rate.Limit(rl.cfg.RequestsPerSecond), rl.cfg.Burst)}
		rl.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// sweep drops idle clients at most once per IdleTTL. Caller holds mu.
func (rl *RateLimiter) sweep(now time.Time) {
	ttl := rl.cfg.IdleTTL
	if ttl <= 0 || now.Sub(rl.lastSweep) < ttl {
		return
	}
	for ip, cl := range rl.clients {
		if now.Sub(cl.lastSeen) >= ttl {
			delete(rl.clients, ip)
		}
	}
	rl.lastSweep = now
}

// Middleware enforces the per-IP budget.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		now := rl.now()
		limiter := rl.limiterFor(c.ClientIP(), now)
		if !allow(c, limiter, now, rl.cfg) {
			reject(c, limiter, now, rl.cfg, rl.recorder)
			return
		}
		c.Next()
	}
}

// RateLimit creates a per-IP rate limiting middleware.
func RateLimit(cfg RateLimitConfig, recorder Recorder) gin.HandlerFunc {
	return NewRateLimiter(cfg, recorder).Middleware()
}

// GlobalRateLimit creates a global rate limiting middleware.
func GlobalRateLimit(cfg RateLimitConfig, recorder Recorder) gin.HandlerFunc {
	if cfg.Name == "" {
		cfg.Name = LimiterGlobal
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)

	return func(c *gin.Context) {
		now := time.Now()
		if !allow(c, limiter, now, cfg) {
			reject(c, limiter, now, cfg, recorder)
			return
		}
		c.Next()
	}
}

func allow(c *gin.Context, limiter *rate.Limiter, now time.Time, cfg RateLimitConfig) bool {
	ok := limiter.AllowN(now, 1)
	c.Header(HeaderRateLimitLimit, strconv.Itoa(cfg.Burst))
	c.Header(HeaderRateLimitRemaining, strconv.Itoa(remaining(limiter, now)))
	return ok
}

func reject(c *gin.Context, limiter *rate.Limiter, now time.Time, cfg RateLimitConfig, recorder Recorder) {
	if recorder != nil {
		recorder.RecordRateLimited(cfg.Name)
	}
	c.Header(HeaderRetryAfter, strconv.Itoa(retryAfter(limiter, now, cfg.RequestsPerSecond)))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"error": "rate limit exceeded",
	})
}

func remaining(limiter *rate.Limiter, now time.Time) int {
	tokens := limiter.TokensAt(now)
	if tokens < 0 {
		return 0
	}
	return int(math.Floor(tokens))
}

// retryAfter is the whole number of seconds until one token is available.
func retryAfter(limiter *rate.Limiter, now time.Time, rps int) int {
	if rps <= 0 {
		return 1
	}
	missing := 1 - limiter.TokensAt(now)
	secs := int(math.Ceil(missing / float64(rps)))
	if secs < 1 {
		secs = 1
	}
	return secs
}
