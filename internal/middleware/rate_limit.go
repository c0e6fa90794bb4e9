package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the time window for rate limiting
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
	// Key prefix for Redis keys
	KeyPrefix string
}

// Decision is the outcome of one rate limit check.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     time.Time
}

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// CatalogRateLimitConfig limits catalog-backed routes per client per minute.
func CatalogRateLimitConfig(perMinute int) RateLimitConfig {
	return RateLimitConfig{
		Window:    time.Minute,
		Limit:     perMinute,
		KeyPrefix: "rate_limit:catalog",
	}
}

// RedisLimiter is a fixed-window counter shared by every API instance.
type RedisLimiter struct {
	redis  *redis.Client
	config RateLimitConfig
}

// NewRedisLimiter creates a Redis backed limiter
func NewRedisLimiter(redisClient *redis.Client, config RateLimitConfig) *RedisLimiter {
	return &RedisLimiter{
		redis:  redisClient,
		config: config,
	}
}

// Allow counts the request against the current window.
func (rl *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	windowStart := time.Now().Truncate(rl.config.Window)
	redisKey := fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, key, windowStart.Unix())

	pipe := rl.redis.Pipeline()
	incrCmd := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, rl.config.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, fmt.Errorf("rate limit check failed: %w", err)
	}

	count := int(incrCmd.Val())
	return Decision{
		Allowed:   count <= rl.config.Limit,
		Limit:     rl.config.Limit,
		Remaining: max(rl.config.Limit-count, 0),
		Reset:     windowStart.Add(rl.config.Window),
	}, nil
}

// MemoryLimiter is a per-key token bucket used when Redis is not configured.
// Limits apply per process.
type MemoryLimiter struct {
	config RateLimitConfig
	every  rate.Limit

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewMemoryLimiter creates an in-process limiter that refills Limit tokens
// per Window.
func NewMemoryLimiter(config RateLimitConfig) *MemoryLimiter {
	return &MemoryLimiter{
		config:    config,
		every:     rate.Every(config.Window / time.Duration(config.Limit)),
		buckets:   make(map[string]*bucket),
		lastSweep: time.Now(),
	}
}

// Allow takes one token from the key's bucket.
func (ml *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	now := time.Now()

	ml.mu.Lock()
	defer ml.mu.Unlock()

	ml.sweep(now)

	b, ok := ml.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(ml.every, ml.config.Limit)}
		ml.buckets[key] = b
	}
	b.lastSeen = now

	allowed := b.limiter.AllowN(now, 1)
	tokens := b.limiter.TokensAt(now)

	// Time until the next whole token is available.
	reset := now
	if tokens < 1 {
		reset = now.Add(time.Duration((1 - tokens) * float64(time.Second) / float64(ml.every)))
	}

	return Decision{
		Allowed:   allowed,
		Limit:     ml.config.Limit,
		Remaining: max(int(tokens), 0),
		Reset:     reset,
	}, nil
}

// sweep drops buckets idle for longer than a window, which are full again.
func (ml *MemoryLimiter) sweep(now time.Time) {
	if now.Sub(ml.lastSweep) < ml.config.Window {
		return
	}
	for key, b := range ml.buckets {
		if now.Sub(b.lastSeen) > ml.config.Window {
			delete(ml.buckets, key)
		}
	}
	ml.lastSweep = now
}

// RateLimit returns a Gin middleware that enforces limiter per client IP.
// Limiter failures let the request through.
func RateLimit(limiter Limiter, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.WarnContext(c.Request.Context(), "rate limit check failed", "error", err, "requestID", GetRequestID(c))
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(d.Reset.Unix(), 10))

		if !d.Allowed {
			rateLimitRejects.Inc()
			retryAfter := max(int(time.Until(d.Reset).Seconds()), 1)
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"message":     fmt.Sprintf("You have exceeded the rate limit of %d requests", d.Limit),
				"retry_after": retryAfter,
			})
			return
		}

		c.Next()
	}
}
