package middleware

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/JonnyWalker81/moodtrail/backend/internal/apierror"
	"github.com/JonnyWalker81/moodtrail/backend/internal/logger"
)

// WindowCounter counts hits for key in a fixed window. It returns the count
// including this hit and the time left until the window resets.
type WindowCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RedisCounter shares windows across API instances
type RedisCounter struct {
	client *redis.Client
	prefix string
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client, prefix: "moodtrail:ratelimit:"}
}

func (r *RedisCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	k := r.prefix + key

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	ttl := pipe.PTTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("rate limit counter: %w", err)
	}

	left := ttl.Val()
	if left < 0 {
		// new key, or one left behind without a TTL
		if err := r.client.PExpire(ctx, k, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("rate limit expiry: %w", err)
		}
		left = window
	}
	return incr.Val(), left, nil
}

// MemoryCounter keeps windows in process; used when Redis is not configured
type MemoryCounter struct {
	mu      sync.Mutex
	windows map[string]*memoryWindow
	now     func() time.Time
	sweeps  int
}

type memoryWindow struct {
	count   int64
	resetAt time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{windows: make(map[string]*memoryWindow), now: time.Now}
}

func (m *MemoryCounter) Hit(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)

	w, ok := m.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &memoryWindow{resetAt: now.Add(window)}
		m.windows[key] = w
	}
	w.count++
	return w.count, w.resetAt.Sub(now), nil
}

// sweep drops expired windows every 256 hits; caller holds mu
func (m *MemoryCounter) sweep(now time.Time) {
	m.sweeps++
	if m.sweeps%256 != 0 {
		return
	}
	for k, w := range m.windows {
		if !now.Before(w.resetAt) {
			delete(m.windows, k)
		}
	}
}

// RateLimit allows limit requests per window for each caller. Authenticated
// callers are keyed by user ID, anonymous ones by client IP. Counter
// failures let the request through.
func RateLimit(counter WindowCounter, name string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := UserID(c)
		if caller == "" {
			caller = "ip:" + c.ClientIP()
		}

		count, left, err := counter.Hit(c.Request.Context(), name+":"+caller, window)
		if err != nil {
			logger.Ctx(c.Request.Context()).Warn("rate limiter unavailable",
				logger.String("limiter", name), logger.Err(err))
			c.Next()
			return
		}

		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(limit) {
			retryAfter := int(math.Ceil(left.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			logger.Ctx(c.Request.Context()).Warn("rate limit exceeded",
				logger.String("limiter", name),
				logger.String("caller", caller),
				logger.Int("limit", limit),
			)
			apierror.Write(c, apierror.RateLimited(apierror.RequestID(c), retryAfter))
			return
		}

		c.Next()
	}
}
