package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	httpError "greendrop-service/src/pkg/http-error"
	"greendrop-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// CounterStore increments a counter with an expiry and reports the new
// count. Implementations must be safe for concurrent use.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimiter applies a fixed-window limit per client IP and path.
type RateLimiter struct {
	Store  CounterStore
	Limit  int64
	Window time.Duration
}

func NewRateLimiter(store CounterStore, limit int64, window time.Duration) *RateLimiter {
	return &RateLimiter{Store: store, Limit: limit, Window: window}
}

func (r *RateLimiter) Handle(ctx *fiber.Ctx) error {
	key := fmt.Sprintf("ratelimit:%s:%s", ctx.IP(), ctx.Path())
	count, err := r.Store.Incr(ctx.Context(), key, r.Window)
	if err != nil {
		// limiter outage never blocks traffic
		return ctx.Next()
	}
	if count > r.Limit {
		errObj := httpError.NewBadRequest()
		errObj.Code = fiber.StatusTooManyRequests
		errObj.Status = "TOO_MANY_REQUESTS"
		errObj.Message = "trop de requêtes, réessayez plus tard"
		return utils.ResponseError(errObj, ctx)
	}
	return ctx.Next()
}

// RedisCounter backs the limiter with a shared Redis instance.
type RedisCounter struct {
	Client *redis.Client
}

func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := c.Client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	// NX keeps the window fixed: the expiry is set once when the key is
	// created and never refreshed by later increments.
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// MemoryCounter is the single-instance fallback used in tests and local
// runs.
type MemoryCounter struct {
	mu      sync.Mutex
	counts  map[string]int64
	expires map[string]time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{
		counts:  make(map[string]int64),
		expires: make(map[string]time.Time),
	}
}

func (c *MemoryCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if expiry, ok := c.expires[key]; !ok || now.After(expiry) {
		c.counts[key] = 0
		c.expires[key] = now.Add(window)
	}
	c.counts[key]++
	return c.counts[key], nil
}
