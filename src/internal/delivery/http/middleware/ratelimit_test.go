package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterFixedWindow(t *testing.T) {
	limiter := NewRateLimiter(NewMemoryCounter(), 2, time.Minute)

	app := fiber.New()
	app.Use(limiter.Handle)
	app.Get("/ping", func(ctx *fiber.Ctx) error {
		return ctx.SendString("pong")
	})

	for i := 0; i < 2; i++ {
		response, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, response.StatusCode)
	}

	response, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, response.StatusCode)
}

func TestMemoryCounterResetsAfterWindow(t *testing.T) {
	counter := NewMemoryCounter()

	first, err := counter.Incr(context.Background(), "k", 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := counter.Incr(context.Background(), "k", 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second)

	time.Sleep(15 * time.Millisecond)

	third, err := counter.Incr(context.Background(), "k", 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), third)
}

func TestCounterWindowAnchoredToFirstIncrement(t *testing.T) {
	counter := NewMemoryCounter()

	// steady traffic must not push the window forward: the expiry is
	// set when the key is created, so a client well under the limit
	// per window never accumulates past it
	for i := 0; i < 5; i++ {
		count, err := counter.Incr(context.Background(), "steady", 20*time.Millisecond)
		require.NoError(t, err)
		assert.LessOrEqual(t, count, int64(3))
		time.Sleep(8 * time.Millisecond)
	}
}
