package serverutils

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LionGx2004/cannatracker/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quietLogger struct{}

func (quietLogger) Info(module, message string, details map[string]interface{})  {}
func (quietLogger) Warn(module, message string, details map[string]interface{})  {}
func (quietLogger) Error(module, message string, details map[string]interface{}) {}
func (quietLogger) Debug(module, message string, details map[string]interface{}) {}

func (quietLogger) Sync() error { return nil }

var _ logger.ILogger = quietLogger{}

// fakeLimiterStore mimics the redis counter operations in memory, with
// injectable failures for each command.
type fakeLimiterStore struct {
	counts    map[string]int64
	ttls      map[string]time.Duration
	incrErr   error
	expireErr error
	ttlErr    error
	deleted   []string
}

func newFakeLimiterStore() *fakeLimiterStore {
	return &fakeLimiterStore{
		counts: make(map[string]int64),
		ttls:   make(map[string]time.Duration),
	}
}

func (f *fakeLimiterStore) Incr(ctx context.Context, key string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	if f.incrErr != nil {
		cmd.SetErr(f.incrErr)
		return cmd
	}
	f.counts[key]++
	cmd.SetVal(f.counts[key])
	return cmd
}

func (f *fakeLimiterStore) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx)
	if f.expireErr != nil {
		cmd.SetErr(f.expireErr)
		return cmd
	}
	f.ttls[key] = expiration
	cmd.SetVal(true)
	return cmd
}

func (f *fakeLimiterStore) TTL(ctx context.Context, key string) *redis.DurationCmd {
	cmd := redis.NewDurationCmd(ctx, time.Second)
	if f.ttlErr != nil {
		cmd.SetErr(f.ttlErr)
		return cmd
	}
	ttl, ok := f.ttls[key]
	if !ok {
		// Redis reports a key without expiry as -1.
		ttl = -1 * time.Second
	}
	cmd.SetVal(ttl)
	return cmd
}

func (f *fakeLimiterStore) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	for _, key := range keys {
		f.deleted = append(f.deleted, key)
		delete(f.counts, key)
		delete(f.ttls, key)
	}
	cmd.SetVal(int64(len(keys)))
	return cmd
}

var _ RateLimitStore = &fakeLimiterStore{}

func newLimitedApp(store RateLimitStore, limit int) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(quietLogger{}))
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals(LocalsUserId, "5f0c6b9a-5d8e-4f5a-9c5e-3b1a2c3d4e5f")
		return ctx.Next()
	})
	app.Post("/chat", RateLimitMiddleware(store, limit, time.Minute, quietLogger{}), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

func hitChat(t *testing.T, app *fiber.App) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/chat", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRateLimitDisabledWithoutStore(t *testing.T) {
	app := newLimitedApp(nil, 1)

	for i := 0; i < 5; i++ {
		code, _ := hitChat(t, app)
		assert.Equal(t, fiber.StatusOK, code)
	}
}

func TestRateLimitBlocksOverLimit(t *testing.T) {
	store := newFakeLimiterStore()
	app := newLimitedApp(store, 2)

	for i := 0; i < 2; i++ {
		code, _ := hitChat(t, app)
		assert.Equal(t, fiber.StatusOK, code)
	}

	code, body := hitChat(t, app)
	assert.Equal(t, fiber.StatusTooManyRequests, code)
	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Equal(t, "Rate limit erreicht. Bitte versuche es später erneut.", payload["error"])
}

func TestRateLimitFailsOpenOnIncrError(t *testing.T) {
	store := newFakeLimiterStore()
	store.incrErr = errors.New("connection refused")
	app := newLimitedApp(store, 1)

	for i := 0; i < 3; i++ {
		code, _ := hitChat(t, app)
		assert.Equal(t, fiber.StatusOK, code)
	}
}

func TestRateLimitFailsOpenOnExpireError(t *testing.T) {
	store := newFakeLimiterStore()
	store.expireErr = errors.New("redis restarting")
	app := newLimitedApp(store, 1)

	// The first request of each window creates the counter; if the expiry
	// cannot be set the counter is dropped so it cannot outlive the window.
	code, _ := hitChat(t, app)
	assert.Equal(t, fiber.StatusOK, code)
	require.NotEmpty(t, store.deleted)
	assert.Empty(t, store.counts)

	// Every retry starts fresh instead of accumulating toward the limit.
	for i := 0; i < 3; i++ {
		code, _ := hitChat(t, app)
		assert.Equal(t, fiber.StatusOK, code)
	}
}

func TestRateLimitResetsCounterWithoutExpiry(t *testing.T) {
	store := newFakeLimiterStore()
	app := newLimitedApp(store, 1)

	// Simulate a counter that crossed the limit but lost its TTL (process
	// died between INCR and EXPIRE). It must not block the user forever.
	key := "ratelimit:chat:5f0c6b9a-5d8e-4f5a-9c5e-3b1a2c3d4e5f"
	store.counts[key] = 5

	code, _ := hitChat(t, app)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, store.deleted, key)

	// The next window behaves normally again.
	code, _ = hitChat(t, app)
	assert.Equal(t, fiber.StatusOK, code)
	code, _ = hitChat(t, app)
	assert.Equal(t, fiber.StatusTooManyRequests, code)
}

func TestRateLimitFailsOpenOnTTLError(t *testing.T) {
	store := newFakeLimiterStore()
	store.ttlErr = errors.New("connection reset")
	app := newLimitedApp(store, 1)

	hitChat(t, app)
	code, _ := hitChat(t, app)
	assert.Equal(t, fiber.StatusOK, code)
}
