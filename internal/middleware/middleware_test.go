package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"marketplace/internal/featureflags"
	"marketplace/internal/observability"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})
	return mr, rdb
}

func TestRateLimitExempt(t *testing.T) {
	t.Parallel()
	for _, env := range []string{"", "test", "development", "stress"} {
		assert.True(t, RateLimitExempt(env), env)
	}
	assert.False(t, RateLimitExempt("production"))
	assert.False(t, RateLimitExempt("staging"))
}

func TestCheckRateLimit(t *testing.T) {
	mr, rdb := newRedis(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := CheckRateLimit(ctx, rdb, "applications", "ip:1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d", i+1)
	}

	allowed, err := CheckRateLimit(ctx, rdb, "applications", "ip:1.2.3.4", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, time.Minute, mr.TTL("rl:applications:ip:1.2.3.4"))

	// a different caller has its own budget
	allowed, err = CheckRateLimit(ctx, rdb, "applications", "ip:5.6.7.8", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)

	mr.FastForward(time.Minute + time.Second)
	allowed, err = CheckRateLimit(ctx, rdb, "applications", "ip:1.2.3.4", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCheckRateLimit_NilRedis(t *testing.T) {
	t.Parallel()
	allowed, err := CheckRateLimit(context.Background(), nil, "r", "id", 1, time.Minute)
	assert.ErrorIs(t, err, ErrNoLimiterStore)
	assert.False(t, allowed)
}

func TestRateLimitMiddleware(t *testing.T) {
	_, rdb := newRedis(t)

	app := fiber.New()
	app.Post("/apply", RateLimit(rdb, 2, time.Minute, "apply"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/apply", nil))
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{fiber.StatusCreated, fiber.StatusCreated, fiber.StatusTooManyRequests}, codes)
}

func TestRateLimitPolicies_NoRedis(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/open", RateLimit(nil, 1, time.Minute), ok)
	app.Get("/closed", RateLimitWithPolicy(nil, 1, time.Minute, FailClosed), ok)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/open", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/closed", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestContextMiddleware_PropagatesRequestID(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(ContextMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(observability.ExtractCorrelationID(c.UserContext()))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "req-123", string(body))
}

func TestContextMiddleware_GeneratesIDWithoutRequestID(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Use(ContextMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(observability.ExtractCorrelationID(c.UserContext()))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Len(t, string(body), 36)
}

func TestStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	observability.ConfigureLogging(&buf, "production", "info")
	t.Cleanup(func() { observability.ConfigureLogging(os.Stdout, "development", "info") })

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(ContextMiddleware())
	app.Use(StructuredLogger())
	app.Get("/api/jobs", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-9")
	_, err := app.Test(req)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "request processed", entry["msg"])
	assert.Equal(t, "/api/jobs", entry["path"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, "req-9", entry["correlation_id"])
}

func TestTracingMiddleware_SetsTraceHeader(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	prev := observability.Tracer
	observability.Tracer = tp.Tracer("test")
	t.Cleanup(func() {
		observability.Tracer = prev
		_ = tp.Shutdown(context.Background())
	})

	app := fiber.New()
	app.Use(TracingMiddleware())
	app.Use(ContextMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		tid, _ := c.UserContext().Value(observability.TraceID).(string)
		return c.SendString(tid)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)

	header := resp.Header.Get("X-Trace-ID")
	assert.Len(t, header, 32)
	assert.Equal(t, header, string(body))
}

func TestRequireFeature(t *testing.T) {
	t.Parallel()

	flags := featureflags.NewManager("admin_crud=on,applications=off")
	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/admin", RequireFeature(flags, featureflags.AdminCRUD), ok)
	app.Get("/apply", RequireFeature(flags, featureflags.Applications), ok)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/apply", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "FORBIDDEN", body["code"])
}

func TestSubject(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(Subject(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SubjectHeader, "user-7")
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "user-7", string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, "0.0.0.0", string(body))
}

func TestMetricsMiddleware(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	prom := InitMetrics("marketplace-test", reg)

	app := fiber.New()
	app.Use(MetricsMiddleware(prom))
	prom.RegisterAt(app, "/metrics")
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
