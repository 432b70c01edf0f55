// Package middleware provides the Fiber middleware shared by every route.
package middleware

import (
	"log/slog"
	"time"

	"marketplace/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// Fiber locals written by the middleware chain.
const (
	localRequestID = "requestid"
	localTraceID   = "traceID"
)

// ContextMiddleware copies the request ID and trace ID from Fiber locals into
// the request context so the context-aware logger can see them in the
// service layer. A request without an ID gets a fresh correlation ID.
func ContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		rid, _ := c.Locals(localRequestID).(string)
		if rid == "" {
			rid = observability.GenerateCorrelationID()
		}
		ctx = observability.WithCorrelationID(ctx, rid)

		if tid, ok := c.Locals(localTraceID).(string); ok && tid != "" {
			ctx = observability.WithTraceID(ctx, tid)
		}

		c.SetUserContext(ctx)
		return c.Next()
	}
}

// StructuredLogger returns a Fiber middleware for logging requests using slog.
func StructuredLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// the error handler has not run yet
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		fields := []any{
			slog.Int("status", status),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
			slog.Duration("latency", time.Since(start)),
			slog.String("user_agent", c.Get(fiber.HeaderUserAgent)),
		}

		ctx := c.UserContext()
		switch {
		case err != nil:
			fields = append(fields, slog.String("error", err.Error()))
			observability.GlobalLogger.ErrorContext(ctx, "request failed", fields...)
		case status >= fiber.StatusInternalServerError:
			observability.GlobalLogger.ErrorContext(ctx, "request failed", fields...)
		default:
			observability.GlobalLogger.InfoContext(ctx, "request processed", fields...)
		}

		return err
	}
}
