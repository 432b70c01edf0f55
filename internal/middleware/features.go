package middleware

import (
	"marketplace/internal/featureflags"
	"marketplace/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SubjectHeader carries the caller identity used for percentage rollouts.
const SubjectHeader = "X-User-ID"

// Subject returns the identity flags are evaluated for: the X-User-ID header
// when present, otherwise the client IP.
func Subject(c *fiber.Ctx) string {
	if id := c.Get(SubjectHeader); id != "" {
		return id
	}
	return c.IP()
}

// RequireFeature rejects the request with 403 unless flag is enabled for the caller.
func RequireFeature(flags *featureflags.Manager, flag string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !flags.Enabled(flag, Subject(c)) {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("feature "+flag+" is disabled"))
		}
		return c.Next()
	}
}
