package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode"

	"marketplace/internal/cache"
	"marketplace/internal/models"
	"marketplace/internal/observability"
	"marketplace/internal/service"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds parsed limit/offset query parameters.
type Pagination struct {
	Limit  int
	Offset int
}

// parsePagination extracts limit and offset query parameters with the given default limit.
func parsePagination(c *fiber.Ctx, defaultLimit int) Pagination {
	limit := c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > service.MaxPageLimit {
		limit = service.MaxPageLimit
	}

	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	return Pagination{
		Limit:  limit,
		Offset: offset,
	}
}

// parseID extracts a route parameter by name as a positive int.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
// The error message is derived from the parameter name (e.g. "id" -> "Invalid ID",
// "userId" -> "Invalid user ID").
func parseID(c *fiber.Ctx, param string) (int, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return id, nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "userId" -> "user ID", "companyId" -> "company ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		words := splitCamel(param[:len(param)-2])
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

// splitCamel splits a camelCase string into words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}

// parseBody decodes the JSON request body into dest.
// On failure it writes a 400 JSON response and returns errResponseWritten.
func parseBody(c *fiber.Ctx, dest any) error {
	if err := c.BodyParser(dest); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
		return errResponseWritten
	}
	return nil
}

// notFound writes a 404 for the given resource and id.
func notFound(c *fiber.Ctx, resource string, id any) error {
	return models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError(resource, id))
}

// serviceError writes a 500 for an error returned by the data service. The
// service only fails when the request context is already done.
func (s *Server) serviceError(c *fiber.Ctx, err error) error {
	observability.GlobalLogger.WarnContext(c.UserContext(), "data service call failed",
		slog.String("path", c.Path()),
		slog.String("error", err.Error()),
	)
	return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
}

// cached serves fetch through the Redis cache-aside helper, keyed by the
// request path and query string under resource.
func cached[T any](c *fiber.Ctx, s *Server, resource string, fetch func(context.Context) (T, error)) (T, error) {
	ctx := c.UserContext()
	key := cache.Key(resource, c.Path(), string(c.Request().URI().QueryString()))

	var out T
	err := cache.CacheAside(ctx, key, &out, s.cacheTTL, func() error {
		v, err := fetch(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}
