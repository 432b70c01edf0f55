package server

import (
	"context"
	"slices"
	"strings"

	"marketplace/internal/cache"
	"marketplace/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetDevelopers handles GET /api/developers
// @Summary List developer cards
// @Tags developers
// @Produce json
// @Param rarity query string false "common, rare, epic or legendary"
// @Param skill query string false "Skill name, case-insensitive"
// @Success 200 {array} models.Developer
// @Failure 400 {object} models.ErrorResponse
// @Router /developers [get]
func (s *Server) GetDevelopers(c *fiber.Ctx) error {
	rarity := models.Rarity(strings.ToLower(strings.TrimSpace(c.Query("rarity"))))
	skill := strings.TrimSpace(c.Query("skill"))

	if rarity != "" && !rarity.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid rarity"))
	}

	devs, err := cached(c, s, cache.ResourceDevelopers, func(ctx context.Context) ([]models.Developer, error) {
		switch {
		case rarity != "" && skill != "":
			byRarity, err := s.data.GetDevelopersByRarity(ctx, rarity)
			if err != nil {
				return nil, err
			}
			return slices.DeleteFunc(byRarity, func(d models.Developer) bool {
				return !slices.ContainsFunc(d.Skills, func(sk string) bool { return strings.EqualFold(sk, skill) })
			}), nil
		case rarity != "":
			return s.data.GetDevelopersByRarity(ctx, rarity)
		case skill != "":
			return s.data.GetDevelopersBySkill(ctx, skill)
		default:
			return s.data.GetDevelopers(ctx)
		}
	})
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(devs)
}

// GetDeveloper handles GET /api/developers/:id
func (s *Server) GetDeveloper(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	dev, err := s.data.GetDeveloperByID(c.UserContext(), id)
	if err != nil {
		return s.serviceError(c, err)
	}
	if dev == nil {
		return notFound(c, "Developer", id)
	}
	return c.JSON(dev)
}
