package server

import (
	"context"
	"strings"

	"marketplace/internal/cache"
	"marketplace/internal/models"
	"marketplace/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SearchGames handles GET /api/games
// @Summary List games
// @Tags games
// @Produce json
// @Param q query string false "Matches title, developer and publisher"
// @Param genre query string false "Genre, case-insensitive"
// @Param platform query string false "Platform, case-insensitive"
// @Param free query bool false "Only Free to Play titles"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} models.Page[models.Game]
// @Router /games [get]
func (s *Server) SearchGames(c *fiber.Ctx) error {
	p := parsePagination(c, service.DefaultPageLimit)
	filter := service.GameFilter{
		Query:    strings.TrimSpace(c.Query("q")),
		Genre:    strings.TrimSpace(c.Query("genre")),
		Platform: strings.TrimSpace(c.Query("platform")),
		FreeOnly: c.QueryBool("free", false),
		Limit:    p.Limit,
		Offset:   p.Offset,
	}

	page, err := cached(c, s, cache.ResourceGames, func(ctx context.Context) (models.Page[models.Game], error) {
		return s.data.SearchGames(ctx, filter)
	})
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(page)
}

// GetFreeGames handles GET /api/games/free
func (s *Server) GetFreeGames(c *fiber.Ctx) error {
	return s.gameList(c, s.data.GetFreeGames)
}

// GetMostPlayedGames handles GET /api/games/most-played
// @Summary Games by player count
// @Description Highest player count first; unreadable counts sort last.
// @Tags games
// @Produce json
// @Success 200 {array} models.Game
// @Router /games/most-played [get]
func (s *Server) GetMostPlayedGames(c *fiber.Ctx) error {
	return s.gameList(c, s.data.GetMostPlayedGames)
}

// GetRecentlyPlayedGames handles GET /api/games/recently-played
func (s *Server) GetRecentlyPlayedGames(c *fiber.Ctx) error {
	return s.gameList(c, s.data.GetRecentlyPlayedGames)
}

func (s *Server) gameList(c *fiber.Ctx, fetch func(context.Context) ([]models.Game, error)) error {
	games, err := cached(c, s, cache.ResourceGames, fetch)
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(games)
}

// GetGame handles GET /api/games/:id
// Game ids are strings.
func (s *Server) GetGame(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid ID"))
	}

	game, err := s.data.GetGameByID(c.UserContext(), id)
	if err != nil {
		return s.serviceError(c, err)
	}
	if game == nil {
		return notFound(c, "Game", id)
	}
	return c.JSON(game)
}
