package service

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"marketplace/internal/models"
	"marketplace/internal/normalize"
	"marketplace/internal/observability"
)

// GameFilter narrows a game listing. Zero values match everything.
type GameFilter struct {
	Query    string
	Genre    string
	Platform string
	FreeOnly bool
	Limit    int
	Offset   int
}

func (f GameFilter) matches(g models.Game) bool {
	if q := strings.TrimSpace(f.Query); q != "" {
		if !containsFold(g.Title, q) && !containsFold(g.Developer, q) && !containsFold(g.Publisher, q) {
			return false
		}
	}
	if f.Genre != "" && !anyEqualFold(g.Genres, f.Genre) {
		return false
	}
	if f.Platform != "" && !anyEqualFold(g.Platforms, f.Platform) {
		return false
	}
	if f.FreeOnly && !normalize.IsFreeToPlay(g.Price) {
		return false
	}
	return true
}

// GetGames returns every game in fixture order.
func (s *DataService) GetGames(ctx context.Context) ([]models.Game, error) {
	ctx, end, err := s.begin(ctx, "GetGames")
	if err != nil {
		return nil, err
	}
	defer end()

	return s.store.Games.All(ctx), nil
}

// GetGameByID returns the game with id, or nil. Game ids are strings.
func (s *DataService) GetGameByID(ctx context.Context, id string) (*models.Game, error) {
	ctx, end, err := s.begin(ctx, "GetGameByID")
	if err != nil {
		return nil, err
	}
	defer end()

	return found(s.store.Games.Get(ctx, id)), nil
}

// GetGamesByGenre returns games tagged with genre, ignoring case.
func (s *DataService) GetGamesByGenre(ctx context.Context, genre string) ([]models.Game, error) {
	ctx, end, err := s.begin(ctx, "GetGamesByGenre")
	if err != nil {
		return nil, err
	}
	defer end()

	return s.store.Games.Filter(ctx, func(g models.Game) bool { return anyEqualFold(g.Genres, genre) }), nil
}

// GetGamesByPlatform returns games available on platform, ignoring case.
func (s *DataService) GetGamesByPlatform(ctx context.Context, platform string) ([]models.Game, error) {
	ctx, end, err := s.begin(ctx, "GetGamesByPlatform")
	if err != nil {
		return nil, err
	}
	defer end()

	return s.store.Games.Filter(ctx, func(g models.Game) bool { return anyEqualFold(g.Platforms, platform) }), nil
}

// GetFreeGames returns the games priced with the "Free to Play" sentinel.
// A price of "0" does not count.
func (s *DataService) GetFreeGames(ctx context.Context) ([]models.Game, error) {
	ctx, end, err := s.begin(ctx, "GetFreeGames")
	if err != nil {
		return nil, err
	}
	defer end()

	return s.store.Games.Filter(ctx, func(g models.Game) bool { return normalize.IsFreeToPlay(g.Price) }), nil
}

// SearchGames returns one page of the games matching f.
func (s *DataService) SearchGames(ctx context.Context, f GameFilter) (models.Page[models.Game], error) {
	ctx, end, err := s.begin(ctx, "SearchGames")
	if err != nil {
		return models.Page[models.Game]{}, err
	}
	defer end()

	return paginate(s.store.Games.Filter(ctx, f.matches), f.Limit, f.Offset), nil
}

// GetMostPlayedGames returns every game ordered by player count, highest
// first. Counts that cannot be parsed sort as zero; ties keep fixture order.
func (s *DataService) GetMostPlayedGames(ctx context.Context) ([]models.Game, error) {
	ctx, end, err := s.begin(ctx, "GetMostPlayedGames")
	if err != nil {
		return nil, err
	}
	defer end()

	games := s.store.Games.All(ctx)
	ranked := make([]rankedGame[int64], 0, len(games))
	for _, g := range games {
		n, ok := normalize.ParsePlayerCount(g.PlayerCount)
		if !ok {
			observability.NormalizationFallbacks.WithLabelValues("playerCount").Inc()
			observability.GlobalLogger.WarnContext(ctx, "unparseable player count, treating as zero",
				slog.String("game_id", g.ID),
				slog.String("player_count", g.PlayerCount),
			)
		}
		ranked = append(ranked, rankedGame[int64]{game: g, key: n})
	}

	slices.SortStableFunc(ranked, func(a, b rankedGame[int64]) int {
		return cmp.Compare(b.key, a.key)
	})
	return unrank(ranked), nil
}

// GetRecentlyPlayedGames returns every game ordered by lastPlayed, newest
// first. Missing or unreadable dates sort as the Unix epoch.
func (s *DataService) GetRecentlyPlayedGames(ctx context.Context) ([]models.Game, error) {
	ctx, end, err := s.begin(ctx, "GetRecentlyPlayedGames")
	if err != nil {
		return nil, err
	}
	defer end()

	games := s.store.Games.All(ctx)
	ranked := make([]rankedGame[time.Time], 0, len(games))
	for _, g := range games {
		ts, ok := normalize.ParseTimestamp(g.LastPlayed)
		if !ok && g.LastPlayed != "" {
			observability.NormalizationFallbacks.WithLabelValues("lastPlayed").Inc()
			observability.GlobalLogger.WarnContext(ctx, "unparseable lastPlayed, treating as epoch",
				slog.String("game_id", g.ID),
				slog.String("last_played", g.LastPlayed),
			)
		}
		ranked = append(ranked, rankedGame[time.Time]{game: g, key: ts})
	}

	slices.SortStableFunc(ranked, func(a, b rankedGame[time.Time]) int {
		return b.key.Compare(a.key)
	})
	return unrank(ranked), nil
}

// rankedGame pairs a game with the parsed value it is sorted by.
type rankedGame[K any] struct {
	game models.Game
	key  K
}

func unrank[K any](ranked []rankedGame[K]) []models.Game {
	out := make([]models.Game, len(ranked))
	for i, r := range ranked {
		out[i] = r.game
	}
	return out
}
