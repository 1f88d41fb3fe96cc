package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/omarshaarawi/roastbot/internal/models"
	"github.com/omarshaarawi/roastbot/internal/repository"
)

// loadPlayers reads the player cache once, falling back to a full fetch from
// Sleeper on a miss or a corrupt cache. A failed write-back is logged and
// otherwise ignored.
func (s *RecapService) loadPlayers(ctx context.Context) (map[string]models.PlayerDetail, error) {
	players, err := s.players.Load(ctx)
	if err == nil {
		slog.Info("Player data loaded from cache", "players", len(players))
		return players, nil
	}

	switch {
	case errors.Is(err, repository.ErrCacheMiss):
		slog.Info("No cached player data, fetching")
	case errors.Is(err, repository.ErrCorrupt):
		slog.Warn("Cache file corrupted. Re-fetching player data", "error", err)
	default:
		slog.Warn("Error reading player cache. Re-fetching player data", "error", err)
	}

	return s.RefreshPlayers(ctx)
}

// RefreshPlayers fetches the full player map and overwrites the cache.
func (s *RecapService) RefreshPlayers(ctx context.Context) (map[string]models.PlayerDetail, error) {
	players, err := s.api.FetchAllPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load player data: %w", err)
	}

	if err := s.players.Save(ctx, players); err != nil {
		slog.Warn("Error saving player cache", "error", err)
	}

	slog.Info("Player data loaded successfully", "players", len(players))
	return players, nil
}
