package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/omarshaarawi/roastbot/internal/models"
	"github.com/omarshaarawi/roastbot/internal/repository"
)

type PlayerStore struct {
	players map[string]models.PlayerDetail
	saves   int
	mu      sync.RWMutex
}

func NewPlayerStore(players map[string]models.PlayerDetail) *PlayerStore {
	return &PlayerStore{players: maps.Clone(players)}
}

func (s *PlayerStore) Load(ctx context.Context) (map[string]models.PlayerDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.players == nil {
		return nil, repository.ErrCacheMiss
	}
	return maps.Clone(s.players), nil
}

func (s *PlayerStore) Save(ctx context.Context, players map[string]models.PlayerDetail) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = maps.Clone(players)
	s.saves++
	return nil
}

// Saves reports how many times Save has been called.
func (s *PlayerStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
