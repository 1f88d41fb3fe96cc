package memory

import (
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/omarshaarawi/roastbot/internal/models"
)

const stateTTL = 24 * time.Hour

type Repository struct {
	clock clock.Clock
	state map[string]*models.LeagueState
	sent  map[string]bool
	mu    sync.RWMutex
}

func NewRepository(clock clock.Clock) *Repository {
	return &Repository{
		clock: clock,
		state: make(map[string]*models.LeagueState),
		sent:  make(map[string]bool),
	}
}

// SaveState caches a platform's league state, stamped with the current time.
func (r *Repository) SaveState(platform string, state *models.LeagueState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := *state
	s.LastUpdated = r.clock.Now()
	r.state[platform] = &s
}

// GetState returns the cached state, or nil when it is missing or older
// than a day.
func (r *Repository) GetState(platform string) *models.LeagueState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.state[platform]
	if !ok || r.clock.Now().Sub(s.LastUpdated) > stateTTL {
		return nil
	}
	c := *s
	return &c
}

// MarkSent records that a one-off report went out.
func (r *Repository) MarkSent(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent[key] = true
}

func (r *Repository) WasSent(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sent[key]
}
