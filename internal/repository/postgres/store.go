package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omarshaarawi/roastbot/internal/models"
	"github.com/omarshaarawi/roastbot/internal/repository"
)

const cacheKey = "nfl"

const schema = `CREATE TABLE IF NOT EXISTS player_cache (
	id         TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

type Store struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func New(ctx context.Context, connString string, clock clock.Clock) (*Store, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating player_cache table: %w", err)
	}

	return &Store{pool: pool, clock: clock}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Load(ctx context.Context) (map[string]models.PlayerDetail, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM player_cache WHERE id = $1`, cacheKey).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrCacheMiss
		}
		return nil, fmt.Errorf("reading player cache: %w", err)
	}

	var players map[string]models.PlayerDetail
	if err := json.Unmarshal(data, &players); err != nil || players == nil {
		return nil, fmt.Errorf("%w: stored value is not a player map", repository.ErrCorrupt)
	}
	return players, nil
}

func (s *Store) Save(ctx context.Context, players map[string]models.PlayerDetail) error {
	data, err := json.Marshal(players)
	if err != nil {
		return fmt.Errorf("encoding players: %w", err)
	}

	const query = `INSERT INTO player_cache (id, data, updated_at)
				   VALUES (@id, @data, @updated_at)
				   ON CONFLICT (id) DO UPDATE
				   SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`

	args := pgx.NamedArgs{
		"id":         cacheKey,
		"data":       data,
		"updated_at": s.clock.Now().UTC(),
	}
	if _, err := s.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("saving player cache: %w", err)
	}
	return nil
}
