package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/omarshaarawi/roastbot/internal/models"
	"github.com/omarshaarawi/roastbot/internal/repository"
)

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load(ctx context.Context) (map[string]models.PlayerDetail, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, repository.ErrCacheMiss
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var players map[string]models.PlayerDetail
	if err := json.Unmarshal(b, &players); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", repository.ErrCorrupt, s.path, err)
	}
	if players == nil {
		return nil, fmt.Errorf("%w: %s holds no player map", repository.ErrCorrupt, s.path)
	}
	return players, nil
}

// Save replaces the cache file by writing a temp file in the same directory
// and renaming it into place.
func (s *Store) Save(ctx context.Context, players map[string]models.PlayerDetail) error {
	b, err := json.Marshal(players)
	if err != nil {
		return fmt.Errorf("encoding players: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}
