// Package repository defines where the Sleeper player reference data is
// kept between runs.
package repository

import (
	"context"
	"errors"

	"github.com/omarshaarawi/roastbot/internal/models"
)

var (
	ErrCacheMiss = errors.New("player cache is empty")
	ErrCorrupt   = errors.New("player cache is corrupt")
)

// PlayerStore persists the whole player map as one blob. Load returns
// ErrCacheMiss when nothing has been saved and ErrCorrupt when the stored
// blob cannot be decoded.
type PlayerStore interface {
	Load(ctx context.Context) (map[string]models.PlayerDetail, error)
	Save(ctx context.Context, players map[string]models.PlayerDetail) error
}
