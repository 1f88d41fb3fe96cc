// Package app wires configuration into a ready RecapService for the bot and
// the CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/itbasis/go-clock"

	"github.com/omarshaarawi/roastbot/internal/api/espn"
	"github.com/omarshaarawi/roastbot/internal/api/fantasy"
	"github.com/omarshaarawi/roastbot/internal/api/giphy"
	"github.com/omarshaarawi/roastbot/internal/api/narrative"
	"github.com/omarshaarawi/roastbot/internal/api/sleeper"
	"github.com/omarshaarawi/roastbot/internal/config"
	"github.com/omarshaarawi/roastbot/internal/repository"
	"github.com/omarshaarawi/roastbot/internal/repository/file"
	"github.com/omarshaarawi/roastbot/internal/repository/memory"
	"github.com/omarshaarawi/roastbot/internal/repository/postgres"
	"github.com/omarshaarawi/roastbot/internal/service"
)

type App struct {
	Service *service.RecapService
	Repo    *memory.Repository
	closers []func()
}

func (a *App) Close() {
	for _, c := range a.closers {
		c()
	}
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	clk := clock.New()
	a := &App{Repo: memory.NewRepository(clk)}

	sleeperAPI := sleeper.NewAPI(sleeper.NewClient(cfg.Sleeper))

	var espnAPI *espn.API
	if cfg.ESPNAPI.Enabled() {
		espnAPI = espn.NewAPI(espn.NewClient(cfg.ESPNAPI))
	}
	fantasyAPI := fantasy.NewAPI(sleeperAPI, espnAPI)

	var store repository.PlayerStore
	if cfg.Cache.DatabaseURL != "" {
		pg, err := postgres.New(ctx, cfg.Cache.DatabaseURL, clk)
		if err != nil {
			return nil, fmt.Errorf("connecting to player cache database: %w", err)
		}
		a.closers = append(a.closers, pg.Close)
		store = pg
		slog.Info("Using postgres player cache")
	} else {
		store = file.NewStore(cfg.Cache.File)
		slog.Info("Using file player cache", "path", cfg.Cache.File)
	}

	a.Service = service.NewRecapService(
		fantasyAPI,
		store,
		narrative.NewClient(cfg.OpenAI),
		giphy.NewClient(cfg.Giphy),
		a.Repo,
		cfg.Season,
	)
	return a, nil
}
