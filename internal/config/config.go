package config

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	TelegramBot TelegramBot
	HTTP        HTTP
	Sleeper     Sleeper
	ESPNAPI     ESPNAPI
	OpenAI      OpenAI
	Giphy       Giphy
	Cache       Cache
	Season      Season
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

type HTTP struct {
	Addr string `envconfig:"HTTP_ADDR" default:":80"`
}

type Sleeper struct {
	LeagueID string `envconfig:"SLEEPER_LEAGUE_ID" required:"true"`
	BaseURL  string `envconfig:"SLEEPER_BASE_URL" default:"https://api.sleeper.app"`
}

type ESPNAPI struct {
	Year     string `envconfig:"ESPN_YEAR"`
	LeagueID string `envconfig:"ESPN_LEAGUE_ID"`
	SWID     string `envconfig:"ESPN_SWID"`
	ESPNS2   string `envconfig:"ESPN_S2"`
	BaseURL  string `envconfig:"ESPN_BASE_URL" default:"https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"`
}

// Enabled reports whether an ESPN league is configured. Public leagues work
// without cookies.
func (e ESPNAPI) Enabled() bool {
	return e.LeagueID != "" && e.Year != ""
}

type OpenAI struct {
	APIKey  string `envconfig:"OPENAI_API_KEY" required:"true"`
	Model   string `envconfig:"OPENAI_MODEL" default:"gpt-4"`
	BaseURL string `envconfig:"OPENAI_BASE_URL"`
}

type Giphy struct {
	APIKey  string `envconfig:"GIPHY_API_KEY"`
	BaseURL string `envconfig:"GIPHY_BASE_URL" default:"https://api.giphy.com"`
}

type Cache struct {
	File        string `envconfig:"PLAYER_CACHE_FILE" default:"players_cache.json"`
	DatabaseURL string `envconfig:"PLAYER_CACHE_DATABASE_URL"`
}

type Season struct {
	FirstWeek        int `envconfig:"FIRST_WEEK" default:"1"`
	LastWeek         int `envconfig:"LAST_WEEK" default:"17"`
	RecapConcurrency int `envconfig:"RECAP_CONCURRENCY" default:"1"`
}

// Weeks returns every week from FirstWeek through LastWeek.
func (s Season) Weeks() []int {
	if s.LastWeek < s.FirstWeek {
		return nil
	}
	weeks := make([]int, 0, s.LastWeek-s.FirstWeek+1)
	for w := s.FirstWeek; w <= s.LastWeek; w++ {
		weeks = append(weeks, w)
	}
	return weeks
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	if c.Season.FirstWeek < 1 || c.Season.LastWeek < c.Season.FirstWeek {
		return nil, errors.New("invalid season week range")
	}
	if c.Season.RecapConcurrency < 1 {
		c.Season.RecapConcurrency = 1
	}
	return &c, nil
}

// RequireTelegram validates the settings only the bot binary needs.
func (c *Config) RequireTelegram() error {
	if c.TelegramBot.Token == "" {
		return errors.New("required key TELEGRAM_TOKEN missing value")
	}
	if c.TelegramBot.ChatID == 0 {
		return errors.New("required key CHAT_ID missing value")
	}
	return nil
}
