// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings for a crawl run.
type Config struct {
	Character      string `env:"CARDCRAWL_CHARACTER" envDefault:"ironclad"`
	CampaignFile   string `env:"CARDCRAWL_CAMPAIGN"`
	Seed           int64  `env:"CARDCRAWL_SEED"`
	LogLevel       string `env:"CARDCRAWL_LOG_LEVEL" envDefault:"info"`
	BattleLogLines int    `env:"CARDCRAWL_BATTLE_LOG_LINES" envDefault:"6"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the Config described by the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.BattleLogLines <= 0 {
		return Config{}, fmt.Errorf("CARDCRAWL_BATTLE_LOG_LINES must be positive, got %d", cfg.BattleLogLines)
	}
	return cfg, nil
}

// Level maps LogLevel onto a slog level. Unknown names mean info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
