// Package config holds the settings shared by the arcomage binaries. Every
// flag defaults to an environment variable; a .env file in the working
// directory is loaded first.
package config

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/peterkuimelis/arcomage/internal/bot"
	"github.com/peterkuimelis/arcomage/internal/game"
	"github.com/peterkuimelis/arcomage/internal/store"
)

// Environment variables read by the binaries.
const (
	EnvPresets  = "ARCOMAGE_PRESETS"
	EnvBot      = "ARCOMAGE_BOT"
	EnvPort     = "ARCOMAGE_PORT"
	EnvDatabase = "DATABASE_URL"
	EnvDebug    = "ARCOMAGE_DEBUG"
)

// Env returns the value of key, or def when it is unset or empty.
func Env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// EnvBool reports whether key is set to a true value.
func EnvBool(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "yes":
		return true
	}
	return false
}

// Config is what every binary needs to host matches.
type Config struct {
	PresetsFile string
	Bot         string
	DatabaseURL string
	Debug       bool
}

// FromEnv returns a Config filled from the environment.
func FromEnv() Config {
	return Config{
		PresetsFile: os.Getenv(EnvPresets),
		Bot:         Env(EnvBot, string(bot.DefaultLevel)),
		DatabaseURL: os.Getenv(EnvDatabase),
		Debug:       EnvBool(EnvDebug),
	}
}

// Runtime holds the collaborators built from a Config.
type Runtime struct {
	Logger  *zap.Logger
	Presets []game.NamedPreset
	Bot     bot.Level
	Results store.Store

	closeStore func()
}

// Open builds the logger, loads presets and connects the result store.
func (c Config) Open(ctx context.Context) (*Runtime, error) {
	logger, err := NewLogger(c.Debug)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	level, err := bot.ParseLevel(c.Bot)
	if err != nil {
		return nil, err
	}

	presets, err := LoadPresets(c.PresetsFile)
	if err != nil {
		return nil, err
	}

	results, closeStore, err := store.Open(ctx, c.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open result store: %w", err)
	}

	logger.Debug("configuration loaded",
		zap.String("presets_file", c.PresetsFile),
		zap.Int("presets", len(presets)),
		zap.String("bot", string(level)),
		zap.Bool("database", c.DatabaseURL != ""))

	return &Runtime{
		Logger:     logger,
		Presets:    presets,
		Bot:        level,
		Results:    results,
		closeStore: closeStore,
	}, nil
}

// Close releases the store and flushes the logger.
func (r *Runtime) Close() {
	r.closeStore()
	_ = r.Logger.Sync()
}

// NewLogger returns a development logger when debug is set and a production
// logger otherwise. Both write to stderr.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// LoadPresets reads extra presets from path. An empty path means none.
func LoadPresets(path string) ([]game.NamedPreset, error) {
	if path == "" {
		return nil, nil
	}
	presets, err := game.LoadPresetFile(path)
	if err != nil {
		return nil, fmt.Errorf("load presets from %s: %w", path, err)
	}
	return presets, nil
}
