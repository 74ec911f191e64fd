package bot

import (
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"github.com/peterkuimelis/arcomage/internal/game"
)

// Level selects a bot strategy.
type Level string

const (
	LevelRandom Level = "random"
	LevelGreedy Level = "greedy"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = LevelGreedy

// Levels lists the known levels.
func Levels() []Level {
	return []Level{LevelRandom, LevelGreedy}
}

// ParseLevel parses a level name. The empty string selects DefaultLevel.
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToLower(strings.TrimSpace(s))); l {
	case "":
		return DefaultLevel, nil
	case LevelRandom, LevelGreedy:
		return l, nil
	}
	return "", fmt.Errorf("unknown bot level: %q", s)
}

// Options tune a bot beyond its level.
type Options struct {
	Rand   *rand.Rand // RandomBot source
	Coefs  *Coefs     // GreedyBot weights; nil for DefaultCoefs
	Logger *zap.Logger
}

// NewStrategy creates the strategy for a level.
func NewStrategy(level Level, opts Options) (Strategy, error) {
	switch level {
	case LevelRandom:
		return NewRandomBot(opts.Rand), nil
	case LevelGreedy:
		g := NewGreedyBot()
		if opts.Coefs != nil {
			g.Coefs = *opts.Coefs
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %q", string(level))
	}
}

// New creates a bot of the given level for one side of a match.
func New(level Level, data game.GameData, sink MoveSink, sched Scheduler, opts Options) (*GameBot, error) {
	strategy, err := NewStrategy(level, opts)
	if err != nil {
		return nil, err
	}
	return NewGameBot(data, strategy, sink, sched, opts.Logger), nil
}
