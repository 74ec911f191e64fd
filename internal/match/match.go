package match

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peterkuimelis/arcomage/internal/bot"
	"github.com/peterkuimelis/arcomage/internal/game"
	"github.com/peterkuimelis/arcomage/internal/log"
	"github.com/peterkuimelis/arcomage/internal/store"
)

var (
	ErrNoMatch       = errors.New("no match in progress")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrUnknownPreset = errors.New("unknown preset")
)

const (
	viewSide = 0
	botSide  = 1
)

// Config wires a Match to its collaborators.
type Config struct {
	View     View
	BotLevel bot.Level // empty for bot.DefaultLevel
	BotOpts  bot.Options
	Settings SettingsStorage // nil for the default preset in memory
	Results  store.Store     // optional
	Logger   *zap.Logger
	Rand     *rand.Rand
	HandSize int
	// NewEventLog creates the domain event log for each new match. Nil
	// uses a MemoryLogger.
	NewEventLog func() log.EventLogger
}

// Match owns one model, one view and one bot. The view plays player 1 and
// moves first; the bot plays player 2. All methods are safe for concurrent
// use; events are handled one at a time.
type Match struct {
	mu       sync.Mutex
	cfg      Config
	logger   *zap.Logger
	queue    *bot.TaskQueue
	botMoves []game.Move

	id        uuid.UUID
	preset    game.Preset
	model     *game.Model
	bot       bot.Bot
	events    log.EventLogger
	startedAt time.Time
	recorded  bool
}

func New(cfg Config) *Match {
	if cfg.Settings == nil {
		cfg.Settings = NewMemorySettings(game.DefaultPreset())
	}
	if cfg.BotLevel == "" {
		cfg.BotLevel = bot.DefaultLevel
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BotOpts.Logger == nil {
		cfg.BotOpts.Logger = logger
	}
	if cfg.BotOpts.Rand == nil {
		cfg.BotOpts.Rand = cfg.Rand
	}
	return &Match{cfg: cfg, logger: logger, queue: bot.NewTaskQueue()}
}

// Start begins a new match from the stored settings, tearing down any
// match in progress.
func (m *Match) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.start(); err != nil {
		return err
	}
	m.drain(ctx)
	return nil
}

// Dispatch handles one view event. Bot replies triggered by it are resolved
// before Dispatch returns.
func (m *Match) Dispatch(ctx context.Context, ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var err error
	switch e := ev.(type) {
	case RestartEvent:
		err = m.start()
	case SettingsEvent:
		m.cfg.Settings.Set(e.Preset)
		err = m.start()
	case CardEvent:
		err = m.handleCard(ctx, viewSide, e.Move)
	default:
		err = fmt.Errorf("unsupported event %T", ev)
	}
	if err != nil {
		return err
	}
	m.drain(ctx)
	return nil
}

// Destroy tears down the view and the bot.
func (m *Match) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.destroy()
}

// ID identifies the current match.
func (m *Match) ID() uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id
}

// Preset returns the validated settings the current match was started with.
func (m *Match) Preset() game.Preset {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.preset
}

// Data returns the view's side of the current match.
func (m *Match) Data() (game.GameData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.model == nil {
		return game.GameData{}, ErrNoMatch
	}
	return game.SplitGameData(m.model.Data())[viewSide], nil
}

// Turn returns the current turn number, or 0 without a match.
func (m *Match) Turn() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.model == nil {
		return 0
	}
	return m.model.Turn()
}

// Events returns the domain event log of the current match.
func (m *Match) Events() []log.GameEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.events == nil {
		return nil
	}
	return append([]log.GameEvent(nil), m.events.Events()...)
}

func (m *Match) start() error {
	m.destroy()

	preset := game.ValidatePreset(m.cfg.Settings.Get())
	events := log.EventLogger(log.NewMemoryLogger())
	if m.cfg.NewEventLog != nil {
		events = m.cfg.NewEventLog()
	}
	setup := game.PlayerSetup{Params: preset.Params()}
	model, err := game.NewModel(game.ModelConfig{
		Player1:  setup,
		Player2:  setup,
		Victory:  preset.Victory(),
		HandSize: m.cfg.HandSize,
		Rand:     m.cfg.Rand,
		Logger:   events,
	})
	if err != nil {
		return fmt.Errorf("create match: %w", err)
	}

	sides := game.SplitGameData(model.Data())
	sink := bot.MoveSinkFunc(func(move game.Move) {
		m.botMoves = append(m.botMoves, move)
	})
	b, err := bot.New(m.cfg.BotLevel, sides[botSide], sink, m.queue, m.cfg.BotOpts)
	if err != nil {
		return err
	}

	m.id = uuid.New()
	m.preset = preset
	m.model = model
	m.bot = b
	m.events = events
	m.startedAt = time.Now()
	m.recorded = false

	m.logger.Info("match started",
		zap.String("match", m.id.String()),
		zap.String("preset", game.PresetName(preset)),
		zap.String("bot", string(m.cfg.BotLevel)))

	if m.cfg.View != nil {
		m.cfg.View.Init(sides[viewSide], preset)
	}
	m.bot.Init()
	return nil
}

func (m *Match) destroy() {
	if m.cfg.View != nil && m.model != nil {
		m.cfg.View.Destroy()
	}
	if m.bot != nil {
		m.bot.Destroy()
	}
	m.model = nil
	m.bot = nil
	m.botMoves = nil
	m.queue.Drain()
}

// handleCard applies a move from side and forwards the split changes to the
// view, then the bot.
func (m *Match) handleCard(ctx context.Context, side int, move game.Move) error {
	if m.model == nil {
		return ErrNoMatch
	}
	if _, over := m.model.Winner(); !over && m.model.ActivePlayer() != side {
		return ErrNotYourTurn
	}

	changes, err := m.model.UseCard(move.CardIndex, move.IsDiscarded)
	if err != nil {
		m.logger.Debug("move rejected",
			zap.String("match", m.id.String()),
			zap.Int("side", side),
			zap.Int("card", move.CardIndex),
			zap.Error(err))
		return err
	}

	sides := game.SplitGameChanges(changes)
	if m.cfg.View != nil {
		m.cfg.View.Update(sides[viewSide])
	}
	m.bot.Update(sides[botSide])

	m.recordIfOver(ctx)
	return nil
}

// drain runs scheduled bot decisions and applies the moves they produce
// until the bot has nothing left to do.
func (m *Match) drain(ctx context.Context) {
	for {
		m.queue.Drain()
		if len(m.botMoves) == 0 {
			return
		}
		move := m.botMoves[0]
		m.botMoves = m.botMoves[1:]
		if err := m.handleCard(ctx, botSide, move); err != nil {
			m.logger.Error("bot move rejected",
				zap.String("match", m.id.String()),
				zap.Int("card", move.CardIndex),
				zap.Bool("discard", move.IsDiscarded),
				zap.Error(err))
			return
		}
	}
}

func (m *Match) recordIfOver(ctx context.Context) {
	winner, over := m.model.Winner()
	if !over || m.recorded {
		return
	}
	m.recorded = true

	result := store.Result{
		ID:         m.id,
		Preset:     game.PresetName(m.preset),
		Bot:        string(m.cfg.BotLevel),
		Winner:     winner,
		Turns:      m.model.Turn(),
		StartedAt:  m.startedAt,
		FinishedAt: time.Now(),
	}
	m.logger.Info("match finished",
		zap.String("match", m.id.String()),
		zap.Int("winner", winner),
		zap.Int("turns", result.Turns))

	if m.cfg.Results == nil {
		return
	}
	if err := m.cfg.Results.SaveResult(ctx, result); err != nil {
		m.logger.Error("failed to save result", zap.String("match", m.id.String()), zap.Error(err))
	}
}
