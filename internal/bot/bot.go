package bot

import (
	"sync"

	"go.uber.org/zap"

	"github.com/peterkuimelis/arcomage/internal/game"
)

// Bot is the contract shared with the view: it receives its side's change
// sets and answers with moves through a MoveSink.
type Bot interface {
	Init()
	Update(changes game.GameChanges)
	Destroy()
}

// MoveSink receives the moves a bot decides on.
type MoveSink interface {
	SubmitMove(move game.Move)
}

// MoveSinkFunc adapts a function to MoveSink.
type MoveSinkFunc func(move game.Move)

func (f MoveSinkFunc) SubmitMove(move game.Move) { f(move) }

// State is the bot's rebuilt view of the match at decision time. Self holds
// the bot's hand; Enemy has params only.
type State struct {
	Self    *game.Player
	Enemy   *game.Player
	Victory game.VictoryChecker
}

// Strategy chooses a move for the side holding the turn.
type Strategy interface {
	PickMove(s State) game.Move
}

// GameBot keeps a shadow copy of its side of the match, fed only through
// Update, and asks its Strategy for a move whenever it holds the turn.
// Decisions are deferred through the Scheduler, never made inside Update.
type GameBot struct {
	mu        sync.Mutex
	data      game.GameData
	strategy  Strategy
	sink      MoveSink
	sched     Scheduler
	cancel    func()
	destroyed bool
	logger    *zap.Logger
}

// NewGameBot creates a bot from its side's snapshot. A nil logger discards
// log output.
func NewGameBot(data game.GameData, strategy Strategy, sink MoveSink, sched Scheduler, logger *zap.Logger) *GameBot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameBot{
		data:     cloneData(data),
		strategy: strategy,
		sink:     sink,
		sched:    sched,
		logger:   logger,
	}
}

func (b *GameBot) Init() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tryPickCard()
}

func (b *GameBot) Update(changes game.GameChanges) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.destroyed {
		return
	}
	b.data.Merge(changes)
	b.tryPickCard()
}

// Destroy cancels any pending decision. Later updates are ignored.
func (b *GameBot) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.destroyed = true
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}

// Data returns a copy of the bot's shadow state.
func (b *GameBot) Data() game.GameData {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneData(b.data)
}

// tryPickCard schedules a decision if the bot holds the move. A decision
// still queued from an earlier update is replaced. Callers hold b.mu.
func (b *GameBot) tryPickCard() {
	if b.destroyed || !b.data.Players[0].Params.IsActive {
		return
	}
	if _, over := b.data.Winner(); over {
		return
	}
	if b.cancel != nil {
		b.cancel()
	}
	b.cancel = b.sched.Schedule(b.decide)
}

func (b *GameBot) decide() {
	b.mu.Lock()
	if b.destroyed {
		b.mu.Unlock()
		return
	}
	b.cancel = nil
	move := b.strategy.PickMove(b.state())
	b.mu.Unlock()

	b.logger.Debug("bot move",
		zap.Int("card", move.CardIndex),
		zap.Bool("discard", move.IsDiscarded))
	b.sink.SubmitMove(move)
}

// state rebuilds players from the shadow data. Hand cards are resolved
// through the catalog; a name it does not know leaves a nil slot.
func (b *GameBot) state() State {
	own := b.data.Players[0]
	hand := make([]*game.Card, len(own.Cards))
	for i, cd := range own.Cards {
		if cd == nil {
			continue
		}
		c, err := game.FindCard(cd.Name)
		if err != nil {
			b.logger.Warn("unknown card in hand", zap.String("card", cd.Name), zap.Int("slot", i))
			continue
		}
		hand[i] = c
	}
	return State{
		Self:    game.NewPlayer(own.Params, hand),
		Enemy:   game.NewPlayer(b.data.Players[1].Params, nil),
		Victory: game.NewVictoryChecker(b.data.VictoryConditions),
	}
}

func cloneData(d game.GameData) game.GameData {
	out := d
	for i, p := range d.Players {
		cards := make([]*game.CardData, len(p.Cards))
		for j, c := range p.Cards {
			if c != nil {
				cd := *c
				cards[j] = &cd
			}
		}
		out.Players[i].Cards = cards
	}
	return out
}
