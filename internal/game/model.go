package game

import (
	"fmt"
	"math/rand"

	"github.com/peterkuimelis/arcomage/internal/log"
)

// DefaultHandSize is the number of cards each player holds.
const DefaultHandSize = 6

// noPending marks a player with no replacement owed.
const noPending = -1

// PlayerSetup describes one player's starting state. A nil Cards slice
// means a random hand is drawn from the deck.
type PlayerSetup struct {
	Params Params
	Cards  []*Card
}

// ModelConfig holds configuration for creating a new match model.
type ModelConfig struct {
	Player1  PlayerSetup
	Player2  PlayerSetup
	Victory  VictoryConditions
	HandSize int     // 0 for DefaultHandSize
	Cards    []*Card // deck pool (nil for the full catalog)
	Rand     *rand.Rand
	Logger   log.EventLogger
}

// Model is the authoritative state of one match. UseCard is the only
// mutating entry point; the owner must serialize calls.
type Model struct {
	players [2]*Player
	deck    *Deck
	victory VictoryChecker
	pending [2]int // hand slot owed a replacement at the owner's next turn
	turn    int
	logger  log.EventLogger
}

// Create builds a model the way a new match starts: player 1 moves first.
func Create(p1, p2 PlayerSetup, victory VictoryConditions, handSize int) (*Model, error) {
	return NewModel(ModelConfig{Player1: p1, Player2: p2, Victory: victory, HandSize: handSize})
}

// NewModel creates a model, deals missing hands and runs the first
// production step for player 1.
func NewModel(cfg ModelConfig) (*Model, error) {
	handSize := cfg.HandSize
	if handSize == 0 {
		handSize = DefaultHandSize
	}
	if handSize < 0 {
		return nil, fmt.Errorf("hand size must be positive, got %d", handSize)
	}
	pool := cfg.Cards
	if pool == nil {
		pool = catalog
	}
	largest := max(handSize, len(cfg.Player1.Cards), len(cfg.Player2.Cards))
	if largest >= len(pool) {
		return nil, fmt.Errorf("hand size %d needs a deck larger than %d cards", largest, len(pool))
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}

	deck := NewDeck(pool, cfg.Rand)
	setups := [2]PlayerSetup{cfg.Player1, cfg.Player2}
	m := &Model{
		deck:    deck,
		victory: NewVictoryChecker(cfg.Victory),
		pending: [2]int{noPending, noPending},
		turn:    1,
		logger:  logger,
	}
	for i, s := range setups {
		cards := s.Cards
		if cards == nil {
			cards = deck.RandomCards(handSize)
		}
		params := s.Params
		params.IsActive = i == 0
		params.IsWinner = false
		params.IsDiscardMode = false
		m.players[i] = NewPlayer(params, cards)
	}

	m.logger.Log(log.NewTurnEvent(m.turn, 0))
	m.produce()
	return m, nil
}

func (m *Model) activeIndex() int {
	if m.players[0].IsActive() {
		return 0
	}
	return 1
}

// ActivePlayer returns the index of the player holding the move.
func (m *Model) ActivePlayer() int { return m.activeIndex() }

// Turn returns the 1-based turn counter. It advances each time control
// passes to the other player.
func (m *Model) Turn() int { return m.turn }

// Victory returns the match's win thresholds.
func (m *Model) Victory() VictoryConditions { return m.victory.Conditions() }

// Player returns an independent copy of the given player.
func (m *Model) Player(i int) *Player {
	p := m.players[i]
	return NewPlayer(p.Params(), p.Cards())
}

// Winner reports whether the match is over and who won: 0 or 1, or -1 for a
// draw.
func (m *Model) Winner() (winner int, over bool) {
	w0, w1 := m.players[0].IsWinner(), m.players[1].IsWinner()
	switch {
	case w0 && w1:
		return -1, true
	case w0:
		return 0, true
	case w1:
		return 1, true
	}
	return -1, false
}

func (m *Model) hasWinner() bool {
	_, over := m.Winner()
	return over
}

// UseCard plays, or discards, the active player's card at cardIndex.
// Validation happens before any mutation; on error the model is unchanged.
func (m *Model) UseCard(cardIndex int, isDiscarded bool) (GameChanges, error) {
	if m.hasWinner() {
		return GameChanges{}, ErrGameEnded
	}

	playerIndex := m.activeIndex()
	enemyIndex := 1 - playerIndex
	player, enemy := m.players[playerIndex], m.players[enemyIndex]

	if !player.HasCard(cardIndex) {
		return GameChanges{}, fmt.Errorf("card %d: %w", cardIndex, ErrInvalidCardIndex)
	}

	card := player.Card(cardIndex)
	discard := player.IsDiscardMode() || isDiscarded
	if discard && card.Undiscardable {
		return GameChanges{}, fmt.Errorf("%q: %w", card.Name, ErrUndiscardable)
	}

	before := [2]*Player{m.players[0].Clone(), m.players[1].Clone()}

	if discard {
		forced := player.IsDiscardMode()
		if !forced {
			player.SetActive(false)
			enemy.SetActive(true)
		}
		player.SetDiscardMode(false)
		m.logger.Log(log.NewDiscardEvent(m.turn, playerIndex, card.Name, forced))
	} else {
		wasDiscardMode := player.IsDiscardMode()
		if !card.Apply(player, enemy) {
			return GameChanges{}, fmt.Errorf("%q: %w", card.Name, ErrCardUnusable)
		}
		m.logger.Log(log.NewPlayCardEvent(m.turn, playerIndex, card.Name, card.Cost.String()))
		if player.IsDiscardMode() && !wasDiscardMode {
			m.logger.Log(log.NewDiscardModeEvent(m.turn, playerIndex, card.Name))
		}
		if player.IsActive() {
			m.logger.Log(log.NewPlayAgainEvent(m.turn, playerIndex, card.Name))
		}
		m.checkWinner()
	}

	changes := GameChanges{
		UsedCard: UsedCard{
			CardIndex:   cardIndex,
			PlayerIndex: playerIndex,
			Data:        card.Data(),
			IsDiscarded: discard,
		},
		Params: ParamPair{
			PlayerDiff(before[0], m.players[0]),
			PlayerDiff(before[1], m.players[1]),
		},
	}

	if player.IsActive() {
		changes.NewCard = m.replace(playerIndex, cardIndex)
	} else {
		m.pending[playerIndex] = cardIndex
	}

	if enemy.IsActive() && !m.hasWinner() {
		m.turn++
		m.logger.Log(log.NewTurnEvent(m.turn, enemyIndex))

		before = [2]*Player{m.players[0].Clone(), m.players[1].Clone()}
		m.produce()
		m.checkWinner()

		changes.NextRound = &NextRound{
			Params: ParamPair{
				PlayerDiff(before[0], m.players[0]),
				PlayerDiff(before[1], m.players[1]),
			},
		}
		if slot := m.pending[enemyIndex]; slot != noPending {
			m.pending[enemyIndex] = noPending
			changes.NextRound.NewCard = m.replace(enemyIndex, slot)
		}
	}

	return changes, nil
}

// replace draws a card the player does not already hold into slot.
func (m *Model) replace(playerIndex, slot int) *DrawnCard {
	p := m.players[playerIndex]
	c := m.deck.RandomCard(p.Cards())
	p.SetCard(slot, c)
	m.logger.Log(log.NewDrawEvent(m.turn, playerIndex, c.Name, slot))

	data := c.Data()
	return &DrawnCard{CardIndex: slot, PlayerIndex: playerIndex, Data: &data}
}

// produce runs one round of production for the active player.
func (m *Model) produce() {
	i := m.activeIndex()
	p := m.players[i]
	p.Produce()
	m.logger.Log(log.NewProductionEvent(m.turn, i, p.Get(StatQuarries), p.Get(StatMagic), p.Get(StatDungeons)))
}

func (m *Model) checkWinner() {
	p1, p2 := m.players[0], m.players[1]
	p1.SetWinner(m.victory.Check(p1.Params(), p2.Params()))
	p2.SetWinner(m.victory.Check(p2.Params(), p1.Params()))

	switch winner, over := m.Winner(); {
	case !over:
	case winner < 0:
		m.logger.Log(log.NewTieEvent(m.turn))
	default:
		loser := m.players[1-winner].Params()
		m.logger.Log(log.NewWinEvent(m.turn, winner, m.victory.Reason(m.players[winner].Params(), loser)))
	}
}

// Data returns a full snapshot of the match, including both hands.
func (m *Model) Data() GameData {
	return GameData{
		Players:           [2]PlayerData{m.players[0].Data(), m.players[1].Data()},
		VictoryConditions: m.victory.Conditions(),
	}
}
