package bot

import (
	"cmp"
	"slices"

	"github.com/peterkuimelis/arcomage/internal/game"
)

// outcome buckets a speculative card play, best first.
type outcome int

const (
	outcomeWin outcome = iota
	outcomeDraw
	outcomeLoss
	outcomeExtraMove
	outcomeDiscarding
	outcomeNone
)

type appliedCard struct {
	index         int
	undiscardable bool
	usable        bool
	outcome       outcome
	value         float64
}

// GreedyBot plays every hand card on a copy of the position and picks the
// best-ranked one: winning plays first, then by weighted stat gain.
type GreedyBot struct {
	Coefs Coefs
}

func NewGreedyBot() *GreedyBot {
	return &GreedyBot{Coefs: DefaultCoefs}
}

func (g *GreedyBot) PickMove(s State) game.Move {
	ranked := g.rank(s)

	if !s.Self.IsDiscardMode() {
		if i := findCardToPlay(ranked); i >= 0 {
			return game.Move{CardIndex: i}
		}
	}
	return game.Move{CardIndex: findCardToDiscard(ranked), IsDiscarded: true}
}

// coefsFor adjusts the weights to the position.
func (g *GreedyBot) coefsFor(s State) Coefs {
	c := g.Coefs
	enemyTower := s.Enemy.Get(game.StatTower)
	switch {
	case s.Self.Get(game.StatTower) <= dangerTower:
		c.Tower = selfPreservation
	case enemyTower <= dangerTower || s.Victory.Conditions().Tower-enemyTower <= closeToVictory:
		c.Damage = pressAdvantage
	}
	return c
}

// rank scores every hand card and sorts the results: by outcome bucket,
// then by value, highest first.
func (g *GreedyBot) rank(s State) []appliedCard {
	coefs := g.coefsFor(s)
	hand := s.Self.Cards()
	before, enemyBefore := s.Self.Params(), s.Enemy.Params()

	ranked := make([]appliedCard, 0, len(hand))
	for i, card := range hand {
		if card == nil {
			ranked = append(ranked, appliedCard{index: i, outcome: outcomeNone})
			continue
		}
		self, enemy := applySpeculative(s, card)
		ranked = append(ranked, appliedCard{
			index:         i,
			undiscardable: card.Undiscardable,
			usable:        isUsableCard(card, s.Self, s.Enemy),
			outcome:       outcomeOf(self, enemy),
			value:         coefs.value(before, self, false) - coefs.value(enemyBefore, enemy, true),
		})
	}

	slices.SortStableFunc(ranked, func(a, b appliedCard) int {
		if a.outcome == b.outcome {
			return cmp.Compare(b.value, a.value)
		}
		return cmp.Compare(a.outcome, b.outcome)
	})
	return ranked
}

// applySpeculative plays card on copies of both players. The cost resource
// is topped up first so the play always goes through.
func applySpeculative(s State, card *game.Card) (self, enemy game.Params) {
	p, e := s.Self.Clone(), s.Enemy.Clone()
	stat := card.Cost.Resource.Stat()
	p.Set(stat, max(p.Get(stat), card.Cost.Amount))

	card.Apply(p, e)

	pp, ep := p.Params(), e.Params()
	pp.IsWinner = s.Victory.Check(pp, ep)
	ep.IsWinner = s.Victory.Check(ep, pp)
	return pp, ep
}

// value is the weighted sum of the stat changes from before to after. For
// the enemy side, tower and wall changes count Damage times.
func (c Coefs) value(before, after game.Params, isEnemy bool) float64 {
	dmg := 1.0
	if isEnemy {
		dmg = c.Damage
	}
	d := func(s game.Stat) float64 { return float64(after.Get(s) - before.Get(s)) }

	v := 0.0
	v += (d(game.StatBricks) + d(game.StatGems) + d(game.StatRecruits)) * c.Resource
	v += (d(game.StatQuarries) + d(game.StatMagic) + d(game.StatDungeons)) * c.Production
	v += d(game.StatTower) * c.Tower * dmg
	v += d(game.StatWall) * c.Wall * dmg
	return v
}

func outcomeOf(self, enemy game.Params) outcome {
	switch {
	case self.IsWinner && !enemy.IsWinner:
		return outcomeWin
	case self.IsWinner && enemy.IsWinner:
		return outcomeDraw
	case enemy.IsWinner:
		return outcomeLoss
	case self.IsActive:
		return outcomeExtraMove
	case self.IsDiscardMode:
		return outcomeDiscarding
	}
	return outcomeNone
}

// isUsableCard checks affordability plus per-card conditions under which a
// card only hurts its caster.
func isUsableCard(card *game.Card, p, e *game.Player) bool {
	if !p.CanAfford(card) {
		return false
	}

	switch card.Name {
	case "Brick Shortage":
		return p.Get(game.StatBricks) > e.Get(game.StatBricks)
	case "Innovations":
		return p.Get(game.StatQuarries) >= e.Get(game.StatQuarries)
	case "Tremors":
		return p.Get(game.StatWall) >= e.Get(game.StatWall) && e.Get(game.StatWall) >= 5
	case "Earthquake":
		return p.Get(game.StatQuarries) > e.Get(game.StatQuarries)
	case "Strip Mine":
		return p.Get(game.StatQuarries) == 1 || p.Get(game.StatWall) == 0
	case "Discord":
		return p.Get(game.StatTower) >= e.Get(game.StatTower) && p.Get(game.StatMagic) >= e.Get(game.StatMagic)
	case "Mad Cow Disease":
		return p.Get(game.StatRecruits) > e.Get(game.StatRecruits)
	case "Full Moon":
		return p.Get(game.StatDungeons) > e.Get(game.StatDungeons)
	case "Power Burn":
		return p.Get(game.StatTower) > 17
	}
	return true
}

// findCardToPlay returns the best playable card, or -1. Losing plays and
// turn-ending plays with negative value are skipped.
func findCardToPlay(ranked []appliedCard) int {
	for _, c := range ranked {
		if !c.usable || c.outcome == outcomeLoss || (c.outcome == outcomeNone && c.value < 0) {
			continue
		}
		return c.index
	}
	return -1
}

// findCardToDiscard returns the worst-ranked discardable card, or -1.
func findCardToDiscard(ranked []appliedCard) int {
	for i := len(ranked) - 1; i >= 0; i-- {
		if !ranked[i].undiscardable {
			return ranked[i].index
		}
	}
	return -1
}
