package game

// Player is the mutable state of one side: params plus a fixed-size hand.
// Every numeric write goes through Set, which clamps to the stat's floor.
type Player struct {
	params Params
	cards  []*Card
}

// NewPlayer creates a player from params, clamping every numeric field.
// The hand slice is copied.
func NewPlayer(params Params, cards []*Card) *Player {
	p := &Player{
		params: Params{
			IsActive:      params.IsActive,
			IsWinner:      params.IsWinner,
			IsDiscardMode: params.IsDiscardMode,
		},
		cards: append([]*Card(nil), cards...),
	}
	for _, s := range Stats {
		p.Set(s, params.Get(s))
	}
	return p
}

// Params returns a copy of the player's params.
func (p *Player) Params() Params { return p.params }

// Get returns a numeric stat.
func (p *Player) Get(s Stat) int { return p.params.Get(s) }

// Set writes a numeric stat, clamped to its floor.
func (p *Player) Set(s Stat, n int) {
	p.params.set(s, max(n, s.Floor()))
}

// Add adjusts a numeric stat by delta, clamped to its floor.
func (p *Player) Add(s Stat, delta int) {
	p.Set(s, p.Get(s)+delta)
}

// Damage hits the wall first and spills the remainder onto the tower.
func (p *Player) Damage(n int) {
	wallDmg := max(0, n)
	towerDmg := max(0, wallDmg-p.Get(StatWall))
	p.Add(StatWall, -wallDmg)
	p.Add(StatTower, -towerDmg)
}

func (p *Player) IsActive() bool          { return p.params.IsActive }
func (p *Player) SetActive(v bool)        { p.params.IsActive = v }
func (p *Player) IsWinner() bool          { return p.params.IsWinner }
func (p *Player) SetWinner(v bool)        { p.params.IsWinner = v }
func (p *Player) IsDiscardMode() bool     { return p.params.IsDiscardMode }
func (p *Player) SetDiscardMode(v bool)   { p.params.IsDiscardMode = v }
func (p *Player) Resource(r Resource) int { return p.Get(r.Stat()) }

// CanAfford reports whether the player holds enough of the card's resource.
func (p *Player) CanAfford(c *Card) bool {
	return p.Resource(c.Cost.Resource) >= c.Cost.Amount
}

// Produce adds one round of production to every resource.
func (p *Player) Produce() {
	for _, r := range Resources {
		p.Add(r.Stat(), p.Get(r.Production()))
	}
}

// Clone returns a copy with independent params. The hand slice is shared;
// cards are immutable, so speculative play on a clone never touches the
// original hand unless SetCard is called.
func (p *Player) Clone() *Player {
	return &Player{params: p.params, cards: p.cards}
}

// HasCard reports whether index is a valid hand slot.
func (p *Player) HasCard(index int) bool {
	return index >= 0 && index < len(p.cards)
}

// Card returns the card at index. The index must be valid.
func (p *Player) Card(index int) *Card { return p.cards[index] }

// SetCard replaces the card in a hand slot.
func (p *Player) SetCard(index int, c *Card) { p.cards[index] = c }

// Cards returns a copy of the hand.
func (p *Player) Cards() []*Card {
	return append([]*Card(nil), p.cards...)
}

// Data returns the player's public snapshot including the full hand.
func (p *Player) Data() PlayerData {
	cards := make([]*CardData, len(p.cards))
	for i, c := range p.cards {
		d := c.Data()
		cards[i] = &d
	}
	return PlayerData{Params: p.params, Cards: cards}
}

// PlayerDiff returns the params of after that differ from before.
func PlayerDiff(before, after *Player) ParamsDiff {
	return Diff(before.params, after.params)
}
