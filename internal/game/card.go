package game

// Effect mutates both players and reports whether the caster plays again.
type Effect func(self, enemy *Player) (playAgain bool)

// Card is an immutable card definition. The same *Card may sit in several
// hands at once.
type Card struct {
	Name          string
	Cost          Cost
	Description   string
	Undiscardable bool
	Effect        Effect
}

// NewCard builds a card definition. Negative costs are clamped to zero.
func NewCard(name string, cost Cost, desc string, effect Effect) *Card {
	cost.Amount = max(0, cost.Amount)
	return &Card{Name: name, Cost: cost, Description: desc, Effect: effect}
}

// Apply charges the cost and runs the effect. If self cannot pay, nothing
// changes and Apply returns false. Unless the effect grants another move,
// the active flags swap.
func (c *Card) Apply(self, enemy *Player) bool {
	stat := c.Cost.Resource.Stat()
	if self.Get(stat) < c.Cost.Amount {
		return false
	}
	self.Add(stat, -c.Cost.Amount)

	playAgain := false
	if c.Effect != nil {
		playAgain = c.Effect(self, enemy)
	}
	if !playAgain {
		self.SetActive(false)
		enemy.SetActive(true)
	}
	return true
}

// Data returns the public projection of the card.
func (c *Card) Data() CardData {
	return CardData{
		Name:          c.Name,
		Cost:          c.Cost,
		Description:   c.Description,
		Undiscardable: c.Undiscardable,
	}
}

func (c *Card) String() string { return c.Name }
