package game

import (
	"fmt"
	"math/rand"
)

// Deck is the shuffled pool every hand draws from. Drawing never consumes it.
type Deck struct {
	cards []*Card
	rng   *rand.Rand
}

// NewDeck shuffles a copy of cards. A nil rng uses a time-seeded source.
func NewDeck(cards []*Card, rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	pool := append([]*Card(nil), cards...)
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return &Deck{cards: pool, rng: rng}
}

// Size returns the number of cards in the pool.
func (d *Deck) Size() int { return len(d.cards) }

// RandomCards returns n distinct cards chosen uniformly from the pool.
// Panics if n exceeds the pool size.
func (d *Deck) RandomCards(n int) []*Card {
	if n > len(d.cards) {
		panic(fmt.Sprintf("deck: %d cards requested from a pool of %d", n, len(d.cards)))
	}
	out := make([]*Card, 0, n)
	for _, i := range d.rng.Perm(len(d.cards))[:n] {
		out = append(out, d.cards[i])
	}
	return out
}

// RandomCard returns one card that is not in exclude. The caller must leave
// at least one pool card outside exclude; hands are far smaller than the
// catalog, and NewModel enforces it.
func (d *Deck) RandomCard(exclude []*Card) *Card {
	held := make(map[*Card]bool, len(exclude))
	for _, c := range exclude {
		held[c] = true
	}
	candidates := make([]*Card, 0, len(d.cards))
	for _, c := range d.cards {
		if !held[c] {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		panic("deck: every card is excluded")
	}
	return candidates[d.rng.Intn(len(candidates))]
}
