package bot

import (
	"math/rand"

	"github.com/peterkuimelis/arcomage/internal/game"
)

// RandomBot plays a random affordable card, or discards a random one.
type RandomBot struct {
	rng *rand.Rand
}

// NewRandomBot creates a RandomBot. A nil rng uses a time-seeded source.
func NewRandomBot(rng *rand.Rand) *RandomBot {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &RandomBot{rng: rng}
}

func (r *RandomBot) PickMove(s State) game.Move {
	hand := s.Self.Cards()

	if !s.Self.IsDiscardMode() {
		var usable []int
		for i, c := range hand {
			if c != nil && s.Self.CanAfford(c) {
				usable = append(usable, i)
			}
		}
		if len(usable) > 0 {
			return game.Move{CardIndex: usable[r.rng.Intn(len(usable))]}
		}
	}

	index := r.rng.Intn(len(hand))
	for tries := 0; tries < len(hand); tries++ {
		if c := hand[index]; c == nil || !c.Undiscardable {
			break
		}
		index = (index + 1) % len(hand)
	}
	return game.Move{CardIndex: index, IsDiscarded: true}
}
