package game

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/peterkuimelis/arcomage/internal/log"
)

// matchSetup mirrors ModelConfig with test-friendly defaults: victory at
// tower 32 / resource 64 and a seeded deck.
type matchSetup struct {
	p1, p2  PlayerSetup
	victory VictoryConditions
}

// cards looks up a hand by card names.
func cards(names ...string) []*Card {
	out := make([]*Card, len(names))
	for i, n := range names {
		out[i] = LookupCard(n)
	}
	return out
}

// params returns DefaultParams on a 20 tower / 10 wall castle, with the
// given stats overridden.
func params(kv map[Stat]int) Params {
	p := DefaultParams()
	p.Tower, p.Wall = 20, 10
	for s, v := range kv {
		p.set(s, v)
	}
	return p
}

func newTestModel(t *testing.T, s matchSetup) (*Model, *log.MemoryLogger) {
	t.Helper()
	if s.victory == (VictoryConditions{}) {
		s.victory = VictoryConditions{Tower: 32, Resource: 64}
	}
	for _, p := range []*PlayerSetup{&s.p1, &s.p2} {
		if p.Params == (Params{}) {
			p.Params = params(nil)
		}
	}
	logger := log.NewMemoryLogger()
	m, err := NewModel(ModelConfig{
		Player1: s.p1,
		Player2: s.p2,
		Victory: s.victory,
		Rand:    rand.New(rand.NewSource(1)),
		Logger:  logger,
	})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m, logger
}

func mustUse(t *testing.T, m *Model, logger *log.MemoryLogger, index int, discard bool) GameChanges {
	t.Helper()
	changes, err := m.UseCard(index, discard)
	if err != nil {
		t.Logf("Event log:\n%s", log.FormatAll(logger.Events()))
		t.Fatalf("UseCard(%d, %v): %v", index, discard, err)
	}
	return changes
}

func b(v bool) *bool { return &v }
func n(v int) *int   { return &v }

func assertChanges(t *testing.T, step string, got, want GameChanges) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%s:\n got  %+v\n want %+v", step, dump(got), dump(want))
	}
}

// dump renders changes with dereferenced diff fields for failure messages.
func dump(c GameChanges) map[string]any {
	out := map[string]any{
		"usedCard": c.UsedCard,
		"params":   [2]map[string]any{diffMap(c.Params[0]), diffMap(c.Params[1])},
	}
	if c.NewCard != nil {
		out["newCard"] = *c.NewCard
	}
	if c.NextRound != nil {
		nr := map[string]any{"params": [2]map[string]any{diffMap(c.NextRound.Params[0]), diffMap(c.NextRound.Params[1])}}
		if c.NextRound.NewCard != nil {
			nr["newCard"] = *c.NextRound.NewCard
		}
		out["nextRound"] = nr
	}
	return out
}

func diffMap(d ParamsDiff) map[string]any {
	out := map[string]any{}
	if d.IsActive != nil {
		out["isActive"] = *d.IsActive
	}
	if d.IsWinner != nil {
		out["isWinner"] = *d.IsWinner
	}
	if d.IsDiscardMode != nil {
		out["isDiscardMode"] = *d.IsDiscardMode
	}
	for _, s := range Stats {
		if v := *d.field(s); v != nil {
			out[s.String()] = *v
		}
	}
	return out
}
