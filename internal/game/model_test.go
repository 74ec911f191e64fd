package game

import (
	"errors"
	"testing"

	"github.com/peterkuimelis/arcomage/internal/log"
)

// TestUseCardAfterWin: once a player has won, every further move is refused.
func TestUseCardAfterWin(t *testing.T) {
	m, logger := newTestModel(t, matchSetup{
		p1:      PlayerSetup{Params: params(map[Stat]int{StatTower: 99, StatBricks: 1}), Cards: cards("Rock Garden")},
		p2:      PlayerSetup{Params: params(map[Stat]int{StatTower: 1}), Cards: cards("Brick Shortage")},
		victory: VictoryConditions{Tower: 100, Resource: 100},
	})

	if m.Data().Players[0].Params.IsWinner {
		t.Fatal("P1 should not start as winner")
	}

	mustUse(t, m, logger, 0, false)

	if !m.Data().Players[0].Params.IsWinner {
		t.Fatal("P1 should win after Rock Garden brings the tower to 100")
	}
	if _, err := m.UseCard(0, false); !errors.Is(err, ErrGameEnded) {
		t.Errorf("Expected ErrGameEnded, got %v", err)
	}
	if _, err := m.UseCard(0, true); !errors.Is(err, ErrGameEnded) {
		t.Errorf("Expected ErrGameEnded for a discard, got %v", err)
	}
	if winner, over := m.Winner(); !over || winner != 0 {
		t.Errorf("Expected winner 0, got %d (over=%v)", winner, over)
	}
	if len(logger.EventsOfType(log.EventWin)) != 1 {
		t.Errorf("Expected one win event, got %d", len(logger.EventsOfType(log.EventWin)))
	}
}

// TestUndiscardableCard: Lodestone can't be discarded, voluntarily or by discard mode.
func TestUndiscardableCard(t *testing.T) {
	m, _ := newTestModel(t, matchSetup{
		p1: PlayerSetup{Cards: cards("Lodestone")},
	})
	before := m.Data()

	if _, err := m.UseCard(0, true); !errors.Is(err, ErrUndiscardable) {
		t.Fatalf("Expected ErrUndiscardable, got %v", err)
	}
	if after := m.Data(); after.Players[0].Params != before.Players[0].Params {
		t.Errorf("State changed after refused discard: %+v -> %+v", before.Players[0].Params, after.Players[0].Params)
	}
}

// TestUndiscardableInDiscardMode: discard mode turns every move into a
// discard, so Lodestone is refused even when played without the flag.
func TestUndiscardableInDiscardMode(t *testing.T) {
	m, logger := newTestModel(t, matchSetup{
		p1: PlayerSetup{Params: params(map[Stat]int{StatGems: 10}), Cards: cards("Prism", "Lodestone")},
	})

	mustUse(t, m, logger, 0, false)

	if _, err := m.UseCard(1, false); !errors.Is(err, ErrUndiscardable) {
		t.Errorf("Expected ErrUndiscardable in discard mode, got %v", err)
	}
}

// TestUnusableCard: Dragon's Eye costs 21 gems; with none it is refused.
func TestUnusableCard(t *testing.T) {
	m, _ := newTestModel(t, matchSetup{
		p1: PlayerSetup{Cards: cards("Dragon's Eye")},
	})
	before := m.Data()

	if _, err := m.UseCard(0, false); !errors.Is(err, ErrCardUnusable) {
		t.Fatalf("Expected ErrCardUnusable, got %v", err)
	}
	after := m.Data()
	if after.Players[0].Params != before.Players[0].Params || after.Players[1].Params != before.Players[1].Params {
		t.Error("State changed after an unusable card")
	}
}

// TestInvalidCardIndex: indices outside the hand are refused.
func TestInvalidCardIndex(t *testing.T) {
	m, _ := newTestModel(t, matchSetup{
		p1: PlayerSetup{Cards: cards("Orc", "Orc")},
	})

	for _, i := range []int{-1, 2} {
		if _, err := m.UseCard(i, false); !errors.Is(err, ErrInvalidCardIndex) {
			t.Errorf("index %d: expected ErrInvalidCardIndex, got %v", i, err)
		}
	}
}

// TestDetermineWinner covers the three ways to win: tower threshold,
// resource threshold and destroying the enemy tower.
func TestDetermineWinner(t *testing.T) {
	cases := []struct {
		name string
		s    matchSetup
	}{
		{"tower threshold", matchSetup{
			p1: PlayerSetup{Params: params(map[Stat]int{StatTower: 99, StatGems: 30}), Cards: cards("Dragon's Eye")},
			p2: PlayerSetup{Params: params(map[Stat]int{StatTower: 1})},
		}},
		{"resource threshold", matchSetup{
			p1: PlayerSetup{Params: params(map[Stat]int{StatTower: 1, StatGems: 96}), Cards: cards("Rainbow")},
			p2: PlayerSetup{Params: params(map[Stat]int{StatTower: 1})},
		}},
		{"enemy tower destroyed", matchSetup{
			p1: PlayerSetup{Params: params(map[Stat]int{StatTower: 1, StatRecruits: 10}), Cards: cards("Orc")},
			p2: PlayerSetup{Params: params(map[Stat]int{StatTower: 1, StatWall: 0})},
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			c.s.victory = VictoryConditions{Tower: 100, Resource: 100}
			m, logger := newTestModel(t, c.s)

			mustUse(t, m, logger, 0, false)

			data := m.Data()
			if !data.Players[0].Params.IsWinner || data.Players[1].Params.IsWinner {
				t.Errorf("Expected only P1 to win, got P1=%v P2=%v",
					data.Players[0].Params.IsWinner, data.Players[1].Params.IsWinner)
			}
		})
	}
}

// TestDraw: one card can make both players winners.
func TestDraw(t *testing.T) {
	cases := []struct {
		name string
		s    matchSetup
	}{
		{"both towers destroyed", matchSetup{
			p1: PlayerSetup{Params: params(map[Stat]int{StatTower: 7, StatGems: 5}), Cards: cards("Discord")},
			p2: PlayerSetup{Params: params(map[Stat]int{StatTower: 7})},
		}},
		{"both towers reach threshold", matchSetup{
			p1:      PlayerSetup{Params: params(map[Stat]int{StatTower: 99}), Cards: cards("Rainbow")},
			p2:      PlayerSetup{Params: params(map[Stat]int{StatTower: 99})},
			victory: VictoryConditions{Tower: 100, Resource: 200},
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, logger := newTestModel(t, c.s)

			changes := mustUse(t, m, logger, 0, false)

			if winner, over := m.Winner(); !over || winner != -1 {
				t.Errorf("Expected a draw, got winner=%d over=%v", winner, over)
			}
			if changes.NextRound != nil {
				t.Error("No production step should run once the match is over")
			}
			if len(logger.EventsOfType(log.EventTie)) != 1 {
				t.Error("Expected a tie event")
			}
		})
	}
}

// TestInitialProduction: the first player produces once before the first move.
func TestInitialProduction(t *testing.T) {
	start := params(map[Stat]int{StatBricks: 5, StatGems: 5, StatRecruits: 5, StatQuarries: 2, StatMagic: 3, StatDungeons: 4})
	m, _ := newTestModel(t, matchSetup{
		p1: PlayerSetup{Params: start},
		p2: PlayerSetup{Params: start},
	})
	data := m.Data()

	p1, p2 := data.Players[0].Params, data.Players[1].Params
	if p1.Bricks != 7 || p1.Gems != 8 || p1.Recruits != 9 {
		t.Errorf("P1 resources after production = %d/%d/%d, want 7/8/9", p1.Bricks, p1.Gems, p1.Recruits)
	}
	if p2.Bricks != 5 || p2.Gems != 5 || p2.Recruits != 5 {
		t.Errorf("P2 should not produce before its turn, got %d/%d/%d", p2.Bricks, p2.Gems, p2.Recruits)
	}
	if !p1.IsActive || p2.IsActive {
		t.Error("P1 should start active")
	}
	for i, pd := range data.Players {
		if len(pd.Cards) != DefaultHandSize {
			t.Errorf("P%d hand size = %d, want %d", i+1, len(pd.Cards), DefaultHandSize)
		}
	}
}

// TestPrismDiscardMode: Prism keeps the caster active in discard mode; the
// next move is a forced discard that passes the turn without an effect.
func TestPrismDiscardMode(t *testing.T) {
	m, logger := newTestModel(t, matchSetup{
		p1: PlayerSetup{Params: params(map[Stat]int{StatGems: 9}), Cards: cards("Prism", "Orc", "Brick Shortage")},
		p2: PlayerSetup{Params: params(map[Stat]int{StatTower: 10, StatWall: 10})},
	})

	mustUse(t, m, logger, 0, false)
	p1 := m.Data().Players[0].Params
	if !p1.IsActive || !p1.IsDiscardMode || p1.Gems != 8 {
		t.Fatalf("After Prism: active=%v discard=%v gems=%d, want true/true/8", p1.IsActive, p1.IsDiscardMode, p1.Gems)
	}

	// Played without the flag, but discard mode forces a discard.
	changes := mustUse(t, m, logger, 1, false)
	if !changes.UsedCard.IsDiscarded {
		t.Error("Expected the move to be reported as a discard")
	}
	data := m.Data()
	if data.Players[0].Params.IsDiscardMode {
		t.Error("Discard mode should be cleared")
	}
	if data.Players[1].Params.Wall != 10 {
		t.Errorf("Orc effect should not run on a discard, enemy wall = %d", data.Players[1].Params.Wall)
	}
	if !data.Players[0].Params.IsActive {
		t.Error("A forced discard keeps the turn")
	}
	if changes.NewCard == nil || changes.NewCard.CardIndex != 1 {
		t.Errorf("Expected an immediate replacement in slot 1, got %+v", changes.NewCard)
	}

	// A voluntary discard ends the turn.
	changes = mustUse(t, m, logger, 2, true)
	data = m.Data()
	if data.Players[0].Params.IsActive || !data.Players[1].Params.IsActive {
		t.Error("A voluntary discard passes the turn")
	}
	if changes.NewCard != nil {
		t.Error("The replacement for a turn-ending discard is deferred")
	}
	if changes.NextRound == nil {
		t.Fatal("Expected a production step for P2")
	}
}

// TestDiscardModeNeverLeaksToOpponent: the flag set by a play-again effect
// lands on the caster, stays there until the forced discard, and the
// opponent never sees it.
func TestDiscardModeNeverLeaksToOpponent(t *testing.T) {
	m, logger := newTestModel(t, matchSetup{
		p1: PlayerSetup{Params: params(map[Stat]int{StatRecruits: 10}), Cards: cards("Elven Scout", "Orc", "Basic Wall")},
		p2: PlayerSetup{Params: params(map[Stat]int{StatGems: 10}), Cards: cards("Prism", "Quartz")},
	})

	changes := mustUse(t, m, logger, 0, false)
	if changes.Params[1].IsDiscardMode != nil {
		t.Errorf("Opponent diff carries discard mode: %v", *changes.Params[1].IsDiscardMode)
	}
	if m.Data().Players[1].Params.IsDiscardMode {
		t.Fatal("Discard mode leaked to the opponent")
	}

	mustUse(t, m, logger, 1, false) // forced discard of Orc
	mustUse(t, m, logger, 2, true)  // voluntary discard passes the turn

	changes = mustUse(t, m, logger, 0, false) // P2 plays Prism
	if changes.Params[0].IsDiscardMode != nil || m.Data().Players[0].Params.IsDiscardMode {
		t.Fatal("P2's discard mode leaked to P1")
	}
	mustUse(t, m, logger, 1, false) // forced discard of Quartz

	for i, pd := range m.Data().Players {
		if pd.Params.IsDiscardMode {
			t.Errorf("P%d still in discard mode", i+1)
		}
	}
}

// TestMiniGame replays a scripted match and checks every change set.
func TestMiniGame(t *testing.T) {
	start := params(map[Stat]int{
		StatBricks: 32, StatGems: 32, StatRecruits: 32,
		StatQuarries: 2, StatMagic: 2, StatDungeons: 2,
		StatTower: 8, StatWall: 8,
	})
	m, logger := newTestModel(t, matchSetup{
		p1:      PlayerSetup{Params: start, Cards: cards("Prism", "Faerie", "Brick Shortage", "Strip Mine", "Earthquake", "Dragon's Eye")},
		p2:      PlayerSetup{Params: start, Cards: cards("Quartz", "Rainbow", "Orc")},
		victory: VictoryConditions{Tower: 16, Resource: 64},
	})
	hand := func(player, slot int) *CardData { return m.Data().Players[player].Cards[slot] }
	used := func(slot, player int, name string, discarded bool) UsedCard {
		return UsedCard{CardIndex: slot, PlayerIndex: player, Data: LookupCard(name).Data(), IsDiscarded: discarded}
	}

	// 1. P1 plays Prism: stays active in discard mode.
	got := mustUse(t, m, logger, 0, false)
	assertChanges(t, "Prism", got, GameChanges{
		UsedCard: used(0, 0, "Prism", false),
		Params:   ParamPair{{IsDiscardMode: b(true), Gems: n(32)}, {}},
		NewCard:  &DrawnCard{CardIndex: 0, PlayerIndex: 0, Data: hand(0, 0)},
	})

	// 2. Forced discard of Brick Shortage.
	got = mustUse(t, m, logger, 2, false)
	assertChanges(t, "forced discard", got, GameChanges{
		UsedCard: used(2, 0, "Brick Shortage", true),
		Params:   ParamPair{{IsDiscardMode: b(false)}, {}},
		NewCard:  &DrawnCard{CardIndex: 2, PlayerIndex: 0, Data: hand(0, 2)},
	})

	// 3. Faerie: 2 damage, play again.
	got = mustUse(t, m, logger, 1, false)
	assertChanges(t, "Faerie", got, GameChanges{
		UsedCard: used(1, 0, "Faerie", false),
		Params:   ParamPair{{Recruits: n(33)}, {Wall: n(6)}},
		NewCard:  &DrawnCard{CardIndex: 1, PlayerIndex: 0, Data: hand(0, 1)},
	})

	// 4. Strip Mine ends P1's turn; P2 produces.
	got = mustUse(t, m, logger, 3, false)
	assertChanges(t, "Strip Mine", got, GameChanges{
		UsedCard: used(3, 0, "Strip Mine", false),
		Params: ParamPair{
			{IsActive: b(false), Quarries: n(1), Wall: n(18), Gems: n(37)},
			{IsActive: b(true)},
		},
		NextRound: &NextRound{Params: ParamPair{{}, {Bricks: n(34), Gems: n(34), Recruits: n(34)}}},
	})

	// 5. P2 plays Quartz: play again.
	got = mustUse(t, m, logger, 0, false)
	assertChanges(t, "Quartz", got, GameChanges{
		UsedCard: used(0, 1, "Quartz", false),
		Params:   ParamPair{{}, {Gems: n(33), Tower: n(9)}},
		NewCard:  &DrawnCard{CardIndex: 0, PlayerIndex: 1, Data: hand(1, 0)},
	})

	// 6. Rainbow ends P2's turn; P1 produces and gets the Strip Mine slot refilled.
	got = mustUse(t, m, logger, 1, false)
	assertChanges(t, "Rainbow", got, GameChanges{
		UsedCard: used(1, 1, "Rainbow", false),
		Params: ParamPair{
			{IsActive: b(true), Tower: n(9)},
			{IsActive: b(false), Tower: n(10), Gems: n(36)},
		},
		NextRound: &NextRound{
			Params:  ParamPair{{Bricks: n(35), Gems: n(39), Recruits: n(35)}, {}},
			NewCard: &DrawnCard{CardIndex: 3, PlayerIndex: 0, Data: hand(0, 3)},
		},
	})

	// 7. P1 discards Earthquake voluntarily.
	got = mustUse(t, m, logger, 4, true)
	assertChanges(t, "P1 discard", got, GameChanges{
		UsedCard: used(4, 0, "Earthquake", true),
		Params:   ParamPair{{IsActive: b(false)}, {IsActive: b(true)}},
		NextRound: &NextRound{
			Params:  ParamPair{{}, {Bricks: n(36), Gems: n(38), Recruits: n(36)}},
			NewCard: &DrawnCard{CardIndex: 1, PlayerIndex: 1, Data: hand(1, 1)},
		},
	})

	// 8. P2 discards Orc.
	got = mustUse(t, m, logger, 2, true)
	assertChanges(t, "P2 discard", got, GameChanges{
		UsedCard: used(2, 1, "Orc", true),
		Params:   ParamPair{{IsActive: b(true)}, {IsActive: b(false)}},
		NextRound: &NextRound{
			Params:  ParamPair{{Bricks: n(36), Gems: n(41), Recruits: n(37)}, {}},
			NewCard: &DrawnCard{CardIndex: 4, PlayerIndex: 0, Data: hand(0, 4)},
		},
	})

	// 9. Dragon's Eye wins the match.
	got = mustUse(t, m, logger, 5, false)
	assertChanges(t, "Dragon's Eye", got, GameChanges{
		UsedCard: used(5, 0, "Dragon's Eye", false),
		Params: ParamPair{
			{IsActive: b(false), IsWinner: b(true), Gems: n(20), Tower: n(29)},
			{IsActive: b(true)},
		},
	})

	data := m.Data()
	wantP1 := Params{IsWinner: true, Bricks: 36, Gems: 20, Recruits: 37, Quarries: 1, Magic: 2, Dungeons: 2, Tower: 29, Wall: 18}
	wantP2 := Params{IsActive: true, Bricks: 36, Gems: 38, Recruits: 36, Quarries: 2, Magic: 2, Dungeons: 2, Tower: 10, Wall: 6}
	if data.Players[0].Params != wantP1 {
		t.Errorf("P1 final params = %+v, want %+v", data.Players[0].Params, wantP1)
	}
	if data.Players[1].Params != wantP2 {
		t.Errorf("P2 final params = %+v, want %+v", data.Players[1].Params, wantP2)
	}
	if m.Turn() != 5 {
		t.Errorf("Turn = %d, want 5", m.Turn())
	}

	t.Logf("Event log:\n%s", log.FormatAll(logger.Events()))
}

// TestReplacementNeverDuplicatesHand: replacements never repeat a held card.
func TestReplacementNeverDuplicatesHand(t *testing.T) {
	m, logger := newTestModel(t, matchSetup{
		p1: PlayerSetup{Params: params(map[Stat]int{StatTower: 20, StatWall: 10}), Cards: cards("Lucky Cache", "Basic Wall")},
		p2: PlayerSetup{Params: params(map[Stat]int{StatTower: 20, StatWall: 10})},
	})

	for i := 0; i < 20; i++ {
		mustUse(t, m, logger, 0, false) // Lucky Cache slot keeps getting refilled
		if _, over := m.Winner(); over || m.ActivePlayer() != 0 {
			break
		}
		hand := m.Player(0).Cards()
		if hand[0] == hand[1] {
			t.Fatalf("Replacement duplicated a held card: %s", hand[0].Name)
		}
		if !m.Player(0).CanAfford(hand[0]) || hand[0].Undiscardable {
			break
		}
	}
}

// TestNewModelRejectsOversizedHands: the deck must be larger than any hand.
func TestNewModelRejectsOversizedHands(t *testing.T) {
	_, err := NewModel(ModelConfig{
		Victory:  VictoryConditions{Tower: 50, Resource: 100},
		HandSize: 3,
		Cards:    cards("Orc", "Ogre", "Imp"),
	})
	if err == nil {
		t.Fatal("Expected an error for a hand as large as the deck")
	}
}
