package game

import "testing"

func TestPlayerClampsParams(t *testing.T) {
	p := NewPlayer(Params{
		Quarries: 0, Magic: -1, Dungeons: -2,
		Bricks: -1, Gems: -2, Recruits: -3,
		Tower: -1, Wall: -2,
	}, nil)

	check := func(stage string) {
		t.Helper()
		for _, s := range Stats {
			if got, want := p.Get(s), s.Floor(); got != want {
				t.Errorf("%s: %s = %d, want %d", stage, s, got, want)
			}
		}
	}
	check("constructor")

	for _, s := range Stats {
		p.Set(s, -5)
	}
	check("Set")

	for _, s := range Stats {
		p.Add(s, -100)
	}
	check("Add")
}

func TestPlayerCards(t *testing.T) {
	hand := cards("Brick Shortage", "Brick Shortage")
	p := NewPlayer(Params{}, hand)

	p.SetCard(0, LookupCard("Earthquake"))
	if p.Card(0) != LookupCard("Earthquake") {
		t.Errorf("slot 0 = %s, want Earthquake", p.Card(0))
	}
	if hand[0] != LookupCard("Brick Shortage") {
		t.Error("NewPlayer must copy the hand slice")
	}

	for _, i := range []int{-1, 2} {
		if p.HasCard(i) {
			t.Errorf("HasCard(%d) = true", i)
		}
	}
	if !p.HasCard(1) {
		t.Error("HasCard(1) = false")
	}
}

func TestPlayerDiff(t *testing.T) {
	before := NewPlayer(Params{
		Bricks: 8, Gems: 8, Recruits: 8,
		Quarries: 4, Magic: 4, Dungeons: 4,
		Tower: 16, Wall: 16,
	}, nil)
	after := NewPlayer(Params{
		IsActive: true,
		Bricks:   16, Gems: 8, Recruits: 8,
		Quarries: 4, Magic: 8, Dungeons: 4,
		Tower: 32, Wall: 16,
	}, nil)

	got := PlayerDiff(before, after)
	want := ParamsDiff{IsActive: b(true), Bricks: n(16), Magic: n(8), Tower: n(32)}
	if !sameDiff(got, want) {
		t.Errorf("diff = %v, want %v", diffMap(got), diffMap(want))
	}

	if d := PlayerDiff(before, before.Clone()); !d.IsEmpty() {
		t.Errorf("diff of equal players = %v, want empty", diffMap(d))
	}

	// Applying the diff reproduces the later params.
	p := before.Params()
	got.ApplyTo(&p)
	if p != after.Params() {
		t.Errorf("ApplyTo = %+v, want %+v", p, after.Params())
	}
}

func sameDiff(a, b ParamsDiff) bool {
	am, bm := diffMap(a), diffMap(b)
	if len(am) != len(bm) {
		return false
	}
	for k, v := range am {
		if bm[k] != v {
			return false
		}
	}
	return true
}

func TestPlayerDamage(t *testing.T) {
	cases := []struct {
		tower, wall, dmg int
		wantTower        int
		wantWall         int
	}{
		{tower: 10, wall: 5, dmg: 3, wantTower: 10, wantWall: 2},
		{tower: 10, wall: 5, dmg: 5, wantTower: 10, wantWall: 0},
		{tower: 10, wall: 5, dmg: 8, wantTower: 7, wantWall: 0},
		{tower: 2, wall: 0, dmg: 8, wantTower: 0, wantWall: 0},
		{tower: 10, wall: 5, dmg: -3, wantTower: 10, wantWall: 5},
	}

	for _, c := range cases {
		p := NewPlayer(Params{Tower: c.tower, Wall: c.wall}, nil)
		p.Damage(c.dmg)
		if p.Get(StatTower) != c.wantTower || p.Get(StatWall) != c.wantWall {
			t.Errorf("Damage(%d) on %d/%d = tower %d wall %d, want %d/%d",
				c.dmg, c.tower, c.wall, p.Get(StatTower), p.Get(StatWall), c.wantTower, c.wantWall)
		}
	}
}

func TestPlayerProduce(t *testing.T) {
	p := NewPlayer(Params{Bricks: 1, Gems: 2, Recruits: 3, Quarries: 2, Magic: 3, Dungeons: 4}, nil)
	p.Produce()

	if p.Get(StatBricks) != 3 || p.Get(StatGems) != 5 || p.Get(StatRecruits) != 7 {
		t.Errorf("after production: %d/%d/%d, want 3/5/7",
			p.Get(StatBricks), p.Get(StatGems), p.Get(StatRecruits))
	}
}
