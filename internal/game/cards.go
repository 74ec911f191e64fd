package game

func bricks(n int) Cost   { return Cost{Amount: n, Resource: Bricks} }
func gems(n int) Cost     { return Cost{Amount: n, Resource: Gems} }
func recruits(n int) Cost { return Cost{Amount: n, Resource: Recruits} }

// gain builds an effect that only changes the caster's stats.
func gain(deltas ...statDelta) Effect {
	return func(self, _ *Player) bool {
		for _, d := range deltas {
			self.Add(d.stat, d.delta)
		}
		return false
	}
}

type statDelta struct {
	stat  Stat
	delta int
}

func wall(n int) statDelta        { return statDelta{StatWall, n} }
func tower(n int) statDelta       { return statDelta{StatTower, n} }
func quarry(n int) statDelta      { return statDelta{StatQuarries, n} }
func magic(n int) statDelta       { return statDelta{StatMagic, n} }
func dungeon(n int) statDelta     { return statDelta{StatDungeons, n} }
func brickGain(n int) statDelta   { return statDelta{StatBricks, n} }
func gemGain(n int) statDelta     { return statDelta{StatGems, n} }
func recruitGain(n int) statDelta { return statDelta{StatRecruits, n} }

// discardOne puts the caster into discard mode and grants another move.
func discardOne(self, _ *Player) bool {
	self.SetDiscardMode(true)
	return true
}

func undiscardable(c *Card) *Card {
	c.Undiscardable = true
	return c
}

// catalog is the fixed card list, in the order the game presents it.
var catalog = []*Card{
	// --- Bricks ---
	NewCard("Brick Shortage", bricks(0), "-8 bricks for each player", func(self, enemy *Player) bool {
		self.Add(StatBricks, -8)
		enemy.Add(StatBricks, -8)
		return false
	}),
	NewCard("Earthquake", bricks(0), "-1 quarry for each player", func(self, enemy *Player) bool {
		self.Add(StatQuarries, -1)
		enemy.Add(StatQuarries, -1)
		return false
	}),
	NewCard("Lucky Cache", bricks(0), "+2 bricks, +2 gems, play again", func(self, _ *Player) bool {
		self.Add(StatBricks, 2)
		self.Add(StatGems, 2)
		return true
	}),
	NewCard("Strip Mine", bricks(0), "-1 quarry, +10 wall, +5 gems", gain(quarry(-1), wall(10), gemGain(5))),
	NewCard("Rock Garden", bricks(1), "+1 wall, +1 tower, +2 recruits", gain(wall(1), tower(1), recruitGain(2))),
	NewCard("Friendly Terrain", bricks(1), "+1 wall, play again", func(self, _ *Player) bool {
		self.Add(StatWall, 1)
		return true
	}),
	NewCard("Work Overtime", bricks(2), "+5 wall, -6 gems", gain(wall(5), gemGain(-6))),
	NewCard("Basic Wall", bricks(2), "+3 wall", gain(wall(3))),
	NewCard("Innovations", bricks(2), "+1 quarry for each player, +4 gems", func(self, enemy *Player) bool {
		self.Add(StatQuarries, 1)
		self.Add(StatGems, 4)
		enemy.Add(StatQuarries, 1)
		return false
	}),
	NewCard("Foundations", bricks(3), "if wall = 0: +6 wall, else +3 wall", func(self, _ *Player) bool {
		if self.Get(StatWall) == 0 {
			self.Add(StatWall, 6)
		} else {
			self.Add(StatWall, 3)
		}
		return false
	}),
	NewCard("Miners", bricks(3), "+1 quarry", gain(quarry(1))),
	NewCard("Sturdy Wall", bricks(3), "+4 wall", gain(wall(4))),
	NewCard("Mother Lode", bricks(4), "if quarry < enemy quarry: +2 quarry, else +1 quarry", func(self, enemy *Player) bool {
		if self.Get(StatQuarries) < enemy.Get(StatQuarries) {
			self.Add(StatQuarries, 2)
		} else {
			self.Add(StatQuarries, 1)
		}
		return false
	}),
	NewCard("Collapse!", bricks(4), "-1 enemy quarry", func(_, enemy *Player) bool {
		enemy.Add(StatQuarries, -1)
		return false
	}),
	NewCard("Big Wall", bricks(5), "+6 wall", gain(wall(6))),
	NewCard("Copping the Tech", bricks(5), "if quarry < enemy quarry: quarry = enemy quarry", func(self, enemy *Player) bool {
		if self.Get(StatQuarries) < enemy.Get(StatQuarries) {
			self.Set(StatQuarries, enemy.Get(StatQuarries))
		}
		return false
	}),
	NewCard("Flood Water", bricks(6), "player(s) with lowest wall: -1 dungeon, -2 tower", func(self, enemy *Player) bool {
		selfLow := self.Get(StatWall) <= enemy.Get(StatWall)
		enemyLow := enemy.Get(StatWall) <= self.Get(StatWall)
		if selfLow {
			self.Add(StatDungeons, -1)
			self.Add(StatTower, -2)
		}
		if enemyLow {
			enemy.Add(StatDungeons, -1)
			enemy.Add(StatTower, -2)
		}
		return false
	}),
	NewCard("New Equipment", bricks(6), "+2 quarry", gain(quarry(2))),
	NewCard("Forced Labor", bricks(7), "+9 wall, -5 recruits", gain(wall(9), recruitGain(-5))),
	NewCard("Dwarven Miners", bricks(7), "+4 wall, +1 quarry", gain(wall(4), quarry(1))),
	NewCard("Tremors", bricks(7), "-5 wall for each player, play again", func(self, enemy *Player) bool {
		self.Add(StatWall, -5)
		enemy.Add(StatWall, -5)
		return true
	}),
	NewCard("Secret Room", bricks(8), "+1 magic, play again", func(self, _ *Player) bool {
		self.Add(StatMagic, 1)
		return true
	}),
	NewCard("Reinforced Wall", bricks(8), "+8 wall", gain(wall(8))),
	NewCard("Porticulus", bricks(9), "+5 wall, +1 dungeon", gain(wall(5), dungeon(1))),
	NewCard("Crystal Rocks", bricks(9), "+7 wall, +7 gems", gain(wall(7), gemGain(7))),
	NewCard("Barracks", bricks(10), "+6 recruits, +6 wall, if dungeon < enemy dungeon: +1 dungeon", func(self, enemy *Player) bool {
		self.Add(StatRecruits, 6)
		self.Add(StatWall, 6)
		if self.Get(StatDungeons) < enemy.Get(StatDungeons) {
			self.Add(StatDungeons, 1)
		}
		return false
	}),
	NewCard("Harmonic Ore", bricks(11), "+6 wall, +3 tower", gain(wall(6), tower(3))),
	NewCard("Mondo Wall", bricks(12), "+12 wall", gain(wall(12))),
	NewCard("Battlements", bricks(14), "+7 wall, 6 damage", func(self, enemy *Player) bool {
		self.Add(StatWall, 7)
		enemy.Damage(6)
		return false
	}),
	NewCard("Focused Designs", bricks(15), "+8 wall, +5 tower", gain(wall(8), tower(5))),
	NewCard("Great Wall", bricks(16), "+15 wall", gain(wall(15))),
	NewCard("Shift", bricks(17), "switch your wall with enemy wall", func(self, enemy *Player) bool {
		own, theirs := self.Get(StatWall), enemy.Get(StatWall)
		self.Set(StatWall, theirs)
		enemy.Set(StatWall, own)
		return false
	}),
	NewCard("Rock Launcher", bricks(18), "+6 wall, 10 damage", func(self, enemy *Player) bool {
		self.Add(StatWall, 6)
		enemy.Damage(10)
		return false
	}),
	NewCard("Dragon's Heart", bricks(24), "+20 wall, +8 tower", gain(wall(20), tower(8))),

	// --- Gems ---
	NewCard("Bag of Baubles", gems(0), "if tower < enemy tower: +2 tower, else +1 tower", func(self, enemy *Player) bool {
		if self.Get(StatTower) < enemy.Get(StatTower) {
			self.Add(StatTower, 2)
		} else {
			self.Add(StatTower, 1)
		}
		return false
	}),
	NewCard("Rainbow", gems(0), "+1 tower for each player, +3 gems", func(self, enemy *Player) bool {
		self.Add(StatTower, 1)
		self.Add(StatGems, 3)
		enemy.Add(StatTower, 1)
		return false
	}),
	NewCard("Quartz", gems(1), "+1 tower, play again", func(self, _ *Player) bool {
		self.Add(StatTower, 1)
		return true
	}),
	NewCard("Smoky Quartz", gems(2), "-1 enemy tower, play again", func(_, enemy *Player) bool {
		enemy.Add(StatTower, -1)
		return true
	}),
	NewCard("Amethyst", gems(2), "+3 tower", gain(tower(3))),
	NewCard("Prism", gems(2), "draw 1 card, discard 1 card, play again", discardOne),
	NewCard("Gemstone Flaw", gems(2), "-3 enemy tower", func(_, enemy *Player) bool {
		enemy.Add(StatTower, -3)
		return false
	}),
	NewCard("Spell Weavers", gems(3), "+1 magic", gain(magic(1))),
	NewCard("Ruby", gems(3), "+5 tower", gain(tower(5))),
	NewCard("Power Burn", gems(3), "-5 tower, +2 magic", gain(tower(-5), magic(2))),
	NewCard("Gem Spear", gems(4), "-5 enemy tower", func(_, enemy *Player) bool {
		enemy.Add(StatTower, -5)
		return false
	}),
	NewCard("Solar Flare", gems(4), "+2 tower, -2 enemy tower", func(self, enemy *Player) bool {
		self.Add(StatTower, 2)
		enemy.Add(StatTower, -2)
		return false
	}),
	NewCard("Quarry's Help", gems(4), "+7 tower, -10 bricks", gain(tower(7), brickGain(-10))),
	NewCard("Apprentice", gems(5), "+4 tower, -3 recruits, -2 enemy tower", func(self, enemy *Player) bool {
		self.Add(StatTower, 4)
		self.Add(StatRecruits, -3)
		enemy.Add(StatTower, -2)
		return false
	}),
	undiscardable(NewCard("Lodestone", gems(5), "+3 tower, this card can't be discarded without playing it", gain(tower(3)))),
	NewCard("Discord", gems(5), "-7 tower and -1 magic for each player", func(self, enemy *Player) bool {
		self.Add(StatTower, -7)
		self.Add(StatMagic, -1)
		enemy.Add(StatTower, -7)
		enemy.Add(StatMagic, -1)
		return false
	}),
	NewCard("Crystal Matrix", gems(6), "+1 magic, +3 tower, +1 enemy tower", func(self, enemy *Player) bool {
		self.Add(StatMagic, 1)
		self.Add(StatTower, 3)
		enemy.Add(StatTower, 1)
		return false
	}),
	NewCard("Emerald", gems(6), "+8 tower", gain(tower(8))),
	NewCard("Crumblestone", gems(7), "+5 tower, -6 enemy bricks", func(self, enemy *Player) bool {
		self.Add(StatTower, 5)
		enemy.Add(StatBricks, -6)
		return false
	}),
	NewCard("Harmonic Vibe", gems(7), "+1 magic, +3 tower, +3 wall", gain(magic(1), tower(3), wall(3))),
	NewCard("Parity", gems(7), "all players' magic equals the highest player's magic", func(self, enemy *Player) bool {
		m := max(self.Get(StatMagic), enemy.Get(StatMagic))
		self.Set(StatMagic, m)
		enemy.Set(StatMagic, m)
		return false
	}),
	NewCard("Crystallize", gems(8), "+11 tower, -6 wall", gain(tower(11), wall(-6))),
	NewCard("Shatterer", gems(8), "-1 magic, -9 enemy tower", func(self, enemy *Player) bool {
		self.Add(StatMagic, -1)
		enemy.Add(StatTower, -9)
		return false
	}),
	NewCard("Pearl of Wisdom", gems(9), "+5 tower, +1 magic", gain(tower(5), magic(1))),
	NewCard("Sapphire", gems(10), "+11 tower", gain(tower(11))),
	NewCard("Lightning Shard", gems(11), "if tower > enemy wall: -8 enemy tower, else 8 damage", func(self, enemy *Player) bool {
		if self.Get(StatTower) > enemy.Get(StatWall) {
			enemy.Add(StatTower, -8)
		} else {
			enemy.Damage(8)
		}
		return false
	}),
	NewCard("Crystal Shield", gems(12), "+8 tower, +3 wall", gain(tower(8), wall(3))),
	NewCard("Fire Ruby", gems(13), "+6 tower, -4 enemy tower", func(self, enemy *Player) bool {
		self.Add(StatTower, 6)
		enemy.Add(StatTower, -4)
		return false
	}),
	NewCard("Empathy Gem", gems(14), "+8 tower, +1 dungeon", gain(tower(8), dungeon(1))),
	NewCard("Sanctuary", gems(15), "+10 tower, +5 wall, +5 recruits", gain(tower(10), wall(5), recruitGain(5))),
	NewCard("Diamond", gems(16), "+15 tower", gain(tower(15))),
	NewCard("Lava Jewel", gems(17), "+12 tower, 6 damage", func(self, enemy *Player) bool {
		self.Add(StatTower, 12)
		enemy.Damage(6)
		return false
	}),
	NewCard("Phase Jewel", gems(18), "+13 tower, +6 recruits, +6 bricks", gain(tower(13), recruitGain(6), brickGain(6))),
	NewCard("Dragon's Eye", gems(21), "+20 tower", gain(tower(20))),

	// --- Recruits ---
	NewCard("Mad Cow Disease", recruits(0), "-6 recruits for each player", func(self, enemy *Player) bool {
		self.Add(StatRecruits, -6)
		enemy.Add(StatRecruits, -6)
		return false
	}),
	NewCard("Full Moon", recruits(0), "+1 dungeon for each player, +3 recruits", func(self, enemy *Player) bool {
		self.Add(StatDungeons, 1)
		self.Add(StatRecruits, 3)
		enemy.Add(StatDungeons, 1)
		return false
	}),
	NewCard("Faerie", recruits(1), "2 damage, play again", func(_, enemy *Player) bool {
		enemy.Damage(2)
		return true
	}),
	NewCard("Moody Goblins", recruits(1), "4 damage, -3 gems", func(self, enemy *Player) bool {
		self.Add(StatGems, -3)
		enemy.Damage(4)
		return false
	}),
	NewCard("Spearman", recruits(2), "if wall > enemy wall: 3 damage, else 2 damage", func(self, enemy *Player) bool {
		if self.Get(StatWall) > enemy.Get(StatWall) {
			enemy.Damage(3)
		} else {
			enemy.Damage(2)
		}
		return false
	}),
	NewCard("Gnome", recruits(2), "3 damage, +1 gem", func(self, enemy *Player) bool {
		self.Add(StatGems, 1)
		enemy.Damage(3)
		return false
	}),
	NewCard("Elven Scout", recruits(2), "draw 1 card, discard 1 card, play again", discardOne),
	NewCard("Orc", recruits(3), "5 damage", hit(5)),
	NewCard("Minotaur", recruits(3), "+1 dungeon", gain(dungeon(1))),
	NewCard("Goblin Mob", recruits(3), "6 damage, you take 3 damage", func(self, enemy *Player) bool {
		self.Damage(3)
		enemy.Damage(6)
		return false
	}),
	NewCard("Berserker", recruits(4), "8 damage, -3 tower", func(self, enemy *Player) bool {
		self.Add(StatTower, -3)
		enemy.Damage(8)
		return false
	}),
	NewCard("Goblin Archers", recruits(4), "-3 enemy tower, you take 1 damage", func(self, enemy *Player) bool {
		enemy.Add(StatTower, -3)
		self.Damage(1)
		return false
	}),
	NewCard("Dwarves", recruits(5), "4 damage, +3 wall", func(self, enemy *Player) bool {
		self.Add(StatWall, 3)
		enemy.Damage(4)
		return false
	}),
	NewCard("Imp", recruits(5), "6 damage, -5 bricks, gems and recruits for each player", func(self, enemy *Player) bool {
		for _, r := range Resources {
			self.Add(r.Stat(), -5)
			enemy.Add(r.Stat(), -5)
		}
		enemy.Damage(6)
		return false
	}),
	NewCard("Slasher", recruits(5), "6 damage", hit(6)),
	NewCard("Shadow Faerie", recruits(6), "-2 enemy tower, play again", func(_, enemy *Player) bool {
		enemy.Add(StatTower, -2)
		return true
	}),
	NewCard("Ogre", recruits(6), "7 damage", hit(7)),
	NewCard("Little Snakes", recruits(6), "-4 enemy tower", func(_, enemy *Player) bool {
		enemy.Add(StatTower, -4)
		return false
	}),
	NewCard("Rabid Sheep", recruits(6), "6 damage, -3 enemy recruits", func(_, enemy *Player) bool {
		enemy.Add(StatRecruits, -3)
		enemy.Damage(6)
		return false
	}),
	NewCard("Troll Trainer", recruits(7), "+2 dungeon", gain(dungeon(2))),
	NewCard("Tower Gremlin", recruits(8), "2 damage, +4 wall, +2 tower", func(self, enemy *Player) bool {
		self.Add(StatWall, 4)
		self.Add(StatTower, 2)
		enemy.Damage(2)
		return false
	}),
	NewCard("Spizzer", recruits(8), "if enemy wall = 0: 10 damage, else 6 damage", func(_, enemy *Player) bool {
		if enemy.Get(StatWall) == 0 {
			enemy.Damage(10)
		} else {
			enemy.Damage(6)
		}
		return false
	}),
	NewCard("Unicorn", recruits(9), "if magic > enemy magic: 12 damage, else 8 damage", func(self, enemy *Player) bool {
		if self.Get(StatMagic) > enemy.Get(StatMagic) {
			enemy.Damage(12)
		} else {
			enemy.Damage(8)
		}
		return false
	}),
	NewCard("Werewolf", recruits(9), "9 damage", hit(9)),
	NewCard("Elven Archers", recruits(10), "if wall > enemy wall: -6 enemy tower, else 6 damage", func(self, enemy *Player) bool {
		if self.Get(StatWall) > enemy.Get(StatWall) {
			enemy.Add(StatTower, -6)
		} else {
			enemy.Damage(6)
		}
		return false
	}),
	NewCard("Corrosion Cloud", recruits(11), "if enemy wall > 0: 10 damage, else 7 damage", func(_, enemy *Player) bool {
		if enemy.Get(StatWall) > 0 {
			enemy.Damage(10)
		} else {
			enemy.Damage(7)
		}
		return false
	}),
	NewCard("Rock Stompers", recruits(11), "8 damage, -1 enemy quarry", func(_, enemy *Player) bool {
		enemy.Add(StatQuarries, -1)
		enemy.Damage(8)
		return false
	}),
	NewCard("Thief", recruits(12), "-10 enemy gems and -5 enemy bricks, gain half of the enemy losses", func(self, enemy *Player) bool {
		stolenGems := min(enemy.Get(StatGems), 10)
		stolenBricks := min(enemy.Get(StatBricks), 5)
		self.Add(StatGems, stolenGems/2)
		self.Add(StatBricks, stolenBricks/2)
		enemy.Add(StatGems, -stolenGems)
		enemy.Add(StatBricks, -stolenBricks)
		return false
	}),
	NewCard("Warlord", recruits(13), "13 damage, -3 gems", func(self, enemy *Player) bool {
		self.Add(StatGems, -3)
		enemy.Damage(13)
		return false
	}),
	NewCard("Succubus", recruits(14), "-5 enemy tower, -8 enemy recruits", func(_, enemy *Player) bool {
		enemy.Add(StatTower, -5)
		enemy.Add(StatRecruits, -8)
		return false
	}),
	NewCard("Stone Giant", recruits(15), "10 damage, +4 wall", func(self, enemy *Player) bool {
		self.Add(StatWall, 4)
		enemy.Damage(10)
		return false
	}),
	NewCard("Vampire", recruits(17), "10 damage, -5 enemy recruits, -1 enemy dungeon", func(_, enemy *Player) bool {
		enemy.Add(StatRecruits, -5)
		enemy.Add(StatDungeons, -1)
		enemy.Damage(10)
		return false
	}),
	NewCard("Pegasus Lancer", recruits(18), "-12 enemy tower", func(_, enemy *Player) bool {
		enemy.Add(StatTower, -12)
		return false
	}),
	NewCard("Dragon", recruits(25), "20 damage, -10 enemy gems, -1 enemy dungeon", func(_, enemy *Player) bool {
		enemy.Add(StatGems, -10)
		enemy.Add(StatDungeons, -1)
		enemy.Damage(20)
		return false
	}),
}

// hit builds a plain damage effect.
func hit(n int) Effect {
	return func(_, enemy *Player) bool {
		enemy.Damage(n)
		return false
	}
}
