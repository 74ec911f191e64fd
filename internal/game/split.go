package game

// SplitGameData produces one snapshot per side. Each side sees itself as
// player 0 and the opponent's hand as hidden (nil) slots.
func SplitGameData(data GameData) [2]GameData {
	p1, p2 := data.Players[0], data.Players[1]
	return [2]GameData{
		{Players: [2]PlayerData{clonePlayerData(p1), redact(p2)}, VictoryConditions: data.VictoryConditions},
		{Players: [2]PlayerData{clonePlayerData(p2), redact(p1)}, VictoryConditions: data.VictoryConditions},
	}
}

// SplitGameChanges produces one change set per side. The second side's
// player indices and param pairs are swapped so it also sees itself as
// player 0, and drawn cards are only revealed to their owner.
func SplitGameChanges(changes GameChanges) [2]GameChanges {
	return [2]GameChanges{sideChanges(changes, 0), sideChanges(changes, 1)}
}

func sideChanges(c GameChanges, side int) GameChanges {
	out := GameChanges{
		UsedCard: c.UsedCard,
		Params:   sideParams(c.Params, side),
		NewCard:  sideNewCard(c.NewCard, side),
	}
	out.UsedCard.PlayerIndex = relabel(c.UsedCard.PlayerIndex, side)
	if c.NextRound != nil {
		out.NextRound = &NextRound{
			Params:  sideParams(c.NextRound.Params, side),
			NewCard: sideNewCard(c.NextRound.NewCard, side),
		}
	}
	return out
}

func relabel(playerIndex, side int) int {
	if side == 0 {
		return playerIndex
	}
	return 1 - playerIndex
}

func sideParams(p ParamPair, side int) ParamPair {
	if side == 0 {
		return p
	}
	return ParamPair{p[1], p[0]}
}

func sideNewCard(nc *DrawnCard, side int) *DrawnCard {
	if nc == nil {
		return nil
	}
	if nc.PlayerIndex == side {
		out := &DrawnCard{CardIndex: nc.CardIndex, PlayerIndex: 0}
		if nc.Data != nil {
			data := *nc.Data
			out.Data = &data
		}
		return out
	}
	return &DrawnCard{CardIndex: nc.CardIndex, PlayerIndex: 1}
}

func clonePlayerData(p PlayerData) PlayerData {
	cards := make([]*CardData, len(p.Cards))
	for i, c := range p.Cards {
		if c != nil {
			data := *c
			cards[i] = &data
		}
	}
	return PlayerData{Params: p.Params, Cards: cards}
}

func redact(p PlayerData) PlayerData {
	return PlayerData{Params: p.Params, Cards: make([]*CardData, len(p.Cards))}
}

// Merge applies one side's changes to that side's snapshot. Replacement
// cards are installed only for player 0, the observer.
func (d *GameData) Merge(c GameChanges) {
	c.Params[0].ApplyTo(&d.Players[0].Params)
	c.Params[1].ApplyTo(&d.Players[1].Params)
	d.installCard(c.NewCard)

	if c.NextRound != nil {
		c.NextRound.Params[0].ApplyTo(&d.Players[0].Params)
		c.NextRound.Params[1].ApplyTo(&d.Players[1].Params)
		d.installCard(c.NextRound.NewCard)
	}
}

func (d *GameData) installCard(nc *DrawnCard) {
	if nc == nil || nc.PlayerIndex != 0 {
		return
	}
	cards := d.Players[0].Cards
	if nc.CardIndex < 0 || nc.CardIndex >= len(cards) {
		return
	}
	cards[nc.CardIndex] = nc.Data
}

// Winner reports whether the snapshot shows a finished match, from the
// observer's point of view: 0 for the observer, 1 for the opponent, -1 for
// a draw.
func (d *GameData) Winner() (winner int, over bool) {
	w0, w1 := d.Players[0].Params.IsWinner, d.Players[1].Params.IsWinner
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
