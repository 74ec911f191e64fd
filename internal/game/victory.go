package game

import "fmt"

// VictoryChecker decides whether a player has won.
type VictoryChecker struct {
	conditions VictoryConditions
}

func NewVictoryChecker(vc VictoryConditions) VictoryChecker {
	return VictoryChecker{conditions: vc}
}

// Check reports whether player has won against enemy: the enemy tower is
// gone, any single resource reached the resource threshold, or the tower
// reached the tower threshold.
func (v VictoryChecker) Check(player, enemy Params) bool {
	if enemy.Tower == 0 {
		return true
	}
	for _, r := range Resources {
		if player.Get(r.Stat()) >= v.conditions.Resource {
			return true
		}
	}
	return player.Tower >= v.conditions.Tower
}

// Conditions returns the thresholds.
func (v VictoryChecker) Conditions() VictoryConditions { return v.conditions }

// Reason describes why player has won, or returns "" if they have not.
func (v VictoryChecker) Reason(player, enemy Params) string {
	switch {
	case enemy.Tower == 0:
		return "enemy tower destroyed"
	case player.Tower >= v.conditions.Tower:
		return fmt.Sprintf("tower reached %d", v.conditions.Tower)
	}
	for _, r := range Resources {
		if player.Get(r.Stat()) >= v.conditions.Resource {
			return fmt.Sprintf("%s reached %d", r, v.conditions.Resource)
		}
	}
	return ""
}
