package bot

// Coefs weighs stat changes when GreedyBot scores a card.
type Coefs struct {
	Resource   float64
	Wall       float64
	Tower      float64
	Production float64
	Damage     float64 // multiplier on the enemy's tower and wall losses
}

// DefaultCoefs are the baseline weights.
var DefaultCoefs = Coefs{
	Resource:   1.01,
	Wall:       2.01,
	Tower:      3.01,
	Production: 18,
	Damage:     1,
}

const (
	// dangerTower is the tower height at or below which a side is in danger.
	dangerTower = 12
	// closeToVictory is how near the enemy tower may get to the tower
	// threshold before damage counts double.
	closeToVictory = 10
	// selfPreservation replaces the tower weight while our own tower is in
	// danger.
	selfPreservation = 1e3
	pressAdvantage   = 2
)
