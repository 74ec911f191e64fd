package game

import "fmt"

// --- Enums ---

// Resource is one of the three spendable resources.
type Resource int

const (
	Bricks Resource = iota
	Gems
	Recruits
)

// Resources lists every resource in display order.
var Resources = [...]Resource{Bricks, Gems, Recruits}

func (r Resource) String() string {
	switch r {
	case Bricks:
		return "bricks"
	case Gems:
		return "gems"
	case Recruits:
		return "recruits"
	default:
		return "unknown"
	}
}

// Stat returns the player stat holding this resource.
func (r Resource) Stat() Stat {
	switch r {
	case Gems:
		return StatGems
	case Recruits:
		return StatRecruits
	default:
		return StatBricks
	}
}

// Production returns the building stat that produces this resource.
func (r Resource) Production() Stat {
	switch r {
	case Gems:
		return StatMagic
	case Recruits:
		return StatDungeons
	default:
		return StatQuarries
	}
}

func (r Resource) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Resource) UnmarshalText(text []byte) error {
	res, err := ParseResource(string(text))
	if err != nil {
		return err
	}
	*r = res
	return nil
}

// ParseResource converts a resource name into a Resource.
func ParseResource(s string) (Resource, error) {
	switch s {
	case "bricks":
		return Bricks, nil
	case "gems":
		return Gems, nil
	case "recruits":
		return Recruits, nil
	}
	return 0, fmt.Errorf("unknown resource %q", s)
}

// Stat identifies a numeric player parameter.
type Stat int

const (
	StatBricks Stat = iota
	StatGems
	StatRecruits
	StatQuarries
	StatMagic
	StatDungeons
	StatTower
	StatWall
)

// Stats lists every numeric stat.
var Stats = [...]Stat{StatBricks, StatGems, StatRecruits, StatQuarries, StatMagic, StatDungeons, StatTower, StatWall}

func (s Stat) String() string {
	switch s {
	case StatBricks:
		return "bricks"
	case StatGems:
		return "gems"
	case StatRecruits:
		return "recruits"
	case StatQuarries:
		return "quarries"
	case StatMagic:
		return "magic"
	case StatDungeons:
		return "dungeons"
	case StatTower:
		return "tower"
	case StatWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Floor is the lowest value the stat may hold. Production buildings never
// drop below one.
func (s Stat) Floor() int {
	switch s {
	case StatQuarries, StatMagic, StatDungeons:
		return 1
	default:
		return 0
	}
}

// --- Data records ---

// Cost is the price of a card in a single resource.
type Cost struct {
	Amount   int      `json:"amount" yaml:"amount"`
	Resource Resource `json:"resource" yaml:"resource"`
}

func (c Cost) String() string {
	return fmt.Sprintf("%d %s", c.Amount, c.Resource)
}

// CardData is the public projection of a card.
type CardData struct {
	Name          string `json:"name"`
	Cost          Cost   `json:"cost"`
	Description   string `json:"desc"`
	Undiscardable bool   `json:"isUndiscardable"`
}

// Params is a full value snapshot of one player's state.
type Params struct {
	IsActive      bool `json:"isActive" yaml:"-"`
	IsWinner      bool `json:"isWinner" yaml:"-"`
	IsDiscardMode bool `json:"isDiscardMode" yaml:"-"`
	Bricks        int  `json:"bricks" yaml:"bricks"`
	Gems          int  `json:"gems" yaml:"gems"`
	Recruits      int  `json:"recruits" yaml:"recruits"`
	Quarries      int  `json:"quarries" yaml:"quarries"`
	Magic         int  `json:"magic" yaml:"magic"`
	Dungeons      int  `json:"dungeons" yaml:"dungeons"`
	Tower         int  `json:"tower" yaml:"tower"`
	Wall          int  `json:"wall" yaml:"wall"`
}

// DefaultParams returns the floor values every player starts from.
func DefaultParams() Params {
	return Params{Quarries: 1, Magic: 1, Dungeons: 1}
}

// Get returns the value of a numeric stat.
func (p *Params) Get(s Stat) int {
	switch s {
	case StatBricks:
		return p.Bricks
	case StatGems:
		return p.Gems
	case StatRecruits:
		return p.Recruits
	case StatQuarries:
		return p.Quarries
	case StatMagic:
		return p.Magic
	case StatDungeons:
		return p.Dungeons
	case StatTower:
		return p.Tower
	case StatWall:
		return p.Wall
	}
	return 0
}

// set writes a numeric stat without clamping. Player.Set is the clamped path.
func (p *Params) set(s Stat, n int) {
	switch s {
	case StatBricks:
		p.Bricks = n
	case StatGems:
		p.Gems = n
	case StatRecruits:
		p.Recruits = n
	case StatQuarries:
		p.Quarries = n
	case StatMagic:
		p.Magic = n
	case StatDungeons:
		p.Dungeons = n
	case StatTower:
		p.Tower = n
	case StatWall:
		p.Wall = n
	}
}

// PlayerData pairs a player's params with their hand. A nil entry is a card
// hidden from the observer.
type PlayerData struct {
	Params Params      `json:"params"`
	Cards  []*CardData `json:"cards"`
}

// VictoryConditions holds the tower and single-resource win thresholds.
type VictoryConditions struct {
	Tower    int `json:"tower" yaml:"tower"`
	Resource int `json:"resource" yaml:"resource"`
}

// GameData is a full snapshot of a match.
type GameData struct {
	Players           [2]PlayerData     `json:"players"`
	VictoryConditions VictoryConditions `json:"victoryConditions"`
}

// UsedCard describes the card that was played or discarded.
type UsedCard struct {
	CardIndex   int      `json:"cardIndex"`
	PlayerIndex int      `json:"playerIndex"`
	Data        CardData `json:"data"`
	IsDiscarded bool     `json:"isDiscarded"`
}

// DrawnCard describes a replacement card installed into a hand slot.
// Data is nil when the observer may not see it.
type DrawnCard struct {
	CardIndex   int       `json:"cardIndex"`
	PlayerIndex int       `json:"playerIndex"`
	Data        *CardData `json:"data"`
}

// ParamPair holds one diff per player.
type ParamPair [2]ParamsDiff

// NextRound is the production step that ran after control passed to the
// other player.
type NextRound struct {
	Params  ParamPair  `json:"params"`
	NewCard *DrawnCard `json:"newCard,omitempty"`
}

// GameChanges is the result of one UseCard call.
type GameChanges struct {
	UsedCard  UsedCard   `json:"usedCard"`
	Params    ParamPair  `json:"params"`
	NewCard   *DrawnCard `json:"newCard,omitempty"`
	NextRound *NextRound `json:"nextRound,omitempty"`
}

// Move is a request to play or discard a hand card of the active player.
type Move struct {
	CardIndex   int  `json:"cardIndex"`
	IsDiscarded bool `json:"isDiscarded"`
}
