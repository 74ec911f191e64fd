package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventNewTurn EventType = iota
	EventProduction
	EventPlayCard
	EventPlayAgain
	EventDiscard
	EventDiscardMode
	EventDraw
	EventWin
	EventTie
)

func (e EventType) String() string {
	switch e {
	case EventNewTurn:
		return "NewTurn"
	case EventProduction:
		return "Production"
	case EventPlayCard:
		return "PlayCard"
	case EventPlayAgain:
		return "PlayAgain"
	case EventDiscard:
		return "Discard"
	case EventDiscardMode:
		return "DiscardMode"
	case EventDraw:
		return "Draw"
	case EventWin:
		return "Win"
	case EventTie:
		return "Tie"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a match.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Player  int       // acting player (0 or 1)
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
