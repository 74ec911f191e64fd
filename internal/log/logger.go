package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// playerName returns "P1" or "P2" for display.
func playerName(p int) string {
	return fmt.Sprintf("P%d", p+1)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	return fmt.Sprintf("T%-3d %-12s| %s", e.Turn, e.Type, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewTurnEvent(turn int, player int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("=== Turn %d (%s) ===", turn, playerName(player)),
	}
}

func NewProductionEvent(turn int, player int, bricks, gems, recruits int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventProduction,
		Details: fmt.Sprintf("%s produces %d bricks, %d gems, %d recruits", playerName(player), bricks, gems, recruits),
	}
}

func NewPlayCardEvent(turn int, player int, cardName string, cost string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventPlayCard,
		Card:    cardName,
		Details: fmt.Sprintf("%s plays %s (%s)", playerName(player), cardName, cost),
	}
}

func NewPlayAgainEvent(turn int, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventPlayAgain,
		Card:    cardName,
		Details: fmt.Sprintf("%s plays again after %s", playerName(player), cardName),
	}
}

func NewDiscardEvent(turn int, player int, cardName string, forced bool) GameEvent {
	reason := "ends turn"
	if forced {
		reason = "forced"
	}
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventDiscard,
		Card:    cardName,
		Details: fmt.Sprintf("%s discards %s (%s)", playerName(player), cardName, reason),
	}
}

func NewDiscardModeEvent(turn int, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventDiscardMode,
		Card:    cardName,
		Details: fmt.Sprintf("%s must discard a card (%s)", playerName(player), cardName),
	}
}

// NewDrawEvent hides the card name from the text line; the Card field still
// carries it for in-process consumers.
func NewDrawEvent(turn int, player int, cardName string, slot int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventDraw,
		Card:    cardName,
		Details: fmt.Sprintf("%s draws a card into slot %d", playerName(player), slot+1),
	}
}

func NewWinEvent(turn int, winner int, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  winner,
		Type:    EventWin,
		Details: fmt.Sprintf("%s wins! (%s)", playerName(winner), reason),
	}
}

func NewTieEvent(turn int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  -1,
		Type:    EventTie,
		Details: "Both players reached a victory condition: the match is a draw",
	}
}
