package net

import (
	"github.com/peterkuimelis/arcomage/internal/game"
	"github.com/peterkuimelis/arcomage/internal/log"
)

// Message types for the JSON protocol over TCP. Every message is one JSON
// object per line.

// Server → client message types.
const (
	MsgInit     = "init"
	MsgUpdate   = "update"
	MsgEvents   = "events"
	MsgError    = "error"
	MsgYourTurn = "your_turn"
	MsgGameOver = "game_over"
)

// Client → server message types.
const (
	MsgJoin     = "join"
	MsgPlay     = "play"
	MsgDiscard  = "discard"
	MsgRestart  = "restart"
	MsgSettings = "settings"
	MsgQuit     = "quit"
)

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"`

	// For "init"
	Data   *game.GameData `json:"data,omitempty"`
	Preset *game.Preset   `json:"preset,omitempty"`

	// For "update"
	Changes *game.GameChanges `json:"changes,omitempty"`

	// For "events"
	Events []EventView `json:"events,omitempty"`

	// For "error"
	Error string `json:"error,omitempty"`

	// For "game_over"; Winner is 0 for you, 1 for the bot, -1 for a draw.
	Winner int    `json:"winner"`
	Result string `json:"result,omitempty"`
}

// EventView is a simplified game event for the client. Players are
// numbered from the client's point of view.
type EventView struct {
	Turn    int    `json:"turn"`
	Player  int    `json:"player"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// NewEventView converts a domain event. Draws carry no card name: the
// opponent's draws are secret and the client learns its own from updates.
func NewEventView(e log.GameEvent) EventView {
	ev := EventView{
		Turn:    e.Turn,
		Player:  e.Player,
		Type:    e.Type.String(),
		Card:    e.Card,
		Details: e.Details,
	}
	if e.Type == log.EventDraw {
		ev.Card = ""
	}
	return ev
}

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"type"`

	// For "play" and "discard"
	Index int `json:"index"`

	// For "settings": a full preset, or the name of a known one.
	Preset     *game.Preset `json:"preset,omitempty"`
	PresetName string       `json:"preset_name,omitempty"`

	// For "join" (initial handshake)
	Bot string `json:"bot,omitempty"`
}
