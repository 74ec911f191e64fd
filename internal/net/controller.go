package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"go.uber.org/zap"

	"github.com/peterkuimelis/arcomage/internal/game"
	"github.com/peterkuimelis/arcomage/internal/log"
	"github.com/peterkuimelis/arcomage/internal/match"
)

// NetworkController implements match.View over a TCP connection and turns
// the client's messages into match events.
type NetworkController struct {
	conn    net.Conn
	enc     *json.Encoder
	dec     *json.Decoder
	presets []game.NamedPreset
	logger  *zap.Logger

	mu   sync.Mutex
	sent int   // events of the current match already forwarded
	err  error // first send failure
}

// NewNetworkController creates a new controller for the given connection.
// presets extends the built-in list for "settings" messages.
func NewNetworkController(conn net.Conn, presets []game.NamedPreset, logger *zap.Logger) *NetworkController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NetworkController{
		conn:    conn,
		enc:     json.NewEncoder(conn),
		dec:     json.NewDecoder(conn),
		presets: presets,
		logger:  logger,
	}
}

// send sends a server message to the client. Must be called with mu held.
func (nc *NetworkController) send(msg ServerMessage) error {
	if nc.err != nil {
		return nc.err
	}
	if err := nc.enc.Encode(msg); err != nil {
		nc.err = fmt.Errorf("send %s: %w", msg.Type, err)
	}
	return nc.err
}

// recv reads a client message.
func (nc *NetworkController) recv() (ClientMessage, error) {
	var msg ClientMessage
	err := nc.dec.Decode(&msg)
	return msg, err
}

// Init implements match.View.
func (nc *NetworkController) Init(data game.GameData, preset game.Preset) {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	nc.sent = 0
	_ = nc.send(ServerMessage{Type: MsgInit, Data: &data, Preset: &preset})
}

// Update implements match.View.
func (nc *NetworkController) Update(changes game.GameChanges) {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	_ = nc.send(ServerMessage{Type: MsgUpdate, Changes: &changes})
}

// Destroy implements match.View.
func (nc *NetworkController) Destroy() {}

// SendError reports a rejected request to the client.
func (nc *NetworkController) SendError(err error) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	return nc.send(ServerMessage{Type: MsgError, Error: err.Error()})
}

// SendGameOver sends a game_over message to the client.
func (nc *NetworkController) SendGameOver(winner int) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	return nc.send(ServerMessage{Type: MsgGameOver, Winner: winner, Result: ResultText(winner)})
}

// flushEvents forwards the part of the match log the client has not seen.
func (nc *NetworkController) flushEvents(events []log.GameEvent) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	if nc.sent > len(events) {
		nc.sent = 0
	}
	if nc.sent == len(events) {
		return nc.err
	}
	views := make([]EventView, 0, len(events)-nc.sent)
	for _, e := range events[nc.sent:] {
		views = append(views, NewEventView(e))
	}
	nc.sent = len(events)
	return nc.send(ServerMessage{Type: MsgEvents, Events: views})
}

// ResultText describes a finished match from the client's point of view.
func ResultText(winner int) string {
	switch winner {
	case 0:
		return "You win!"
	case 1:
		return "The bot wins."
	}
	return "Draw: both players reached a victory condition."
}

// Serve starts m and then handles client messages until the client quits or
// the connection closes.
func (nc *NetworkController) Serve(ctx context.Context, m *match.Match) error {
	if err := m.Start(ctx); err != nil {
		return fmt.Errorf("start match: %w", err)
	}
	if err := nc.prompt(m); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg, err := nc.recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("recv: %w", err)
		}
		if msg.Type == MsgQuit {
			return nil
		}

		ev, err := nc.event(msg)
		if err == nil {
			err = m.Dispatch(ctx, ev)
		}
		if err != nil {
			nc.logger.Debug("request rejected", zap.String("type", msg.Type), zap.Error(err))
			if err := nc.SendError(err); err != nil {
				return err
			}
		}
		if err := nc.prompt(m); err != nil {
			return err
		}
	}
}

// prompt sends new events followed by game_over or your_turn.
func (nc *NetworkController) prompt(m *match.Match) error {
	if err := nc.flushEvents(m.Events()); err != nil {
		return err
	}
	data, err := m.Data()
	if err != nil {
		return err
	}
	if winner, over := data.Winner(); over {
		return nc.SendGameOver(winner)
	}
	nc.mu.Lock()
	defer nc.mu.Unlock()
	return nc.send(ServerMessage{Type: MsgYourTurn})
}

// event converts a client message to a match event.
func (nc *NetworkController) event(msg ClientMessage) (match.Event, error) {
	switch msg.Type {
	case MsgPlay:
		return match.CardEvent{Move: game.Move{CardIndex: msg.Index}}, nil
	case MsgDiscard:
		return match.CardEvent{Move: game.Move{CardIndex: msg.Index, IsDiscarded: true}}, nil
	case MsgRestart:
		return match.RestartEvent{}, nil
	case MsgSettings:
		if msg.Preset != nil {
			return match.SettingsEvent{Preset: *msg.Preset}, nil
		}
		preset, err := match.ResolvePreset(msg.PresetName, nc.presets)
		if err != nil {
			return nil, err
		}
		return match.SettingsEvent{Preset: preset}, nil
	}
	return nil, fmt.Errorf("unknown message type %q", msg.Type)
}
