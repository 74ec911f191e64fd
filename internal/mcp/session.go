package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/peterkuimelis/arcomage/internal/bot"
	"github.com/peterkuimelis/arcomage/internal/game"
	"github.com/peterkuimelis/arcomage/internal/match"
	arcnet "github.com/peterkuimelis/arcomage/internal/net"
	"github.com/peterkuimelis/arcomage/internal/store"
)

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	Match    string             `json:"match"`
	Events   []arcnet.EventView `json:"events"`
	State    *StateView         `json:"state,omitempty"`
	GameOver bool               `json:"game_over"`
	Winner   int                `json:"winner,omitempty"`
	Result   string             `json:"result,omitempty"`
	Presets  []game.NamedPreset `json:"presets,omitempty"`
}

// StateView is the match as the model sees it. "You" is player 1.
type StateView struct {
	Turn        int         `json:"turn"`
	Preset      string      `json:"preset"`
	Victory     VictoryView `json:"victory"`
	You         game.Params `json:"you"`
	Bot         game.Params `json:"bot"`
	Hand        []CardView  `json:"hand"`
	DiscardOnly bool        `json:"discard_only"`
}

// VictoryView lists the win thresholds.
type VictoryView struct {
	Tower    int `json:"tower"`
	Resource int `json:"resource"`
}

// CardView is one card in the model's hand.
type CardView struct {
	Index         int    `json:"index"`
	Name          string `json:"name"`
	Cost          int    `json:"cost"`
	Resource      string `json:"resource"`
	Description   string `json:"description"`
	Playable      bool   `json:"playable"`
	Undiscardable bool   `json:"undiscardable,omitempty"`
}

// SessionConfig holds what every new session is created with.
type SessionConfig struct {
	Presets []game.NamedPreset
	Bot     bot.Level
	Results store.Store
	Logger  *zap.Logger
}

// GameSession holds the state of a single MCP game session: one match
// against an in-process bot.
type GameSession struct {
	match *match.Match
	ctrl  *MCPController

	mu   sync.Mutex
	sent int // events already returned to the model
}

// NewGameSession creates and starts a match with the given preset and bot.
func NewGameSession(ctx context.Context, cfg SessionConfig, presetName, level string) (*GameSession, error) {
	lvl := cfg.Bot
	if level != "" {
		var err error
		if lvl, err = bot.ParseLevel(level); err != nil {
			return nil, err
		}
	}
	preset, err := match.ResolvePreset(presetName, cfg.Presets)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, presetName)
	}

	sess := &GameSession{}
	sess.ctrl = NewMCPController(sess)
	sess.match = match.New(match.Config{
		View:     sess.ctrl,
		BotLevel: lvl,
		Settings: match.NewMemorySettings(preset),
		Results:  cfg.Results,
		Logger:   cfg.Logger,
	})
	if err := sess.match.Start(ctx); err != nil {
		return nil, err
	}
	return sess, nil
}

// resetEvents is called when a new match begins.
func (s *GameSession) resetEvents() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = 0
}

// drainEvents returns the events the model has not seen yet.
func (s *GameSession) drainEvents() []arcnet.EventView {
	all := s.match.Events()

	s.mu.Lock()
	defer s.mu.Unlock()
	views := []arcnet.EventView{}
	if s.sent > len(all) {
		s.sent = 0
	}
	for _, e := range all[s.sent:] {
		views = append(views, arcnet.NewEventView(e))
	}
	s.sent = len(all)
	return views
}

// Dispatch forwards an event to the match.
func (s *GameSession) Dispatch(ctx context.Context, ev match.Event) error {
	return s.match.Dispatch(ctx, ev)
}

// Close tears the match down.
func (s *GameSession) Close() {
	s.match.Destroy()
}

// response builds a ToolResponse from the controller's copy of the match.
func (s *GameSession) response() *ToolResponse {
	data, preset := s.ctrl.Snapshot()
	resp := &ToolResponse{
		Match:  s.match.ID().String(),
		Events: s.drainEvents(),
		State:  buildStateView(data, preset, s.match.Turn()),
	}
	if winner, over := data.Winner(); over {
		resp.GameOver = true
		resp.Winner = winner
		resp.Result = arcnet.ResultText(winner)
	}
	return resp
}

func buildStateView(data game.GameData, preset game.Preset, turn int) *StateView {
	you := data.Players[0].Params
	sv := &StateView{
		Turn:        turn,
		Preset:      game.PresetName(preset),
		Victory:     VictoryView{Tower: preset.TowerVictory, Resource: preset.ResourceVictory},
		You:         you,
		Bot:         data.Players[1].Params,
		Hand:        []CardView{},
		DiscardOnly: you.IsDiscardMode,
	}
	for i, c := range data.Players[0].Cards {
		if c == nil {
			continue
		}
		sv.Hand = append(sv.Hand, CardView{
			Index:         i,
			Name:          c.Name,
			Cost:          c.Cost.Amount,
			Resource:      c.Cost.Resource.String(),
			Description:   c.Description,
			Playable:      !you.IsDiscardMode && you.Get(c.Cost.Resource.Stat()) >= c.Cost.Amount,
			Undiscardable: c.Undiscardable,
		})
	}
	return sv
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
