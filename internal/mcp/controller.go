package mcp

import (
	"sync"

	"github.com/peterkuimelis/arcomage/internal/game"
)

// MCPController implements match.View for the model's side. It rebuilds the
// match from Init and Update exactly as a remote client would.
type MCPController struct {
	session *GameSession

	mu     sync.Mutex
	data   game.GameData
	preset game.Preset
}

// NewMCPController creates a controller reporting to session.
func NewMCPController(session *GameSession) *MCPController {
	return &MCPController{session: session}
}

// Init implements match.View.
func (c *MCPController) Init(data game.GameData, preset game.Preset) {
	c.mu.Lock()
	c.data = data
	c.preset = preset
	c.mu.Unlock()
	c.session.resetEvents()
}

// Update implements match.View.
func (c *MCPController) Update(changes game.GameChanges) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data.Merge(changes)
}

// Destroy implements match.View.
func (c *MCPController) Destroy() {}

// Snapshot returns a copy of the controller's view of the match.
func (c *MCPController) Snapshot() (game.GameData, game.Preset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data := c.data
	for i := range data.Players {
		data.Players[i].Cards = append([]*game.CardData(nil), data.Players[i].Cards...)
	}
	return data, c.preset
}
