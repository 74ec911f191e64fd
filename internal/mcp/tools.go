package mcp

import (
	"context"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/arcomage/internal/game"
	"github.com/peterkuimelis/arcomage/internal/match"
)

// Tools serves the game tools. There is at most one session at a time (one
// per stdio process).
type Tools struct {
	cfg SessionConfig

	mu      sync.Mutex
	session *GameSession
}

// NewTools creates the tool handlers.
func NewTools(cfg SessionConfig) *Tools {
	return &Tools{cfg: cfg}
}

// Register adds all game tools to the MCP server.
func (t *Tools) Register(s *server.MCPServer) {
	s.AddTool(startGameTool(), t.handleStartGame)
	s.AddTool(playCardTool(), t.handlePlayCard)
	s.AddTool(discardCardTool(), t.handleDiscardCard)
	s.AddTool(getGameStateTool(), t.handleGetGameState)
	s.AddTool(restartGameTool(), t.handleRestartGame)
	s.AddTool(listPresetsTool(), t.handleListPresets)
}

// Close ends the running session, if any.
func (t *Tools) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.session != nil {
		t.session.Close()
		t.session = nil
	}
}

// --- Tool definitions ---

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new Arcomage match against a bot, replacing any match in progress. "+
			"You are player 1 and move first. Returns the initial state."),
		mcp.WithString("preset", mcp.Description("Tavern preset name (see list_presets). Empty for Default.")),
		mcp.WithString("bot", mcp.Description("Bot level: 'greedy' (default) or 'random'.")),
	)
}

func playCardTool() mcp.Tool {
	return mcp.NewTool("play_card",
		mcp.WithDescription("Play a card from your hand. The bot answers before this returns."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index of the card in your hand")),
	)
}

func discardCardTool() mcp.Tool {
	return mcp.NewTool("discard_card",
		mcp.WithDescription("Discard a card from your hand instead of playing it. Required when discard_only is true."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index of the card in your hand")),
	)
}

func getGameStateTool() mcp.Tool {
	return mcp.NewTool("get_game_state",
		mcp.WithDescription("Get the current state and any events not yet returned. Read-only."),
	)
}

func restartGameTool() mcp.Tool {
	return mcp.NewTool("restart_game",
		mcp.WithDescription("Abandon the current match and start a new one with the same preset and bot."),
	)
}

func listPresetsTool() mcp.Tool {
	return mcp.NewTool("list_presets",
		mcp.WithDescription("List the available tavern presets and their settings."),
	)
}

// --- Tool handlers ---

func (t *Tools) current() *GameSession {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.session
}

func (t *Tools) handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := NewGameSession(ctx, t.cfg, request.GetString("preset", ""), request.GetString("bot", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}

	t.mu.Lock()
	if t.session != nil {
		t.session.Close()
	}
	t.session = sess
	t.mu.Unlock()

	return mcp.NewToolResultText(respondJSON(sess.response())), nil
}

func (t *Tools) handlePlayCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.move(ctx, request, false)
}

func (t *Tools) handleDiscardCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.move(ctx, request, true)
}

func (t *Tools) move(ctx context.Context, request mcp.CallToolRequest, discard bool) (*mcp.CallToolResult, error) {
	sess := t.current()
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	index, err := request.RequireInt("index")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	move := game.Move{CardIndex: index, IsDiscarded: discard}
	if err := sess.Dispatch(ctx, match.CardEvent{Move: move}); err != nil {
		return mcp.NewToolResultErrorf("Move rejected: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(sess.response())), nil
}

func (t *Tools) handleGetGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := t.current()
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	return mcp.NewToolResultText(respondJSON(sess.response())), nil
}

func (t *Tools) handleRestartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := t.current()
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	if err := sess.Dispatch(ctx, match.RestartEvent{}); err != nil {
		return mcp.NewToolResultErrorf("Failed to restart: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(sess.response())), nil
}

func (t *Tools) handleListPresets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	presets := append(game.Presets(), t.cfg.Presets...)
	return mcp.NewToolResultText(respondJSON(&ToolResponse{Presets: presets})), nil
}
