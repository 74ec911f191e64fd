package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/arcomage/internal/game"
	"github.com/peterkuimelis/arcomage/internal/store"
)

func request(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func decode(t *testing.T, res *mcp.CallToolResult) ToolResponse {
	t.Helper()
	require.NotNil(t, res)
	require.False(t, res.IsError, "tool error: %v", res.Content)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "unexpected content %T", res.Content[0])

	var resp ToolResponse
	require.NoError(t, json.Unmarshal([]byte(text.Text), &resp))
	return resp
}

func TestToolsRequireSession(t *testing.T) {
	tools := NewTools(SessionConfig{})
	ctx := context.Background()

	res, err := tools.handlePlayCard(ctx, request(map[string]any{"index": 0}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = tools.handleGetGameState(ctx, request(nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestToolsPlayAMatch(t *testing.T) {
	results := store.NewMemoryStore()
	tools := NewTools(SessionConfig{Results: results})
	defer tools.Close()
	ctx := context.Background()

	res, err := tools.handleStartGame(ctx, request(map[string]any{"preset": "On The House - Harmondale", "bot": "random"}))
	require.NoError(t, err)
	resp := decode(t, res)

	require.NotNil(t, resp.State)
	assert.Equal(t, "On The House - Harmondale", resp.State.Preset)
	assert.Len(t, resp.State.Hand, game.DefaultHandSize)
	assert.True(t, resp.State.You.IsActive)
	assert.NotEmpty(t, resp.Events)
	firstMatch := resp.Match

	for i := 0; !resp.GameOver && i < 2000; i++ {
		tool, index := tools.handlePlayCard, -1
		for _, c := range resp.State.Hand {
			if c.Playable {
				index = c.Index
				break
			}
		}
		if index < 0 {
			tool = tools.handleDiscardCard
			for _, c := range resp.State.Hand {
				if !c.Undiscardable {
					index = c.Index
					break
				}
			}
		}
		res, err = tool(ctx, request(map[string]any{"index": index}))
		require.NoError(t, err)
		resp = decode(t, res)
		assert.Equal(t, firstMatch, resp.Match)
	}
	require.True(t, resp.GameOver, "match did not finish")
	assert.NotEmpty(t, resp.Result)

	recorded, err := results.ListResults(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.Equal(t, firstMatch, recorded[0].ID.String())

	res, err = tools.handleRestartGame(ctx, request(nil))
	require.NoError(t, err)
	resp = decode(t, res)
	assert.NotEqual(t, firstMatch, resp.Match)
	assert.False(t, resp.GameOver)
	assert.Equal(t, 1, resp.State.Turn)
}

func TestToolsRejectBadMoves(t *testing.T) {
	tools := NewTools(SessionConfig{})
	defer tools.Close()
	ctx := context.Background()

	res, err := tools.handleStartGame(ctx, request(nil))
	require.NoError(t, err)
	before := decode(t, res)

	res, err = tools.handlePlayCard(ctx, request(map[string]any{"index": 42}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = tools.handlePlayCard(ctx, request(nil))
	require.NoError(t, err)
	assert.True(t, res.IsError, "index is required")

	res, err = tools.handleGetGameState(ctx, request(nil))
	require.NoError(t, err)
	after := decode(t, res)
	assert.Equal(t, before.State, after.State)
	assert.Empty(t, after.Events, "events are returned once")
}

func TestToolsStartErrors(t *testing.T) {
	tools := NewTools(SessionConfig{})
	ctx := context.Background()

	res, err := tools.handleStartGame(ctx, request(map[string]any{"preset": "Atlantis"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = tools.handleStartGame(ctx, request(map[string]any{"bot": "oracle"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Nil(t, tools.current())
}

func TestListPresets(t *testing.T) {
	extra := []game.NamedPreset{{Name: "Quick", Preset: game.Preset{Tower: 10, TowerVictory: 40}}}
	tools := NewTools(SessionConfig{Presets: extra})

	res, err := tools.handleListPresets(context.Background(), request(nil))
	require.NoError(t, err)
	resp := decode(t, res)
	require.Len(t, resp.Presets, len(game.Presets())+1)
	assert.Equal(t, "Default", resp.Presets[0].Name)
	assert.Equal(t, "Quick", resp.Presets[len(resp.Presets)-1].Name)
}
