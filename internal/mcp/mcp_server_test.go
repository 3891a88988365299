package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/posecoach/internal/contract"
	mcp_internal "github.com/huangsam/posecoach/internal/mcp"
	"github.com/huangsam/posecoach/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCapture = `{
  "width": 640,
  "height": 480,
  "poses": [
    {
      "keypoints": [
        {"name": "nose", "x": 320, "y": 72, "score": 0.95},
        {"name": "left_shoulder", "x": 224, "y": 168, "score": 0.9},
        {"name": "right_shoulder", "x": 416, "y": 168, "score": 0.9},
        {"name": "left_hip", "x": 269, "y": 288, "score": 0.8},
        {"name": "right_hip", "x": 371, "y": 288, "score": 0.8}
      ]
    }
  ]
}`

func baseConfig() *contract.Config {
	return &contract.Config{
		Mode:          schema.FitnessMode,
		MinConfidence: schema.DefaultMinConfidence,
		ResultLimit:   contract.DefaultResultLimit,
		Output:        schema.TextOut,
	}
}

func writeTestCapture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "capture.json")
	require.NoError(t, os.WriteFile(path, []byte(testCapture), 0o644))
	return path
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	s := mcp_internal.NewMCPServer(baseConfig())

	t.Run("score_pose unknown template", func(t *testing.T) {
		res := callTool(t, s, "score_pose", map[string]any{
			"capture_path": writeTestCapture(t),
			"template":     "warrior-pose",
		})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "unknown template")
	})

	t.Run("score_pose missing capture", func(t *testing.T) {
		res := callTool(t, s, "score_pose", map[string]any{
			"capture_path": filepath.Join(t.TempDir(), "nope.json"),
			"template":     "side-chest",
		})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "capture load failed")
	})

	t.Run("analyze_pose invalid mode", func(t *testing.T) {
		res := callTool(t, s, "analyze_pose", map[string]any{
			"capture_path": writeTestCapture(t),
			"mode":         "yoga",
		})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "invalid analysis mode")
	})
}

func TestMCPServerHandlers_Success(t *testing.T) {
	s := mcp_internal.NewMCPServer(baseConfig())
	capturePath := writeTestCapture(t)

	t.Run("score_pose returns result payload", func(t *testing.T) {
		res := callTool(t, s, "score_pose", map[string]any{
			"capture_path": capturePath,
			"template":     "side-chest",
		})
		require.False(t, res.IsError)

		var payload struct {
			Template schema.TemplateID      `json:"template"`
			Result   schema.PoseScoreResult `json:"result"`
			Feedback []string               `json:"feedback"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &payload))
		assert.Equal(t, schema.SideChest, payload.Template)
		assert.GreaterOrEqual(t, payload.Result.Score, 0)
		assert.LessOrEqual(t, payload.Result.Score, 100)
		assert.NotEmpty(t, payload.Feedback)
	})

	t.Run("analyze_pose returns feedback items", func(t *testing.T) {
		res := callTool(t, s, "analyze_pose", map[string]any{
			"capture_path": capturePath,
			"mode":         "photography",
		})
		require.False(t, res.IsError)

		var items []schema.FeedbackItem
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &items))
		assert.NotEmpty(t, items)
	})

	t.Run("best_match honors limit", func(t *testing.T) {
		res := callTool(t, s, "best_match", map[string]any{
			"capture_path": capturePath,
			"limit":        2.0,
		})
		require.False(t, res.IsError)

		var matches []schema.TemplateScore
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &matches))
		assert.Len(t, matches, 2)
	})

	t.Run("list_templates returns the catalog", func(t *testing.T) {
		res := callTool(t, s, "list_templates", nil)
		require.False(t, res.IsError)

		var templates []schema.PoseTemplate
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &templates))
		assert.Len(t, templates, 5)
	})
}
