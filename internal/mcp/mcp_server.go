// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/posecoach/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Posecoach MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Posecoach Scoring Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: score_pose ---
	s.AddTool(mcp.NewTool("score_pose",
		mcp.WithDescription("Score a captured pose against a reference template and return the similarity result with coaching feedback."),
		mcp.WithString("capture_path", mcp.Description("Path to the capture file (JSON detection dump)."), mcp.Required()),
		mcp.WithString("template", mcp.Description("Reference template id."), mcp.Required(),
			mcp.Enum("front-double-biceps", "front-lat-spread", "side-chest", "back-double-biceps", "most-muscular")),
		mcp.WithNumber("min_confidence", mcp.Description("Visibility floor for detected keypoints (defaults to 0.3).")),
	), h.handleScorePose)

	// --- 2. Tool: analyze_pose ---
	s.AddTool(mcp.NewTool("analyze_pose",
		mcp.WithDescription("Run template-free geometric posture checks on a captured pose."),
		mcp.WithString("capture_path", mcp.Description("Path to the capture file."), mcp.Required()),
		mcp.WithString("mode", mcp.Description("Rule set to apply (fitness, photography). Defaults to 'fitness'."), mcp.Enum("fitness", "photography")),
	), h.handleAnalyzePose)

	// --- 3. Tool: best_match ---
	s.AddTool(mcp.NewTool("best_match",
		mcp.WithDescription("Rank every catalog template against a captured pose."),
		mcp.WithString("capture_path", mcp.Description("Path to the capture file."), mcp.Required()),
		mcp.WithNumber("limit", mcp.Description("Limit the number of ranked results returned.")),
	), h.handleBestMatch)

	// --- 4. Tool: list_templates ---
	s.AddTool(mcp.NewTool("list_templates",
		mcp.WithDescription("List the reference pose catalog with normalized keypoint targets."),
	), h.handleListTemplates)

	return s
}

// StartMCPServer starts the Posecoach MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
