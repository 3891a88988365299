package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/posecoach/core"
	"github.com/huangsam/posecoach/internal/contract"
	"github.com/huangsam/posecoach/internal/detector"
	"github.com/huangsam/posecoach/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// scorePayload is the JSON shape returned by the score_pose tool.
type scorePayload struct {
	Template schema.TemplateID      `json:"template"`
	Result   schema.PoseScoreResult `json:"result"`
	Feedback []string               `json:"feedback"`
}

func (h *toolHandler) handleScorePose(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	capturePath := request.GetString("capture_path", "")
	templateID := schema.TemplateID(request.GetString("template", ""))
	if mc := request.GetFloat("min_confidence", 0); mc > 0 {
		cfg.MinConfidence = mc
	}

	tpl, ok := schema.TemplateByID(templateID)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown template: %s", templateID)), nil
	}

	frame, err := detector.LoadCaptureFrame(capturePath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("capture load failed: %v", err)), nil
	}

	detected := core.BuildKeypointSet(frame.FirstPose(), cfg.MinConfidence)
	result := core.ScoreTemplateWeighted(detected, tpl, frame.Width, frame.Height, cfg.WeightOverrides)
	payload := scorePayload{
		Template: tpl.ID,
		Result:   result,
		Feedback: core.TemplateFeedback(result, tpl),
	}

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleAnalyzePose(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	capturePath := request.GetString("capture_path", "")
	if m := request.GetString("mode", ""); m != "" {
		mode := schema.AnalysisMode(m)
		if _, ok := schema.ValidAnalysisModes[mode]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid analysis mode: %s", m)), nil
		}
		cfg.Mode = mode
	}

	frame, err := detector.LoadCaptureFrame(capturePath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("capture load failed: %v", err)), nil
	}

	detected := core.BuildKeypointSet(frame.FirstPose(), schema.AnalyzeMinConfidence)
	items := core.AnalyzePose(detected, cfg.Mode, frame.Width, frame.Height)

	jsonData, _ := json.MarshalIndent(items, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleBestMatch(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	capturePath := request.GetString("capture_path", "")
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	frame, err := detector.LoadCaptureFrame(capturePath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("capture load failed: %v", err)), nil
	}

	detected := core.BuildKeypointSet(frame.FirstPose(), cfg.MinConfidence)
	matches := core.RankTemplates(detected, frame.Width, frame.Height)
	if len(matches) > cfg.ResultLimit {
		matches = matches[:cfg.ResultLimit]
	}

	jsonData, _ := json.MarshalIndent(matches, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListTemplates(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(schema.Catalog(), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
