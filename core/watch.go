package core

import (
	"context"
	"fmt"
	"os"

	"github.com/huangsam/posecoach/internal/contract"
	"github.com/huangsam/posecoach/internal/detector"
	"github.com/huangsam/posecoach/schema"
)

// ExecuteWatch replays a capture stream at the configured cadence, scoring
// or analyzing each frame as it arrives. A detector that fails to load is
// the model-initialization-failure case: it is reported once and detection
// stays disabled for the rest of the session.
func ExecuteWatch(ctx context.Context, cfg *contract.Config) error {
	det, err := detector.NewCaptureDetector(cfg.CapturePath)
	if err != nil {
		item := schema.FeedbackItem{
			Message:  fmt.Sprintf("Pose model failed to initialize: %v", err),
			Severity: schema.SeverityError,
		}
		fmt.Fprintf(os.Stderr, "[%s] %s\n", contract.GetSeverityLabel(item.Severity, cfg.UseColors), item.Message)
		return fmt.Errorf("detection disabled for this session: %w", err)
	}
	defer func() { _ = det.Close() }()

	var tpl *schema.PoseTemplate
	if cfg.TemplateID != "" {
		tpl, _ = schema.TemplateByID(cfg.TemplateID)
	}

	frameNum := 0
	onFrame := func(frame *schema.Frame) {
		frameNum++
		raw := frame.FirstPose()
		if len(raw) == 0 {
			fmt.Printf("frame %3d: no pose detected\n", frameNum)
			return
		}
		if tpl != nil {
			detected := BuildKeypointSet(raw, cfg.MinConfidence)
			result := ScoreTemplateWeighted(detected, tpl, frame.Width, frame.Height, cfg.WeightOverrides)
			label := contract.GetPlainLabel(result.Score)
			if cfg.UseColors {
				label = contract.GetColorLabel(result.Score)
			}
			fmt.Printf("frame %3d: %s %d/100 (%s), matched %d/%d\n",
				frameNum, tpl.Name, result.Score, label, result.MatchedCount, result.TotalCount)
			return
		}
		detected := BuildKeypointSet(raw, schema.AnalyzeMinConfidence)
		for _, item := range AnalyzePose(detected, cfg.Mode, frame.Width, frame.Height) {
			fmt.Printf("frame %3d: [%s] %s\n", frameNum, contract.GetSeverityLabel(item.Severity, cfg.UseColors), item.Message)
		}
	}

	onError := func(err error) {
		// Expected steady-state failures are skipped, not retried.
		contract.Warning(fmt.Sprintf("detection cycle failed: %v", err))
	}

	runner := detector.NewRunner(det, cfg.Interval, cfg.Warmup, onFrame, onError)
	return runner.Run(ctx)
}
