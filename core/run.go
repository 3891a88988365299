package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/posecoach/internal/contract"
	"github.com/huangsam/posecoach/internal/detector"
	"github.com/huangsam/posecoach/internal/outwriter"
	"github.com/huangsam/posecoach/schema"
)

// ExecuteScore scores one capture file against the configured template and
// prints the result with coaching feedback.
func ExecuteScore(_ context.Context, cfg *contract.Config) error {
	start := time.Now()

	tpl, ok := schema.TemplateByID(cfg.TemplateID)
	if !ok {
		return fmt.Errorf("no template selected; pass --template with one of %v", schema.AllTemplateIDs())
	}

	frame, err := detector.LoadCaptureFrame(cfg.CapturePath)
	if err != nil {
		return err
	}

	detected := BuildKeypointSet(frame.FirstPose(), cfg.MinConfidence)
	result := ScoreTemplateWeighted(detected, tpl, frame.Width, frame.Height, cfg.WeightOverrides)
	feedback := TemplateFeedback(result, tpl)

	ow := outwriter.NewOutWriter()
	return ow.WriteScore(result, feedback, tpl, cfg, time.Since(start))
}

// ExecuteAnalyze runs the template-free geometric checks on one capture
// file and prints the severity-tagged feedback.
func ExecuteAnalyze(_ context.Context, cfg *contract.Config) error {
	start := time.Now()

	frame, err := detector.LoadCaptureFrame(cfg.CapturePath)
	if err != nil {
		return err
	}

	detected := BuildKeypointSet(frame.FirstPose(), schema.AnalyzeMinConfidence)
	items := AnalyzePose(detected, cfg.Mode, frame.Width, frame.Height)

	ow := outwriter.NewOutWriter()
	return ow.WriteAnalysis(items, cfg, time.Since(start))
}

// ExecuteMatch ranks every catalog template against one capture file.
func ExecuteMatch(_ context.Context, cfg *contract.Config) error {
	start := time.Now()

	frame, err := detector.LoadCaptureFrame(cfg.CapturePath)
	if err != nil {
		return err
	}

	detected := BuildKeypointSet(frame.FirstPose(), cfg.MinConfidence)
	matches := RankTemplates(detected, frame.Width, frame.Height)

	ow := outwriter.NewOutWriter()
	return ow.WriteMatches(matches, cfg, time.Since(start))
}

// ExecuteBatch scores a set of capture files against the configured
// template and prints or exports the aggregate results.
func ExecuteBatch(_ context.Context, cfg *contract.Config, paths []string) error {
	start := time.Now()

	tpl, ok := schema.TemplateByID(cfg.TemplateID)
	if !ok {
		return fmt.Errorf("no template selected; pass --template with one of %v", schema.AllTemplateIDs())
	}
	if len(paths) == 0 {
		return fmt.Errorf("no capture files to score")
	}

	results := make([]schema.BatchResult, 0, len(paths))
	for _, path := range paths {
		frame, err := detector.LoadCaptureFrame(path)
		if err != nil {
			return fmt.Errorf("batch aborted at %s: %w", path, err)
		}
		detected := BuildKeypointSet(frame.FirstPose(), cfg.MinConfidence)
		results = append(results, schema.BatchResult{
			CapturePath: path,
			FrameWidth:  frame.Width,
			FrameHeight: frame.Height,
			Result:      ScoreTemplateWeighted(detected, tpl, frame.Width, frame.Height, cfg.WeightOverrides),
		})
	}

	ow := outwriter.NewOutWriter()
	return ow.WriteBatch(results, cfg, time.Since(start))
}

// ExecuteTemplates prints the reference pose catalog.
func ExecuteTemplates(_ context.Context, cfg *contract.Config) error {
	ow := outwriter.NewOutWriter()
	return ow.WriteTemplates(schema.Catalog(), cfg)
}
