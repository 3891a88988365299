// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/huangsam/posecoach/internal/contract"
	"github.com/huangsam/posecoach/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for
// the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteScore prints one template scoring result with its coaching feedback.
func (ow *OutWriter) WriteScore(result schema.PoseScoreResult, feedback []string, tpl *schema.PoseTemplate, cfg *contract.Config, duration time.Duration) error {
	return writeScoreResult(result, feedback, tpl, cfg, duration)
}

// WriteAnalysis prints rule-based feedback items.
func (ow *OutWriter) WriteAnalysis(items []schema.FeedbackItem, cfg *contract.Config, duration time.Duration) error {
	return writeAnalysisResult(items, cfg, duration)
}

// WriteMatches prints templates ranked by similarity for one frame.
func (ow *OutWriter) WriteMatches(matches []schema.TemplateScore, cfg *contract.Config, duration time.Duration) error {
	return writeMatchResults(matches, cfg, duration)
}

// WriteBatch prints scored results for a batch of capture files.
func (ow *OutWriter) WriteBatch(results []schema.BatchResult, cfg *contract.Config, duration time.Duration) error {
	return writeBatchResults(results, cfg, duration)
}

// WriteTemplates prints the reference pose catalog.
func (ow *OutWriter) WriteTemplates(templates []*schema.PoseTemplate, cfg *contract.Config) error {
	return writeTemplateCatalog(templates, cfg)
}

// getTerminalWidth returns the effective output width, honoring the
// configured override before falling back to detection.
func getTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detected, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detected <= 0 {
		return 80 // conservative default for narrow terminals and CI
	}
	return detected
}
