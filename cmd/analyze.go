package cmd

import (
	"github.com/huangsam/posecoach/core"
	"github.com/huangsam/posecoach/internal/contract"
	"github.com/spf13/cobra"
)

// analyzeCmd runs template-free geometric checks on one capture.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [capture-path]",
	Short: "Run template-free posture checks on a captured pose.",
	Long: `Evaluate fixed geometric rules on the first detected pose in a capture
file and print severity-tagged feedback.

Fitness mode checks shoulder, hip and knee levelness plus torso alignment.
Photography mode checks eye-line levelness, face centering and shoulder
squareness for portrait framing.

Examples:
  # Check workout form
  posecoach analyze capture.json --mode fitness

  # Check portrait framing
  posecoach analyze capture.json --mode photography`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalyze(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot analyze capture", err)
		}
	},
}
