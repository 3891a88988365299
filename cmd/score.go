package cmd

import (
	"github.com/huangsam/posecoach/core"
	"github.com/huangsam/posecoach/internal/contract"
	"github.com/spf13/cobra"
)

// scoreCmd scores one capture against a reference template.
var scoreCmd = &cobra.Command{
	Use:   "score [capture-path]",
	Short: "Score a captured pose against a reference template.",
	Long: `Compare the first detected pose in a capture file against a catalog
template and print a weighted similarity score with coaching feedback.

A capture file is the serialized output of the external pose-estimation
model: frame dimensions plus named keypoints with pixel positions and
confidences.

Examples:
  # Score a capture against the front double biceps reference
  posecoach score capture.json --template front-double-biceps

  # Tighten the keypoint visibility floor
  posecoach score capture.json -t side-chest --min-confidence 0.5

  # Export the result for tracking
  posecoach score capture.json -t side-chest --output json --output-file result.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot score capture", err)
		}
	},
}
