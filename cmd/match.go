package cmd

import (
	"github.com/huangsam/posecoach/core"
	"github.com/huangsam/posecoach/internal/contract"
	"github.com/spf13/cobra"
)

// matchCmd ranks all catalog templates against one capture.
var matchCmd = &cobra.Command{
	Use:   "match [capture-path]",
	Short: "Rank every reference template against a captured pose.",
	Long: `Score the first detected pose in a capture file against every template
in the catalog and print them ranked by similarity, best match first.

Examples:
  # Which reference pose is this closest to?
  posecoach match capture.json

  # Top 3 only, as JSON
  posecoach match capture.json --limit 3 --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMatch(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot match capture", err)
		}
	},
}
