package cmd

import (
	"github.com/huangsam/posecoach/core"
	"github.com/huangsam/posecoach/internal/contract"
	"github.com/spf13/cobra"
)

// batchCmd scores many captures against one template.
var batchCmd = &cobra.Command{
	Use:   "batch [capture-path]...",
	Short: "Score a set of captures against one reference template.",
	Long: `Score each capture file against the configured template and print the
aggregate results. Useful for reviewing a practice session frame by frame.

Examples:
  # Score a session's captures
  posecoach batch session/*.json --template front-lat-spread

  # Export the run as parquet for analysis elsewhere
  posecoach batch session/*.json -t front-lat-spread --output parquet --output-file run.parquet`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		// Capture paths are handled below; don't let sharedSetup consume them.
		return sharedSetup(rootCtx, cmd, nil)
	},
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteBatch(rootCtx, cfg, args); err != nil {
			contract.LogFatal("Cannot score batch", err)
		}
	},
}
