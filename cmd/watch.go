package cmd

import (
	"github.com/huangsam/posecoach/core"
	"github.com/huangsam/posecoach/internal/contract"
	"github.com/spf13/cobra"
)

// watchCmd replays a capture stream at detection cadence.
var watchCmd = &cobra.Command{
	Use:   "watch [capture-path]",
	Short: "Replay a capture stream and score or analyze each frame live.",
	Long: `Drive the detection loop over a recorded capture stream (JSONL, one
frame per line) at a fixed cadence with a warm-up delay, exactly as a live
camera session would run. With --template each frame is scored; without it
each frame goes through the template-free checks.

A tick is skipped while the previous detection is still in flight; failed
cycles are not retried.

Examples:
  # Watch a session against a template
  posecoach watch session.jsonl --template most-muscular

  # Watch with the photography rule set at a slower cadence
  posecoach watch session.jsonl --mode photography --interval 1s`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWatch(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot watch capture stream", err)
		}
	},
}
