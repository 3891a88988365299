package cmd

import (
	"github.com/huangsam/posecoach/core"
	"github.com/huangsam/posecoach/internal/contract"
	"github.com/spf13/cobra"
)

// templatesCmd lists the reference pose catalog.
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the reference pose catalog.",
	Long: `Print every reference pose the scorer knows about, with its id, part
count and whether it expects the full body in frame.

Examples:
  posecoach templates
  posecoach templates --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTemplates(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list templates", err)
		}
	},
}
