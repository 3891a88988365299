// Package cmd defines the command-line interface for posecoach.
package cmd

import (
	"github.com/huangsam/posecoach/internal/contract"
	"github.com/huangsam/posecoach/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("template", "t", "", "Reference template id (see 'posecoach templates')")
	rootCmd.PersistentFlags().StringP("mode", "m", string(schema.FitnessMode), "Analysis mode: fitness or photography")
	rootCmd.PersistentFlags().Float64("min-confidence", schema.DefaultMinConfidence, "Visibility floor for detected keypoints")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is ./.posecoach.yaml then $HOME/.posecoach.yaml)")

	// Watch-specific cadence flags
	watchCmd.Flags().String("interval", contract.DefaultInterval.String(), "Detection cadence for watch mode")
	watchCmd.Flags().String("warmup", contract.DefaultWarmup.String(), "Warm-up delay before the first detection")

	// Bind flags so Viper merges them with file and env sources
	_ = viper.BindPFlags(rootCmd.PersistentFlags())
	_ = viper.BindPFlags(watchCmd.Flags())
}
