// main is the entrypoint for the posecoach CLI.
package main

import (
	"github.com/huangsam/posecoach/cmd"
	"github.com/huangsam/posecoach/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
