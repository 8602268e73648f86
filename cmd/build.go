package cmd

import "github.com/NathanVaughn/AVR-VMC/internal/topology"

var buildCmd = newActionCmd(topology.ActionBuild, "Build container images for the selected modules")

func init() {
	rootCmd.AddCommand(buildCmd)
}
