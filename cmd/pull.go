package cmd

import "github.com/NathanVaughn/AVR-VMC/internal/topology"

var pullCmd = newActionCmd(topology.ActionPull, "Pull pre-built container images for the selected modules")

func init() {
	rootCmd.AddCommand(pullCmd)
}
