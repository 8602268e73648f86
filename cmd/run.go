package cmd

import "github.com/NathanVaughn/AVR-VMC/internal/topology"

var runCmd = newActionCmd(topology.ActionRun, "Start the selected modules")

func init() {
	rootCmd.AddCommand(runCmd)
}
