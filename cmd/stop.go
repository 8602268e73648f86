package cmd

import "github.com/NathanVaughn/AVR-VMC/internal/topology"

var stopCmd = newActionCmd(topology.ActionStop, "Tear down the whole project, including volumes")

func init() {
	rootCmd.AddCommand(stopCmd)
}
