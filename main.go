package main

import (
	"os"

	"github.com/NathanVaughn/AVR-VMC/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
