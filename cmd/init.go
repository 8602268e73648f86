package cmd

import (
	"fmt"
	"os"

	"github.com/NathanVaughn/AVR-VMC/internal/config"
	"github.com/NathanVaughn/AVR-VMC/internal/hostfacts"
	"github.com/NathanVaughn/AVR-VMC/internal/ui"
	"github.com/NathanVaughn/AVR-VMC/internal/wizard"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a vmc.yml config file interactively",
	Long: `Probe the VMC for attached hardware and generate a config file through
an interactive wizard. The generated file only overrides defaults; delete
a line to fall back to the built-in value.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := "vmc.yml"

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("%s already exists.\n", configPath)
		fmt.Print("Overwrite? [y/N] ")
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	defaults := config.Defaults()

	fmt.Println(ui.Bold("Probing host..."))
	facts := hostfacts.Probe(defaults, nil)
	for _, line := range wizard.Summary(defaults, facts) {
		fmt.Printf("  %s\n", ui.Hint(line))
	}
	if !facts.FlightControllerSerial {
		ui.Warn("no flight controller serial device found; check the cable or adjust the device below")
	}

	answers, err := wizard.Run(defaults)
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}

	content, err := wizard.GenerateConfig(*answers)
	if err != nil {
		return fmt.Errorf("generating config: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	ui.Success(fmt.Sprintf("Created %s", configPath))
	fmt.Println()
	fmt.Printf("Next step: %s\n", ui.Bold("vmc run"))
	fmt.Printf("           %s\n", ui.Hint("or edit vmc.yml to fine-tune your setup"))

	return nil
}
