// Package wizard drives the interactive vmc.yml setup.
package wizard

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/NathanVaughn/AVR-VMC/internal/config"
)

// Answers holds the user's responses. String-typed fields mirror the huh
// inputs; conversion happens at template time.
type Answers struct {
	ProjectName      string
	ImageBase        string
	ModulesDir       string
	BrokerPort       string
	FlightDevice     string
	PeripheralDevice string
}

// Run executes the interactive form, prefilled with the built-in defaults.
func Run(defaults *config.Config) (*Answers, error) {
	answers := &Answers{
		ProjectName:      defaults.ProjectName,
		ImageBase:        defaults.ImageBase,
		ModulesDir:       defaults.ModulesDir,
		BrokerPort:       strconv.Itoa(defaults.Broker.Port),
		FlightDevice:     defaults.FlightController.Device,
		PeripheralDevice: defaults.Peripheral.Device,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Compose project name. Modern docker only accepts lower case.").
				Validate(validateProjectName).
				Value(&answers.ProjectName),
			huh.NewInput().
				Title("Image base").
				Description("Registry prefix for the published module images.").
				Value(&answers.ImageBase),
			huh.NewInput().
				Title("Modules directory").
				Description("Where locally-built module sources live.").
				Value(&answers.ModulesDir),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("MQTT broker port").
				Validate(validatePort).
				Value(&answers.BrokerPort),
			huh.NewInput().
				Title("Flight controller serial device").
				Value(&answers.FlightDevice),
			huh.NewInput().
				Title("Peripheral controller serial device").
				Value(&answers.PeripheralDevice),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	return answers, nil
}

func validatePort(s string) error {
	port, err := strconv.Atoi(s)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%q is not a valid port", s)
	}
	return nil
}

func validateProjectName(s string) error {
	if s == "" {
		return fmt.Errorf("project name must not be empty")
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' && r != '_' {
			return fmt.Errorf("project name must be lower case alphanumeric")
		}
	}
	return nil
}
