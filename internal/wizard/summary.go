package wizard

import (
	"fmt"

	"github.com/NathanVaughn/AVR-VMC/internal/config"
	"github.com/NathanVaughn/AVR-VMC/internal/hostfacts"
)

// Summary converts probed host facts into human-readable detection lines
// for the init banner.
func Summary(cfg *config.Config, facts hostfacts.Facts) []string {
	found := func(ok bool) string {
		if ok {
			return "found"
		}
		return "not found"
	}

	lines := []string{
		fmt.Sprintf("platform: %s", facts.Platform),
		fmt.Sprintf("flight controller (%s): %s", cfg.FlightController.Device, found(facts.FlightControllerSerial)),
		fmt.Sprintf("peripheral controller (%s): %s", cfg.Peripheral.Device, found(facts.PeripheralSerial)),
		fmt.Sprintf("camera socket (%s): %s", cfg.Vision.CameraSocket, found(facts.CameraSocket)),
		fmt.Sprintf("vision libraries (%s): %s", cfg.Vision.AcceleratorDir, found(facts.VisionLibs)),
	}

	if facts.PowerToolPath != "" {
		lines = append(lines, fmt.Sprintf("power tool: %s", facts.PowerToolPath))
	} else {
		lines = append(lines, fmt.Sprintf("power tool (%s): not found", cfg.Power.Tool))
	}

	return lines
}
