package topology

import (
	"fmt"
	"strconv"
)

func init() {
	register(func() rule { return peripheralRule{} })
}

// peripheralRule materializes the peripheral control module driving the
// servo/LED controller over its serial link.
type peripheralRule struct{}

func (peripheralRule) Module() Module { return ModulePeripheralControl }
func (peripheralRule) Implicit() bool { return false }

func (peripheralRule) Gate(ctx buildContext) string {
	if ctx.action != ActionRun {
		return ""
	}
	if !ctx.facts.PeripheralSerial {
		return fmt.Sprintf("peripheral serial device %s does not exist", ctx.cfg.Peripheral.Device)
	}
	return ""
}

func (peripheralRule) Descriptor(ctx buildContext) ServiceDescriptor {
	pcc := ctx.cfg.Peripheral

	env := ctx.brokerEnv()
	env["PCC_SERIAL_DEVICE"] = pcc.Device
	env["PCC_SERIAL_BAUD_RATE"] = strconv.Itoa(pcc.BaudRate)

	return ServiceDescriptor{
		Name:        ModulePeripheralControl,
		Source:      ctx.source(ModulePeripheralControl, "peripheralcontrol"),
		DependsOn:   []Module{ModuleBroker},
		Restart:     "on-failure",
		Environment: env,
		Devices:     []Mount{{Source: pcc.Device, Target: pcc.Device}},
	}
}
