package topology

import (
	"fmt"
	"strconv"
)

func init() {
	register(func() rule { return mavlinkRelayRule{} })
}

// mavlinkRelayRule materializes the mavlink router between the flight
// controller (or the simulator's virtual link) and the rest of the stack.
type mavlinkRelayRule struct{}

func (mavlinkRelayRule) Module() Module { return ModuleMavlinkRelay }
func (mavlinkRelayRule) Implicit() bool { return true }

func (mavlinkRelayRule) Gate(ctx buildContext) string {
	// the simulator substitutes a virtual link for the serial device
	if ctx.action != ActionRun || ctx.simulator {
		return ""
	}
	if !ctx.facts.FlightControllerSerial {
		return fmt.Sprintf("flight controller serial device %s does not exist", ctx.cfg.FlightController.Device)
	}
	return ""
}

func (mavlinkRelayRule) Descriptor(ctx buildContext) ServiceDescriptor {
	mavlink := ctx.cfg.Mavlink

	endpoints := []string{
		fmt.Sprintf("tcps:0.0.0.0:%d", mavlink.TCPPort),
		fmt.Sprintf("udpc:%s:%d", ModuleFlightControlBridge, mavlink.MavsdkPort),
		fmt.Sprintf("udpc:%s:%d", ModuleFlightControlBridge, mavlink.PymavlinkPort),
	}

	d := ServiceDescriptor{
		Name:    ModuleMavlinkRelay,
		Source:  ctx.source(ModuleMavlinkRelay, "mavp2p"),
		Restart: "on-failure",
		Environment: map[string]string{
			"MAVLINK_UDP_1": strconv.Itoa(mavlink.MavsdkPort),
			"MAVLINK_UDP_2": strconv.Itoa(mavlink.PymavlinkPort),
		},
		Ports: []PortBinding{{Host: mavlink.TCPPort, Container: mavlink.TCPPort, Protocol: "tcp"}},
	}

	if ctx.simulator {
		// accept connections from the simulator's offboard mavlink port
		endpoints = append(endpoints, fmt.Sprintf("udps:0.0.0.0:%d", mavlink.OffboardPort))
		d.Ports = append(d.Ports, PortBinding{Host: mavlink.OffboardPort, Container: mavlink.OffboardPort, Protocol: "udp"})
	} else {
		fcc := ctx.cfg.FlightController
		endpoints = append([]string{fmt.Sprintf("serial:%s:%d", fcc.Device, fcc.BaudRate)}, endpoints...)
		d.Devices = []Mount{{Source: fcc.Device, Target: fcc.Device}}
	}

	d.Command = endpoints
	return d
}
