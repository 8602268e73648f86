package topology

func init() {
	register(func() rule { return flightBridgeRule{} })
}

// flightBridgeRule materializes the bridge between the MQTT side of the
// stack and the flight controller's mavlink stream.
type flightBridgeRule struct{}

func (flightBridgeRule) Module() Module { return ModuleFlightControlBridge }
func (flightBridgeRule) Implicit() bool { return false }
func (flightBridgeRule) Gate(buildContext) string { return "" }

func (flightBridgeRule) Descriptor(ctx buildContext) ServiceDescriptor {
	return ServiceDescriptor{
		Name:        ModuleFlightControlBridge,
		Source:      ctx.source(ModuleFlightControlBridge, "flightcontrol"),
		DependsOn:   []Module{ModuleBroker, ModuleMavlinkRelay},
		Restart:     "on-failure",
		Environment: ctx.brokerEnv(),
	}
}
