package topology

func init() {
	register(func() rule { return thermalRule{} })
}

// thermalRule materializes the thermal camera module. The camera's absence
// cannot be cheaply probed from the host, so there is no gate.
type thermalRule struct{}

func (thermalRule) Module() Module { return ModuleThermal }
func (thermalRule) Implicit() bool { return false }
func (thermalRule) Gate(buildContext) string { return "" }

func (thermalRule) Descriptor(ctx buildContext) ServiceDescriptor {
	return ServiceDescriptor{
		Name:        ModuleThermal,
		Source:      ctx.source(ModuleThermal, "thermal"),
		DependsOn:   []Module{ModuleBroker},
		Restart:     "on-failure",
		Privileged:  true,
		Environment: ctx.brokerEnv(),
	}
}
