package topology

func init() {
	register(func() rule { return fusionRule{} })
}

// fusionRule materializes the sensor fusion module, which combines visual
// odometry with the PX4 home position.
type fusionRule struct{}

func (fusionRule) Module() Module { return ModuleFusion }
func (fusionRule) Implicit() bool { return false }
func (fusionRule) Gate(buildContext) string { return "" }

func (fusionRule) Descriptor(ctx buildContext) ServiceDescriptor {
	return ServiceDescriptor{
		Name:        ModuleFusion,
		Source:      ctx.source(ModuleFusion, "fusion"),
		DependsOn:   []Module{ModuleBroker, ModuleVisualOdometry},
		Restart:     "on-failure",
		Environment: ctx.originEnv(ctx.brokerEnv()),
	}
}
