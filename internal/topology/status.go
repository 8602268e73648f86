package topology

func init() {
	register(func() rule { return statusRule{} })
}

// statusRule materializes the device status reporter, which bind-mounts
// the host's power-management tool and its configuration.
type statusRule struct{}

func (statusRule) Module() Module { return ModuleStatus }
func (statusRule) Implicit() bool { return false }

func (statusRule) Gate(ctx buildContext) string {
	if ctx.action != ActionRun {
		return ""
	}
	if ctx.facts.PowerToolPath == "" || !ctx.facts.PowerToolConfig {
		return ctx.cfg.Power.Tool + " or its configuration could not be found"
	}
	return ""
}

func (statusRule) Descriptor(ctx buildContext) ServiceDescriptor {
	d := ServiceDescriptor{
		Name:        ModuleStatus,
		Source:      ctx.source(ModuleStatus, "status"),
		DependsOn:   []Module{ModuleBroker},
		Restart:     "on-failure",
		Privileged:  true,
		Environment: ctx.brokerEnv(),
		Volumes: []Mount{
			{Source: ctx.cfg.Power.ConfigFile, Target: "/app/nvpmodel.conf"},
		},
	}
	if ctx.facts.PowerToolPath != "" {
		d.Volumes = append(d.Volumes, Mount{Source: ctx.facts.PowerToolPath, Target: "/app/nvpmodel"})
	}
	return d
}
