package topology

func init() {
	register(func() rule { return sandboxRule{} })
}

// sandboxRule materializes the user's scratch module. It only exists as
// local source, so both running and building require the directory.
type sandboxRule struct{}

func (sandboxRule) Module() Module { return ModuleSandbox }
func (sandboxRule) Implicit() bool { return false }

func (sandboxRule) Gate(ctx buildContext) string {
	if !ctx.facts.SandboxSource {
		return "sandbox source directory does not exist"
	}
	return ""
}

func (sandboxRule) Descriptor(ctx buildContext) ServiceDescriptor {
	return ServiceDescriptor{
		Name:        ModuleSandbox,
		Source:      BuildSource(ctx.buildDir(ModuleSandbox)),
		DependsOn:   []Module{ModuleBroker},
		Restart:     "on-failure",
		Environment: ctx.brokerEnv(),
	}
}
