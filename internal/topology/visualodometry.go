package topology

import "path/filepath"

func init() {
	register(func() rule { return visualOdometryRule{} })
}

// visualOdometryRule materializes the stereo camera tracking module. The
// camera itself is a USB device that cannot be cheaply probed, so there is
// no gate.
type visualOdometryRule struct{}

func (visualOdometryRule) Module() Module { return ModuleVisualOdometry }
func (visualOdometryRule) Implicit() bool { return false }
func (visualOdometryRule) Gate(buildContext) string { return "" }

func (visualOdometryRule) Descriptor(ctx buildContext) ServiceDescriptor {
	settings := filepath.Join(ctx.buildDir(ModuleVisualOdometry), "settings")
	return ServiceDescriptor{
		Name:        ModuleVisualOdometry,
		Source:      ctx.source(ModuleVisualOdometry, "visual"),
		DependsOn:   []Module{ModuleBroker},
		Restart:     "on-failure",
		Privileged:  true,
		Environment: ctx.brokerEnv(),
		Volumes:     []Mount{{Source: settings, Target: "/usr/local/zed/settings/"}},
	}
}
