package topology

import "fmt"

func init() {
	register(func() rule { return apriltagRule{} })
}

// apriltagRule materializes the fiducial-marker detector. It is always
// built on the device: the build links against the host's vision
// acceleration libraries, so no published image exists.
type apriltagRule struct{}

func (apriltagRule) Module() Module { return ModuleApriltag }
func (apriltagRule) Implicit() bool { return false }

func (apriltagRule) Gate(ctx buildContext) string {
	vision := ctx.cfg.Vision
	switch ctx.action {
	case ActionRun:
		if !ctx.facts.CameraSocket {
			return fmt.Sprintf("camera socket %s does not exist", vision.CameraSocket)
		}
	case ActionBuild:
		if !ctx.facts.VisionLibs {
			return fmt.Sprintf("vision acceleration libraries not found in %s", vision.AcceleratorDir)
		}
	}
	return ""
}

func (apriltagRule) Descriptor(ctx buildContext) ServiceDescriptor {
	socket := ctx.cfg.Vision.CameraSocket
	return ServiceDescriptor{
		Name:        ModuleApriltag,
		Source:      BuildSource(ctx.buildDir(ModuleApriltag)),
		DependsOn:   []Module{ModuleBroker},
		Restart:     "on-failure",
		Environment: ctx.brokerEnv(),
		Volumes:     []Mount{{Source: socket, Target: socket}},
	}
}
