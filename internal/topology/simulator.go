package topology

func init() {
	register(func() rule { return simulatorRule{} })
}

// simulatorRule materializes the PX4 software-in-the-loop simulator.
type simulatorRule struct{}

func (simulatorRule) Module() Module { return ModuleSimulator }
func (simulatorRule) Implicit() bool { return false }

func (simulatorRule) Gate(ctx buildContext) string {
	if ctx.action != ActionRun || ctx.headless {
		return ""
	}
	if !ctx.facts.DisplayForwarding() {
		return "host cannot forward a display; re-run with --headless"
	}
	return ""
}

func (simulatorRule) Descriptor(ctx buildContext) ServiceDescriptor {
	d := ServiceDescriptor{
		Name:   ModuleSimulator,
		Source: ctx.source(ModuleSimulator, "simulator"),
		// PX4 wants to show its commander shell and will not launch
		// without an interactive terminal
		Interactive: true,
		Environment: ctx.originEnv(map[string]string{}),
	}

	if ctx.headless {
		d.Environment["HEADLESS"] = "1"
		return d
	}

	display := ctx.facts.Display
	d.Environment["DISPLAY"] = orDefault(display.Display, ":0")
	d.Environment["WAYLAND_DISPLAY"] = orDefault(display.WaylandDisplay, "wayland-0")
	d.Environment["XDG_RUNTIME_DIR"] = display.XDGRuntimeDir
	d.Environment["PULSE_SERVER"] = display.PulseServer
	d.Volumes = []Mount{{Source: "/tmp/.X11-unix", Target: "/tmp/.X11-unix"}}

	if ctx.facts.Subsystem() {
		d.Volumes = append(d.Volumes, Mount{Source: "/mnt/wslg", Target: "/mnt/wslg"})
	}

	return d
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
