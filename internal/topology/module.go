package topology

import (
	"fmt"
	"sort"
)

// Module names one containerized subsystem of the drone stack.
type Module string

const (
	ModuleBroker              Module = "broker"
	ModuleMavlinkRelay        Module = "mavlink-relay"
	ModuleFlightControlBridge Module = "flight-control-bridge"
	ModuleFusion              Module = "fusion"
	ModulePeripheralControl   Module = "peripheral-control"
	ModuleApriltag            Module = "apriltag"
	ModuleStatus              Module = "status"
	ModuleThermal             Module = "thermal"
	ModuleVisualOdometry      Module = "visual-odometry"
	ModuleSandbox             Module = "sandbox"
	ModuleSimulator           Module = "simulator"
)

// Action is the orchestration verb requested on the CLI.
type Action string

const (
	ActionRun   Action = "run"
	ActionBuild Action = "build"
	ActionPull  Action = "pull"
	ActionStop  Action = "stop"
)

// gated reports whether capability gating applies to the action. You can
// always tear down or pre-fetch without the hardware attached.
func (a Action) gated() bool {
	return a == ActionRun || a == ActionBuild
}

// Group is a named convenience subset of modules. Each group is a strict
// superset of the previous one.
type Group string

const (
	GroupMinimal Group = "minimal"
	GroupNormal  Group = "normal"
	GroupAll     Group = "all"
)

// MinimalModules is the smallest set that can fly: the broker, the mavlink
// relay, the flight-control bridge, sensor fusion, and visual odometry.
func MinimalModules() []Module {
	return []Module{
		ModuleBroker,
		ModuleFlightControlBridge,
		ModuleFusion,
		ModuleMavlinkRelay,
		ModuleVisualOdometry,
	}
}

// NormalModules adds the peripheral and sensing modules to the minimal set.
func NormalModules() []Module {
	return append(MinimalModules(),
		ModuleApriltag,
		ModulePeripheralControl,
		ModuleStatus,
		ModuleThermal,
	)
}

// AllModules adds the sandbox to the normal set. The simulator is never
// part of a group and must be requested explicitly.
func AllModules() []Module {
	return append(NormalModules(), ModuleSandbox)
}

// GroupModules returns the members of a group.
func GroupModules(g Group) []Module {
	switch g {
	case GroupMinimal:
		return MinimalModules()
	case GroupAll:
		return AllModules()
	default:
		return NormalModules()
	}
}

// ParseModule validates a module name from the command line.
func ParseModule(name string) (Module, error) {
	m := Module(name)
	for _, known := range append(AllModules(), ModuleSimulator) {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown module %q", name)
}

// ResolveModules combines explicitly named modules with an optional group
// selection. With neither, the normal group is used. The result is
// deduplicated and sorted.
func ResolveModules(names []string, group Group) ([]Module, error) {
	set := make(map[Module]struct{})

	for _, name := range names {
		m, err := ParseModule(name)
		if err != nil {
			return nil, err
		}
		set[m] = struct{}{}
	}

	if group != "" {
		for _, m := range GroupModules(group) {
			set[m] = struct{}{}
		}
	} else if len(set) == 0 {
		for _, m := range NormalModules() {
			set[m] = struct{}{}
		}
	}

	modules := make([]Module, 0, len(set))
	for m := range set {
		modules = append(modules, m)
	}
	sort.Slice(modules, func(i, j int) bool { return modules[i] < modules[j] })

	return modules, nil
}
