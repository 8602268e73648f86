package topology

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/NathanVaughn/AVR-VMC/internal/config"
	"github.com/NathanVaughn/AVR-VMC/internal/hostfacts"
)

// Skip records a module left out of the topology and why.
type Skip struct {
	Module Module
	Reason string
}

// buildContext carries everything a module rule needs to produce its
// descriptor. It is assembled once per Materialize call.
type buildContext struct {
	cfg       *config.Config
	action    Action
	local     bool
	headless  bool
	simulator bool
	facts     hostfacts.Facts
}

// source picks between the published image and the local build directory.
func (c buildContext) source(m Module, imageName string) Source {
	if c.local {
		return BuildSource(c.buildDir(m))
	}
	return ImageSource(c.cfg.ImageBase + imageName + ":latest")
}

func (c buildContext) buildDir(m Module) string {
	return filepath.Join(c.cfg.ModulesDir, string(m))
}

// brokerEnv seeds a module's environment with the broker connection.
func (c buildContext) brokerEnv() map[string]string {
	return map[string]string{
		"MQTT_HOST": c.cfg.Broker.Host,
		"MQTT_PORT": strconv.Itoa(c.cfg.Broker.Port),
	}
}

func (c buildContext) originEnv(env map[string]string) map[string]string {
	env["PX4_HOME_LAT"] = strconv.FormatFloat(c.cfg.Origin.Latitude, 'f', -1, 64)
	env["PX4_HOME_LON"] = strconv.FormatFloat(c.cfg.Origin.Longitude, 'f', -1, 64)
	env["PX4_HOME_ALT"] = strconv.FormatFloat(c.cfg.Origin.Altitude, 'f', -1, 64)
	return env
}

// Materialize maps the requested action and module set onto a service
// topology, applying host-capability gating. It never fails: modules that
// cannot be included are returned in the skip list with a reason.
func Materialize(cfg *config.Config, action Action, requested []Module, local, headless bool, facts hostfacts.Facts) (*Topology, []Skip) {
	ctx := buildContext{
		cfg:       cfg,
		action:    action,
		local:     local,
		headless:  headless,
		simulator: containsModule(requested, ModuleSimulator),
		facts:     facts,
	}

	topo := newTopology()
	var skips []Skip

	for _, r := range rules() {
		m := r.Module()
		if !r.Implicit() && !containsModule(requested, m) {
			continue
		}
		if action.gated() {
			if reason := r.Gate(ctx); reason != "" {
				skips = append(skips, Skip{Module: m, Reason: reason})
				continue
			}
		}
		topo.add(r.Descriptor(ctx))
	}

	if action.gated() {
		skips = append(skips, cascade(topo)...)
	} else {
		pruneDanglingDeps(topo)
	}

	return topo, skips
}

// cascade removes services whose dependencies did not make it into the
// topology, repeating until stable. A service excluded for a missing
// dependency is recorded like any other skip.
func cascade(t *Topology) []Skip {
	var skips []Skip

	for changed := true; changed; {
		changed = false
		for _, m := range t.Modules() {
			for _, dep := range t.Services[m].DependsOn {
				if t.Has(dep) {
					continue
				}
				skips = append(skips, Skip{
					Module: m,
					Reason: fmt.Sprintf("depends on %s, which is not in the topology", dep),
				})
				delete(t.Services, m)
				changed = true
				break
			}
		}
	}

	return skips
}

// pruneDanglingDeps drops dependency references to absent services. Used
// for pull and stop, where startup ordering is meaningless but the
// manifest must still load.
func pruneDanglingDeps(t *Topology) {
	for m, svc := range t.Services {
		kept := svc.DependsOn[:0]
		for _, dep := range svc.DependsOn {
			if t.Has(dep) {
				kept = append(kept, dep)
			}
		}
		svc.DependsOn = kept
		t.Services[m] = svc
	}
}

func containsModule(modules []Module, m Module) bool {
	for _, candidate := range modules {
		if candidate == m {
			return true
		}
	}
	return false
}
