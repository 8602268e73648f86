package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NathanVaughn/AVR-VMC/internal/compose"
	"github.com/NathanVaughn/AVR-VMC/internal/config"
	"github.com/NathanVaughn/AVR-VMC/internal/elevate"
	"github.com/NathanVaughn/AVR-VMC/internal/hostfacts"
	"github.com/NathanVaughn/AVR-VMC/internal/topology"
	"github.com/NathanVaughn/AVR-VMC/internal/ui"
	"github.com/spf13/cobra"
)

var (
	localBuild bool
	headless   bool
	groupMin   bool
	groupNorm  bool
	groupAll   bool
)

func newActionCmd(action topology.Action, short string) *cobra.Command {
	c := &cobra.Command{
		Use:   fmt.Sprintf("%s [modules...]", action),
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(action, args)
		},
	}
	addSelectionFlags(c)
	return c
}

func addSelectionFlags(c *cobra.Command) {
	c.Flags().BoolVarP(&localBuild, "local", "l", false, "build containers locally rather than using pre-built ones")
	c.Flags().BoolVar(&headless, "headless", false, "run the simulator headless")
	c.Flags().BoolVarP(&groupMin, "min", "m", false, "select the minimal modules ("+moduleList(topology.MinimalModules())+"), in addition to any named explicitly")
	c.Flags().BoolVarP(&groupNorm, "norm", "n", false, "select the normal modules ("+moduleList(topology.NormalModules())+"); the default when nothing else is selected")
	c.Flags().BoolVarP(&groupAll, "all", "a", false, "select all modules ("+moduleList(topology.AllModules())+"), in addition to any named explicitly")
	c.MarkFlagsMutuallyExclusive("min", "norm", "all")
}

func selectedGroup() topology.Group {
	switch {
	case groupMin:
		return topology.GroupMinimal
	case groupNorm:
		return topology.GroupNormal
	case groupAll:
		return topology.GroupAll
	}
	return ""
}

func moduleList(modules []topology.Module) string {
	names := make([]string, len(modules))
	for i, m := range modules {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

func runAction(action topology.Action, args []string) error {
	if err := elevate.EnsureRoot(); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Elevation failed", err.Error(), ""))
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "check vmc.yml or run 'vmc init'"))
		return err
	}

	requested, err := topology.ResolveModules(args, selectedGroup())
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Invalid module selection", err.Error(), "known modules: "+moduleList(topology.AllModules())+", simulator"))
		return err
	}

	facts := hostfacts.Probe(cfg, nil)
	topo, skips := topology.Materialize(cfg, action, requested, localBuild, headless, facts)
	for _, s := range skips {
		ui.ModuleSkipped(string(s.Module), s.Reason)
	}

	manifestPath, err := filepath.Abs(cfg.Manifest)
	if err != nil {
		return err
	}
	if err := topology.WriteManifest(topo, manifestPath); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to write manifest", err.Error(), ""))
		return err
	}

	tool, err := compose.ResolveTool()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("No orchestration tool found", err.Error(), "install docker with the compose plugin"))
		return err
	}

	argv := tool.Args(cfg.ProjectName, manifestPath, action, moduleArgs(action, requested, topo))

	workdir, err := os.Getwd()
	if err != nil {
		return err
	}

	// a non-headless simulator on Windows needs the display forwarding
	// that only exists inside WSL
	simulator := topo.Has(topology.ModuleSimulator)
	if simulator && !headless && facts.Platform == hostfacts.PlatformWindows {
		argv = compose.WrapWSL(argv, workdir)
	}

	ui.CommandLine(strings.Join(argv, " "))

	code, err := compose.Run(argv, workdir)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Orchestration tool failed", err.Error(), ""))
		return err
	}
	if code != 0 {
		os.Exit(code)
	}
	return nil
}

// moduleArgs returns the requested modules that made it into the topology,
// in the order the compose tool should receive them. Stop takes none.
func moduleArgs(action topology.Action, requested []topology.Module, topo *topology.Topology) []string {
	if action == topology.ActionStop {
		return nil
	}

	var names []string
	for _, m := range requested {
		if topo.Has(m) {
			names = append(names, string(m))
		}
	}
	return names
}
