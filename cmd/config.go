package cmd

import (
	"fmt"
	"os"

	"github.com/NathanVaughn/AVR-VMC/internal/config"
	"github.com/NathanVaughn/AVR-VMC/internal/hostfacts"
	"github.com/NathanVaughn/AVR-VMC/internal/topology"
	"github.com/NathanVaughn/AVR-VMC/internal/ui"
	"github.com/spf13/cobra"
)

var checkManifest bool

var configCmd = &cobra.Command{
	Use:   "config [modules...]",
	Short: "Print the compose manifest that 'run' would generate",
	Long: `Materialize the topology for the selected modules with run semantics and
print the resulting compose manifest to stdout, without touching the
orchestration tool. Useful for inspecting what capability gating excluded.`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
	addSelectionFlags(configCmd)
	configCmd.Flags().BoolVar(&checkManifest, "check", false, "load the manifest through the compose schema and report problems")
}

func runConfig(cmd *cobra.Command, args []string) error {
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
	topo, skips := topology.Materialize(cfg, topology.ActionRun, requested, localBuild, headless, facts)
	for _, s := range skips {
		ui.ModuleSkipped(string(s.Module), s.Reason)
	}

	data, err := topology.RenderManifest(topo)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to render manifest", err.Error(), ""))
		return err
	}

	fmt.Print(string(data))

	if checkManifest {
		tmp, err := os.CreateTemp("", "vmc-manifest-*.yml")
		if err != nil {
			return err
		}
		defer os.Remove(tmp.Name())

		if _, err := tmp.Write(data); err != nil {
			tmp.Close()
			return err
		}
		tmp.Close()

		if err := topology.ValidateManifest(tmp.Name()); err != nil {
			fmt.Fprint(os.Stderr, ui.FormatError("Manifest failed validation", err.Error(), ""))
			return err
		}
		fmt.Fprintln(os.Stderr, ui.Hint("manifest validated against the compose schema"))
	}

	return nil
}
