package topology

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/compose-spec/compose-go/v2/cli"
	"gopkg.in/yaml.v3"
)

// composeVersion is written to the manifest for compatibility with older
// docker-compose releases that still require the key.
const composeVersion = "3"

type manifest struct {
	Version  string                     `yaml:"version"`
	Services map[string]manifestService `yaml:"services"`
}

type manifestService struct {
	Image       string            `yaml:"image,omitempty"`
	Build       string            `yaml:"build,omitempty"`
	Command     string            `yaml:"command,omitempty"`
	DependsOn   []string          `yaml:"depends_on,omitempty"`
	Restart     string            `yaml:"restart,omitempty"`
	Privileged  bool              `yaml:"privileged,omitempty"`
	TTY         bool              `yaml:"tty,omitempty"`
	StdinOpen   bool              `yaml:"stdin_open,omitempty"`
	Environment map[string]string `yaml:"environment,omitempty"`
	Ports       []string          `yaml:"ports,omitempty"`
	Volumes     []string          `yaml:"volumes,omitempty"`
	Devices     []string          `yaml:"devices,omitempty"`
}

// RenderManifest serializes a topology into compose YAML.
func RenderManifest(t *Topology) ([]byte, error) {
	m := manifest{
		Version:  composeVersion,
		Services: make(map[string]manifestService, len(t.Services)),
	}

	for name, svc := range t.Services {
		entry := manifestService{
			Command:     strings.Join(svc.Command, " "),
			Restart:     svc.Restart,
			Privileged:  svc.Privileged,
			TTY:         svc.Interactive,
			StdinOpen:   svc.Interactive,
			Environment: svc.Environment,
		}

		if image, ok := svc.Source.Image(); ok {
			entry.Image = image
		}
		if dir, ok := svc.Source.BuildPath(); ok {
			entry.Build = dir
		}

		for _, dep := range svc.DependsOn {
			entry.DependsOn = append(entry.DependsOn, string(dep))
		}
		for _, p := range svc.Ports {
			entry.Ports = append(entry.Ports, p.String())
		}
		for _, v := range svc.Volumes {
			entry.Volumes = append(entry.Volumes, v.String())
		}
		for _, d := range svc.Devices {
			entry.Devices = append(entry.Devices, d.String())
		}

		m.Services[string(name)] = entry
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	return data, nil
}

// WriteManifest renders the topology and overwrites the manifest file.
func WriteManifest(t *Topology, path string) error {
	data, err := RenderManifest(t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// ValidateManifest loads a written manifest through the compose project
// loader to confirm the orchestration tool will accept it.
func ValidateManifest(path string) error {
	opts, err := cli.NewProjectOptions(
		[]string{path},
		cli.WithInterpolation(false),
	)
	if err != nil {
		return fmt.Errorf("project options: %w", err)
	}

	if _, err := cli.ProjectFromOptions(context.Background(), opts); err != nil {
		return fmt.Errorf("manifest does not load as a compose project: %w", err)
	}
	return nil
}
