package topology

import (
	"fmt"
	"sort"
)

// Source identifies where a service's container comes from: a published
// image reference or a local build directory, never both.
type Source struct {
	image     string
	buildPath string
}

// ImageSource returns a Source backed by a published image reference.
func ImageSource(ref string) Source {
	return Source{image: ref}
}

// BuildSource returns a Source backed by a local build directory.
func BuildSource(dir string) Source {
	return Source{buildPath: dir}
}

// Image returns the image reference, if this source is one.
func (s Source) Image() (string, bool) {
	return s.image, s.image != ""
}

// BuildPath returns the local build directory, if this source is one.
func (s Source) BuildPath() (string, bool) {
	return s.buildPath, s.buildPath != ""
}

// PortBinding publishes a container port on the host.
type PortBinding struct {
	Host      int
	Container int
	Protocol  string
}

func (p PortBinding) String() string {
	return fmt.Sprintf("%d:%d/%s", p.Host, p.Container, p.Protocol)
}

// Mount binds a host path into the container. Used for both volumes and
// device special files.
type Mount struct {
	Source string
	Target string
}

func (m Mount) String() string {
	return m.Source + ":" + m.Target
}

// ServiceDescriptor is the materialized configuration of one module.
type ServiceDescriptor struct {
	Name        Module
	Source      Source
	Command     []string
	DependsOn   []Module
	Environment map[string]string
	Volumes     []Mount
	Devices     []Mount
	Ports       []PortBinding
	Restart     string
	Privileged  bool
	// Interactive allocates a TTY with stdin open. PX4 refuses to launch
	// its commander shell without one.
	Interactive bool
}

// Topology is the full set of service descriptors for one invocation.
type Topology struct {
	Services map[Module]ServiceDescriptor
}

func newTopology() *Topology {
	return &Topology{Services: make(map[Module]ServiceDescriptor)}
}

func (t *Topology) add(d ServiceDescriptor) {
	t.Services[d.Name] = d
}

// Has reports whether a module is part of the topology.
func (t *Topology) Has(m Module) bool {
	_, ok := t.Services[m]
	return ok
}

// Modules returns the included module names, sorted.
func (t *Topology) Modules() []Module {
	modules := make([]Module, 0, len(t.Services))
	for m := range t.Services {
		modules = append(modules, m)
	}
	sort.Slice(modules, func(i, j int) bool { return modules[i] < modules[j] })
	return modules
}
