// Package compose invokes the external container orchestration tool with
// the generated manifest and supervises its lifecycle.
package compose

import (
	"errors"
	"os/exec"
)

// wrappers over os/exec for testability
var (
	lookPath   = exec.LookPath
	newCommand = exec.Command
)

// Tool is the resolved compose command prefix, either the container
// runtime's integrated subcommand or the standalone binary.
type Tool []string

// ResolveTool prefers `docker compose` and falls back to `docker-compose`.
// The probe runs once per invocation and is not cached.
func ResolveTool() (Tool, error) {
	probe := newCommand("docker", "compose", "--help")
	if err := probe.Run(); err == nil {
		return Tool{"docker", "compose"}, nil
	}

	if path, err := lookPath("docker-compose"); err == nil {
		return Tool{path}, nil
	}

	return nil, errors.New("neither 'docker compose' nor 'docker-compose' is available")
}
