package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NathanVaughn/AVR-VMC/internal/topology"
)

func TestToolArgs(t *testing.T) {
	tool := Tool{"docker", "compose"}
	modules := []string{"broker", "fusion"}

	tests := []struct {
		action   topology.Action
		expected []string
	}{
		{
			topology.ActionBuild,
			[]string{"docker", "compose", "--project-name", "avr", "--file", "/tmp/docker-compose.yml", "build", "broker", "fusion"},
		},
		{
			topology.ActionPull,
			[]string{"docker", "compose", "--project-name", "avr", "--file", "/tmp/docker-compose.yml", "pull", "broker", "fusion"},
		},
		{
			topology.ActionRun,
			[]string{"docker", "compose", "--project-name", "avr", "--file", "/tmp/docker-compose.yml", "up", "--remove-orphans", "--force-recreate", "broker", "fusion"},
		},
		{
			// stop always tears down the whole project
			topology.ActionStop,
			[]string{"docker", "compose", "--project-name", "avr", "--file", "/tmp/docker-compose.yml", "down", "--remove-orphans", "--volumes"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			got := tool.Args("avr", "/tmp/docker-compose.yml", tt.action, modules)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToolArgsDoesNotMutateTool(t *testing.T) {
	tool := Tool{"docker", "compose"}
	_ = tool.Args("avr", "a.yml", topology.ActionRun, nil)
	_ = tool.Args("avr", "b.yml", topology.ActionStop, nil)
	assert.Equal(t, Tool{"docker", "compose"}, tool)
}

func TestWindowsToWSLPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`C:\Users\drone\AVR-VMC`, "/mnt/c/Users/drone/AVR-VMC"},
		{`D:\stacks`, "/mnt/d/stacks"},
		{"/home/drone/AVR-VMC", "/home/drone/AVR-VMC"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, WindowsToWSLPath(tt.input))
		})
	}
}

func TestWrapWSL(t *testing.T) {
	argv := []string{"docker", "compose", "up"}
	wrapped := WrapWSL(argv, `C:\Users\drone\AVR-VMC`)

	assert.Equal(t, []string{
		"wsl", "--cd", "/mnt/c/Users/drone/AVR-VMC", "--",
		"docker", "compose", "up",
	}, wrapped)
}
