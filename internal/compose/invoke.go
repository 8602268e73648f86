package compose

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"

	"github.com/NathanVaughn/AVR-VMC/internal/topology"
)

// Args builds the full command line for an action. Module arguments are
// omitted for stop, which always tears down the whole project.
func (t Tool) Args(projectName, manifestPath string, action topology.Action, modules []string) []string {
	args := append([]string{}, t...)
	args = append(args, "--project-name", projectName, "--file", manifestPath)

	switch action {
	case topology.ActionBuild:
		args = append(args, "build")
		args = append(args, modules...)
	case topology.ActionPull:
		args = append(args, "pull")
		args = append(args, modules...)
	case topology.ActionRun:
		args = append(args, "up", "--remove-orphans", "--force-recreate")
		args = append(args, modules...)
	case topology.ActionStop:
		args = append(args, "down", "--remove-orphans", "--volumes")
	}

	return args
}

// Run starts the orchestration tool with inherited stdio and blocks until
// it exits. An interrupt is forwarded to the child instead of killing it,
// so the tool can shut containers down gracefully; no timeout is imposed
// since builds and pulls legitimately run for a long time.
func Run(argv []string, dir string) (int, error) {
	cmd := newCommand(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("starting %s: %w", argv[0], err)
	}

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-interrupts:
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	err := cmd.Wait()
	close(done)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 0, fmt.Errorf("waiting for %s: %w", argv[0], err)
	}
	return 0, nil
}
