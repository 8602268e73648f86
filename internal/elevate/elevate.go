// Package elevate re-executes the CLI under sudo when container
// operations require root.
package elevate

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// EnsureRoot re-launches the current process with sudo when it is not
// running as root, waits for it, and exits with the child's exit code.
// It returns without side effects on Windows or when already root; a
// denied or interrupted elevation surfaces as an error.
func EnsureRoot() error {
	if runtime.GOOS == "windows" {
		return nil
	}
	if os.Geteuid() == 0 {
		return nil
	}

	fmt.Println("Needing sudo privileges, re-launching")

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolving executable: %w", err)
	}

	cmd := exec.Command("sudo", append([]string{exe}, os.Args[1:]...)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err = cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	if err != nil {
		return fmt.Errorf("sudo: %w", err)
	}

	os.Exit(0)
	return nil
}
