package compose

import (
	"path/filepath"
	"strings"
)

// WrapWSL re-issues a command inside the Linux compatibility subsystem,
// with the working directory translated into WSL's mount convention.
// Needed on Windows when the simulator forwards its display through WSLg.
func WrapWSL(argv []string, workdir string) []string {
	wrapped := []string{"wsl", "--cd", WindowsToWSLPath(workdir), "--"}
	return append(wrapped, argv...)
}

// WindowsToWSLPath converts a Windows path like `C:\Users\drone` into WSL
// mount format, `/mnt/c/Users/drone`.
func WindowsToWSLPath(path string) string {
	drive, rest, ok := strings.Cut(path, ":")
	if !ok {
		return filepath.ToSlash(path)
	}

	rest = strings.TrimPrefix(rest, `\`)
	rest = strings.ReplaceAll(rest, `\`, "/")

	return "/mnt/" + strings.ToLower(drive) + "/" + rest
}
