// Package hostfacts probes the host once per invocation for everything the
// topology materializer needs to know: attached devices, helper tools, and
// the platform we are running on. Keeping the probes here makes the
// materializer a pure function of its inputs.
package hostfacts

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/NathanVaughn/AVR-VMC/internal/config"
)

// Platform identifies the kind of host the CLI runs on.
type Platform string

const (
	PlatformLinux   Platform = "linux"
	PlatformWSL     Platform = "wsl"
	PlatformWindows Platform = "windows"
)

// Facts holds the results of all host probes.
type Facts struct {
	Platform Platform

	FlightControllerSerial bool
	PeripheralSerial       bool
	CameraSocket           bool
	VisionLibs             bool
	SandboxSource          bool

	// PowerToolPath is the resolved path of the power-management tool,
	// empty when it is not on PATH.
	PowerToolPath   string
	PowerToolConfig bool

	Display DisplayEnv
}

// DisplayEnv carries the display/audio forwarding variables, queried from
// the WSL environment when running on Windows.
type DisplayEnv struct {
	Display        string
	WaylandDisplay string
	XDGRuntimeDir  string
	PulseServer    string
}

// DisplayForwarding reports whether the host can forward a GUI out of a
// container. Native Linux and WSL always can; plain Windows only when a
// DISPLAY value could be obtained from the subsystem.
func (f Facts) DisplayForwarding() bool {
	switch f.Platform {
	case PlatformLinux, PlatformWSL:
		return true
	default:
		return f.Display.Display != ""
	}
}

// Subsystem reports whether the host is Windows or WSL, where the WSLg
// mount must be shared into display-forwarding containers.
func (f Facts) Subsystem() bool {
	return f.Platform == PlatformWindows || f.Platform == PlatformWSL
}

// Prober abstracts host lookups for testing.
type Prober interface {
	Stat(path string) (os.FileInfo, error)
	LookPath(name string) (string, error)
	Getenv(key string) string
	// SubsystemEnv queries an environment variable inside WSL from a
	// Windows host.
	SubsystemEnv(key string) string
	GOOS() string
	OSRelease() string
}

// OSProber uses the real OS for probing.
type OSProber struct{}

func (OSProber) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }
func (OSProber) LookPath(name string) (string, error)  { return exec.LookPath(name) }
func (OSProber) Getenv(key string) string              { return os.Getenv(key) }
func (OSProber) GOOS() string                          { return runtime.GOOS }

func (OSProber) SubsystemEnv(key string) string {
	out, err := exec.Command("wsl", "echo", "$"+key).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

func (OSProber) OSRelease() string {
	data, err := os.ReadFile("/proc/sys/kernel/osrelease")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Probe runs all host checks once and returns the results.
func Probe(cfg *config.Config, p Prober) Facts {
	if p == nil {
		p = OSProber{}
	}

	facts := Facts{
		Platform:               detectPlatform(p),
		FlightControllerSerial: exists(p, cfg.FlightController.Device),
		PeripheralSerial:       exists(p, cfg.Peripheral.Device),
		CameraSocket:           isFile(p, cfg.Vision.CameraSocket),
		VisionLibs:             isDir(p, cfg.Vision.AcceleratorDir),
		SandboxSource:          isDir(p, sandboxDir(cfg)),
		PowerToolConfig:        isFile(p, cfg.Power.ConfigFile),
	}

	if path, err := p.LookPath(cfg.Power.Tool); err == nil {
		facts.PowerToolPath = path
	}

	facts.Display = displayEnv(p, facts.Platform)

	return facts
}

func detectPlatform(p Prober) Platform {
	if p.GOOS() == "windows" {
		return PlatformWindows
	}
	if strings.Contains(p.OSRelease(), "WSL") {
		return PlatformWSL
	}
	return PlatformLinux
}

func displayEnv(p Prober, platform Platform) DisplayEnv {
	get := p.Getenv
	if platform == PlatformWindows {
		get = p.SubsystemEnv
	}
	return DisplayEnv{
		Display:        get("DISPLAY"),
		WaylandDisplay: get("WAYLAND_DISPLAY"),
		XDGRuntimeDir:  get("XDG_RUNTIME_DIR"),
		PulseServer:    get("PULSE_SERVER"),
	}
}

func sandboxDir(cfg *config.Config) string {
	return filepath.Join(cfg.ModulesDir, "sandbox")
}

func exists(p Prober, path string) bool {
	_, err := p.Stat(path)
	return err == nil
}

func isFile(p Prober, path string) bool {
	info, err := p.Stat(path)
	return err == nil && !info.IsDir()
}

func isDir(p Prober, path string) bool {
	info, err := p.Stat(path)
	return err == nil && info.IsDir()
}
