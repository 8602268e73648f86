package hostfacts

import (
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/NathanVaughn/AVR-VMC/internal/config"
)

// fakeProber simulates host lookups from in-memory maps.
type fakeProber struct {
	files  map[string]bool // path -> isDir
	tools  map[string]string
	env    map[string]string
	wslEnv map[string]string
	goos   string
	kernel string
}

func (f fakeProber) Stat(path string) (os.FileInfo, error) {
	isDir, ok := f.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return fakeFileInfo{name: path, dir: isDir}, nil
}

func (f fakeProber) LookPath(name string) (string, error) {
	if path, ok := f.tools[name]; ok {
		return path, nil
	}
	return "", fs.ErrNotExist
}

func (f fakeProber) Getenv(key string) string       { return f.env[key] }
func (f fakeProber) SubsystemEnv(key string) string { return f.wslEnv[key] }
func (f fakeProber) GOOS() string                   { return f.goos }
func (f fakeProber) OSRelease() string              { return f.kernel }

type fakeFileInfo struct {
	name string
	dir  bool
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() fs.FileMode  { return 0 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.dir }
func (f fakeFileInfo) Sys() any           { return nil }

func TestProbeFullHost(t *testing.T) {
	cfg := config.Defaults()

	p := fakeProber{
		goos:   "linux",
		kernel: "5.10.104-tegra",
		files: map[string]bool{
			"/dev/ttyTHS1":       false,
			"/dev/ttyACM0":       false,
			"/tmp/argus_socket":  false,
			"/opt/nvidia/vpi1/":  true,
			"/etc/nvpmodel.conf": false,
			"modules/sandbox":    true,
		},
		tools: map[string]string{"nvpmodel": "/usr/sbin/nvpmodel"},
		env:   map[string]string{"DISPLAY": ":0"},
	}

	facts := Probe(cfg, p)

	assert.Equal(t, PlatformLinux, facts.Platform)
	assert.True(t, facts.FlightControllerSerial)
	assert.True(t, facts.PeripheralSerial)
	assert.True(t, facts.CameraSocket)
	assert.True(t, facts.VisionLibs)
	assert.True(t, facts.SandboxSource)
	assert.Equal(t, "/usr/sbin/nvpmodel", facts.PowerToolPath)
	assert.True(t, facts.PowerToolConfig)
	assert.Equal(t, ":0", facts.Display.Display)
}

func TestProbeBareHost(t *testing.T) {
	cfg := config.Defaults()

	facts := Probe(cfg, fakeProber{goos: "linux"})

	assert.False(t, facts.FlightControllerSerial)
	assert.False(t, facts.PeripheralSerial)
	assert.False(t, facts.CameraSocket)
	assert.False(t, facts.VisionLibs)
	assert.False(t, facts.SandboxSource)
	assert.Empty(t, facts.PowerToolPath)
	assert.False(t, facts.PowerToolConfig)
}

func TestProbeDirectoryIsNotCameraSocket(t *testing.T) {
	cfg := config.Defaults()

	p := fakeProber{
		goos:  "linux",
		files: map[string]bool{"/tmp/argus_socket": true}, // a directory, not the socket
	}

	facts := Probe(cfg, p)
	assert.False(t, facts.CameraSocket)
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		kernel   string
		expected Platform
	}{
		{"windows", "windows", "", PlatformWindows},
		{"wsl", "linux", "5.15.90.1-microsoft-standard-WSL2", PlatformWSL},
		{"native linux", "linux", "5.10.104-tegra", PlatformLinux},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectPlatform(fakeProber{goos: tt.goos, kernel: tt.kernel})
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestWindowsQueriesSubsystemEnv(t *testing.T) {
	cfg := config.Defaults()

	p := fakeProber{
		goos:   "windows",
		env:    map[string]string{"DISPLAY": "native-should-be-ignored"},
		wslEnv: map[string]string{"DISPLAY": ":0", "PULSE_SERVER": "/mnt/wslg/PulseServer"},
	}

	facts := Probe(cfg, p)

	assert.Equal(t, ":0", facts.Display.Display)
	assert.Equal(t, "/mnt/wslg/PulseServer", facts.Display.PulseServer)
}

func TestDisplayForwarding(t *testing.T) {
	tests := []struct {
		name     string
		facts    Facts
		expected bool
	}{
		{"native linux", Facts{Platform: PlatformLinux}, true},
		{"wsl", Facts{Platform: PlatformWSL}, true},
		{"windows without display", Facts{Platform: PlatformWindows}, false},
		{"windows with display", Facts{Platform: PlatformWindows, Display: DisplayEnv{Display: ":0"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.facts.DisplayForwarding())
		})
	}
}
