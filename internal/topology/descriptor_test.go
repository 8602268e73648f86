package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceUnion(t *testing.T) {
	img := ImageSource("ghcr.io/bellflight/avr/fusion:latest")
	ref, ok := img.Image()
	assert.True(t, ok)
	assert.Equal(t, "ghcr.io/bellflight/avr/fusion:latest", ref)
	_, ok = img.BuildPath()
	assert.False(t, ok)

	build := BuildSource("modules/fusion")
	dir, ok := build.BuildPath()
	assert.True(t, ok)
	assert.Equal(t, "modules/fusion", dir)
	_, ok = build.Image()
	assert.False(t, ok)
}

func TestPortBindingString(t *testing.T) {
	tests := []struct {
		binding  PortBinding
		expected string
	}{
		{PortBinding{Host: 18830, Container: 18830, Protocol: "tcp"}, "18830:18830/tcp"},
		{PortBinding{Host: 14540, Container: 14540, Protocol: "udp"}, "14540:14540/udp"},
		{PortBinding{Host: 8080, Container: 80, Protocol: "tcp"}, "8080:80/tcp"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.binding.String())
		})
	}
}

func TestMountString(t *testing.T) {
	m := Mount{Source: "/tmp/argus_socket", Target: "/tmp/argus_socket"}
	assert.Equal(t, "/tmp/argus_socket:/tmp/argus_socket", m.String())
}
