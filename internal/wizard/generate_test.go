package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGenerateConfig(t *testing.T) {
	answers := Answers{
		ProjectName:      "avr",
		ImageBase:        "ghcr.io/bellflight/avr/",
		ModulesDir:       "modules",
		BrokerPort:       "18830",
		FlightDevice:     "/dev/ttyTHS1",
		PeripheralDevice: "/dev/ttyACM0",
	}

	content, err := GenerateConfig(answers)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(content), &parsed), "generated config should be valid YAML")

	assert.Equal(t, "avr", parsed["project_name"])
	assert.Equal(t, "modules", parsed["modules_dir"])

	broker, ok := parsed["broker"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 18830, broker["port"])

	fcc, ok := parsed["flight_controller"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/dev/ttyTHS1", fcc["device"])
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, validatePort("18830"))
	assert.Error(t, validatePort("0"))
	assert.Error(t, validatePort("70000"))
	assert.Error(t, validatePort("mqtt"))
}

func TestValidateProjectName(t *testing.T) {
	assert.NoError(t, validateProjectName("avr"))
	assert.NoError(t, validateProjectName("avr-2"))
	assert.Error(t, validateProjectName(""))
	assert.Error(t, validateProjectName("AVR"))
	assert.Error(t, validateProjectName("avr stack"))
}
