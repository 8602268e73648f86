package wizard

import (
	"bytes"
	"text/template"
)

const configTemplate = `# AVR-VMC configuration
# Anything omitted here falls back to a built-in default.

project_name: {{ .ProjectName }}
image_base: {{ .ImageBase }}
modules_dir: {{ .ModulesDir }}

broker:
  port: {{ .BrokerPort }}

flight_controller:
  device: {{ .FlightDevice }}

peripheral:
  device: {{ .PeripheralDevice }}
`

// GenerateConfig renders the vmc.yml content from wizard answers.
func GenerateConfig(answers Answers) (string, error) {
	tmpl, err := template.New("config").Parse(configTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, answers); err != nil {
		return "", err
	}

	return buf.String(), nil
}
