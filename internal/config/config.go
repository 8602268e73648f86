package config

import "github.com/spf13/viper"

type Config struct {
	ProjectName string `mapstructure:"project_name"`
	ImageBase   string `mapstructure:"image_base"`
	ModulesDir  string `mapstructure:"modules_dir"`
	Manifest    string `mapstructure:"manifest"`

	Broker           Broker     `mapstructure:"broker"`
	FlightController SerialLink `mapstructure:"flight_controller"`
	Peripheral       SerialLink `mapstructure:"peripheral"`
	Mavlink          Mavlink    `mapstructure:"mavlink"`
	Origin           Origin     `mapstructure:"origin"`
	Vision           Vision     `mapstructure:"vision"`
	Power            Power      `mapstructure:"power"`
}

// Broker is the MQTT broker every module connects to. Host doubles as the
// broker's compose service name so in-network DNS resolves it.
type Broker struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// SerialLink describes a serial device attached to the VMC.
type SerialLink struct {
	Device   string `mapstructure:"device"`
	BaudRate int    `mapstructure:"baud_rate"`
}

// Mavlink holds the ports the relay exposes: a TCP listener for ground
// control, two UDP client endpoints into the flight-control bridge, and a
// UDP listener for the simulator's offboard link.
type Mavlink struct {
	TCPPort       int `mapstructure:"tcp_port"`
	MavsdkPort    int `mapstructure:"mavsdk_port"`
	PymavlinkPort int `mapstructure:"pymavlink_port"`
	OffboardPort  int `mapstructure:"offboard_port"`
}

// Origin is the PX4 home position.
type Origin struct {
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
	Altitude  float64 `mapstructure:"altitude"`
}

type Vision struct {
	CameraSocket   string `mapstructure:"camera_socket"`
	AcceleratorDir string `mapstructure:"accelerator_dir"`
}

type Power struct {
	Tool       string `mapstructure:"tool"`
	ConfigFile string `mapstructure:"config_file"`
}

// Load returns the configuration with built-in defaults, overridden by
// whatever viper read from vmc.yml.
func Load() (*Config, error) {
	cfg := Defaults()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Defaults returns the built-in configuration without consulting viper.
func Defaults() *Config {
	cfg := &Config{
		// docker compose only accepts lower case project names
		ProjectName: "avr",
		ImageBase:   "ghcr.io/bellflight/avr/",
		ModulesDir:  "modules",
		Manifest:    "docker-compose.yml",
	}
	cfg.Broker = Broker{Host: "broker", Port: 18830}
	cfg.FlightController = SerialLink{Device: "/dev/ttyTHS1", BaudRate: 500000}
	cfg.Peripheral = SerialLink{Device: "/dev/ttyACM0", BaudRate: 115200}
	cfg.Mavlink = Mavlink{
		TCPPort:       5760,  // QGroundControl
		MavsdkPort:    14541, // mavsdk
		PymavlinkPort: 14542, // pymavlink
		OffboardPort:  14540,
	}
	cfg.Origin = Origin{Latitude: 32.808549, Longitude: -97.156345, Altitude: 161.5}
	cfg.Vision = Vision{CameraSocket: "/tmp/argus_socket", AcceleratorDir: "/opt/nvidia/vpi1/"}
	cfg.Power = Power{Tool: "nvpmodel", ConfigFile: "/etc/nvpmodel.conf"}
	return cfg
}
