package topology

import "strconv"

func init() {
	register(func() rule { return brokerRule{} })
}

// brokerRule materializes the MQTT broker every other module talks to.
type brokerRule struct{}

func (brokerRule) Module() Module { return ModuleBroker }
func (brokerRule) Implicit() bool { return true }
func (brokerRule) Gate(buildContext) string { return "" }

func (brokerRule) Descriptor(ctx buildContext) ServiceDescriptor {
	port := ctx.cfg.Broker.Port
	return ServiceDescriptor{
		Name:    ModuleBroker,
		Source:  ctx.source(ModuleBroker, "mosquitto"),
		Restart: "on-failure",
		Environment: map[string]string{
			"MQTT_PORT": strconv.Itoa(port),
		},
		Ports: []PortBinding{{Host: port, Container: port, Protocol: "tcp"}},
	}
}
