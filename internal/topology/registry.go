package topology

// rule materializes one module into a service descriptor.
type rule interface {
	Module() Module
	// Implicit rules are evaluated even when their module was not
	// requested. The broker and the mavlink relay are always part of the
	// stack.
	Implicit() bool
	// Gate returns a human-readable reason when the module cannot be
	// included for the current action, or "" when it can. Only consulted
	// for run and build.
	Gate(ctx buildContext) string
	Descriptor(ctx buildContext) ServiceDescriptor
}

var registry []func() rule

// register adds a rule factory. Each module rule calls this in its init().
func register(factory func() rule) {
	registry = append(registry, factory)
}

// rules returns fresh instances of every registered module rule.
func rules() []rule {
	out := make([]rule, len(registry))
	for i, f := range registry {
		out[i] = f()
	}
	return out
}
