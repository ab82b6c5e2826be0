package core

// Parameter describes a single run setting shown alongside a simulation.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the settings a run was started with.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}
