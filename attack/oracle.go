package attack

import "github.com/xDarkicex/satlock/circuit"

// Oracle answers the attack's distinguishing-input queries the way a
// packaged, activated chip would: given a full assignment to the primary
// inputs in circuit.InputGates order, it returns the resulting output bits
// in circuit.OutputGates order. It never reveals the key directly.
type Oracle interface {
	Query(inputs []bool) ([]bool, error)
}

// CircuitOracle answers queries by simulating a circuit under a fixed,
// known key. It stands in for physical silicon in tests and simulation-only
// attack runs.
type CircuitOracle struct {
	Circuit *circuit.Circuit
	Key     []bool
}

// Query simulates o.Circuit under o.Key and the given primary inputs.
func (o *CircuitOracle) Query(inputs []bool) ([]bool, error) {
	assignment := make(map[string]bool, len(o.Circuit.InputGates))
	for i, name := range o.Circuit.InputGates {
		assignment[name] = inputs[i]
	}
	return o.Circuit.SimulateLocked(assignment, o.Key)
}
