package circuit

import "fmt"

// Simulate evaluates every gate in circuit order under the given input
// assignment, which must supply a value for every primary input and key
// gate. It caches each gate's result on Gate.Value as a side effect and
// returns the full name-to-value map, from which OutputGates (or any other
// subset) can be read.
func (c *Circuit) Simulate(assignment map[string]bool) (map[string]bool, error) {
	values := make(map[string]bool, len(c.order))

	for _, name := range c.order {
		g := c.gates[name]

		var v bool
		if g.Op == OpInput {
			val, ok := assignment[name]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrMissingInput, name)
			}
			v = val
		} else if g.Op == OpMux {
			// A locking mux may read a back edge: one data operand can name
			// a gate later in the ordering. Only the selector and the
			// operand it selects need values; the unselected operand is
			// left unevaluated, which keeps correct-key simulation of a
			// cyclically locked circuit well-defined.
			s, ok := values[g.Inputs[2]]
			if !ok {
				return nil, fmt.Errorf("%w: mux %q reads selector %q before it is evaluated", ErrUnresolvedInput, name, g.Inputs[2])
			}
			sel := g.Inputs[0]
			if s {
				sel = g.Inputs[1]
			}
			val, ok := values[sel]
			if !ok {
				return nil, fmt.Errorf("%w: mux %q selects %q before it is evaluated", ErrUnresolvedInput, name, sel)
			}
			v = val
		} else {
			args := make([]bool, len(g.Inputs))
			for i, in := range g.Inputs {
				val, ok := values[in]
				if !ok {
					return nil, fmt.Errorf("%w: gate %q reads %q before it is evaluated", ErrUnresolvedInput, name, in)
				}
				args[i] = val
			}
			res, err := Eval(g.Op, args)
			if err != nil {
				return nil, err
			}
			v = res
		}

		values[name] = v
		g.Value = &v
	}

	return values, nil
}

// Outputs extracts the OutputGates subset from a Simulate result, in
// OutputGates order.
func (c *Circuit) Outputs(values map[string]bool) []bool {
	out := make([]bool, len(c.OutputGates))
	for i, name := range c.OutputGates {
		out[i] = values[name]
	}
	return out
}

// UnlockWith expands a key bit vector, given in KeyGates order, into a
// name-to-value assignment suitable for merging into Simulate's input map.
func (c *Circuit) UnlockWith(key []bool) (map[string]bool, error) {
	if len(key) != len(c.KeyGates) {
		return nil, fmt.Errorf("%w: circuit has %d key gates, got %d key bits", ErrKeyLengthMismatch, len(c.KeyGates), len(key))
	}
	assignment := make(map[string]bool, len(c.KeyGates))
	for i, name := range c.KeyGates {
		assignment[name] = key[i]
	}
	return assignment, nil
}

// SimulateLocked merges key into inputs under the KeyGates convention and
// simulates, returning only the OutputGates values in OutputGates order.
// It is the common-case entry point once a circuit has been locked: callers
// supply primary inputs and a candidate key without juggling the combined
// assignment themselves.
func (c *Circuit) SimulateLocked(inputs map[string]bool, key []bool) ([]bool, error) {
	keyAssignment, err := c.UnlockWith(key)
	if err != nil {
		return nil, err
	}

	full := make(map[string]bool, len(inputs)+len(keyAssignment))
	for k, v := range inputs {
		full[k] = v
	}
	for k, v := range keyAssignment {
		full[k] = v
	}

	values, err := c.Simulate(full)
	if err != nil {
		return nil, err
	}
	return c.Outputs(values), nil
}
