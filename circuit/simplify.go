package circuit

import "fmt"

// positiveOf maps a negated associative op to the positive op used for every
// intermediate gate in a lowered chain; only the final gate in the chain
// keeps the original (negated) op. Plain and/or/xor chains use themselves
// throughout since they need no such split.
var positiveOf = map[Op]Op{
	OpNand: OpAnd,
	OpNor:  OpOr,
	OpXnor: OpXor,
}

// Simplify rewrites c in place to 2-input normal form: every gate with more
// than two inputs is lowered to a left-leaning chain of 2-input gates named
// with a fresh g_<n> counter, and every mux gate is lowered to
// or(and(a, not(s)), and(b, s)). Gates already at or below arity 2 (other
// than mux) pass through unchanged. Gate names that other gates reference
// are preserved as the final gate of their lowering, so rewiring elsewhere
// in the circuit needs no adjustment. Simplify must be idempotent: running
// it twice on an already-simplified circuit is a no-op.
func (c *Circuit) Simplify() error {
	newGates := make(map[string]*Gate, len(c.gates))
	var newOrder []string
	counter := 0
	fresh := func() string {
		n := fmt.Sprintf("g_%d", counter)
		counter++
		return n
	}
	emit := func(g *Gate) {
		newGates[g.Name] = g
		newOrder = append(newOrder, g.Name)
	}

	for _, name := range c.order {
		g := c.gates[name]

		switch {
		case g.Op == OpInput:
			emit(g)

		case g.Op == OpMux:
			if len(g.Inputs) != 3 {
				return fmt.Errorf("%w: mux %q requires exactly 3 inputs, has %d", ErrParse, name, len(g.Inputs))
			}
			a, b, s := g.Inputs[0], g.Inputs[1], g.Inputs[2]

			notName := fresh()
			emit(&Gate{Name: notName, Op: OpNot, Inputs: []string{s}})

			and1Name := fresh()
			emit(&Gate{Name: and1Name, Op: OpAnd, Inputs: []string{a, notName}})

			and2Name := fresh()
			emit(&Gate{Name: and2Name, Op: OpAnd, Inputs: []string{b, s}})

			emit(&Gate{Name: name, Op: OpOr, Inputs: []string{and1Name, and2Name}})

		case len(g.Inputs) <= 2:
			emit(g)

		default:
			chainOp := g.Op
			if pos, ok := positiveOf[g.Op]; ok {
				chainOp = pos
			}
			acc := g.Inputs[0]
			for i := 1; i < len(g.Inputs)-1; i++ {
				n := fresh()
				emit(&Gate{Name: n, Op: chainOp, Inputs: []string{acc, g.Inputs[i]}})
				acc = n
			}
			emit(&Gate{Name: name, Op: g.Op, Inputs: []string{acc, g.Inputs[len(g.Inputs)-1]}})
		}
	}

	c.gates = newGates
	c.order = newOrder
	c.AssignLiterals()
	return nil
}
