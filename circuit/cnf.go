package circuit

import (
	"fmt"

	"github.com/xDarkicex/satlock/cnf"
)

// ToCNF Tseytin-encodes every non-input gate into clauses asserting its
// literal equals its operation applied to its input literals, using the
// numbering in c.Lits. The circuit must already be in 2-input normal form
// (see Simplify) and must have literals assigned (see AssignLiterals);
// ToCNF does not simplify or number on the caller's behalf since both steps
// are meaningful checkpoints the attack engine needs to control
// independently (e.g. to renumber a clone without re-simplifying it).
func (c *Circuit) ToCNF() (cnf.Clauses, error) {
	var out cnf.Clauses

	for _, name := range c.order {
		g := c.gates[name]
		if g.Op == OpInput {
			continue
		}

		y, ok := c.Lits[name]
		if !ok {
			return nil, fmt.Errorf("%w: gate %q has no assigned literal", ErrParse, name)
		}

		ins := make([]cnf.Lit, len(g.Inputs))
		for i, in := range g.Inputs {
			l, ok := c.Lits[in]
			if !ok {
				return nil, fmt.Errorf("%w: gate %q input %q has no assigned literal", ErrUnresolvedInput, name, in)
			}
			ins[i] = cnf.Lit(l)
		}

		clauses, err := cnf.Encode(string(g.Op), cnf.Lit(y), ins...)
		if err != nil {
			return nil, fmt.Errorf("circuit: encoding gate %q: %w", name, err)
		}
		out = append(out, clauses...)
	}

	return out, nil
}
