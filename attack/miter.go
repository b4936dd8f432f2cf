package attack

import (
	"github.com/xDarkicex/satlock/circuit"
	"github.com/xDarkicex/satlock/cnf"
)

// renumber clones base and reassigns its literal numbering: every gate name
// present in keep retains the literal given there, and every other gate (in
// circuit order) is assigned a fresh, consecutive literal starting at
// start. It returns the clone and one past the highest literal it assigned.
//
// This is the structural primitive the SAT attack's miter construction
// needs repeatedly: two circuits that must agree on the numbering of one
// subset of gates (so a solver model can be read consistently across both)
// while disagreeing on everything else (so their clauses never alias).
func renumber(base *circuit.Circuit, keep map[string]int, start int) (*circuit.Circuit, int) {
	cp := base.Clone()
	next := start
	for _, name := range cp.Order() {
		if lit, ok := keep[name]; ok {
			cp.Lits[name] = lit
			continue
		}
		cp.Lits[name] = next
		next++
	}
	return cp, next
}

// subsetLits returns the entries of lits whose key is named in names.
func subsetLits(lits map[string]int, names []string) map[string]int {
	out := make(map[string]int, len(names))
	for _, n := range names {
		out[n] = lits[n]
	}
	return out
}

// dipCNF pins c's primary inputs to x and c's outputs to y, both given in
// circuit.InputGates/circuit.OutputGates order, as unit clauses.
func dipCNF(c *circuit.Circuit, x, y []bool) cnf.Clauses {
	var out cnf.Clauses
	for i, name := range c.InputGates {
		lit := cnf.Lit(c.Lits[name])
		if !x[i] {
			lit = -lit
		}
		out = append(out, cnf.Clause{lit})
	}
	for i, name := range c.OutputGates {
		lit := cnf.Lit(c.Lits[name])
		if !y[i] {
			lit = -lit
		}
		out = append(out, cnf.Clause{lit})
	}
	return out
}

// diffOutCNF builds the clauses asserting that at least one output literal
// pair (c1Out[i], c2Out[i]) disagrees. It introduces two fresh auxiliary
// variables per pair starting at counter+1: one that can only be set when
// c1's output is true and c2's is false, and one that can only be set when
// c1's output is false and c2's is true. A single trailing clause forces at
// least one of these 2*len(c1Out) auxiliaries true, which in turn forces the
// output pair it guards to actually differ. Each direction needs only the
// implication that matters to the solver, not a full biconditional, since
// nothing else in the formula ever forces an auxiliary true on its own.
func diffOutCNF(c1Out, c2Out []int, counter int) (cnf.Clauses, int) {
	var out cnf.Clauses
	var disjunction cnf.Clause

	for i := range c1Out {
		l1 := cnf.Lit(c1Out[i])
		l2 := cnf.Lit(c2Out[i])

		counter++
		tPlus := cnf.Lit(counter)
		counter++
		tMinus := cnf.Lit(counter)

		out = append(out,
			cnf.Clause{-tPlus, l1},
			cnf.Clause{-tPlus, -l2},
			cnf.Clause{-tMinus, -l1},
			cnf.Clause{-tMinus, l2},
		)
		disjunction = append(disjunction, tPlus, tMinus)
	}

	out = append(out, disjunction)
	return out, counter
}

func litsOf(c *circuit.Circuit, names []string) []int {
	out := make([]int, len(names))
	for i, n := range names {
		out[i] = c.Lits[n]
	}
	return out
}
