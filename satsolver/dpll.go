package satsolver

import "github.com/xDarkicex/satlock/cnf"

// DPLLSolver is a dependency-free Davis-Putnam-Logemann-Loveland solver:
// unit propagation and pure literal elimination interleaved with
// chronological backtracking over a decision variable. It exists as a
// fallback for environments where linking a CDCL library is undesirable; it
// has none of gini's clause learning or restart heuristics and is
// exponential in the worst case, same as any plain DPLL implementation.
type DPLLSolver struct {
	assignment map[int]bool
	clauses    cnf.Clauses
}

// NewDPLL returns a DPLLSolver.
func NewDPLL() *DPLLSolver { return &DPLLSolver{} }

// Name returns "dpll".
func (d *DPLLSolver) Name() string { return "dpll" }

// Solve runs DPLL over clauses plus one unit clause per assumption.
func (d *DPLLSolver) Solve(clauses cnf.Clauses, numVars int, assumptions []cnf.Lit) (*Result, error) {
	d.clauses = clauses
	if len(assumptions) > 0 {
		d.clauses = make(cnf.Clauses, 0, len(clauses)+len(assumptions))
		d.clauses = append(d.clauses, clauses...)
		for _, a := range assumptions {
			d.clauses = append(d.clauses, cnf.Clause{a})
		}
	}
	d.assignment = make(map[int]bool)

	sat := d.search()
	if !sat {
		return &Result{Satisfiable: false}, nil
	}

	model := make(map[int]bool, numVars)
	for v := 1; v <= numVars; v++ {
		model[v] = d.assignment[v]
	}
	return &Result{Satisfiable: true, Model: model}, nil
}

func (d *DPLLSolver) search() bool {
	conflict := d.unitPropagate()
	if conflict {
		return false
	}
	d.eliminatePureLiterals()

	if d.allSatisfied() {
		return true
	}

	variable, ok := d.chooseUnassigned()
	if !ok {
		return false
	}

	saved := cloneAssignment(d.assignment)
	for _, value := range []bool{true, false} {
		d.assignment[variable] = value
		if d.search() {
			return true
		}
		d.assignment = cloneAssignment(saved)
	}
	return false
}

func (d *DPLLSolver) unitPropagate() (conflict bool) {
	changed := true
	for changed {
		changed = false
		for _, cl := range d.clauses {
			status, unit := d.clauseStatus(cl)
			switch status {
			case clauseConflict:
				return true
			case clauseUnit:
				v := abs(int(unit))
				d.assignment[v] = unit > 0
				changed = true
			}
		}
	}
	return false
}

func (d *DPLLSolver) eliminatePureLiterals() {
	const (
		seenPos = 1 << iota
		seenNeg
	)
	polarity := make(map[int]int)
	for _, cl := range d.clauses {
		if d.satisfies(cl) {
			continue
		}
		for _, lit := range cl {
			v := abs(int(lit))
			if _, assigned := d.assignment[v]; assigned {
				continue
			}
			if lit > 0 {
				polarity[v] |= seenPos
			} else {
				polarity[v] |= seenNeg
			}
		}
	}
	for v, p := range polarity {
		switch p {
		case seenPos:
			d.assignment[v] = true
		case seenNeg:
			d.assignment[v] = false
		}
	}
}

type status int

const (
	clauseUnresolved status = iota
	clauseSatisfied
	clauseConflict
	clauseUnit
)

// clauseStatus classifies cl under the current (partial) assignment and, for
// the unit case, returns the single unassigned literal that must be set.
func (d *DPLLSolver) clauseStatus(cl cnf.Clause) (status, cnf.Lit) {
	var unassigned []cnf.Lit
	for _, lit := range cl {
		v := abs(int(lit))
		val, ok := d.assignment[v]
		if !ok {
			unassigned = append(unassigned, lit)
			continue
		}
		if val == (lit > 0) {
			return clauseSatisfied, 0
		}
	}
	if len(unassigned) == 0 {
		return clauseConflict, 0
	}
	if len(unassigned) == 1 {
		return clauseUnit, unassigned[0]
	}
	return clauseUnresolved, 0
}

func (d *DPLLSolver) satisfies(cl cnf.Clause) bool {
	status, _ := d.clauseStatus(cl)
	return status == clauseSatisfied
}

func (d *DPLLSolver) allSatisfied() bool {
	for _, cl := range d.clauses {
		if !d.satisfies(cl) {
			return false
		}
	}
	return true
}

func (d *DPLLSolver) chooseUnassigned() (int, bool) {
	for _, cl := range d.clauses {
		for _, lit := range cl {
			v := abs(int(lit))
			if _, ok := d.assignment[v]; !ok {
				return v, true
			}
		}
	}
	return 0, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func cloneAssignment(a map[int]bool) map[int]bool {
	cp := make(map[int]bool, len(a))
	for k, v := range a {
		cp[k] = v
	}
	return cp
}
