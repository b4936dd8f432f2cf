// Package satsolver adapts Boolean satisfiability solvers to a common
// interface over this repository's cnf.Clauses representation, so the
// attack engine can be pointed at either a production CDCL solver or a
// dependency-free fallback without knowing which.
package satsolver

import (
	"errors"
	"fmt"

	"github.com/xDarkicex/satlock/cnf"
)

// ErrUnknownSolver is returned by New for a name outside the registered set.
var ErrUnknownSolver = errors.New("satsolver: unknown solver name")

// ErrLiteralOverflow is returned when a formula's variable range exceeds
// what the backing solver can represent. gini packs a variable and its sign
// into a uint32, so the variable count must stay below half that range.
var ErrLiteralOverflow = errors.New("satsolver: literal exceeds solver's representable range")

// Result is the outcome of a single Solve call. When Satisfiable is true,
// Model holds an assignment for every variable the formula mentions, up to
// the numVars passed to Solve; a variable the formula never constrains is
// absent and reads as false, which is a legal completion. Model is nil when
// unsatisfiable.
type Result struct {
	Satisfiable bool
	Model       map[int]bool
}

// Solver decides satisfiability of a CNF formula over variables 1..numVars,
// optionally under a set of assumed literals. Implementations must be safe
// to reuse across multiple Solve calls but need not be safe for concurrent
// use by multiple goroutines.
type Solver interface {
	Solve(clauses cnf.Clauses, numVars int, assumptions []cnf.Lit) (*Result, error)
	Name() string
}

// New constructs the named solver. "gini" and "m22" both select the
// go-air/gini-backed CDCL solver (m22 is the solver family gini embeds, and
// is accepted as an alias since callers porting attack configurations from
// other tooling tend to name it that way); "dpll" selects the dependency-free
// backtracking fallback.
func New(name string) (Solver, error) {
	switch name {
	case "gini", "m22", "":
		return NewGini(), nil
	case "dpll":
		return NewDPLL(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
	}
}
