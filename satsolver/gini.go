package satsolver

import (
	"fmt"
	"math"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/xDarkicex/satlock/cnf"
)

// GiniSolver solves through go-air/gini's CDCL implementation. Each Solve
// call builds a fresh *gini.Gini instance rather than reusing one across
// calls: the attack engine's miter formula grows every iteration with
// entirely new clauses over entirely new variable ranges, so there is
// nothing worth carrying between solves, and a fresh instance keeps one
// iteration's learned clauses from leaking assumptions into the next.
type GiniSolver struct{}

// NewGini returns a GiniSolver.
func NewGini() *GiniSolver { return &GiniSolver{} }

// Name returns "gini".
func (s *GiniSolver) Name() string { return "gini" }

// Solve hands clauses to a freshly constructed gini instance, asserts
// assumptions, and solves. On satisfiable, Model is populated for every
// variable the formula mentions, up to numVars, by reading gini's
// assignment back out.
func (s *GiniSolver) Solve(clauses cnf.Clauses, numVars int, assumptions []cnf.Lit) (*Result, error) {
	if numVars >= math.MaxInt32/2 {
		return nil, fmt.Errorf("%w: %d variables", ErrLiteralOverflow, numVars)
	}

	g := gini.New()

	for _, cl := range clauses {
		for _, lit := range cl {
			g.Add(z.Dimacs2Lit(int(lit)))
		}
		g.Add(0)
	}

	if len(assumptions) > 0 {
		ms := make([]z.Lit, len(assumptions))
		for i, lit := range assumptions {
			ms[i] = z.Dimacs2Lit(int(lit))
		}
		g.Assume(ms...)
	}

	switch g.Solve() {
	case 1:
		// Only variables the formula actually mentions have a defined
		// assignment; a caller looking up an unmentioned variable reads
		// the map's false default, which is a legal completion.
		seen := make(map[int]bool)
		for _, cl := range clauses {
			for _, lit := range cl {
				seen[varOf(lit)] = true
			}
		}
		for _, lit := range assumptions {
			seen[varOf(lit)] = true
		}
		model := make(map[int]bool, len(seen))
		for v := range seen {
			if v <= numVars {
				model[v] = g.Value(z.Dimacs2Lit(v))
			}
		}
		return &Result{Satisfiable: true, Model: model}, nil
	case -1:
		return &Result{Satisfiable: false}, nil
	default:
		return nil, fmt.Errorf("satsolver: gini returned no verdict")
	}
}

func varOf(l cnf.Lit) int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}
