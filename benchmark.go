package satlock

import (
	"time"

	"github.com/xDarkicex/satlock/attack"
	"github.com/xDarkicex/satlock/satsolver"
)

// solverRun names one SAT backend to run the attack with, as part of a
// Comparison.
type solverRun struct {
	Name   string
	Solver satsolver.Solver
}

// Comparison runs the same attack against the same locked circuit and
// oracle once per configured solver backend, so their iteration counts and
// wall-clock time can be compared directly.
//
// Example:
//
//	cmp := NewComparison()
//	cmp.Add("gini", giniSolver)
//	cmp.Add("dpll", dpllSolver)
//	err := cmp.Run(locked, oracle)
type Comparison struct {
	runs []solverRun

	// Results holds one attack.Result per configured solver, in Add order,
	// after Run completes.
	Results []*attack.Result

	// Durations holds the wall-clock time each solver's attack took, in
	// the same order as Results.
	Durations []time.Duration
}

// NewComparison starts an empty solver comparison.
func NewComparison() *Comparison {
	return &Comparison{}
}

// Add registers a named solver backend to include in the comparison.
func (c *Comparison) Add(name string, solver satsolver.Solver) {
	c.runs = append(c.runs, solverRun{Name: name, Solver: solver})
}

// Run attacks locked through oracle once per registered solver, in
// registration order, stopping at the first error.
func (c *Comparison) Run(locked *Circuit, oracle attack.Oracle, opts ...attack.Option) error {
	c.Results = make([]*attack.Result, len(c.runs))
	c.Durations = make([]time.Duration, len(c.runs))

	for i, run := range c.runs {
		runOpts := append([]attack.Option{attack.WithSolver(run.Solver)}, opts...)

		start := time.Now()
		result, err := attack.Run(locked, oracle, runOpts...)
		c.Durations[i] = time.Since(start)
		if err != nil {
			return err
		}
		c.Results[i] = result
	}

	return nil
}
