// Package attack implements the oracle-guided SAT attack on key-locked
// combinational circuits: repeatedly derive a distinguishing input pattern
// between two independent key hypotheses, resolve it against an activated
// oracle, and accumulate the answer as a constraint until no distinguishing
// input remains.
package attack

import (
	"fmt"

	"github.com/xDarkicex/satlock/bits"
	"github.com/xDarkicex/satlock/circuit"
	"github.com/xDarkicex/satlock/cnf"
)

// Result is the outcome of a completed (or limit-exhausted) attack run.
type Result struct {
	// Key is the recovered key, in the attacked circuit's KeyGates order.
	Key []bool
	// Iterations counts miter solves, starting at 1 for the initial solve;
	// each resolved distinguishing input pattern adds one. A run that finds
	// the miter unsatisfiable immediately reports 1.
	Iterations int
	// Converged is true when the miter went unsatisfiable before the
	// iteration limit, certifying the surviving key class is functionally
	// unique. False means the run was capped and Key is best-effort.
	Converged bool
	// SuccessRate is the percentage of key bits matching locked.CorrectKey.
	// It is -1 when the circuit carries no correct key to compare against.
	SuccessRate float64
}

// Run recovers the key of locked by querying oracle for distinguishing
// input patterns until the two key hypotheses the attack maintains
// internally can no longer be told apart, or until the iteration limit is
// reached.
func Run(locked *circuit.Circuit, oracle Oracle, opts ...Option) (*Result, error) {
	options := defaults()
	for _, opt := range opts {
		opt(&options)
	}
	if options.Solver == nil {
		options.Solver = defaults().Solver
	}

	c1 := locked.Clone()
	if err := c1.Simplify(); err != nil {
		return nil, fmt.Errorf("attack: simplifying circuit: %w", err)
	}

	c2, counter := renumber(c1, subsetLits(c1.Lits, c1.InputGates), c1.Len()+1)

	base1, err := c1.ToCNF()
	if err != nil {
		return nil, fmt.Errorf("attack: encoding circuit: %w", err)
	}
	base2, err := c2.ToCNF()
	if err != nil {
		return nil, fmt.Errorf("attack: encoding renumbered circuit: %w", err)
	}

	persistent := append(cnf.Clauses{}, base1...)
	persistent = append(persistent, base2...)

	c1OutLits := litsOf(c1, c1.OutputGates)
	c2OutLits := litsOf(c2, c2.OutputGates)
	diffClauses, counter := diffOutCNF(c1OutLits, c2OutLits, counter)

	iterations := 1
	converged := false
	for {
		query := append(cnf.Clauses{}, persistent...)
		query = append(query, diffClauses...)

		res, err := options.Solver.Solve(query, counter, nil)
		if err != nil {
			return nil, fmt.Errorf("attack: solving miter: %w", err)
		}
		if !res.Satisfiable {
			converged = true
			break
		}
		if options.Limit > 0 && iterations >= options.Limit {
			break
		}
		iterations++

		x := make([]bool, len(c1.InputGates))
		for i, name := range c1.InputGates {
			x[i] = res.Model[c1.Lits[name]]
		}

		y, err := oracle.Query(x)
		if err != nil {
			return nil, fmt.Errorf("attack: querying oracle: %w", err)
		}
		if len(y) != len(c1.OutputGates) {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrOracleLengthMismatch, len(y), len(c1.OutputGates))
		}

		if options.Verbose {
			options.Logger.WithFields(map[string]interface{}{
				"iteration": iterations,
			}).Info("attack: resolved distinguishing input pattern")
		}

		var c1Copy, c2Copy *circuit.Circuit
		c1Copy, counter = renumber(c1, subsetLits(c1.Lits, c1.KeyGates), counter+1)
		c2Copy, counter = renumber(c1, subsetLits(c2.Lits, c2.KeyGates), counter+1)

		c1CopyCNF, err := c1Copy.ToCNF()
		if err != nil {
			return nil, fmt.Errorf("attack: encoding DIP copy: %w", err)
		}
		c2CopyCNF, err := c2Copy.ToCNF()
		if err != nil {
			return nil, fmt.Errorf("attack: encoding DIP copy: %w", err)
		}

		persistent = append(persistent, c1CopyCNF...)
		persistent = append(persistent, dipCNF(c1Copy, x, y)...)
		persistent = append(persistent, c2CopyCNF...)
		persistent = append(persistent, dipCNF(c2Copy, x, y)...)
	}

	final, err := options.Solver.Solve(persistent, counter, nil)
	if err != nil {
		return nil, fmt.Errorf("attack: solving final constraint set: %w", err)
	}
	if !final.Satisfiable {
		return nil, fmt.Errorf("attack: accumulated constraints are unsatisfiable after %d iterations", iterations)
	}

	key := make([]bool, len(c1.KeyGates))
	for i, name := range c1.KeyGates {
		key[i] = final.Model[c1.Lits[name]]
	}

	result := &Result{Key: key, Iterations: iterations, Converged: converged, SuccessRate: -1}
	if len(key) > 0 && len(locked.CorrectKey) == len(key) {
		result.SuccessRate = bits.SuccessRate(locked.CorrectKey, key)
	}

	if options.Verbose {
		options.Logger.WithFields(map[string]interface{}{
			"iterations":   iterations,
			"converged":    converged,
			"success_rate": result.SuccessRate,
		}).Info("attack: finished")
	}

	return result, nil
}
