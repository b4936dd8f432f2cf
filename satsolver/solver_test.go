package satsolver

import (
	"testing"

	"github.com/xDarkicex/satlock/cnf"
)

func allBackends(t *testing.T) []Solver {
	t.Helper()
	names := []string{"gini", "dpll"}
	solvers := make([]Solver, 0, len(names))
	for _, name := range names {
		s, err := New(name)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		solvers = append(solvers, s)
	}
	return solvers
}

func TestSolveSatisfiable(t *testing.T) {
	// (x1 or x2) and (not x1 or x2) and (x1 or not x2) -> x1=x2=true is the
	// unique model.
	clauses := cnf.Clauses{
		{1, 2},
		{-1, 2},
		{1, -2},
	}

	for _, s := range allBackends(t) {
		t.Run(s.Name(), func(t *testing.T) {
			res, err := s.Solve(clauses, 2, nil)
			if err != nil {
				t.Fatalf("Solve: %v", err)
			}
			if !res.Satisfiable {
				t.Fatal("expected satisfiable")
			}
			if !res.Model[1] || !res.Model[2] {
				t.Errorf("model = %v, want x1=x2=true", res.Model)
			}
		})
	}
}

func TestSolveUnsatisfiable(t *testing.T) {
	clauses := cnf.Clauses{
		{1},
		{-1},
	}

	for _, s := range allBackends(t) {
		t.Run(s.Name(), func(t *testing.T) {
			res, err := s.Solve(clauses, 1, nil)
			if err != nil {
				t.Fatalf("Solve: %v", err)
			}
			if res.Satisfiable {
				t.Fatal("expected unsatisfiable")
			}
		})
	}
}

func TestSolveWithAssumptions(t *testing.T) {
	// x1 or x2, with x1 assumed false, forces x2 true.
	clauses := cnf.Clauses{
		{1, 2},
	}

	for _, s := range allBackends(t) {
		t.Run(s.Name(), func(t *testing.T) {
			res, err := s.Solve(clauses, 2, []cnf.Lit{-1})
			if err != nil {
				t.Fatalf("Solve: %v", err)
			}
			if !res.Satisfiable {
				t.Fatal("expected satisfiable")
			}
			if !res.Model[2] {
				t.Errorf("model = %v, want x2=true under assumption -x1", res.Model)
			}
		})
	}
}

func TestNewUnknownSolver(t *testing.T) {
	if _, err := New("not-a-solver"); err == nil {
		t.Fatal("New: expected error for unknown solver name")
	}
}
