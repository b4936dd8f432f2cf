// Package cnf implements conjunctive normal form clauses and the Tseytin
// encoding of 2-input gate operations into them, using the DIMACS signed
// integer literal convention: a positive integer asserts a variable true, its
// negation asserts it false, and 0 is reserved as a clause terminator by
// solver backends and must never appear inside a Clause.
package cnf

import "fmt"

// Lit is a signed literal in DIMACS convention.
type Lit int

// Neg returns the negation of l.
func (l Lit) Neg() Lit { return -l }

// Clause is a disjunction of literals.
type Clause []Lit

// Clauses is a conjunction of Clause, i.e. a CNF formula.
type Clauses []Clause

// Append returns a new Clauses with more appended, without mutating either
// argument's backing array.
func (c Clauses) Append(more ...Clauses) Clauses {
	out := make(Clauses, 0, len(c))
	out = append(out, c...)
	for _, m := range more {
		out = append(out, m...)
	}
	return out
}

// String renders the formula in a human-readable DIMACS-like form, useful
// for test failure messages.
func (c Clauses) String() string {
	s := ""
	for _, cl := range c {
		for i, l := range cl {
			if i > 0 {
				s += " "
			}
			s += fmt.Sprintf("%d", l)
		}
		s += " 0\n"
	}
	return s
}
