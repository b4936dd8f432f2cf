// Package satlock is the top-level entry point for key-locked
// combinational circuit analysis: parsing bench-format circuits,
// simplifying and CNF-encoding them, embedding a key via cycle-based
// logic locking, and recovering a key via the oracle-guided SAT attack.
// Its subpackages (circuit, cnf, satsolver, lock, attack) can be used
// directly; this package re-exports the types and entry points most
// callers need so everyday use needs only one import.
package satlock

import (
	"io"

	"github.com/xDarkicex/satlock/attack"
	"github.com/xDarkicex/satlock/circuit"
	"github.com/xDarkicex/satlock/lock"
	"github.com/xDarkicex/satlock/satsolver"
)

// Type aliases for the data model most callers touch directly.
type (
	Circuit = circuit.Circuit
	Gate    = circuit.Gate
	Op      = circuit.Op
)

// Gate operation aliases, mirroring the bench format's vocabulary.
const (
	OpInput = circuit.OpInput
	OpBuf   = circuit.OpBuf
	OpNot   = circuit.OpNot
	OpAnd   = circuit.OpAnd
	OpNand  = circuit.OpNand
	OpOr    = circuit.OpOr
	OpNor   = circuit.OpNor
	OpXor   = circuit.OpXor
	OpXnor  = circuit.OpXnor
	OpMux   = circuit.OpMux
)

// Parse reads a bench-format circuit from r. See circuit.Parse.
func Parse(r io.Reader) (*Circuit, error) {
	return circuit.Parse(r)
}

// Lock embeds key into c as key-gated primary inputs and, where a suitable
// route exists, threads it through cyclic mux obfuscation. See lock.Lock.
func Lock(c *Circuit, key []bool, opts ...lock.Option) error {
	return lock.Lock(c, key, opts...)
}

// Attack recovers locked's key by iteratively querying oracle for
// distinguishing input patterns. See attack.Run.
func Attack(locked *Circuit, oracle attack.Oracle, opts ...attack.Option) (*attack.Result, error) {
	return attack.Run(locked, oracle, opts...)
}

// Oracle, Result, and the attack/lock Option constructors are re-exported
// so a caller wiring Attack or Lock rarely needs to import those
// subpackages by name just to configure them.
type (
	Oracle        = attack.Oracle
	CircuitOracle = attack.CircuitOracle
	AttackResult  = attack.Result
	AttackOption  = attack.Option
	LockOption    = lock.Option
	Solver        = satsolver.Solver
)

// NewSolver constructs a named SAT backend ("gini", "m22", or "dpll"). See
// satsolver.New.
func NewSolver(name string) (Solver, error) {
	return satsolver.New(name)
}
