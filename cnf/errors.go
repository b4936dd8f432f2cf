package cnf

import "errors"

// ErrUnencodableOp indicates an operation this package cannot lower to
// clauses directly: mux must be simplified away to and/or/not first, and any
// operation name outside the 2-input normal form vocabulary is rejected.
var ErrUnencodableOp = errors.New("cnf: operation cannot be Tseytin-encoded directly")

// ErrArity indicates Encode was called with the wrong number of input
// literals for the requested operation.
var ErrArity = errors.New("cnf: wrong number of inputs for operation")
