package circuit

import "errors"

// ErrParse indicates a malformed bench-format line. Parsing errors are
// fatal: the caller gets back no circuit at all.
var ErrParse = errors.New("circuit: malformed bench line")

// ErrUnknownOp indicates a gate operation outside the closed set this
// package understands ({input, buf, not, and, nand, or, nor, xor, xnor,
// mux}).
var ErrUnknownOp = errors.New("circuit: unknown gate operation")

// ErrUnresolvedInput indicates a gate references an input name that was
// never declared, violating the invariant that every name in some
// Gate.Inputs appears in the circuit's gate collection.
var ErrUnresolvedInput = errors.New("circuit: gate references undeclared input")

// ErrMissingInput indicates Simulate was called without a value for one of
// the circuit's primary or key inputs.
var ErrMissingInput = errors.New("circuit: missing input assignment")

// ErrKeyLengthMismatch indicates a key bit vector's length does not match
// the circuit's number of key gates.
var ErrKeyLengthMismatch = errors.New("circuit: key length does not match number of key gates")
