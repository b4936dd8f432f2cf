package attack

import "errors"

// ErrOracleLengthMismatch indicates an Oracle returned a different number
// of output bits than the circuit under attack declares.
var ErrOracleLengthMismatch = errors.New("attack: oracle output length does not match circuit outputs")
