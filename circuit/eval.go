package circuit

import "fmt"

// Eval evaluates a single gate operation over its input bits. Associative
// operations (and, or, xor, and their negations) reduce left to right over
// the full input list; xnor across more than two operands is the negation
// of the whole-vector xor parity, not a chain of pairwise xnors — chaining
// pairwise xnor is not associative and would not match the gate's truth
// table for three or more inputs.
func Eval(op Op, inputs []bool) (bool, error) {
	switch op {
	case OpBuf:
		return inputs[0], nil
	case OpNot:
		return !inputs[0], nil
	case OpAnd:
		return reduceAnd(inputs), nil
	case OpNand:
		return !reduceAnd(inputs), nil
	case OpOr:
		return reduceOr(inputs), nil
	case OpNor:
		return !reduceOr(inputs), nil
	case OpXor:
		return reduceXor(inputs), nil
	case OpXnor:
		return !reduceXor(inputs), nil
	case OpMux:
		a, b, s := inputs[0], inputs[1], inputs[2]
		if s {
			return b, nil
		}
		return a, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}
}

func reduceAnd(xs []bool) bool {
	res := xs[0]
	for _, x := range xs[1:] {
		res = res && x
	}
	return res
}

func reduceOr(xs []bool) bool {
	res := xs[0]
	for _, x := range xs[1:] {
		res = res || x
	}
	return res
}

func reduceXor(xs []bool) bool {
	res := xs[0]
	for _, x := range xs[1:] {
		res = res != x
	}
	return res
}
