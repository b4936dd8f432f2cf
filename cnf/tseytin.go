package cnf

import "fmt"

// Encode lowers a single 2-input-normal-form gate operation into the clauses
// asserting y == op(ins...). op names the same closed vocabulary as the
// circuit package's Op (passed as a plain string here to avoid a package
// cycle with circuit, which itself calls Encode): buf, not take exactly one
// input; and, nand, or, nor, xor, xnor take exactly two. mux, and any other
// name, are rejected with ErrUnencodableOp — mux must already have been
// lowered to not/and/or by the time a circuit reaches CNF encoding.
func Encode(op string, y Lit, ins ...Lit) (Clauses, error) {
	switch op {
	case "buf":
		if len(ins) != 1 {
			return nil, fmt.Errorf("%w: buf wants 1 input, got %d", ErrArity, len(ins))
		}
		a := ins[0]
		return Clauses{
			{-y, a},
			{y, -a},
		}, nil

	case "not":
		if len(ins) != 1 {
			return nil, fmt.Errorf("%w: not wants 1 input, got %d", ErrArity, len(ins))
		}
		a := ins[0]
		return Clauses{
			{-y, -a},
			{y, a},
		}, nil

	case "and":
		a, b, err := two(op, ins)
		if err != nil {
			return nil, err
		}
		return Clauses{
			{-y, a},
			{-y, b},
			{y, -a, -b},
		}, nil

	case "nand":
		a, b, err := two(op, ins)
		if err != nil {
			return nil, err
		}
		return Clauses{
			{y, a},
			{y, b},
			{-y, -a, -b},
		}, nil

	case "or":
		a, b, err := two(op, ins)
		if err != nil {
			return nil, err
		}
		return Clauses{
			{y, -a},
			{y, -b},
			{-y, a, b},
		}, nil

	case "nor":
		a, b, err := two(op, ins)
		if err != nil {
			return nil, err
		}
		return Clauses{
			{-y, -a},
			{-y, -b},
			{y, a, b},
		}, nil

	case "xor":
		a, b, err := two(op, ins)
		if err != nil {
			return nil, err
		}
		return Clauses{
			{-y, a, b},
			{-y, -a, -b},
			{y, -a, b},
			{y, a, -b},
		}, nil

	case "xnor":
		a, b, err := two(op, ins)
		if err != nil {
			return nil, err
		}
		return Clauses{
			{y, a, b},
			{y, -a, -b},
			{-y, -a, b},
			{-y, a, -b},
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnencodableOp, op)
	}
}

func two(op string, ins []Lit) (Lit, Lit, error) {
	if len(ins) != 2 {
		return 0, 0, fmt.Errorf("%w: %s wants 2 inputs, got %d", ErrArity, op, len(ins))
	}
	return ins[0], ins[1], nil
}
