package lock

import (
	"math/rand"

	"github.com/xDarkicex/satlock/circuit"
)

// addDummyLogic inserts two decoy gates at pos: an or of two random primary
// inputs, and a nand of that or's result with a third random primary input.
// Neither gate is wired into anything yet; callers feed name1 into a mux as
// the decoy operand, leaving the nand as plausible-looking fan-out.
func addDummyLogic(c *circuit.Circuit, name1, name2 string, pos int, rng *rand.Rand) {
	randomInput := func() string { return c.InputGates[rng.Intn(len(c.InputGates))] }

	c.InsertGateAt(pos, &circuit.Gate{
		Name:   name1,
		Op:     circuit.OpOr,
		Inputs: []string{randomInput(), randomInput()},
	})
	c.InsertGateAt(pos+1, &circuit.Gate{
		Name:   name2,
		Op:     circuit.OpNand,
		Inputs: []string{name1, randomInput()},
	})
}

// addMuxGate inserts a mux gate named muxName immediately before nextG and
// rewires nextG's existing reference to prevG1 so that it reads muxName
// instead. The mux chooses between prevG1 and prevG2 under keyG; when
// keyVal is true the two are inserted in reversed order, so that the
// correct key value always selects prevG1 (the genuine signal) regardless
// of which operand position it started in.
func addMuxGate(c *circuit.Circuit, muxName, nextG, prevG1, prevG2, keyG string, keyVal bool, pos int) {
	next, ok := c.Gate(nextG)
	if ok {
		for i, in := range next.Inputs {
			if in == prevG1 {
				next.Inputs[i] = muxName
				break
			}
		}
	}

	inputs := []string{prevG1, prevG2}
	if keyVal {
		inputs[0], inputs[1] = inputs[1], inputs[0]
	}
	inputs = append(inputs, keyG)

	c.InsertGateAt(pos, &circuit.Gate{Name: muxName, Op: circuit.OpMux, Inputs: inputs})
}
