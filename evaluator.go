package satlock

import "github.com/xDarkicex/satlock/circuit"

// Builder provides a fluent interface for assembling a Circuit directly in
// Go, without going through the bench text format. It maintains an
// internal circuit and allows gate declarations to be chained together in
// a readable, method-chaining style.
//
// Example:
//
//	c, err := NewBuilder().
//		Input("a").Input("b").Input("keyb0").
//		Output("y").
//		Gate("y", OpXor, "a", "keyb0").
//		Build()
type Builder struct {
	c   *circuit.Circuit
	err error
}

// NewBuilder starts an empty circuit under construction.
func NewBuilder() *Builder {
	return &Builder{c: circuit.New()}
}

// Input declares a primary or key input, classified by name the same way
// Parse does.
func (b *Builder) Input(name string) *Builder {
	b.c.AddGate(&circuit.Gate{Name: name, Op: circuit.OpInput})
	if circuit.IsKeyName(name) {
		b.c.KeyGates = append(b.c.KeyGates, name)
	} else {
		b.c.InputGates = append(b.c.InputGates, name)
	}
	return b
}

// Output marks name as one of the circuit's outputs.
func (b *Builder) Output(name string) *Builder {
	b.c.OutputGates = append(b.c.OutputGates, name)
	return b
}

// Gate declares a gate named name computing op over inputs.
func (b *Builder) Gate(name string, op circuit.Op, inputs ...string) *Builder {
	b.c.AddGate(&circuit.Gate{Name: name, Op: op, Inputs: inputs})
	return b
}

// Build validates the circuit built so far, assigns its literal numbering,
// and returns it.
func (b *Builder) Build() (*circuit.Circuit, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.c.Validate(); err != nil {
		return nil, err
	}
	b.c.AssignLiterals()
	return b.c, nil
}
