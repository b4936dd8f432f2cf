// Package circuit implements the combinational circuit data model: gates,
// their wiring, the literal numbering used by the CNF encoder, simulation,
// simplification to 2-input normal form, and bench-format parsing/emission.
package circuit

import (
	"fmt"
	"strings"
)

// Circuit is an ordered collection of gates. Insertion order (recorded in
// order, since a Go map has none) drives literal numbering and textual
// emission. InputGates, OutputGates, and KeyGates are name sublists;
// KeyGates is determined purely by the textual convention that a key gate's
// name contains the letter 'k'.
type Circuit struct {
	gates    map[string]*Gate
	order    []string
	isLocked bool

	InputGates  []string
	OutputGates []string
	KeyGates    []string

	// Lits is the literal map: a bijection between gate names and
	// {1..len(order)}, assigned in circuit order. It is populated by Parse
	// and again by Simplify after rewriting, and consulted by ToCNF and the
	// attack engine.
	Lits map[string]int

	// CorrectKey is the key bit vector baked into a locked circuit, in
	// KeyGates order. Empty for unlocked circuits.
	CorrectKey []bool
}

// New returns an empty circuit ready for AddGate calls.
func New() *Circuit {
	return &Circuit{
		gates: make(map[string]*Gate),
		Lits:  make(map[string]int),
	}
}

// IsKeyName reports whether name follows the sole key-identity convention
// this package recognizes: the letter 'k' appears in the (lower-cased)
// name.
func IsKeyName(name string) bool {
	return strings.Contains(strings.ToLower(name), "k")
}

// AddGate appends g to the circuit, preserving insertion order. It does not
// validate that g's inputs already exist — callers building a circuit
// incrementally (e.g. the locking engine) routinely wire forward
// references before the referenced gate is itself appended. Use Validate
// once construction is complete.
func (c *Circuit) AddGate(g *Gate) {
	if _, exists := c.gates[g.Name]; !exists {
		c.order = append(c.order, g.Name)
	}
	c.gates[g.Name] = g
}

// InsertGateAt inserts g into the ordering at position pos (0-based),
// shifting later gates back. Used by the locking engine, which must place
// mux and dummy gates immediately before the node they feed.
func (c *Circuit) InsertGateAt(pos int, g *Gate) {
	c.gates[g.Name] = g
	c.order = append(c.order, "")
	copy(c.order[pos+1:], c.order[pos:])
	c.order[pos] = g.Name
}

// IndexOf returns the position of name in the circuit's ordering, or -1.
func (c *Circuit) IndexOf(name string) int {
	for i, n := range c.order {
		if n == name {
			return i
		}
	}
	return -1
}

// Gate returns the gate named name, if present.
func (c *Circuit) Gate(name string) (*Gate, bool) {
	g, ok := c.gates[name]
	return g, ok
}

// Order returns the circuit's gates in insertion order. The returned slice
// must not be mutated.
func (c *Circuit) Order() []string {
	return c.order
}

// Len returns the number of gates in the circuit.
func (c *Circuit) Len() int {
	return len(c.order)
}

// Validate checks the acyclicity-independent structural invariant that
// every name referenced in some gate's Inputs is itself a known gate.
func (c *Circuit) Validate() error {
	for _, name := range c.order {
		g := c.gates[name]
		for _, in := range g.Inputs {
			if _, ok := c.gates[in]; !ok {
				return ErrUnresolvedInput
			}
		}
	}
	return nil
}

// KeyLiterals returns the subset of Lits whose gate names are key gates.
func (c *Circuit) KeyLiterals() map[string]int {
	return subsetLiterals(c.Lits, c.KeyGates)
}

// InputLiterals returns the subset of Lits whose gate names are primary
// inputs.
func (c *Circuit) InputLiterals() map[string]int {
	return subsetLiterals(c.Lits, c.InputGates)
}

// OutputLiterals returns the subset of Lits whose gate names are outputs.
func (c *Circuit) OutputLiterals() map[string]int {
	return subsetLiterals(c.Lits, c.OutputGates)
}

func subsetLiterals(lits map[string]int, names []string) map[string]int {
	out := make(map[string]int, len(names))
	for _, n := range names {
		if l, ok := lits[n]; ok {
			out[n] = l
		}
	}
	return out
}

// Lock embeds key into the circuit as a sequence of fresh k0, k1, ...
// primary inputs inserted right after the existing primary inputs, and
// records it as the circuit's CorrectKey. It does not by itself wire those
// inputs into any gate; the locking engine is responsible for threading
// them into mux gates along the routes it selects.
func (c *Circuit) Lock(key []bool) {
	c.CorrectKey = append([]bool(nil), key...)
	c.isLocked = true

	pos := len(c.InputGates)
	for i := range key {
		name := fmt.Sprintf("k%d", i)
		c.InsertGateAt(pos+i, &Gate{Name: name, Op: OpInput})
		c.KeyGates = append(c.KeyGates, name)
	}
}

// IsLocked reports whether Lock has been called on this circuit.
func (c *Circuit) IsLocked() bool {
	return c.isLocked
}

// AssignLiterals numbers every gate 1..len(order) in circuit order,
// overwriting Lits. Called by Parse for every parsed circuit and by Simplify
// after rewriting.
func (c *Circuit) AssignLiterals() {
	c.Lits = make(map[string]int, len(c.order))
	for i, name := range c.order {
		c.Lits[name] = i + 1
	}
}

// Clone returns a deep copy of the circuit: independent gates, ordering,
// and literal map, sharing no backing arrays with the receiver. The attack
// engine relies on this to build the paired and per-DIP copies the miter
// loop needs without ever aliasing state between them.
func (c *Circuit) Clone() *Circuit {
	cp := &Circuit{
		gates:       make(map[string]*Gate, len(c.gates)),
		order:       append([]string(nil), c.order...),
		isLocked:    c.isLocked,
		InputGates:  append([]string(nil), c.InputGates...),
		OutputGates: append([]string(nil), c.OutputGates...),
		KeyGates:    append([]string(nil), c.KeyGates...),
		Lits:        make(map[string]int, len(c.Lits)),
		CorrectKey:  append([]bool(nil), c.CorrectKey...),
	}
	for name, g := range c.gates {
		cp.gates[name] = g.Clone()
	}
	for k, v := range c.Lits {
		cp.Lits[k] = v
	}
	return cp
}
