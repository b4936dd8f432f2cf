package circuit

import (
	"strings"
	"testing"
)

const simpleBench = `#10
INPUT(a)
INPUT(b)
INPUT(keyb0)
OUTPUT(y)

t1 = xor(a, b)
y = mux(t1, a, keyb0)
`

func TestParseBasic(t *testing.T) {
	c, err := Parse(strings.NewReader(simpleBench))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got, want := c.InputGates, []string{"a", "b"}; !equalStrings(got, want) {
		t.Errorf("InputGates = %v, want %v", got, want)
	}
	if got, want := c.KeyGates, []string{"keyb0"}; !equalStrings(got, want) {
		t.Errorf("KeyGates = %v, want %v", got, want)
	}
	if got, want := c.OutputGates, []string{"y"}; !equalStrings(got, want) {
		t.Errorf("OutputGates = %v, want %v", got, want)
	}
	if len(c.CorrectKey) != 2 || !c.CorrectKey[0] || c.CorrectKey[1] {
		t.Errorf("CorrectKey = %v, want [true false]", c.CorrectKey)
	}

	g, ok := c.Gate("y")
	if !ok || g.Op != OpMux {
		t.Fatalf("gate y = %+v, ok=%v, want mux", g, ok)
	}
}

func TestParseRejectsUnknownOp(t *testing.T) {
	_, err := Parse(strings.NewReader("INPUT(a)\nOUTPUT(z)\nz = frobnicate(a)\n"))
	if err == nil {
		t.Fatal("Parse: expected error for unknown op, got nil")
	}
}

func TestSimulateMatchesHandComputation(t *testing.T) {
	c, err := Parse(strings.NewReader(simpleBench))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	for _, tc := range []struct {
		a, b, k bool
		want    bool
	}{
		{false, false, false, false}, // t1=xor(0,0)=0, sel=0 -> y=t1=0
		{true, false, false, true},   // t1=xor(1,0)=1, sel=0 -> y=t1=1
		{true, false, true, true},    // t1=xor(1,0)=1, sel=1 -> y=a=1
		{false, true, true, false},   // t1=xor(0,1)=1, sel=1 -> y=a=0
	} {
		out, err := c.Simulate(map[string]bool{"a": tc.a, "b": tc.b, "keyb0": tc.k})
		if err != nil {
			t.Fatalf("Simulate(%v): %v", tc, err)
		}
		if out["y"] != tc.want {
			t.Errorf("Simulate(a=%v,b=%v,keyb0=%v) y = %v, want %v", tc.a, tc.b, tc.k, out["y"], tc.want)
		}
	}
}

func TestSimplifyLowersMuxAndWideGates(t *testing.T) {
	c, err := Parse(strings.NewReader(simpleBench))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	before := make(map[string]bool, len(c.InputGates)+len(c.KeyGates))
	assignment := map[string]bool{"a": true, "b": false, "keyb0": true}
	for k, v := range assignment {
		before[k] = v
	}
	wantOut, err := c.Simulate(before)
	if err != nil {
		t.Fatalf("Simulate before Simplify: %v", err)
	}

	if err := c.Simplify(); err != nil {
		t.Fatalf("Simplify: %v", err)
	}

	for _, name := range c.order {
		g, _ := c.Gate(name)
		if g.Op == OpMux {
			t.Errorf("gate %q still mux after Simplify", name)
		}
		if len(g.Inputs) > 2 {
			t.Errorf("gate %q still has %d inputs after Simplify", name, len(g.Inputs))
		}
	}

	gotOut, err := c.Simulate(assignment)
	if err != nil {
		t.Fatalf("Simulate after Simplify: %v", err)
	}
	if gotOut["y"] != wantOut["y"] {
		t.Errorf("Simplify changed semantics: y = %v, want %v", gotOut["y"], wantOut["y"])
	}

	// Simplify must be idempotent.
	orderBefore := append([]string(nil), c.order...)
	if err := c.Simplify(); err != nil {
		t.Fatalf("second Simplify: %v", err)
	}
	if !equalStrings(c.order, orderBefore) {
		t.Errorf("Simplify is not idempotent: order changed from %v to %v", orderBefore, c.order)
	}
}

func TestToCNFMatchesSimulation(t *testing.T) {
	c, err := Parse(strings.NewReader(simpleBench))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := c.Simplify(); err != nil {
		t.Fatalf("Simplify: %v", err)
	}

	clauses, err := c.ToCNF()
	if err != nil {
		t.Fatalf("ToCNF: %v", err)
	}
	if len(clauses) == 0 {
		t.Fatal("ToCNF: expected at least one clause")
	}

	assignment := map[string]bool{"a": true, "b": false, "keyb0": true}
	vals, err := c.Simulate(assignment)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	lit := func(name string) int { return c.Lits[name] }
	for _, cl := range clauses {
		ok := false
		for _, l := range cl {
			var name string
			for n, v := range c.Lits {
				if v == abs(int(l)) {
					name = n
					break
				}
			}
			want := vals[name]
			if int(l) < 0 {
				want = !want
			}
			if want {
				ok = true
				break
			}
		}
		if !ok {
			t.Errorf("clause %v unsatisfied by simulation assignment (lit(a)=%d)", cl, lit("a"))
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestCloneIsIndependent(t *testing.T) {
	c, err := Parse(strings.NewReader(simpleBench))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cp := c.Clone()
	cp.Lits["a"] = 999
	if c.Lits["a"] == 999 {
		t.Fatal("Clone: mutating copy's Lits affected original")
	}

	g, _ := cp.Gate("y")
	g.Inputs[0] = "mutated"
	orig, _ := c.Gate("y")
	if orig.Inputs[0] == "mutated" {
		t.Fatal("Clone: mutating copy's gate affected original")
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSimplifyFourInputAnd(t *testing.T) {
	c, err := Parse(strings.NewReader(`INPUT(a)
INPUT(b)
INPUT(c)
INPUT(d)
OUTPUT(y)

y = and(a, b, c, d)
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := c.Simplify(); err != nil {
		t.Fatalf("Simplify: %v", err)
	}

	ands := 0
	for _, name := range c.order {
		g, _ := c.Gate(name)
		if g.Op == OpAnd {
			ands++
			if len(g.Inputs) != 2 {
				t.Errorf("gate %q has %d inputs, want 2", name, len(g.Inputs))
			}
		}
	}
	if ands != 3 {
		t.Errorf("Simplify produced %d and gates, want 3", ands)
	}

	for i, name := range c.order {
		if c.Lits[name] != i+1 {
			t.Errorf("literal for %q = %d, want %d (insertion order)", name, c.Lits[name], i+1)
		}
	}

	for row := 0; row < 16; row++ {
		in := map[string]bool{
			"a": row&1 != 0,
			"b": row&2 != 0,
			"c": row&4 != 0,
			"d": row&8 != 0,
		}
		vals, err := c.Simulate(in)
		if err != nil {
			t.Fatalf("Simulate(%v): %v", in, err)
		}
		want := in["a"] && in["b"] && in["c"] && in["d"]
		if vals["y"] != want {
			t.Errorf("Simulate(%v) y = %v, want %v", in, vals["y"], want)
		}
	}
}

func TestSimplifyMuxLoweringShape(t *testing.T) {
	c, err := Parse(strings.NewReader(`INPUT(a)
INPUT(b)
INPUT(s)
OUTPUT(y)

y = mux(a, b, s)
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := c.Simplify(); err != nil {
		t.Fatalf("Simplify: %v", err)
	}

	for name, wantOp := range map[string]Op{
		"g_0": OpNot,
		"g_1": OpAnd,
		"g_2": OpAnd,
		"y":   OpOr,
	} {
		g, ok := c.Gate(name)
		if !ok {
			t.Fatalf("gate %q missing after mux lowering", name)
		}
		if g.Op != wantOp {
			t.Errorf("gate %q op = %v, want %v", name, g.Op, wantOp)
		}
	}

	for row := 0; row < 8; row++ {
		in := map[string]bool{
			"a": row&1 != 0,
			"b": row&2 != 0,
			"s": row&4 != 0,
		}
		vals, err := c.Simulate(in)
		if err != nil {
			t.Fatalf("Simulate(%v): %v", in, err)
		}
		want := in["a"]
		if in["s"] {
			want = in["b"]
		}
		if vals["y"] != want {
			t.Errorf("Simulate(%v) y = %v, want %v", in, vals["y"], want)
		}
	}
}

func TestEmitParseRoundTrip(t *testing.T) {
	c, err := Parse(strings.NewReader(simpleBench))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var buf strings.Builder
	if err := c.Emit(&buf); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	back, err := Parse(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("Parse(Emit(c)): %v", err)
	}

	if !equalStrings(back.InputGates, c.InputGates) {
		t.Errorf("InputGates = %v, want %v", back.InputGates, c.InputGates)
	}
	if !equalStrings(back.KeyGates, c.KeyGates) {
		t.Errorf("KeyGates = %v, want %v", back.KeyGates, c.KeyGates)
	}
	if !equalStrings(back.OutputGates, c.OutputGates) {
		t.Errorf("OutputGates = %v, want %v", back.OutputGates, c.OutputGates)
	}
	if len(back.CorrectKey) != len(c.CorrectKey) {
		t.Fatalf("CorrectKey = %v, want %v", back.CorrectKey, c.CorrectKey)
	}
	for i := range c.CorrectKey {
		if back.CorrectKey[i] != c.CorrectKey[i] {
			t.Errorf("CorrectKey[%d] = %v, want %v", i, back.CorrectKey[i], c.CorrectKey[i])
		}
	}

	for _, name := range c.order {
		orig, _ := c.Gate(name)
		got, ok := back.Gate(name)
		if !ok {
			t.Fatalf("gate %q lost in round trip", name)
		}
		if got.Op != orig.Op || !equalStrings(got.Inputs, orig.Inputs) {
			t.Errorf("gate %q = %v(%v), want %v(%v)", name, got.Op, got.Inputs, orig.Op, orig.Inputs)
		}
	}
}
