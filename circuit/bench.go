package circuit

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads one bench-format circuit from r: one directive per
// non-empty, non-comment line, case-insensitive and whitespace-tolerant.
// Recognized directives are INPUT(name), OUTPUT(name), and
// name = op(arg1[, arg2, ...]). A gate name containing the letter 'k' is
// classified as a key input rather than a primary input. A leading line of
// the form #<bits>, where <bits> is entirely 0/1 digits, records the
// circuit's correct key.
func Parse(r io.Reader) (*Circuit, error) {
	c := New()
	keySeen := false
	directiveSeen := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		if raw[0] == '#' {
			if !keySeen && !directiveSeen {
				if key, ok := parseKeyComment(raw); ok {
					c.CorrectKey = key
					keySeen = true
				}
			}
			continue
		}
		directiveSeen = true

		line := strings.ToLower(raw)
		switch {
		case strings.HasPrefix(line, "input("):
			name, err := extractParen(line, "input(")
			if err != nil {
				return nil, err
			}
			c.AddGate(&Gate{Name: name, Op: OpInput})
			if IsKeyName(name) {
				c.KeyGates = append(c.KeyGates, name)
			} else {
				c.InputGates = append(c.InputGates, name)
			}

		case strings.HasPrefix(line, "output("):
			name, err := extractParen(line, "output(")
			if err != nil {
				return nil, err
			}
			c.OutputGates = append(c.OutputGates, name)

		default:
			g, err := parseAssignment(line)
			if err != nil {
				return nil, err
			}
			c.AddGate(g)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	c.AssignLiterals()
	return c, nil
}

// parseKeyComment recognizes a bare "#<bits>" comment line where <bits> is
// entirely 0/1 digits, returning its bool vector.
func parseKeyComment(line string) ([]bool, bool) {
	rest := strings.TrimSpace(line[1:])
	if rest == "" {
		return nil, false
	}
	key := make([]bool, len(rest))
	for i, r := range rest {
		switch r {
		case '0':
			key[i] = false
		case '1':
			key[i] = true
		default:
			return nil, false
		}
	}
	return key, true
}

func extractParen(line, prefix string) (string, error) {
	if !strings.HasSuffix(line, ")") {
		return "", fmt.Errorf("%w: %q: missing closing paren", ErrParse, line)
	}
	name := strings.TrimSpace(line[len(prefix) : len(line)-1])
	if name == "" {
		return "", fmt.Errorf("%w: %q: empty name", ErrParse, line)
	}
	return name, nil
}

// parseAssignment parses a "name = op(arg1, arg2, ...)" line.
func parseAssignment(line string) (*Gate, error) {
	eq := strings.Index(line, "=")
	if eq < 0 {
		return nil, fmt.Errorf("%w: %q: expected '=' in assignment", ErrParse, line)
	}
	name := strings.TrimSpace(line[:eq])
	rhs := strings.TrimSpace(line[eq+1:])

	paren := strings.Index(rhs, "(")
	if paren < 0 || !strings.HasSuffix(rhs, ")") {
		return nil, fmt.Errorf("%w: %q: malformed operation call", ErrParse, line)
	}
	opStr := strings.TrimSpace(rhs[:paren])
	op, err := ParseOp(opStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrParse, line, err)
	}

	argStr := rhs[paren+1 : len(rhs)-1]
	var inputs []string
	if strings.TrimSpace(argStr) != "" {
		for _, a := range strings.Split(argStr, ",") {
			inputs = append(inputs, strings.TrimSpace(a))
		}
	}

	return &Gate{Name: name, Op: op, Inputs: inputs}, nil
}

// Emit writes c back out in bench format: the correct-key comment (if any),
// primary inputs, then key inputs, then outputs, then every non-input gate
// in circuit order. It is the inverse of Parse up to literal renumbering.
func (c *Circuit) Emit(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if len(c.CorrectKey) > 0 {
		var sb strings.Builder
		sb.WriteByte('#')
		for _, b := range c.CorrectKey {
			if b {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		if _, err := fmt.Fprintln(bw, sb.String()); err != nil {
			return err
		}
	}

	for _, name := range c.InputGates {
		if _, err := fmt.Fprintf(bw, "INPUT(%s)\n", name); err != nil {
			return err
		}
	}
	for _, name := range c.KeyGates {
		if _, err := fmt.Fprintf(bw, "INPUT(%s)\n", name); err != nil {
			return err
		}
	}
	for _, name := range c.OutputGates {
		if _, err := fmt.Fprintf(bw, "OUTPUT(%s)\n", name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}

	for _, name := range c.order {
		g := c.gates[name]
		if g.Op == OpInput {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s = %s(%s)\n", g.Name, g.Op, strings.Join(g.Inputs, ", ")); err != nil {
			return err
		}
	}

	return bw.Flush()
}
