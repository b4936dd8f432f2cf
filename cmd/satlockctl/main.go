// Command satlockctl locks and attacks bench-format combinational circuits
// from the command line. It is a thin wrapper around the satlock package:
// all the real work happens in-process, this just parses flags, reads
// files, and prints results.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/xDarkicex/satlock"
	"github.com/xDarkicex/satlock/attack"
	"github.com/xDarkicex/satlock/lock"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "lock":
		err = runLock(os.Args[2:])
	case "attack":
		err = runAttack(os.Args[2:])
	case "simulate":
		err = runSimulate(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "satlockctl:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: satlockctl <lock|attack|simulate> [flags]")
}

func runLock(args []string) error {
	fs := flag.NewFlagSet("lock", flag.ExitOnError)
	in := fs.String("in", "", "input bench file")
	out := fs.String("out", "", "output bench file (default: stdout)")
	key := fs.String("key", "", "key bits, e.g. 1011")
	maxRouteLen := fs.Int("route-len", 4, "max route length")
	maxRoutes := fs.Int("routes", 8, "max number of routes")
	seed := fs.Int64("seed", 1, "PRNG seed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c, closeFn, err := readCircuit(*in)
	if err != nil {
		return err
	}
	defer closeFn()

	keyBits, err := parseBits(*key)
	if err != nil {
		return fmt.Errorf("parsing -key: %w", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	if err := lock.Lock(c, keyBits, lock.WithRand(rng), lock.WithMaxRouteLen(*maxRouteLen), lock.WithMaxRoutes(*maxRoutes)); err != nil {
		return fmt.Errorf("locking circuit: %w", err)
	}

	return writeCircuit(*out, c)
}

func runAttack(args []string) error {
	fs := flag.NewFlagSet("attack", flag.ExitOnError)
	in := fs.String("in", "", "locked bench file")
	key := fs.String("oracle-key", "", "key bits the oracle simulates activation with")
	solverName := fs.String("solver", "gini", "SAT backend: gini, m22, dpll")
	limit := fs.Int("limit", 100, "max distinguishing-input iterations")
	verbose := fs.Bool("v", false, "log iteration progress")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c, closeFn, err := readCircuit(*in)
	if err != nil {
		return err
	}
	defer closeFn()

	keyBits, err := parseBits(*key)
	if err != nil {
		return fmt.Errorf("parsing -oracle-key: %w", err)
	}

	solver, err := satlock.NewSolver(*solverName)
	if err != nil {
		return err
	}

	oracle := &satlock.CircuitOracle{Circuit: c.Clone(), Key: keyBits}
	result, err := attack.Run(c, oracle,
		attack.WithSolver(solver),
		attack.WithLimit(*limit),
		attack.WithVerbose(*verbose),
		attack.WithLogger(logrus.StandardLogger()),
	)
	if err != nil {
		return fmt.Errorf("running attack: %w", err)
	}

	fmt.Printf("iterations: %d\n", result.Iterations)
	fmt.Printf("converged: %v\n", result.Converged)
	fmt.Printf("estimated key: %s\n", formatBits(result.Key))
	if result.SuccessRate >= 0 {
		fmt.Printf("success rate: %.2f%%\n", result.SuccessRate)
	}
	return nil
}

func runSimulate(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	in := fs.String("in", "", "bench file")
	key := fs.String("key", "", "key bits, if the circuit is locked")
	inputs := fs.String("inputs", "", "primary input bits, in INPUT() declaration order")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c, closeFn, err := readCircuit(*in)
	if err != nil {
		return err
	}
	defer closeFn()

	inputBits, err := parseBits(*inputs)
	if err != nil {
		return fmt.Errorf("parsing -inputs: %w", err)
	}
	if len(inputBits) != len(c.InputGates) {
		return fmt.Errorf("circuit has %d primary inputs, got %d", len(c.InputGates), len(inputBits))
	}

	assignment := make(map[string]bool, len(c.InputGates))
	for i, name := range c.InputGates {
		assignment[name] = inputBits[i]
	}

	var keyBits []bool
	if *key != "" {
		keyBits, err = parseBits(*key)
		if err != nil {
			return fmt.Errorf("parsing -key: %w", err)
		}
	}

	out, err := c.SimulateLocked(assignment, keyBits)
	if err != nil {
		return err
	}

	fmt.Printf("outputs: %s\n", formatBits(out))
	return nil
}

func readCircuit(path string) (*satlock.Circuit, func(), error) {
	if path == "" {
		c, err := satlock.Parse(os.Stdin)
		return c, func() {}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, func() {}, err
	}
	c, err := satlock.Parse(f)
	return c, func() { f.Close() }, err
}

func writeCircuit(path string, c *satlock.Circuit) error {
	if path == "" {
		return c.Emit(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return c.Emit(f)
}

func parseBits(s string) ([]bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	bits := make([]bool, len(s))
	for i, r := range s {
		switch r {
		case '0':
			bits[i] = false
		case '1':
			bits[i] = true
		default:
			return nil, fmt.Errorf("invalid bit %q at position %d", r, i)
		}
	}
	return bits, nil
}

func formatBits(bits []bool) string {
	var sb strings.Builder
	for _, b := range bits {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
