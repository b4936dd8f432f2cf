package attack

import (
	"github.com/sirupsen/logrus"

	"github.com/xDarkicex/satlock/satsolver"
)

// Options configures a Run call. The zero value is not meaningful on its
// own; Run starts from built-in defaults and applies Option functions on top.
type Options struct {
	Solver  satsolver.Solver
	Limit   int
	Logger  logrus.FieldLogger
	Verbose bool
}

// Option mutates an Options in place.
type Option func(*Options)

// WithSolver selects the SAT backend used for every query in the attack
// loop. Defaults to the gini-backed CDCL solver.
func WithSolver(s satsolver.Solver) Option {
	return func(o *Options) { o.Solver = s }
}

// WithLimit caps the number of distinguishing-input iterations Run will
// perform before giving up and reporting its best estimate so far. Zero or
// negative means unbounded.
func WithLimit(n int) Option {
	return func(o *Options) { o.Limit = n }
}

// WithLogger overrides the logger Run reports iteration progress to.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithVerbose enables per-iteration progress logging.
func WithVerbose(v bool) Option {
	return func(o *Options) { o.Verbose = v }
}

func defaults() Options {
	return Options{
		Solver:  satsolver.NewGini(),
		Limit:   100,
		Logger:  logrus.StandardLogger(),
		Verbose: false,
	}
}
