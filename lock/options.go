package lock

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Options configures a Lock call.
type Options struct {
	MaxRouteLen int
	MaxRoutes   int
	Rand        *rand.Rand
	Logger      logrus.FieldLogger
}

// Option mutates an Options in place.
type Option func(*Options)

// WithMaxRouteLen caps the number of nodes in a single insertion route.
func WithMaxRouteLen(n int) Option {
	return func(o *Options) { o.MaxRouteLen = n }
}

// WithMaxRoutes caps how many disjoint routes the locking engine will
// insert key-gated cycles along.
func WithMaxRoutes(n int) Option {
	return func(o *Options) { o.MaxRoutes = n }
}

// WithRand overrides the source of randomness used to pick candidate nodes
// and dummy-logic operands. Supplying a seeded generator makes Lock's
// output reproducible.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithLogger overrides the logger Lock reports degraded-mode warnings to.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

func defaults() Options {
	return Options{
		MaxRouteLen: 4,
		MaxRoutes:   8,
		Rand:        rand.New(rand.NewSource(1)),
		Logger:      logrus.StandardLogger(),
	}
}
