// Package lock implements cycle-based logic locking: embedding a secret
// key as extra primary inputs and rewiring mux gates along randomly chosen,
// node-disjoint routes so that only the correct key reproduces the
// original combinational function, while wrong keys fall through to decoy
// logic or back-edges.
package lock

import (
	"fmt"
	"math/rand"

	"github.com/xDarkicex/satlock/circuit"
)

// retryBudget bounds how many times Lock re-runs the randomized route
// search before settling for fewer routes than requested.
const retryBudget = 100

// Lock embeds key into c and threads it through mux gates along randomly
// selected node-disjoint routes, forming the cyclic obfuscation structure.
// If the search cannot collect MaxRoutes disjoint routes within its retry
// budget, Lock logs a warning and proceeds with the routes it has; a
// circuit locked along fewer routes is still a valid (if weaker) locked
// circuit. The key must cover one bit per route node across all selected
// routes.
func Lock(c *circuit.Circuit, key []bool, opts ...Option) error {
	options := defaults()
	for _, opt := range opts {
		opt(&options)
	}

	graph := c.ToGraph()

	var routes [][]string
	for attempt := 0; attempt < retryBudget; attempt++ {
		routes = FindRoutes(graph, c.InputGates, options.MaxRouteLen, options.MaxRoutes, options.Rand)
		if len(routes) == options.MaxRoutes {
			break
		}
	}
	if len(routes) < options.MaxRoutes {
		options.Logger.WithError(ErrNoRoutes).Warnf("lock: found %d of %d routes, proceeding", len(routes), options.MaxRoutes)
	}

	need := 0
	for _, route := range routes {
		need += len(route)
	}
	if need > len(key) {
		return fmt.Errorf("%w: %d route positions, %d key bits", ErrKeyTooShort, need, len(key))
	}

	c.Lock(key)

	rCounter := 0
	for _, route := range routes {
		lockRoute(c, graph, route, key, rCounter, options.Rand)
		rCounter += len(route)
	}

	return nil
}

// lockRoute rewires one node-disjoint route into a key-gated cycle. Each
// position's mux chooses between the route's natural predecessor and a
// decoy signal; the correct key value always selects the predecessor. The
// first position closes the cycle by using the route's own last node as
// its alternate operand. When a route's predecessor node has only one
// fan-out edge in the original wiring, a second mux is threaded into a
// fresh dummy pair so a tampered copy of the predecessor propagates there
// too, rather than the lone rewired edge being trivially recoverable.
func lockRoute(c *circuit.Circuit, graph map[string][]string, route []string, key []bool, rCounter int, rng *rand.Rand) {
	for i, nextG := range route {
		j := rCounter + i
		muxName := fmt.Sprintf("m%d", j)
		keyG := fmt.Sprintf("k%d", j)
		keyVal := key[j]
		pos := c.IndexOf(nextG)

		if i == 0 {
			g, _ := c.Gate(nextG)
			prevG1 := g.Inputs[0]
			prevG2 := route[len(route)-1]
			addMuxGate(c, muxName, nextG, prevG1, prevG2, keyG, keyVal, pos)
			continue
		}

		dummy1 := fmt.Sprintf("d%d_a", j)
		dummy2 := fmt.Sprintf("d%d_b", j)
		addDummyLogic(c, dummy1, dummy2, pos, rng)
		prevG1 := route[i-1]
		prevG2 := dummy1
		pos = c.IndexOf(nextG)
		addMuxGate(c, muxName, nextG, prevG1, prevG2, keyG, keyVal, pos)

		if len(graph[route[i-1]]) == 1 {
			mdName := fmt.Sprintf("md%d", j)
			dd1 := fmt.Sprintf("dd%d_a", j)
			dd2 := fmt.Sprintf("dd%d_b", j)
			pos = c.IndexOf(nextG)
			addDummyLogic(c, dd1, dd2, pos, rng)
			pos = c.IndexOf(dd2)
			addMuxGate(c, mdName, dd2, dd1, route[i-1], keyG, keyVal, pos)
		}
	}
}
