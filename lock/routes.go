package lock

import (
	"math/rand"
	"sort"
)

// findRoutesUtil performs a backtracking depth-first walk from u, recording
// a route the instant it reaches maxLen nodes regardless of whether u is a
// sink. route is extended by value on each call, so returning from a branch
// implicitly restores the caller's path; only the shared visited set needs
// explicit unmarking.
func findRoutesUtil(graph map[string][]string, u string, visited map[string]bool, route []string, maxLen int, routes *[][]string) {
	visited[u] = true
	route = append(route, u)

	if len(route) == maxLen {
		*routes = append(*routes, append([]string(nil), route...))
	} else {
		for _, v := range graph[u] {
			if !visited[v] {
				findRoutesUtil(graph, v, visited, route, maxLen, routes)
			}
		}
	}

	visited[u] = false
}

// FindRoutes searches graph for up to maxRoutes node-disjoint paths of
// exactly maxLen nodes, each usable as a key-gated insertion cycle.
// Candidate starting nodes are drawn at random (via rng) from every graph
// node except the names in exclude (the circuit's primary inputs); each
// candidate is tried once and discarded whether or not it yields an
// accepted route. Every disjoint path found from one candidate's walk is
// accepted, not just the first.
func FindRoutes(graph map[string][]string, exclude []string, maxLen, maxRoutes int, rng *rand.Rand) [][]string {
	excluded := make(map[string]bool, len(exclude))
	for _, n := range exclude {
		excluded[n] = true
	}

	var candidates []string
	for name := range graph {
		if !excluded[name] {
			candidates = append(candidates, name)
		}
	}
	// Map iteration order varies per run; sort so a fixed rng seed always
	// sees the same candidate pool.
	sort.Strings(candidates)

	var routes [][]string
	used := make(map[string]bool)

	for len(candidates) > 0 && len(routes) < maxRoutes {
		idx := rng.Intn(len(candidates))
		u := candidates[idx]
		candidates = append(candidates[:idx], candidates[idx+1:]...)

		var found [][]string
		findRoutesUtil(graph, u, make(map[string]bool, len(graph)), nil, maxLen, &found)

		for _, route := range found {
			if disjointFrom(route, used) {
				routes = append(routes, route)
				for _, n := range route {
					used[n] = true
				}
				if len(routes) == maxRoutes {
					return routes
				}
			}
		}
	}

	return routes
}

func disjointFrom(route []string, used map[string]bool) bool {
	for _, n := range route {
		if used[n] {
			return false
		}
	}
	return true
}
