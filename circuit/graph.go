package circuit

// ToGraph returns the circuit's fan-out adjacency: for every gate, the list
// of gate names that take it as a direct input. Primary inputs, key inputs,
// and internal gates all appear as keys provided at least one other gate
// reads them; a gate with no fan-out simply has no entry. The locking
// engine's route search walks this adjacency to find key-insertable paths.
func (c *Circuit) ToGraph() map[string][]string {
	graph := make(map[string][]string)
	for _, name := range c.order {
		g := c.gates[name]
		for _, in := range g.Inputs {
			graph[in] = append(graph[in], name)
		}
	}
	return graph
}
