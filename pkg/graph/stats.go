package graph

// Stats summarizes the shape of a graph
type Stats struct {
	Nodes   int     // n
	Edges   int     // m, edges whose endpoints both exist
	Groups  int     // g, distinct non-empty group IDs
	Density float64 // m / (n(n-1)/2), 0 when n <= 1
}

// Stats computes node, edge and group counts plus density
func (g *Graph) Stats() Stats {
	s := Stats{
		Nodes: len(g.nodes),
		Edges: len(g.links),
	}

	s.Groups = len(g.Groups())

	if s.Nodes > 1 {
		pairs := float64(s.Nodes) * float64(s.Nodes-1) / 2
		s.Density = float64(s.Edges) / pairs
	}

	return s
}

// Groups returns the distinct non-empty group IDs in order of first appearance
func (g *Graph) Groups() []GroupID {
	seen := make(map[GroupID]bool)
	groups := make([]GroupID, 0)
	for _, n := range g.nodes {
		if n.Group == "" || seen[n.Group] {
			continue
		}
		seen[n.Group] = true
		groups = append(groups, n.Group)
	}
	return groups
}
