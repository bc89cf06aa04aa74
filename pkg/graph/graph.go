package graph

// Graph is an immutable set of nodes and edges.
//
// Nodes live in an arena addressed by index; every algorithm in this module
// works on indices and translates back to NodeIDs only at its boundary.
// Edges that reference unknown nodes are kept in Edges() but never resolved
// into Links, so algorithms never see them.
type Graph struct {
	nodes []Node
	edges []Edge
	index map[NodeID]int
	links []Link
	adj   [][]int
}

// New builds a graph from nodes and edges.
// When two nodes share an ID the first one wins. Both slices are copied.
func New(nodes []Node, edges []Edge) *Graph {
	g := &Graph{
		nodes: make([]Node, 0, len(nodes)),
		edges: make([]Edge, len(edges)),
		index: make(map[NodeID]int, len(nodes)),
	}
	copy(g.edges, edges)

	for _, n := range nodes {
		if _, exists := g.index[n.ID]; exists {
			continue
		}
		g.index[n.ID] = len(g.nodes)
		g.nodes = append(g.nodes, n)
	}

	g.resolve()
	return g
}

// resolve maps edges to index pairs and builds adjacency in edge insertion order
func (g *Graph) resolve() {
	g.links = make([]Link, 0, len(g.edges))
	g.adj = make([][]int, len(g.nodes))

	for _, e := range g.edges {
		src, ok := g.index[e.From]
		if !ok {
			continue
		}
		dst, ok := g.index[e.To]
		if !ok {
			continue
		}
		g.links = append(g.links, Link{Source: src, Target: dst, Weight: e.Weight})
		if src == dst {
			continue
		}
		g.adj[src] = append(g.adj[src], dst)
		g.adj[dst] = append(g.adj[dst], src)
	}
}

// Len returns the number of nodes
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Node returns the node stored at index i
func (g *Graph) Node(i int) Node {
	return g.nodes[i]
}

// Nodes returns a copy of the node list in index order
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns a copy of the edges as supplied, including dangling ones
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// IndexOf returns the arena index for id
func (g *Graph) IndexOf(id NodeID) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Links returns the edges whose endpoints both exist, in insertion order.
// Self-loops are included; callers that apply forces should skip them.
func (g *Graph) Links() []Link {
	return g.links
}

// Neighbors returns the neighbor indices of node i in edge insertion order.
// Parallel edges appear once per edge; self-loops are omitted.
func (g *Graph) Neighbors(i int) []int {
	return g.adj[i]
}

// Positions returns the current position of every node in index order
func (g *Graph) Positions() []Position {
	out := make([]Position, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.Position
	}
	return out
}

// WithPositions returns a new graph whose node positions are replaced by
// positions[i]. Missing trailing entries leave the original position.
func (g *Graph) WithPositions(positions []Position) *Graph {
	nodes := g.Nodes()
	for i := range nodes {
		if i < len(positions) {
			nodes[i].Position = positions[i]
		}
	}
	return g.derive(nodes)
}

// WithGroups returns a new graph whose node groups are replaced by groups[i]
func (g *Graph) WithGroups(groups []GroupID) *Graph {
	nodes := g.Nodes()
	for i := range nodes {
		if i < len(groups) {
			nodes[i].Group = groups[i]
		}
	}
	return g.derive(nodes)
}

// derive shares the resolved edge structure, which depends only on IDs
func (g *Graph) derive(nodes []Node) *Graph {
	return &Graph{
		nodes: nodes,
		edges: g.edges,
		index: g.index,
		links: g.links,
		adj:   g.adj,
	}
}
