package graph

import "math"

// NodeID uniquely identifies a node within a graph
type NodeID string

// GroupID is a caller-supplied grouping key (e.g. a "family").
// The empty GroupID means the node is ungrouped.
type GroupID string

// Position represents a 2D coordinate
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// IsSet reports whether p holds a usable coordinate.
// Non-finite values and the (0,0) sentinel both mean "unset".
func (p Position) IsSet() bool {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return false
	}
	return p.X != 0 || p.Y != 0
}

// IsFinite reports whether both coordinates are finite numbers
func (p Position) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Distance returns the Euclidean distance between p and q
func (p Position) Distance(q Position) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Node represents a vertex to be laid out
type Node struct {
	ID       NodeID
	Position Position // zero value means unset
	Group    GroupID
	Type     string  // opaque payload, not used by layout math
	Weight   float64 // opaque payload, not used by layout math
}

// Edge connects two nodes. Direction is ignored for layout purposes.
type Edge struct {
	From   NodeID
	To     NodeID
	Weight float64
}

// Link is an edge resolved to node indices
type Link struct {
	Source int
	Target int
	Weight float64
}
