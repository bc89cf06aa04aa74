package visualization

import (
	"github.com/dd0wney/cluso-layout/pkg/graph"
)

// Algorithm names a layout strategy
type Algorithm string

const (
	AlgorithmAuto         Algorithm = "auto"
	AlgorithmForce        Algorithm = "force"
	AlgorithmHierarchical Algorithm = "hierarchical"
	AlgorithmCircular     Algorithm = "circular"
	AlgorithmGrid         Algorithm = "grid"
	AlgorithmCommunity    Algorithm = "community"
)

// LayoutConfig carries the resolved parameters every strategy reads
type LayoutConfig struct {
	Width      float64 // Canvas width
	Height     float64 // Canvas height
	Iterations int     // Number of iterations for iterative algorithms
	Padding    float64 // Padding from edges
	MinSpacing float64 // Minimum distance between any two nodes
	Workers    int     // Goroutines for pairwise force accumulation, <= 1 means sequential

	RelaxationPasses int // Spacing enforcer tier 1 budget
	AggressivePasses int // Spacing enforcer tier 2 budget
}

// Strategy computes raw positions for every node, in node index order.
// Output may still violate the minimum spacing.
type Strategy interface {
	ComputeLayout(g *graph.Graph) ([]graph.Position, error)
}

// PositionedNode is a node with its final coordinates
type PositionedNode struct {
	ID       graph.NodeID
	Group    graph.GroupID
	Type     string
	Weight   float64
	Position graph.Position
}
