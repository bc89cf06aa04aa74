package visualization

import (
	"github.com/dd0wney/cluso-layout/pkg/graph"
)

// CircularLayout arranges nodes in a circle.
// Its radius always satisfies the minimum spacing, which makes it the
// fallback when another strategy cannot.
type CircularLayout struct {
	config *LayoutConfig
}

// NewCircularLayout creates a new circular layout
func NewCircularLayout(config *LayoutConfig) *CircularLayout {
	return &CircularLayout{config: config}
}

// ComputeLayout arranges nodes in a circle in index order
func (cl *CircularLayout) ComputeLayout(g *graph.Graph) ([]graph.Position, error) {
	n := g.Len()
	positions := make([]graph.Position, n)
	if n == 0 {
		return positions, nil
	}

	center := canvasCenter(cl.config)
	if n == 1 {
		positions[0] = center
		return positions, nil
	}

	radius := ringRadius(n, cl.config.MinSpacing, cl.config.Width, cl.config.Height)
	for i := range positions {
		positions[i] = onRing(center, radius, i, n)
	}

	return positions, nil
}
