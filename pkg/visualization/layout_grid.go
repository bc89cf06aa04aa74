package visualization

import (
	"math"

	"github.com/dd0wney/cluso-layout/pkg/graph"
)

// GridLayout places nodes row-major in a near-square grid
type GridLayout struct {
	config *LayoutConfig
}

// NewGridLayout creates a new grid layout
func NewGridLayout(config *LayoutConfig) *GridLayout {
	return &GridLayout{config: config}
}

// ComputeLayout places node i at column i%cols, row i/cols. Cells are never
// narrower than the minimum spacing, so the grid may overflow the canvas.
func (gl *GridLayout) ComputeLayout(g *graph.Graph) ([]graph.Position, error) {
	n := g.Len()
	positions := make([]graph.Position, n)
	if n == 0 {
		return positions, nil
	}

	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols

	pad := gl.config.Padding
	cellW := math.Max((gl.config.Width-2*pad)/float64(cols), gl.config.MinSpacing)
	cellH := math.Max((gl.config.Height-2*pad)/float64(rows), gl.config.MinSpacing)

	for i := range positions {
		col := i % cols
		row := i / cols
		positions[i] = graph.Position{
			X: pad + cellW*(float64(col)+0.5),
			Y: pad + cellH*(float64(row)+0.5),
		}
	}

	return positions, nil
}
