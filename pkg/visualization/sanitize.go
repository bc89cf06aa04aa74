package visualization

import (
	"math"

	"github.com/dd0wney/cluso-layout/pkg/graph"
)

// sanitizeRadius is the rescue circle radius as a fraction of the short canvas side
const sanitizeRadius = 0.3

// sanitizePositions moves every unusable position (missing, non-finite or the
// (0,0) sentinel) onto a circle around the canvas center at an angle derived
// from its index. It returns the repaired copy and how many nodes it moved.
func sanitizePositions(positions []graph.Position, n int, config *LayoutConfig) ([]graph.Position, int) {
	out := make([]graph.Position, n)
	copy(out, positions)

	center := canvasCenter(config)
	radius := sanitizeRadius * math.Min(config.Width, config.Height)
	moved := 0
	for i := range out {
		if out[i].IsSet() {
			continue
		}
		out[i] = onRing(center, radius, i, n)
		moved++
	}
	return out, moved
}
