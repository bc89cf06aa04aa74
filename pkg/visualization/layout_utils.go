package visualization

import (
	"math"

	"github.com/dd0wney/cluso-layout/pkg/graph"
)

// spacingTolerance absorbs float error when comparing a distance to the minimum spacing
const spacingTolerance = 1e-6

// goldenAngle spreads derived directions evenly around the circle
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

func canvasCenter(config *LayoutConfig) graph.Position {
	return graph.Position{X: config.Width / 2, Y: config.Height / 2}
}

// chordRadius is the radius at which count points evenly spaced on a circle
// are exactly spacing apart from their neighbours
func chordRadius(count int, spacing float64) float64 {
	if count < 2 {
		return 0
	}
	return spacing / (2 * math.Sin(math.Pi/float64(count)))
}

// ringRadius is the circular layout radius: large enough for the chord
// constraint, for the arc length count*spacing and for 40% of the short side
func ringRadius(count int, spacing, width, height float64) float64 {
	arc := float64(count) * spacing / (2 * math.Pi)
	return math.Max(math.Max(chordRadius(count, spacing), arc), 0.4*math.Min(width, height))
}

// onRing returns slot i of count evenly spaced slots on a circle
func onRing(center graph.Position, radius float64, i, count int) graph.Position {
	angle := 2 * math.Pi * float64(i) / float64(count)
	return graph.Position{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// separationDirection returns a unit vector pointing from node j towards
// node i. It depends only on the indices, so coincident nodes separate the
// same way on every run, and separationDirection(j, i) is its negation.
func separationDirection(i, j int) (float64, float64) {
	lo, hi := min(i, j), max(i, j)
	angle := float64(lo)*goldenAngle + float64(hi)*0.5
	ux, uy := math.Cos(angle), math.Sin(angle)
	if i < j {
		return ux, uy
	}
	return -ux, -uy
}

// unitBetween returns the distance between a and b and the unit vector from b to a
func unitBetween(a, b graph.Position, i, j int) (dist, ux, uy float64) {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dist = math.Hypot(dx, dy)
	if dist < 1e-9 {
		ux, uy = separationDirection(i, j)
		return dist, ux, uy
	}
	return dist, dx / dist, dy / dist
}

func clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}

// CountViolations counts node pairs closer than minSpacing
func CountViolations(positions []graph.Position, minSpacing float64) int {
	violations := 0
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			if positions[i].Distance(positions[j]) < minSpacing-spacingTolerance {
				violations++
			}
		}
	}
	return violations
}

// MinPairDistance returns the smallest pairwise distance, or +Inf for fewer than two positions
func MinPairDistance(positions []graph.Position) float64 {
	best := math.Inf(1)
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			best = math.Min(best, positions[i].Distance(positions[j]))
		}
	}
	return best
}
