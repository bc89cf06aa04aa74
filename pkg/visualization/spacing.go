package visualization

import (
	"math"
	"slices"

	"github.com/dd0wney/cluso-layout/pkg/graph"
)

const (
	relaxationDamping = 0.5  // Share of the deficit each node of a pair covers
	aggressiveFactor  = 0.75 // Overshooting share used once relaxation stalls
	separationSlack   = 1e-3 // Extra distance so a repaired pair is not re-flagged

	maxExpansion        = 4.0 // Largest scale applied before the aggressive tier
	maxBudgetMultiplier = 4   // Aggressive budget grows by one multiple per 100 nodes up to this
)

// EnforcementStats describes one run of the spacing enforcer
type EnforcementStats struct {
	InitialViolations   int  `json:"initial_violations"`
	RelaxationPasses    int  `json:"relaxation_passes"`
	AggressivePasses    int  `json:"aggressive_passes"`
	RemainingViolations int  `json:"remaining_violations"`
	Resolved            bool `json:"resolved"`

	// Expansion is the factor positions were scaled by about their centroid
	// before the aggressive tier. Zero when the tier did not run.
	Expansion float64 `json:"expansion,omitempty"`
}

// SpacingEnforcer repairs pairs closer than the minimum spacing. It works on
// positions only and never fails: when it cannot resolve every pair it says
// so in its stats.
type SpacingEnforcer struct {
	config *LayoutConfig
}

// NewSpacingEnforcer creates a spacing enforcer for the given canvas
func NewSpacingEnforcer(config *LayoutConfig) *SpacingEnforcer {
	return &SpacingEnforcer{config: config}
}

// Enforce returns repaired positions. The input slice is not modified.
func (se *SpacingEnforcer) Enforce(positions []graph.Position) ([]graph.Position, EnforcementStats) {
	current := slices.Clone(positions)
	stats := EnforcementStats{
		InitialViolations: CountViolations(current, se.config.MinSpacing),
	}
	if stats.InitialViolations == 0 {
		stats.Resolved = true
		return current, stats
	}

	order := make([]int, len(current))
	for i := range order {
		order[i] = i
	}

	// Tier 1: damped moves that stay on the canvas
	for stats.RelaxationPasses < se.config.RelaxationPasses {
		var violations int
		current, violations = se.pass(current, order, relaxationDamping, true)
		stats.RelaxationPasses++
		if violations == 0 {
			break
		}
	}

	// Tier 2: spread the layout out, then larger unclamped moves in a
	// geometry-derived order
	budget := se.aggressiveBudget(len(current))
	if budget > 0 && CountViolations(current, se.config.MinSpacing) > 0 {
		current, stats.Expansion = expand(current, se.config.MinSpacing)
		order = sortedByAxis(current)
		for stats.AggressivePasses < budget {
			var violations int
			current, violations = se.pass(current, order, aggressiveFactor, false)
			stats.AggressivePasses++
			if violations == 0 {
				break
			}
		}
	}

	stats.RemainingViolations = CountViolations(current, se.config.MinSpacing)
	stats.Resolved = stats.RemainingViolations == 0
	return current, stats
}

// aggressiveBudget scales the configured pass count with the node count
func (se *SpacingEnforcer) aggressiveBudget(n int) int {
	return se.config.AggressivePasses * min(1+n/100, maxBudgetMultiplier)
}

// expand scales positions about their centroid so that the median
// nearest-neighbour distance reaches spacing. Relative placement is kept,
// so clusters found by the strategy survive the unclamped passes. The factor
// is at least 1 and at most maxExpansion; fully coincident input is returned
// unscaled.
func expand(positions []graph.Position, spacing float64) ([]graph.Position, float64) {
	n := len(positions)
	if n < 2 {
		return positions, 1
	}

	nearest := make([]float64, n)
	for i := range nearest {
		nearest[i] = math.Inf(1)
	}
	var cx, cy float64
	for i := 0; i < n; i++ {
		cx += positions[i].X
		cy += positions[i].Y
		for j := i + 1; j < n; j++ {
			d := positions[i].Distance(positions[j])
			nearest[i] = min(nearest[i], d)
			nearest[j] = min(nearest[j], d)
		}
	}
	cx /= float64(n)
	cy /= float64(n)

	slices.Sort(nearest)
	median := nearest[n/2]
	if median <= 0 || median >= spacing {
		return positions, 1
	}

	factor := min(spacing/median, maxExpansion)
	out := make([]graph.Position, n)
	for i, p := range positions {
		out[i] = graph.Position{X: cx + (p.X-cx)*factor, Y: cy + (p.Y-cy)*factor}
	}
	return out, factor
}

// pass visits every pair once in the given order and pushes violating pairs
// apart. Moves apply immediately to a fresh copy, so later pairs in the same
// pass see earlier repairs. It returns the number of violating pairs seen.
func (se *SpacingEnforcer) pass(in []graph.Position, order []int, share float64, clamped bool) ([]graph.Position, int) {
	next := slices.Clone(in)
	spacing := se.config.MinSpacing
	violations := 0

	for a := 0; a < len(order); a++ {
		for b := a + 1; b < len(order); b++ {
			i, j := order[a], order[b]
			dist, ux, uy := unitBetween(next[i], next[j], i, j)
			if dist >= spacing-spacingTolerance {
				continue
			}
			violations++

			push := (spacing - dist + separationSlack) * share
			next[i] = graph.Position{X: next[i].X + ux*push, Y: next[i].Y + uy*push}
			next[j] = graph.Position{X: next[j].X - ux*push, Y: next[j].Y - uy*push}
			if clamped {
				next[i] = se.clampToCanvas(next[i])
				next[j] = se.clampToCanvas(next[j])
			}
		}
	}

	return next, violations
}

func (se *SpacingEnforcer) clampToCanvas(p graph.Position) graph.Position {
	pad := se.config.Padding
	return graph.Position{
		X: clamp(p.X, pad, se.config.Width-pad),
		Y: clamp(p.Y, pad, se.config.Height-pad),
	}
}

// sortedByAxis orders node indices by X, then Y, then index
func sortedByAxis(positions []graph.Position) []int {
	order := make([]int, len(positions))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		pa, pb := positions[a], positions[b]
		switch {
		case pa.X < pb.X:
			return -1
		case pa.X > pb.X:
			return 1
		case pa.Y < pb.Y:
			return -1
		case pa.Y > pb.Y:
			return 1
		}
		return a - b
	})
	return order
}
