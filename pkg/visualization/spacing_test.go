package visualization

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-layout/pkg/graph"
)

func samePositions(n int, p graph.Position) []graph.Position {
	out := make([]graph.Position, n)
	for i := range out {
		out[i] = p
	}
	return out
}

// TestSpacingEnforcer_NoViolations tests that valid input passes through untouched
func TestSpacingEnforcer_NoViolations(t *testing.T) {
	config := testConfig()
	input := []graph.Position{{X: 100, Y: 100}, {X: 400, Y: 100}, {X: 100, Y: 400}}

	output, stats := NewSpacingEnforcer(config).Enforce(input)

	assert.Equal(t, input, output)
	assert.True(t, stats.Resolved)
	assert.Zero(t, stats.InitialViolations)
	assert.Zero(t, stats.RelaxationPasses)
	assert.Zero(t, stats.AggressivePasses)
}

// TestSpacingEnforcer_RelaxationResolvesPair tests the clamped tier alone
func TestSpacingEnforcer_RelaxationResolvesPair(t *testing.T) {
	config := testConfig()
	input := []graph.Position{{X: 600, Y: 400}, {X: 601, Y: 400}}

	output, stats := NewSpacingEnforcer(config).Enforce(input)

	assert.True(t, stats.Resolved)
	assert.Equal(t, 1, stats.InitialViolations)
	assert.Zero(t, stats.AggressivePasses)
	assert.GreaterOrEqual(t, output[0].Distance(output[1]), config.MinSpacing-spacingTolerance)
	for _, p := range output {
		assert.True(t, p.X >= config.Padding && p.X <= config.Width-config.Padding)
		assert.True(t, p.Y >= config.Padding && p.Y <= config.Height-config.Padding)
	}

	// Input is never modified
	assert.Equal(t, graph.Position{X: 601, Y: 400}, input[1])
}

// TestSpacingEnforcer_IdenticalCoordinates tests fully coincident input
func TestSpacingEnforcer_IdenticalCoordinates(t *testing.T) {
	config := testConfig()

	output, stats := NewSpacingEnforcer(config).Enforce(samePositions(5, graph.Position{X: 600, Y: 400}))

	require.True(t, stats.Resolved)
	assert.Equal(t, 10, stats.InitialViolations)
	assert.Zero(t, stats.RemainingViolations)
	assert.Zero(t, CountViolations(output, config.MinSpacing))
}

// TestSpacingEnforcer_AggressiveTierOverflowsCanvas tests the unclamped tier
// on a canvas too small to hold the nodes
func TestSpacingEnforcer_AggressiveTierOverflowsCanvas(t *testing.T) {
	config := testConfig()
	config.Width, config.Height, config.Padding = 100, 100, 0

	output, stats := NewSpacingEnforcer(config).Enforce(samePositions(4, graph.Position{X: 50, Y: 50}))

	assert.Equal(t, config.RelaxationPasses, stats.RelaxationPasses)
	assert.Greater(t, stats.AggressivePasses, 0)
	assert.True(t, stats.Resolved)
	assert.Zero(t, CountViolations(output, config.MinSpacing))

	outside := false
	for _, p := range output {
		if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
			outside = true
		}
	}
	assert.True(t, outside, "at least one node must leave the canvas")
}

// TestSpacingEnforcer_BudgetExhausted tests that the enforcer reports failure instead of erroring
func TestSpacingEnforcer_BudgetExhausted(t *testing.T) {
	config := testConfig()
	config.Width, config.Height, config.Padding = 100, 100, 0
	config.RelaxationPasses = 1
	config.AggressivePasses = 0

	_, stats := NewSpacingEnforcer(config).Enforce(samePositions(4, graph.Position{X: 50, Y: 50}))

	assert.False(t, stats.Resolved)
	assert.Greater(t, stats.RemainingViolations, 0)
	assert.Equal(t, 1, stats.RelaxationPasses)
	assert.Zero(t, stats.AggressivePasses)
}

func gridPositions(side int, step float64, center graph.Position) []graph.Position {
	out := make([]graph.Position, 0, side*side)
	half := float64(side-1) / 2
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			out = append(out, graph.Position{
				X: center.X + (float64(c)-half)*step,
				Y: center.Y + (float64(r)-half)*step,
			})
		}
	}
	return out
}

// TestSpacingEnforcer_ExpandsDenseCluster tests that a uniformly compressed
// cluster is scaled out before the aggressive tier instead of being pushed
// apart pair by pair
func TestSpacingEnforcer_ExpandsDenseCluster(t *testing.T) {
	config := testConfig()
	config.RelaxationPasses = 0
	input := gridPositions(11, 40, graph.Position{X: 600, Y: 400})

	output, stats := NewSpacingEnforcer(config).Enforce(input)

	require.True(t, stats.Resolved)
	assert.Equal(t, 3.75, stats.Expansion)
	assert.Equal(t, 1, stats.AggressivePasses)
	assert.Equal(t, gridPositions(11, 150, graph.Position{X: 600, Y: 400}), output)
}

// TestExpand tests scaling limits
func TestExpand(t *testing.T) {
	coincident := samePositions(3, graph.Position{X: 5, Y: 5})
	out, factor := expand(coincident, 150)
	assert.Equal(t, 1.0, factor)
	assert.Equal(t, coincident, out)

	sparse := []graph.Position{{X: 0, Y: 0}, {X: 200, Y: 0}}
	_, factor = expand(sparse, 150)
	assert.Equal(t, 1.0, factor)

	tight := []graph.Position{{X: -1, Y: 0}, {X: 1, Y: 0}}
	out, factor = expand(tight, 150)
	assert.Equal(t, maxExpansion, factor)
	assert.Equal(t, []graph.Position{{X: -4, Y: 0}, {X: 4, Y: 0}}, out)
}

// TestSpacingEnforcer_AggressiveBudgetScales tests the per-100-node budget growth
func TestSpacingEnforcer_AggressiveBudgetScales(t *testing.T) {
	se := NewSpacingEnforcer(testConfig())

	assert.Equal(t, 50, se.aggressiveBudget(12))
	assert.Equal(t, 100, se.aggressiveBudget(120))
	assert.Equal(t, 200, se.aggressiveBudget(5000))

	se.config.AggressivePasses = 0
	assert.Zero(t, se.aggressiveBudget(5000))
}

// TestSortedByAxis tests the aggressive tier ordering
func TestSortedByAxis(t *testing.T) {
	positions := []graph.Position{{X: 5, Y: 1}, {X: 1, Y: 9}, {X: 5, Y: 0}, {X: 1, Y: 9}}

	assert.Equal(t, []int{1, 3, 2, 0}, sortedByAxis(positions))
}

// TestSanitizePositions tests repair of unusable coordinates
func TestSanitizePositions(t *testing.T) {
	config := testConfig()
	input := []graph.Position{
		{X: 10, Y: 10},
		{X: math.NaN(), Y: 1},
		{},
		{X: math.Inf(1), Y: 3},
	}

	output, moved := sanitizePositions(input, 4, config)

	assert.Equal(t, 3, moved)
	assert.Equal(t, input[0], output[0])
	radius := sanitizeRadius * math.Min(config.Width, config.Height)
	for i := 1; i < 4; i++ {
		assert.Equal(t, onRing(canvasCenter(config), radius, i, 4), output[i])
		assert.True(t, output[i].IsSet())
	}
}

// TestSanitizePositions_ShortInput tests a strategy that returned too few positions
func TestSanitizePositions_ShortInput(t *testing.T) {
	output, moved := sanitizePositions([]graph.Position{{X: 1, Y: 1}}, 3, testConfig())

	assert.Len(t, output, 3)
	assert.Equal(t, 2, moved)
}

// TestCountViolations tests the tolerance at exactly the minimum spacing
func TestCountViolations(t *testing.T) {
	positions := []graph.Position{{X: 0, Y: 0}, {X: 150, Y: 0}, {X: 150, Y: 100}}

	assert.Equal(t, 1, CountViolations(positions, 150))
	assert.Equal(t, 0, CountViolations(positions, 100))
	assert.InDelta(t, 100, MinPairDistance(positions), 1e-12)
	assert.True(t, math.IsInf(MinPairDistance(positions[:1]), 1))
}
