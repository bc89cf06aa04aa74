package visualization

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dd0wney/cluso-layout/pkg/graph"
)

func statsFor(n, m, g int) graph.Stats {
	s := graph.Stats{Nodes: n, Edges: m, Groups: g}
	if n > 1 {
		s.Density = float64(m) / (float64(n) * float64(n-1) / 2)
	}
	return s
}

// TestDetectBestLayout pins the selection thresholds and their order
func TestDetectBestLayout(t *testing.T) {
	tests := []struct {
		name     string
		stats    graph.Stats
		expected Algorithm
	}{
		{"empty graph", statsFor(0, 0, 0), AlgorithmCircular},
		{"single node", statsFor(1, 0, 0), AlgorithmCircular},
		{"small sparse", statsFor(5, 2, 0), AlgorithmCircular},
		{"groups below half", statsFor(20, 0, 8), AlgorithmHierarchical},
		{"groups at half", statsFor(20, 0, 10), AlgorithmForce},
		{"groups beat density", statsFor(20, 190, 2), AlgorithmHierarchical},
		{"large and dense", statsFor(20, 76, 0), AlgorithmCommunity},
		{"community density boundary", statsFor(20, 19, 0), AlgorithmForce},
		{"sixteen nodes just above", statsFor(16, 13, 0), AlgorithmCommunity},
		{"fifteen nodes is not large", statsFor(15, 60, 0), AlgorithmForce},
		{"small and dense", statsFor(9, 12, 0), AlgorithmForce},
		{"small below force density", statsFor(9, 10, 0), AlgorithmCircular},
		{"medium sparse", statsFor(12, 3, 0), AlgorithmForce},
		{"ten nodes sparse", statsFor(10, 0, 0), AlgorithmForce},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectBestLayout(tt.stats))
		})
	}
}

// TestDetectBestLayout_FromGraph tests selection on real graph statistics
func TestDetectBestLayout_FromGraph(t *testing.T) {
	assert.Equal(t, AlgorithmHierarchical, DetectBestLayout(groupedGraph(3, 10).Stats()))
	assert.Equal(t, AlgorithmCircular, DetectBestLayout(buildGraph(5, [][2]int{{0, 1}, {1, 2}}).Stats()))
}
