package visualization

import "github.com/dd0wney/cluso-layout/pkg/graph"

// Selection thresholds. The order of the checks in DetectBestLayout is
// policy; tests pin it.
const (
	communityMinNodes   = 15
	communityMinDensity = 0.1
	forceMinDensity     = 0.3
	circularMaxNodes    = 10
)

// DetectBestLayout picks a concrete algorithm from graph statistics.
// The first matching rule wins:
//
//	groups > 0 and groups < n/2   hierarchical
//	n > 15 and density > 0.1      community
//	density > 0.3                 force
//	n < 10                        circular
//	otherwise                     force
func DetectBestLayout(stats graph.Stats) Algorithm {
	switch {
	case stats.Groups > 0 && float64(stats.Groups) < float64(stats.Nodes)/2:
		return AlgorithmHierarchical
	case stats.Nodes > communityMinNodes && stats.Density > communityMinDensity:
		return AlgorithmCommunity
	case stats.Density > forceMinDensity:
		return AlgorithmForce
	case stats.Nodes < circularMaxNodes:
		return AlgorithmCircular
	default:
		return AlgorithmForce
	}
}
