package visualization

import (
	"math/rand/v2"

	"github.com/dd0wney/cluso-layout/pkg/algorithms"
	"github.com/dd0wney/cluso-layout/pkg/graph"
)

// CommunityLayout detects communities, seeds each one as a group on the
// hierarchical rings, then relaxes the whole graph with the force solver
type CommunityLayout struct {
	config    *LayoutConfig
	rng       *rand.Rand
	maxPasses int

	communities *algorithms.CommunityDetectionResult
}

// NewCommunityLayout creates a new community layout
func NewCommunityLayout(config *LayoutConfig, rng *rand.Rand) *CommunityLayout {
	return &CommunityLayout{
		config:    config,
		rng:       rng,
		maxPasses: algorithms.DefaultMaxPasses,
	}
}

// ComputeLayout places nodes community by community.
// Input positions that are already usable are kept as force seeds.
func (cl *CommunityLayout) ComputeLayout(g *graph.Graph) ([]graph.Position, error) {
	cl.communities = algorithms.DetectCommunities(g, cl.maxPasses)
	if g.Len() == 0 {
		return []graph.Position{}, nil
	}

	grouped := g.WithGroups(cl.communities.GroupIDs())
	seeds, err := NewHierarchicalLayout(cl.config, cl.rng).ComputeLayout(grouped)
	if err != nil {
		return nil, err
	}
	for i := range seeds {
		if p := g.Node(i).Position; p.IsSet() {
			seeds[i] = p
		}
	}

	return NewForceDirectedLayout(cl.config, cl.rng).ComputeLayout(g.WithPositions(seeds))
}

// Communities returns the partition found by the last ComputeLayout call
func (cl *CommunityLayout) Communities() *algorithms.CommunityDetectionResult {
	return cl.communities
}
