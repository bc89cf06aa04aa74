package visualization

import (
	"math"
	"math/rand/v2"

	"github.com/dd0wney/cluso-layout/pkg/graph"
)

const (
	// minMemberRadius keeps small groups from collapsing onto their center
	minMemberRadius = 40.0
	// ungroupedSpread is the half-width of the central box, as a fraction of
	// the short canvas side, where ungrouped nodes land
	ungroupedSpread = 0.05
)

// HierarchicalLayout arranges groups on an outer ring and each group's
// members on a small ring around the group's center
type HierarchicalLayout struct {
	config *LayoutConfig
	rng    *rand.Rand
}

// NewHierarchicalLayout creates a new hierarchical layout.
// rng only perturbs ungrouped nodes.
func NewHierarchicalLayout(config *LayoutConfig, rng *rand.Rand) *HierarchicalLayout {
	return &HierarchicalLayout{config: config, rng: rng}
}

// ComputeLayout arranges nodes by group
func (hl *HierarchicalLayout) ComputeLayout(g *graph.Graph) ([]graph.Position, error) {
	n := g.Len()
	positions := make([]graph.Position, n)
	if n == 0 {
		return positions, nil
	}

	// Bucket members by group, in order of first appearance
	groups := g.Groups()
	slot := make(map[graph.GroupID]int, len(groups))
	for k, id := range groups {
		slot[id] = k
	}
	members := make([][]int, len(groups))
	ungrouped := make([]int, 0)
	for i := 0; i < n; i++ {
		k, ok := slot[g.Node(i).Group]
		if !ok {
			ungrouped = append(ungrouped, i)
			continue
		}
		members[k] = append(members[k], i)
	}

	spacing := hl.config.MinSpacing
	radii := make([]float64, len(groups))
	widest := 0.0
	for k, m := range members {
		if len(m) > 1 {
			radii[k] = math.Max(minMemberRadius, chordRadius(len(m), spacing))
		}
		widest = math.Max(widest, radii[k])
	}

	// Group centers are far enough apart that no two member rings come
	// closer than the minimum spacing
	center := canvasCenter(hl.config)
	groupRadius := 0.0
	if len(groups) > 1 {
		groupRadius = ringRadius(len(groups), 2*widest+spacing, hl.config.Width, hl.config.Height)
	}

	for k, m := range members {
		groupCenter := center
		if len(groups) > 1 {
			groupCenter = onRing(center, groupRadius, k, len(groups))
		}
		if len(m) == 1 {
			positions[m[0]] = groupCenter
			continue
		}
		for slotIdx, idx := range m {
			positions[idx] = onRing(groupCenter, radii[k], slotIdx, len(m))
		}
	}

	spread := ungroupedSpread * math.Min(hl.config.Width, hl.config.Height)
	for _, idx := range ungrouped {
		positions[idx] = graph.Position{
			X: center.X + (hl.rng.Float64()*2-1)*spread,
			Y: center.Y + (hl.rng.Float64()*2-1)*spread,
		}
	}

	return positions, nil
}
