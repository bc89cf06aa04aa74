package algorithms

import "github.com/dd0wney/cluso-layout/pkg/graph"

// Community represents a detected community
type Community struct {
	ID      int
	Nodes   []graph.NodeID
	Size    int
	Density float64 // Edge density within community
}

// CommunityDetectionResult contains detected communities
type CommunityDetectionResult struct {
	Communities   []*Community
	Modularity    float64              // Quality measure of the partitioning
	NodeCommunity map[graph.NodeID]int // Node ID -> Community ID
	Assignment    []int                // Node index -> Community ID
	Passes        int                  // Passes executed before convergence or budget exhaustion
	Moves         int                  // Total node moves across all passes
}

// GroupIDs returns a group ID per node index naming its community,
// suitable for graph.WithGroups
func (r *CommunityDetectionResult) GroupIDs() []graph.GroupID {
	groups := make([]graph.GroupID, len(r.Assignment))
	for i, c := range r.Assignment {
		groups[i] = CommunityGroupID(c)
	}
	return groups
}
