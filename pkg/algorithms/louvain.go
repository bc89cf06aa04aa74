package algorithms

import (
	"fmt"

	"github.com/dd0wney/cluso-layout/pkg/graph"
)

// DefaultMaxPasses bounds the number of local-move passes in DetectCommunities
const DefaultMaxPasses = 100

// CommunityGroupID names the group used for community c when communities are
// handed to group-based placement
func CommunityGroupID(c int) graph.GroupID {
	return graph.GroupID(fmt.Sprintf("community-%d", c))
}

// DetectCommunities partitions the graph with a Louvain-style local-move pass.
//
// Every node starts in its own community. Each pass visits nodes in index order
// and scores every community that one of its neighbors belongs to with
//
//	gain = (edges_to_candidate - edges_to_current) / total_edges
//
// This is a local estimate, not the Newman-Girvan modularity delta. The node
// moves to the candidate with the strictly largest positive gain; the first
// candidate seen (in edge insertion order) wins ties. Passes stop when nothing
// moves or after maxPasses.
func DetectCommunities(g *graph.Graph, maxPasses int) *CommunityDetectionResult {
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	n := g.Len()
	assignment := make([]int, n)
	for i := range assignment {
		assignment[i] = i
	}

	result := &CommunityDetectionResult{}

	totalEdges := countNonLoopLinks(g)
	if totalEdges == 0 || n == 0 {
		return finalizeCommunities(g, assignment, result)
	}

	for pass := 0; pass < maxPasses; pass++ {
		result.Passes++
		moved := 0

		for node := 0; node < n; node++ {
			current := assignment[node]

			// Edge counts per neighboring community, keyed in first-seen order
			counts := make(map[int]int)
			order := make([]int, 0)
			for _, nb := range g.Neighbors(node) {
				c := assignment[nb]
				if _, seen := counts[c]; !seen {
					order = append(order, c)
				}
				counts[c]++
			}

			toCurrent := counts[current]
			bestGain := 0.0
			best := current

			for _, candidate := range order {
				if candidate == current {
					continue
				}
				gain := float64(counts[candidate]-toCurrent) / float64(totalEdges)
				if gain > bestGain {
					bestGain = gain
					best = candidate
				}
			}

			if best != current {
				assignment[node] = best
				moved++
			}
		}

		result.Moves += moved
		if moved == 0 {
			break
		}
	}

	return finalizeCommunities(g, assignment, result)
}

// finalizeCommunities renumbers raw labels densely by first appearance over
// node index and fills in the per-community statistics
func finalizeCommunities(g *graph.Graph, raw []int, result *CommunityDetectionResult) *CommunityDetectionResult {
	n := g.Len()
	relabel := make(map[int]int)
	assignment := make([]int, n)
	communities := make([]*Community, 0)

	for i, label := range raw {
		id, ok := relabel[label]
		if !ok {
			id = len(communities)
			relabel[label] = id
			communities = append(communities, &Community{ID: id, Nodes: make([]graph.NodeID, 0)})
		}
		assignment[i] = id
		communities[id].Nodes = append(communities[id].Nodes, g.Node(i).ID)
	}

	// Intra-community edge counts for density
	internal := make([]int, len(communities))
	for _, l := range g.Links() {
		if l.Source == l.Target {
			continue
		}
		if assignment[l.Source] == assignment[l.Target] {
			internal[assignment[l.Source]]++
		}
	}

	nodeCommunity := make(map[graph.NodeID]int, n)
	for i, c := range assignment {
		nodeCommunity[g.Node(i).ID] = c
	}

	for _, c := range communities {
		c.Size = len(c.Nodes)
		if c.Size > 1 {
			possible := float64(c.Size) * float64(c.Size-1) / 2
			c.Density = float64(internal[c.ID]) / possible
		}
	}

	result.Communities = communities
	result.Assignment = assignment
	result.NodeCommunity = nodeCommunity
	result.Modularity = Modularity(g, assignment)
	return result
}

func countNonLoopLinks(g *graph.Graph) int {
	count := 0
	for _, l := range g.Links() {
		if l.Source != l.Target {
			count++
		}
	}
	return count
}
